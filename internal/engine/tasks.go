package engine

import (
	"context"
	"slices"
	"strings"
)

type TaskResult struct {
	Result
	Task Task

	// Completed is true when the task moved into history, false when it went
	// back to pending.
	Completed bool
}

// AddTask appends a pending task to the horizon list. Priority is the point
// value credited on completion and is clamped to at least 1.
func (s *Service) AddTask(ctx context.Context, text string, priority int, horizon Horizon) TaskResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	text = strings.TrimSpace(text)
	if text == "" {
		return TaskResult{Result: rejected(ReasonEmptyText)}
	}
	if !horizon.IsValid() {
		return TaskResult{Result: rejected(ReasonUnknownHorizon)}
	}
	if priority < 1 {
		priority = 1
	}

	t := Task{
		ID:        s.newID(),
		Text:      text,
		Priority:  priority,
		Horizon:   horizon,
		CreatedAt: s.now(),
	}
	s.state.Tasks[horizon] = append(s.state.Tasks[horizon], t)
	s.save(ctx, taskSlice(horizon))

	s.log.Debug().Str("task", t.ID).Str("horizon", string(horizon)).Msg("task added")
	return TaskResult{Result: applied(), Task: t}
}

// CompleteTask moves a pending task into today's history and credits its
// priority. A task that is still listed but flagged completed is flipped
// back to pending instead, reversing the credit.
func (s *Service) CompleteTask(ctx context.Context, id string, horizon Horizon) TaskResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !horizon.IsValid() {
		return TaskResult{Result: rejected(ReasonUnknownHorizon)}
	}
	list := s.state.Tasks[horizon]
	idx := slices.IndexFunc(list, func(t Task) bool { return t.ID == id })
	if idx < 0 {
		return TaskResult{Result: rejected(ReasonUnknownTask)}
	}
	t := list[idx]
	today := s.today()
	touched := taskSlice(horizon) | sliceHistory

	if t.Completed {
		list[idx].Completed = false
		touched |= s.refundPoints(t.Priority)
		s.removeHistoryEntry(today, t.ID, HistoryKind(horizon))
		s.save(ctx, touched)
		return TaskResult{Result: applied(), Task: list[idx]}
	}

	s.state.Tasks[horizon] = slices.Delete(list, idx, idx+1)
	touched |= s.awardPoints(t.Priority)
	s.state.History[today] = append(s.state.History[today], HistoryEntry{
		ID:          t.ID,
		Text:        t.Text,
		Kind:        HistoryKind(horizon),
		Points:      t.Priority,
		CompletedAt: s.now(),
		CreatedAt:   t.CreatedAt,
	})
	s.metrics.RecordTaskCompleted(string(horizon))
	s.save(ctx, touched)

	s.log.Debug().Str("task", t.ID).Int("points", t.Priority).Msg("task completed")
	t.Completed = true
	return TaskResult{Result: applied(), Task: t, Completed: true}
}

// RestoreTask undoes a completion made today: the history entry goes back
// to its pending list and the points are refunded. ref is an id or id suffix.
func (s *Service) RestoreTask(ctx context.Context, ref string) TaskResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return TaskResult{Result: rejected(ReasonUnknownTask)}
	}
	today := s.today()
	date, entry, reason := s.findTaskEntry(ref, today)
	if reason != ReasonNone {
		return TaskResult{Result: rejected(reason)}
	}
	if date != today {
		return TaskResult{Result: rejected(ReasonNotToday)}
	}

	horizon := Horizon(entry.Kind)
	s.removeHistoryEntry(today, entry.ID, entry.Kind)
	created := entry.CreatedAt
	if created.IsZero() {
		created = entry.CompletedAt
	}
	t := Task{
		ID:        entry.ID,
		Text:      entry.Text,
		Priority:  entry.Points,
		Horizon:   horizon,
		CreatedAt: created,
	}
	list := s.state.Tasks[horizon]
	at := slices.IndexFunc(list, func(p Task) bool { return p.CreatedAt.After(created) })
	if at < 0 {
		at = len(list)
	}
	s.state.Tasks[horizon] = slices.Insert(list, at, t)
	touched := taskSlice(horizon) | sliceHistory
	touched |= s.refundPoints(entry.Points)
	s.save(ctx, touched)

	s.log.Debug().Str("task", t.ID).Msg("task restored")
	return TaskResult{Result: applied(), Task: t}
}

// findTaskEntry looks for a task entry by id, today first, then newest date
// first. Habit and bonus entries never match. A suffix matching more than one
// entry reports ReasonAmbiguousTask.
func (s *Service) findTaskEntry(ref, today string) (string, HistoryEntry, Reason) {
	var (
		date  string
		found HistoryEntry
		hits  int
	)
	seen := map[string]bool{}
	dates := append([]string{today}, s.historyDates()...)
	for _, d := range dates {
		if seen[d] {
			continue
		}
		seen[d] = true
		for _, e := range s.state.History[d] {
			if !Horizon(e.Kind).IsValid() {
				continue
			}
			if e.ID == ref {
				return d, e, ReasonNone
			}
			if matchRef(e.ID, ref) {
				if hits == 0 {
					date, found = d, e
				}
				hits++
			}
		}
	}
	switch hits {
	case 0:
		return "", HistoryEntry{}, ReasonUnknownTask
	case 1:
		return date, found, ReasonNone
	default:
		return "", HistoryEntry{}, ReasonAmbiguousTask
	}
}

func matchRef(id, ref string) bool {
	return id == ref || (len(ref) >= 4 && strings.HasSuffix(id, ref))
}

// ShortID is the suffix shown in listings; it is accepted back as a ref.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}

// ResolveTask finds a pending task by id or id suffix across all horizons.
// An exact id wins; a suffix shared by several tasks is ReasonAmbiguousTask.
func (s *Service) ResolveTask(ref string) (Task, Reason) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Task{}, ReasonUnknownTask
	}
	var matches []Task
	for _, h := range Horizons {
		for _, t := range s.state.Tasks[h] {
			if t.ID == ref {
				return t, ReasonNone
			}
			if matchRef(t.ID, ref) {
				matches = append(matches, t)
			}
		}
	}
	switch len(matches) {
	case 0:
		return Task{}, ReasonUnknownTask
	case 1:
		return matches[0], ReasonNone
	default:
		return Task{}, ReasonAmbiguousTask
	}
}

func (s *Service) Tasks(h Horizon) []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.Tasks[h])
}

// History returns the entries completed on date (2006-01-02), oldest first.
func (s *Service) History(date string) []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.History[date])
}

// HistoryDates lists dates with at least one entry, newest first.
func (s *Service) HistoryDates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.historyDates()
}

func (s *Service) historyDates() []string {
	dates := make([]string, 0, len(s.state.History))
	for d, entries := range s.state.History {
		if len(entries) > 0 {
			dates = append(dates, d)
		}
	}
	slices.Sort(dates)
	slices.Reverse(dates)
	return dates
}

func (s *Service) Today() string {
	return s.today()
}
