package engine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ritualist/internal/catalog"
	"ritualist/internal/metrics"
	"ritualist/internal/storage"
)

// Store is the key/value mirror the engine persists into. Get returns nil
// for keys that were never written.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetMany(ctx context.Context, entries []storage.Entry) error
}

// Service owns the tracker state. Every exported method runs under one mutex,
// so user commands and scheduler ticks apply in a total order.
type Service struct {
	mu sync.Mutex

	store   Store
	catalog *catalog.Catalog
	clock   Clock
	loc     *time.Location
	log     zerolog.Logger
	metrics *metrics.Metrics
	newID   func() string

	state *State
}

type Option func(*Service)

func WithClock(c Clock) Option {
	return func(s *Service) { s.clock = c }
}

func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithIDGenerator replaces the UUIDv7 task id source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// NewService loads state from store, falling back to defaults for every
// slice that is missing or unreadable. It never fails.
func NewService(ctx context.Context, store Store, cat *catalog.Catalog, opts ...Option) *Service {
	if cat == nil {
		cat = catalog.Default()
	}
	s := &Service{
		store:   store,
		catalog: cat,
		clock:   RealClock{},
		loc:     time.Local,
		log:     zerolog.Nop(),
		newID:   func() string { return uuid.Must(uuid.NewV7()).String() },
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)
	s.metrics.SetProgress(s.state.Progression.Level, s.state.Progression.Points)
	return s
}

func (s *Service) Catalog() *catalog.Catalog { return s.catalog }

func (s *Service) Location() *time.Location { return s.loc }

func (s *Service) now() time.Time {
	return s.clock.Now().In(s.loc)
}

func (s *Service) today() string {
	return DateOf(s.clock.Now(), s.loc)
}
