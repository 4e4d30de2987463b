package engine

// Reason explains why an operation left state untouched.
type Reason string

const (
	ReasonNone               Reason = ""
	ReasonEmptyText          Reason = "empty_text"
	ReasonUnknownHorizon     Reason = "unknown_horizon"
	ReasonUnknownRitual      Reason = "unknown_ritual"
	ReasonUnknownTask        Reason = "unknown_task"
	ReasonAmbiguousTask      Reason = "ambiguous_task"
	ReasonUnknownReward      Reason = "unknown_reward"
	ReasonUnknownBonus       Reason = "unknown_bonus"
	ReasonAlreadyClaimed     Reason = "already_claimed"
	ReasonInsufficientPoints Reason = "insufficient_points"
	ReasonNotToday           Reason = "not_today"
	ReasonOutOfRange         Reason = "out_of_range"
	ReasonNoBoundary         Reason = "no_boundary"
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "ok"
	case ReasonEmptyText:
		return "text is empty"
	case ReasonUnknownHorizon:
		return "unknown horizon"
	case ReasonUnknownRitual:
		return "unknown ritual"
	case ReasonUnknownTask:
		return "task not found"
	case ReasonAmbiguousTask:
		return "id suffix matches several tasks"
	case ReasonUnknownReward:
		return "unknown reward"
	case ReasonUnknownBonus:
		return "unknown bonus"
	case ReasonAlreadyClaimed:
		return "reward already claimed"
	case ReasonInsufficientPoints:
		return "not enough points"
	case ReasonNotToday:
		return "only tasks completed today can be restored"
	case ReasonOutOfRange:
		return "value out of range"
	case ReasonNoBoundary:
		return "no day boundary crossed"
	default:
		return string(r)
	}
}

// Result reports whether a command mutated state. Rejections are never errors.
type Result struct {
	Applied bool
	Reason  Reason
}

func applied() Result { return Result{Applied: true} }

func rejected(r Reason) Result { return Result{Reason: r} }
