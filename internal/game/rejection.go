// internal/game/rejection.go
//
// Typed rejections for the session engine. A Rejection is a structured,
// user-presentable refusal (bad input, anti-cheat rule, no active game).
// It is distinct from a real fault: rejections never mutate session state
// and are always safe to retry.

package game

// RejectKind classifies why an operation was refused.
type RejectKind string

const (
	// RejectNoGame means the operation needs an active round (idempotent).
	RejectNoGame RejectKind = "no_game"

	// RejectBadInput covers malformed parameters (word length out of range,
	// non-alphabetic guess, wrong guess length).
	RejectBadInput RejectKind = "bad_input"

	// RejectRule covers anti-cheat rule violations (duplicates,
	// vowel dumping, consonant floor).
	RejectRule RejectKind = "rule_violation"
)

// Rejection carries a kind plus a human-readable reason.
type Rejection struct {
	Kind   RejectKind `json:"kind"`
	Reason string     `json:"reason"`
}

// Error implements the error interface so rejections can travel through
// ordinary error returns.
func (r *Rejection) Error() string { return r.Reason }

func reject(kind RejectKind, reason string) *Rejection {
	return &Rejection{Kind: kind, Reason: reason}
}
