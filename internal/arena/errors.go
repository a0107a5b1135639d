package arena

import (
	"errors"
	"fmt"

	"github.com/WTuneSeeker/Pingo-Release-sub000/engine"
)

// ErrPhase is returned when an operation is called in the wrong match phase.
var ErrPhase = errors.New("arena: operation not allowed in current phase")

// Reason explains why a submission was rejected. The zero value means the
// submission was accepted.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonPhase           Reason = "phase_violation"
	ReasonLocked          Reason = "locked_input"
	ReasonEventMismatch   Reason = "event_mismatch"   // active event does not allow this action
	ReasonStaleEvent      Reason = "stale_event"      // reaction for an event that is no longer active
	ReasonOutOfRange      Reason = "out_of_range"
	ReasonCellTaken       Reason = "cell_taken"
	ReasonValueMismatch   Reason = "value_mismatch"
	ReasonInvalidTarget   Reason = "invalid_target"
	ReasonShielded        Reason = "shielded"
	ReasonNothingToBomb   Reason = "nothing_to_bomb"
	ReasonNothingToShield Reason = "nothing_to_shield"
)

// ErrorKind groups rejection reasons into the recoverable failure classes.
type ErrorKind string

const (
	KindNone           ErrorKind = ""
	KindInvalidClaim   ErrorKind = "invalid_claim"
	KindLockedInput    ErrorKind = "locked_input"
	KindPhaseViolation ErrorKind = "phase_violation"
)

// Kind maps a reason to its failure class.
func (r Reason) Kind() ErrorKind {
	switch r {
	case ReasonNone:
		return KindNone
	case ReasonLocked:
		return KindLockedInput
	case ReasonPhase:
		return KindPhaseViolation
	default:
		return KindInvalidClaim
	}
}

func claimReason(r engine.ClaimReason) Reason {
	switch r {
	case engine.ClaimOK:
		return ReasonNone
	case engine.ClaimOutOfRange:
		return ReasonOutOfRange
	case engine.ClaimTaken:
		return ReasonCellTaken
	case engine.ClaimValueMismatch:
		return ReasonValueMismatch
	}
	return ReasonInvalidTarget
}

// SubmitResult is returned by every human submission.
type SubmitResult struct {
	Accepted bool   `json:"accepted"`
	Reason   Reason `json:"reason,omitempty"`
	Cell     int    `json:"cell"`
	Points   int    `json:"points,omitempty"` // points scored by an accepted claim
}

func rejected(cell int, r Reason) SubmitResult {
	return SubmitResult{Cell: cell, Reason: r}
}

// InvariantBreachError reports two accepted claims for the same cell under
// the same event. It is raised with panic and never recovered.
type InvariantBreachError struct {
	EventID uint64
	Cell    int
	First   engine.AgentID
	Second  engine.AgentID
}

func (e *InvariantBreachError) Error() string {
	return fmt.Sprintf("arena: cell %d accepted twice for event %d (agents %d and %d)", e.Cell, e.EventID, e.First, e.Second)
}
