package engine

import (
	"errors"
	"fmt"
)

// Recoverable gameplay errors. Plays rejected with these leave the game state
// unchanged so the same seat can retry with a corrected play.
var (
	ErrNotYourTurn    = errors.New("not this seat's turn")
	ErrCardNotHeld    = errors.New("card not held by this seat")
	ErrMustFollowSuit = errors.New("must follow the leading suit")
	ErrDuplicateCard  = errors.New("card already played this trick")
	ErrTrickFull      = errors.New("trick already has a card from every seat")
	ErrHandComplete   = errors.New("hand already has all its tricks")
)

// Control-flow signals, not failures.
var (
	ErrTrickIncomplete = errors.New("trick not yet complete")
	ErrHandIncomplete  = errors.New("hand not yet complete")
	ErrMatchNotOver    = errors.New("match not yet over")
)

// InvariantError reports a broken engine invariant or a misconfigured rule
// set: a rank order with ties, a card outside the declared rank universe, a
// completed trick with no card of the leading suit, or a decision provider
// returning a card outside the legal set. These are not recoverable gameplay
// errors and must not be retried.
type InvariantError struct {
	Reason string
	Err    error
}

func (e *InvariantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invariant violated: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invariant violated: %s", e.Reason)
}

func (e *InvariantError) Unwrap() error { return e.Err }

func invariantf(format string, args ...any) *InvariantError {
	return &InvariantError{Reason: fmt.Sprintf(format, args...)}
}
