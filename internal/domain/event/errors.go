package event

import "errors"

// Punch admission errors. The status evaluator is the single policy that
// decides which actions are legal; these errors name the rejected cases.
var (
	ErrAlreadyPunchedIn     = errors.New("you are already punched in")
	ErrNotPunchedIn         = errors.New("you are not punched in")
	ErrAlreadyOnBreak       = errors.New("you are already on break")
	ErrNotOnBreak           = errors.New("you are not on break")
	ErrPunchOutWhileOnBreak = errors.New("end your break before punching out")

	ErrUnknownEventType = errors.New("unknown punch event type")
	ErrEventNotFound    = errors.New("punch event not found")
)
