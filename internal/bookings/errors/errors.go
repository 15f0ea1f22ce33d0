package errors

import "errors"

var (
	ErrUnknownArea = errors.New("unknown area")

	ErrDateNotSelectable = errors.New("date is not selectable")

	ErrUnknownTimeSlot = errors.New("unknown time slot")

	ErrStepIncomplete = errors.New("current step is incomplete")

	ErrNotAtFinalStep = errors.New("booking can only be submitted from the contact step")

	ErrSessionNotFound = errors.New("booking session not found")

	ErrInvalidState = errors.New("stored booking state is invalid")
)
