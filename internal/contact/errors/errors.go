package errors

import "errors"

var (
	ErrSubmitterStopped = errors.New("contact submitter is stopped")

	ErrAbandoned = errors.New("visitor left before the message was sent")
)
