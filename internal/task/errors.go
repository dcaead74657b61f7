package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTask          = errors.New("task description is required")
	ErrDurationOutOfRange = errors.New("estimated duration must be between 5 and 480 minutes")
	ErrNoPageContent      = errors.New("no readable content found on this page")
	ErrNoDrafts           = errors.New("no tasks to save")
)
