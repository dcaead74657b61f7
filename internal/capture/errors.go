package capture

import "errors"

var (
	// ErrAlreadyRecording rejects a second concurrent recording; the
	// caller treats it as a no-op, never a queue.
	ErrAlreadyRecording = errors.New("a recording is already in progress")

	ErrNotRecording = errors.New("no recording in progress")

	// ErrNoContent means a capture produced nothing usable. It is
	// surfaced rather than turned into an empty task.
	ErrNoContent = errors.New("no content captured")
)
