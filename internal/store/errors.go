package store

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrCorrupt      = errors.New("store file is corrupt")
)
