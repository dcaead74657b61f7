package gtasks

import "time"

// DefaultTaskList is looked up by title before any other list.
const DefaultTaskList = "TaskHub Tasks"

// TaskList is a simplified representation of a Google Tasks list.
type TaskList struct {
	ID    string
	Title string
}

// CreateTaskRequest is the input for creating a Google Task.
type CreateTaskRequest struct {
	Title string
	Notes string
	// Due is optional; the zero value omits the due date.
	Due time.Time
}

// Task is a simplified representation of a Google Task.
type Task struct {
	ID     string
	Title  string
	Notes  string
	Status string
}
