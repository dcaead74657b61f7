package gtasks

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

// Client wraps the Google Tasks API service.
type Client struct {
	service *tasks.Service
}

// NewClientFromHTTP creates a Tasks client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListTaskLists returns the user's task lists.
func (c *Client) ListTaskLists(ctx context.Context) ([]TaskList, error) {
	resp, err := c.service.Tasklists.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list task lists: %w", err)
	}

	lists := make([]TaskList, 0, len(resp.Items))
	for _, item := range resp.Items {
		lists = append(lists, TaskList{ID: item.Id, Title: item.Title})
	}
	return lists, nil
}

// GetOrCreateDefaultList resolves the list new tasks land in.
// Preference order: a list titled DefaultTaskList, then the account's
// built-in list ("My Tasks" or "Tasks"), then whatever comes first.
func (c *Client) GetOrCreateDefaultList(ctx context.Context) (*TaskList, error) {
	lists, err := c.ListTaskLists(ctx)
	if err != nil {
		return nil, err
	}

	for i := range lists {
		if lists[i].Title == DefaultTaskList {
			return &lists[i], nil
		}
	}
	for i := range lists {
		if lists[i].Title == "My Tasks" || lists[i].Title == "Tasks" {
			return &lists[i], nil
		}
	}
	if len(lists) > 0 {
		return &lists[0], nil
	}
	return nil, fmt.Errorf("no task lists available")
}

// CreateTask inserts a task into the given list.
func (c *Client) CreateTask(ctx context.Context, listID string, req CreateTaskRequest) (*Task, error) {
	if listID == "" {
		listID = "@default"
	}

	task := &tasks.Task{
		Title: req.Title,
		Notes: req.Notes,
	}
	if !req.Due.IsZero() {
		task.Due = req.Due.Format(time.RFC3339)
	}

	created, err := c.service.Tasks.Insert(listID, task).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &Task{
		ID:     created.Id,
		Title:  created.Title,
		Notes:  created.Notes,
		Status: created.Status,
	}, nil
}

// DeleteTask removes a task. An empty listID targets the default list.
func (c *Client) DeleteTask(ctx context.Context, listID, taskID string) error {
	if listID == "" {
		listID = "@default"
	}
	if err := c.service.Tasks.Delete(listID, taskID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
