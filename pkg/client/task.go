package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/bornholm/taskbot/internal/core/service"
	"github.com/bornholm/taskbot/internal/http/handler/api"
	"github.com/pkg/errors"
)

func jsonBody(payload any) (io.Reader, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return bytes.NewReader(data), nil
}

func (c *Client) CreateTask(ctx context.Context, name string, description string, dueDate string, link string) (*api.Task, error) {
	body, err := jsonBody(api.CreateTaskRequest{
		Name:        name,
		Description: description,
		DueDate:     dueDate,
		Link:        link,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var res api.CreateTaskResponse

	if err := c.jsonRequest(ctx, "POST", c.apiURL("/tasks"), body, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Task, nil
}

func (c *Client) GetTask(ctx context.Context, id string) (*api.Task, error) {
	var res api.ShowTaskResponse

	if err := c.jsonRequest(ctx, "GET", c.apiURL("/tasks").JoinPath(id), nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Task, nil
}

// ListTasks returns all tasks, or only the tasks assigned to the given role
// when role is not empty.
func (c *Client) ListTasks(ctx context.Context, role string) ([]*api.Task, error) {
	endpoint := c.apiURL("/tasks")

	if role != "" {
		query := endpoint.Query()
		query.Set("role", role)
		endpoint.RawQuery = query.Encode()
	}

	var res api.ListTasksResponse

	if err := c.jsonRequest(ctx, "GET", endpoint, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Tasks, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, description *string, dueDate *string) (*api.Task, error) {
	body, err := jsonBody(api.UpdateTaskRequest{
		Description: description,
		DueDate:     dueDate,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var res api.UpdateTaskResponse

	if err := c.jsonRequest(ctx, "PATCH", c.apiURL("/tasks").JoinPath(id), body, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Task, nil
}

func (c *Client) AssignTask(ctx context.Context, id string, role string) (*api.Task, error) {
	body, err := jsonBody(api.AssignTaskRequest{Role: role})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var res api.AssignTaskResponse

	if err := c.jsonRequest(ctx, "PUT", c.apiURL("/tasks").JoinPath(id, "role"), body, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Task, nil
}

func (c *Client) CompleteTask(ctx context.Context, id string) error {
	if err := c.jsonRequest(ctx, "POST", c.apiURL("/tasks").JoinPath(id, "complete"), nil, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if err := c.jsonRequest(ctx, "DELETE", c.apiURL("/tasks").JoinPath(id), nil, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (c *Client) ReceiveTask(ctx context.Context, id string) (service.ReceiveOutcome, error) {
	var res api.ReceiveTaskResponse

	if err := c.jsonRequest(ctx, "POST", c.apiURL("/tasks").JoinPath(id, "receipts"), nil, &res); err != nil {
		return "", errors.WithStack(err)
	}

	return res.Outcome, nil
}

func (c *Client) SubmitTask(ctx context.Context, id string, link string) error {
	body, err := jsonBody(api.SubmitTaskRequest{Link: link})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := c.jsonRequest(ctx, "POST", c.apiURL("/tasks").JoinPath(id, "submission"), body, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (c *Client) ListSubmissions(ctx context.Context) ([]api.Submission, error) {
	var res api.ListSubmissionsResponse

	if err := c.jsonRequest(ctx, "GET", c.apiURL("/submissions"), nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Submissions, nil
}

func (c *Client) ListReceipts(ctx context.Context, id string) (*api.ListReceiptsResponse, error) {
	var res api.ListReceiptsResponse

	if err := c.jsonRequest(ctx, "GET", c.apiURL("/tasks").JoinPath(id, "receipts"), nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}
