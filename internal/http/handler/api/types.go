package api

import (
	"github.com/bornholm/taskbot/internal/core/model"
	"github.com/bornholm/taskbot/internal/core/service"
)

// Task mirrors the document fields of the task collection; DueDate is a Unix
// timestamp in seconds.
type Task struct {
	ID           string `json:"id"`
	Name         string `json:"task_name"`
	Description  string `json:"description"`
	DueDate      int64  `json:"due_date"`
	AssignedRole string `json:"assigned_role,omitempty"`
	RoleName     string `json:"role_name,omitempty"`
	Status       string `json:"status"`
	Link         string `json:"link,omitempty"`
}

func fromTask(t model.Task) *Task {
	return &Task{
		ID:           string(t.ID()),
		Name:         t.Name(),
		Description:  t.Description(),
		DueDate:      t.DueDate().Unix(),
		AssignedRole: string(t.AssignedRole()),
		Status:       string(t.Status()),
		Link:         t.Link(),
	}
}

type CreateTaskRequest struct {
	Name        string `json:"task_name"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Link        string `json:"link,omitempty"`
}

type CreateTaskResponse struct {
	Task *Task `json:"task"`
}

type ShowTaskResponse struct {
	Task *Task `json:"task"`
}

type ListTasksResponse struct {
	Tasks []*Task `json:"tasks"`
}

type UpdateTaskRequest struct {
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

type UpdateTaskResponse struct {
	Task *Task `json:"task"`
}

type AssignTaskRequest struct {
	Role string `json:"role"`
}

type AssignTaskResponse struct {
	Task *Task `json:"task"`
}

type ReceiveTaskResponse struct {
	Outcome service.ReceiveOutcome `json:"outcome"`
}

type SubmitTaskRequest struct {
	Link string `json:"link"`
}

type Submission struct {
	TaskID   string `json:"task_id"`
	TaskName string `json:"task_name"`
	UserName string `json:"user_name"`
	Link     string `json:"link"`
}

type ListSubmissionsResponse struct {
	Submissions []Submission `json:"submissions"`
}

type ListReceiptsResponse struct {
	Count int      `json:"count"`
	Names []string `json:"names"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
