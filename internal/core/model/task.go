package model

import (
	"time"

	"github.com/rs/xid"
)

type TaskID string

func NewTaskID() TaskID {
	return TaskID(xid.New().String())
}

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// RoleRef identifies a role on the chat platform. The empty value means
// "unassigned".
type RoleRef string

type Task interface {
	ID() TaskID
	Name() string
	Description() string
	DueDate() time.Time
	AssignedRole() RoleRef
	Status() TaskStatus
	Link() string
}
