package gorm

import (
	"time"

	"github.com/bornholm/taskbot/internal/core/model"
)

type Task struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name         string `gorm:"column:task_name;not null"`
	Description  string
	DueDate      int64  `gorm:"column:due_date;not null"`
	AssignedRole string `gorm:"column:assigned_role;index"`
	Status       string `gorm:"not null"`
	Link         string

	Receipts []*Receipt `gorm:"constraint:OnDelete:CASCADE"`
}

func (Task) TableName() string {
	return "tasks"
}

type Receipt struct {
	TaskID string `gorm:"primaryKey;autoIncrement:false"`
	Member string `gorm:"primaryKey;autoIncrement:false;column:member_id"`

	CreatedAt time.Time
	UpdatedAt time.Time

	UserName       string `gorm:"column:user_name;not null"`
	Status         string `gorm:"not null"`
	ReceivedAt     int64  `gorm:"column:received_at;not null"`
	SubmissionLink string `gorm:"column:submission_link"`
	SubmittedAt    *int64 `gorm:"column:submitted_at"`
}

// TableName matches the nested collection name of the original document
// store layout.
func (Receipt) TableName() string {
	return "receivers"
}

type wrappedTask struct {
	t *Task
}

// ID implements model.Task.
func (w *wrappedTask) ID() model.TaskID {
	return model.TaskID(w.t.ID)
}

// Name implements model.Task.
func (w *wrappedTask) Name() string {
	return w.t.Name
}

// Description implements model.Task.
func (w *wrappedTask) Description() string {
	return w.t.Description
}

// DueDate implements model.Task.
func (w *wrappedTask) DueDate() time.Time {
	return time.Unix(w.t.DueDate, 0).UTC()
}

// AssignedRole implements model.Task.
func (w *wrappedTask) AssignedRole() model.RoleRef {
	return model.RoleRef(w.t.AssignedRole)
}

// Status implements model.Task.
func (w *wrappedTask) Status() model.TaskStatus {
	return model.TaskStatus(w.t.Status)
}

// Link implements model.Task.
func (w *wrappedTask) Link() string {
	return w.t.Link
}

var _ model.Task = &wrappedTask{}

type wrappedReceipt struct {
	r *Receipt
}

// Member implements model.Receipt.
func (w *wrappedReceipt) Member() model.MemberID {
	return model.MemberID(w.r.Member)
}

// UserName implements model.Receipt.
func (w *wrappedReceipt) UserName() string {
	return w.r.UserName
}

// Status implements model.Receipt.
func (w *wrappedReceipt) Status() model.ReceiptStatus {
	return model.ReceiptStatus(w.r.Status)
}

// ReceivedAt implements model.Receipt.
func (w *wrappedReceipt) ReceivedAt() time.Time {
	return time.Unix(w.r.ReceivedAt, 0).UTC()
}

// SubmissionLink implements model.Receipt.
func (w *wrappedReceipt) SubmissionLink() string {
	return w.r.SubmissionLink
}

// SubmittedAt implements model.Receipt.
func (w *wrappedReceipt) SubmittedAt() time.Time {
	if w.r.SubmittedAt == nil {
		return time.Time{}
	}

	return time.Unix(*w.r.SubmittedAt, 0).UTC()
}

var _ model.Receipt = &wrappedReceipt{}
