package memory

import (
	"time"

	"github.com/bornholm/taskbot/internal/core/model"
)

type wrappedTask struct {
	d taskData
}

// ID implements model.Task.
func (w *wrappedTask) ID() model.TaskID {
	return w.d.ID
}

// Name implements model.Task.
func (w *wrappedTask) Name() string {
	return w.d.Name
}

// Description implements model.Task.
func (w *wrappedTask) Description() string {
	return w.d.Description
}

// DueDate implements model.Task.
func (w *wrappedTask) DueDate() time.Time {
	return w.d.DueDate
}

// AssignedRole implements model.Task.
func (w *wrappedTask) AssignedRole() model.RoleRef {
	return w.d.AssignedRole
}

// Status implements model.Task.
func (w *wrappedTask) Status() model.TaskStatus {
	return w.d.Status
}

// Link implements model.Task.
func (w *wrappedTask) Link() string {
	return w.d.Link
}

var _ model.Task = &wrappedTask{}

type wrappedReceipt struct {
	d receiptData
}

// Member implements model.Receipt.
func (w *wrappedReceipt) Member() model.MemberID {
	return w.d.Member
}

// UserName implements model.Receipt.
func (w *wrappedReceipt) UserName() string {
	return w.d.UserName
}

// Status implements model.Receipt.
func (w *wrappedReceipt) Status() model.ReceiptStatus {
	return w.d.Status
}

// ReceivedAt implements model.Receipt.
func (w *wrappedReceipt) ReceivedAt() time.Time {
	return w.d.ReceivedAt
}

// SubmissionLink implements model.Receipt.
func (w *wrappedReceipt) SubmissionLink() string {
	return w.d.SubmissionLink
}

// SubmittedAt implements model.Receipt.
func (w *wrappedReceipt) SubmittedAt() time.Time {
	return w.d.SubmittedAt
}

var _ model.Receipt = &wrappedReceipt{}
