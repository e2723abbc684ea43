package model

import (
	"time"
)

// MemberID identifies an individual member on the chat platform.
type MemberID string

type ReceiptStatus string

const (
	ReceiptStatusPending   ReceiptStatus = "pending"
	ReceiptStatusCompleted ReceiptStatus = "completed"
)

// Receipt records that a member picked up a task. At most one receipt exists
// per (task, member) pair. UserName is the display name captured at receipt
// time, it is never looked up again afterwards.
type Receipt interface {
	Member() MemberID
	UserName() string
	Status() ReceiptStatus
	ReceivedAt() time.Time
	SubmissionLink() string
	SubmittedAt() time.Time
}

// Submission is one completed receipt, flattened with the identity of its
// owning task.
type Submission struct {
	TaskID   TaskID
	TaskName string
	UserName string
	Link     string
}
