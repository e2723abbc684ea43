package port

import (
	"context"
	"iter"
	"time"

	"github.com/bornholm/taskbot/internal/core/model"
)

// TaskStore is the persistence contract of the task repository. Each method
// is a single logical unit against the backing store, no operation spans
// multiple documents beyond one task and one of its receipts. Store faults
// are returned as-is, callers do not retry.
type TaskStore interface {
	// CreateTask allocates a new unique id and persists a task with
	// status pending and no assigned role.
	CreateTask(ctx context.Context, attrs TaskAttrs) (model.Task, error)

	GetTaskByID(ctx context.Context, id model.TaskID) (model.Task, error)

	// UpdateTask overwrites the non-nil fields of updates. Last writer
	// wins, no history is kept.
	UpdateTask(ctx context.Context, id model.TaskID, updates TaskUpdates) (model.Task, error)

	// DeleteTask removes the task and all its receipts.
	DeleteTask(ctx context.Context, id model.TaskID) error

	// QueryTasks produces a finite, non-restartable sequence of tasks in
	// store-native order.
	QueryTasks(ctx context.Context, opts QueryTasksOptions) iter.Seq2[model.Task, error]

	GetReceipt(ctx context.Context, taskID model.TaskID, member model.MemberID) (model.Receipt, error)

	// CreateReceipt fails with ErrAlreadyExists if a receipt already
	// exists for the given (task, member) pair.
	CreateReceipt(ctx context.Context, taskID model.TaskID, member model.MemberID, userName string, receivedAt time.Time) (model.Receipt, error)

	UpdateReceipt(ctx context.Context, taskID model.TaskID, member model.MemberID, updates ReceiptUpdates) (model.Receipt, error)

	// ListReceipts returns all receipts of the task, pending and
	// completed, in store-native order.
	ListReceipts(ctx context.Context, taskID model.TaskID) ([]model.Receipt, error)

	// QuerySubmissions produces every completed receipt of every task,
	// flattened into one finite, non-restartable sequence.
	QuerySubmissions(ctx context.Context) iter.Seq2[model.Submission, error]
}

type TaskAttrs struct {
	Name        string
	Description string
	DueDate     time.Time
	Link        string
}

type TaskUpdates struct {
	Description  *string
	DueDate      *time.Time
	AssignedRole *model.RoleRef
	Status       *model.TaskStatus
	Link         *string
}

type QueryTasksOptions struct {
	// Tasks whose assigned role equals the given reference
	AssignedRole *model.RoleRef
}

type ReceiptUpdates struct {
	Status         *model.ReceiptStatus
	SubmissionLink *string
	SubmittedAt    *time.Time
}
