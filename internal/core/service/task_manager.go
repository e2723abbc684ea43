package service

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/taskbot/internal/core/model"
	"github.com/bornholm/taskbot/internal/core/port"
	"github.com/bornholm/taskbot/internal/metrics"
	"github.com/pkg/errors"
)

// UnassignedRoleName is how an absent or unresolvable role is rendered.
const UnassignedRoleName = "None"

type TaskManagerOptions struct {
	PrivilegedRoles []model.RoleRef
	Now             func() time.Time
}

type TaskManagerOptionFunc func(opts *TaskManagerOptions)

func WithTaskManagerPrivilegedRoles(roles ...model.RoleRef) TaskManagerOptionFunc {
	return func(opts *TaskManagerOptions) {
		opts.PrivilegedRoles = roles
	}
}

func WithTaskManagerNow(now func() time.Time) TaskManagerOptionFunc {
	return func(opts *TaskManagerOptions) {
		opts.Now = now
	}
}

func NewTaskManagerOptions(funcs ...TaskManagerOptionFunc) *TaskManagerOptions {
	opts := &TaskManagerOptions{
		PrivilegedRoles: make([]model.RoleRef, 0),
		Now:             time.Now,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// TaskManager implements the task repository operations on top of a
// TaskStore. It owns input validation and the receive authorization rule;
// command-level authorization stays with the callers.
type TaskManager struct {
	store port.TaskStore
	roles port.RoleDirectory

	privilegedRoles []model.RoleRef
	now             func() time.Time
}

func NewTaskManager(store port.TaskStore, roles port.RoleDirectory, funcs ...TaskManagerOptionFunc) *TaskManager {
	opts := NewTaskManagerOptions(funcs...)

	return &TaskManager{
		store:           store,
		roles:           roles,
		privilegedRoles: opts.PrivilegedRoles,
		now:             opts.Now,
	}
}

// Create parses dueDateText as a calendar date and persists a new pending,
// unassigned task. Nothing is persisted when the date does not parse.
func (m *TaskManager) Create(ctx context.Context, name, description, dueDateText, link string) (model.Task, error) {
	dueDate, err := model.ParseDueDate(dueDateText)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	task, err := m.store.CreateTask(ctx, port.TaskAttrs{
		Name:        name,
		Description: description,
		DueDate:     dueDate,
		Link:        link,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.CreatedTasks.Inc()

	slog.InfoContext(ctx, "task created", slog.String("taskID", string(task.ID())))

	return task, nil
}

// Get returns the task with the given id.
func (m *TaskManager) Get(ctx context.Context, id model.TaskID) (model.Task, error) {
	task, err := m.store.GetTaskByID(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return task, nil
}

// Assign unconditionally overwrites the assigned role of the task. Last
// writer wins, no history is kept.
func (m *TaskManager) Assign(ctx context.Context, id model.TaskID, role model.RoleRef) (model.Task, error) {
	task, err := m.store.UpdateTask(ctx, id, port.TaskUpdates{AssignedRole: &role})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return task, nil
}

type TaskChanges struct {
	Description *string
	DueDateText *string
}

// Update patches the description and/or due date of the task. Providing
// neither field fails with ErrNothingToUpdate.
func (m *TaskManager) Update(ctx context.Context, id model.TaskID, changes TaskChanges) (model.Task, error) {
	updates := port.TaskUpdates{
		Description: changes.Description,
	}

	if changes.DueDateText != nil {
		dueDate, err := model.ParseDueDate(*changes.DueDateText)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		updates.DueDate = &dueDate
	}

	if updates.Description == nil && updates.DueDate == nil {
		return nil, errors.WithStack(ErrNothingToUpdate)
	}

	task, err := m.store.UpdateTask(ctx, id, updates)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return task, nil
}

type TaskListing struct {
	Task     model.Task
	RoleName string
}

// List produces all tasks, or the tasks assigned to the given role when a
// filter is supplied, with the role resolved to a display name. The sequence
// is finite and non-restartable.
func (m *TaskManager) List(ctx context.Context, role *model.RoleRef) iter.Seq2[TaskListing, error] {
	return func(yield func(TaskListing, error) bool) {
		for task, err := range m.store.QueryTasks(ctx, port.QueryTasksOptions{AssignedRole: role}) {
			if err != nil {
				yield(TaskListing{}, errors.WithStack(err))
				return
			}

			roleName, err := m.RoleName(ctx, task.AssignedRole())
			if err != nil {
				yield(TaskListing{}, errors.WithStack(err))
				return
			}

			if !yield(TaskListing{Task: task, RoleName: roleName}, nil) {
				return
			}
		}
	}
}

// Complete marks the task as completed. Completing an already completed task
// succeeds silently.
func (m *TaskManager) Complete(ctx context.Context, id model.TaskID) error {
	completed := model.TaskStatusCompleted

	if _, err := m.store.UpdateTask(ctx, id, port.TaskUpdates{Status: &completed}); err != nil {
		return errors.WithStack(err)
	}

	metrics.CompletedTasks.Inc()

	return nil
}

// Delete removes the task and all its receipts.
func (m *TaskManager) Delete(ctx context.Context, id model.TaskID) error {
	if err := m.store.DeleteTask(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	metrics.DeletedTasks.Inc()

	slog.InfoContext(ctx, "task deleted", slog.String("taskID", string(id)))

	return nil
}

type ReceiveOutcome string

const (
	ReceiveOutcomeReceived        ReceiveOutcome = "received"
	ReceiveOutcomeAlreadyReceived ReceiveOutcome = "already_received"
)

// Receive records that the calling member picked up the task. The caller
// must either hold a privileged role or hold the role the task is assigned
// to. A second receive by the same member is not an error, it reports
// ReceiveOutcomeAlreadyReceived and leaves the existing receipt untouched.
func (m *TaskManager) Receive(ctx context.Context, id model.TaskID, caller *model.Caller) (ReceiveOutcome, error) {
	ctx = slogx.WithAttrs(ctx, slog.String("taskID", string(id)))

	task, err := m.store.GetTaskByID(ctx, id)
	if err != nil {
		return "", errors.WithStack(err)
	}

	if !m.canReceive(caller, task) {
		return "", errors.WithStack(ErrUnauthorized)
	}

	_, err = m.store.CreateReceipt(ctx, id, caller.Member, caller.DisplayName, m.now())
	if err != nil {
		if errors.Is(err, port.ErrAlreadyExists) {
			return ReceiveOutcomeAlreadyReceived, nil
		}

		return "", errors.WithStack(err)
	}

	metrics.Receipts.Inc()

	return ReceiveOutcomeReceived, nil
}

// Submit completes the receipt of the calling member with the given link.
// It fails with ErrReceiptRequired when the member never received the task
// and with ErrAlreadySubmitted when the receipt is already completed.
func (m *TaskManager) Submit(ctx context.Context, id model.TaskID, member model.MemberID, link string) error {
	ctx = slogx.WithAttrs(ctx, slog.String("taskID", string(id)), slog.String("member", string(member)))

	if _, err := m.store.GetTaskByID(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	receipt, err := m.store.GetReceipt(ctx, id, member)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return errors.WithStack(ErrReceiptRequired)
		}

		return errors.WithStack(err)
	}

	if receipt.Status() == model.ReceiptStatusCompleted {
		return errors.WithStack(ErrAlreadySubmitted)
	}

	completed := model.ReceiptStatusCompleted
	submittedAt := m.now()

	_, err = m.store.UpdateReceipt(ctx, id, member, port.ReceiptUpdates{
		Status:         &completed,
		SubmissionLink: &link,
		SubmittedAt:    &submittedAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	metrics.Submissions.Inc()

	return nil
}

// Submissions produces every completed receipt of every task as one finite,
// non-restartable sequence.
func (m *TaskManager) Submissions(ctx context.Context) iter.Seq2[model.Submission, error] {
	return m.store.QuerySubmissions(ctx)
}

type ReceiptSummary struct {
	Count int
	Names []string
}

// Receipts returns the receipt count of the task and the captured display
// names of all receivers, pending and completed, in store-native order.
func (m *TaskManager) Receipts(ctx context.Context, id model.TaskID) (*ReceiptSummary, error) {
	receipts, err := m.store.ListReceipts(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	summary := &ReceiptSummary{
		Count: len(receipts),
		Names: make([]string, 0, len(receipts)),
	}

	for _, r := range receipts {
		summary.Names = append(summary.Names, r.UserName())
	}

	return summary, nil
}

func (m *TaskManager) canReceive(caller *model.Caller, task model.Task) bool {
	for _, role := range m.privilegedRoles {
		if caller.HasRole(role) {
			return true
		}
	}

	if assigned := task.AssignedRole(); assigned != "" && caller.HasRole(assigned) {
		return true
	}

	return false
}

// RoleName resolves a role reference to its display name, falling back to
// UnassignedRoleName when the reference is empty or unknown to the directory.
func (m *TaskManager) RoleName(ctx context.Context, role model.RoleRef) (string, error) {
	if role == "" {
		return UnassignedRoleName, nil
	}

	name, err := m.roles.ResolveRole(ctx, role)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return UnassignedRoleName, nil
		}

		return "", errors.WithStack(err)
	}

	return name, nil
}
