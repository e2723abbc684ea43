package memory

import (
	"context"
	"iter"
	"sync"
	"time"

	"github.com/bornholm/taskbot/internal/core/model"
	"github.com/bornholm/taskbot/internal/core/port"
	"github.com/pkg/errors"
)

// TaskStore keeps tasks and receipts in process memory. Iteration order is
// insertion order, which stands in for the store-native order of the remote
// document database.
type TaskStore struct {
	mutex sync.RWMutex
	tasks map[model.TaskID]*taskRecord
	order []model.TaskID
}

type taskRecord struct {
	data         taskData
	receipts     map[model.MemberID]*receiptData
	receiptOrder []model.MemberID
}

type taskData struct {
	ID           model.TaskID
	Name         string
	Description  string
	DueDate      time.Time
	AssignedRole model.RoleRef
	Status       model.TaskStatus
	Link         string
}

type receiptData struct {
	Member         model.MemberID
	UserName       string
	Status         model.ReceiptStatus
	ReceivedAt     time.Time
	SubmissionLink string
	SubmittedAt    time.Time
}

func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make(map[model.TaskID]*taskRecord),
		order: make([]model.TaskID, 0),
	}
}

// CreateTask implements port.TaskStore.
func (s *TaskStore) CreateTask(ctx context.Context, attrs port.TaskAttrs) (model.Task, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record := &taskRecord{
		data: taskData{
			ID:          model.NewTaskID(),
			Name:        attrs.Name,
			Description: attrs.Description,
			DueDate:     attrs.DueDate,
			Status:      model.TaskStatusPending,
			Link:        attrs.Link,
		},
		receipts: make(map[model.MemberID]*receiptData),
	}

	s.tasks[record.data.ID] = record
	s.order = append(s.order, record.data.ID)

	return &wrappedTask{record.data}, nil
}

// GetTaskByID implements port.TaskStore.
func (s *TaskStore) GetTaskByID(ctx context.Context, id model.TaskID) (model.Task, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	record, exists := s.tasks[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return &wrappedTask{record.data}, nil
}

// UpdateTask implements port.TaskStore.
func (s *TaskStore) UpdateTask(ctx context.Context, id model.TaskID, updates port.TaskUpdates) (model.Task, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, exists := s.tasks[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	if updates.Description != nil {
		record.data.Description = *updates.Description
	}

	if updates.DueDate != nil {
		record.data.DueDate = *updates.DueDate
	}

	if updates.AssignedRole != nil {
		record.data.AssignedRole = *updates.AssignedRole
	}

	if updates.Status != nil {
		record.data.Status = *updates.Status
	}

	if updates.Link != nil {
		record.data.Link = *updates.Link
	}

	return &wrappedTask{record.data}, nil
}

// DeleteTask implements port.TaskStore.
func (s *TaskStore) DeleteTask(ctx context.Context, id model.TaskID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.tasks[id]; !exists {
		return errors.WithStack(port.ErrNotFound)
	}

	delete(s.tasks, id)

	for i, taskID := range s.order {
		if taskID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

// QueryTasks implements port.TaskStore.
func (s *TaskStore) QueryTasks(ctx context.Context, opts port.QueryTasksOptions) iter.Seq2[model.Task, error] {
	s.mutex.RLock()

	snapshot := make([]taskData, 0, len(s.order))
	for _, id := range s.order {
		record := s.tasks[id]

		if opts.AssignedRole != nil && record.data.AssignedRole != *opts.AssignedRole {
			continue
		}

		snapshot = append(snapshot, record.data)
	}

	s.mutex.RUnlock()

	return func(yield func(model.Task, error) bool) {
		for _, data := range snapshot {
			if !yield(&wrappedTask{data}, nil) {
				return
			}
		}
	}
}

// GetReceipt implements port.TaskStore.
func (s *TaskStore) GetReceipt(ctx context.Context, taskID model.TaskID, member model.MemberID) (model.Receipt, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	record, exists := s.tasks[taskID]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	receipt, exists := record.receipts[member]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return &wrappedReceipt{*receipt}, nil
}

// CreateReceipt implements port.TaskStore.
func (s *TaskStore) CreateReceipt(ctx context.Context, taskID model.TaskID, member model.MemberID, userName string, receivedAt time.Time) (model.Receipt, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, exists := s.tasks[taskID]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	if _, exists := record.receipts[member]; exists {
		return nil, errors.WithStack(port.ErrAlreadyExists)
	}

	receipt := &receiptData{
		Member:     member,
		UserName:   userName,
		Status:     model.ReceiptStatusPending,
		ReceivedAt: receivedAt,
	}

	record.receipts[member] = receipt
	record.receiptOrder = append(record.receiptOrder, member)

	return &wrappedReceipt{*receipt}, nil
}

// UpdateReceipt implements port.TaskStore.
func (s *TaskStore) UpdateReceipt(ctx context.Context, taskID model.TaskID, member model.MemberID, updates port.ReceiptUpdates) (model.Receipt, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, exists := s.tasks[taskID]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	receipt, exists := record.receipts[member]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	if updates.Status != nil {
		receipt.Status = *updates.Status
	}

	if updates.SubmissionLink != nil {
		receipt.SubmissionLink = *updates.SubmissionLink
	}

	if updates.SubmittedAt != nil {
		receipt.SubmittedAt = *updates.SubmittedAt
	}

	return &wrappedReceipt{*receipt}, nil
}

// ListReceipts implements port.TaskStore.
func (s *TaskStore) ListReceipts(ctx context.Context, taskID model.TaskID) ([]model.Receipt, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	record, exists := s.tasks[taskID]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	receipts := make([]model.Receipt, 0, len(record.receiptOrder))
	for _, member := range record.receiptOrder {
		receipts = append(receipts, &wrappedReceipt{*record.receipts[member]})
	}

	return receipts, nil
}

// QuerySubmissions implements port.TaskStore.
func (s *TaskStore) QuerySubmissions(ctx context.Context) iter.Seq2[model.Submission, error] {
	s.mutex.RLock()

	snapshot := make([]model.Submission, 0)
	for _, id := range s.order {
		record := s.tasks[id]

		for _, member := range record.receiptOrder {
			receipt := record.receipts[member]
			if receipt.Status != model.ReceiptStatusCompleted {
				continue
			}

			snapshot = append(snapshot, model.Submission{
				TaskID:   record.data.ID,
				TaskName: record.data.Name,
				UserName: receipt.UserName,
				Link:     receipt.SubmissionLink,
			})
		}
	}

	s.mutex.RUnlock()

	return func(yield func(model.Submission, error) bool) {
		for _, submission := range snapshot {
			if !yield(submission, nil) {
				return
			}
		}
	}
}

var _ port.TaskStore = &TaskStore{}
