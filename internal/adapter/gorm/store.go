package gorm

import (
	"context"
	"iter"
	"sync"
	"time"

	"github.com/bornholm/taskbot/internal/core/model"
	"github.com/bornholm/taskbot/internal/core/port"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Store struct {
	getDatabase func(ctx context.Context) (*gorm.DB, error)
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		getDatabase: createGetDatabase(db),
	}
}

// CreateTask implements port.TaskStore.
func (s *Store) CreateTask(ctx context.Context, attrs port.TaskAttrs) (model.Task, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	task := &Task{
		ID:          string(model.NewTaskID()),
		Name:        attrs.Name,
		Description: attrs.Description,
		DueDate:     attrs.DueDate.Unix(),
		Status:      string(model.TaskStatusPending),
		Link:        attrs.Link,
	}

	if err := db.Create(task).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedTask{task}, nil
}

// GetTaskByID implements port.TaskStore.
func (s *Store) GetTaskByID(ctx context.Context, id model.TaskID) (model.Task, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var task Task

	if err := db.First(&task, "id = ?", string(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	return &wrappedTask{&task}, nil
}

// UpdateTask implements port.TaskStore.
func (s *Store) UpdateTask(ctx context.Context, id model.TaskID, updates port.TaskUpdates) (model.Task, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	values := map[string]any{}

	if updates.Description != nil {
		values["description"] = *updates.Description
	}

	if updates.DueDate != nil {
		values["due_date"] = updates.DueDate.Unix()
	}

	if updates.AssignedRole != nil {
		values["assigned_role"] = string(*updates.AssignedRole)
	}

	if updates.Status != nil {
		values["status"] = string(*updates.Status)
	}

	if updates.Link != nil {
		values["link"] = *updates.Link
	}

	var task Task

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		if len(values) == 0 {
			return nil
		}

		if err := tx.Model(&task).Updates(values).Error; err != nil {
			return errors.WithStack(err)
		}

		if err := tx.First(&task, "id = ?", string(id)).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedTask{&task}, nil
}

// DeleteTask implements port.TaskStore.
func (s *Store) DeleteTask(ctx context.Context, id model.TaskID) error {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Receipt{}, "task_id = ?", string(id)).Error; err != nil {
			return errors.WithStack(err)
		}

		res := tx.Delete(&Task{}, "id = ?", string(id))
		if res.Error != nil {
			return errors.WithStack(res.Error)
		}

		if res.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		return nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// QueryTasks implements port.TaskStore.
func (s *Store) QueryTasks(ctx context.Context, opts port.QueryTasksOptions) iter.Seq2[model.Task, error] {
	return func(yield func(model.Task, error) bool) {
		db, err := s.getDatabase(ctx)
		if err != nil {
			yield(nil, errors.WithStack(err))
			return
		}

		query := db.Model(&Task{})

		if opts.AssignedRole != nil {
			query = query.Where("assigned_role = ?", string(*opts.AssignedRole))
		}

		var tasks []*Task

		if err := query.Find(&tasks).Error; err != nil {
			yield(nil, errors.WithStack(err))
			return
		}

		for _, task := range tasks {
			if !yield(&wrappedTask{task}, nil) {
				return
			}
		}
	}
}

// GetReceipt implements port.TaskStore.
func (s *Store) GetReceipt(ctx context.Context, taskID model.TaskID, member model.MemberID) (model.Receipt, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var receipt Receipt

	err = db.First(&receipt, "task_id = ? and member_id = ?", string(taskID), string(member)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	return &wrappedReceipt{&receipt}, nil
}

// CreateReceipt implements port.TaskStore.
func (s *Store) CreateReceipt(ctx context.Context, taskID model.TaskID, member model.MemberID, userName string, receivedAt time.Time) (model.Receipt, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	receipt := &Receipt{
		TaskID:     string(taskID),
		Member:     string(member),
		UserName:   userName,
		Status:     string(model.ReceiptStatusPending),
		ReceivedAt: receivedAt.Unix(),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var task Task

		if err := tx.First(&task, "id = ?", string(taskID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		var existing Receipt

		err := tx.First(&existing, "task_id = ? and member_id = ?", string(taskID), string(member)).Error
		if err == nil {
			return errors.WithStack(port.ErrAlreadyExists)
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.WithStack(err)
		}

		if err := tx.Create(receipt).Error; err != nil {
			// The composite primary key guards the concurrent-receive race
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errors.WithStack(port.ErrAlreadyExists)
			}

			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedReceipt{receipt}, nil
}

// UpdateReceipt implements port.TaskStore.
func (s *Store) UpdateReceipt(ctx context.Context, taskID model.TaskID, member model.MemberID, updates port.ReceiptUpdates) (model.Receipt, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	values := map[string]any{}

	if updates.Status != nil {
		values["status"] = string(*updates.Status)
	}

	if updates.SubmissionLink != nil {
		values["submission_link"] = *updates.SubmissionLink
	}

	if updates.SubmittedAt != nil {
		values["submitted_at"] = updates.SubmittedAt.Unix()
	}

	var receipt Receipt

	err = db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&receipt, "task_id = ? and member_id = ?", string(taskID), string(member)).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		if len(values) == 0 {
			return nil
		}

		if err := tx.Model(&receipt).Updates(values).Error; err != nil {
			return errors.WithStack(err)
		}

		err = tx.First(&receipt, "task_id = ? and member_id = ?", string(taskID), string(member)).Error
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedReceipt{&receipt}, nil
}

// ListReceipts implements port.TaskStore.
func (s *Store) ListReceipts(ctx context.Context, taskID model.TaskID) ([]model.Receipt, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var task Task

	if err := db.First(&task, "id = ?", string(taskID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	var receipts []*Receipt

	if err := db.Find(&receipts, "task_id = ?", string(taskID)).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	wrapped := make([]model.Receipt, 0, len(receipts))
	for _, r := range receipts {
		wrapped = append(wrapped, &wrappedReceipt{r})
	}

	return wrapped, nil
}

// QuerySubmissions implements port.TaskStore.
func (s *Store) QuerySubmissions(ctx context.Context) iter.Seq2[model.Submission, error] {
	return func(yield func(model.Submission, error) bool) {
		db, err := s.getDatabase(ctx)
		if err != nil {
			yield(model.Submission{}, errors.WithStack(err))
			return
		}

		type row struct {
			TaskID         string
			TaskName       string
			UserName       string
			SubmissionLink string
		}

		var rows []row

		err = db.Model(&Receipt{}).
			Select("receivers.task_id, tasks.task_name, receivers.user_name, receivers.submission_link").
			Joins("join tasks on tasks.id = receivers.task_id").
			Where("receivers.status = ?", string(model.ReceiptStatusCompleted)).
			Scan(&rows).Error
		if err != nil {
			yield(model.Submission{}, errors.WithStack(err))
			return
		}

		for _, r := range rows {
			submission := model.Submission{
				TaskID:   model.TaskID(r.TaskID),
				TaskName: r.TaskName,
				UserName: r.UserName,
				Link:     r.SubmissionLink,
			}

			if !yield(submission, nil) {
				return
			}
		}
	}
}

var _ port.TaskStore = &Store{}

func createGetDatabase(db *gorm.DB) func(ctx context.Context) (*gorm.DB, error) {
	var (
		migrateOnce sync.Once
		migrateErr  error
	)

	return func(ctx context.Context) (*gorm.DB, error) {
		migrateOnce.Do(func() {
			models := []any{
				&Task{},
				&Receipt{},
			}

			if err := db.AutoMigrate(models...); err != nil {
				migrateErr = errors.WithStack(err)
				return
			}
		})
		if migrateErr != nil {
			return nil, errors.WithStack(migrateErr)
		}

		return db, nil
	}
}
