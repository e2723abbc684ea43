package testsuite

import (
	"context"
	"iter"
	"testing"
	"time"

	"github.com/bornholm/taskbot/internal/core/model"
	"github.com/bornholm/taskbot/internal/core/port"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// TestTaskStore runs the repository persistence contract against the store
// returned by factory. Every adapter is expected to pass it unchanged.
func TestTaskStore(t *testing.T, factory func(t *testing.T) (port.TaskStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.TaskStore) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "CreateAndGetTask",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				dueDate := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

				task, err := store.CreateTask(ctx, port.TaskAttrs{
					Name:        "Prepare contest",
					Description: "Draft the problem set",
					DueDate:     dueDate,
					Link:        "https://example.net/contest",
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if task.ID() == "" {
					t.Errorf("task.ID() should not be empty")
				}

				if e, g := model.TaskStatusPending, task.Status(); e != g {
					t.Errorf("task.Status(): expected %s, got %s", e, g)
				}

				if e, g := model.RoleRef(""), task.AssignedRole(); e != g {
					t.Errorf("task.AssignedRole(): expected %q, got %q", e, g)
				}

				found, err := store.GetTaskByID(ctx, task.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				t.Logf("found: %s", spew.Sdump(found))

				if e, g := "Prepare contest", found.Name(); e != g {
					t.Errorf("found.Name(): expected %q, got %q", e, g)
				}

				if e, g := "Draft the problem set", found.Description(); e != g {
					t.Errorf("found.Description(): expected %q, got %q", e, g)
				}

				if e, g := dueDate.Unix(), found.DueDate().Unix(); e != g {
					t.Errorf("found.DueDate().Unix(): expected %d, got %d", e, g)
				}

				if e, g := "https://example.net/contest", found.Link(); e != g {
					t.Errorf("found.Link(): expected %q, got %q", e, g)
				}

				return nil
			},
		},
		{
			Name: "GetMissingTask",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				if _, err := store.GetTaskByID(ctx, "does-not-exist"); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("GetTaskByID(): expected port.ErrNotFound, got %v", err)
				}

				return nil
			},
		},
		{
			Name: "AssignedRoleLastWriteWins",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				task, err := createTask(ctx, store, "Weekly digest")
				if err != nil {
					return errors.WithStack(err)
				}

				roleA := model.RoleRef("role-a")
				roleB := model.RoleRef("role-b")

				if _, err := store.UpdateTask(ctx, task.ID(), port.TaskUpdates{AssignedRole: &roleA}); err != nil {
					return errors.WithStack(err)
				}

				updated, err := store.UpdateTask(ctx, task.ID(), port.TaskUpdates{AssignedRole: &roleB})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := roleB, updated.AssignedRole(); e != g {
					t.Errorf("updated.AssignedRole(): expected %q, got %q", e, g)
				}

				return nil
			},
		},
		{
			Name: "UpdateStatusIdempotent",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				task, err := createTask(ctx, store, "Archive channel")
				if err != nil {
					return errors.WithStack(err)
				}

				completed := model.TaskStatusCompleted

				for range 2 {
					updated, err := store.UpdateTask(ctx, task.ID(), port.TaskUpdates{Status: &completed})
					if err != nil {
						return errors.WithStack(err)
					}

					if e, g := model.TaskStatusCompleted, updated.Status(); e != g {
						t.Errorf("updated.Status(): expected %s, got %s", e, g)
					}
				}

				return nil
			},
		},
		{
			Name: "UpdateMissingTask",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				role := model.RoleRef("role-a")

				if _, err := store.UpdateTask(ctx, "does-not-exist", port.TaskUpdates{AssignedRole: &role}); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("UpdateTask(): expected port.ErrNotFound, got %v", err)
				}

				return nil
			},
		},
		{
			Name: "QueryTasksByAssignedRole",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				roleA := model.RoleRef("role-a")
				roleB := model.RoleRef("role-b")

				first, err := createTask(ctx, store, "First")
				if err != nil {
					return errors.WithStack(err)
				}

				second, err := createTask(ctx, store, "Second")
				if err != nil {
					return errors.WithStack(err)
				}

				if _, err := createTask(ctx, store, "Unassigned"); err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.UpdateTask(ctx, first.ID(), port.TaskUpdates{AssignedRole: &roleA}); err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.UpdateTask(ctx, second.ID(), port.TaskUpdates{AssignedRole: &roleB}); err != nil {
					return errors.WithStack(err)
				}

				filtered, err := collectTasks(store.QueryTasks(ctx, port.QueryTasksOptions{AssignedRole: &roleA}))
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(filtered); e != g {
					t.Fatalf("len(filtered): expected %d, got %d", e, g)
				}

				if e, g := first.ID(), filtered[0].ID(); e != g {
					t.Errorf("filtered[0].ID(): expected %s, got %s", e, g)
				}

				all, err := collectTasks(store.QueryTasks(ctx, port.QueryTasksOptions{}))
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 3, len(all); e != g {
					t.Errorf("len(all): expected %d, got %d", e, g)
				}

				return nil
			},
		},
		{
			Name: "ReceiptLifecycle",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				task, err := createTask(ctx, store, "Collect forms")
				if err != nil {
					return errors.WithStack(err)
				}

				receivedAt := time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)

				receipt, err := store.CreateReceipt(ctx, task.ID(), "member-1", "Alice", receivedAt)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := model.ReceiptStatusPending, receipt.Status(); e != g {
					t.Errorf("receipt.Status(): expected %s, got %s", e, g)
				}

				if e, g := "Alice", receipt.UserName(); e != g {
					t.Errorf("receipt.UserName(): expected %q, got %q", e, g)
				}

				if e, g := receivedAt.Unix(), receipt.ReceivedAt().Unix(); e != g {
					t.Errorf("receipt.ReceivedAt().Unix(): expected %d, got %d", e, g)
				}

				if _, err := store.CreateReceipt(ctx, task.ID(), "member-1", "Alice", receivedAt); !errors.Is(err, port.ErrAlreadyExists) {
					t.Errorf("CreateReceipt(): expected port.ErrAlreadyExists, got %v", err)
				}

				if _, err := store.GetReceipt(ctx, task.ID(), "member-2"); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("GetReceipt(): expected port.ErrNotFound, got %v", err)
				}

				completed := model.ReceiptStatusCompleted
				link := "https://example.net/work"
				submittedAt := receivedAt.Add(time.Hour)

				updated, err := store.UpdateReceipt(ctx, task.ID(), "member-1", port.ReceiptUpdates{
					Status:         &completed,
					SubmissionLink: &link,
					SubmittedAt:    &submittedAt,
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := model.ReceiptStatusCompleted, updated.Status(); e != g {
					t.Errorf("updated.Status(): expected %s, got %s", e, g)
				}

				if e, g := link, updated.SubmissionLink(); e != g {
					t.Errorf("updated.SubmissionLink(): expected %q, got %q", e, g)
				}

				if e, g := submittedAt.Unix(), updated.SubmittedAt().Unix(); e != g {
					t.Errorf("updated.SubmittedAt().Unix(): expected %d, got %d", e, g)
				}

				receipts, err := store.ListReceipts(ctx, task.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(receipts); e != g {
					t.Errorf("len(receipts): expected %d, got %d", e, g)
				}

				return nil
			},
		},
		{
			Name: "ReceiptOnMissingTask",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				now := time.Now()

				if _, err := store.CreateReceipt(ctx, "does-not-exist", "member-1", "Alice", now); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("CreateReceipt(): expected port.ErrNotFound, got %v", err)
				}

				if _, err := store.ListReceipts(ctx, "does-not-exist"); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("ListReceipts(): expected port.ErrNotFound, got %v", err)
				}

				return nil
			},
		},
		{
			Name: "DeleteTaskCascadesReceipts",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				task, err := createTask(ctx, store, "Doomed")
				if err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.CreateReceipt(ctx, task.ID(), "member-1", "Alice", time.Now()); err != nil {
					return errors.WithStack(err)
				}

				if err := store.DeleteTask(ctx, task.ID()); err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.GetTaskByID(ctx, task.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("GetTaskByID(): expected port.ErrNotFound, got %v", err)
				}

				if _, err := store.ListReceipts(ctx, task.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("ListReceipts(): expected port.ErrNotFound, got %v", err)
				}

				if err := store.DeleteTask(ctx, task.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("DeleteTask(): expected port.ErrNotFound, got %v", err)
				}

				return nil
			},
		},
		{
			Name: "QuerySubmissions",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				first, err := createTask(ctx, store, "First")
				if err != nil {
					return errors.WithStack(err)
				}

				second, err := createTask(ctx, store, "Second")
				if err != nil {
					return errors.WithStack(err)
				}

				now := time.Now()
				completed := model.ReceiptStatusCompleted

				if _, err := store.CreateReceipt(ctx, first.ID(), "member-1", "Alice", now); err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.CreateReceipt(ctx, first.ID(), "member-2", "Bob", now); err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.CreateReceipt(ctx, second.ID(), "member-1", "Alice", now); err != nil {
					return errors.WithStack(err)
				}

				link := "https://example.net/done"

				if _, err := store.UpdateReceipt(ctx, first.ID(), "member-1", port.ReceiptUpdates{
					Status:         &completed,
					SubmissionLink: &link,
					SubmittedAt:    &now,
				}); err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.UpdateReceipt(ctx, second.ID(), "member-1", port.ReceiptUpdates{
					Status:         &completed,
					SubmissionLink: &link,
					SubmittedAt:    &now,
				}); err != nil {
					return errors.WithStack(err)
				}

				submissions, err := collectSubmissions(store.QuerySubmissions(ctx))
				if err != nil {
					return errors.WithStack(err)
				}

				t.Logf("submissions: %s", spew.Sdump(submissions))

				if e, g := 2, len(submissions); e != g {
					t.Fatalf("len(submissions): expected %d, got %d", e, g)
				}

				for _, s := range submissions {
					if e, g := "Alice", s.UserName; e != g {
						t.Errorf("s.UserName: expected %q, got %q", e, g)
					}

					if e, g := link, s.Link; e != g {
						t.Errorf("s.Link: expected %q, got %q", e, g)
					}
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			store, err := factory(t)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			ctx := context.Background()

			if err := tc.Run(t, ctx, store); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}
		})
	}
}

func createTask(ctx context.Context, store port.TaskStore, name string) (model.Task, error) {
	task, err := store.CreateTask(ctx, port.TaskAttrs{
		Name:        name,
		Description: "description of " + name,
		DueDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return task, nil
}

func collectTasks(seq iter.Seq2[model.Task, error]) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	for task, err := range seq {
		if err != nil {
			return nil, errors.WithStack(err)
		}

		tasks = append(tasks, task)
	}

	return tasks, nil
}

func collectSubmissions(seq iter.Seq2[model.Submission, error]) ([]model.Submission, error) {
	submissions := make([]model.Submission, 0)
	for submission, err := range seq {
		if err != nil {
			return nil, errors.WithStack(err)
		}

		submissions = append(submissions, submission)
	}

	return submissions, nil
}
