package service

import (
	"context"
	"testing"
	"time"

	"github.com/bornholm/taskbot/internal/adapter/memory"
	"github.com/bornholm/taskbot/internal/core/model"
	"github.com/bornholm/taskbot/internal/core/port"
	"github.com/pkg/errors"
)

func newTestManager(t *testing.T) *TaskManager {
	t.Helper()

	store := memory.NewTaskStore()
	roles := memory.NewRoleDirectory(map[model.RoleRef]string{
		"role-core":  "Core Team",
		"role-admin": "Admins",
	})

	return NewTaskManager(store, roles,
		WithTaskManagerPrivilegedRoles("role-admin"),
		WithTaskManagerNow(func() time.Time {
			return time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
		}),
	)
}

func TestTaskManagerCreate(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	task, err := manager.Create(ctx, "Prepare contest", "Draft the problem set", "2025-01-15", "https://example.net/contest")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC).Unix(), task.DueDate().Unix(); e != g {
		t.Errorf("task.DueDate().Unix(): expected %d, got %d", e, g)
	}

	if e, g := model.TaskStatusPending, task.Status(); e != g {
		t.Errorf("task.Status(): expected %s, got %s", e, g)
	}
}

func TestTaskManagerCreateInvalidDate(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	if _, err := manager.Create(ctx, "Broken", "", "2024-13-01", ""); !errors.Is(err, model.ErrInvalidDateFormat) {
		t.Errorf("Create(): expected model.ErrInvalidDateFormat, got %v", err)
	}

	// Nothing must have been persisted
	count := 0
	for _, err := range manager.List(ctx, nil) {
		if err != nil {
			t.Fatalf("%+v", err)
		}
		count++
	}

	if e, g := 0, count; e != g {
		t.Errorf("count: expected %d, got %d", e, g)
	}
}

func TestTaskManagerAssignLastWriteWins(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	task, err := manager.Create(ctx, "Weekly digest", "", "2025-02-01", "")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if _, err := manager.Assign(ctx, task.ID(), "role-core"); err != nil {
		t.Fatalf("%+v", err)
	}

	updated, err := manager.Assign(ctx, task.ID(), "role-admin")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := model.RoleRef("role-admin"), updated.AssignedRole(); e != g {
		t.Errorf("updated.AssignedRole(): expected %q, got %q", e, g)
	}

	if _, err := manager.Assign(ctx, "does-not-exist", "role-core"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("Assign(): expected port.ErrNotFound, got %v", err)
	}
}

func TestTaskManagerCompleteIdempotent(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	if err := manager.Complete(ctx, "does-not-exist"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("Complete(): expected port.ErrNotFound, got %v", err)
	}

	task, err := manager.Create(ctx, "Archive channel", "", "2025-02-01", "")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	for range 2 {
		if err := manager.Complete(ctx, task.ID()); err != nil {
			t.Fatalf("%+v", err)
		}
	}

	found, err := manager.Get(ctx, task.ID())
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := model.TaskStatusCompleted, found.Status(); e != g {
		t.Errorf("found.Status(): expected %s, got %s", e, g)
	}
}

func TestTaskManagerUpdate(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	task, err := manager.Create(ctx, "Weekly digest", "Old description", "2025-02-01", "")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	description := "New description"
	dueDate := "2025-03-01"

	updated, err := manager.Update(ctx, task.ID(), TaskChanges{
		Description: &description,
		DueDateText: &dueDate,
	})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := description, updated.Description(); e != g {
		t.Errorf("updated.Description(): expected %q, got %q", e, g)
	}

	if e, g := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).Unix(), updated.DueDate().Unix(); e != g {
		t.Errorf("updated.DueDate().Unix(): expected %d, got %d", e, g)
	}

	if _, err := manager.Update(ctx, task.ID(), TaskChanges{}); !errors.Is(err, ErrNothingToUpdate) {
		t.Errorf("Update(): expected ErrNothingToUpdate, got %v", err)
	}

	badDate := "not-a-date"

	if _, err := manager.Update(ctx, task.ID(), TaskChanges{DueDateText: &badDate}); !errors.Is(err, model.ErrInvalidDateFormat) {
		t.Errorf("Update(): expected model.ErrInvalidDateFormat, got %v", err)
	}

	// The failed update must not have touched the task
	found, err := manager.Get(ctx, task.ID())
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).Unix(), found.DueDate().Unix(); e != g {
		t.Errorf("found.DueDate().Unix(): expected %d, got %d", e, g)
	}
}

func TestTaskManagerListFilter(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	first, err := manager.Create(ctx, "First", "", "2025-02-01", "")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if _, err := manager.Create(ctx, "Unassigned", "", "2025-02-01", ""); err != nil {
		t.Fatalf("%+v", err)
	}

	if _, err := manager.Assign(ctx, first.ID(), "role-core"); err != nil {
		t.Fatalf("%+v", err)
	}

	role := model.RoleRef("role-core")

	filtered := make([]TaskListing, 0)
	for listing, err := range manager.List(ctx, &role) {
		if err != nil {
			t.Fatalf("%+v", err)
		}
		filtered = append(filtered, listing)
	}

	if e, g := 1, len(filtered); e != g {
		t.Fatalf("len(filtered): expected %d, got %d", e, g)
	}

	if e, g := "Core Team", filtered[0].RoleName; e != g {
		t.Errorf("filtered[0].RoleName: expected %q, got %q", e, g)
	}

	all := make([]TaskListing, 0)
	for listing, err := range manager.List(ctx, nil) {
		if err != nil {
			t.Fatalf("%+v", err)
		}
		all = append(all, listing)
	}

	if e, g := 2, len(all); e != g {
		t.Fatalf("len(all): expected %d, got %d", e, g)
	}

	if e, g := UnassignedRoleName, all[1].RoleName; e != g {
		t.Errorf("all[1].RoleName: expected %q, got %q", e, g)
	}
}

func TestTaskManagerReceiveAuthorization(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	task, err := manager.Create(ctx, "Collect forms", "", "2025-02-01", "")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if _, err := manager.Assign(ctx, task.ID(), "role-core"); err != nil {
		t.Fatalf("%+v", err)
	}

	outsider := &model.Caller{Member: "member-1", DisplayName: "Mallory", Roles: []model.RoleRef{"role-other"}}

	if _, err := manager.Receive(ctx, task.ID(), outsider); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Receive(): expected ErrUnauthorized, got %v", err)
	}

	assignee := &model.Caller{Member: "member-2", DisplayName: "Alice", Roles: []model.RoleRef{"role-core"}}

	outcome, err := manager.Receive(ctx, task.ID(), assignee)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := ReceiveOutcomeReceived, outcome; e != g {
		t.Errorf("outcome: expected %s, got %s", e, g)
	}

	// Privileged roles may receive regardless of the assigned role
	admin := &model.Caller{Member: "member-3", DisplayName: "Bob", Roles: []model.RoleRef{"role-admin"}}

	if _, err := manager.Receive(ctx, task.ID(), admin); err != nil {
		t.Fatalf("%+v", err)
	}
}

func TestTaskManagerReceiveTwice(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	task, err := manager.Create(ctx, "Collect forms", "", "2025-02-01", "")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	caller := &model.Caller{Member: "member-1", DisplayName: "Alice", Roles: []model.RoleRef{"role-admin"}}

	outcome, err := manager.Receive(ctx, task.ID(), caller)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := ReceiveOutcomeReceived, outcome; e != g {
		t.Errorf("outcome: expected %s, got %s", e, g)
	}

	outcome, err = manager.Receive(ctx, task.ID(), caller)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := ReceiveOutcomeAlreadyReceived, outcome; e != g {
		t.Errorf("outcome: expected %s, got %s", e, g)
	}

	summary, err := manager.Receipts(ctx, task.ID())
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := 1, summary.Count; e != g {
		t.Errorf("summary.Count: expected %d, got %d", e, g)
	}
}

func TestTaskManagerSubmit(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	task, err := manager.Create(ctx, "Collect forms", "", "2025-02-01", "")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if err := manager.Submit(ctx, task.ID(), "member-1", "http://x"); !errors.Is(err, ErrReceiptRequired) {
		t.Errorf("Submit(): expected ErrReceiptRequired, got %v", err)
	}

	caller := &model.Caller{Member: "member-1", DisplayName: "Alice", Roles: []model.RoleRef{"role-admin"}}

	if _, err := manager.Receive(ctx, task.ID(), caller); err != nil {
		t.Fatalf("%+v", err)
	}

	if err := manager.Submit(ctx, task.ID(), "member-1", "http://x"); err != nil {
		t.Fatalf("%+v", err)
	}

	if err := manager.Submit(ctx, task.ID(), "member-1", "http://x"); !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("Submit(): expected ErrAlreadySubmitted, got %v", err)
	}

	submissions := make([]model.Submission, 0)
	for submission, err := range manager.Submissions(ctx) {
		if err != nil {
			t.Fatalf("%+v", err)
		}
		submissions = append(submissions, submission)
	}

	if e, g := 1, len(submissions); e != g {
		t.Fatalf("len(submissions): expected %d, got %d", e, g)
	}

	if e, g := "http://x", submissions[0].Link; e != g {
		t.Errorf("submissions[0].Link: expected %q, got %q", e, g)
	}
}

func TestTaskManagerDelete(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	task, err := manager.Create(ctx, "Doomed", "", "2025-02-01", "")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	caller := &model.Caller{Member: "member-1", DisplayName: "Alice", Roles: []model.RoleRef{"role-admin"}}

	if _, err := manager.Receive(ctx, task.ID(), caller); err != nil {
		t.Fatalf("%+v", err)
	}

	if err := manager.Delete(ctx, task.ID()); err != nil {
		t.Fatalf("%+v", err)
	}

	if err := manager.Complete(ctx, task.ID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("Complete(): expected port.ErrNotFound, got %v", err)
	}

	if _, err := manager.Assign(ctx, task.ID(), "role-core"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("Assign(): expected port.ErrNotFound, got %v", err)
	}

	if _, err := manager.Receive(ctx, task.ID(), caller); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("Receive(): expected port.ErrNotFound, got %v", err)
	}

	if err := manager.Submit(ctx, task.ID(), "member-1", "http://x"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("Submit(): expected port.ErrNotFound, got %v", err)
	}

	if _, err := manager.Receipts(ctx, task.ID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("Receipts(): expected port.ErrNotFound, got %v", err)
	}

	if err := manager.Delete(ctx, task.ID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("Delete(): expected port.ErrNotFound, got %v", err)
	}
}

func TestTaskManagerEndToEnd(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	task, err := manager.Create(ctx, "Contest", "Prepare the January contest", "2025-01-15", "")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if _, err := manager.Assign(ctx, task.ID(), "role-core"); err != nil {
		t.Fatalf("%+v", err)
	}

	caller := &model.Caller{Member: "member-1", DisplayName: "Alice", Roles: []model.RoleRef{"role-core"}}

	outcome, err := manager.Receive(ctx, task.ID(), caller)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := ReceiveOutcomeReceived, outcome; e != g {
		t.Errorf("outcome: expected %s, got %s", e, g)
	}

	outcome, err = manager.Receive(ctx, task.ID(), caller)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := ReceiveOutcomeAlreadyReceived, outcome; e != g {
		t.Errorf("outcome: expected %s, got %s", e, g)
	}

	if err := manager.Submit(ctx, task.ID(), caller.Member, "http://x"); err != nil {
		t.Fatalf("%+v", err)
	}

	summary, err := manager.Receipts(ctx, task.ID())
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := 1, summary.Count; e != g {
		t.Fatalf("summary.Count: expected %d, got %d", e, g)
	}

	if e, g := "Alice", summary.Names[0]; e != g {
		t.Errorf("summary.Names[0]: expected %q, got %q", e, g)
	}
}
