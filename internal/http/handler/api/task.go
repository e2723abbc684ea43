package api

import (
	"encoding/json"
	"net/http"

	"github.com/bornholm/taskbot/internal/core/model"
	"github.com/bornholm/taskbot/internal/core/service"
	httpCtx "github.com/bornholm/taskbot/internal/http/context"
)

func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.taskManager.Create(ctx, req.Name, req.Description, req.DueDate, req.Link)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	sendJSON(w, r, http.StatusCreated, CreateTaskResponse{Task: fromTask(task)})
}

func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var role *model.RoleRef
	if raw := r.URL.Query().Get("role"); raw != "" {
		ref := model.RoleRef(raw)
		role = &ref
	}

	res := ListTasksResponse{
		Tasks: make([]*Task, 0),
	}

	for listing, err := range h.taskManager.List(ctx, role) {
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		task := fromTask(listing.Task)
		task.RoleName = listing.RoleName

		res.Tasks = append(res.Tasks, task)
	}

	sendJSON(w, r, http.StatusOK, res)
}

func (h *Handler) handleShowTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := model.TaskID(r.PathValue("taskID"))

	task, err := h.taskManager.Get(ctx, taskID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	roleName, err := h.taskManager.RoleName(ctx, task.AssignedRole())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	res := fromTask(task)
	res.RoleName = roleName

	sendJSON(w, r, http.StatusOK, ShowTaskResponse{Task: res})
}

func (h *Handler) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := model.TaskID(r.PathValue("taskID"))

	var req UpdateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.taskManager.Update(ctx, taskID, service.TaskChanges{
		Description: req.Description,
		DueDateText: req.DueDate,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	sendJSON(w, r, http.StatusOK, UpdateTaskResponse{Task: fromTask(task)})
}

func (h *Handler) handleAssignTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := model.TaskID(r.PathValue("taskID"))

	var req AssignTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.taskManager.Assign(ctx, taskID, model.RoleRef(req.Role))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	sendJSON(w, r, http.StatusOK, AssignTaskResponse{Task: fromTask(task)})
}

func (h *Handler) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := model.TaskID(r.PathValue("taskID"))

	if err := h.taskManager.Complete(ctx, taskID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := model.TaskID(r.PathValue("taskID"))

	if err := h.taskManager.Delete(ctx, taskID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleReceiveTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := model.TaskID(r.PathValue("taskID"))
	caller := httpCtx.Caller(ctx)

	outcome, err := h.taskManager.Receive(ctx, taskID, caller)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	sendJSON(w, r, http.StatusOK, ReceiveTaskResponse{Outcome: outcome})
}

func (h *Handler) handleSubmitTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := model.TaskID(r.PathValue("taskID"))
	caller := httpCtx.Caller(ctx)

	var req SubmitTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.taskManager.Submit(ctx, taskID, caller.Member, req.Link); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListReceipts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := model.TaskID(r.PathValue("taskID"))

	summary, err := h.taskManager.Receipts(ctx, taskID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	sendJSON(w, r, http.StatusOK, ListReceiptsResponse{
		Count: summary.Count,
		Names: summary.Names,
	})
}

func (h *Handler) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res := ListSubmissionsResponse{
		Submissions: make([]Submission, 0),
	}

	for submission, err := range h.taskManager.Submissions(ctx) {
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		res.Submissions = append(res.Submissions, Submission{
			TaskID:   string(submission.TaskID),
			TaskName: submission.TaskName,
			UserName: submission.UserName,
			Link:     submission.Link,
		})
	}

	sendJSON(w, r, http.StatusOK, res)
}
