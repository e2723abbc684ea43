package api

import (
	"net/http"

	"github.com/bornholm/taskbot/internal/core/model"
	"github.com/bornholm/taskbot/internal/core/service"
	"github.com/bornholm/taskbot/internal/http/middleware/authz"
)

type Handler struct {
	taskManager *service.TaskManager
	mux         *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(taskManager *service.TaskManager, adminRoles []model.RoleRef, privilegedRoles []model.RoleRef) *Handler {
	h := &Handler{
		taskManager: taskManager,
		mux:         &http.ServeMux{},
	}

	assertCaller := authz.Middleware(nil, authz.IsAuthenticated)
	assertAdmin := authz.Middleware(nil, authz.HasAny(adminRoles...))
	assertPrivileged := authz.Middleware(nil, authz.HasAny(privilegedRoles...))

	h.mux.Handle("POST /tasks", assertAdmin(http.HandlerFunc(h.handleCreateTask)))
	h.mux.Handle("GET /tasks", assertCaller(http.HandlerFunc(h.handleListTasks)))
	h.mux.Handle("GET /tasks/{taskID}", assertCaller(http.HandlerFunc(h.handleShowTask)))
	h.mux.Handle("PATCH /tasks/{taskID}", assertAdmin(http.HandlerFunc(h.handleUpdateTask)))
	h.mux.Handle("PUT /tasks/{taskID}/role", assertAdmin(http.HandlerFunc(h.handleAssignTask)))
	h.mux.Handle("POST /tasks/{taskID}/complete", assertAdmin(http.HandlerFunc(h.handleCompleteTask)))
	h.mux.Handle("DELETE /tasks/{taskID}", assertAdmin(http.HandlerFunc(h.handleDeleteTask)))

	h.mux.Handle("POST /tasks/{taskID}/receipts", assertCaller(http.HandlerFunc(h.handleReceiveTask)))
	h.mux.Handle("POST /tasks/{taskID}/submission", assertCaller(http.HandlerFunc(h.handleSubmitTask)))

	h.mux.Handle("GET /tasks/{taskID}/receipts", assertPrivileged(http.HandlerFunc(h.handleListReceipts)))
	h.mux.Handle("GET /submissions", assertPrivileged(http.HandlerFunc(h.handleListSubmissions)))

	return h
}

var _ http.Handler = &Handler{}
