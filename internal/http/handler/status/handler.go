package status

import (
	"encoding/json"
	"net/http"
)

// Handler answers a static liveness message, keeping the service reachable
// for uptime monitors.
type Handler struct {
	message string
}

func NewHandler(message string) *Handler {
	return &Handler{message: message}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	json.NewEncoder(w).Encode(map[string]string{
		"message": h.message,
	})
}

var _ http.Handler = &Handler{}
