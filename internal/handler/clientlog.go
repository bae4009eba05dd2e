package handler

import (
	"log/slog"
	"net/http"

	"github.com/campusreg/campusreg-go/internal/model"
)

// ClientLogHandler ingests log lines reported by the browser.
type ClientLogHandler struct{}

// NewClientLogHandler creates a new ClientLogHandler.
func NewClientLogHandler() *ClientLogHandler {
	return &ClientLogHandler{}
}

// HandleClientLog handles POST /api/client-logs requests. Public: the front
// end reports errors before any session exists.
func (h *ClientLogHandler) HandleClientLog(w http.ResponseWriter, r *http.Request) {
	var req model.ClientLogRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("message is required"))
		return
	}

	slog.Log(r.Context(), clientLogLevel(req.Level), "client log", "message", req.Message)
	writeJSON(w, http.StatusOK, map[string]any{})
}

func clientLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
