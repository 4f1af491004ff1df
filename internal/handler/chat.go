package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/chat"
)

// PostChat handles /chat. Only POST is allowed; the body is {"message": "..."}
// and the reply is {"message": "..."}.
func (s *Server) PostChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, requestBody("Method not allowed"))
		return
	}

	var body api.ChatRequest
	if err := decodeBody(r, &body); err != nil {
		writeBodyError(w, err)
		return
	}
	if strings.TrimSpace(body.Message) == "" {
		writeJSON(w, http.StatusBadRequest, requestBody("Message is required"))
		return
	}
	if s.deps.Chat == nil || !s.deps.Chat.Configured() {
		writeJSON(w, http.StatusInternalServerError, internalBody(chat.ErrNotConfigured.Error()))
		return
	}

	reply, err := s.deps.Chat.Complete(r.Context(), body.Message)
	if err != nil {
		if errors.Is(err, chat.ErrNotConfigured) {
			writeJSON(w, http.StatusInternalServerError, internalBody(err.Error()))
			return
		}
		slog.ErrorContext(r.Context(), "chat completion failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, internalBody("An error occurred while processing your request"))
		return
	}
	writeJSON(w, http.StatusOK, api.ChatResponse{Message: reply})
}
