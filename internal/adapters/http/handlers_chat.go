package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/safeplace/safeplace-server/internal/application"
	"github.com/safeplace/safeplace-server/internal/domain"
)

type turnResponse struct {
	ID        uuid.UUID `json:"id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func toTurnResponses(turns []domain.Turn) []turnResponse {
	out := make([]turnResponse, 0, len(turns))
	for _, t := range turns {
		out = append(out, turnResponse{
			ID:        t.TurnID,
			Sender:    string(t.Sender),
			Text:      t.Body,
			CreatedAt: t.CreatedAt,
		})
	}
	return out
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req application.ChatRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "send_message", err)
		return
	}

	res, err := h.service.SendMessage(r.Context(), claims.UserID, req.Message)
	if err != nil {
		writeMappedError(r.Context(), w, "send_message", err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) chatHistory(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := parseIntDefault(r.URL.Query().Get("limit"), 0)
	turns, err := h.service.History(r.Context(), claims.UserID, limit)
	if err != nil {
		writeMappedError(r.Context(), w, "chat_history", err)
		return
	}

	writeJSON(w, http.StatusOK, toTurnResponses(turns))
}
