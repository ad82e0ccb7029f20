package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/safeplace/safeplace-server/internal/application"
	"github.com/safeplace/safeplace-server/internal/domain"
)

type entryResponse struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Mood      int       `json:"mood"`
	CreatedAt time.Time `json:"createdAt"`
}

func toEntryResponse(e domain.Entry) entryResponse {
	return entryResponse{
		ID:        e.EntryID,
		Text:      e.Body,
		Mood:      e.Mood,
		CreatedAt: e.CreatedAt,
	}
}

func (h *Handler) addEntry(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req application.JournalRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "add_entry", err)
		return
	}

	entry, err := h.service.AddEntry(r.Context(), claims.UserID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "add_entry", err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := parseIntDefault(r.URL.Query().Get("limit"), 0)
	entries, err := h.service.ListEntries(r.Context(), claims.UserID, limit)
	if err != nil {
		writeMappedError(r.Context(), w, "list_entries", err)
		return
	}

	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) moodTrend(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	trend, err := h.service.MoodTrend(r.Context(), claims.UserID)
	if err != nil {
		writeMappedError(r.Context(), w, "mood_trend", err)
		return
	}

	writeJSON(w, http.StatusOK, trend)
}
