package httpx

import (
	"net/http"

	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	"github.com/APVS-BRO/ai-careers-hub/internal/service"
)

// HistoryHandlers provides HTTP handlers for history records.
type HistoryHandlers struct {
	Svc *service.HistoryService
}

// Save handles POST /api/history. The record is owned by the authenticated
// user when a session is present.
func (h *HistoryHandlers) Save(w http.ResponseWriter, r *http.Request) {
	var req model.SaveHistoryRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	record, err := h.Svc.Save(r.Context(), &req, SessionEmail(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, record)
}

// ReplaceContent handles PUT /api/history.
func (h *HistoryHandlers) ReplaceContent(w http.ResponseWriter, r *http.Request) {
	var req model.ReplaceContentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	record, err := h.Svc.ReplaceContent(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, record)
}

// Get handles GET /api/history. With ?recordId it fetches one record (the
// record ID acts as the capability, no auth required); without it, it lists
// the authenticated user's records newest first.
func (h *HistoryHandlers) Get(w http.ResponseWriter, r *http.Request) {
	if recordID := r.URL.Query().Get("recordId"); recordID != "" {
		record, err := h.Svc.GetByRecordID(r.Context(), recordID)
		if err != nil {
			WriteAppError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, record)
		return
	}

	records, err := h.Svc.ListForUser(r.Context(), SessionEmail(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, records)
}
