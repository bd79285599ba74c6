package httpx

import (
	"net/http"

	"github.com/APVS-BRO/ai-careers-hub/internal/service"
)

// UserHandlers provides HTTP handlers for user accounts.
type UserHandlers struct {
	Svc *service.UserService
}

// Ensure handles POST /api/user: lazy creation of the authenticated user's
// account row. Returns the stored user, 401 when unauthenticated.
func (h *UserHandlers) Ensure(w http.ResponseWriter, r *http.Request) {
	session, _ := GetUserSessionFromContext(r.Context())

	user, err := h.Svc.EnsureUser(r.Context(), session)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, user)
}
