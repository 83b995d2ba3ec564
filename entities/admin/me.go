package admin

import (
	"context"
	"net/http"

	"api/database"
	"api/middlewares"
	"api/utils"
)

// Me echoes the authenticated account, re-checked against the store so a
// deactivated admin loses access before the token expires.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middlewares.AdminFromContext(r.Context())
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	adm, err := h.findByID(ctx, claims.ID)
	if err != nil {
		if isNotFound(err) {
			utils.SendResponse(w, http.StatusUnauthorized, "Invalid authentication token", nil)
			return
		}
		sendServerError(w, err, "Failed to fetch admin", "Server error")
		return
	}

	if !adm.IsActive {
		utils.SendResponse(w, http.StatusUnauthorized, "Account is inactive", nil)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", adm.Profile())
}
