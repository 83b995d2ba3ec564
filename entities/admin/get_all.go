package admin

import (
	"context"
	"net/http"

	"api/database"
	"api/schemas"
	"api/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// GetAll lists every dashboard account, password hashes excluded.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	cursor, err := h.store.Admins().Find(ctx, bson.D{})
	if err != nil {
		sendServerError(w, err, "Failed to query admins", "Error fetching admins")
		return
	}
	defer cursor.Close(ctx)

	admins := []schemas.Admin{}
	if err := cursor.All(ctx, &admins); err != nil {
		sendServerError(w, err, "Failed to decode admins", "Error fetching admins")
		return
	}

	profiles := make([]schemas.AdminProfile, 0, len(admins))
	for i := range admins {
		profiles = append(profiles, admins[i].Profile())
	}

	utils.SendResponse(w, http.StatusOK, "", profiles)
}
