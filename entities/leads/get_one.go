package leads

import (
	"context"
	"errors"
	"net/http"

	"api/database"
	"api/schemas"
	"api/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func (h *Handler) GetOne(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Invalid lead ID format", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	lead := schemas.Lead{}
	err = h.store.Leads().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&lead)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.SendResponse(w, http.StatusNotFound, "Lead not found", nil)
			return
		}
		utils.Logger.WithError(err).Error("Failed to fetch lead")
		utils.SendResponse(w, http.StatusInternalServerError, "Error fetching lead", nil)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", lead)
}
