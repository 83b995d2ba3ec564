package leads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"api/database"
	"api/schemas"
	"api/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type UpdateStatusRequest struct {
	Status    string `json:"status"`
	UpdatedBy string `json:"updatedBy"`
}

// statusUpdateFilter matches on _id alone: no version or expected-status
// predicate, so concurrent updates are last-write-wins.
func statusUpdateFilter(id bson.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

// statusUpdateDoc overwrites the status unconditionally and appends the
// change to the history, so both sides of a lost-update race stay visible
// in the audit trail.
func statusUpdateDoc(status, updatedBy string, at time.Time) bson.D {
	return bson.D{
		{Key: "$set", Value: bson.D{{Key: "status", Value: status}}},
		{Key: "$push", Value: bson.D{{Key: "status_history", Value: schemas.StatusChange{
			Status:    status,
			UpdatedBy: updatedBy,
			UpdatedAt: at,
		}}}},
	}
}

// UpdateStatus overwrites the lead status and appends a history entry.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Invalid lead ID format", nil)
		return
	}

	req := UpdateStatusRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Invalid request data", nil)
		return
	}

	if !schemas.IsValidLeadStatus(req.Status) {
		utils.SendValidationErrors(w, []schemas.FieldError{
			{Field: "status", Message: "Invalid lead status"},
		})
		return
	}

	updatedBy := req.UpdatedBy
	if claims, ok := adminUsername(r); ok {
		updatedBy = claims
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	lead := schemas.Lead{}
	err = h.store.Leads().
		FindOneAndUpdate(ctx, statusUpdateFilter(id), statusUpdateDoc(req.Status, updatedBy, time.Now()), opts).
		Decode(&lead)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.SendResponse(w, http.StatusNotFound, "Lead not found", nil)
			return
		}
		utils.Logger.WithError(err).Error("Failed to update lead status")
		utils.SendResponse(w, http.StatusInternalServerError, "Error updating lead status", nil)
		return
	}

	utils.SendResponse(w, http.StatusOK, "Lead status updated", lead)
}
