package leads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type AddNoteRequest struct {
	Content   string `json:"content"`
	CreatedBy string `json:"createdBy"`
}

func (h *Handler) AddNote(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Invalid lead ID format", nil)
		return
	}

	req := AddNoteRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Invalid request data", nil)
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		utils.SendValidationErrors(w, []schemas.FieldError{
			{Field: "content", Message: "Note content is required"},
		})
		return
	}

	createdBy := req.CreatedBy
	if username, ok := adminUsername(r); ok {
		createdBy = username
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "notes", Value: schemas.LeadNote{
			Content:   strings.TrimSpace(req.Content),
			CreatedBy: createdBy,
			CreatedAt: time.Now(),
		}}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	lead := schemas.Lead{}
	err = h.store.Leads().
		FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).
		Decode(&lead)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.SendResponse(w, http.StatusNotFound, "Lead not found", nil)
			return
		}
		utils.Logger.WithError(err).Error("Failed to add note")
		utils.SendResponse(w, http.StatusInternalServerError, "Error adding note", nil)
		return
	}

	utils.SendResponse(w, http.StatusOK, "Note added successfully", lead)
}

// adminUsername attributes dashboard edits to the authenticated account.
func adminUsername(r *http.Request) (string, bool) {
	claims, ok := middlewares.AdminFromContext(r.Context())
	if !ok {
		return "", false
	}
	return claims.Username, true
}
