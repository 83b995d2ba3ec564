package admin

import (
	"context"
	"errors"
	"net/http"

	"api/database"
	"api/schemas"
	"api/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var validate = validator.New()

// Handler owns the admin authentication and management endpoints.
type Handler struct {
	store *database.Mongo
	cfg   *utils.Config
}

func NewHandler(store *database.Mongo, cfg *utils.Config) *Handler {
	return &Handler{store: store, cfg: cfg}
}

func (h *Handler) findByID(ctx context.Context, hexID string) (*schemas.Admin, error) {
	id, err := bson.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	adm := schemas.Admin{}
	err = h.store.Admins().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&adm)
	if err != nil {
		return nil, err
	}
	return &adm, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

func sendServerError(w http.ResponseWriter, err error, logMsg, clientMsg string) {
	utils.Logger.WithError(err).Error(logMsg)
	utils.SendResponse(w, http.StatusInternalServerError, clientMsg, nil)
}
