package health

import (
	"context"
	"net/http"
	"time"

	"api/database"
	"api/utils"
)

type Handler struct {
	store *database.Mongo
}

func NewHandler(store *database.Mongo) *Handler {
	return &Handler{store: store}
}

type healthData struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// GetHealth reports liveness plus a live store connectivity flag.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "connected"
	if err := h.store.Ping(ctx); err != nil {
		dbStatus = "disconnected"
	}

	utils.SendJSON(w, http.StatusOK, healthData{
		Status:    "ok",
		Database:  dbStatus,
		Timestamp: time.Now().UTC(),
	})
}
