package leads

import (
	"context"
	"net/http"
	"time"

	"api/database"
	"api/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type StatusCount struct {
	Status string `json:"status" bson:"_id"`
	Count  int64  `json:"count" bson:"count"`
}

type StatsSummary struct {
	Total      int64         `json:"total"`
	TodayCount int64         `json:"todayCount"`
	ByStatus   []StatusCount `json:"byStatus"`
}

// Stats aggregates total, today's and per-status submission counts. The
// day boundary is local midnight.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	collection := h.store.Leads()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to aggregate lead stats")
		utils.SendResponse(w, http.StatusInternalServerError, "Error fetching statistics", nil)
		return
	}
	defer cursor.Close(ctx)

	byStatus := []StatusCount{}
	if err := cursor.All(ctx, &byStatus); err != nil {
		utils.Logger.WithError(err).Error("Failed to decode lead stats")
		utils.SendResponse(w, http.StatusInternalServerError, "Error fetching statistics", nil)
		return
	}

	total, err := collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to count leads")
		utils.SendResponse(w, http.StatusInternalServerError, "Error fetching statistics", nil)
		return
	}

	todayCount, err := collection.CountDocuments(ctx, bson.D{
		{Key: "submitted_at", Value: bson.D{{Key: "$gte", Value: utils.StartOfToday(time.Now())}}},
	})
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to count today's leads")
		utils.SendResponse(w, http.StatusInternalServerError, "Error fetching statistics", nil)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", StatsSummary{
		Total:      total,
		TodayCount: todayCount,
		ByStatus:   byStatus,
	})
}
