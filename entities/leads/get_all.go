package leads

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"api/database"
	"api/schemas"
	"api/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Fields the dashboard may sort on. Anything else falls back to the default.
var sortableFields = []string{"submitted_at", "status", "priority", "full_name"}

// Dashboard sends camelCase sort keys, the store uses snake_case.
var sortFieldAliases = map[string]string{
	"submittedAt": "submitted_at",
	"fullName":    "full_name",
}

type ListQuery struct {
	Filter    bson.D
	Limit     int64
	Skip      int64
	SortField string
	SortOrder int
}

// ParseListQuery interprets the status/date-range filter, pagination and
// sort parameters. Defaults: newest submissions first, window of 50.
func ParseListQuery(q url.Values) ListQuery {
	lq := ListQuery{
		Filter:    bson.D{},
		Limit:     defaultListLimit,
		SortField: "submitted_at",
		SortOrder: -1,
	}

	if status := q.Get("status"); status != "" {
		lq.Filter = append(lq.Filter, bson.E{Key: "status", Value: status})
	}

	dateRange := bson.D{}
	if start, ok := utils.ParseDate(q.Get("startDate")); ok {
		dateRange = append(dateRange, bson.E{Key: "$gte", Value: start})
	}
	if end, ok := utils.ParseDate(q.Get("endDate")); ok {
		dateRange = append(dateRange, bson.E{Key: "$lte", Value: end})
	}
	if len(dateRange) > 0 {
		lq.Filter = append(lq.Filter, bson.E{Key: "submitted_at", Value: dateRange})
	}

	if limit, err := strconv.ParseInt(q.Get("limit"), 10, 64); err == nil && limit > 0 {
		lq.Limit = min(limit, maxListLimit)
	}
	if skip, err := strconv.ParseInt(q.Get("skip"), 10, 64); err == nil && skip > 0 {
		lq.Skip = skip
	}

	sortBy := q.Get("sortBy")
	if alias, ok := sortFieldAliases[sortBy]; ok {
		sortBy = alias
	}
	if slices.Contains(sortableFields, sortBy) {
		lq.SortField = sortBy
	}
	if q.Get("sortOrder") == "asc" {
		lq.SortOrder = 1
	}

	return lq
}

// HasMore reports whether records exist beyond the current window.
func HasMore(total, skip, limit int64) bool {
	return total > skip+limit
}

type listLeadsData struct {
	Success    bool               `json:"success"`
	Data       []schemas.Lead     `json:"data"`
	Pagination schemas.Pagination `json:"pagination"`
}

// GetAll returns a filtered, paginated, sorted window of leads plus the
// full filtered count.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	lq := ParseListQuery(r.URL.Query())

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	collection := h.store.Leads()

	opts := options.Find().
		SetSort(bson.D{{Key: lq.SortField, Value: lq.SortOrder}}).
		SetLimit(lq.Limit).
		SetSkip(lq.Skip)

	cursor, err := collection.Find(ctx, lq.Filter, opts)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to query leads")
		utils.SendResponse(w, http.StatusInternalServerError, "Error fetching leads", nil)
		return
	}
	defer cursor.Close(ctx)

	results := []schemas.Lead{}
	if err := cursor.All(ctx, &results); err != nil {
		utils.Logger.WithError(err).Error("Failed to decode leads")
		utils.SendResponse(w, http.StatusInternalServerError, "Error fetching leads", nil)
		return
	}

	total, err := collection.CountDocuments(ctx, lq.Filter)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to count leads")
		utils.SendResponse(w, http.StatusInternalServerError, "Error fetching leads", nil)
		return
	}

	utils.SendJSON(w, http.StatusOK, listLeadsData{
		Success: true,
		Data:    results,
		Pagination: schemas.Pagination{
			Total:   total,
			Limit:   lq.Limit,
			Skip:    lq.Skip,
			HasMore: HasMore(total, lq.Skip, lq.Limit),
		},
	})
}
