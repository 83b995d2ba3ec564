package leads

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"api/schemas"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestUpdateStatusRejectsBadID(t *testing.T) {
	h := &Handler{}

	r := httptest.NewRequest(http.MethodPatch, "/api/leads/nope/status", nil)
	r.SetPathValue("id", "nope")
	w := httptest.NewRecorder()
	h.UpdateStatus(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp schemas.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Invalid lead ID format", resp.Message)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	h := &Handler{}

	body, err := json.Marshal(UpdateStatusRequest{Status: "Archived"})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPatch,
		"/api/leads/65f000000000000000000001/status", bytes.NewBuffer(body))
	r.SetPathValue("id", "65f000000000000000000001")
	w := httptest.NewRecorder()
	h.UpdateStatus(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp schemas.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	require.Equal(t, "status", resp.Errors[0].Field)
	require.Equal(t, "Invalid lead status", resp.Errors[0].Message)
}

// Status writes are last-write-wins: the filter matches on _id alone, with
// no version or expected-status predicate that would reject a concurrent
// update. The race is documented behavior; the history push keeps both
// writes visible.
func TestStatusUpdateIsLastWriteWins(t *testing.T) {
	id := bson.NewObjectID()

	filter := statusUpdateFilter(id)
	require.Equal(t, bson.D{{Key: "_id", Value: id}}, filter,
		"no concurrency predicate beyond the ID")

	now := time.Now()
	update := statusUpdateDoc(schemas.StatusContacted, "jane", now)
	require.Len(t, update, 2)

	require.Equal(t, "$set", update[0].Key)
	require.Equal(t, bson.D{{Key: "status", Value: schemas.StatusContacted}}, update[0].Value,
		"status overwritten unconditionally")

	require.Equal(t, "$push", update[1].Key)
	push, ok := update[1].Value.(bson.D)
	require.True(t, ok)
	require.Equal(t, "status_history", push[0].Key)
	require.Equal(t, schemas.StatusChange{
		Status:    schemas.StatusContacted,
		UpdatedBy: "jane",
		UpdatedAt: now,
	}, push[0].Value)

	// Two updates racing on the same lead build identical filters; whichever
	// lands second determines the final status.
	second := statusUpdateDoc(schemas.StatusClosed, "joe", now.Add(time.Second))
	require.Equal(t, filter, statusUpdateFilter(id))
	require.Equal(t, bson.D{{Key: "status", Value: schemas.StatusClosed}}, second[0].Value)
}
