package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/trackpit/internal/db"
	"github.com/ukydev/trackpit/internal/db/dbtest"
	"github.com/ukydev/trackpit/internal/events"
)

func updateRequest(completedAt string) *http.Request {
	return formRequest("/update/u1/s1/t1", url.Values{"completedAt": {completedAt}}, map[string]string{
		"uid": "u1", "serviceId": "s1", "statusId": "t1",
	})
}

func decodeStatus(t *testing.T, w *httptest.ResponseRecorder) statusResponse {
	t.Helper()
	var resp statusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestTimelineHandler_Update(t *testing.T) {
	t.Run("stores the instant of the local time", func(t *testing.T) {
		store := new(dbtest.MockStore)
		publisher := new(mockPublisher)
		want := time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC)

		store.On("UpdateTimelineCompletedAt", mock.Anything, "u1", "s1", "t1",
			mock.MatchedBy(func(ts *time.Time) bool { return ts != nil && ts.Equal(want) }),
		).Return(nil)
		publisher.On("PublishJSON", mock.Anything, events.TopicTimelineUpdated,
			mock.MatchedBy(func(e events.TimelineUpdated) bool {
				return e.UID == "u1" && e.ServiceID == "s1" && e.StatusID == "t1" && e.CompletedAt.Equal(want)
			}),
		).Return(nil)

		w := httptest.NewRecorder()
		NewTimelineHandler(store, publisher).Update(w, updateRequest("2024-03-05T17:15"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, statusResponse{Success: true, Message: "Saved successfully"}, decodeStatus(t, w))
		store.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("empty value clears the completion time", func(t *testing.T) {
		store := new(dbtest.MockStore)
		store.On("UpdateTimelineCompletedAt", mock.Anything, "u1", "s1", "t1", (*time.Time)(nil)).Return(nil)

		w := httptest.NewRecorder()
		NewTimelineHandler(store, nil).Update(w, updateRequest("  "))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeStatus(t, w).Success)
		store.AssertExpectations(t)
	})

	t.Run("unparseable value is rejected before writing", func(t *testing.T) {
		store := new(dbtest.MockStore)

		w := httptest.NewRecorder()
		NewTimelineHandler(store, nil).Update(w, updateRequest("next tuesday"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, statusResponse{Success: false, Message: "Invalid completedAt"}, decodeStatus(t, w))
		store.AssertNotCalled(t, "UpdateTimelineCompletedAt", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing entry", func(t *testing.T) {
		store := new(dbtest.MockStore)
		store.On("UpdateTimelineCompletedAt", mock.Anything, "u1", "s1", "t1", mock.Anything).Return(db.ErrNotFound)

		w := httptest.NewRecorder()
		NewTimelineHandler(store, nil).Update(w, updateRequest("2024-03-05T17:15"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, statusResponse{Success: false, Message: "Status entry not found"}, decodeStatus(t, w))
	})

	t.Run("store failure", func(t *testing.T) {
		store := new(dbtest.MockStore)
		publisher := new(mockPublisher)
		store.On("UpdateTimelineCompletedAt", mock.Anything, "u1", "s1", "t1", mock.Anything).Return(assert.AnError)

		w := httptest.NewRecorder()
		NewTimelineHandler(store, publisher).Update(w, updateRequest("2024-03-05T17:15"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, statusResponse{Success: false, Message: "Failed to save"}, decodeStatus(t, w))
		publisher.AssertNotCalled(t, "PublishJSON", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		store := new(dbtest.MockStore)
		publisher := new(mockPublisher)
		store.On("UpdateTimelineCompletedAt", mock.Anything, "u1", "s1", "t1", mock.Anything).Return(nil)
		publisher.On("PublishJSON", mock.Anything, events.TopicTimelineUpdated, mock.Anything).Return(assert.AnError)

		w := httptest.NewRecorder()
		NewTimelineHandler(store, publisher).Update(w, updateRequest("2024-03-05T17:15"))

		assert.Equal(t, http.StatusOK, w.Code)
		publisher.AssertExpectations(t)
	})
}
