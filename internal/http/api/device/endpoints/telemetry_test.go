package endpoints

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioscast/helios/internal/db"
	"github.com/helioscast/helios/internal/model"
)

type telemetryFakeStore struct {
	db.Store
	inserted []model.PlaybackEvent
}

func (f *telemetryFakeStore) InsertPlaybackEvents(customerID, playerID int, events []model.PlaybackEvent) error {
	f.inserted = append(f.inserted, events...)
	return nil
}

func postEvents(t *testing.T, store db.Store, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := deviceRouter(store, testPlayer())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/player-devices/42/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestReportEventsRecordsBatch(t *testing.T) {
	store := &telemetryFakeStore{}
	w := postEvents(t, store, `{"events":[
		{"content_id":30,"started_at":"2026-08-24T09:00:00Z","ended_at":"2026-08-24T09:00:15Z","duration":15},
		{"content_id":31,"started_at":"2026-08-24T09:00:15Z","ended_at":"2026-08-24T09:00:25Z","duration":10}
	]}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.inserted, 2)
	assert.Equal(t, 30, store.inserted[0].ContentID)
	assert.Equal(t, 15, store.inserted[0].Duration)
	assert.True(t, store.inserted[0].EndedAt.After(store.inserted[0].StartedAt))
}

func TestReportEventsRejectsEndBeforeStart(t *testing.T) {
	store := &telemetryFakeStore{}
	w := postEvents(t, store, `{"events":[
		{"content_id":30,"started_at":"2026-08-24T09:00:15Z","ended_at":"2026-08-24T09:00:00Z","duration":15}
	]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.inserted, "nothing persisted from a rejected batch")
}

func TestReportEventsRejectsNonPositiveDuration(t *testing.T) {
	store := &telemetryFakeStore{}
	w := postEvents(t, store, `{"events":[
		{"content_id":30,"started_at":"2026-08-24T09:00:00Z","ended_at":"2026-08-24T09:00:15Z","duration":0}
	]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.inserted)
}

func TestReportEventsRejectsMalformedTimestamp(t *testing.T) {
	store := &telemetryFakeStore{}
	w := postEvents(t, store, `{"events":[
		{"content_id":30,"started_at":"yesterday","ended_at":"2026-08-24T09:00:15Z","duration":15}
	]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.inserted)
}
