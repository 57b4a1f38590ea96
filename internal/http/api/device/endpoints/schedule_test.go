package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioscast/helios/internal/db"
	"github.com/helioscast/helios/internal/http/api"
	"github.com/helioscast/helios/internal/model"
)

// fakeStore overrides just the store methods the schedule endpoint
// exercises; calling anything else panics via the embedded nil interface.
type fakeStore struct {
	db.Store
	candidates []model.ScheduleCandidate
	layouts    map[int]model.Layout
	playlists  map[int]model.Playlist
}

func (f *fakeStore) CandidateSchedulesForPlayer(playerID int) ([]model.ScheduleCandidate, error) {
	return f.candidates, nil
}

func (f *fakeStore) GetLayoutByID(id, customerID int) (model.Layout, error) {
	l, ok := f.layouts[id]
	if !ok || l.CustomerID != customerID {
		return model.Layout{}, db.ErrNotFound
	}
	return l, nil
}

func (f *fakeStore) GetPlaylistByID(id int) (model.Playlist, error) {
	p, ok := f.playlists[id]
	if !ok {
		return model.Playlist{}, db.ErrNotFound
	}
	return p, nil
}

func deviceRouter(store db.Store, player model.Player) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/v1/player-devices",
		Middleware: []gin.HandlerFunc{func(c *gin.Context) {
			c.Set("currentPlayer", &player)
		}},
	}, ScheduleModule(store), TelemetryModule(store))
	return r
}

func testPlayer() model.Player {
	return model.Player{ID: 42, CustomerID: 1, SiteID: 5, Name: "lobby tv", Paired: true}
}

func intptr(v int) *int { return &v }

func TestCurrentSchedulePayload(t *testing.T) {
	duration := 15
	store := &fakeStore{
		candidates: []model.ScheduleCandidate{
			{
				Schedule:  model.Schedule{ID: 7, CustomerID: 1, Name: "always on", LayoutID: 101, Priority: 50, IsActive: true},
				ScopeTier: model.ScopePlayer,
			},
		},
		layouts: map[int]model.Layout{
			101: {
				ID: 101, CustomerID: 1, Name: "fullscreen", Width: 1920, Height: 1080,
				Layers: []model.Layer{
					{ID: 1, LayoutID: 101, Type: model.LayerTypePlaylist, Visible: true,
						Config: json.RawMessage(`{"playlist_id": 9}`)},
				},
			},
		},
		playlists: map[int]model.Playlist{
			9: {
				ID: 9, CustomerID: 1, Name: "loop", IsActive: true,
				Items: []model.PlaylistItem{
					{ID: 1, PlaylistID: 9, ContentID: 30, DisplayOrder: 2,
						Content: &model.Content{ID: 30, Name: "promo", Type: "video", FileURL: "https://cdn/promo.mp4", DefaultDuration: intptr(20)}},
					{ID: 2, PlaylistID: 9, ContentID: 31, DisplayOrder: 1, Duration: &duration,
						Content: &model.Content{ID: 31, Name: "menu", Type: "image", FileURL: "https://cdn/menu.png"}},
				},
			},
		},
	}

	r := deviceRouter(store, testPlayer())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/player-devices/42/schedule", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Status string `json:"status"`
		Data   struct {
			Schedule struct {
				ID int `json:"id"`
			} `json:"schedule"`
			Layout struct {
				ID int `json:"id"`
			} `json:"layout"`
			Content []model.ContentEntry `json:"content"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	assert.Equal(t, "success", envelope.Status)
	assert.Equal(t, 7, envelope.Data.Schedule.ID)
	assert.Equal(t, 101, envelope.Data.Layout.ID)

	// items come back ordered by display_order with per-item durations
	require.Len(t, envelope.Data.Content, 2)
	assert.Equal(t, 31, envelope.Data.Content[0].ContentID)
	assert.Equal(t, 15, envelope.Data.Content[0].Duration)
	assert.Equal(t, 30, envelope.Data.Content[1].ContentID)
	assert.Equal(t, 20, envelope.Data.Content[1].Duration)
	assert.Nil(t, envelope.Data.Content[0].ThumbnailURL)
}

func TestCurrentScheduleNoneActive(t *testing.T) {
	store := &fakeStore{}

	r := deviceRouter(store, testPlayer())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/player-devices/42/schedule", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var envelope api.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, codeNoActiveSchedule, envelope.Code)
}

func TestCurrentSchedulePlayerMismatch(t *testing.T) {
	store := &fakeStore{}

	r := deviceRouter(store, testPlayer())
	w := httptest.NewRecorder()
	// token belongs to player 42, path names a different player
	req := httptest.NewRequest(http.MethodGet, "/api/v1/player-devices/999/schedule", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var envelope api.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, codePlayerNotFound, envelope.Code)
}

func TestCurrentScheduleMissingLayout(t *testing.T) {
	store := &fakeStore{
		candidates: []model.ScheduleCandidate{
			{
				Schedule:  model.Schedule{ID: 7, CustomerID: 1, Name: "broken", LayoutID: 500, Priority: 50, IsActive: true},
				ScopeTier: model.ScopePlayer,
			},
		},
	}

	r := deviceRouter(store, testPlayer())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/player-devices/42/schedule", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var envelope api.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.NotEqual(t, codeNoActiveSchedule, envelope.Code)
	assert.Equal(t, "layout not found", envelope.Message)
}
