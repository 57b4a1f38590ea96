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

type layoutFakeStore struct {
	db.Store
	layouts       map[int]model.Layout
	playlists     map[int]model.Playlist
	createdLayers []model.Layer
}

func (f *layoutFakeStore) GetLayoutByID(id, customerID int) (model.Layout, error) {
	l, ok := f.layouts[id]
	if !ok || l.CustomerID != customerID {
		return model.Layout{}, db.ErrNotFound
	}
	return l, nil
}

func (f *layoutFakeStore) GetPlaylistByID(id int) (model.Playlist, error) {
	p, ok := f.playlists[id]
	if !ok {
		return model.Playlist{}, db.ErrNotFound
	}
	return p, nil
}

func (f *layoutFakeStore) CreateLayer(layoutID int, layer model.Layer) (model.Layer, error) {
	layer.ID = len(f.createdLayers) + 1
	layer.LayoutID = layoutID
	f.createdLayers = append(f.createdLayers, layer)
	return layer, nil
}

func (f *layoutFakeStore) UpdateLayer(id, layoutID int, patch model.LayerPatch) error {
	return nil
}

func postLayer(t *testing.T, store db.Store, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := adminRouter(store, testUser())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/layouts/101/layers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func layoutTestStore() *layoutFakeStore {
	return &layoutFakeStore{
		layouts: map[int]model.Layout{
			101: {ID: 101, CustomerID: 3, Name: "fullscreen", Width: 1920, Height: 1080,
				Layers: []model.Layer{
					{ID: 5, LayoutID: 101, Type: model.LayerTypePlaylist},
				}},
		},
		playlists: map[int]model.Playlist{
			20: {ID: 20, CustomerID: 3, Name: "ours", IsActive: true},
			21: {ID: 21, CustomerID: 9, Name: "someone else's", IsActive: true},
		},
	}
}

func TestCreateLayerAcceptsOwnPlaylist(t *testing.T) {
	store := layoutTestStore()
	w := postLayer(t, store,
		`{"type":"playlist","width":1920,"height":1080,"config":{"playlist_id":20}}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.createdLayers, 1)
	ref, ok := store.createdLayers[0].PlaylistRef()
	require.True(t, ok)
	assert.Equal(t, 20, ref)
}

func TestCreateLayerRejectsForeignPlaylist(t *testing.T) {
	store := layoutTestStore()
	w := postLayer(t, store,
		`{"type":"playlist","width":1920,"height":1080,"config":{"playlist_id":21}}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, store.createdLayers)
}

func TestCreateLayerRejectsMissingPlaylist(t *testing.T) {
	store := layoutTestStore()
	w := postLayer(t, store,
		`{"type":"playlist","width":1920,"height":1080,"config":{"playlist_id":999}}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, store.createdLayers)
}

func TestUpdateLayerRejectsForeignPlaylistConfig(t *testing.T) {
	store := layoutTestStore()
	r := adminRouter(store, testUser())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/layouts/101/layers/5",
		strings.NewReader(`{"config":{"playlist_id":21}}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateLayerAcceptsOwnPlaylistConfig(t *testing.T) {
	store := layoutTestStore()
	r := adminRouter(store, testUser())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/layouts/101/layers/5",
		strings.NewReader(`{"config":{"playlist_id":20}}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
