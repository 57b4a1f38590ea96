package schedule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioscast/helios/internal/db"
	"github.com/helioscast/helios/internal/model"
)

func testContent(id int, name string) *model.Content {
	return &model.Content{ID: id, Name: name, Type: "image", FileURL: "https://cdn.example.com/" + name}
}

func TestExpandResolvesPlaylistLayers(t *testing.T) {
	src := &fakeSource{
		layouts: map[int]model.Layout{
			101: {ID: 101, CustomerID: 1, Layers: []model.Layer{playlistLayer(20)}},
		},
		playlists: map[int]model.Playlist{
			20: {ID: 20, CustomerID: 1, IsActive: true, Items: []model.PlaylistItem{
				{ContentID: 30, DisplayOrder: 1, Duration: intptr(7), Content: testContent(30, "a.png")},
				{ContentID: 31, DisplayOrder: 2, Content: testContent(31, "b.png")},
			}},
		},
	}
	e := NewExpander(src, src)

	layout, entries, err := e.Expand(101, 1)
	require.NoError(t, err)
	assert.Equal(t, 101, layout.ID)
	require.Len(t, entries, 2)

	assert.Equal(t, 7, entries[0].Duration, "item-level duration override")
	assert.Equal(t, DefaultItemDuration, entries[1].Duration, "fallback default")
	assert.Equal(t, model.TransitionNone, entries[0].TransitionType)
	assert.Equal(t, 0, entries[0].TransitionDuration)
	assert.Nil(t, entries[0].ThumbnailURL)
	assert.Nil(t, entries[0].MimeType)
}

func TestExpandContentDefaultDurationBeatsGlobalDefault(t *testing.T) {
	c := testContent(30, "clip.mp4")
	c.DefaultDuration = intptr(42)
	src := &fakeSource{
		layouts: map[int]model.Layout{
			101: {ID: 101, CustomerID: 1, Layers: []model.Layer{playlistLayer(20)}},
		},
		playlists: map[int]model.Playlist{
			20: {ID: 20, CustomerID: 1, IsActive: true, Items: []model.PlaylistItem{
				{ContentID: 30, DisplayOrder: 1, Content: c},
			}},
		},
	}
	e := NewExpander(src, src)

	_, entries, err := e.Expand(101, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 42, entries[0].Duration)
}

func TestExpandMissingPlaylistDegradesGracefully(t *testing.T) {
	src := &fakeSource{
		layouts: map[int]model.Layout{
			101: {ID: 101, CustomerID: 1, Layers: []model.Layer{
				playlistLayer(999), // does not exist
				playlistLayer(20),
			}},
		},
		playlists: map[int]model.Playlist{
			20: {ID: 20, CustomerID: 1, IsActive: true, Items: []model.PlaylistItem{
				{ContentID: 30, DisplayOrder: 1, Content: testContent(30, "a.png")},
			}},
		},
	}
	e := NewExpander(src, src)

	_, entries, err := e.Expand(101, 1)
	require.NoError(t, err, "missing playlist is not an error")
	require.Len(t, entries, 1, "sibling layer entries still returned")
	assert.Equal(t, 30, entries[0].ContentID)
}

func TestExpandNonPlaylistAndMalformedLayersContributeNothing(t *testing.T) {
	src := &fakeSource{
		layouts: map[int]model.Layout{
			101: {ID: 101, CustomerID: 1, Layers: []model.Layer{
				{Type: model.LayerTypeClock, Config: []byte(`{"format": "24h"}`)},
				{Type: model.LayerTypePlaylist, Config: []byte(`{broken json`)},
				{Type: model.LayerTypePlaylist, Config: []byte(`{"playlist_id": 0}`)},
			}},
		},
	}
	e := NewExpander(src, src)

	_, entries, err := e.Expand(101, 1)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExpandMissingLayoutIsNotFound(t *testing.T) {
	src := &fakeSource{layouts: map[int]model.Layout{}}
	e := NewExpander(src, src)

	_, _, err := e.Expand(101, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, db.ErrNotFound))
}

func TestExpandLayoutOutsideCustomerScopeIsNotFound(t *testing.T) {
	src := &fakeSource{
		layouts: map[int]model.Layout{101: {ID: 101, CustomerID: 2}},
	}
	e := NewExpander(src, src)

	_, _, err := e.Expand(101, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, db.ErrNotFound))
}

func TestExpandForeignTenantPlaylistContributesNothing(t *testing.T) {
	src := &fakeSource{
		layouts: map[int]model.Layout{
			101: {ID: 101, CustomerID: 1, Layers: []model.Layer{
				playlistLayer(20), // belongs to customer 2
				playlistLayer(21),
			}},
		},
		playlists: map[int]model.Playlist{
			20: {ID: 20, CustomerID: 2, IsActive: true, Items: []model.PlaylistItem{
				{ContentID: 30, DisplayOrder: 1, Content: testContent(30, "other-tenant.png")},
			}},
			21: {ID: 21, CustomerID: 1, IsActive: true, Items: []model.PlaylistItem{
				{ContentID: 31, DisplayOrder: 1, Content: testContent(31, "ours.png")},
			}},
		},
	}
	e := NewExpander(src, src)

	_, entries, err := e.Expand(101, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1, "only the caller's own playlist expands")
	assert.Equal(t, 31, entries[0].ContentID)
}

func TestExpandInactivePlaylistContributesNothing(t *testing.T) {
	src := &fakeSource{
		layouts: map[int]model.Layout{
			101: {ID: 101, CustomerID: 1, Layers: []model.Layer{playlistLayer(20)}},
		},
		playlists: map[int]model.Playlist{
			20: {ID: 20, CustomerID: 1, IsActive: false, Items: []model.PlaylistItem{
				{ContentID: 30, DisplayOrder: 1, Content: testContent(30, "a.png")},
			}},
		},
	}
	e := NewExpander(src, src)

	_, entries, err := e.Expand(101, 1)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
