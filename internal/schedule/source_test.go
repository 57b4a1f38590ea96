package schedule

import (
	"fmt"

	"github.com/helioscast/helios/internal/db"
	"github.com/helioscast/helios/internal/model"
)

// fakeSource is an in-memory Source; missing layouts and playlists report
// db.ErrNotFound the way pgStore does.
type fakeSource struct {
	candidates map[int][]model.ScheduleCandidate
	layouts    map[int]model.Layout
	playlists  map[int]model.Playlist
	err        error
}

func (f *fakeSource) CandidateSchedulesForPlayer(playerID int) ([]model.ScheduleCandidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates[playerID], nil
}

func (f *fakeSource) GetLayoutByID(id, customerID int) (model.Layout, error) {
	if f.err != nil {
		return model.Layout{}, f.err
	}
	l, ok := f.layouts[id]
	if !ok || l.CustomerID != customerID {
		return model.Layout{}, db.ErrNotFound
	}
	return l, nil
}

func (f *fakeSource) GetPlaylistByID(id int) (model.Playlist, error) {
	if f.err != nil {
		return model.Playlist{}, f.err
	}
	p, ok := f.playlists[id]
	if !ok {
		return model.Playlist{}, db.ErrNotFound
	}
	return p, nil
}

func candidate(id, priority, tier int, active bool) model.ScheduleCandidate {
	return model.ScheduleCandidate{
		Schedule: model.Schedule{
			ID:       id,
			Priority: priority,
			LayoutID: 100 + id,
			IsActive: active,
		},
		ScopeTier: tier,
	}
}

func playlistLayer(playlistID int) model.Layer {
	return model.Layer{
		Type:   model.LayerTypePlaylist,
		Config: []byte(fmt.Sprintf(`{"playlist_id": %d}`, playlistID)),
	}
}
