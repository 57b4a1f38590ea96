package schedule

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/helioscast/helios/internal/db"
	"github.com/helioscast/helios/internal/model"
)

// DefaultItemDuration is the per-entry fallback, in seconds, when neither
// the playlist item nor the content record carries a duration.
const DefaultItemDuration = 10

type LayoutSource interface {
	GetLayoutByID(id, customerID int) (model.Layout, error)
}

type PlaylistSource interface {
	GetPlaylistByID(id int) (model.Playlist, error)
}

// Expander turns a layout into the flat list of playable entries its
// playlist layers reference.
type Expander struct {
	layouts   LayoutSource
	playlists PlaylistSource
}

func NewExpander(layouts LayoutSource, playlists PlaylistSource) *Expander {
	return &Expander{layouts: layouts, playlists: playlists}
}

// Expand loads a layout with its layers and resolves every playlist-type
// layer into content entries. Layers whose config carries no usable
// playlist reference contribute nothing; a referenced playlist that is
// missing, inactive, owned by another customer or empty also contributes
// nothing rather than failing the expansion. Playlist fetches for
// independent layers run concurrently.
func (e *Expander) Expand(layoutID, customerID int) (model.Layout, []model.ContentEntry, error) {
	layout, err := e.layouts.GetLayoutByID(layoutID, customerID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return model.Layout{}, nil, err
		}
		return model.Layout{}, nil, fmt.Errorf("loading layout %d: %w", layoutID, err)
	}

	// one slot per layer keeps the concatenation order equal to the
	// layer order regardless of fetch completion order
	perLayer := make([][]model.ContentEntry, len(layout.Layers))
	var g errgroup.Group
	for i, layer := range layout.Layers {
		playlistID, ok := layer.PlaylistRef()
		if !ok {
			continue
		}
		slot := i
		g.Go(func() error {
			playlist, err := e.playlists.GetPlaylistByID(playlistID)
			if err != nil {
				if errors.Is(err, db.ErrNotFound) {
					return nil
				}
				return fmt.Errorf("loading playlist %d: %w", playlistID, err)
			}
			// a playlist from another tenant is treated exactly like a
			// missing one, so a stray id in a layer config can never leak
			// content across customers
			if !playlist.IsActive || playlist.CustomerID != customerID {
				return nil
			}
			perLayer[slot] = entriesFromItems(playlist.Items)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.Layout{}, nil, err
	}

	var entries []model.ContentEntry
	for _, batch := range perLayer {
		entries = append(entries, batch...)
	}
	return layout, entries, nil
}

func entriesFromItems(items []model.PlaylistItem) []model.ContentEntry {
	entries := make([]model.ContentEntry, 0, len(items))
	for _, item := range items {
		if item.Content == nil {
			continue
		}

		duration := DefaultItemDuration
		switch {
		case item.Duration != nil:
			duration = *item.Duration
		case item.Content.DefaultDuration != nil:
			duration = *item.Content.DefaultDuration
		}

		transitionType := model.TransitionNone
		if item.TransitionType != nil && *item.TransitionType != "" {
			transitionType = *item.TransitionType
		}
		transitionDuration := 0
		if item.TransitionDuration != nil {
			transitionDuration = *item.TransitionDuration
		}

		entries = append(entries, model.ContentEntry{
			ContentID:          item.ContentID,
			Name:               item.Content.Name,
			ContentType:        item.Content.Type,
			FileURL:            item.Content.FileURL,
			Duration:           duration,
			DisplayOrder:       item.DisplayOrder,
			TransitionType:     transitionType,
			TransitionDuration: transitionDuration,
		})
	}
	return entries
}
