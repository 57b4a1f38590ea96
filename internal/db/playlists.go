package db

import (
	"github.com/rs/zerolog/log"

	"github.com/helioscast/helios/internal/model"
)

func (s *pgStore) CreatePlaylist(customerID int, name string) (model.Playlist, error) {
	var p model.Playlist
	const q = `
	INSERT INTO playlists (customer_id, name, is_active, created_at, updated_at)
	VALUES ($1, $2, true, now(), now())
	RETURNING id, customer_id, name, is_active, created_at, updated_at;`
	if err := s.db.Get(&p, q, customerID, name); err != nil {
		log.Error().Err(err).Msg("CreatePlaylist failed")
		return model.Playlist{}, err
	}
	return p, nil
}

// GetPlaylistByID loads a playlist with its items in display order, each
// item carrying its resolved content row.
func (s *pgStore) GetPlaylistByID(id int) (model.Playlist, error) {
	var p model.Playlist
	const q = `
	SELECT id, customer_id, name, is_active, created_at, updated_at
	  FROM playlists
	 WHERE id = $1;`
	if err := s.db.Get(&p, q, id); err != nil {
		return model.Playlist{}, notFound(err)
	}

	items, err := s.listPlaylistItems(id)
	if err != nil {
		return model.Playlist{}, err
	}
	p.Items = items
	return p, nil
}

func (s *pgStore) listPlaylistItems(playlistID int) ([]model.PlaylistItem, error) {
	type row struct {
		model.PlaylistItem
		ContentName     string  `db:"content_name"`
		ContentType     string  `db:"content_type"`
		FileURL         string  `db:"file_url"`
		DefaultDuration *int    `db:"default_duration"`
		MimeType        *string `db:"content_mime_type"`
		FileSize        *int64  `db:"content_file_size"`
	}
	var rows []row
	const q = `
	SELECT i.id, i.playlist_id, i.content_id, i.display_order, i.duration,
	       i.transition_type, i.transition_duration, i.created_at,
	       c.name AS content_name, c.type AS content_type, c.file_url,
	       c.default_duration, c.mime_type AS content_mime_type,
	       c.file_size AS content_file_size
	  FROM playlist_items i
	  JOIN content c ON c.id = i.content_id
	 WHERE i.playlist_id = $1
	 ORDER BY i.display_order, i.id;`
	if err := s.db.Select(&rows, q, playlistID); err != nil {
		log.Error().Err(err).Int("playlist_id", playlistID).Msg("listPlaylistItems failed")
		return nil, err
	}

	out := make([]model.PlaylistItem, 0, len(rows))
	for _, r := range rows {
		item := r.PlaylistItem
		item.Content = &model.Content{
			ID:              item.ContentID,
			Name:            r.ContentName,
			Type:            r.ContentType,
			FileURL:         r.FileURL,
			DefaultDuration: r.DefaultDuration,
			MimeType:        r.MimeType,
			FileSize:        r.FileSize,
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *pgStore) ListPlaylists(customerID int) ([]model.Playlist, error) {
	var out []model.Playlist
	const q = `
	SELECT id, customer_id, name, is_active, created_at, updated_at
	  FROM playlists
	 WHERE customer_id = $1
	 ORDER BY id;`
	if err := s.db.Select(&out, q, customerID); err != nil {
		log.Error().Err(err).Msg("ListPlaylists failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdatePlaylist(id, customerID int, name *string, isActive *bool) error {
	_, err := s.db.Exec(`
	UPDATE playlists
	   SET name       = COALESCE($3, name),
	       is_active  = COALESCE($4, is_active),
	       updated_at = now()
	 WHERE id = $1 AND customer_id = $2;`, id, customerID, name, isActive)
	if err != nil {
		log.Error().Err(err).Int("playlist_id", id).Msg("UpdatePlaylist failed")
	}
	return err
}

func (s *pgStore) DeletePlaylist(id, customerID int) error {
	_, err := s.db.Exec(`DELETE FROM playlists WHERE id = $1 AND customer_id = $2;`, id, customerID)
	if err != nil {
		log.Error().Err(err).Int("playlist_id", id).Msg("DeletePlaylist failed")
	}
	return err
}

func (s *pgStore) AddPlaylistItem(playlistID, contentID, displayOrder int, duration *int, transitionType *string, transitionDuration *int) (model.PlaylistItem, error) {
	var it model.PlaylistItem
	const q = `
	INSERT INTO playlist_items
	  (playlist_id, content_id, display_order, duration, transition_type, transition_duration, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, now())
	RETURNING id, playlist_id, content_id, display_order, duration,
	          transition_type, transition_duration, created_at;`
	if err := s.db.Get(&it, q, playlistID, contentID, displayOrder, duration, transitionType, transitionDuration); err != nil {
		log.Error().Err(err).Int("playlist_id", playlistID).Msg("AddPlaylistItem failed")
		return model.PlaylistItem{}, err
	}
	return it, nil
}

func (s *pgStore) UpdatePlaylistItem(itemID int, displayOrder, duration *int, transitionType *string, transitionDuration *int) error {
	_, err := s.db.Exec(`
	UPDATE playlist_items
	   SET display_order       = COALESCE($2, display_order),
	       duration            = COALESCE($3, duration),
	       transition_type     = COALESCE($4, transition_type),
	       transition_duration = COALESCE($5, transition_duration)
	 WHERE id = $1;`, itemID, displayOrder, duration, transitionType, transitionDuration)
	if err != nil {
		log.Error().Err(err).Int("item_id", itemID).Msg("UpdatePlaylistItem failed")
	}
	return err
}

func (s *pgStore) RemovePlaylistItem(itemID int) error {
	_, err := s.db.Exec(`DELETE FROM playlist_items WHERE id = $1;`, itemID)
	if err != nil {
		log.Error().Err(err).Int("item_id", itemID).Msg("RemovePlaylistItem failed")
	}
	return err
}

// ReorderPlaylistItems rewrites display_order to match the given id order.
// Items are first shifted past the end of the list so the intermediate
// states never collide with the final positions.
func (s *pgStore) ReorderPlaylistItems(playlistID int, itemIDs []int) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	count := len(itemIDs)
	if _, err = tx.Exec(`
	UPDATE playlist_items
	   SET display_order = display_order + $1
	 WHERE playlist_id = $2;`, count, playlistID); err != nil {
		return err
	}

	for idx, itemID := range itemIDs {
		if _, err = tx.Exec(`
		UPDATE playlist_items
		   SET display_order = $1
		 WHERE id = $2 AND playlist_id = $3;`, idx+1, itemID, playlistID); err != nil {
			return err
		}
	}
	return nil
}
