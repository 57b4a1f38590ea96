package db

import (
	"github.com/rs/zerolog/log"

	"github.com/helioscast/helios/internal/model"
)

func (s *pgStore) CreateLayout(customerID int, name string, width, height int, backgroundColor string, tags *string) (model.Layout, error) {
	var l model.Layout
	const q = `
	INSERT INTO layouts (customer_id, name, width, height, background_color, tags, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, now(), now())
	RETURNING id, customer_id, name, width, height, background_color, tags, created_at, updated_at;`
	if err := s.db.Get(&l, q, customerID, name, width, height, backgroundColor, tags); err != nil {
		log.Error().Err(err).Msg("CreateLayout failed")
		return model.Layout{}, err
	}
	return l, nil
}

// GetLayoutByID loads a layout together with its layers in paint order.
func (s *pgStore) GetLayoutByID(id, customerID int) (model.Layout, error) {
	var l model.Layout
	const q = `
	SELECT id, customer_id, name, width, height, background_color, tags, created_at, updated_at
	  FROM layouts
	 WHERE id = $1 AND customer_id = $2;`
	if err := s.db.Get(&l, q, id, customerID); err != nil {
		return model.Layout{}, notFound(err)
	}

	layers, err := s.listLayers(id)
	if err != nil {
		return model.Layout{}, err
	}
	l.Layers = layers
	return l, nil
}

func (s *pgStore) listLayers(layoutID int) ([]model.Layer, error) {
	var out []model.Layer
	const q = `
	SELECT id, layout_id, type, x, y, width, height, rotation, opacity,
	       z_index, visible, locked, config, created_at, updated_at
	  FROM layout_layers
	 WHERE layout_id = $1
	 ORDER BY z_index, id;`
	if err := s.db.Select(&out, q, layoutID); err != nil {
		log.Error().Err(err).Int("layout_id", layoutID).Msg("listLayers failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) ListLayouts(customerID int) ([]model.Layout, error) {
	var out []model.Layout
	const q = `
	SELECT id, customer_id, name, width, height, background_color, tags, created_at, updated_at
	  FROM layouts
	 WHERE customer_id = $1
	 ORDER BY id;`
	if err := s.db.Select(&out, q, customerID); err != nil {
		log.Error().Err(err).Msg("ListLayouts failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdateLayout(id, customerID int, name *string, width, height *int, backgroundColor, tags *string) error {
	_, err := s.db.Exec(`
	UPDATE layouts
	   SET name             = COALESCE($3, name),
	       width            = COALESCE($4, width),
	       height           = COALESCE($5, height),
	       background_color = COALESCE($6, background_color),
	       tags             = COALESCE($7, tags),
	       updated_at       = now()
	 WHERE id = $1 AND customer_id = $2;`, id, customerID, name, width, height, backgroundColor, tags)
	if err != nil {
		log.Error().Err(err).Int("layout_id", id).Msg("UpdateLayout failed")
	}
	return err
}

func (s *pgStore) DeleteLayout(id, customerID int) error {
	_, err := s.db.Exec(`DELETE FROM layouts WHERE id = $1 AND customer_id = $2;`, id, customerID)
	if err != nil {
		log.Error().Err(err).Int("layout_id", id).Msg("DeleteLayout failed")
	}
	return err
}

func (s *pgStore) CreateLayer(layoutID int, layer model.Layer) (model.Layer, error) {
	var out model.Layer
	const q = `
	INSERT INTO layout_layers
	  (layout_id, type, x, y, width, height, rotation, opacity, z_index, visible, locked, config, created_at, updated_at)
	VALUES
	  ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())
	RETURNING id, layout_id, type, x, y, width, height, rotation, opacity,
	          z_index, visible, locked, config, created_at, updated_at;`
	if err := s.db.Get(&out, q,
		layoutID, layer.Type, layer.X, layer.Y, layer.Width, layer.Height,
		layer.Rotation, layer.Opacity, layer.ZIndex, layer.Visible, layer.Locked,
		layer.Config,
	); err != nil {
		log.Error().Err(err).Int("layout_id", layoutID).Msg("CreateLayer failed")
		return model.Layer{}, err
	}
	return out, nil
}

func (s *pgStore) UpdateLayer(id, layoutID int, patch model.LayerPatch) error {
	_, err := s.db.Exec(`
	UPDATE layout_layers
	   SET x          = COALESCE($3, x),
	       y          = COALESCE($4, y),
	       width      = COALESCE($5, width),
	       height     = COALESCE($6, height),
	       rotation   = COALESCE($7, rotation),
	       opacity    = COALESCE($8, opacity),
	       z_index    = COALESCE($9, z_index),
	       visible    = COALESCE($10, visible),
	       locked     = COALESCE($11, locked),
	       config     = COALESCE($12, config),
	       updated_at = now()
	 WHERE id = $1 AND layout_id = $2;`,
		id, layoutID, patch.X, patch.Y, patch.Width, patch.Height,
		patch.Rotation, patch.Opacity, patch.ZIndex, patch.Visible, patch.Locked,
		patch.Config)
	if err != nil {
		log.Error().Err(err).Int("layer_id", id).Msg("UpdateLayer failed")
	}
	return err
}

func (s *pgStore) DeleteLayer(id, layoutID int) error {
	_, err := s.db.Exec(`DELETE FROM layout_layers WHERE id = $1 AND layout_id = $2;`, id, layoutID)
	if err != nil {
		log.Error().Err(err).Int("layer_id", id).Msg("DeleteLayer failed")
	}
	return err
}
