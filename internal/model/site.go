package model

import "time"

type Site struct {
	ID         int       `db:"id" json:"id"`
	CustomerID int       `db:"customer_id" json:"customer_id"`
	Name       string    `db:"name" json:"name"`
	Location   *string   `db:"location" json:"location,omitempty"`
	Timezone   string    `db:"timezone" json:"timezone"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
