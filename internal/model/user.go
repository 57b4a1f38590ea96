package model

import "time"

type User struct {
	ID             int       `db:"id"`
	CustomerID     int       `db:"customer_id"`
	Email          string    `db:"email"`
	HashedPassword string    `db:"hashed_password"`
	Name           *string   `db:"name"`
	Role           string    `db:"role"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type Customer struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	ContactEmail *string   `db:"contact_email" json:"contact_email,omitempty"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
