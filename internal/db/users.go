package db

import (
	"github.com/rs/zerolog/log"

	"github.com/helioscast/helios/internal/model"
)

func (s *pgStore) CreateUser(customerID int, email, hashedPassword string, name *string, role string) (int, error) {
	var id int
	const q = `
	INSERT INTO users (customer_id, email, hashed_password, name, role, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, now(), now())
	RETURNING id;`
	if err := s.db.Get(&id, q, customerID, email, hashedPassword, name, role); err != nil {
		log.Error().Err(err).Str("email", email).Msg("CreateUser failed")
		return 0, err
	}
	return id, nil
}

func (s *pgStore) GetUserByEmail(email string) (*model.User, error) {
	var u model.User
	const q = `
	SELECT id, customer_id, email, hashed_password, name, role, created_at, updated_at
	  FROM users
	 WHERE email = $1;`
	if err := s.db.Get(&u, q, email); err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *pgStore) GetUserByID(id int) (*model.User, error) {
	var u model.User
	const q = `
	SELECT id, customer_id, email, hashed_password, name, role, created_at, updated_at
	  FROM users
	 WHERE id = $1;`
	if err := s.db.Get(&u, q, id); err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *pgStore) UpdateUserProfile(id int, email string, name *string) error {
	_, err := s.db.Exec(`
	UPDATE users
	   SET email = $2, name = COALESCE($3, name), updated_at = now()
	 WHERE id = $1;`, id, email, name)
	if err != nil {
		log.Error().Err(err).Int("user_id", id).Msg("UpdateUserProfile failed")
	}
	return err
}

func (s *pgStore) CreateCustomer(name string, contactEmail *string) (model.Customer, error) {
	var c model.Customer
	const q = `
	INSERT INTO customers (name, contact_email, is_active, created_at, updated_at)
	VALUES ($1, $2, true, now(), now())
	RETURNING id, name, contact_email, is_active, created_at, updated_at;`
	if err := s.db.Get(&c, q, name, contactEmail); err != nil {
		log.Error().Err(err).Msg("CreateCustomer failed")
		return model.Customer{}, err
	}
	return c, nil
}

func (s *pgStore) GetCustomerByID(id int) (model.Customer, error) {
	var c model.Customer
	const q = `
	SELECT id, name, contact_email, is_active, created_at, updated_at
	  FROM customers
	 WHERE id = $1;`
	if err := s.db.Get(&c, q, id); err != nil {
		return model.Customer{}, notFound(err)
	}
	return c, nil
}
