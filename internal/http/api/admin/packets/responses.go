package packets

// Most admin endpoints return the model structs directly; the types here
// exist where the wire shape diverges from the model (flattened times,
// hidden columns).

type ProfileResponse struct {
	ID         int     `json:"id"`
	CustomerID int     `json:"customer_id"`
	Email      string  `json:"email"`
	Name       *string `json:"name"`
	Role       string  `json:"role"`
	CreatedAt  string  `json:"created_at"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// WebhookResponse omits the shared secret after creation.
type WebhookResponse struct {
	ID        int      `json:"id"`
	URL       string   `json:"url"`
	Events    []string `json:"events"`
	IsActive  bool     `json:"is_active"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}
