package domain

import "time"

// User holds identity and the accumulated preference vector. The preference
// vector is nil until the user's first recorded interaction and is always
// replaced wholesale, never partially mutated.
type User struct {
	UserID           string    `json:"user_id"`
	Email            string    `json:"email"`
	Username         string    `json:"username"`
	PreferenceVector []float32 `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
