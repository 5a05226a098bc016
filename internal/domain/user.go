package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a reference to an identity owned by the external identity provider.
// The service stores it so rooms and join requests can point at it, but never
// changes it after the first sighting.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUser(id uuid.UUID, username string) *User {
	return &User{
		ID:        id,
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
}
