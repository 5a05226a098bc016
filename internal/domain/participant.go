package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrNotParticipant = fmt.Errorf("%w: not a participant", ErrInvalidState)

// Participant is a user currently counted in a room's roster.
type Participant struct {
	UserID   uuid.UUID
	Username string
	JoinedAt time.Time
}

func NewParticipant(user *User) *Participant {
	return &Participant{
		UserID:   user.ID,
		Username: user.Username,
		JoinedAt: time.Now().UTC(),
	}
}
