package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type JoinStatus string

const (
	JoinStatusPending  JoinStatus = "pending"
	JoinStatusApproved JoinStatus = "approved"
	JoinStatusDenied   JoinStatus = "denied"
)

func ParseJoinStatus(s string) (JoinStatus, error) {
	switch JoinStatus(s) {
	case JoinStatusPending, JoinStatusApproved, JoinStatusDenied:
		return JoinStatus(s), nil
	default:
		return "", fmt.Errorf("%w: unknown join status %q", ErrInvalidArgument, s)
	}
}

var ErrAlreadyDecided = fmt.Errorf("%w: join request already decided", ErrInvalidState)

// JoinRequest tracks one attempt by a user to enter a hosted room.
// A request leaves pending exactly once.
type JoinRequest struct {
	ID        uint64
	RoomID    uuid.UUID
	UserID    uuid.UUID
	Username  string
	Status    JoinStatus
	CreatedAt time.Time
	DecidedAt *time.Time
}

func NewJoinRequest(roomID uuid.UUID, user *User) *JoinRequest {
	return &JoinRequest{
		RoomID:    roomID,
		UserID:    user.ID,
		Username:  user.Username,
		Status:    JoinStatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

func (r *JoinRequest) IsPending() bool {
	return r.Status == JoinStatusPending
}

// Decide moves a pending request to approved or denied. Repeating the decision
// already taken is a no-op; reversing it fails with ErrAlreadyDecided.
func (r *JoinRequest) Decide(approve bool) (changed bool, err error) {
	target := JoinStatusDenied
	if approve {
		target = JoinStatusApproved
	}

	switch r.Status {
	case JoinStatusPending:
		now := time.Now().UTC()
		r.Status = target
		r.DecidedAt = &now
		return true, nil
	case JoinStatusApproved, JoinStatusDenied:
		if r.Status == target {
			return false, nil
		}
		return false, ErrAlreadyDecided
	default:
		return false, fmt.Errorf("%w: join request in unknown status %q", ErrInvalidState, r.Status)
	}
}

// JoinOutcome is the result of asking to enter a room.
type JoinOutcome struct {
	Status  JoinStatus
	Request *JoinRequest
}

// Admitted reports whether the caller is now a participant.
func (o JoinOutcome) Admitted() bool {
	return o.Status == JoinStatusApproved
}
