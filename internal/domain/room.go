package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Room is one active call session. CurrentHost, when set, is always a key of
// Participants, and a room with no participants is never persisted.
type Room struct {
	ID           uuid.UUID
	Name         string
	CurrentHost  *uuid.UUID
	Participants map[uuid.UUID]*Participant
	Credential   MediaCredential
	CreatedAt    time.Time
}

// MediaCredential is what the external token service issued for the room's
// creator.
type MediaCredential struct {
	Token string
	UID   uint32
}

// NewRoom constructs a room hosted by host, who is also its first participant.
func NewRoom(name string, host *User, cred MediaCredential) *Room {
	now := time.Now().UTC()
	hostID := host.ID
	room := &Room{
		ID:           uuid.New(),
		Name:         name,
		CurrentHost:  &hostID,
		Participants: make(map[uuid.UUID]*Participant),
		Credential:   cred,
		CreatedAt:    now,
	}
	room.AddParticipant(host)
	return room
}

// HasHost reports whether joins need the host's approval.
func (r *Room) HasHost() bool {
	return r.CurrentHost != nil
}

// IsHost reports whether userID currently holds host authority.
func (r *Room) IsHost(userID uuid.UUID) bool {
	return r.CurrentHost != nil && *r.CurrentHost == userID
}

func (r *Room) IsParticipant(userID uuid.UUID) bool {
	_, ok := r.Participants[userID]
	return ok
}

// AddParticipant inserts user into the roster. Adding a user twice keeps the
// first entry and reports false.
func (r *Room) AddParticipant(user *User) bool {
	if r.Participants == nil {
		r.Participants = make(map[uuid.UUID]*Participant)
	}
	if _, ok := r.Participants[user.ID]; ok {
		return false
	}
	r.Participants[user.ID] = NewParticipant(user)
	return true
}

// RemoveParticipant drops userID from the roster and clears the host if it was
// them. The room is not reassigned a host.
func (r *Room) RemoveParticipant(userID uuid.UUID) error {
	if _, ok := r.Participants[userID]; !ok {
		return ErrNotParticipant
	}
	delete(r.Participants, userID)
	if r.IsHost(userID) {
		r.CurrentHost = nil
	}
	return nil
}

// SetHost hands host authority to userID, who must already be in the roster.
func (r *Room) SetHost(userID uuid.UUID) error {
	if !r.IsParticipant(userID) {
		return ErrNotParticipant
	}
	id := userID
	r.CurrentHost = &id
	return nil
}

func (r *Room) IsEmpty() bool {
	return len(r.Participants) == 0
}

// Roster returns participants ordered by join time, then username.
func (r *Room) Roster() []*Participant {
	out := make([]*Participant, 0, len(r.Participants))
	for _, p := range r.Participants {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].JoinedAt.Equal(out[j].JoinedAt) {
			return out[i].JoinedAt.Before(out[j].JoinedAt)
		}
		return out[i].Username < out[j].Username
	})
	return out
}

// Clone returns a deep copy safe to mutate independently.
func (r *Room) Clone() *Room {
	if r == nil {
		return nil
	}
	cp := *r
	if r.CurrentHost != nil {
		host := *r.CurrentHost
		cp.CurrentHost = &host
	}
	cp.Participants = make(map[uuid.UUID]*Participant, len(r.Participants))
	for id, p := range r.Participants {
		pc := *p
		cp.Participants[id] = &pc
	}
	return &cp
}
