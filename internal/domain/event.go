package domain

import "time"

type EventType string

const (
	EventJoinRequested     EventType = "join_requested"
	EventRequestDecided    EventType = "request_decided"
	EventParticipantJoined EventType = "participant_joined"
	EventParticipantLeft   EventType = "participant_left"
	EventHostChanged       EventType = "host_changed"
	EventRoomDeleted       EventType = "room_deleted"
)

// RoomEvent is pushed to subscribers of a room after a change is committed.
type RoomEvent struct {
	Type     EventType      `json:"type"`
	Room     string         `json:"room"`
	Username string         `json:"username,omitempty"`
	Payload  map[string]any `json:"payload,omitempty"`
	At       time.Time      `json:"at"`
}

func NewRoomEvent(t EventType, room, username string) RoomEvent {
	return RoomEvent{
		Type:     t,
		Room:     room,
		Username: username,
		At:       time.Now().UTC(),
	}
}
