package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomgate/internal/domain"
)

const (
	maxRoomNameLength = 255
	maxUsernameLength = 150
	maxMemberField    = 200
)

func validateRoomName(name string) error {
	return validateField("room name", name, maxRoomNameLength)
}

func validateUsername(name string) error {
	return validateField("username", name, maxUsernameLength)
}

func validateField(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrInvalidArgument, field)
	}
	if value != strings.TrimSpace(value) {
		return fmt.Errorf("%w: %s has surrounding whitespace", domain.ErrInvalidArgument, field)
	}
	if utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%w: %s is too long", domain.ErrInvalidArgument, field)
	}
	return nil
}

// canActAsHost reports whether userID may use host authority in room. In a
// hostless room every participant may.
func canActAsHost(room *domain.Room, userID uuid.UUID) bool {
	if room.HasHost() {
		return room.IsHost(userID)
	}
	return room.IsParticipant(userID)
}
