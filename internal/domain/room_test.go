package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomSeatsHost(t *testing.T) {
	host := NewUser(uuid.New(), "alice")
	room := NewRoom("standup", host, MediaCredential{Token: "tok", UID: 7})

	require.True(t, room.HasHost())
	assert.True(t, room.IsHost(host.ID))
	assert.True(t, room.IsParticipant(host.ID))
	assert.Len(t, room.Participants, 1)
	assert.Equal(t, uint32(7), room.Credential.UID)
}

func TestRoomAddParticipantIsIdempotent(t *testing.T) {
	host := NewUser(uuid.New(), "alice")
	bob := NewUser(uuid.New(), "bob")
	room := NewRoom("standup", host, MediaCredential{})

	assert.True(t, room.AddParticipant(bob))
	assert.False(t, room.AddParticipant(bob))
	assert.Len(t, room.Participants, 2)
}

func TestRoomRemoveHostLeavesRoomHostless(t *testing.T) {
	host := NewUser(uuid.New(), "alice")
	bob := NewUser(uuid.New(), "bob")
	room := NewRoom("standup", host, MediaCredential{})
	room.AddParticipant(bob)

	require.NoError(t, room.RemoveParticipant(host.ID))
	assert.False(t, room.HasHost())
	assert.False(t, room.IsEmpty())

	require.NoError(t, room.RemoveParticipant(bob.ID))
	assert.True(t, room.IsEmpty())

	err := room.RemoveParticipant(bob.ID)
	assert.ErrorIs(t, err, ErrNotParticipant)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestRoomSetHostRequiresParticipant(t *testing.T) {
	host := NewUser(uuid.New(), "alice")
	bob := NewUser(uuid.New(), "bob")
	room := NewRoom("standup", host, MediaCredential{})

	assert.ErrorIs(t, room.SetHost(bob.ID), ErrNotParticipant)
	assert.True(t, room.IsHost(host.ID))

	room.AddParticipant(bob)
	require.NoError(t, room.SetHost(bob.ID))
	assert.True(t, room.IsHost(bob.ID))
	assert.Len(t, room.Participants, 2)
}

func TestRoomCloneIsIndependent(t *testing.T) {
	host := NewUser(uuid.New(), "alice")
	room := NewRoom("standup", host, MediaCredential{})

	cp := room.Clone()
	require.NoError(t, cp.RemoveParticipant(host.ID))

	assert.True(t, room.IsHost(host.ID))
	assert.True(t, room.IsParticipant(host.ID))
}
