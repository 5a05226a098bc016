package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomgate/internal/domain"
	"github.com/immxrtalbeast/roomgate/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueCredentialHostCreatesRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.newUser(t, "alice")

	cred, err := f.room.IssueCredential(ctx, "R", domain.ActionHost, alice)
	require.NoError(t, err)
	assert.NotEmpty(t, cred.Token)
	assert.NotZero(t, cred.UID)

	room, err := f.rooms.GetRoom(ctx, "R")
	require.NoError(t, err)
	assert.True(t, room.IsHost(alice.ID))
	assert.Len(t, room.Participants, 1)
	assert.Equal(t, cred.UID, room.Credential.UID)
}

func TestIssueCredentialErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.newUser(t, "alice")
	f.host(t, "R", alice)

	tests := []struct {
		name    string
		room    string
		action  domain.Action
		wantErr error
	}{
		{name: "host existing room", room: "R", action: domain.ActionHost, wantErr: domain.ErrConflict},
		{name: "join missing room", room: "nope", action: domain.ActionJoin, wantErr: domain.ErrNotFound},
		{name: "unknown action", room: "R", action: domain.Action("watch"), wantErr: domain.ErrInvalidArgument},
		{name: "empty room name", room: "", action: domain.ActionHost, wantErr: domain.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.room.IssueCredential(ctx, tt.room, tt.action, alice)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	cred, err := f.room.IssueCredential(ctx, "R", domain.ActionJoin, alice)
	require.NoError(t, err)
	assert.NotEmpty(t, cred.Token)
}

func TestConcurrentHostOnlyOneWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const n = 8
	users := make([]*domain.User, n)
	for i := range users {
		users[i] = f.newUser(t, "user"+string(rune('a'+i)))
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for _, u := range users {
		wg.Add(1)
		go func(u *domain.User) {
			defer wg.Done()
			_, err := f.room.IssueCredential(ctx, "R", domain.ActionHost, u)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, domain.ErrConflict):
				conflicts++
			}
		}(u)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, n-1, conflicts)
}

func TestLeave(t *testing.T) {
	ctx := context.Background()

	t.Run("host leaves room hostless", func(t *testing.T) {
		f := newFixture(t)
		alice, bob := f.newUser(t, "alice"), f.newUser(t, "bob")
		f.host(t, "R", alice)
		f.admit(t, "R", bob, alice)

		require.NoError(t, f.room.Leave(ctx, "R", alice.ID))

		room, err := f.rooms.GetRoom(ctx, "R")
		require.NoError(t, err)
		assert.False(t, room.HasHost())
		assert.True(t, room.IsParticipant(bob.ID))
		assert.Contains(t, f.events.types(), domain.EventHostChanged)
	})

	t.Run("last participant deletes room", func(t *testing.T) {
		f := newFixture(t)
		alice := f.newUser(t, "alice")
		f.host(t, "R", alice)
		_, err := f.join.RequestJoin(ctx, "R", f.newUser(t, "bob"))
		require.NoError(t, err)

		require.NoError(t, f.room.Leave(ctx, "R", alice.ID))

		_, err = f.rooms.GetRoom(ctx, "R")
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, f.events.types(), domain.EventRoomDeleted)

		// the name is free again
		f.host(t, "R", alice)
		pending, err := f.join.ListPending(ctx, "R", alice.ID)
		require.NoError(t, err)
		assert.Empty(t, pending.Requests)
	})

	t.Run("not a participant", func(t *testing.T) {
		f := newFixture(t)
		alice, bob := f.newUser(t, "alice"), f.newUser(t, "bob")
		f.host(t, "R", alice)

		require.ErrorIs(t, f.room.Leave(ctx, "R", bob.ID), domain.ErrNotFound)
		require.ErrorIs(t, f.room.Leave(ctx, "missing", alice.ID), domain.ErrNotFound)
	})
}

func TestRemoveParticipant(t *testing.T) {
	ctx := context.Background()

	t.Run("host removes participant and directory record", func(t *testing.T) {
		f := newFixture(t)
		alice, bob := f.newUser(t, "alice"), f.newUser(t, "bob")
		f.host(t, "R", alice)
		f.admit(t, "R", bob, alice)
		_, err := f.member.CreateMember(ctx, "bob", "42", "R")
		require.NoError(t, err)

		err = f.room.RemoveParticipant(ctx, "R", RemoveTarget{Username: "bob", UID: "42"}, alice.ID)
		require.NoError(t, err)

		views, err := f.room.GetParticipants(ctx, "R")
		require.NoError(t, err)
		assert.Equal(t, []string{"alice"}, usernames(views))
		_, err = f.member.GetMember(ctx, "R", "42")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("non-host cannot remove others", func(t *testing.T) {
		f := newFixture(t)
		alice, bob := f.newUser(t, "alice"), f.newUser(t, "bob")
		f.host(t, "R", alice)
		f.admit(t, "R", bob, alice)

		err := f.room.RemoveParticipant(ctx, "R", RemoveTarget{Username: "alice"}, bob.ID)
		require.ErrorIs(t, err, domain.ErrForbidden)

		require.NoError(t, f.room.RemoveParticipant(ctx, "R", RemoveTarget{Username: "bob"}, bob.ID))
	})

	t.Run("removing host empties host slot", func(t *testing.T) {
		f := newFixture(t)
		alice, bob := f.newUser(t, "alice"), f.newUser(t, "bob")
		f.host(t, "R", alice)
		f.admit(t, "R", bob, alice)

		require.NoError(t, f.room.RemoveParticipant(ctx, "R", RemoveTarget{Username: "alice"}, alice.ID))

		room, err := f.rooms.GetRoom(ctx, "R")
		require.NoError(t, err)
		assert.False(t, room.HasHost())
	})

	t.Run("missing participant", func(t *testing.T) {
		f := newFixture(t)
		alice := f.newUser(t, "alice")
		f.host(t, "R", alice)

		err := f.room.RemoveParticipant(ctx, "R", RemoveTarget{Username: "ghost"}, alice.ID)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestChangeHost(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice, bob, carol := f.newUser(t, "alice"), f.newUser(t, "bob"), f.newUser(t, "carol")
	f.host(t, "R", alice)
	f.admit(t, "R", bob, alice)

	require.ErrorIs(t, f.room.ChangeHost(ctx, "R", "carol", alice.ID), domain.ErrInvalidState)
	require.ErrorIs(t, f.room.ChangeHost(ctx, "R", "nobody", alice.ID), domain.ErrNotFound)
	require.ErrorIs(t, f.room.ChangeHost(ctx, "missing", "bob", alice.ID), domain.ErrNotFound)
	require.ErrorIs(t, f.room.ChangeHost(ctx, "R", "bob", bob.ID), domain.ErrForbidden)
	require.ErrorIs(t, f.room.ChangeHost(ctx, "R", "bob", carol.ID), domain.ErrForbidden)

	require.NoError(t, f.room.ChangeHost(ctx, "R", "bob", alice.ID))

	views, err := f.room.GetParticipants(ctx, "R")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, usernames(views))
	for _, v := range views {
		assert.Equal(t, v.Username == "bob", v.IsHost, v.Username)
	}
}

func TestChangeHostInHostlessRoom(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice, bob := f.newUser(t, "alice"), f.newUser(t, "bob")
	f.host(t, "R", alice)
	f.admit(t, "R", bob, alice)
	require.NoError(t, f.room.Leave(ctx, "R", alice.ID))

	require.NoError(t, f.room.ChangeHost(ctx, "R", "bob", bob.ID))

	room, err := f.rooms.GetRoom(ctx, "R")
	require.NoError(t, err)
	assert.True(t, room.IsHost(bob.ID))
}

func TestCreateRoomValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.room.CreateRoom(ctx, "R", nil, domain.MediaCredential{})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = f.room.CreateRoom(ctx, " R ", domain.NewUser(uuid.New(), "x"), domain.MediaCredential{})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	room, err := f.room.CreateRoom(ctx, "R", domain.NewUser(uuid.New(), "x"), domain.MediaCredential{Token: "t", UID: 7})
	require.NoError(t, err)
	assert.Equal(t, "R", room.Name)

	_, err = f.room.CreateRoom(ctx, "R", domain.NewUser(uuid.New(), "y"), domain.MediaCredential{})
	require.ErrorIs(t, err, repository.ErrRoomExists)
}
