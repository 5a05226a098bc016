package repository

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomgate/internal/domain"
	"github.com/immxrtalbeast/roomgate/internal/repository/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB connects to the database named by TEST_DATABASE_DSN and skips
// the test when it is not set.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	t.Cleanup(func() {
		db.Exec("TRUNCATE room_members, join_requests, room_participants, rooms, users CASCADE")
	})
	return db
}

func TestPostgresRoomLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	users := NewPostgresUserRepository(db)
	rooms := NewPostgresRoomRepository(db)

	host := domain.NewUser(uuid.New(), "alice-"+uuid.NewString()[:8])
	bob := domain.NewUser(uuid.New(), "bob-"+uuid.NewString()[:8])
	require.NoError(t, users.Ensure(ctx, host))
	require.NoError(t, users.Ensure(ctx, bob))

	name := "room-" + uuid.NewString()[:8]
	room := domain.NewRoom(name, host, domain.MediaCredential{Token: "tok", UID: 12})
	require.NoError(t, rooms.WithinTx(ctx, func(tx RoomTx) error {
		return tx.CreateRoom(ctx, room)
	}))

	err := rooms.WithinTx(ctx, func(tx RoomTx) error {
		return tx.CreateRoom(ctx, domain.NewRoom(name, bob, domain.MediaCredential{}))
	})
	require.ErrorIs(t, err, ErrRoomExists)

	var reqID uint64
	require.NoError(t, rooms.WithinTx(ctx, func(tx RoomTx) error {
		locked, err := tx.LockRoom(ctx, name)
		if err != nil {
			return err
		}
		req := domain.NewJoinRequest(locked.ID, bob)
		if err := tx.CreateJoinRequest(ctx, req); err != nil {
			return err
		}
		reqID = req.ID
		return nil
	}))
	assert.NotZero(t, reqID)

	require.NoError(t, rooms.WithinTx(ctx, func(tx RoomTx) error {
		locked, err := tx.LockRoom(ctx, name)
		if err != nil {
			return err
		}
		req, err := tx.GetJoinRequest(ctx, locked.ID, reqID)
		if err != nil {
			return err
		}
		if _, err := req.Decide(true); err != nil {
			return err
		}
		if err := tx.UpdateJoinRequest(ctx, req); err != nil {
			return err
		}
		locked.AddParticipant(bob)
		if err := locked.RemoveParticipant(host.ID); err != nil {
			return err
		}
		return tx.UpdateRoom(ctx, locked)
	}))

	got, err := rooms.GetRoom(ctx, name)
	require.NoError(t, err)
	assert.False(t, got.HasHost())
	require.Len(t, got.Participants, 1)
	assert.Equal(t, bob.Username, got.Participants[bob.ID].Username)

	latest, err := rooms.LatestJoinRequest(ctx, got.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JoinStatusApproved, latest.Status)

	require.NoError(t, rooms.WithinTx(ctx, func(tx RoomTx) error {
		return tx.DeleteRoom(ctx, got.ID)
	}))

	_, err = rooms.GetRoom(ctx, name)
	assert.ErrorIs(t, err, ErrRoomNotFound)
	_, err = rooms.LatestJoinRequest(ctx, got.ID, bob.ID)
	assert.ErrorIs(t, err, ErrJoinRequestNotFound)
}

func TestToDomainJoinRequestStatus(t *testing.T) {
	row := &model.JoinRequest{ID: 9, Status: "approved", User: &model.User{Username: "bob"}}

	req, err := toDomainJoinRequest(row)
	require.NoError(t, err)
	assert.Equal(t, domain.JoinStatusApproved, req.Status)
	assert.Equal(t, "bob", req.Username)

	row.Status = "maybe"
	_, err = toDomainJoinRequest(row)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidArgument)
}
