package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomgate/internal/domain"
)

var (
	ErrRoomNotFound        = fmt.Errorf("room %w", domain.ErrNotFound)
	ErrRoomExists          = fmt.Errorf("%w: room already exists", domain.ErrConflict)
	ErrJoinRequestNotFound = fmt.Errorf("join request %w", domain.ErrNotFound)
	ErrUserNotFound        = fmt.Errorf("user %w", domain.ErrNotFound)
	ErrMemberNotFound      = fmt.Errorf("member %w", domain.ErrNotFound)
)

// RoomRepository owns rooms, their rosters and join requests.
// Every check-then-write sequence must run inside WithinTx.
type RoomRepository interface {
	WithinTx(ctx context.Context, fn func(tx RoomTx) error) error
	GetRoom(ctx context.Context, name string) (*domain.Room, error)
	LatestJoinRequest(ctx context.Context, roomID, userID uuid.UUID) (*domain.JoinRequest, error)
	ListJoinRequests(ctx context.Context, roomID uuid.UUID, status domain.JoinStatus) ([]*domain.JoinRequest, error)
}

// RoomTx is the transactional view handed to WithinTx callbacks.
type RoomTx interface {
	CreateRoom(ctx context.Context, room *domain.Room) error
	// LockRoom loads the room and holds it against concurrent writers until
	// the transaction ends.
	LockRoom(ctx context.Context, name string) (*domain.Room, error)
	UpdateRoom(ctx context.Context, room *domain.Room) error
	DeleteRoom(ctx context.Context, id uuid.UUID) error

	PendingJoinRequest(ctx context.Context, roomID, userID uuid.UUID) (*domain.JoinRequest, error)
	GetJoinRequest(ctx context.Context, roomID uuid.UUID, id uint64) (*domain.JoinRequest, error)
	CreateJoinRequest(ctx context.Context, req *domain.JoinRequest) error
	UpdateJoinRequest(ctx context.Context, req *domain.JoinRequest) error

	DeleteMembers(ctx context.Context, roomName, name, uid string) (int64, error)
}

type UserRepository interface {
	// Ensure records the identity reference if it is not known yet. Existing
	// references are left untouched.
	Ensure(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type MemberRepository interface {
	GetOrCreate(ctx context.Context, member *domain.RoomMember) (*domain.RoomMember, error)
	GetByUID(ctx context.Context, roomName, uid string) (*domain.RoomMember, error)
	GetByName(ctx context.Context, roomName, name string) (*domain.RoomMember, error)
	Delete(ctx context.Context, roomName, name, uid string) (int64, error)
}
