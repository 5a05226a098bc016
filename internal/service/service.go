package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomgate/internal/domain"
	"github.com/immxrtalbeast/roomgate/internal/media"
)

type RoomInteractor interface {
	IssueCredential(ctx context.Context, roomName string, action domain.Action, caller *domain.User) (*media.Credential, error)
	CreateRoom(ctx context.Context, roomName string, host *domain.User, cred domain.MediaCredential) (*domain.Room, error)
	EnsureRoomExists(ctx context.Context, roomName string) error
	Leave(ctx context.Context, roomName string, userID uuid.UUID) error
	RemoveParticipant(ctx context.Context, roomName string, target RemoveTarget, requestedBy uuid.UUID) error
	ChangeHost(ctx context.Context, roomName string, newHostUsername string, requestedBy uuid.UUID) error
	GetParticipants(ctx context.Context, roomName string) ([]ParticipantView, error)
}

type JoinInteractor interface {
	RequestJoin(ctx context.Context, roomName string, user *domain.User) (domain.JoinOutcome, error)
	Decide(ctx context.Context, roomName string, requestID uint64, approve bool, decidedBy uuid.UUID) (*domain.JoinRequest, error)
	CheckStatus(ctx context.Context, roomName string, userID uuid.UUID) (*domain.JoinRequest, error)
	ListPending(ctx context.Context, roomName string, requester uuid.UUID) (*PendingRequests, error)
}

type MemberInteractor interface {
	CreateMember(ctx context.Context, name, uid, roomName string) (*domain.RoomMember, error)
	GetMember(ctx context.Context, roomName, uid string) (*domain.RoomMember, error)
	DeleteMember(ctx context.Context, roomName, name, uid string) error
	GetUIDByUsername(ctx context.Context, roomName, username string) (string, error)
}

type UserInteractor interface {
	EnsureUser(ctx context.Context, user *domain.User) (*domain.User, error)
}

// CredentialIssuer is the external media token service.
type CredentialIssuer interface {
	NewUID() uint32
	Issue(channel string, uid uint32) (*media.Credential, error)
}

// Publisher receives committed room events.
type Publisher interface {
	Publish(event domain.RoomEvent)
}

type ParticipantView struct {
	UserID   uuid.UUID
	Username string
	IsHost   bool
}

type PendingRequests struct {
	Requests []*domain.JoinRequest
	IsHost   bool
}

// RemoveTarget names the participant to remove and the directory record the
// browser registered for their media uid.
type RemoveTarget struct {
	Username string
	UID      string
}

type nopPublisher struct{}

func (nopPublisher) Publish(domain.RoomEvent) {}
