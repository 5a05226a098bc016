package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomgate/internal/domain"
	"github.com/immxrtalbeast/roomgate/internal/media"
	"github.com/immxrtalbeast/roomgate/internal/repository"
	"github.com/stretchr/testify/require"
)

type stubIssuer struct {
	mu   sync.Mutex
	next uint32
}

func (i *stubIssuer) NewUID() uint32 {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.next++
	return i.next
}

func (i *stubIssuer) Issue(channel string, uid uint32) (*media.Credential, error) {
	return &media.Credential{
		Token:     "token-" + channel,
		UID:       uid,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.RoomEvent
}

func (p *recordingPublisher) Publish(e domain.RoomEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) types() []domain.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	rooms   *repository.InMemoryRoomRepository
	users   *repository.InMemoryUserRepository
	members *repository.InMemoryMemberRepository
	events  *recordingPublisher

	room   *RoomService
	join   *JoinService
	member *MemberService
	user   *UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	members := repository.NewInMemoryMemberRepository()
	rooms := repository.NewInMemoryRoomRepository(members)
	users := repository.NewInMemoryUserRepository()
	events := &recordingPublisher{}

	return &fixture{
		rooms:   rooms,
		users:   users,
		members: members,
		events:  events,
		room:    NewRoomService(rooms, users, &stubIssuer{}, events, log),
		join:    NewJoinService(rooms, events, log),
		member:  NewMemberService(members, log),
		user:    NewUserService(users, log),
	}
}

func (f *fixture) newUser(t *testing.T, name string) *domain.User {
	t.Helper()
	u := domain.NewUser(uuid.New(), name)
	_, err := f.user.EnsureUser(context.Background(), u)
	require.NoError(t, err)
	return u
}

func (f *fixture) host(t *testing.T, room string, u *domain.User) {
	t.Helper()
	_, err := f.room.IssueCredential(context.Background(), room, domain.ActionHost, u)
	require.NoError(t, err)
}

// admit gets u into a hosted room through the approval flow.
func (f *fixture) admit(t *testing.T, room string, u, host *domain.User) {
	t.Helper()
	ctx := context.Background()
	out, err := f.join.RequestJoin(ctx, room, u)
	require.NoError(t, err)
	require.Equal(t, domain.JoinStatusPending, out.Status)
	_, err = f.join.Decide(ctx, room, out.Request.ID, true, host.ID)
	require.NoError(t, err)
}

func usernames(views []ParticipantView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Username)
	}
	return out
}
