package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomgate/internal/domain"
)

type memoryRoomState struct {
	rooms    map[uuid.UUID]*domain.Room
	names    map[string]uuid.UUID
	requests map[uint64]*domain.JoinRequest
	nextReq  uint64
}

func (s *memoryRoomState) clone() *memoryRoomState {
	cp := &memoryRoomState{
		rooms:    make(map[uuid.UUID]*domain.Room, len(s.rooms)),
		names:    make(map[string]uuid.UUID, len(s.names)),
		requests: make(map[uint64]*domain.JoinRequest, len(s.requests)),
		nextReq:  s.nextReq,
	}
	for id, room := range s.rooms {
		cp.rooms[id] = room.Clone()
	}
	for name, id := range s.names {
		cp.names[name] = id
	}
	for id, req := range s.requests {
		cp.requests[id] = cloneJoinRequest(req)
	}
	return cp
}

// InMemoryRoomRepository serialises transactions behind one mutex. Each
// transaction mutates a copy of the state which replaces the original only
// when the callback succeeds.
type InMemoryRoomRepository struct {
	mu      sync.RWMutex
	state   *memoryRoomState
	members *InMemoryMemberRepository
}

func NewInMemoryRoomRepository(members *InMemoryMemberRepository) *InMemoryRoomRepository {
	return &InMemoryRoomRepository{
		state: &memoryRoomState{
			rooms:    make(map[uuid.UUID]*domain.Room),
			names:    make(map[string]uuid.UUID),
			requests: make(map[uint64]*domain.JoinRequest),
		},
		members: members,
	}
}

func (r *InMemoryRoomRepository) WithinTx(ctx context.Context, fn func(tx RoomTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tx := &memoryRoomTx{state: r.state.clone(), members: r.members}
	if err := fn(tx); err != nil {
		return err
	}

	r.state = tx.state
	if r.members != nil {
		for _, d := range tx.memberDeletes {
			r.members.delete(d.roomName, d.name, d.uid)
		}
	}
	return nil
}

func (r *InMemoryRoomRepository) GetRoom(ctx context.Context, name string) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.state.names[name]
	if !ok {
		return nil, ErrRoomNotFound
	}
	room, ok := r.state.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room.Clone(), nil
}

func (r *InMemoryRoomRepository) LatestJoinRequest(ctx context.Context, roomID, userID uuid.UUID) (*domain.JoinRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *domain.JoinRequest
	for _, req := range r.state.requests {
		if req.RoomID != roomID || req.UserID != userID {
			continue
		}
		if latest == nil || newerRequest(req, latest) {
			latest = req
		}
	}
	if latest == nil {
		return nil, ErrJoinRequestNotFound
	}
	return cloneJoinRequest(latest), nil
}

func (r *InMemoryRoomRepository) ListJoinRequests(ctx context.Context, roomID uuid.UUID, status domain.JoinStatus) ([]*domain.JoinRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.JoinRequest, 0)
	for _, req := range r.state.requests {
		if req.RoomID == roomID && req.Status == status {
			result = append(result, cloneJoinRequest(req))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return newerRequest(result[j], result[i])
	})
	return result, nil
}

type memberDelete struct {
	roomName, name, uid string
}

type memoryRoomTx struct {
	state         *memoryRoomState
	members       *InMemoryMemberRepository
	memberDeletes []memberDelete
}

func (t *memoryRoomTx) CreateRoom(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if room == nil {
		return errors.New("room is nil")
	}
	if _, ok := t.state.names[room.Name]; ok {
		return ErrRoomExists
	}

	t.state.rooms[room.ID] = room.Clone()
	t.state.names[room.Name] = room.ID
	return nil
}

func (t *memoryRoomTx) LockRoom(ctx context.Context, name string) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, ok := t.state.names[name]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return t.state.rooms[id].Clone(), nil
}

func (t *memoryRoomTx) UpdateRoom(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if room == nil {
		return errors.New("room is nil")
	}
	if _, ok := t.state.rooms[room.ID]; !ok {
		return ErrRoomNotFound
	}

	t.state.rooms[room.ID] = room.Clone()
	return nil
}

func (t *memoryRoomTx) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	room, ok := t.state.rooms[id]
	if !ok {
		return ErrRoomNotFound
	}

	for reqID, req := range t.state.requests {
		if req.RoomID == id {
			delete(t.state.requests, reqID)
		}
	}
	delete(t.state.names, room.Name)
	delete(t.state.rooms, id)
	return nil
}

func (t *memoryRoomTx) PendingJoinRequest(ctx context.Context, roomID, userID uuid.UUID) (*domain.JoinRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, req := range t.state.requests {
		if req.RoomID == roomID && req.UserID == userID && req.IsPending() {
			return cloneJoinRequest(req), nil
		}
	}
	return nil, ErrJoinRequestNotFound
}

func (t *memoryRoomTx) GetJoinRequest(ctx context.Context, roomID uuid.UUID, id uint64) (*domain.JoinRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req, ok := t.state.requests[id]
	if !ok || req.RoomID != roomID {
		return nil, ErrJoinRequestNotFound
	}
	return cloneJoinRequest(req), nil
}

func (t *memoryRoomTx) CreateJoinRequest(ctx context.Context, req *domain.JoinRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if req == nil {
		return errors.New("join request is nil")
	}
	if _, ok := t.state.rooms[req.RoomID]; !ok {
		return ErrRoomNotFound
	}

	t.state.nextReq++
	req.ID = t.state.nextReq
	t.state.requests[req.ID] = cloneJoinRequest(req)
	return nil
}

func (t *memoryRoomTx) UpdateJoinRequest(ctx context.Context, req *domain.JoinRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if req == nil {
		return errors.New("join request is nil")
	}
	if _, ok := t.state.requests[req.ID]; !ok {
		return ErrJoinRequestNotFound
	}

	t.state.requests[req.ID] = cloneJoinRequest(req)
	return nil
}

// DeleteMembers counts matching directory records now and removes them when
// the transaction commits.
func (t *memoryRoomTx) DeleteMembers(ctx context.Context, roomName, name, uid string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if t.members == nil {
		return 0, nil
	}

	n := t.members.count(roomName, name, uid)
	t.memberDeletes = append(t.memberDeletes, memberDelete{roomName: roomName, name: name, uid: uid})
	return n, nil
}

func newerRequest(a, b *domain.JoinRequest) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

func cloneJoinRequest(req *domain.JoinRequest) *domain.JoinRequest {
	cp := *req
	if req.DecidedAt != nil {
		t := *req.DecidedAt
		cp.DecidedAt = &t
	}
	return &cp
}

type InMemoryUserRepository struct {
	mu        sync.RWMutex
	users     map[uuid.UUID]*domain.User
	usernames map[string]uuid.UUID
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:     make(map[uuid.UUID]*domain.User),
		usernames: make(map[string]uuid.UUID),
	}
}

func (r *InMemoryUserRepository) Ensure(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if user == nil {
		return errors.New("user is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; ok {
		return nil
	}
	if _, ok := r.usernames[user.Username]; ok {
		return errors.New("username already registered to another user")
	}

	cp := *user
	r.users[user.ID] = &cp
	r.usernames[user.Username] = user.ID
	return nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *InMemoryUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.usernames[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *r.users[id]
	return &cp, nil
}

type InMemoryMemberRepository struct {
	mu      sync.RWMutex
	members []*domain.RoomMember
	nextID  uint64
}

func NewInMemoryMemberRepository() *InMemoryMemberRepository {
	return &InMemoryMemberRepository{}
}

func (r *InMemoryMemberRepository) GetOrCreate(ctx context.Context, member *domain.RoomMember) (*domain.RoomMember, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if member == nil {
		return nil, errors.New("member is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.members {
		if m.RoomName == member.RoomName && m.Name == member.Name && m.UID == member.UID {
			cp := *m
			return &cp, nil
		}
	}

	r.nextID++
	created := &domain.RoomMember{
		ID:       r.nextID,
		Name:     member.Name,
		UID:      member.UID,
		RoomName: member.RoomName,
	}
	r.members = append(r.members, created)
	cp := *created
	return &cp, nil
}

func (r *InMemoryMemberRepository) GetByUID(ctx context.Context, roomName, uid string) (*domain.RoomMember, error) {
	return r.find(ctx, func(m *domain.RoomMember) bool {
		return m.RoomName == roomName && m.UID == uid
	})
}

func (r *InMemoryMemberRepository) GetByName(ctx context.Context, roomName, name string) (*domain.RoomMember, error) {
	return r.find(ctx, func(m *domain.RoomMember) bool {
		return m.RoomName == roomName && strings.EqualFold(m.Name, name)
	})
}

func (r *InMemoryMemberRepository) Delete(ctx context.Context, roomName, name, uid string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.delete(roomName, name, uid), nil
}

func (r *InMemoryMemberRepository) find(ctx context.Context, match func(*domain.RoomMember) bool) (*domain.RoomMember, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.members {
		if match(m) {
			cp := *m
			return &cp, nil
		}
	}
	return nil, ErrMemberNotFound
}

func (r *InMemoryMemberRepository) count(roomName, name, uid string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, m := range r.members {
		if m.RoomName == roomName && m.Name == name && m.UID == uid {
			n++
		}
	}
	return n
}

func (r *InMemoryMemberRepository) delete(roomName, name, uid string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.members[:0]
	var n int64
	for _, m := range r.members {
		if m.RoomName == roomName && m.Name == name && m.UID == uid {
			n++
			continue
		}
		kept = append(kept, m)
	}
	r.members = kept
	return n
}
