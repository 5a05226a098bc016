package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomgate/internal/domain"
	"github.com/immxrtalbeast/roomgate/internal/repository/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRoomRepository struct {
	db *gorm.DB
}

func NewPostgresRoomRepository(db *gorm.DB) *PostgresRoomRepository {
	return &PostgresRoomRepository{db: db}
}

func (r *PostgresRoomRepository) WithinTx(ctx context.Context, fn func(tx RoomTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&postgresRoomTx{tx: tx})
	})
}

func (r *PostgresRoomRepository) GetRoom(ctx context.Context, name string) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var room model.Room
	err := r.db.WithContext(ctx).
		Preload("Participants.User").
		First(&room, "room_name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return toDomainRoom(&room), nil
}

func (r *PostgresRoomRepository) LatestJoinRequest(ctx context.Context, roomID, userID uuid.UUID) (*domain.JoinRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var req model.JoinRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Order("created_at DESC").
		Order("id DESC").
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJoinRequestNotFound
		}
		return nil, err
	}

	return toDomainJoinRequest(&req)
}

func (r *PostgresRoomRepository) ListJoinRequests(ctx context.Context, roomID uuid.UUID, status domain.JoinStatus) ([]*domain.JoinRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var reqs []model.JoinRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("room_id = ? AND status = ?", roomID, string(status)).
		Order("created_at ASC").
		Order("id ASC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}

	result := make([]*domain.JoinRequest, 0, len(reqs))
	for i := range reqs {
		req, err := toDomainJoinRequest(&reqs[i])
		if err != nil {
			return nil, err
		}
		result = append(result, req)
	}
	return result, nil
}

type postgresRoomTx struct {
	tx *gorm.DB
}

func (t *postgresRoomTx) CreateRoom(ctx context.Context, room *domain.Room) error {
	if room == nil {
		return errors.New("room is nil")
	}

	roomModel := toModelRoom(room)

	if err := t.tx.WithContext(ctx).Omit(clause.Associations).Create(roomModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrRoomExists
		}
		return err
	}

	if len(roomModel.Participants) > 0 {
		if err := t.tx.WithContext(ctx).Omit("User").Create(&roomModel.Participants).Error; err != nil {
			return err
		}
	}
	return nil
}

func (t *postgresRoomTx) LockRoom(ctx context.Context, name string) (*domain.Room, error) {
	var room model.Room
	err := t.tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, "room_name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	err = t.tx.WithContext(ctx).
		Preload("User").
		Where("room_id = ?", room.ID).
		Find(&room.Participants).Error
	if err != nil {
		return nil, err
	}

	return toDomainRoom(&room), nil
}

func (t *postgresRoomTx) UpdateRoom(ctx context.Context, room *domain.Room) error {
	if room == nil {
		return errors.New("room is nil")
	}

	roomModel := toModelRoom(room)

	updates := map[string]any{}
	if roomModel.CurrentHostID == nil {
		updates["current_host_id"] = gorm.Expr("NULL")
	} else {
		updates["current_host_id"] = *roomModel.CurrentHostID
	}

	res := t.tx.WithContext(ctx).Model(&model.Room{}).Where("id = ?", roomModel.ID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}

	if err := t.tx.WithContext(ctx).Where("room_id = ?", roomModel.ID).Delete(&model.Participant{}).Error; err != nil {
		return err
	}

	if len(roomModel.Participants) > 0 {
		if err := t.tx.WithContext(ctx).Omit("User").Create(&roomModel.Participants).Error; err != nil {
			return err
		}
	}

	return nil
}

// DeleteRoom removes the room together with its roster and join requests.
// The foreign keys cascade as well; the explicit deletes keep the behaviour
// independent of how the schema was created.
func (t *postgresRoomTx) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	db := t.tx.WithContext(ctx)

	if err := db.Where("room_id = ?", id).Delete(&model.JoinRequest{}).Error; err != nil {
		return err
	}
	if err := db.Where("room_id = ?", id).Delete(&model.Participant{}).Error; err != nil {
		return err
	}

	res := db.Delete(&model.Room{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (t *postgresRoomTx) PendingJoinRequest(ctx context.Context, roomID, userID uuid.UUID) (*domain.JoinRequest, error) {
	var req model.JoinRequest
	err := t.tx.WithContext(ctx).
		Preload("User").
		Where("room_id = ? AND user_id = ? AND status = ?", roomID, userID, string(domain.JoinStatusPending)).
		Order("created_at DESC").
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJoinRequestNotFound
		}
		return nil, err
	}
	return toDomainJoinRequest(&req)
}

func (t *postgresRoomTx) GetJoinRequest(ctx context.Context, roomID uuid.UUID, id uint64) (*domain.JoinRequest, error) {
	var req model.JoinRequest
	err := t.tx.WithContext(ctx).
		Preload("User").
		Where("room_id = ? AND id = ?", roomID, id).
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJoinRequestNotFound
		}
		return nil, err
	}
	return toDomainJoinRequest(&req)
}

func (t *postgresRoomTx) CreateJoinRequest(ctx context.Context, req *domain.JoinRequest) error {
	if req == nil {
		return errors.New("join request is nil")
	}

	reqModel := toModelJoinRequest(req)
	if err := t.tx.WithContext(ctx).Omit("User").Create(reqModel).Error; err != nil {
		return err
	}
	req.ID = reqModel.ID
	return nil
}

func (t *postgresRoomTx) UpdateJoinRequest(ctx context.Context, req *domain.JoinRequest) error {
	if req == nil {
		return errors.New("join request is nil")
	}

	updates := map[string]any{
		"status": string(req.Status),
	}
	if req.DecidedAt == nil {
		updates["decided_at"] = gorm.Expr("NULL")
	} else {
		updates["decided_at"] = req.DecidedAt.UTC()
	}

	res := t.tx.WithContext(ctx).Model(&model.JoinRequest{}).Where("id = ?", req.ID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrJoinRequestNotFound
	}
	return nil
}

func (t *postgresRoomTx) DeleteMembers(ctx context.Context, roomName, name, uid string) (int64, error) {
	res := t.tx.WithContext(ctx).
		Where("room_name = ? AND name = ? AND uid = ?", roomName, name, uid).
		Delete(&model.RoomMember{})
	return res.RowsAffected, res.Error
}

type PostgresUserRepository struct {
	db *gorm.DB
}

func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Ensure(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if user == nil {
		return errors.New("user is nil")
	}

	userModel := toModelUser(user)

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(userModel).Error
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var user model.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return toDomainUser(&user), nil
}

func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var user model.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return toDomainUser(&user), nil
}

type PostgresMemberRepository struct {
	db *gorm.DB
}

func NewPostgresMemberRepository(db *gorm.DB) *PostgresMemberRepository {
	return &PostgresMemberRepository{db: db}
}

func (r *PostgresMemberRepository) GetOrCreate(ctx context.Context, member *domain.RoomMember) (*domain.RoomMember, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if member == nil {
		return nil, errors.New("member is nil")
	}

	var m model.RoomMember
	err := r.db.WithContext(ctx).
		Where(model.RoomMember{Name: member.Name, UID: member.UID, RoomName: member.RoomName}).
		FirstOrCreate(&m).Error
	if err != nil {
		return nil, err
	}
	return toDomainMember(&m), nil
}

func (r *PostgresMemberRepository) GetByUID(ctx context.Context, roomName, uid string) (*domain.RoomMember, error) {
	return r.first(ctx, "room_name = ? AND uid = ?", roomName, uid)
}

func (r *PostgresMemberRepository) GetByName(ctx context.Context, roomName, name string) (*domain.RoomMember, error) {
	return r.first(ctx, "room_name = ? AND LOWER(name) = LOWER(?)", roomName, name)
}

func (r *PostgresMemberRepository) Delete(ctx context.Context, roomName, name, uid string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	res := r.db.WithContext(ctx).
		Where("room_name = ? AND name = ? AND uid = ?", roomName, name, uid).
		Delete(&model.RoomMember{})
	return res.RowsAffected, res.Error
}

func (r *PostgresMemberRepository) first(ctx context.Context, query string, args ...any) (*domain.RoomMember, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var m model.RoomMember
	err := r.db.WithContext(ctx).Where(query, args...).Order("id ASC").First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return toDomainMember(&m), nil
}

func toModelRoom(room *domain.Room) *model.Room {
	participants := make([]model.Participant, 0, len(room.Participants))
	for _, p := range room.Participants {
		if p == nil {
			continue
		}
		joinedAt := p.JoinedAt
		if joinedAt.IsZero() {
			joinedAt = time.Now().UTC()
		}
		participants = append(participants, model.Participant{
			RoomID:   room.ID,
			UserID:   p.UserID,
			JoinedAt: joinedAt.UTC(),
		})
	}

	var hostID *uuid.UUID
	if room.CurrentHost != nil {
		id := *room.CurrentHost
		hostID = &id
	}

	return &model.Room{
		ID:            room.ID,
		Name:          room.Name,
		CurrentHostID: hostID,
		Token:         room.Credential.Token,
		UID:           room.Credential.UID,
		CreatedAt:     room.CreatedAt.UTC(),
		Participants:  participants,
	}
}

func toDomainRoom(room *model.Room) *domain.Room {
	participants := make(map[uuid.UUID]*domain.Participant, len(room.Participants))
	for i := range room.Participants {
		p := room.Participants[i]
		username := ""
		if p.User != nil {
			username = p.User.Username
		}
		participants[p.UserID] = &domain.Participant{
			UserID:   p.UserID,
			Username: username,
			JoinedAt: p.JoinedAt.UTC(),
		}
	}

	var hostID *uuid.UUID
	if room.CurrentHostID != nil {
		id := *room.CurrentHostID
		hostID = &id
	}

	return &domain.Room{
		ID:           room.ID,
		Name:         room.Name,
		CurrentHost:  hostID,
		Participants: participants,
		Credential: domain.MediaCredential{
			Token: room.Token,
			UID:   room.UID,
		},
		CreatedAt: room.CreatedAt.UTC(),
	}
}

func toModelJoinRequest(req *domain.JoinRequest) *model.JoinRequest {
	var decidedAt *time.Time
	if req.DecidedAt != nil {
		t := req.DecidedAt.UTC()
		decidedAt = &t
	}
	return &model.JoinRequest{
		ID:        req.ID,
		RoomID:    req.RoomID,
		UserID:    req.UserID,
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt.UTC(),
		DecidedAt: decidedAt,
	}
}

func toDomainJoinRequest(req *model.JoinRequest) (*domain.JoinRequest, error) {
	// A stored status outside the enum is corruption, not a client error.
	status, err := domain.ParseJoinStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("join request %d has unreadable status: %v", req.ID, err)
	}

	username := ""
	if req.User != nil {
		username = req.User.Username
	}

	var decidedAt *time.Time
	if req.DecidedAt != nil {
		t := req.DecidedAt.UTC()
		decidedAt = &t
	}

	return &domain.JoinRequest{
		ID:        req.ID,
		RoomID:    req.RoomID,
		UserID:    req.UserID,
		Username:  username,
		Status:    status,
		CreatedAt: req.CreatedAt.UTC(),
		DecidedAt: decidedAt,
	}, nil
}

func toModelUser(user *domain.User) *model.User {
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return &model.User{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: createdAt.UTC(),
	}
}

func toDomainUser(user *model.User) *domain.User {
	return &domain.User{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt.UTC(),
	}
}

func toDomainMember(m *model.RoomMember) *domain.RoomMember {
	return &domain.RoomMember{
		ID:       m.ID,
		Name:     m.Name,
		UID:      m.UID,
		RoomName: m.RoomName,
	}
}
