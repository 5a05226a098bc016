package service

import (
	"context"
	"log/slog"

	"github.com/immxrtalbeast/roomgate/internal/domain"
	"github.com/immxrtalbeast/roomgate/internal/repository"
	"github.com/immxrtalbeast/roomgate/lib/logger/sl"
)

// MemberService keeps the display-name directory the browser uses to label
// media streams by uid.
type MemberService struct {
	members repository.MemberRepository
	log     *slog.Logger
}

func NewMemberService(members repository.MemberRepository, log *slog.Logger) *MemberService {
	if log == nil {
		log = slog.Default()
	}
	return &MemberService{members: members, log: log}
}

func (s *MemberService) CreateMember(ctx context.Context, name, uid, roomName string) (*domain.RoomMember, error) {
	const op = "service.member.CreateMember"
	log := s.log.With(slog.String("op", op), slog.String("room", roomName), slog.String("uid", uid))

	if err := validateMember(name, uid, roomName); err != nil {
		return nil, err
	}
	member, err := s.members.GetOrCreate(ctx, &domain.RoomMember{Name: name, UID: uid, RoomName: roomName})
	if err != nil {
		log.Error("failed to save member", sl.Err(err))
		return nil, err
	}
	return member, nil
}

func (s *MemberService) GetMember(ctx context.Context, roomName, uid string) (*domain.RoomMember, error) {
	if err := validateField("uid", uid, maxMemberField); err != nil {
		return nil, err
	}
	return s.members.GetByUID(ctx, roomName, uid)
}

// DeleteMember is a no-op for records that do not exist.
func (s *MemberService) DeleteMember(ctx context.Context, roomName, name, uid string) error {
	const op = "service.member.DeleteMember"
	log := s.log.With(slog.String("op", op), slog.String("room", roomName), slog.String("uid", uid))

	if err := validateMember(name, uid, roomName); err != nil {
		return err
	}
	n, err := s.members.Delete(ctx, roomName, name, uid)
	if err != nil {
		log.Error("failed to delete member", sl.Err(err))
		return err
	}
	log.Debug("members deleted", slog.Int64("count", n))
	return nil
}

func (s *MemberService) GetUIDByUsername(ctx context.Context, roomName, username string) (string, error) {
	if err := validateField("username", username, maxMemberField); err != nil {
		return "", err
	}
	member, err := s.members.GetByName(ctx, roomName, username)
	if err != nil {
		return "", err
	}
	return member.UID, nil
}

func validateMember(name, uid, roomName string) error {
	if err := validateField("name", name, maxMemberField); err != nil {
		return err
	}
	if err := validateField("uid", uid, maxMemberField); err != nil {
		return err
	}
	return validateRoomName(roomName)
}
