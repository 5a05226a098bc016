package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomgate/internal/domain"
	"github.com/immxrtalbeast/roomgate/internal/media"
	"github.com/immxrtalbeast/roomgate/internal/repository"
	"github.com/immxrtalbeast/roomgate/lib/logger/sl"
)

type RoomService struct {
	rooms  repository.RoomRepository
	users  repository.UserRepository
	issuer CredentialIssuer
	events Publisher
	log    *slog.Logger
}

func NewRoomService(
	rooms repository.RoomRepository,
	users repository.UserRepository,
	issuer CredentialIssuer,
	events Publisher,
	log *slog.Logger,
) *RoomService {
	if log == nil {
		log = slog.Default()
	}
	if events == nil {
		events = nopPublisher{}
	}
	return &RoomService{
		rooms:  rooms,
		users:  users,
		issuer: issuer,
		events: events,
		log:    log,
	}
}

// IssueCredential hands out a media credential for roomName. Hosting creates
// the room with the caller as host; joining requires the room to exist.
func (s *RoomService) IssueCredential(ctx context.Context, roomName string, action domain.Action, caller *domain.User) (*media.Credential, error) {
	const op = "service.room.IssueCredential"
	log := s.log.With(slog.String("op", op), slog.String("room", roomName), slog.String("action", string(action)))

	if err := validateRoomName(roomName); err != nil {
		return nil, err
	}

	switch action {
	case domain.ActionHost:
		uid := s.issuer.NewUID()
		cred, err := s.issuer.Issue(roomName, uid)
		if err != nil {
			log.Error("failed to issue credential", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if _, err := s.CreateRoom(ctx, roomName, caller, domain.MediaCredential{Token: cred.Token, UID: uid}); err != nil {
			return nil, err
		}
		return cred, nil
	case domain.ActionJoin:
		if err := s.EnsureRoomExists(ctx, roomName); err != nil {
			return nil, err
		}
		cred, err := s.issuer.Issue(roomName, s.issuer.NewUID())
		if err != nil {
			log.Error("failed to issue credential", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return cred, nil
	default:
		return nil, fmt.Errorf("%w: unknown action type %q", domain.ErrInvalidArgument, action)
	}
}

func (s *RoomService) CreateRoom(ctx context.Context, roomName string, host *domain.User, cred domain.MediaCredential) (*domain.Room, error) {
	const op = "service.room.CreateRoom"
	log := s.log.With(slog.String("op", op), slog.String("room", roomName))

	if err := validateRoomName(roomName); err != nil {
		return nil, err
	}
	if host == nil || host.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: host is required", domain.ErrInvalidArgument)
	}

	room := domain.NewRoom(roomName, host, cred)
	err := s.rooms.WithinTx(ctx, func(tx repository.RoomTx) error {
		return tx.CreateRoom(ctx, room)
	})
	if err != nil {
		if errors.Is(err, repository.ErrRoomExists) {
			log.Info("room name already taken")
			return nil, err
		}
		log.Error("failed to create room", sl.Err(err))
		return nil, err
	}

	log.Info("room created", slog.String("room_id", room.ID.String()), slog.String("host", host.Username))
	return room, nil
}

func (s *RoomService) EnsureRoomExists(ctx context.Context, roomName string) error {
	if err := validateRoomName(roomName); err != nil {
		return err
	}
	_, err := s.rooms.GetRoom(ctx, roomName)
	return err
}

// Leave removes userID from the roster. A departing host leaves the room
// hostless; the last participant out deletes it.
func (s *RoomService) Leave(ctx context.Context, roomName string, userID uuid.UUID) error {
	const op = "service.room.Leave"
	log := s.log.With(slog.String("op", op), slog.String("room", roomName), slog.String("user_id", userID.String()))

	var events []domain.RoomEvent
	err := s.rooms.WithinTx(ctx, func(tx repository.RoomTx) error {
		room, err := tx.LockRoom(ctx, roomName)
		if err != nil {
			return err
		}
		participant, ok := room.Participants[userID]
		if !ok {
			return notParticipant(roomName)
		}
		events, err = s.dropParticipant(ctx, tx, room, participant)
		return err
	})
	if err != nil {
		logFailure(log, err, "failed to leave room")
		return err
	}

	s.publish(events)
	log.Info("participant left")
	return nil
}

// RemoveParticipant takes target out of the room on behalf of requestedBy.
// Removing someone else needs host authority. The target's directory record
// goes in the same transaction.
func (s *RoomService) RemoveParticipant(ctx context.Context, roomName string, target RemoveTarget, requestedBy uuid.UUID) error {
	const op = "service.room.RemoveParticipant"
	log := s.log.With(slog.String("op", op), slog.String("room", roomName), slog.String("target", target.Username))

	if err := validateUsername(target.Username); err != nil {
		return err
	}

	var events []domain.RoomEvent
	err := s.rooms.WithinTx(ctx, func(tx repository.RoomTx) error {
		room, err := tx.LockRoom(ctx, roomName)
		if err != nil {
			return err
		}
		participant := findByUsername(room, target.Username)
		if participant == nil {
			return notParticipant(roomName)
		}
		if participant.UserID != requestedBy && !canActAsHost(room, requestedBy) {
			return fmt.Errorf("%w: only the host may remove participants", domain.ErrForbidden)
		}
		if target.UID != "" {
			if _, err := tx.DeleteMembers(ctx, roomName, target.Username, target.UID); err != nil {
				return err
			}
		}
		events, err = s.dropParticipant(ctx, tx, room, participant)
		return err
	})
	if err != nil {
		logFailure(log, err, "failed to remove participant")
		return err
	}

	s.publish(events)
	log.Info("participant removed", slog.String("by", requestedBy.String()))
	return nil
}

func (s *RoomService) ChangeHost(ctx context.Context, roomName string, newHostUsername string, requestedBy uuid.UUID) error {
	const op = "service.room.ChangeHost"
	log := s.log.With(slog.String("op", op), slog.String("room", roomName), slog.String("new_host", newHostUsername))

	if err := validateUsername(newHostUsername); err != nil {
		return err
	}
	newHost, err := s.users.GetByUsername(ctx, newHostUsername)
	if err != nil {
		logFailure(log, err, "failed to resolve new host")
		return err
	}

	var changed bool
	err = s.rooms.WithinTx(ctx, func(tx repository.RoomTx) error {
		room, err := tx.LockRoom(ctx, roomName)
		if err != nil {
			return err
		}
		if !canActAsHost(room, requestedBy) {
			return fmt.Errorf("%w: only the host may hand over the room", domain.ErrForbidden)
		}
		if room.IsHost(newHost.ID) {
			return nil
		}
		if err := room.SetHost(newHost.ID); err != nil {
			return err
		}
		changed = true
		return tx.UpdateRoom(ctx, room)
	})
	if err != nil {
		logFailure(log, err, "failed to change host")
		return err
	}

	if changed {
		s.events.Publish(domain.NewRoomEvent(domain.EventHostChanged, roomName, newHost.Username))
		log.Info("host changed")
	}
	return nil
}

func (s *RoomService) GetParticipants(ctx context.Context, roomName string) ([]ParticipantView, error) {
	room, err := s.rooms.GetRoom(ctx, roomName)
	if err != nil {
		return nil, err
	}
	roster := room.Roster()
	out := make([]ParticipantView, 0, len(roster))
	for _, p := range roster {
		out = append(out, ParticipantView{
			UserID:   p.UserID,
			Username: p.Username,
			IsHost:   room.IsHost(p.UserID),
		})
	}
	return out, nil
}

// dropParticipant removes p from the locked room and persists the result,
// deleting the room once nobody is left.
func (s *RoomService) dropParticipant(ctx context.Context, tx repository.RoomTx, room *domain.Room, p *domain.Participant) ([]domain.RoomEvent, error) {
	wasHost := room.IsHost(p.UserID)
	if err := room.RemoveParticipant(p.UserID); err != nil {
		return nil, err
	}

	events := []domain.RoomEvent{domain.NewRoomEvent(domain.EventParticipantLeft, room.Name, p.Username)}
	if room.IsEmpty() {
		if err := tx.DeleteRoom(ctx, room.ID); err != nil {
			return nil, err
		}
		return append(events, domain.NewRoomEvent(domain.EventRoomDeleted, room.Name, "")), nil
	}

	if err := tx.UpdateRoom(ctx, room); err != nil {
		return nil, err
	}
	if wasHost {
		events = append(events, domain.NewRoomEvent(domain.EventHostChanged, room.Name, ""))
	}
	return events, nil
}

func (s *RoomService) publish(events []domain.RoomEvent) {
	for _, e := range events {
		s.events.Publish(e)
	}
}

func findByUsername(room *domain.Room, username string) *domain.Participant {
	for _, p := range room.Participants {
		if p.Username == username {
			return p
		}
	}
	return nil
}

func notParticipant(roomName string) error {
	return fmt.Errorf("%w: not a participant of room %q", domain.ErrNotFound, roomName)
}

// logFailure keeps expected client errors out of the error log.
func logFailure(log *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrForbidden):
		log.Info(msg, sl.Err(err))
	default:
		log.Error(msg, sl.Err(err))
	}
}
