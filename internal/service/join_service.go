package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomgate/internal/domain"
	"github.com/immxrtalbeast/roomgate/internal/repository"
)

type JoinService struct {
	rooms  repository.RoomRepository
	events Publisher
	log    *slog.Logger
}

func NewJoinService(rooms repository.RoomRepository, events Publisher, log *slog.Logger) *JoinService {
	if log == nil {
		log = slog.Default()
	}
	if events == nil {
		events = nopPublisher{}
	}
	return &JoinService{rooms: rooms, events: events, log: log}
}

// RequestJoin admits user straight away when the room has no host, settling
// any request left pending from before. Otherwise it returns the user's
// pending request, creating one if needed.
func (s *JoinService) RequestJoin(ctx context.Context, roomName string, user *domain.User) (domain.JoinOutcome, error) {
	const op = "service.join.RequestJoin"
	log := s.log.With(slog.String("op", op), slog.String("room", roomName), slog.String("user", user.Username))

	var (
		outcome domain.JoinOutcome
		events  []domain.RoomEvent
	)
	err := s.rooms.WithinTx(ctx, func(tx repository.RoomTx) error {
		room, err := tx.LockRoom(ctx, roomName)
		if err != nil {
			return err
		}

		if room.IsParticipant(user.ID) || !room.HasHost() {
			if room.AddParticipant(user) {
				if err := tx.UpdateRoom(ctx, room); err != nil {
					return err
				}
				events = append(events, domain.NewRoomEvent(domain.EventParticipantJoined, roomName, user.Username))
			}
			settled, err := settlePending(ctx, tx, room, user.ID)
			if err != nil {
				return err
			}
			if settled != nil {
				events = append(events, *settled)
			}
			outcome = domain.JoinOutcome{Status: domain.JoinStatusApproved}
			return nil
		}

		pending, err := tx.PendingJoinRequest(ctx, room.ID, user.ID)
		switch {
		case err == nil:
			outcome = domain.JoinOutcome{Status: domain.JoinStatusPending, Request: pending}
			return nil
		case !errors.Is(err, repository.ErrJoinRequestNotFound):
			return err
		}

		req := domain.NewJoinRequest(room.ID, user)
		if err := tx.CreateJoinRequest(ctx, req); err != nil {
			return err
		}
		outcome = domain.JoinOutcome{Status: domain.JoinStatusPending, Request: req}
		e := domain.NewRoomEvent(domain.EventJoinRequested, roomName, user.Username)
		e.Payload = map[string]any{"request_id": req.ID}
		events = append(events, e)
		return nil
	})
	if err != nil {
		logFailure(log, err, "failed to request join")
		return domain.JoinOutcome{}, err
	}

	for _, e := range events {
		s.events.Publish(e)
	}
	log.Debug("join requested", slog.String("status", string(outcome.Status)))
	return outcome, nil
}

// Decide settles a join request. Approval adds the requester to the roster in
// the same transaction.
func (s *JoinService) Decide(ctx context.Context, roomName string, requestID uint64, approve bool, decidedBy uuid.UUID) (*domain.JoinRequest, error) {
	const op = "service.join.Decide"
	log := s.log.With(slog.String("op", op), slog.String("room", roomName), slog.Uint64("request_id", requestID), slog.Bool("approve", approve))

	var (
		req    *domain.JoinRequest
		events []domain.RoomEvent
	)
	err := s.rooms.WithinTx(ctx, func(tx repository.RoomTx) error {
		room, err := tx.LockRoom(ctx, roomName)
		if err != nil {
			return err
		}
		req, err = tx.GetJoinRequest(ctx, room.ID, requestID)
		if err != nil {
			return err
		}
		if !canActAsHost(room, decidedBy) {
			return fmt.Errorf("%w: only the host may decide join requests", domain.ErrForbidden)
		}

		changed, err := req.Decide(approve)
		if err != nil {
			return err
		}
		if changed {
			if err := tx.UpdateJoinRequest(ctx, req); err != nil {
				return err
			}
			decided := domain.NewRoomEvent(domain.EventRequestDecided, roomName, req.Username)
			decided.Payload = map[string]any{"request_id": req.ID, "status": string(req.Status)}
			events = append(events, decided)
		}

		// A repeated approval re-admits a requester who has since left.
		if req.Status == domain.JoinStatusApproved && room.AddParticipant(&domain.User{ID: req.UserID, Username: req.Username}) {
			if err := tx.UpdateRoom(ctx, room); err != nil {
				return err
			}
			events = append(events, domain.NewRoomEvent(domain.EventParticipantJoined, roomName, req.Username))
		}
		return nil
	})
	if err != nil {
		logFailure(log, err, "failed to decide join request")
		return nil, err
	}

	for _, e := range events {
		s.events.Publish(e)
	}
	log.Info("join request decided", slog.String("status", string(req.Status)))
	return req, nil
}

// settlePending approves the pending request of a user admitted without a
// host decision, so status polls and the pending list agree with the roster.
func settlePending(ctx context.Context, tx repository.RoomTx, room *domain.Room, userID uuid.UUID) (*domain.RoomEvent, error) {
	req, err := tx.PendingJoinRequest(ctx, room.ID, userID)
	if errors.Is(err, repository.ErrJoinRequestNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if _, err := req.Decide(true); err != nil {
		return nil, err
	}
	if err := tx.UpdateJoinRequest(ctx, req); err != nil {
		return nil, err
	}
	e := domain.NewRoomEvent(domain.EventRequestDecided, room.Name, req.Username)
	e.Payload = map[string]any{"request_id": req.ID, "status": string(req.Status)}
	return &e, nil
}

// CheckStatus returns the user's most recent request for the room.
func (s *JoinService) CheckStatus(ctx context.Context, roomName string, userID uuid.UUID) (*domain.JoinRequest, error) {
	room, err := s.rooms.GetRoom(ctx, roomName)
	if err != nil {
		return nil, err
	}
	return s.rooms.LatestJoinRequest(ctx, room.ID, userID)
}

func (s *JoinService) ListPending(ctx context.Context, roomName string, requester uuid.UUID) (*PendingRequests, error) {
	room, err := s.rooms.GetRoom(ctx, roomName)
	if err != nil {
		return nil, err
	}
	reqs, err := s.rooms.ListJoinRequests(ctx, room.ID, domain.JoinStatusPending)
	if err != nil {
		return nil, err
	}
	return &PendingRequests{Requests: reqs, IsHost: room.IsHost(requester)}, nil
}
