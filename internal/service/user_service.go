package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomgate/internal/domain"
	"github.com/immxrtalbeast/roomgate/internal/repository"
	"github.com/immxrtalbeast/roomgate/lib/logger/sl"
)

// UserService mirrors identities asserted by the external identity provider.
type UserService struct {
	users repository.UserRepository
	log   *slog.Logger
}

func NewUserService(users repository.UserRepository, log *slog.Logger) *UserService {
	if log == nil {
		log = slog.Default()
	}
	return &UserService{users: users, log: log}
}

// EnsureUser records user on first sight and returns the stored reference.
// The username seen first stays authoritative even if a later token carries
// a different one.
func (s *UserService) EnsureUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	const op = "service.user.EnsureUser"

	if user == nil || user.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidArgument)
	}
	if err := validateUsername(user.Username); err != nil {
		return nil, err
	}

	log := s.log.With(slog.String("op", op), slog.String("user_id", user.ID.String()))
	if err := s.users.Ensure(ctx, user); err != nil {
		log.Error("failed to record user", sl.Err(err))
		return nil, err
	}
	stored, err := s.users.GetByID(ctx, user.ID)
	if err != nil {
		log.Error("failed to load user", sl.Err(err))
		return nil, err
	}
	return stored, nil
}
