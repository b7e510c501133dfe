// Package users implements account registration and login on top of the
// credential repository. Uniqueness is enforced by the database constraints,
// not by check-then-insert logic here.
package users

import (
	"context"
	"errors"

	"github.com/apsihub/apsi-auth/internal/common"
	"github.com/apsihub/apsi-auth/internal/cryptox"
	"github.com/apsihub/apsi-auth/internal/logging"
)

type Service struct {
	repo   Repository
	logger logging.Logger
}

func NewService(repo Repository, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With("module", "users_service"),
	}
}

// Register hashes the password and stores a new account. A uniqueness
// rejection from the store passes through as *common.ConflictError so the
// transport can answer with a client error; anything else collapses to
// common.ErrInternal with the detail kept in the log.
func (s *Service) Register(ctx context.Context, username, email, password string) (*User, error) {

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		s.logger.Error(ctx, "error hashing password", "error", err.Error())
		return nil, common.ErrInternal
	}

	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		var conflict *common.ConflictError
		if errors.As(err, &conflict) {
			return nil, err
		}
		s.logger.Error(ctx, "error creating user", "error", err.Error())
		return nil, common.ErrInternal
	}

	return user, nil
}

// Authenticate verifies email and password and returns the stored account on
// success. An unknown email yields common.ErrNotFound and a bcrypt mismatch
// common.ErrInvalidPassword; the two stay distinct because clients depend on
// the split, even though it reveals whether an email is registered.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		s.logger.Error(ctx, "error fetching user", "error", err.Error())
		return nil, common.ErrInternal
	}

	if !cryptox.VerifyPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidPassword
	}

	return user, nil
}
