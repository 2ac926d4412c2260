package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/audiomart/catalog-api/internal/core/domain"
	"github.com/audiomart/catalog-api/internal/core/ports"
)

// UserService implements account use cases.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// List returns every user, password hashes excluded.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Get retrieves a single user.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update merges the supplied profile changes into the stored user. Email and
// password cannot be changed through this path.
func (s *UserService) Update(ctx context.Context, id string, change ports.UserChange) (*domain.User, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if change.Username != nil {
		current.Username = *change.Username
	}
	if change.Firstname != nil {
		current.Firstname = *change.Firstname
	}
	if change.Lastname != nil {
		current.Lastname = *change.Lastname
	}

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// Reviews returns one page of the reviews a user left across all products.
// The user must exist; an existing user with no reviews yields an empty page.
func (s *UserService) Reviews(ctx context.Context, userID, email string, page, limit int64) (*ports.UserReviewsResult, error) {
	if _, err := s.repo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	items, err := s.repo.ListReviews(ctx, userID, email, page, limit)
	if err != nil {
		return nil, err
	}
	return &ports.UserReviewsResult{Page: page, Limit: limit, Items: items}, nil
}
