package ports

import (
	"context"

	"github.com/audiomart/catalog-api/internal/core/domain"
)

// UserChange is the partial-update set for a user. Email and password are not
// mutable through this path.
type UserChange struct {
	Username  *string
	Firstname *string
	Lastname  *string
}

// UserReview pairs a review with the product it was left on, as produced by
// the cross-collection aggregation.
type UserReview struct {
	ProductID  string
	BrandModel string
	Review     domain.Review
}

// UserRepository defines persistence operations on the user collection.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error

	// ListReviews aggregates the reviews a user left across all products,
	// matched by review email, one page at a time.
	ListReviews(ctx context.Context, userID, email string, page, limit int64) ([]UserReview, error)
}
