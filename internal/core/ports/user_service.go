package ports

import (
	"context"

	"github.com/audiomart/catalog-api/internal/core/domain"
)

// SignupInput carries a new account registration.
type SignupInput struct {
	Username  string
	Firstname string
	Lastname  string
	Email     string
	Password  string
}

// AuthService handles account creation and credential exchange.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	// Login verifies the credentials and returns a signed bearer token with
	// the stored user record. Failure is indistinguishable between an unknown
	// email and a wrong password.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// UserReviewsResult is one page of a user's reviews plus the echoed paging values.
type UserReviewsResult struct {
	Page  int64
	Limit int64
	Items []UserReview
}

// UserService defines account use cases.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, change UserChange) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	Reviews(ctx context.Context, userID, email string, page, limit int64) (*UserReviewsResult, error)
}
