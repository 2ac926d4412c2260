package ports

import (
	"context"
	"time"

	"github.com/audiomart/catalog-api/internal/core/domain"
)

// CreateProductInput carries all data needed to register a new product.
type CreateProductInput struct {
	BrandModel     string
	Type           string
	Earbuds        string
	Bluetooth      string
	Price          float64
	Stock          []domain.StockEntry
	Color          []string
	Hours          domain.BatteryHours
	DustWaterproof bool
	Connectors     string
	Image          string
	// IdempotencyKey, when non-empty, makes repeated submissions return the
	// originally created product instead of inserting a duplicate.
	IdempotencyKey string
}

// CreateProductResult is returned after a create; AlreadyExisted is true when
// the idempotency key matched a previous submission.
type CreateProductResult struct {
	Product        *domain.Product
	AlreadyExisted bool
}

// SearchResult is one page of products plus the echoed paging values.
type SearchResult struct {
	Page  int64
	Limit int64
	Items []domain.Product
}

// ProductReviews is the review view of a single product.
type ProductReviews struct {
	ID         string
	BrandModel string
	Reviews    []domain.Review
}

// AddReviewInput carries a new review for a product.
type AddReviewInput struct {
	Email    string
	Comments string
	Rating   int
	Date     time.Time // zero value: the service stamps creation time
}

// ProductService defines the catalog use cases.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*CreateProductResult, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Search(ctx context.Context, filter SearchFilter) (*SearchResult, error)
	Update(ctx context.Context, id string, change ProductChange) (*domain.Product, error)
	Delete(ctx context.Context, id string) error

	AddReview(ctx context.Context, productID string, input AddReviewInput) (*domain.Product, error)
	GetReviews(ctx context.Context, productID string) (*ProductReviews, error)
	UpdateReview(ctx context.Context, productID, reviewID string, change ReviewChange) (*domain.Review, error)
	DeleteReview(ctx context.Context, productID, reviewID string) error
}
