package ports

import (
	"context"
	"time"

	"github.com/audiomart/catalog-api/internal/core/domain"
)

// SearchFilter carries the optional, independently specified search
// constraints for the product listing. Zero values mean "not supplied";
// numeric constraints use pointers so an explicit zero still filters.
type SearchFilter struct {
	Type            string   // case-insensitive pattern match on type
	OtherType       string   // type must not equal this value
	OtherMusicHours *int     // hours.music must not equal this value
	Store           string   // at least one stock entry for this store
	Color           string   // color list contains this value
	OtherColor      string   // color list does not contain this value
	MinPrice        *float64 // price >= MinPrice
	MaxPrice        *float64 // price <= MaxPrice
	Page            int64    // 1-based, defaulted by the repository
	Limit           int64    // page size, defaulted by the repository
}

// ReviewChange is the partial-update set for a review. Nil means the caller
// omitted the field; a non-nil pointer to a zero value is still applied.
type ReviewChange struct {
	Email    *string
	Comments *string
	Rating   *int
	Date     *time.Time
}

// ProductChange is the partial-update set for a product.
type ProductChange struct {
	BrandModel     *string
	Type           *string
	Earbuds        *string
	Bluetooth      *string
	Price          *float64
	Stock          *[]domain.StockEntry
	Color          *[]string
	Hours          *domain.BatteryHours
	DustWaterproof *bool
	Connectors     *string
	Image          *string
}

// ProductRepository defines persistence operations on the earphone collection.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Product, error)
	// Search returns one page of products matching filter, sorted by id
	// ascending so paging is deterministic across calls.
	Search(ctx context.Context, filter SearchFilter) ([]domain.Product, error)
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error

	AddReview(ctx context.Context, productID string, review *domain.Review) (*domain.Product, error)
	FindReview(ctx context.Context, productID, reviewID string) (*domain.Review, error)
	UpdateReview(ctx context.Context, productID string, review *domain.Review) (*domain.Review, error)
	DeleteReview(ctx context.Context, productID, reviewID string) error
}
