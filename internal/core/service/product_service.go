package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/audiomart/catalog-api/internal/api/metrics"
	"github.com/audiomart/catalog-api/internal/core/domain"
	"github.com/audiomart/catalog-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// IdempotencyStore abstracts the replay ledger (Redis) used by Create.
type IdempotencyStore interface {
	Seen(ctx context.Context, key string) (string, error)
	Remember(ctx context.Context, key, productID string) error
}

// ProductService implements the catalog use cases.
type ProductService struct {
	repo   ports.ProductRepository
	idem   IdempotencyStore
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, idem IdempotencyStore, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, idem: idem, logger: logger}
}

// Create registers a new product. When an idempotency key is supplied and has
// been seen before, the originally created product is returned without
// inserting a second document.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*ports.CreateProductResult, error) {
	if input.IdempotencyKey != "" {
		if existing := s.replay(ctx, input.IdempotencyKey); existing != nil {
			return &ports.CreateProductResult{Product: existing, AlreadyExisted: true}, nil
		}
	}

	product := &domain.Product{
		BrandModel:     input.BrandModel,
		Type:           input.Type,
		Earbuds:        input.Earbuds,
		Bluetooth:      input.Bluetooth,
		Price:          input.Price,
		Stock:          input.Stock,
		Color:          input.Color,
		Hours:          input.Hours,
		DustWaterproof: input.DustWaterproof,
		Connectors:     input.Connectors,
		Image:          input.Image,
		IdempotencyKey: input.IdempotencyKey,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Remember(ctx, input.IdempotencyKey, created.ID); err != nil {
			s.logger.Warn().Err(err).Str("product_id", created.ID).Msg("failed to record idempotency key")
		}
	}

	metrics.ProductsCreatedTotal.Inc()
	s.logger.Info().Str("product_id", created.ID).Str("brand_model", created.BrandModel).Msg("product created")
	return &ports.CreateProductResult{Product: created}, nil
}

// replay resolves an idempotency key to the product it created, via Redis
// first and the collection's own key field as a fallback.
func (s *ProductService) replay(ctx context.Context, key string) *domain.Product {
	if s.idem != nil {
		id, err := s.idem.Seen(ctx, key)
		if err != nil {
			s.logger.Warn().Err(err).Msg("idempotency lookup failed, checking store")
		} else if id != "" {
			if p, err := s.repo.FindByID(ctx, id); err == nil {
				s.logger.Info().Str("product_id", p.ID).Msg("idempotent replay")
				return p
			}
		}
	}
	if p, err := s.repo.FindByIdempotencyKey(ctx, key); err == nil {
		s.logger.Info().Str("product_id", p.ID).Msg("idempotent replay")
		return p
	}
	return nil
}

// Get retrieves a single product.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Search returns one page of products matching the filter, echoing the
// resolved page and limit.
func (s *ProductService) Search(ctx context.Context, filter ports.SearchFilter) (*ports.SearchResult, error) {
	if filter.Page <= 0 {
		filter.Page = defaultPage
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}

	items, err := s.repo.Search(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("product search failed")
		return nil, err
	}

	metrics.SearchesTotal.Inc()
	return &ports.SearchResult{Page: filter.Page, Limit: filter.Limit, Items: items}, nil
}

// Update merges the supplied changes into the stored product field by field.
// A nil pointer means the caller omitted the field; a pointer to a zero value
// is applied like any other.
func (s *ProductService) Update(ctx context.Context, id string, change ports.ProductChange) (*domain.Product, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if change.BrandModel != nil {
		current.BrandModel = *change.BrandModel
	}
	if change.Type != nil {
		current.Type = *change.Type
	}
	if change.Earbuds != nil {
		current.Earbuds = *change.Earbuds
	}
	if change.Bluetooth != nil {
		current.Bluetooth = *change.Bluetooth
	}
	if change.Price != nil {
		current.Price = *change.Price
	}
	if change.Stock != nil {
		current.Stock = *change.Stock
	}
	if change.Color != nil {
		current.Color = *change.Color
	}
	if change.Hours != nil {
		current.Hours = *change.Hours
	}
	if change.DustWaterproof != nil {
		current.DustWaterproof = *change.DustWaterproof
	}
	if change.Connectors != nil {
		current.Connectors = *change.Connectors
	}
	if change.Image != nil {
		current.Image = *change.Image
	}

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// AddReview appends a review to a product, stamping the creation time when the
// caller did not supply one.
func (s *ProductService) AddReview(ctx context.Context, productID string, input ports.AddReviewInput) (*domain.Product, error) {
	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	review := &domain.Review{
		Email:    input.Email,
		Comments: input.Comments,
		Rating:   input.Rating,
		Date:     date,
	}

	updated, err := s.repo.AddReview(ctx, productID, review)
	if err != nil {
		return nil, err
	}

	metrics.ReviewsCreatedTotal.Inc()
	s.logger.Info().Str("product_id", productID).Str("review_id", review.ID).Msg("review created")
	return updated, nil
}

// GetReviews returns the review view of a product.
func (s *ProductService) GetReviews(ctx context.Context, productID string) (*ports.ProductReviews, error) {
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &ports.ProductReviews{
		ID:         product.ID,
		BrandModel: product.BrandModel,
		Reviews:    product.Reviews,
	}, nil
}

// UpdateReview merges the supplied changes into the stored review. The read
// and write are not atomic; concurrent editors of the same review are
// last-writer-wins. An omitted date resets to the edit time.
func (s *ProductService) UpdateReview(ctx context.Context, productID, reviewID string, change ports.ReviewChange) (*domain.Review, error) {
	current, err := s.repo.FindReview(ctx, productID, reviewID)
	if err != nil {
		return nil, err
	}

	if change.Email != nil {
		current.Email = *change.Email
	}
	if change.Comments != nil {
		current.Comments = *change.Comments
	}
	if change.Rating != nil {
		current.Rating = *change.Rating
	}
	if change.Date != nil {
		current.Date = *change.Date
	} else {
		current.Date = time.Now().UTC()
	}

	updated, err := s.repo.UpdateReview(ctx, productID, current)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("product_id", productID).Str("review_id", reviewID).Msg("review updated")
	return updated, nil
}

// DeleteReview removes a review from its parent product.
func (s *ProductService) DeleteReview(ctx context.Context, productID, reviewID string) error {
	if err := s.repo.DeleteReview(ctx, productID, reviewID); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", productID).Str("review_id", reviewID).Msg("review deleted")
	return nil
}
