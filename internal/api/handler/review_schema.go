package handler

import (
	"time"

	"github.com/audiomart/catalog-api/internal/core/domain"
)

type createReviewRequest struct {
	Email    string `json:"email"    validate:"required,email,emailchars"`
	Comments string `json:"comments" validate:"required"`
	Rating   int    `json:"rating"   validate:"required,gt=0,lt=6"`
}

// updateReviewRequest is the partial-update shape for an existing review.
// An omitted date is reset to the edit time by the service.
type updateReviewRequest struct {
	Email    *string    `json:"email"    validate:"omitempty,email,emailchars"`
	Comments *string    `json:"comments"`
	Rating   *int       `json:"rating"   validate:"omitempty,gt=0,lt=6"`
	Date     *time.Time `json:"date"`
}

type productReviewsResponse struct {
	ID         string          `json:"id"`
	BrandModel string          `json:"brandModel"`
	Review     []domain.Review `json:"review"`
}

type reviewEnvelope struct {
	Result  *domain.Review `json:"result"`
	Message string         `json:"message"`
}
