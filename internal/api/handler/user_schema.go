package handler

import "github.com/audiomart/catalog-api/internal/core/ports"

type updateUserRequest struct {
	Username  string  `json:"username"  validate:"required,alphanum"`
	Firstname *string `json:"firstname" validate:"omitempty,alphanum"`
	Lastname  *string `json:"lastname"  validate:"omitempty,alphanum"`
}

type userReviewItem struct {
	ProductID  string        `json:"productId"`
	BrandModel string        `json:"brandModel"`
	Review     reviewPayload `json:"review"`
}

type reviewPayload struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Comments string `json:"comments"`
	Rating   int    `json:"rating"`
	Date     string `json:"date"`
}

type userReviewsResponse struct {
	Page   int64            `json:"page"`
	Limit  int64            `json:"limit"`
	Result []userReviewItem `json:"result"`
}

func toUserReviewItems(items []ports.UserReview) []userReviewItem {
	out := make([]userReviewItem, 0, len(items))
	for _, it := range items {
		out = append(out, userReviewItem{
			ProductID:  it.ProductID,
			BrandModel: it.BrandModel,
			Review: reviewPayload{
				ID:       it.Review.ID,
				Email:    it.Review.Email,
				Comments: it.Review.Comments,
				Rating:   it.Review.Rating,
				Date:     it.Review.Date.UTC().Format("2006-01-02T15:04:05Z"),
			},
		})
	}
	return out
}
