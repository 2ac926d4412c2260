package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/audiomart/catalog-api/internal/core/ports"
)

// ReviewHandler handles HTTP requests for the reviews nested under a product.
type ReviewHandler struct {
	service ports.ProductService
}

func NewReviewHandler(service ports.ProductService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// Create handles POST /earphone/:id/review.
//
// @Summary      Add a review to a product
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Product id"
// @Param        body  body      createReviewRequest  true  "Review"
// @Success      201   {object}  productEnvelope
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  validationErrorResponse
// @Router       /earphone/{id}/review [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.service.AddReview(c.Request().Context(), c.Param("id"), ports.AddReviewInput{
		Email:    req.Email,
		Comments: req.Comments,
		Rating:   req.Rating,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, productEnvelope{
		Result:  product,
		Message: "Created successfully",
	})
}

// List handles GET /earphone/:id/review.
//
// @Summary      List a product's reviews
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productReviewsResponse
// @Failure      404  {object}  errorResponse
// @Router       /earphone/{id}/review [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.service.GetReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productReviewsResponse{
		ID:         reviews.ID,
		BrandModel: reviews.BrandModel,
		Review:     reviews.Reviews,
	})
}

// Update handles PUT /earphone/:id/review/:reviewid.
//
// @Summary      Edit a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id        path      string               true  "Product id"
// @Param        reviewid  path      string               true  "Review id"
// @Param        body      body      updateReviewRequest  true  "Fields to change"
// @Success      200       {object}  reviewEnvelope
// @Failure      404       {object}  errorResponse
// @Failure      422       {object}  validationErrorResponse
// @Router       /earphone/{id}/review/{reviewid} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.service.UpdateReview(c.Request().Context(), c.Param("id"), c.Param("reviewid"), ports.ReviewChange{
		Email:    req.Email,
		Comments: req.Comments,
		Rating:   req.Rating,
		Date:     req.Date,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviewEnvelope{
		Result:  review,
		Message: "Updated successfully",
	})
}

// Delete handles DELETE /earphone/:id/review/:reviewid.
//
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Param        id        path      string  true  "Product id"
// @Param        reviewid  path      string  true  "Review id"
// @Success      200       {object}  messageResponse
// @Failure      404       {object}  errorResponse
// @Router       /earphone/{id}/review/{reviewid} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteReview(c.Request().Context(), c.Param("id"), c.Param("reviewid")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Deleted successfully"})
}
