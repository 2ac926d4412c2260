package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/audiomart/catalog-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /user.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /user [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /user/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /user/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Reviews handles GET /user/:id/:email/review.
//
// @Summary      List the reviews a user left across all products
// @Tags         users
// @Produce      json
// @Param        id     path      string  true   "User id"
// @Param        email  path      string  true   "Review email"
// @Param        page   query     int     false  "Page number (default 1)"
// @Param        limit  query     int     false  "Page size (default 20)"
// @Success      200    {object}  userReviewsResponse
// @Failure      404    {object}  errorResponse
// @Router       /user/{id}/{email}/review [get]
func (h *UserHandler) Reviews(c echo.Context) error {
	page, limit, err := pagingParams(c)
	if err != nil {
		return err
	}

	result, err := h.service.Reviews(c.Request().Context(), c.Param("id"), c.Param("email"), page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userReviewsResponse{
		Page:   result.Page,
		Limit:  result.Limit,
		Result: toUserReviewItems(result.Items),
	})
}

// Update handles PUT /user/:id.
//
// @Summary      Update a user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  validationErrorResponse
// @Router       /user/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UserChange{
		Username:  &req.Username,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /user/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Deleted successfully"})
}

// pagingParams reads the optional page and limit query parameters; both must
// be positive integers when present.
func pagingParams(c echo.Context) (page, limit int64, err error) {
	parse := func(name string) (int64, error) {
		raw := c.QueryParam(name)
		if raw == "" {
			return 0, nil
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return 0, &ValidationError{Messages: []string{name + " must be a positive integer"}}
		}
		return n, nil
	}

	if page, err = parse("page"); err != nil {
		return 0, 0, err
	}
	if limit, err = parse("limit"); err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}
