package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/audiomart/catalog-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog products.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create handles POST /add.
//
// @Summary      Add a new product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                false  "Key to prevent duplicate submissions"
// @Param        body             body      createProductRequest  true   "Product details"
// @Success      201              {object}  productEnvelope
// @Failure      403              {object}  errorResponse
// @Failure      422              {object}  validationErrorResponse
// @Router       /add [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		BrandModel:     req.BrandModel,
		Type:           req.Type,
		Earbuds:        req.Earbuds,
		Bluetooth:      req.Bluetooth,
		Price:          req.Price,
		Stock:          toStockEntries(req.Stock),
		Color:          req.Color,
		Hours:          toBatteryHours(req.Hours),
		DustWaterproof: req.DustWaterproof,
		Connectors:     req.Connectors,
		Image:          req.Image,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	}
	return c.JSON(status, productEnvelope{
		Result:  result.Product,
		Message: "Created successfully",
	})
}

// Search handles GET /earphone.
//
// @Summary      Search products
// @Tags         products
// @Produce      json
// @Param        type             query     string  false  "Type pattern (case-insensitive)"
// @Param        otherType        query     string  false  "Exclude this exact type"
// @Param        store            query     string  false  "Stocked at this store"
// @Param        color            query     string  false  "Color list contains this value"
// @Param        otherColor       query     string  false  "Color list excludes this value"
// @Param        otherMusicHours  query     int     false  "Music hours must differ from this value"
// @Param        min_price        query     number  false  "Minimum price (inclusive)"
// @Param        max_price        query     number  false  "Maximum price (inclusive)"
// @Param        page             query     int     false  "Page number (default 1)"
// @Param        limit            query     int     false  "Page size (default 20)"
// @Success      200              {object}  searchProductsResponse
// @Failure      422              {object}  validationErrorResponse
// @Router       /earphone [get]
func (h *ProductHandler) Search(c echo.Context) error {
	var req searchProductsRequest
	if err := c.Bind(&req); err != nil {
		return &ValidationError{Messages: []string{"query parameters are malformed"}}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.service.Search(c.Request().Context(), ports.SearchFilter{
		Type:            req.Type,
		OtherType:       req.OtherType,
		OtherMusicHours: req.OtherMusicHours,
		Store:           req.Store,
		Color:           req.Color,
		OtherColor:      req.OtherColor,
		MinPrice:        req.MinPrice,
		MaxPrice:        req.MaxPrice,
		Page:            req.Page,
		Limit:           req.Limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, searchProductsResponse{
		Page:   result.Page,
		Limit:  result.Limit,
		Result: result.Items,
	})
}

// Get handles GET /earphone/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /earphone/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Update handles PUT /earphone/:id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  productEnvelope
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  validationErrorResponse
// @Router       /earphone/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	change := ports.ProductChange{
		BrandModel:     req.BrandModel,
		Type:           req.Type,
		Earbuds:        req.Earbuds,
		Bluetooth:      req.Bluetooth,
		Price:          req.Price,
		Connectors:     req.Connectors,
		Image:          req.Image,
		DustWaterproof: req.DustWaterproof,
		Color:          req.Color,
	}
	if req.Stock != nil {
		entries := toStockEntries(*req.Stock)
		change.Stock = &entries
	}
	if req.Hours != nil {
		hours := toBatteryHours(*req.Hours)
		change.Hours = &hours
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), change)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productEnvelope{
		Result:  product,
		Message: "Updated successfully",
	})
}

// Delete handles DELETE /earphone/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /earphone/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Deleted successfully"})
}
