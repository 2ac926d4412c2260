package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/audiomart/catalog-api/internal/core/domain"
	"github.com/audiomart/catalog-api/internal/core/ports"
)

// stubProductService records calls and returns canned responses.
type stubProductService struct {
	createInput  ports.CreateProductInput
	createResult *ports.CreateProductResult
	searchFilter ports.SearchFilter
	searchResult *ports.SearchResult
	updateChange ports.ProductChange
	product      *domain.Product
	err          error
}

func (s *stubProductService) Create(_ context.Context, input ports.CreateProductInput) (*ports.CreateProductResult, error) {
	s.createInput = input
	return s.createResult, s.err
}

func (s *stubProductService) Get(context.Context, string) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) Search(_ context.Context, filter ports.SearchFilter) (*ports.SearchResult, error) {
	s.searchFilter = filter
	return s.searchResult, s.err
}

func (s *stubProductService) Update(_ context.Context, _ string, change ports.ProductChange) (*domain.Product, error) {
	s.updateChange = change
	return s.product, s.err
}

func (s *stubProductService) Delete(context.Context, string) error { return s.err }

func (s *stubProductService) AddReview(context.Context, string, ports.AddReviewInput) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) GetReviews(context.Context, string) (*ports.ProductReviews, error) {
	return nil, s.err
}

func (s *stubProductService) UpdateReview(context.Context, string, string, ports.ReviewChange) (*domain.Review, error) {
	return nil, s.err
}

func (s *stubProductService) DeleteReview(context.Context, string, string) error { return s.err }

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProductHandler_Create_Success(t *testing.T) {
	svc := &stubProductService{
		createResult: &ports.CreateProductResult{
			Product: &domain.Product{ID: "abc123", BrandModel: "Echo Buds 2"},
		},
	}
	h := NewProductHandler(svc)

	payload := `{
		"brandModel": "Echo Buds 2",
		"type": "in-ear",
		"price": 59.99,
		"stock": [{"store": "orchard", "qty": 12}],
		"color": ["black"],
		"hours": {"music": 6, "cableCharging": 2, "boxCharging": 24},
		"connectors": "usb-c"
	}`
	c, rec := newTestContext(http.MethodPost, "/add", payload)
	c.Request().Header.Set("Idempotency-Key", "key-1")

	if err := h.Create(c); err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.createInput.IdempotencyKey != "key-1" {
		t.Fatalf("idempotency key not forwarded: %q", svc.createInput.IdempotencyKey)
	}
	if svc.createInput.Stock[0].Store != "orchard" || svc.createInput.Hours.BoxCharging != 24 {
		t.Fatalf("request fields not mapped: %+v", svc.createInput)
	}

	var envelope struct {
		Result  domain.Product `json:"result"`
		Message string         `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Message != "Created successfully" || envelope.Result.ID != "abc123" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
}

func TestProductHandler_Create_IdempotentReplayReturns200(t *testing.T) {
	svc := &stubProductService{
		createResult: &ports.CreateProductResult{
			Product:        &domain.Product{ID: "abc123"},
			AlreadyExisted: true,
		},
	}
	h := NewProductHandler(svc)

	payload := `{"brandModel": "Echo Buds 2", "type": "in-ear", "price": 59.99, "color": ["black"], "connectors": "usb-c"}`
	c, rec := newTestContext(http.MethodPost, "/add", payload)

	if err := h.Create(c); err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("a replayed submission must return 200, got %d", rec.Code)
	}
}

func TestProductHandler_Create_InvalidPayload(t *testing.T) {
	h := NewProductHandler(&stubProductService{})

	payload := `{"brandModel": "Echo Buds #2", "type": "In-Ear", "price": 0, "color": [], "connectors": "usb-c"}`
	c, _ := newTestContext(http.MethodPost, "/add", payload)

	err := h.Create(c)
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(ve.Messages) < 3 {
		t.Fatalf("expected every violation reported, got %v", ve.Messages)
	}
}

func TestProductHandler_Search_EchoesPagingAndMapsFilter(t *testing.T) {
	svc := &stubProductService{
		searchResult: &ports.SearchResult{Page: 2, Limit: 5, Items: []domain.Product{{ID: "abc123"}}},
	}
	h := NewProductHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/earphone?type=in-ear&min_price=20&max_price=80&page=2&limit=5", "")
	if err := h.Search(c); err != nil {
		t.Fatalf("search returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if svc.searchFilter.Type != "in-ear" || svc.searchFilter.Page != 2 || svc.searchFilter.Limit != 5 {
		t.Fatalf("filter not mapped: %+v", svc.searchFilter)
	}
	if svc.searchFilter.MinPrice == nil || *svc.searchFilter.MinPrice != 20 {
		t.Fatalf("min_price not mapped: %+v", svc.searchFilter.MinPrice)
	}
	if svc.searchFilter.MaxPrice == nil || *svc.searchFilter.MaxPrice != 80 {
		t.Fatalf("max_price not mapped: %+v", svc.searchFilter.MaxPrice)
	}

	var resp struct {
		Page   int64            `json:"page"`
		Limit  int64            `json:"limit"`
		Result []domain.Product `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Page != 2 || resp.Limit != 5 || len(resp.Result) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestProductHandler_Search_MalformedQuery(t *testing.T) {
	h := NewProductHandler(&stubProductService{})

	c, _ := newTestContext(http.MethodGet, "/earphone?min_price=cheap", "")
	err := h.Search(c)
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("malformed query values must be a validation error, got %v", err)
	}
}

func TestProductHandler_Update_DistinguishesOmittedFromExplicit(t *testing.T) {
	svc := &stubProductService{product: &domain.Product{ID: "abc123"}}
	h := NewProductHandler(svc)

	c, rec := newTestContext(http.MethodPut, "/earphone/abc123", `{"price": 45.5, "dustWaterproof": false}`)
	c.SetParamNames("id")
	c.SetParamValues("abc123")

	if err := h.Update(c); err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.updateChange.Price == nil || *svc.updateChange.Price != 45.5 {
		t.Fatalf("price not applied: %+v", svc.updateChange.Price)
	}
	if svc.updateChange.DustWaterproof == nil || *svc.updateChange.DustWaterproof != false {
		t.Fatalf("an explicit false must survive binding: %+v", svc.updateChange.DustWaterproof)
	}
	if svc.updateChange.BrandModel != nil {
		t.Fatalf("omitted fields must stay nil: %+v", svc.updateChange)
	}
}

func TestProductHandler_GetAndDelete_PropagateNotFound(t *testing.T) {
	svc := &stubProductService{err: domain.ErrProductNotFound}
	h := NewProductHandler(svc)

	c, _ := newTestContext(http.MethodGet, "/earphone/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Get(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	c, _ = newTestContext(http.MethodDelete, "/earphone/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Delete(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
