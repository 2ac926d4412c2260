package handler

import (
	"github.com/audiomart/catalog-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// validationErrorResponse carries every violated constraint, one message each.
type validationErrorResponse struct {
	Errors []string `json:"errors"`
}

type stockEntryRequest struct {
	Store string `json:"store" validate:"required"`
	Qty   int    `json:"qty"   validate:"gte=0"`
}

type batteryHoursRequest struct {
	Music         int `json:"music"         validate:"gte=0"`
	CableCharging int `json:"cableCharging" validate:"gte=0"`
	BoxCharging   int `json:"boxCharging"   validate:"gte=0"`
}

type createProductRequest struct {
	BrandModel     string              `json:"brandModel" validate:"required,brandmodel"`
	Type           string              `json:"type"       validate:"required,lowerhyphen"`
	Earbuds        string              `json:"earbuds"`
	Bluetooth      string              `json:"bluetooth"`
	Price          float64             `json:"price"      validate:"required,gt=0"`
	Stock          []stockEntryRequest `json:"stock"      validate:"omitempty,dive"`
	Color          []string            `json:"color"      validate:"required,min=1,dive,required"`
	Hours          batteryHoursRequest `json:"hours"`
	DustWaterproof bool                `json:"dustWaterproof"`
	Connectors     string              `json:"connectors" validate:"required,lowerhyphen"`
	Image          string              `json:"image"      validate:"omitempty,imagepath"`
}

// updateProductRequest is the partial-update shape: nil means "field omitted",
// a pointer to a zero value is an explicit assignment.
type updateProductRequest struct {
	BrandModel     *string              `json:"brandModel" validate:"omitempty,brandmodel"`
	Type           *string              `json:"type"       validate:"omitempty,lowerhyphen"`
	Earbuds        *string              `json:"earbuds"`
	Bluetooth      *string              `json:"bluetooth"`
	Price          *float64             `json:"price"      validate:"omitempty,gt=0"`
	Stock          *[]stockEntryRequest `json:"stock"      validate:"omitempty,dive"`
	Color          *[]string            `json:"color"      validate:"omitempty,min=1,dive,required"`
	Hours          *batteryHoursRequest `json:"hours"`
	DustWaterproof *bool                `json:"dustWaterproof"`
	Connectors     *string              `json:"connectors" validate:"omitempty,lowerhyphen"`
	Image          *string              `json:"image"      validate:"omitempty,imagepath"`
}

// searchProductsRequest binds the optional search query parameters. Numeric
// fields use pointers so "not supplied" and an explicit zero stay distinct.
type searchProductsRequest struct {
	Type            string   `query:"type"            validate:"omitempty,lowerhyphen"`
	OtherType       string   `query:"otherType"       validate:"omitempty,lowerhyphen"`
	Store           string   `query:"store"           validate:"omitempty,lowercase,alpha"`
	Color           string   `query:"color"           validate:"omitempty,lowercase,alpha"`
	OtherColor      string   `query:"otherColor"      validate:"omitempty,colorfilter"`
	OtherMusicHours *int     `query:"otherMusicHours"`
	MinPrice        *float64 `query:"min_price"`
	MaxPrice        *float64 `query:"max_price"`
	Page            int64    `query:"page"            validate:"omitempty,gt=0"`
	Limit           int64    `query:"limit"           validate:"omitempty,gt=0"`
}

type productEnvelope struct {
	Result  *domain.Product `json:"result"`
	Message string          `json:"message"`
}

type searchProductsResponse struct {
	Page   int64            `json:"page"`
	Limit  int64            `json:"limit"`
	Result []domain.Product `json:"result"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toStockEntries(in []stockEntryRequest) []domain.StockEntry {
	if in == nil {
		return nil
	}
	out := make([]domain.StockEntry, 0, len(in))
	for _, e := range in {
		out = append(out, domain.StockEntry{Store: e.Store, Qty: e.Qty})
	}
	return out
}

func toBatteryHours(in batteryHoursRequest) domain.BatteryHours {
	return domain.BatteryHours{
		Music:         in.Music,
		CableCharging: in.CableCharging,
		BoxCharging:   in.BoxCharging,
	}
}
