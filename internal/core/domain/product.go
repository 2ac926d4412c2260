package domain

import "time"

// StockEntry records how many units a physical store holds.
type StockEntry struct {
	Store string `json:"store" bson:"store"`
	Qty   int    `json:"qty" bson:"qty"`
}

// BatteryHours breaks down playback and charging durations in hours.
type BatteryHours struct {
	Music         int `json:"music" bson:"music"`
	CableCharging int `json:"cableCharging" bson:"cableCharging"`
	BoxCharging   int `json:"boxCharging" bson:"boxCharging"`
}

// Review is a customer review embedded in its parent product.
type Review struct {
	ID       string    `json:"id" bson:"_id,omitempty"`
	Email    string    `json:"email" bson:"email"`
	Comments string    `json:"comments" bson:"comments"`
	Rating   int       `json:"rating" bson:"rating"`
	Date     time.Time `json:"date" bson:"date"`
}

// Product is the catalog aggregate root. Reviews live inside the product
// document; a review id is only unique within its parent.
type Product struct {
	ID             string       `json:"id" bson:"_id,omitempty"`
	BrandModel     string       `json:"brandModel" bson:"brandModel"`
	Type           string       `json:"type" bson:"type"`
	Earbuds        string       `json:"earbuds,omitempty" bson:"earbuds,omitempty"`
	Bluetooth      string       `json:"bluetooth,omitempty" bson:"bluetooth,omitempty"`
	Price          float64      `json:"price" bson:"price"`
	Stock          []StockEntry `json:"stock,omitempty" bson:"stock,omitempty"`
	Color          []string     `json:"color" bson:"color"`
	Hours          BatteryHours `json:"hours" bson:"hours"`
	DustWaterproof bool         `json:"dustWaterproof" bson:"dustWaterproof"`
	Connectors     string       `json:"connectors" bson:"connectors"`
	Image          string       `json:"image,omitempty" bson:"image,omitempty"`
	Reviews        []Review     `json:"review" bson:"review,omitempty"`
	IdempotencyKey string       `json:"-" bson:"idempotency_key,omitempty"`
}
