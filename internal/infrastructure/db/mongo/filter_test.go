package mongo

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/audiomart/catalog-api/internal/core/ports"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func TestBuildSearchFilter_Empty(t *testing.T) {
	got := buildSearchFilter(ports.SearchFilter{})
	if len(got) != 0 {
		t.Fatalf("expected empty filter, got %v", got)
	}
}

func TestBuildSearchFilter_SingleConstraints(t *testing.T) {
	tests := []struct {
		name   string
		filter ports.SearchFilter
		want   bson.M
	}{
		{
			name:   "type is a case-insensitive pattern",
			filter: ports.SearchFilter{Type: "in-ear"},
			want:   bson.M{"type": bson.M{"$regex": "in-ear", "$options": "i"}},
		},
		{
			name:   "otherType is an exact exclusion",
			filter: ports.SearchFilter{OtherType: "over-ear"},
			want:   bson.M{"type": bson.M{"$ne": "over-ear"}},
		},
		{
			name:   "otherMusicHours excludes a music-hours value",
			filter: ports.SearchFilter{OtherMusicHours: intPtr(8)},
			want:   bson.M{"hours.music": bson.M{"$ne": 8}},
		},
		{
			name:   "store matches a stock entry",
			filter: ports.SearchFilter{Store: "orchard"},
			want:   bson.M{"stock": bson.M{"$elemMatch": bson.M{"store": "orchard"}}},
		},
		{
			name:   "color requires membership",
			filter: ports.SearchFilter{Color: "black"},
			want:   bson.M{"color": bson.M{"$in": bson.A{"black"}}},
		},
		{
			name:   "otherColor requires absence",
			filter: ports.SearchFilter{OtherColor: "pink"},
			want:   bson.M{"color": bson.M{"$nin": bson.A{"pink"}}},
		},
		{
			name:   "min price is inclusive",
			filter: ports.SearchFilter{MinPrice: floatPtr(50)},
			want:   bson.M{"price": bson.M{"$gte": 50.0}},
		},
		{
			name:   "max price is inclusive",
			filter: ports.SearchFilter{MaxPrice: floatPtr(200)},
			want:   bson.M{"price": bson.M{"$lte": 200.0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildSearchFilter(tt.filter)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("buildSearchFilter(%+v) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestBuildSearchFilter_SameFieldConstraintsCompose(t *testing.T) {
	got := buildSearchFilter(ports.SearchFilter{
		Color:      "black",
		OtherColor: "pink",
		MinPrice:   floatPtr(50),
		MaxPrice:   floatPtr(200),
	})

	want := bson.M{
		"color": bson.M{"$in": bson.A{"black"}, "$nin": bson.A{"pink"}},
		"price": bson.M{"$gte": 50.0, "$lte": 200.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected composed filter %v, got %v", want, got)
	}
}

func TestBuildSearchFilter_AllConstraints(t *testing.T) {
	got := buildSearchFilter(ports.SearchFilter{
		Type:            "wireless",
		OtherType:       "wired",
		OtherMusicHours: intPtr(6),
		Store:           "bugis",
		Color:           "white",
		OtherColor:      "red",
		MinPrice:        floatPtr(10),
		MaxPrice:        floatPtr(500),
	})

	if len(got) != 5 {
		t.Fatalf("expected 5 filtered fields, got %d: %v", len(got), got)
	}
	typeOps, ok := got["type"].(bson.M)
	if !ok {
		t.Fatalf("type constraint missing: %v", got)
	}
	if typeOps["$regex"] != "wireless" || typeOps["$ne"] != "wired" {
		t.Fatalf("type pattern and exclusion should both apply: %v", typeOps)
	}
}

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name                string
		page, limit         int64
		wantSkip, wantSize  int64
		wantPage, wantLimit int64
	}{
		{"defaults", 0, 0, 0, 20, 1, 20},
		{"first page explicit", 1, 20, 0, 20, 1, 20},
		{"second page of five", 2, 5, 5, 5, 2, 5},
		{"deep page", 10, 3, 27, 3, 10, 3},
		{"negative values fall back", -1, -7, 0, 20, 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, size, page, limit := pageBounds(tt.page, tt.limit)
			if skip != tt.wantSkip || size != tt.wantSize || page != tt.wantPage || limit != tt.wantLimit {
				t.Fatalf("pageBounds(%d, %d) = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					tt.page, tt.limit, skip, size, page, limit,
					tt.wantSkip, tt.wantSize, tt.wantPage, tt.wantLimit)
			}
		})
	}
}
