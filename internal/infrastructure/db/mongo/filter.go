package mongo

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/audiomart/catalog-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// buildSearchFilter translates the optional search constraints into a single
// Mongo filter document. Constraints on the same field are merged into one
// operator document so that, for example, color and otherColor compose as an
// AND instead of the later one overwriting the earlier.
func buildSearchFilter(f ports.SearchFilter) bson.M {
	criteria := bson.M{}

	if f.Type != "" {
		fieldOps(criteria, "type")["$regex"] = f.Type
		fieldOps(criteria, "type")["$options"] = "i"
	}
	if f.OtherType != "" {
		fieldOps(criteria, "type")["$ne"] = f.OtherType
	}
	if f.OtherMusicHours != nil {
		fieldOps(criteria, "hours.music")["$ne"] = *f.OtherMusicHours
	}
	if f.Store != "" {
		criteria["stock"] = bson.M{"$elemMatch": bson.M{"store": f.Store}}
	}
	if f.Color != "" {
		fieldOps(criteria, "color")["$in"] = bson.A{f.Color}
	}
	if f.OtherColor != "" {
		fieldOps(criteria, "color")["$nin"] = bson.A{f.OtherColor}
	}
	if f.MinPrice != nil {
		fieldOps(criteria, "price")["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		fieldOps(criteria, "price")["$lte"] = *f.MaxPrice
	}

	return criteria
}

// fieldOps returns the operator document for field, creating it on first use.
func fieldOps(criteria bson.M, field string) bson.M {
	ops, ok := criteria[field].(bson.M)
	if !ok {
		ops = bson.M{}
		criteria[field] = ops
	}
	return ops
}

// pageBounds resolves the pagination defaults and returns the skip offset and
// result cap for a page, along with the resolved page and limit values.
func pageBounds(page, limit int64) (skip, size, resolvedPage, resolvedLimit int64) {
	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return (page - 1) * limit, limit, page, limit
}
