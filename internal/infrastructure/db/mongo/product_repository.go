package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/audiomart/catalog-api/internal/core/domain"
	"github.com/audiomart/catalog-api/internal/core/ports"
)

const collectionProducts = "earphone"

// ProductRepository implements ports.ProductRepository on the earphone collection.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(collectionProducts)}
}

type productDoc struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty"`
	BrandModel     string              `bson:"brandModel"`
	Type           string              `bson:"type"`
	Earbuds        string              `bson:"earbuds,omitempty"`
	Bluetooth      string              `bson:"bluetooth,omitempty"`
	Price          float64             `bson:"price"`
	Stock          []domain.StockEntry `bson:"stock,omitempty"`
	Color          []string            `bson:"color"`
	Hours          domain.BatteryHours `bson:"hours"`
	DustWaterproof bool                `bson:"dustWaterproof"`
	Connectors     string              `bson:"connectors"`
	Image          string              `bson:"image,omitempty"`
	Reviews        []reviewDoc         `bson:"review,omitempty"`
	IdempotencyKey string              `bson:"idempotency_key,omitempty"`
}

type reviewDoc struct {
	ID       primitive.ObjectID `bson:"_id"`
	Email    string             `bson:"email"`
	Comments string             `bson:"comments"`
	Rating   int                `bson:"rating"`
	Date     time.Time          `bson:"date"`
}

func toProductDoc(p *domain.Product) (*productDoc, error) {
	doc := &productDoc{
		BrandModel:     p.BrandModel,
		Type:           p.Type,
		Earbuds:        p.Earbuds,
		Bluetooth:      p.Bluetooth,
		Price:          p.Price,
		Stock:          p.Stock,
		Color:          p.Color,
		Hours:          p.Hours,
		DustWaterproof: p.DustWaterproof,
		Connectors:     p.Connectors,
		Image:          p.Image,
		IdempotencyKey: p.IdempotencyKey,
	}
	if p.ID != "" {
		oid, err := primitive.ObjectIDFromHex(p.ID)
		if err != nil {
			return nil, domain.ErrProductNotFound
		}
		doc.ID = oid
	}
	for _, r := range p.Reviews {
		rd, err := toReviewDoc(&r)
		if err != nil {
			return nil, err
		}
		doc.Reviews = append(doc.Reviews, *rd)
	}
	return doc, nil
}

func toReviewDoc(r *domain.Review) (*reviewDoc, error) {
	doc := &reviewDoc{
		Email:    r.Email,
		Comments: r.Comments,
		Rating:   r.Rating,
		Date:     r.Date,
	}
	if r.ID == "" {
		doc.ID = primitive.NewObjectID()
	} else {
		oid, err := primitive.ObjectIDFromHex(r.ID)
		if err != nil {
			return nil, domain.ErrReviewNotFound
		}
		doc.ID = oid
	}
	return doc, nil
}

func (d *productDoc) toDomain() *domain.Product {
	p := &domain.Product{
		ID:             d.ID.Hex(),
		BrandModel:     d.BrandModel,
		Type:           d.Type,
		Earbuds:        d.Earbuds,
		Bluetooth:      d.Bluetooth,
		Price:          d.Price,
		Stock:          d.Stock,
		Color:          d.Color,
		Hours:          d.Hours,
		DustWaterproof: d.DustWaterproof,
		Connectors:     d.Connectors,
		Image:          d.Image,
		IdempotencyKey: d.IdempotencyKey,
	}
	for _, r := range d.Reviews {
		p.Reviews = append(p.Reviews, *r.toDomain())
	}
	return p
}

func (d *reviewDoc) toDomain() *domain.Review {
	return &domain.Review{
		ID:       d.ID.Hex(),
		Email:    d.Email,
		Comments: d.Comments,
		Rating:   d.Rating,
		Date:     d.Date,
	}
}

// parseID converts a hex id into an ObjectID; anything unparsable is treated
// as a reference to a document that cannot exist.
func parseID(id string, absent error) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, absent
	}
	return oid, nil
}

// Create inserts a new product document and returns it with its generated id.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toProductDoc(p)
	if err != nil {
		return nil, err
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// FindByID retrieves a single product.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := parseID(id, domain.ErrProductNotFound)
	if err != nil {
		return nil, err
	}

	var doc productDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByIdempotencyKey retrieves the product created under the given key.
func (r *ProductRepository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc productDoc
	if err := r.col.FindOne(ctx, bson.M{"idempotency_key": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product by key: %w", err)
	}
	return doc.toDomain(), nil
}

// Search returns one page of products matching filter, sorted by id ascending.
func (r *ProductRepository) Search(ctx context.Context, filter ports.SearchFilter) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	skip, limit, _, _ := pageBounds(filter.Page, filter.Limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, buildSearchFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer cur.Close(ctx)

	products := []domain.Product{}
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

// Update replaces the mutable fields of an existing product.
func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := parseID(p.ID, domain.ErrProductNotFound)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"brandModel":     p.BrandModel,
		"type":           p.Type,
		"earbuds":        p.Earbuds,
		"bluetooth":      p.Bluetooth,
		"price":          p.Price,
		"stock":          p.Stock,
		"color":          p.Color,
		"hours":          p.Hours,
		"dustWaterproof": p.DustWaterproof,
		"connectors":     p.Connectors,
		"image":          p.Image,
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrProductNotFound
	}
	return r.FindByID(ctx, p.ID)
}

// Delete removes a product. Deleting an absent id reports ErrProductNotFound,
// so repeated deletes yield a consistent no-effect outcome.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := parseID(id, domain.ErrProductNotFound)
	if err != nil {
		return err
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// AddReview appends a review to the product's review list and returns the
// updated document.
func (r *ProductRepository) AddReview(ctx context.Context, productID string, review *domain.Review) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := parseID(productID, domain.ErrProductNotFound)
	if err != nil {
		return nil, err
	}
	doc, err := toReviewDoc(review)
	if err != nil {
		return nil, err
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$push": bson.M{"review": doc}})
	if err != nil {
		return nil, fmt.Errorf("add review: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrProductNotFound
	}
	review.ID = doc.ID.Hex()
	return r.FindByID(ctx, productID)
}

// FindReview retrieves a single review by parent product id and review id.
func (r *ProductRepository) FindReview(ctx context.Context, productID, reviewID string) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	poid, err := parseID(productID, domain.ErrReviewNotFound)
	if err != nil {
		return nil, err
	}
	roid, err := parseID(reviewID, domain.ErrReviewNotFound)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"_id": poid, "review._id": roid}
	opts := options.FindOne().SetProjection(bson.M{"review.$": 1})

	var doc productDoc
	if err := r.col.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	if len(doc.Reviews) == 0 {
		return nil, domain.ErrReviewNotFound
	}
	return doc.Reviews[0].toDomain(), nil
}

// UpdateReview replaces a review in place using the positional operator.
func (r *ProductRepository) UpdateReview(ctx context.Context, productID string, review *domain.Review) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	poid, err := parseID(productID, domain.ErrReviewNotFound)
	if err != nil {
		return nil, err
	}
	roid, err := parseID(review.ID, domain.ErrReviewNotFound)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"_id": poid, "review._id": roid}
	update := bson.M{"$set": bson.M{
		"review.$.email":    review.Email,
		"review.$.comments": review.Comments,
		"review.$.rating":   review.Rating,
		"review.$.date":     review.Date,
	}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrReviewNotFound
	}
	return r.FindReview(ctx, productID, review.ID)
}

// DeleteReview pulls a review out of the product's review list.
func (r *ProductRepository) DeleteReview(ctx context.Context, productID, reviewID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	poid, err := parseID(productID, domain.ErrReviewNotFound)
	if err != nil {
		return err
	}
	roid, err := parseID(reviewID, domain.ErrReviewNotFound)
	if err != nil {
		return err
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": poid},
		bson.M{"$pull": bson.M{"review": bson.M{"_id": roid}}},
	)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if res.ModifiedCount == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the search and idempotency paths rely on.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "review.email", Value: 1}}},
		{
			Keys: bson.D{{Key: "idempotency_key", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"idempotency_key": bson.M{"$type": "string"}}),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
