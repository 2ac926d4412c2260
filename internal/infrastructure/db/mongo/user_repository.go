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

const collectionUsers = "user"

// userProjection excludes the password hash from every read path.
var userProjection = bson.M{
	"_id":       1,
	"username":  1,
	"firstname": 1,
	"lastname":  1,
	"email":     1,
}

// UserRepository implements ports.UserRepository on the user collection.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Firstname string             `bson:"firstname,omitempty"`
	Lastname  string             `bson:"lastname,omitempty"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password,omitempty"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Firstname:    d.Firstname,
		Lastname:     d.Lastname,
		Email:        d.Email,
		PasswordHash: d.Password,
	}
}

// Create inserts a new user. A duplicate email triggers the unique index and
// maps to ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDoc{
		Username:  u.Username,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Email:     u.Email,
		Password:  u.PasswordHash,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// FindByID retrieves a user without the password hash.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := parseID(id, domain.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	var doc userDoc
	opts := options.FindOne().SetProjection(userProjection)
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByEmail retrieves a user including the password hash, for login.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns every user, password hash excluded.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetProjection(userProjection)
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	users := []domain.User{}
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Update sets the mutable profile fields. Email and password are untouched.
func (r *UserRepository) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := parseID(u.ID, domain.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"username":  u.Username,
		"firstname": u.Firstname,
		"lastname":  u.Lastname,
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, u.ID)
}

// Delete removes a user; an absent id reports ErrUserNotFound.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := parseID(id, domain.ErrUserNotFound)
	if err != nil {
		return err
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ListReviews joins the user against the earphone collection and unwinds each
// review the user's email appears on, one page at a time.
func (r *UserRepository) ListReviews(ctx context.Context, userID, email string, page, limit int64) ([]ports.UserReview, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := parseID(userID, domain.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	skip, size, _, _ := pageBounds(page, limit)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": oid}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionProducts,
			"localField":   "email",
			"foreignField": "review.email",
			"as":           "reviewed",
		}}},
		{{Key: "$unwind", Value: "$reviewed"}},
		{{Key: "$unwind", Value: "$reviewed.review"}},
		{{Key: "$match", Value: bson.M{"reviewed.review.email": email}}},
		{{Key: "$project", Value: bson.M{
			"reviewed._id":        1,
			"reviewed.brandModel": 1,
			"reviewed.review":     1,
		}}},
		{{Key: "$skip", Value: skip}},
		{{Key: "$limit", Value: size}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate user reviews: %w", err)
	}
	defer cur.Close(ctx)

	type row struct {
		Reviewed struct {
			ID         primitive.ObjectID `bson:"_id"`
			BrandModel string             `bson:"brandModel"`
			Review     reviewDoc          `bson:"review"`
		} `bson:"reviewed"`
	}

	reviews := []ports.UserReview{}
	for cur.Next(ctx) {
		var rw row
		if err := cur.Decode(&rw); err != nil {
			return nil, fmt.Errorf("decode user review: %w", err)
		}
		reviews = append(reviews, ports.UserReview{
			ProductID:  rw.Reviewed.ID.Hex(),
			BrandModel: rw.Reviewed.BrandModel,
			Review:     *rw.Reviewed.Review.toDomain(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("aggregate user reviews: %w", err)
	}
	return reviews, nil
}

// EnsureIndexes creates the unique email index that backs the global email
// uniqueness invariant.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
