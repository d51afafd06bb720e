package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lapak/internal/models"
)

// MongoSellerRepository is a MongoDB implementation of SellerRepository.
type MongoSellerRepository struct {
	col *mongo.Collection
}

// NewMongoSellerRepository creates a new instance of MongoSellerRepository
// backed by the "sellers" collection of the given database.
func NewMongoSellerRepository(db *mongo.Database) *MongoSellerRepository {
	return &MongoSellerRepository{
		col: db.Collection("sellers"),
	}
}

// EnsureIndexes creates the unique index on username that backs the
// uniqueness invariant. Called once at startup.
func (r *MongoSellerRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}
	return nil
}

// Create inserts a new seller, generating an ID if none is set.
// A concurrent signup with the same username loses against the unique
// index and surfaces as ErrSellerExists.
func (r *MongoSellerRepository) Create(ctx context.Context, seller *models.Seller) error {
	if seller.ID == "" {
		seller.ID = uuid.New().String()
	}
	seller.CreatedAt = time.Now()

	if _, err := r.col.InsertOne(ctx, seller); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("username %s: %w", seller.Username, ErrSellerExists)
		}
		return fmt.Errorf("failed to create seller: %w", err)
	}
	return nil
}

// GetByUsername retrieves a seller by their username.
func (r *MongoSellerRepository) GetByUsername(ctx context.Context, username string) (*models.Seller, error) {
	var seller models.Seller
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&seller); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("seller with username %s: %w", username, ErrSellerNotFound)
		}
		return nil, fmt.Errorf("failed to get seller by username %s: %w", username, err)
	}
	return &seller, nil
}

// GetByID retrieves a seller by their ID.
func (r *MongoSellerRepository) GetByID(ctx context.Context, id string) (*models.Seller, error) {
	var seller models.Seller
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&seller); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("seller with ID %s: %w", id, ErrSellerNotFound)
		}
		return nil, fmt.Errorf("failed to get seller by ID %s: %w", id, err)
	}
	return &seller, nil
}
