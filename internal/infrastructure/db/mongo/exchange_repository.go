package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

const exchangeCollection = "carrier_exchanges"

// ExchangeRepository implements ports.ExchangeRepository using MongoDB.
type ExchangeRepository struct {
	db *mongo.Database
}

// NewExchangeRepository creates a new ExchangeRepository.
func NewExchangeRepository(db *mongo.Database) *ExchangeRepository {
	return &ExchangeRepository{db: db}
}

// Insert persists an exchange to the audit collection, assigning an ID when
// the caller did not.
func (r *ExchangeRepository) Insert(ctx context.Context, exchange *domain.Exchange) error {
	if exchange.ID == "" {
		exchange.ID = uuid.NewString()
	}

	doc := bson.M{
		"_id":          exchange.ID,
		"operation":    string(exchange.Operation),
		"test":         exchange.Test,
		"request_xml":  exchange.RequestXML,
		"response_xml": exchange.ResponseXML,
		"success":      exchange.Success,
		"message":      exchange.Message,
		"created_at":   exchange.CreatedAt.UTC(),
	}
	if exchange.Error != "" {
		doc["error"] = exchange.Error
	}

	if _, err := r.db.Collection(exchangeCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert exchange: %w", err)
	}
	return nil
}

// EnsureIndexes creates the audit indexes. Exchanges older than retention are
// expired by MongoDB; retention <= 0 keeps them forever.
func (r *ExchangeRepository) EnsureIndexes(ctx context.Context, retention time.Duration) error {
	createdAt := options.Index().SetName("created_at_ttl")
	if retention > 0 {
		createdAt.SetExpireAfterSeconds(int32(retention.Seconds()))
	}

	_, err := r.db.Collection(exchangeCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: 1}}, Options: createdAt},
		{Keys: bson.D{{Key: "operation", Value: 1}, {Key: "success", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("ensure exchange indexes: %w", err)
	}
	return nil
}
