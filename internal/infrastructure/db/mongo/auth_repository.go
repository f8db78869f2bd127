package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

const clientCollection = "api_clients"

type MongoClientRepository struct {
	coll *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *MongoClientRepository {
	return &MongoClientRepository{coll: db.Collection(clientCollection)}
}

type mongoClient struct {
	ID         string `bson:"_id"`
	SecretHash string `bson:"secret_hash"`
	Role       string `bson:"role"`
	UpdatedAt  int64  `bson:"updated_at"`
}

// Upsert creates the client or replaces its secret and role.
func (r *MongoClientRepository) Upsert(ctx context.Context, client *domain.APIClient) error {
	doc := mongoClient{
		ID:         client.ID,
		SecretHash: client.SecretHash,
		Role:       client.Role,
		UpdatedAt:  time.Now().UTC().Unix(),
	}

	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": client.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert client: %w", err)
	}
	return nil
}

func (r *MongoClientRepository) FindByID(ctx context.Context, id string) (*domain.APIClient, error) {
	var mc mongoClient
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}

	return &domain.APIClient{
		ID:         mc.ID,
		SecretHash: mc.SecretHash,
		Role:       mc.Role,
	}, nil
}
