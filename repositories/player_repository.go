package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sportsync/pickup-games/models"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	ListAll(ctx context.Context) ([]*models.Player, error)
}

type mongoPlayerRepository struct {
	coll *mongo.Collection
}

func NewMongoPlayerRepository(database *mongo.Database) PlayerRepository {
	return &mongoPlayerRepository{coll: database.Collection("players")}
}

func (r *mongoPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	player.ID = primitive.NewObjectID()
	player.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, player); err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

func (r *mongoPlayerRepository) ListAll(ctx context.Context) ([]*models.Player, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer cursor.Close(ctx)

	players := []*models.Player{}
	if err := cursor.All(ctx, &players); err != nil {
		return nil, fmt.Errorf("failed to decode players: %w", err)
	}
	return players, nil
}
