package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sportsync/pickup-games/models"
)

var (
	ErrGameNotFound = errors.New("game not found")
)

type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id string) (*models.Game, error)
	ListAll(ctx context.Context) ([]*models.Game, error)
	// JoinRoster applies the capacity decrement and the roster append as a
	// single conditional write. It reports whether a document was modified:
	// false means the game was full, already contained the name, or was
	// deleted in the meantime.
	JoinRoster(ctx context.Context, id string, participant models.Participant) (bool, error)
	Delete(ctx context.Context, id string) error
}

type mongoGameRepository struct {
	coll *mongo.Collection
}

func NewMongoGameRepository(database *mongo.Database) GameRepository {
	return &mongoGameRepository{coll: database.Collection("games")}
}

func (r *mongoGameRepository) Create(ctx context.Context, game *models.Game) error {
	game.ID = primitive.NewObjectID()
	game.CreatedAt = time.Now().UTC()
	if game.Roster == nil {
		game.Roster = []models.Participant{}
	}

	if _, err := r.coll.InsertOne(ctx, game); err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}
	return nil
}

func (r *mongoGameRepository) GetByID(ctx context.Context, id string) (*models.Game, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot reference any document
		return nil, ErrGameNotFound
	}

	var game models.Game
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&game); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to find game: %w", err)
	}
	return &game, nil
}

func (r *mongoGameRepository) ListAll(ctx context.Context) ([]*models.Game, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer cursor.Close(ctx)

	games := []*models.Game{}
	if err := cursor.All(ctx, &games); err != nil {
		return nil, fmt.Errorf("failed to decode games: %w", err)
	}
	return games, nil
}

func (r *mongoGameRepository) JoinRoster(ctx context.Context, id string, participant models.Participant) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrGameNotFound
	}

	// The filter carries the capacity and duplicate-name preconditions, so
	// the decrement and the append either both apply or neither does.
	// playersNeeded can never go negative and a name can never be appended
	// twice, regardless of concurrent joins.
	filter := bson.M{
		"_id":           oid,
		"playersNeeded": bson.M{"$gt": 0},
		"roster.name":   bson.M{"$ne": participant.Name},
	}
	update := bson.M{
		"$inc":      bson.M{"playersNeeded": -1},
		"$addToSet": bson.M{"roster": participant},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to join game roster: %w", err)
	}
	return result.ModifiedCount > 0, nil
}

func (r *mongoGameRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Nothing to delete; delete is idempotent
		return nil
	}

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}
