package services

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sportsync/pickup-games/models"
	"github.com/sportsync/pickup-games/repositories"
)

// fakeGameRepository is an in-memory stand-in for the mongo repository. Its
// JoinRoster mirrors the conditional-write semantics of the real one: the
// capacity and duplicate-name checks happen under the same lock as the
// mutation. Individual methods can be overridden per test.
type fakeGameRepository struct {
	mu    sync.Mutex
	games map[string]*models.Game

	getFunc  func(ctx context.Context, id string) (*models.Game, error)
	joinFunc func(ctx context.Context, id string, p models.Participant) (bool, error)
}

func newFakeGameRepository() *fakeGameRepository {
	return &fakeGameRepository{games: make(map[string]*models.Game)}
}

func (f *fakeGameRepository) Create(ctx context.Context, game *models.Game) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	game.ID = primitive.NewObjectID()
	game.CreatedAt = time.Now().UTC()
	stored := *game
	stored.Roster = append([]models.Participant{}, game.Roster...)
	f.games[game.ID.Hex()] = &stored
	return nil
}

func (f *fakeGameRepository) GetByID(ctx context.Context, id string) (*models.Game, error) {
	if f.getFunc != nil {
		return f.getFunc(ctx, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	game, ok := f.games[id]
	if !ok {
		return nil, repositories.ErrGameNotFound
	}
	snapshot := *game
	snapshot.Roster = append([]models.Participant{}, game.Roster...)
	return &snapshot, nil
}

func (f *fakeGameRepository) ListAll(ctx context.Context) ([]*models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	games := make([]*models.Game, 0, len(f.games))
	for _, game := range f.games {
		snapshot := *game
		snapshot.Roster = append([]models.Participant{}, game.Roster...)
		games = append(games, &snapshot)
	}
	return games, nil
}

func (f *fakeGameRepository) JoinRoster(ctx context.Context, id string, p models.Participant) (bool, error) {
	if f.joinFunc != nil {
		return f.joinFunc(ctx, id, p)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	game, ok := f.games[id]
	if !ok {
		return false, nil
	}
	if game.PlayersNeeded <= 0 || game.HasParticipant(p.Name) {
		return false, nil
	}
	game.PlayersNeeded--
	game.Roster = append(game.Roster, p)
	return true, nil
}

func (f *fakeGameRepository) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.games, id)
	return nil
}

// mustCreateGame seeds the fake with a game and returns its id.
func (f *fakeGameRepository) mustCreateGame(game models.Game) string {
	_ = f.Create(context.Background(), &game)
	return game.ID.Hex()
}

type fakePlayerRepository struct {
	mu      sync.Mutex
	players []*models.Player

	createErr error
}

func (f *fakePlayerRepository) Create(ctx context.Context, player *models.Player) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	player.ID = primitive.NewObjectID()
	player.CreatedAt = time.Now().UTC()
	stored := *player
	f.players = append(f.players, &stored)
	return nil
}

func (f *fakePlayerRepository) ListAll(ctx context.Context) ([]*models.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*models.Player{}, f.players...), nil
}
