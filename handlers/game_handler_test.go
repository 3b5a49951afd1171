package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sportsync/pickup-games/models"
	"github.com/sportsync/pickup-games/repositories"
	"github.com/sportsync/pickup-games/services"
)

func loadTestTemplates(t *testing.T) {
	t.Helper()
	if err := LoadTemplates(filepath.Join("..", "templates")); err != nil {
		t.Fatalf("load templates: %v", err)
	}
}

// fakeGameRepository mirrors the conditional-join semantics of the mongo
// repository for handler-level tests.
type fakeGameRepository struct {
	mu    sync.Mutex
	games map[string]*models.Game
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
	f.games[game.ID.Hex()] = &stored
	return nil
}

func (f *fakeGameRepository) GetByID(ctx context.Context, id string) (*models.Game, error) {
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
		games = append(games, &snapshot)
	}
	return games, nil
}

func (f *fakeGameRepository) JoinRoster(ctx context.Context, id string, p models.Participant) (bool, error) {
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

func newGameTestRouter(t *testing.T, repo repositories.GameRepository) *chi.Mux {
	t.Helper()
	loadTestTemplates(t)

	roster := services.NewRosterService(repo, nil)
	catalog := services.NewCatalogService(repo)
	handler := NewGameHandler(roster, catalog)

	router := chi.NewRouter()
	router.Get("/games", handler.List)
	router.Get("/games/new", handler.NewGameForm)
	router.Post("/games", handler.Create)
	router.Post("/games/join/{id}", handler.Join)
	router.Post("/games/delete/{id}", handler.Delete)
	return router
}

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGameCreateRedirectsToList(t *testing.T) {
	repo := newFakeGameRepository()
	router := newGameTestRouter(t, repo)

	rec := postForm(router, "/games", url.Values{
		"title":         {"Sunday Soccer"},
		"sport":         {"Soccer"},
		"location":      {"Riverside Park"},
		"date":          {"2026-09-06"},
		"time":          {"10:00"},
		"playersNeeded": {"10"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rec.Code, rec.Body.String())
	}
	if location := rec.Header().Get("Location"); location != "/games" {
		t.Fatalf("expected redirect to /games, got %q", location)
	}

	games, _ := repo.ListAll(context.Background())
	if len(games) != 1 || games[0].Title != "Sunday Soccer" {
		t.Fatalf("expected the game stored, got %+v", games)
	}
}

func TestGameCreateRejectsMalformedCapacity(t *testing.T) {
	repo := newFakeGameRepository()
	router := newGameTestRouter(t, repo)

	rec := postForm(router, "/games", url.Values{
		"title":         {"Sunday Soccer"},
		"playersNeeded": {"plenty"},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGameJoinRedirectsAndRecordsParticipant(t *testing.T) {
	repo := newFakeGameRepository()
	router := newGameTestRouter(t, repo)

	game := &models.Game{Title: "Evening Hoops", PlayersNeeded: 4}
	if err := repo.Create(context.Background(), game); err != nil {
		t.Fatalf("seed game: %v", err)
	}

	rec := postForm(router, "/games/join/"+game.ID.Hex(), url.Values{
		"name":  {"Alice"},
		"phone": {"555-0101"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rec.Code, rec.Body.String())
	}

	stored, _ := repo.GetByID(context.Background(), game.ID.Hex())
	if stored.PlayersNeeded != 3 || !stored.HasParticipant("Alice") {
		t.Fatalf("join not applied: %+v", stored)
	}
}

func TestGameJoinMissingGameRendersNotFound(t *testing.T) {
	repo := newFakeGameRepository()
	router := newGameTestRouter(t, repo)

	rec := postForm(router, "/games/join/"+primitive.NewObjectID().Hex(), url.Values{"name": {"Alice"}})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Game not found") {
		t.Fatalf("expected not-found message in body, got %q", rec.Body.String())
	}
}

func TestGameDeleteIsIdempotentAtTheRoute(t *testing.T) {
	repo := newFakeGameRepository()
	router := newGameTestRouter(t, repo)

	game := &models.Game{Title: "Short Lived", PlayersNeeded: 2}
	if err := repo.Create(context.Background(), game); err != nil {
		t.Fatalf("seed game: %v", err)
	}

	for i := 0; i < 2; i++ {
		rec := postForm(router, "/games/delete/"+game.ID.Hex(), url.Values{})
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("delete attempt %d: expected 303, got %d", i+1, rec.Code)
		}
	}
}

func TestGameListRendersFilteredGames(t *testing.T) {
	repo := newFakeGameRepository()
	router := newGameTestRouter(t, repo)
	ctx := context.Background()

	soccer := &models.Game{Title: "Sunset Soccer", Sport: "Soccer", Location: "Riverside Park", PlayersNeeded: 4}
	hoops := &models.Game{Title: "Downtown Hoops", Sport: "Basketball", Location: "Main St Gym", PlayersNeeded: 2}
	if err := repo.Create(ctx, soccer); err != nil {
		t.Fatalf("seed soccer: %v", err)
	}
	if err := repo.Create(ctx, hoops); err != nil {
		t.Fatalf("seed hoops: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/games?sport=Soccer", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Sunset Soccer") {
		t.Fatalf("expected the soccer game in the page, got %q", body)
	}
	if strings.Contains(body, "Downtown Hoops") {
		t.Fatalf("basketball game must be filtered out")
	}
}
