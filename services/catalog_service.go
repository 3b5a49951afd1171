package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sportsync/pickup-games/models"
	"github.com/sportsync/pickup-games/repositories"
)

// CatalogService lists and filters the game catalog for the upcoming-games
// page.
type CatalogService struct {
	games repositories.GameRepository
}

func NewCatalogService(games repositories.GameRepository) *CatalogService {
	return &CatalogService{games: games}
}

// ListGames returns all games ordered by creation time, newest first,
// optionally narrowed by an exact sport match and a case-insensitive
// substring search over title and location. Filtering happens in memory
// after a full fetch; at this collection size that is fine.
func (s *CatalogService) ListGames(ctx context.Context, sportFilter, search string) ([]*models.Game, error) {
	games, err := s.games.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	if sportFilter != "" {
		filtered := games[:0]
		for _, game := range games {
			if game.Sport == sportFilter {
				filtered = append(filtered, game)
			}
		}
		games = filtered
	}

	if search != "" {
		lower := strings.ToLower(search)
		filtered := games[:0]
		for _, game := range games {
			if strings.Contains(strings.ToLower(game.Title), lower) ||
				strings.Contains(strings.ToLower(game.Location), lower) {
				filtered = append(filtered, game)
			}
		}
		games = filtered
	}

	return games, nil
}
