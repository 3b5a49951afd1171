package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sportsync/pickup-games/models"
	"github.com/sportsync/pickup-games/repositories"
)

// CreatePlayerInput carries the form fields for a new player card.
type CreatePlayerInput struct {
	Name         string
	PrimarySport string
	SkillLevel   string
	Location     string
	Availability string
}

// PlayerService инкапсулирует бизнес-логику для карточек игроков.
type PlayerService struct {
	players repositories.PlayerRepository
}

func NewPlayerService(players repositories.PlayerRepository) *PlayerService {
	return &PlayerService{players: players}
}

// CreatePlayer stores the submitted fields verbatim along with a server
// timestamp. Player cards carry no uniqueness constraints.
func (s *PlayerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (*models.Player, error) {
	player := &models.Player{
		Name:         strings.TrimSpace(input.Name),
		PrimarySport: input.PrimarySport,
		SkillLevel:   input.SkillLevel,
		Location:     input.Location,
		Availability: input.Availability,
	}

	if err := s.players.Create(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return player, nil
}

// ListPlayers returns all player cards in the store's natural order.
func (s *PlayerService) ListPlayers(ctx context.Context) ([]*models.Player, error) {
	players, err := s.players.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}
