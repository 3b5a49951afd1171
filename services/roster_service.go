package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sportsync/pickup-games/live"
	"github.com/sportsync/pickup-games/models"
	"github.com/sportsync/pickup-games/repositories"
)

// DefaultParticipantName is substituted when a join request carries a blank
// name.
const DefaultParticipantName = "Anonymous Player"

// JoinOutcome tells the caller what a join attempt actually did. The HTTP
// layer redirects the same way for all three, but the distinction is kept
// for logging and the live feed.
type JoinOutcome int

const (
	JoinAccepted JoinOutcome = iota
	JoinAlreadyMember
	JoinGameFull
)

func (o JoinOutcome) String() string {
	switch o {
	case JoinAccepted:
		return "accepted"
	case JoinAlreadyMember:
		return "already_member"
	case JoinGameFull:
		return "game_full"
	default:
		return "unknown"
	}
}

// CreateGameInput carries the form fields for a new game.
type CreateGameInput struct {
	Title         string
	Sport         string
	Location      string
	Date          string
	Time          string
	PlayersNeeded int
	CreatedBy     string
	CreatorEmail  string
}

// RosterService владеет жизненным циклом игры: создание, запись в состав и
// удаление документа целиком.
type RosterService struct {
	games repositories.GameRepository
	feed  *live.Hub
}

// NewRosterService создаёт RosterService с внедрением зависимостей. Hub
// может быть nil, тогда события не публикуются.
func NewRosterService(games repositories.GameRepository, feed *live.Hub) *RosterService {
	return &RosterService{
		games: games,
		feed:  feed,
	}
}

// CreateGame validates the input, stamps the creator identity and stores a
// new game document.
func (s *RosterService) CreateGame(ctx context.Context, input CreateGameInput, caller *models.Identity) (*models.Game, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrGameTitleRequired
	}
	if input.PlayersNeeded < 0 {
		return nil, ErrGameInvalidCapacity
	}

	game := &models.Game{
		Title:         strings.TrimSpace(input.Title),
		Sport:         strings.TrimSpace(input.Sport),
		Location:      strings.TrimSpace(input.Location),
		Date:          input.Date,
		Time:          input.Time,
		PlayersNeeded: input.PlayersNeeded,
		Roster:        []models.Participant{},
		CreatedBy:     input.CreatedBy,
		CreatorEmail:  input.CreatorEmail,
	}
	// Verified session claims win over whatever the form says.
	if caller != nil {
		game.CreatedBy = caller.Name
		game.CreatorEmail = caller.Email
	}

	if err := s.games.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	s.publish(live.EventGameCreated, game.ID.Hex())
	return game, nil
}

// GetGame returns a single game by id.
func (s *RosterService) GetGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	return game, nil
}

// AttemptJoin mediates a join request against the game's capacity and
// roster. Repeated joins with the same name are no-ops, and a full game
// silently drops the request; neither is an error. The mutation itself is a
// single conditional write, so playersNeeded never goes negative and a name
// never appears twice even when joins race.
func (s *RosterService) AttemptJoin(ctx context.Context, gameID string, participant models.Participant) (JoinOutcome, error) {
	participant.Name = strings.TrimSpace(participant.Name)
	if participant.Name == "" {
		participant.Name = DefaultParticipantName
	}
	participant.Phone = strings.TrimSpace(participant.Phone)

	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return 0, ErrGameNotFound
		}
		return 0, fmt.Errorf("failed to load game: %w", err)
	}

	if game.HasParticipant(participant.Name) {
		return JoinAlreadyMember, nil
	}
	if game.IsFull() {
		return JoinGameFull, nil
	}

	joined, err := s.games.JoinRoster(ctx, gameID, participant)
	if err != nil {
		return 0, fmt.Errorf("failed to join game: %w", err)
	}
	if !joined {
		// Lost a race between the snapshot read and the conditional write.
		// The write filter already protected the invariants; re-read only
		// to classify the outcome.
		current, err := s.games.GetByID(ctx, gameID)
		if err == nil && current.HasParticipant(participant.Name) {
			return JoinAlreadyMember, nil
		}
		return JoinGameFull, nil
	}

	s.publish(live.EventGameJoined, gameID)
	return JoinAccepted, nil
}

// DeleteGame removes the game document together with its embedded roster.
// Deleting an absent game is a no-op. When the game records a creator email
// and the caller is logged in as someone else, the delete is refused; games
// created before login support existed have no recorded creator and stay
// deletable by anyone.
func (s *RosterService) DeleteGame(ctx context.Context, gameID string, caller *models.Identity) error {
	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load game: %w", err)
	}

	if game.CreatorEmail != "" && caller != nil && caller.Email != game.CreatorEmail {
		return ErrForbiddenOperation
	}

	if err := s.games.Delete(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	s.publish(live.EventGameDeleted, gameID)
	return nil
}

func (s *RosterService) publish(eventType string, gameID string) {
	if s.feed == nil {
		return
	}
	s.feed.Publish(live.Event{Type: eventType, GameID: gameID})
}
