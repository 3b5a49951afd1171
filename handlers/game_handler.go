package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sportsync/pickup-games/middleware"
	"github.com/sportsync/pickup-games/models"
	"github.com/sportsync/pickup-games/services"
)

type GameHandler struct {
	roster  *services.RosterService
	catalog *services.CatalogService
}

func NewGameHandler(roster *services.RosterService, catalog *services.CatalogService) *GameHandler {
	return &GameHandler{
		roster:  roster,
		catalog: catalog,
	}
}

// NewGameForm renders the game creation form.
func (h *GameHandler) NewGameForm(w http.ResponseWriter, r *http.Request) {
	RenderTemplate(w, http.StatusOK, "create-game.html", map[string]interface{}{
		"Identity": middleware.IdentityFromContext(r.Context()),
	})
}

// Create stores a new game from the submitted form and redirects to the
// games list.
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badRequestResponse(w, err)
		return
	}

	playersNeeded, err := strconv.Atoi(r.PostFormValue("playersNeeded"))
	if err != nil {
		badRequestResponse(w, services.ErrGameInvalidCapacity)
		return
	}

	input := services.CreateGameInput{
		Title:         r.PostFormValue("title"),
		Sport:         r.PostFormValue("sport"),
		Location:      r.PostFormValue("location"),
		Date:          r.PostFormValue("date"),
		Time:          r.PostFormValue("time"),
		PlayersNeeded: playersNeeded,
		CreatedBy:     r.PostFormValue("createdBy"),
		CreatorEmail:  r.PostFormValue("creatorEmail"),
	}

	caller := middleware.IdentityFromContext(r.Context())
	if _, err := h.roster.CreateGame(r.Context(), input, caller); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	http.Redirect(w, r, "/games", http.StatusSeeOther)
}

// List renders the upcoming games page, optionally filtered by sport and
// search text.
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	sportFilter := r.URL.Query().Get("sport")
	search := r.URL.Query().Get("search")

	games, err := h.catalog.ListGames(r.Context(), sportFilter, search)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	RenderTemplate(w, http.StatusOK, "upcoming-games.html", map[string]interface{}{
		"Games":       games,
		"IsSearching": search != "",
		"SportFilter": sportFilter,
		"Search":      search,
		"Identity":    middleware.IdentityFromContext(r.Context()),
	})
}

// Join runs the roster join workflow. Whether the join was accepted, a
// repeat, or dropped because the game is full, the browser is sent back to
// the games list; only a missing game gets its own page.
func (h *GameHandler) Join(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		badRequestResponse(w, err)
		return
	}

	participant := models.Participant{
		Name:  r.PostFormValue("name"),
		Phone: r.PostFormValue("phone"),
	}

	outcome, err := h.roster.AttemptJoin(r.Context(), gameID, participant)
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			notFoundResponse(w, "Game not found")
			return
		}
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	slog.Info("join attempt handled",
		slog.String("game_id", gameID),
		slog.String("outcome", outcome.String()),
	)

	http.Redirect(w, r, "/games", http.StatusSeeOther)
}

// Delete removes a game and redirects to the games list. Deleting a game
// that is already gone redirects all the same.
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")
	caller := middleware.IdentityFromContext(r.Context())

	if err := h.roster.DeleteGame(r.Context(), gameID, caller); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	http.Redirect(w, r, "/games", http.StatusSeeOther)
}
