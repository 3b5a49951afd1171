package handlers

import (
	"net/http"

	"github.com/sportsync/pickup-games/middleware"
	"github.com/sportsync/pickup-games/services"
)

type PlayerHandler struct {
	players *services.PlayerService
}

func NewPlayerHandler(players *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{players: players}
}

// NewPlayerForm renders the player card creation form.
func (h *PlayerHandler) NewPlayerForm(w http.ResponseWriter, r *http.Request) {
	RenderTemplate(w, http.StatusOK, "create-player.html", map[string]interface{}{
		"Identity": middleware.IdentityFromContext(r.Context()),
	})
}

// Create stores a new player card and redirects to the directory.
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badRequestResponse(w, err)
		return
	}

	input := services.CreatePlayerInput{
		Name:         r.PostFormValue("name"),
		PrimarySport: r.PostFormValue("primarySport"),
		SkillLevel:   r.PostFormValue("skillLevel"),
		Location:     r.PostFormValue("location"),
		Availability: r.PostFormValue("availability"),
	}

	if _, err := h.players.CreatePlayer(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	http.Redirect(w, r, "/players", http.StatusSeeOther)
}

// List renders the full player directory.
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.players.ListPlayers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	RenderTemplate(w, http.StatusOK, "find-players.html", map[string]interface{}{
		"Players":  players,
		"Identity": middleware.IdentityFromContext(r.Context()),
	})
}
