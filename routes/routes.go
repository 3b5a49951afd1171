package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sportsync/pickup-games/handlers"
	"github.com/sportsync/pickup-games/middleware"
)

// SetupRoutes wires the full HTTP surface onto the router.
func SetupRoutes(
	router *chi.Mux,
	sessionSecret []byte,
	publicDir string,
	pageHandler *handlers.PageHandler,
	gameHandler *handlers.GameHandler,
	playerHandler *handlers.PlayerHandler,
	authHandler *handlers.AuthHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(middleware.Identity(sessionSecret))

	// Static marketing pages
	router.Get("/", pageHandler.Home())
	router.Get("/about", pageHandler.About())
	router.Get("/services", pageHandler.Services())
	router.Get("/contact", pageHandler.Contact())
	router.Post("/submit-contact", pageHandler.SubmitContact)

	// Games
	router.Route("/games", func(r chi.Router) {
		r.Get("/", gameHandler.List)
		r.Get("/new", gameHandler.NewGameForm)
		r.Post("/", gameHandler.Create)
		r.Post("/join/{id}", gameHandler.Join)
		r.Post("/delete/{id}", gameHandler.Delete)
	})

	// Players
	router.Route("/players", func(r chi.Router) {
		r.Get("/", playerHandler.List)
		r.Get("/new", playerHandler.NewPlayerForm)
		r.Post("/", playerHandler.Create)
	})

	// Auth pages (identity provider does the heavy lifting)
	router.Get("/signup", authHandler.SignupPage)
	router.Get("/login", authHandler.LoginPage)
	router.Post("/session", authHandler.CreateSession)
	router.Post("/logout", authHandler.Logout)

	// Live catalog feed
	router.Get("/ws/games", webSocketHandler.ServeWs)

	// Assets
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(publicDir))))
}
