// Package api exposes deck composition over HTTP: narratives come in
// as JSON payloads and leave as stored, addressable slide decks.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tsawler/pagina/internal/config"
	"github.com/tsawler/pagina/paginate"
)

// Server is the HTTP API server for the deck service.
type Server struct {
	router    chi.Router
	store     *DeckStore
	paginator *paginate.Paginator
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(store *DeckStore, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store: store,
		paginator: paginate.NewPaginatorWithConfig(paginate.PaginatorConfig{
			Budgets: cfg.Budgets(),
		}),
		log: log,
		cfg: cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Deck endpoints, behind bearer auth when a key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/decks", s.handleComposeDeck)
		r.Get("/api/decks/{deckID}", s.handleGetDeck)
		r.Get("/api/decks/{deckID}/nav", s.handleGetNav)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
