package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tsawler/pagina"
	"github.com/tsawler/pagina/model"
	"github.com/tsawler/pagina/slides"
)

// composeRequest is the JSON body accepted by POST /api/decks.
type composeRequest struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Format   string `json:"format"`
	Viewport string `json:"viewport"`
}

// deckEnvelope is the JSON shape returned for a composed or fetched deck.
// Warnings are only populated on composition; fetching a stored deck
// returns the deck alone.
type deckEnvelope struct {
	DeckID   string                  `json:"deck_id"`
	Title    string                  `json:"title,omitempty"`
	Viewport string                  `json:"viewport"`
	Slides   []model.SlideDescriptor `json:"slides"`
	Nav      []slides.NavEntry       `json:"nav"`
	Warnings []pagina.Warning        `json:"warnings,omitempty"`
}

func (s *Server) handleComposeDeck(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req composeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			jsonError(w, fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		jsonError(w, "text is required", http.StatusBadRequest)
		return
	}

	class := s.cfg.DefaultViewport
	if req.Viewport != "" {
		parsed, err := model.ParseViewportClass(req.Viewport)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		class = parsed
	}

	composer := pagina.Narrative(req.Text).
		Title(req.Title).
		Viewport(class).
		Paginator(s.paginator)

	switch strings.ToLower(req.Format) {
	case "", "plain", "text":
		// plain narrative is the default
	case "markdown", "md":
		composer = composer.Markdown()
	case "html":
		composer = composer.HTML()
	case "auto":
		composer = composer.DetectFormat()
	default:
		jsonError(w, "unknown format: "+req.Format, http.StatusBadRequest)
		return
	}

	deck, warnings, err := composer.Slides()
	if err != nil {
		jsonError(w, "compose failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	id := uuid.New().String()
	s.store.Put(id, deck)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(deckEnvelope{
		DeckID:   id,
		Title:    deck.Title,
		Viewport: deck.Viewport.String(),
		Slides:   deck.Slides,
		Nav:      deck.Nav,
		Warnings: warnings,
	})
}

func (s *Server) handleGetDeck(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")
	deck := s.store.Get(deckID)
	if deck == nil {
		jsonError(w, "deck not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(deckEnvelope{
		DeckID:   deckID,
		Title:    deck.Title,
		Viewport: deck.Viewport.String(),
		Slides:   deck.Slides,
		Nav:      deck.Nav,
	})
}

func (s *Server) handleGetNav(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")
	deck := s.store.Get(deckID)
	if deck == nil {
		jsonError(w, "deck not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"deck_id": deckID,
		"nav":     deck.Nav,
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
