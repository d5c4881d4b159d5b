package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/dreamware/swatch/internal/render"
)

// Message texts rendered by the favorite color routes.
const (
	msgFavoriteSet    = "Favorite color set to %s"
	msgFavoriteNotSet = "Favorite color not set yet."
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, render.Index, nil)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// handleColorBlock renders the block for the {color} segment as given.
func (s *Server) handleColorBlock(w http.ResponseWriter, r *http.Request) {
	color := colorVar(r)
	s.render(w, r, render.ColorBlock, map[string]string{"color": color})
}

// handleSetFavorite stores {color} without validation and confirms it.
func (s *Server) handleSetFavorite(w http.ResponseWriter, r *http.Request) {
	color := colorVar(r)
	s.favorite.Set(color)

	s.logger.Debug("favorite color set", "color", color, "request_id", RequestID(r.Context()))

	s.render(w, r, render.Message, map[string]string{
		"message": fmt.Sprintf(msgFavoriteSet, color),
	})
}

// handleGetFavorite renders the favorite color block, or a message when unset.
func (s *Server) handleGetFavorite(w http.ResponseWriter, r *http.Request) {
	color, ok := s.favorite.Get()
	if !ok {
		s.render(w, r, render.Message, map[string]string{"message": msgFavoriteNotSet})
		return
	}
	s.render(w, r, render.ColorBlock, map[string]string{"color": color})
}

// handleFavoriteState returns the favorite color state as JSON.
func (s *Server) handleFavoriteState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.favorite.Snapshot()); err != nil {
		s.logger.Debug("write favorite state failed",
			"error", err,
			"request_id", RequestID(r.Context()),
		)
	}
}

// colorVar returns the decoded {color} segment. The router matches on the
// escaped path so an encoded slash stays inside the segment.
func colorVar(r *http.Request) string {
	raw := mux.Vars(r)["color"]
	color, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return color
}

// render executes the template into a buffer and writes it with 200, or
// answers 500 if rendering fails.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, params map[string]string) {
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, name, params); err != nil {
		s.logger.Error("render failed",
			"template", name,
			"error", err,
			"request_id", RequestID(r.Context()),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
