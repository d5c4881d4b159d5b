package web

import "net/http"

func (s *Server) registerRoutes() {
	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/api/favorite", s.handleFavoriteState).Methods(http.MethodGet)

	// Order matters: the literal favorite routes must be matched before the
	// /color/{color} catch-all.
	s.router.HandleFunc("/color/favorite", s.handleGetFavorite).Methods(http.MethodGet)
	s.router.HandleFunc("/color/favorite/{color}", s.handleSetFavorite).Methods(http.MethodPost)
	s.router.HandleFunc("/color/{color}", s.handleColorBlock).Methods(http.MethodGet)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	})
}
