package playlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	store    Store
	rdb      *redis.Client
	listMode string
}

func NewServer(store Store, rdb *redis.Client, listMode string) *Server {
	if listMode != ListModeUnion {
		listMode = ListModeFallback
	}
	return &Server{
		store:    store,
		rdb:      rdb,
		listMode: listMode,
	}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Post("/playlists", s.handleCreatePlaylist)
		r.Get("/playlists", s.handleListPlaylists)
		r.Delete("/playlists/{id}", s.handleDeletePlaylist)

		r.Post("/playlists/{id}/songs", s.handleAddSong)
		r.Get("/playlists/{id}/songs", s.handleListSongs)
		r.Delete("/playlists/{id}/songs/{songId}", s.handleDeleteSong)

		r.Get("/playlists/{id}/activities", s.handleGetActivities)

		r.Get("/playlists/{id}/collaborations", s.handleListCollaborations)
		r.Post("/playlists/{id}/collaborations", s.handleAddCollaboration)
		r.Delete("/playlists/{id}/collaborations/{userId}", s.handleDeleteCollaboration)
	})

	// Reference data pushed by the user/catalog services.
	r.Group(func(r chi.Router) {
		r.Post("/internal/users", s.handleUpsertUser)
		r.Post("/internal/songs", s.handleUpsertSong)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "playlist-service",
	})
}
