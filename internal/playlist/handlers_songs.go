package playlist

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// handleAddSong adds a song to a playlist. Owner or collaborator only;
// the membership insert and its activity record commit together.
func (s *Server) handleAddSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}
	playlistID := chi.URLParam(r, "id")
	if playlistID == "" {
		writeError(w, http.StatusBadRequest, "missing playlist id")
		return
	}

	if err := s.store.VerifyPlaylistAccess(ctx, playlistID, userID); err != nil {
		writeStoreError(w, "add song verify access", err)
		return
	}

	var body struct {
		SongID string `json:"songId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	body.SongID = strings.TrimSpace(body.SongID)
	if body.SongID == "" {
		writeError(w, http.StatusBadRequest, "songId is required")
		return
	}

	// Referential validity before the insert; the FK check is the backstop.
	if _, err := s.store.GetSongByID(ctx, body.SongID); err != nil {
		writeStoreError(w, "add song lookup song", err)
		return
	}

	id, err := s.store.AddPlaylistSong(ctx, playlistID, body.SongID, userID)
	if err != nil {
		writeStoreError(w, "add song", err)
		return
	}

	s.publishEvent(ctx, "song.added", map[string]any{
		"playlistId": playlistID,
		"songId":     body.SongID,
		"userId":     userID,
	})

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}
	playlistID := chi.URLParam(r, "id")
	if playlistID == "" {
		writeError(w, http.StatusBadRequest, "missing playlist id")
		return
	}

	if err := s.store.VerifyPlaylistAccess(ctx, playlistID, userID); err != nil {
		writeStoreError(w, "list songs verify access", err)
		return
	}

	contents, err := s.store.GetPlaylistSong(ctx, playlistID)
	if err != nil {
		writeStoreError(w, "list songs", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"playlist": contents})
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}
	playlistID := chi.URLParam(r, "id")
	songID := chi.URLParam(r, "songId")
	if playlistID == "" || songID == "" {
		writeError(w, http.StatusBadRequest, "missing playlist id or song id")
		return
	}

	if err := s.store.VerifyPlaylistAccess(ctx, playlistID, userID); err != nil {
		writeStoreError(w, "delete song verify access", err)
		return
	}

	if err := s.store.DeletePlaylistSong(ctx, playlistID, songID, userID); err != nil {
		writeStoreError(w, "delete song", err)
		return
	}

	s.publishEvent(ctx, "song.removed", map[string]any{
		"playlistId": playlistID,
		"songId":     songID,
		"userId":     userID,
	})

	w.WriteHeader(http.StatusNoContent)
}
