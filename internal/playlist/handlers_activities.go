package playlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleGetActivities returns the playlist's add/remove history in
// chronological order. Owner or collaborator only.
func (s *Server) handleGetActivities(w http.ResponseWriter, r *http.Request) {
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
		writeStoreError(w, "get activities verify access", err)
		return
	}

	feed, err := s.store.GetPlaylistActivity(ctx, playlistID)
	if err != nil {
		writeStoreError(w, "get activities", err)
		return
	}

	writeJSON(w, http.StatusOK, feed)
}
