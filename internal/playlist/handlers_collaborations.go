package playlist

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// handleAddCollaboration grants a user write access to a playlist. Owner
// only; the target user must exist.
func (s *Server) handleAddCollaboration(w http.ResponseWriter, r *http.Request) {
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

	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	body.UserID = strings.TrimSpace(body.UserID)
	if body.UserID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	if err := s.store.VerifyPlaylistOwner(ctx, playlistID, userID); err != nil {
		writeStoreError(w, "add collaboration verify owner", err)
		return
	}

	if _, err := s.store.GetUserByID(ctx, body.UserID); err != nil {
		writeStoreError(w, "add collaboration lookup user", err)
		return
	}

	id, err := s.store.AddCollaboration(ctx, playlistID, body.UserID)
	if err != nil {
		writeStoreError(w, "add collaboration", err)
		return
	}

	s.publishEvent(ctx, "collaboration.added", map[string]any{
		"playlistId": playlistID,
		"userId":     body.UserID,
	})

	writeJSON(w, http.StatusCreated, map[string]string{"collaborationId": id})
}

// handleDeleteCollaboration revokes a grant. Owner only.
func (s *Server) handleDeleteCollaboration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}
	playlistID := chi.URLParam(r, "id")
	targetUserID := chi.URLParam(r, "userId")
	if playlistID == "" || targetUserID == "" {
		writeError(w, http.StatusBadRequest, "missing playlist id or user id")
		return
	}

	if err := s.store.VerifyPlaylistOwner(ctx, playlistID, userID); err != nil {
		writeStoreError(w, "delete collaboration verify owner", err)
		return
	}

	if err := s.store.DeleteCollaboration(ctx, playlistID, targetUserID); err != nil {
		writeStoreError(w, "delete collaboration", err)
		return
	}

	s.publishEvent(ctx, "collaboration.removed", map[string]any{
		"playlistId": playlistID,
		"userId":     targetUserID,
	})

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListCollaborations(w http.ResponseWriter, r *http.Request) {
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
		writeStoreError(w, "list collaborations verify access", err)
		return
	}

	collaborators, err := s.store.ListCollaborators(ctx, playlistID)
	if err != nil {
		writeStoreError(w, "list collaborations", err)
		return
	}

	writeJSON(w, http.StatusOK, collaborators)
}
