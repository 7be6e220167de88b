package playlist

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Reference-data endpoints for the user and catalog services. They upsert
// so replays are harmless.

func (s *Server) handleUpsertUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var u User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	u.ID = strings.TrimSpace(u.ID)
	u.Username = strings.TrimSpace(u.Username)
	if u.ID == "" || u.Username == "" {
		writeError(w, http.StatusBadRequest, "id and username are required")
		return
	}

	if err := s.store.UpsertUser(ctx, u); err != nil {
		writeStoreError(w, "upsert user", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": u.ID})
}

func (s *Server) handleUpsertSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var sg Song
	if err := json.NewDecoder(r.Body).Decode(&sg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	sg.ID = strings.TrimSpace(sg.ID)
	sg.Title = strings.TrimSpace(sg.Title)
	if sg.ID == "" || sg.Title == "" {
		writeError(w, http.StatusBadRequest, "id and title are required")
		return
	}

	if err := s.store.UpsertSong(ctx, sg); err != nil {
		writeStoreError(w, "upsert song", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": sg.ID})
}
