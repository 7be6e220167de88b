package playlist

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
)

func TestHandleAddSong_Success(t *testing.T) {
	store := &MockStore{}
	srv := NewServer(store, nil, ListModeFallback)
	router := srv.Router()

	store.On("VerifyPlaylistAccess", mock.Anything, "pl-001", "user-2").Return(nil)
	store.On("GetSongByID", mock.Anything, "song-9").Return(&Song{
		ID: "song-9", Title: "Midnight", Performer: "The Owls",
	}, nil)
	store.On("AddPlaylistSong", mock.Anything, "pl-001", "song-9", "user-2").
		Return("ps-100", nil)

	body, _ := json.Marshal(map[string]string{"songId": "song-9"})
	req := httptest.NewRequest("POST", "/playlists/pl-001/songs", bytes.NewReader(body))
	req.Header.Set("X-User-Id", "user-2")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["id"] != "ps-100" {
		t.Errorf("Expected membership id ps-100, got %q", resp["id"])
	}
	store.AssertExpectations(t)
}

func TestHandleAddSong_NoAccess(t *testing.T) {
	store := &MockStore{}
	srv := NewServer(store, nil, ListModeFallback)
	router := srv.Router()

	store.On("VerifyPlaylistAccess", mock.Anything, "pl-001", "stranger").
		Return(errForbidden("no access to this playlist"))

	body, _ := json.Marshal(map[string]string{"songId": "song-9"})
	req := httptest.NewRequest("POST", "/playlists/pl-001/songs", bytes.NewReader(body))
	req.Header.Set("X-User-Id", "stranger")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", w.Code)
	}
	store.AssertNotCalled(t, "AddPlaylistSong", mock.Anything, "pl-001", "song-9", "stranger")
}

func TestHandleAddSong_MissingSongID(t *testing.T) {
	store := &MockStore{}
	srv := NewServer(store, nil, ListModeFallback)
	router := srv.Router()

	store.On("VerifyPlaylistAccess", mock.Anything, "pl-001", "user-2").Return(nil)

	body, _ := json.Marshal(map[string]string{})
	req := httptest.NewRequest("POST", "/playlists/pl-001/songs", bytes.NewReader(body))
	req.Header.Set("X-User-Id", "user-2")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestHandleAddSong_UnknownSong(t *testing.T) {
	store := &MockStore{}
	srv := NewServer(store, nil, ListModeFallback)
	router := srv.Router()

	store.On("VerifyPlaylistAccess", mock.Anything, "pl-001", "user-2").Return(nil)
	store.On("GetSongByID", mock.Anything, "song-missing").
		Return(nil, errNotFound("song not found"))

	body, _ := json.Marshal(map[string]string{"songId": "song-missing"})
	req := httptest.NewRequest("POST", "/playlists/pl-001/songs", bytes.NewReader(body))
	req.Header.Set("X-User-Id", "user-2")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
	store.AssertNotCalled(t, "AddPlaylistSong", mock.Anything, "pl-001", "song-missing", "user-2")
}

func TestHandleListSongs_Success(t *testing.T) {
	store := &MockStore{}
	srv := NewServer(store, nil, ListModeFallback)
	router := srv.Router()

	store.On("VerifyPlaylistAccess", mock.Anything, "pl-001", "user-2").Return(nil)
	store.On("GetPlaylistSong", mock.Anything, "pl-001").Return(&PlaylistContents{
		ID:       "pl-001",
		Name:     "Road Trip",
		Username: "alice",
		Songs: []Song{
			{ID: "song-9", Title: "Midnight", Performer: "The Owls"},
			{ID: "song-9", Title: "Midnight", Performer: "The Owls"}, // duplicate adds survive
		},
	}, nil)

	req := httptest.NewRequest("GET", "/playlists/pl-001/songs", nil)
	req.Header.Set("X-User-Id", "user-2")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp struct {
		Playlist PlaylistContents `json:"playlist"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Playlist.Songs) != 2 {
		t.Errorf("Expected 2 song entries, got %d", len(resp.Playlist.Songs))
	}
	if resp.Playlist.Username != "alice" {
		t.Errorf("Expected owner username alice, got %q", resp.Playlist.Username)
	}
}

func TestHandleDeleteSong_Success(t *testing.T) {
	store := &MockStore{}
	srv := NewServer(store, nil, ListModeFallback)
	router := srv.Router()

	store.On("VerifyPlaylistAccess", mock.Anything, "pl-001", "user-2").Return(nil)
	store.On("DeletePlaylistSong", mock.Anything, "pl-001", "song-9", "user-2").Return(nil)

	req := httptest.NewRequest("DELETE", "/playlists/pl-001/songs/song-9", nil)
	req.Header.Set("X-User-Id", "user-2")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", w.Code)
	}
	store.AssertExpectations(t)
}

func TestHandleDeleteSong_NotInPlaylist(t *testing.T) {
	store := &MockStore{}
	srv := NewServer(store, nil, ListModeFallback)
	router := srv.Router()

	store.On("VerifyPlaylistAccess", mock.Anything, "pl-001", "user-2").Return(nil)
	store.On("DeletePlaylistSong", mock.Anything, "pl-001", "song-9", "user-2").
		Return(errNotFound("song not found in playlist"))

	req := httptest.NewRequest("DELETE", "/playlists/pl-001/songs/song-9", nil)
	req.Header.Set("X-User-Id", "user-2")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}
