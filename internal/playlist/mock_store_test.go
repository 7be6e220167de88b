package playlist

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) AddPlaylist(ctx context.Context, name, ownerID string) (Playlist, error) {
	args := m.Called(ctx, name, ownerID)
	return args.Get(0).(Playlist), args.Error(1)
}

func (m *MockStore) GetPlaylists(ctx context.Context, userID, mode string) ([]PlaylistSummary, error) {
	args := m.Called(ctx, userID, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PlaylistSummary), args.Error(1)
}

func (m *MockStore) DeletePlaylistByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) VerifyPlaylistOwner(ctx context.Context, playlistID, userID string) error {
	args := m.Called(ctx, playlistID, userID)
	return args.Error(0)
}

func (m *MockStore) VerifyPlaylistAccess(ctx context.Context, playlistID, userID string) error {
	args := m.Called(ctx, playlistID, userID)
	return args.Error(0)
}

func (m *MockStore) AddPlaylistSong(ctx context.Context, playlistID, songID, actorID string) (string, error) {
	args := m.Called(ctx, playlistID, songID, actorID)
	return args.String(0), args.Error(1)
}

func (m *MockStore) DeletePlaylistSong(ctx context.Context, playlistID, songID, actorID string) error {
	args := m.Called(ctx, playlistID, songID, actorID)
	return args.Error(0)
}

func (m *MockStore) GetPlaylistSong(ctx context.Context, playlistID string) (*PlaylistContents, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PlaylistContents), args.Error(1)
}

func (m *MockStore) AddCollaboration(ctx context.Context, playlistID, userID string) (string, error) {
	args := m.Called(ctx, playlistID, userID)
	return args.String(0), args.Error(1)
}

func (m *MockStore) DeleteCollaboration(ctx context.Context, playlistID, userID string) error {
	args := m.Called(ctx, playlistID, userID)
	return args.Error(0)
}

func (m *MockStore) VerifyCollaborator(ctx context.Context, playlistID, userID string) error {
	args := m.Called(ctx, playlistID, userID)
	return args.Error(0)
}

func (m *MockStore) ListCollaborators(ctx context.Context, playlistID string) ([]Collaborator, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Collaborator), args.Error(1)
}

func (m *MockStore) GetPlaylistActivity(ctx context.Context, playlistID string) (*ActivityFeed, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ActivityFeed), args.Error(1)
}

func (m *MockStore) GetUserByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockStore) UpsertUser(ctx context.Context, u User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockStore) GetSongByID(ctx context.Context, id string) (*Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Song), args.Error(1)
}

func (m *MockStore) UpsertSong(ctx context.Context, sg Song) error {
	args := m.Called(ctx, sg)
	return args.Error(0)
}
