package playlist

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	// Playlists
	AddPlaylist(ctx context.Context, name, ownerID string) (Playlist, error)
	GetPlaylists(ctx context.Context, userID, mode string) ([]PlaylistSummary, error)
	DeletePlaylistByID(ctx context.Context, id string) error
	// VerifyPlaylistOwner is the strict gate for owner-only actions.
	VerifyPlaylistOwner(ctx context.Context, playlistID, userID string) error
	// VerifyPlaylistAccess passes the owner or any collaborator.
	VerifyPlaylistAccess(ctx context.Context, playlistID, userID string) error

	// Song membership. Mutations record activity in the same transaction.
	AddPlaylistSong(ctx context.Context, playlistID, songID, actorID string) (string, error)
	DeletePlaylistSong(ctx context.Context, playlistID, songID, actorID string) error
	GetPlaylistSong(ctx context.Context, playlistID string) (*PlaylistContents, error)

	// Collaborations
	AddCollaboration(ctx context.Context, playlistID, userID string) (string, error)
	DeleteCollaboration(ctx context.Context, playlistID, userID string) error
	VerifyCollaborator(ctx context.Context, playlistID, userID string) error
	ListCollaborators(ctx context.Context, playlistID string) ([]Collaborator, error)

	// Activity feed
	GetPlaylistActivity(ctx context.Context, playlistID string) (*ActivityFeed, error)

	// Reference data
	GetUserByID(ctx context.Context, id string) (*User, error)
	UpsertUser(ctx context.Context, u User) error
	GetSongByID(ctx context.Context, id string) (*Song, error)
	UpsertSong(ctx context.Context, sg Song) error
}

const defaultQueryTimeout = 5 * time.Second

type PostgresStore struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
}

func NewPostgresStore(pool *pgxpool.Pool, queryTimeout time.Duration) *PostgresStore {
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}
	return &PostgresStore{pool: pool, queryTimeout: queryTimeout}
}

// opCtx bounds one storage round trip. Callers must defer cancel.
func (s *PostgresStore) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.queryTimeout)
}
