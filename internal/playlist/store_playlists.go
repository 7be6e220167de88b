package playlist

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func (s *PostgresStore) AddPlaylist(ctx context.Context, name, ownerID string) (Playlist, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var pl Playlist
	err := s.pool.QueryRow(ctx, `
        INSERT INTO playlists (name, owner)
        VALUES ($1, $2)
        RETURNING id, name, owner, created_at
    `, name, ownerID).Scan(&pl.ID, &pl.Name, &pl.Owner, &pl.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Playlist{}, errWriteFailed("playlist was not added")
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return Playlist{}, errNotFound("user not found")
		}
		return Playlist{}, storageErr(err)
	}
	return pl, nil
}

func (s *PostgresStore) GetPlaylists(ctx context.Context, userID, mode string) ([]PlaylistSummary, error) {
	if mode == ListModeUnion {
		return s.listPlaylistsUnion(ctx, userID)
	}

	// Historical behavior: collaborated playlists are only consulted when
	// the caller owns none at all.
	owned, err := s.listOwnedPlaylists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(owned) > 0 {
		return owned, nil
	}
	return s.listCollaboratedPlaylists(ctx, userID)
}

func (s *PostgresStore) listOwnedPlaylists(ctx context.Context, userID string) ([]PlaylistSummary, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
        SELECT p.id, p.name, u.username
        FROM playlists p
        JOIN users u ON u.id = p.owner
        WHERE p.owner = $1
        ORDER BY p.created_at ASC
    `, userID)
	if err != nil {
		return nil, storageErr(err)
	}
	return scanPlaylistSummaries(rows)
}

func (s *PostgresStore) listCollaboratedPlaylists(ctx context.Context, userID string) ([]PlaylistSummary, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
        SELECT p.id, p.name, u.username
        FROM playlists p
        JOIN collaborations c ON c.playlist_id = p.id
        JOIN users u ON u.id = p.owner
        WHERE c.user_id = $1
        ORDER BY p.created_at ASC
    `, userID)
	if err != nil {
		return nil, storageErr(err)
	}
	return scanPlaylistSummaries(rows)
}

func (s *PostgresStore) listPlaylistsUnion(ctx context.Context, userID string) ([]PlaylistSummary, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
        SELECT p.id, p.name, u.username
        FROM playlists p
        JOIN users u ON u.id = p.owner
        WHERE p.owner = $1
           OR EXISTS (
               SELECT 1 FROM collaborations c
               WHERE c.playlist_id = p.id AND c.user_id = $1
           )
        ORDER BY p.created_at ASC
    `, userID)
	if err != nil {
		return nil, storageErr(err)
	}
	return scanPlaylistSummaries(rows)
}

func scanPlaylistSummaries(rows pgx.Rows) ([]PlaylistSummary, error) {
	defer rows.Close()

	playlists := []PlaylistSummary{}
	for rows.Next() {
		var pl PlaylistSummary
		if err := rows.Scan(&pl.ID, &pl.Name, &pl.Username); err != nil {
			return nil, storageErr(err)
		}
		playlists = append(playlists, pl)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return playlists, nil
}

// DeletePlaylistByID removes the playlist; memberships, collaborations and
// activity records go with it via ON DELETE CASCADE.
func (s *PostgresStore) DeletePlaylistByID(ctx context.Context, id string) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	tag, err := s.pool.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return storageErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("playlist not found")
	}
	return nil
}

func (s *PostgresStore) VerifyPlaylistOwner(ctx context.Context, playlistID, userID string) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var owner string
	err := s.pool.QueryRow(ctx, `
        SELECT owner FROM playlists WHERE id = $1
    `, playlistID).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return errNotFound("playlist not found")
	}
	if err != nil {
		return storageErr(err)
	}
	if owner != userID {
		return errForbidden("not the playlist owner")
	}
	return nil
}

// VerifyPlaylistAccess passes the owner or any collaborator. A playlist
// that does not exist reads as forbidden, so probing cannot reveal which
// ids exist.
func (s *PostgresStore) VerifyPlaylistAccess(ctx context.Context, playlistID, userID string) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var allowed bool
	err := s.pool.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1
            FROM playlists p
            WHERE p.id = $1
              AND (p.owner = $2
                   OR EXISTS (
                       SELECT 1 FROM collaborations c
                       WHERE c.playlist_id = p.id AND c.user_id = $2
                   ))
        )
    `, playlistID, userID).Scan(&allowed)
	if err != nil {
		return storageErr(err)
	}
	if !allowed {
		return errForbidden("no access to this playlist")
	}
	return nil
}
