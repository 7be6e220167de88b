package playlist

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// AddPlaylistSong inserts a membership row and its activity record in one
// transaction, so a crash cannot leave the mutation unlogged. Duplicate
// adds are allowed and yield separate membership rows.
func (s *PostgresStore) AddPlaylistSong(ctx context.Context, playlistID, songID, actorID string) (string, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", storageErr(err)
	}
	defer tx.Rollback(ctx)

	var id string
	err = tx.QueryRow(ctx, `
        INSERT INTO playlist_songs (playlist_id, song_id)
        VALUES ($1, $2)
        RETURNING id
    `, playlistID, songID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", errWriteFailed("song was not added to the playlist")
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return "", errNotFound("playlist or song not found")
		}
		return "", storageErr(err)
	}

	if err := appendActivity(ctx, tx, playlistID, songID, actorID, actionAdd); err != nil {
		return "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return "", storageErr(err)
	}
	return id, nil
}

// DeletePlaylistSong removes every membership row for the pair and records
// the removal, both in one transaction.
func (s *PostgresStore) DeletePlaylistSong(ctx context.Context, playlistID, songID, actorID string) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return storageErr(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
        DELETE FROM playlist_songs
        WHERE playlist_id = $1 AND song_id = $2
    `, playlistID, songID)
	if err != nil {
		return storageErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("song not found in playlist")
	}

	if err := appendActivity(ctx, tx, playlistID, songID, actorID, actionRemove); err != nil {
		return err
	}

	return storageErr(tx.Commit(ctx))
}

func appendActivity(ctx context.Context, tx pgx.Tx, playlistID, songID, actorID, action string) error {
	tag, err := tx.Exec(ctx, `
        INSERT INTO playlist_song_activities (playlist_id, song_id, user_id, action)
        VALUES ($1, $2, $3, $4)
    `, playlistID, songID, actorID, action)
	if err != nil {
		return storageErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errWriteFailed("activity was not recorded")
	}
	return nil
}

func (s *PostgresStore) GetPlaylistSong(ctx context.Context, playlistID string) (*PlaylistContents, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	contents := &PlaylistContents{Songs: []Song{}}
	err := s.pool.QueryRow(ctx, `
        SELECT p.id, p.name, u.username
        FROM playlists p
        JOIN users u ON u.id = p.owner
        WHERE p.id = $1
    `, playlistID).Scan(&contents.ID, &contents.Name, &contents.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errNotFound("playlist not found")
	}
	if err != nil {
		return nil, storageErr(err)
	}

	rows, err := s.pool.Query(ctx, `
        SELECT s.id, s.title, s.performer
        FROM playlist_songs ps
        JOIN songs s ON s.id = ps.song_id
        WHERE ps.playlist_id = $1
        ORDER BY ps.created_at ASC
    `, playlistID)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	for rows.Next() {
		var sg Song
		if err := rows.Scan(&sg.ID, &sg.Title, &sg.Performer); err != nil {
			return nil, storageErr(err)
		}
		contents.Songs = append(contents.Songs, sg)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return contents, nil
}
