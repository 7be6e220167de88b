package playlist

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// AddCollaboration grants a user shared write access. The grant relation
// knows nothing about ownership; callers gate on the owner check first.
func (s *PostgresStore) AddCollaboration(ctx context.Context, playlistID, userID string) (string, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var id string
	err := s.pool.QueryRow(ctx, `
        INSERT INTO collaborations (playlist_id, user_id)
        VALUES ($1, $2)
        RETURNING id
    `, playlistID, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", errWriteFailed("collaboration was not added")
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return "", errNotFound("playlist or user not found")
		}
		return "", storageErr(err)
	}
	return id, nil
}

// DeleteCollaboration removes every grant for the exact (playlist, user)
// pair. A pair with no grant is a not-found failure, not a silent no-op.
func (s *PostgresStore) DeleteCollaboration(ctx context.Context, playlistID, userID string) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	tag, err := s.pool.Exec(ctx, `
        DELETE FROM collaborations
        WHERE playlist_id = $1 AND user_id = $2
    `, playlistID, userID)
	if err != nil {
		return storageErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("collaboration not found")
	}
	return nil
}

func (s *PostgresStore) VerifyCollaborator(ctx context.Context, playlistID, userID string) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var id string
	err := s.pool.QueryRow(ctx, `
        SELECT id FROM collaborations
        WHERE playlist_id = $1 AND user_id = $2
        LIMIT 1
    `, playlistID, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return errNotFound("collaboration not found")
	}
	if err != nil {
		return storageErr(err)
	}
	return nil
}

func (s *PostgresStore) ListCollaborators(ctx context.Context, playlistID string) ([]Collaborator, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
        SELECT c.user_id, u.username, c.created_at
        FROM collaborations c
        JOIN users u ON u.id = c.user_id
        WHERE c.playlist_id = $1
        ORDER BY c.created_at ASC
    `, playlistID)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	collaborators := []Collaborator{}
	for rows.Next() {
		var c Collaborator
		if err := rows.Scan(&c.UserID, &c.Username, &c.CreatedAt); err != nil {
			return nil, storageErr(err)
		}
		collaborators = append(collaborators, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return collaborators, nil
}
