package playlist

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// Reference data for identity resolution and song titles. User and song
// records are owned by upstream services; this service only mirrors the
// fields it joins on.

func (s *PostgresStore) GetUserByID(ctx context.Context, id string) (*User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var u User
	err := s.pool.QueryRow(ctx, `
        SELECT id, username, fullname FROM users WHERE id = $1
    `, id).Scan(&u.ID, &u.Username, &u.Fullname)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errNotFound("user not found")
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return &u, nil
}

func (s *PostgresStore) UpsertUser(ctx context.Context, u User) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	_, err := s.pool.Exec(ctx, `
        INSERT INTO users (id, username, fullname)
        VALUES ($1, $2, $3)
        ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username,
                                       fullname = EXCLUDED.fullname
    `, u.ID, u.Username, u.Fullname)
	return storageErr(err)
}

func (s *PostgresStore) GetSongByID(ctx context.Context, id string) (*Song, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var sg Song
	err := s.pool.QueryRow(ctx, `
        SELECT id, title, performer FROM songs WHERE id = $1
    `, id).Scan(&sg.ID, &sg.Title, &sg.Performer)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errNotFound("song not found")
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return &sg, nil
}

func (s *PostgresStore) UpsertSong(ctx context.Context, sg Song) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	_, err := s.pool.Exec(ctx, `
        INSERT INTO songs (id, title, performer)
        VALUES ($1, $2, $3)
        ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title,
                                       performer = EXCLUDED.performer
    `, sg.ID, sg.Title, sg.Performer)
	return storageErr(err)
}
