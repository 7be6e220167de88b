package playlist

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func AutoMigrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, _ = pool.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS pgcrypto`)

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS users (
          id       TEXT PRIMARY KEY,
          username TEXT NOT NULL UNIQUE,
          fullname TEXT NOT NULL DEFAULT ''
      )
    `); err != nil {
		log.Printf("playlist-service: migrate users: %v", err)
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS songs (
          id        TEXT PRIMARY KEY,
          title     TEXT NOT NULL,
          performer TEXT NOT NULL DEFAULT ''
      )
    `); err != nil {
		log.Printf("playlist-service: migrate songs: %v", err)
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlists (
          id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
          name       TEXT NOT NULL,
          owner      TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
          created_at TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `); err != nil {
		log.Printf("playlist-service: migrate playlists: %v", err)
		return err
	}

	// No unique (playlist_id, user_id) constraint: one-grant-per-pair is a
	// convention, deletion targets the exact pair.
	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS collaborations (
          id          TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
          playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
          user_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
          created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `); err != nil {
		log.Printf("playlist-service: migrate collaborations: %v", err)
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE INDEX IF NOT EXISTS idx_collaborations_playlist_user
      ON collaborations(playlist_id, user_id)
    `); err != nil {
		return err
	}

	// Duplicate memberships are allowed, so no unique pair index here.
	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlist_songs (
          id          TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
          playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
          song_id     TEXT NOT NULL REFERENCES songs(id) ON DELETE CASCADE,
          created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `); err != nil {
		log.Printf("playlist-service: migrate playlist_songs: %v", err)
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE INDEX IF NOT EXISTS idx_playlist_songs_playlist
      ON playlist_songs(playlist_id)
    `); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlist_song_activities (
          id          TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
          playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
          song_id     TEXT NOT NULL,
          user_id     TEXT NOT NULL,
          action      TEXT NOT NULL,
          time        TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `); err != nil {
		log.Printf("playlist-service: migrate playlist_song_activities: %v", err)
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE INDEX IF NOT EXISTS idx_activities_playlist_time
      ON playlist_song_activities(playlist_id, time)
    `); err != nil {
		return err
	}

	return nil
}
