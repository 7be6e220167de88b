package playlist

import (
	"context"
)

// GetPlaylistActivity reconstructs the chronological feed for a playlist.
// Records are immutable; the actor's username and the song title are
// joined in at read time rather than stored redundantly.
func (s *PostgresStore) GetPlaylistActivity(ctx context.Context, playlistID string) (*ActivityFeed, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
        SELECT u.username, sg.title, a.action, a.time
        FROM playlist_song_activities a
        JOIN users u ON u.id = a.user_id
        JOIN songs sg ON sg.id = a.song_id
        WHERE a.playlist_id = $1
        ORDER BY a.time ASC
    `, playlistID)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	feed := &ActivityFeed{PlaylistID: playlistID, Activities: []ActivityEntry{}}
	for rows.Next() {
		var entry ActivityEntry
		if err := rows.Scan(&entry.Username, &entry.Title, &entry.Action, &entry.Time); err != nil {
			return nil, storageErr(err)
		}
		feed.Activities = append(feed.Activities, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return feed, nil
}
