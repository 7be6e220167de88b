package playlist

import (
	"time"
)

// Playlist is the owning record for song memberships, collaborations and
// the activity log. The owner is fixed at creation time.
type Playlist struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"createdAt"`
}

// PlaylistSummary is the listing shape: the owner is rendered as a
// username, not an id.
type PlaylistSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Collaborator is a user holding shared write access to a playlist.
type Collaborator struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

type Song struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}

// PlaylistContents is a playlist header with its current songs. Duplicate
// memberships yield duplicate song entries.
type PlaylistContents struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Songs    []Song `json:"songs"`
}

// ActivityEntry is one immutable add/remove record, denormalized with the
// actor's username and the song title at read time.
type ActivityEntry struct {
	Username string    `json:"username"`
	Title    string    `json:"title"`
	Action   string    `json:"action"`
	Time     time.Time `json:"time"`
}

type ActivityFeed struct {
	PlaylistID string          `json:"playlistId"`
	Activities []ActivityEntry `json:"activities"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

const (
	actionAdd    = "add"
	actionRemove = "remove"
)

// Listing modes for GetPlaylists. Fallback is the historical behavior:
// owned playlists, or collaborated ones only when the caller owns none.
const (
	ListModeFallback = "fallback"
	ListModeUnion    = "union"
)
