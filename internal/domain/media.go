package domain

import "time"

// MediaItem is a synced public asset. ImageURL is the de-duplication key.
type MediaItem struct {
	ID          int32     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// MediaSyncResult summarizes one sync pass over the public asset directory.
type MediaSyncResult struct {
	Scanned  int `json:"scanned"`
	Inserted int `json:"inserted"`
}
