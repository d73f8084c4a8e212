// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package playlist

// Entry is one item of the remote playlist. The schema is owned by the
// server and is not validated.
type Entry struct {
	Title       string  `json:"title"`
	Artist      string  `json:"artist"`
	AlbumArtUri string  `json:"album_art_uri"`
	Duration    float64 `json:"duration"` // seconds
	StreamUrl   string  `json:"streamUrl"`
}

// Metadata is what the player shows for the stream it plays.
type Metadata struct {
	Title       string
	Artist      string
	AlbumArtUri string
}

func (e Entry) Metadata() Metadata {
	return Metadata{
		Title:       e.Title,
		Artist:      e.Artist,
		AlbumArtUri: e.AlbumArtUri,
	}
}

type Playlist []Entry
