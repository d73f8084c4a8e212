// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package mpvplayer

import "github.com/spezifisch/streamplay/remote"

var _ remote.TrackInterface = (*Track)(nil)

func (t *Track) GetArtist() string {
	if t == nil {
		return ""
	}
	return t.Metadata.Artist
}

func (t *Track) GetTitle() string {
	if t == nil {
		return ""
	}
	return t.Metadata.Title
}

func (t *Track) GetArtUrl() string {
	if t == nil {
		return ""
	}
	return t.Metadata.AlbumArtUri
}

func (t *Track) GetUrl() string {
	if t == nil {
		return ""
	}
	return t.Url
}

func (t *Track) IsValid() bool {
	return t != nil && t.Url != ""
}
