// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package mpvplayer

import "github.com/spezifisch/streamplay/playlist"

// Track is the stream currently loaded into mpv.
type Track struct {
	Url      string
	Metadata playlist.Metadata
}
