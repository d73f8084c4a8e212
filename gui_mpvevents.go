// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import "github.com/spezifisch/streamplay/events"

// SendEvent forwards player state changes to the gui event loop.
func (ui *Ui) SendEvent(payload interface{}) {
	if ev, ok := payload.(events.PlaybackStateChanged); ok {
		ui.playerEvents <- ev
	}
}
