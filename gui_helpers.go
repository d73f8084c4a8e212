// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"fmt"

	"github.com/rivo/tview"
	"github.com/spezifisch/streamplay/events"
	"github.com/spezifisch/streamplay/playlist"
)

func makeModal(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewGrid().
		SetColumns(0, width, 0).
		SetRows(0, height, 0).
		AddItem(p, 1, 1, 1, 1, 0, 0, true)
}

func formatPlayerStatus(position int, duration int) string {
	if position < 0 {
		position = 0
	}

	if duration < 0 {
		duration = 0
	}

	positionMin, positionSec := iSecondsToMinAndSec(position)
	durationMin, durationSec := iSecondsToMinAndSec(duration)

	return fmt.Sprintf("[::b][%02d:%02d/%02d:%02d]", positionMin, positionSec, durationMin, durationSec)
}

func formatPlaybackState(state events.PlaybackState) string {
	var st string
	switch state {
	case events.StatePlaying:
		st = "[green::b]Playing[::-]"
	case events.StatePaused:
		st = "[yellow::b]Paused[::-]"
	case events.StateStopped, events.StateNone:
		st = "[red::b]Stopped[::-]"
	case events.StateError:
		st = "[red::b]Error[::-]"
	default:
		st = "[blue::b]" + state.String() + "[::-]"
	}
	return fmt.Sprintf("[::b]%s[::-] %s", Name, st)
}

func formatEntryForList(entry playlist.Entry) string {
	minutes, seconds := iSecondsToMinAndSec(int(entry.Duration))
	text := fmt.Sprintf("%02d:%02d %s", minutes, seconds, entry.Title)
	if entry.Artist != "" {
		text += " by " + entry.Artist
	}
	return text
}
