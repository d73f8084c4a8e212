// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package mpvplayer

import (
	"errors"

	"github.com/spezifisch/streamplay/events"
	"github.com/supersonic-app/go-mpv"
)

var ErrNilValue = errors.New("nil value")

func (p *Player) getPropertyInt64(name string) (int64, error) {
	value, err := p.instance.GetProperty(name, mpv.FORMAT_INT64)
	if err != nil {
		return 0, err
	} else if value == nil {
		return 0, ErrNilValue
	}
	return value.(int64), err
}

func (p *Player) getPropertyBool(name string) (bool, error) {
	value, err := p.instance.GetProperty(name, mpv.FORMAT_FLAG)
	if err != nil {
		return false, err
	} else if value == nil {
		return false, ErrNilValue
	}
	return value.(bool), err
}

// mediaTitle is what mpv reports as the title of a stream.
func mediaTitle(t Track) string {
	switch {
	case t.Metadata.Title != "" && t.Metadata.Artist != "":
		return t.Metadata.Artist + " - " + t.Metadata.Title
	case t.Metadata.Title != "":
		return t.Metadata.Title
	default:
		return t.Url
	}
}

// seekState is the transient state reported while seeking from one position
// to another.
func seekState(from, to int64) events.PlaybackState {
	if to < from {
		return events.StateRewinding
	}
	return events.StateFastForwarding
}

// settledState maps mpv's flags for a loaded file to a playback state.
func settledState(paused, pausedForCache bool) events.PlaybackState {
	switch {
	case pausedForCache:
		return events.StateBuffering
	case paused:
		return events.StatePaused
	default:
		return events.StatePlaying
	}
}

// stateAction is what an mpv event does to the published playback state.
type stateAction int

const (
	// leave the state alone
	actionKeep stateAction = iota
	// publish the returned state
	actionSet
	// re-derive the state from mpv's pause flags
	actionSettle
)

// isSettled reports whether state belongs to a loaded file that is neither
// starting nor stopped.
func isSettled(state events.PlaybackState) bool {
	switch state {
	case events.StatePlaying, events.StatePaused, events.StateBuffering,
		events.StateFastForwarding, events.StateRewinding:
		return true
	}
	return false
}

// stateForEvent decides how the event id moves the playback state, given the
// last published state.
func stateForEvent(id mpv.EventId, last events.PlaybackState) (stateAction, events.PlaybackState) {
	switch id {
	case mpv.EVENT_START_FILE:
		return actionSet, events.StateConnecting

	case mpv.EVENT_END_FILE:
		return actionSet, events.StateStopped

	case mpv.EVENT_PLAYBACK_RESTART:
		// first frame after load or after a seek
		return actionSettle, last

	case mpv.EVENT_PROPERTY_CHANGE:
		// pause flags flip while nothing is loaded, too
		if isSettled(last) {
			return actionSettle, last
		}
	}
	return actionKeep, last
}
