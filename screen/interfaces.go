// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package screen

import (
	"github.com/spezifisch/streamplay/events"
	"github.com/spezifisch/streamplay/playlist"
)

// Player is the playback engine the screen drives. Commands are fire and
// forget; IsPlaying calls cb asynchronously and only if something is playing.
type Player interface {
	Play(url string, metadata playlist.Metadata) error
	Pause() error
	Stop() error
	SeekTo(seconds int) error
	IsPlaying(cb func())
}

// EventChannel is the shared channel the player publishes its events on.
type EventChannel interface {
	Subscribe(name string, handler events.Handler) events.Subscription
	Unsubscribe(sub events.Subscription)
}

// Dispatcher runs f on the UI goroutine.
type Dispatcher func(f func())

// Stream is what Play always starts.
type Stream struct {
	Url      string
	Metadata playlist.Metadata
}
