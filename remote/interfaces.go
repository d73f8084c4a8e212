// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package remote

import "github.com/spezifisch/streamplay/events"

// ControlledScreen receives the transport commands of a remote. All methods
// are invoked on the UI goroutine.
type ControlledScreen interface {
	Play()
	Pause()
	Stop()
	Next()
	Prev()
	SeekTo(position int)
}

// EventChannel is the channel the player reports position and state on.
type EventChannel interface {
	Subscribe(name string, handler events.Handler) events.Subscription
	Unsubscribe(sub events.Subscription)
}

type TrackInterface interface {
	GetArtist() string
	GetTitle() string
	GetArtUrl() string
	GetUrl() string

	// something like Url != ""
	IsValid() bool
}
