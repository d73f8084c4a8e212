// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package events

// PlaybackState is the state reported by the player. The numeric values are
// part of the event contract.
type PlaybackState int

const (
	StateNone PlaybackState = iota
	StateStopped
	StatePaused
	StatePlaying
	StateFastForwarding
	StateRewinding
	StateBuffering
	StateError
	StateConnecting
	StateSkippingToPrevious
	StateSkippingToNext
	StateSkippingToQueueItem
)

var stateNames = [...]string{
	StateNone:                "NONE",
	StateStopped:             "STOPPED",
	StatePaused:              "PAUSED",
	StatePlaying:             "PLAYING",
	StateFastForwarding:      "FAST_FORWARDING",
	StateRewinding:           "REWINDING",
	StateBuffering:           "BUFFERING",
	StateError:               "ERROR",
	StateConnecting:          "CONNECTING",
	StateSkippingToPrevious:  "SKIPPING_TO_PREVIOUS",
	StateSkippingToNext:      "SKIPPING_TO_NEXT",
	StateSkippingToQueueItem: "SKIPPING_TO_QUEUE_ITEM",
}

func (s PlaybackState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "UNKNOWN"
	}
	return stateNames[s]
}
