// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package remote

import "github.com/spezifisch/streamplay/events"

// playbackStatus maps a player state to the MPRIS PlaybackStatus property.
func playbackStatus(state events.PlaybackState) string {
	switch state {
	case events.StatePlaying, events.StateBuffering, events.StateConnecting,
		events.StateFastForwarding, events.StateRewinding,
		events.StateSkippingToNext, events.StateSkippingToPrevious, events.StateSkippingToQueueItem:
		return "Playing"
	case events.StatePaused:
		return "Paused"
	default:
		return "Stopped"
	}
}

func trackMetadata(track TrackInterface) map[string]interface{} {
	metadata := map[string]interface{}{
		"mpris:trackid": trackId,
		"xesam:artist":  []string{},
		"xesam:title":   "",
	}
	if track == nil || !track.IsValid() {
		return metadata
	}

	if artist := track.GetArtist(); artist != "" {
		metadata["xesam:artist"] = []string{artist}
	}
	metadata["xesam:title"] = track.GetTitle()
	metadata["xesam:url"] = track.GetUrl()
	if art := track.GetArtUrl(); art != "" {
		metadata["mpris:artUrl"] = art
	}
	return metadata
}

func secondsToMicro(seconds int64) int64 {
	return seconds * 1000000
}

// seekTarget applies an MPRIS offset in microseconds to a position in seconds.
func seekTarget(position int64, offset int64) int {
	target := position + offset/1000000
	if target < 0 {
		target = 0
	}
	return int(target)
}
