// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package mpvplayer

import (
	"github.com/spezifisch/streamplay/events"
	"github.com/supersonic-app/go-mpv"
)

func (p *Player) EventLoop() {
	if err := p.instance.ObserveProperty(0, "playback-time", mpv.FORMAT_INT64); err != nil {
		p.logger.PrintError("Observe1", err)
	}
	if err := p.instance.ObserveProperty(0, "pause", mpv.FORMAT_FLAG); err != nil {
		p.logger.PrintError("Observe2", err)
	}
	if err := p.instance.ObserveProperty(0, "paused-for-cache", mpv.FORMAT_FLAG); err != nil {
		p.logger.PrintError("Observe3", err)
	}

	for evt := range p.mpvEvents {
		if evt == nil {
			// quit signal
			break
		}

		switch evt.Event_Id {
		case mpv.EVENT_PROPERTY_CHANGE:
			// which property changed is not decoded; re-read what we need
			p.updatePosition()

		case mpv.EVENT_END_FILE:
			p.mu.Lock()
			userStop := p.stopped
			p.stopped = true
			p.mu.Unlock()

			if userStop {
				p.logger.Print("mpv.EventLoop: mpv stopped")
			} else {
				p.logger.Print("mpv.EventLoop: stream ended")
			}

		case mpv.EVENT_START_FILE, mpv.EVENT_PLAYBACK_RESTART,
			mpv.EVENT_IDLE, mpv.EVENT_NONE, mpv.EVENT_SEEK, mpv.EVENT_FILE_LOADED:

		default:
			p.logger.Printf("mpv.EventLoop: unhandled event id %v", evt.Event_Id)
		}

		switch action, state := stateForEvent(evt.Event_Id, p.State()); action {
		case actionSet:
			p.setState(state)
		case actionSettle:
			p.updateSettledState()
		}
	}
}

func (p *Player) updatePosition() {
	position, err := p.getPropertyInt64("playback-time")
	if err != nil {
		// unavailable while nothing is loaded
		return
	}

	p.mu.Lock()
	changed := position != p.lastPosition
	p.lastPosition = position
	p.mu.Unlock()

	if changed {
		p.emitter.Emit(events.EventUpdatePosition, events.UpdatePosition{CurrentPosition: position})
	}
}

func (p *Player) updateSettledState() {
	paused, err := p.getPropertyBool("pause")
	if err != nil {
		p.logger.PrintError("mpv.EventLoop: pause", err)
		return
	}
	pausedForCache, err := p.getPropertyBool("paused-for-cache")
	if err != nil {
		// not every stream reports cache state
		pausedForCache = false
	}
	p.setState(settledState(paused, pausedForCache))
}

// setState publishes state if it differs from the last published one.
func (p *Player) setState(state events.PlaybackState) {
	p.mu.Lock()
	if state == p.lastState {
		p.mu.Unlock()
		return
	}
	p.lastState = state
	p.mu.Unlock()

	p.emitter.Emit(events.EventPlaybackStateChanged, events.PlaybackStateChanged{State: state})
}

func (p *Player) sendSongChange(track Track) {
	for _, cb := range p.cbOnSongChange {
		cb(&track)
	}
}
