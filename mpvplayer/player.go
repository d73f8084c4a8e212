// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package mpvplayer

import (
	"strconv"
	"sync"

	"github.com/spezifisch/streamplay/events"
	"github.com/spezifisch/streamplay/logger"
	"github.com/spezifisch/streamplay/playlist"
	"github.com/supersonic-app/go-mpv"
)

type Player struct {
	instance  *mpv.Mpv
	mpvEvents chan *mpv.Event
	emitter   EventEmitter
	logger    logger.LoggerInterface

	// guards the fields below, which are shared with the event loop
	mu           sync.Mutex
	track        Track
	stopped      bool
	lastState    events.PlaybackState
	lastPosition int64

	cbOnSongChange []func(track *Track)
}

func NewPlayer(emitter EventEmitter, logger logger.LoggerInterface) (player *Player, err error) {
	mpvInstance := mpv.Create()

	if err = mpvInstance.SetOptionString("audio-display", "no"); err != nil {
		mpvInstance.TerminateDestroy()
		return
	}
	if err = mpvInstance.SetOptionString("video", "no"); err != nil {
		mpvInstance.TerminateDestroy()
		return
	}

	if err = mpvInstance.Initialize(); err != nil {
		mpvInstance.TerminateDestroy()
		return
	}

	player = &Player{
		instance:  mpvInstance,
		mpvEvents: make(chan *mpv.Event),
		emitter:   emitter,
		logger:    logger,
		stopped:   true,
		lastState: events.StateNone,
	}

	go player.mpvEngineEventHandler(mpvInstance)
	return
}

func (p *Player) mpvEngineEventHandler(instance *mpv.Mpv) {
	for {
		evt := instance.WaitEvent(1)
		p.mpvEvents <- evt
	}
}

func (p *Player) Quit() {
	p.mpvEvents <- nil
	p.instance.TerminateDestroy()
}

// OnSongChange registers cb to be called whenever Play loads a stream.
func (p *Player) OnSongChange(cb func(track *Track)) {
	p.cbOnSongChange = append(p.cbOnSongChange, cb)
}

// Play replaces whatever is loaded with url. metadata is shown as the media
// title and handed to song change listeners.
func (p *Player) Play(url string, metadata playlist.Metadata) error {
	track := Track{Url: url, Metadata: metadata}

	p.mu.Lock()
	p.track = track
	p.stopped = false
	p.lastPosition = 0
	p.mu.Unlock()

	if err := p.instance.SetOptionString("force-media-title", mediaTitle(track)); err != nil {
		p.logger.PrintError("Play: force-media-title", err)
	}
	if paused, err := p.getPropertyBool("pause"); err != nil {
		p.logger.PrintError("Play: pause", err)
	} else if paused {
		if err := p.instance.SetProperty("pause", mpv.FORMAT_FLAG, false); err != nil {
			p.logger.PrintError("Play: unpause", err)
		}
	}

	if err := p.instance.Command([]string{"loadfile", url}); err != nil {
		p.setState(events.StateError)
		return err
	}

	p.sendSongChange(track)
	return nil
}

// Pause pauses a loaded stream. It does nothing when stopped.
func (p *Player) Pause() error {
	loaded, err := p.IsSongLoaded()
	if err != nil {
		return err
	}
	if !loaded {
		return nil
	}
	return p.instance.SetProperty("pause", mpv.FORMAT_FLAG, true)
}

// Resume continues a paused stream.
func (p *Player) Resume() error {
	return p.instance.SetProperty("pause", mpv.FORMAT_FLAG, false)
}

func (p *Player) Stop() error {
	p.logger.Printf("stopping (user)")
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()
	return p.instance.Command([]string{"stop"})
}

// SeekTo jumps to an absolute position in seconds.
func (p *Player) SeekTo(seconds int) error {
	if seconds < 0 {
		seconds = 0
	}

	p.mu.Lock()
	from := p.lastPosition
	p.mu.Unlock()
	p.setState(seekState(from, int64(seconds)))

	return p.instance.Command([]string{"seek", strconv.Itoa(seconds), "absolute"})
}

func (p *Player) IsSongLoaded() (bool, error) {
	idle, err := p.getPropertyBool("idle-active")
	return !idle, err
}

func (p *Player) IsPaused() (bool, error) {
	return p.getPropertyBool("pause")
}

// IsPlaying probes mpv on a separate goroutine and calls cb only if a stream
// is loaded and not paused.
func (p *Player) IsPlaying(cb func()) {
	go func() {
		playing, err := p.isPlaying()
		if err != nil {
			p.logger.PrintError("IsPlaying", err)
			return
		}
		if playing {
			cb()
		}
	}()
}

func (p *Player) isPlaying() (bool, error) {
	loaded, err := p.IsSongLoaded()
	if err != nil {
		return false, err
	}
	paused, err := p.IsPaused()
	if err != nil {
		return false, err
	}
	return loaded && !paused, nil
}

func (p *Player) GetTimePos() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastPosition
}

func (p *Player) GetPlayingTrack() Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.track
}

func (p *Player) State() events.PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastState
}
