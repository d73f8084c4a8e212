// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package screen

import (
	"errors"
	"fmt"

	"github.com/spezifisch/streamplay/events"
	"github.com/spezifisch/streamplay/logger"
	"github.com/spezifisch/streamplay/playlist"
)

var ErrNoPlaylist = errors.New("no playlist")

// PlaybackScreen holds the state behind the playback page and forwards user
// intent to the player. Apart from the event handlers, every method must be
// called on the UI goroutine.
type PlaybackScreen struct {
	player   Player
	channel  EventChannel
	fetcher  playlist.Fetcher
	logger   logger.LoggerInterface
	dispatch Dispatcher
	stream   Stream

	// nil until the fetch succeeded
	playlist      playlist.Playlist
	selectedIndex int
	currentTime   int

	// set while the seek slider is being moved
	dragging bool

	mounted       bool
	subscriptions []events.Subscription
	onChange      func()
}

func New(player Player,
	channel EventChannel,
	fetcher playlist.Fetcher,
	logger logger.LoggerInterface,
	dispatch Dispatcher,
	stream Stream) *PlaybackScreen {
	return &PlaybackScreen{
		player:   player,
		channel:  channel,
		fetcher:  fetcher,
		logger:   logger,
		dispatch: dispatch,
		stream:   stream,
	}
}

// SetChangedFunc registers f to be called on the UI goroutine after any
// rendered state changed.
func (s *PlaybackScreen) SetChangedFunc(f func()) {
	s.onChange = f
}

// Mount subscribes to the player events and starts the playlist fetch.
func (s *PlaybackScreen) Mount() {
	if s.mounted {
		return
	}
	s.mounted = true

	s.subscriptions = []events.Subscription{
		s.channel.Subscribe(events.EventUpdatePosition, s.onUpdatePosition),
		s.channel.Subscribe(events.EventPlaybackStateChanged, s.onPlaybackStateChanged),
	}

	go s.fetchPlaylist()
}

// Unmount releases the subscriptions taken by Mount. An in-flight fetch is
// not cancelled; its result is dropped.
func (s *PlaybackScreen) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false

	for _, sub := range s.subscriptions {
		s.channel.Unsubscribe(sub)
	}
	s.subscriptions = nil
}

func (s *PlaybackScreen) fetchPlaylist() {
	pl, err := s.fetcher.Fetch()
	s.dispatch(func() {
		if err != nil {
			s.logger.PrintError("fetchPlaylist", err)
			return
		}
		if !s.mounted {
			s.logger.Print("playback screen: playlist arrived after unmount, dropped")
			return
		}
		s.playlist = pl
		s.changed()
	})
}

// runs on the emitting goroutine
func (s *PlaybackScreen) onUpdatePosition(payload interface{}) {
	ev, ok := payload.(events.UpdatePosition)
	if !ok {
		s.logger.Printf("onUpdatePosition: unexpected payload %T", payload)
		return
	}

	s.dispatch(func() {
		s.logger.Printf("Current position: %v", ev.CurrentPosition)
		if s.dragging {
			return
		}

		s.player.IsPlaying(func() {
			s.dispatch(func() {
				// dragging is not checked again: a probe answering after a
				// drag started still moves the slider
				s.applyPosition(ev)
			})
		})
	})
}

func (s *PlaybackScreen) applyPosition(ev events.UpdatePosition) {
	if !s.mounted {
		return
	}

	seconds, err := ev.Seconds()
	if err != nil {
		s.logger.PrintError("onUpdatePosition", err)
		return
	}
	if seconds < 0 {
		seconds = 0
	}

	s.currentTime = seconds
	s.changed()
}

// runs on the emitting goroutine
func (s *PlaybackScreen) onPlaybackStateChanged(payload interface{}) {
	ev, ok := payload.(events.PlaybackStateChanged)
	if !ok {
		s.logger.Printf("onPlaybackStateChanged: unexpected payload %T", payload)
		return
	}

	s.dispatch(func() {
		s.logger.Printf("PlaybackState: %d", int(ev.State))
	})
}

// Play always starts the configured stream, whatever entry is selected.
func (s *PlaybackScreen) Play() {
	if err := s.player.Play(s.stream.Url, s.stream.Metadata); err != nil {
		s.logger.PrintError("Play", err)
	}
}

func (s *PlaybackScreen) Pause() {
	if err := s.player.Pause(); err != nil {
		s.logger.PrintError("Pause", err)
	}
}

func (s *PlaybackScreen) Stop() {
	s.currentTime = 0
	s.changed()

	if err := s.player.Stop(); err != nil {
		s.logger.PrintError("Stop", err)
	}
}

func (s *PlaybackScreen) Next() {
	if len(s.playlist) == 0 {
		s.logger.PrintError("Next", ErrNoPlaylist)
		return
	}

	s.currentTime = 0
	s.selectedIndex = (s.selectedIndex + 1) % len(s.playlist)
	s.changed()

	s.Play()
}

// Prev only moves the selection when it is on the first entry, wrapping to
// the last one. Any other index is kept.
func (s *PlaybackScreen) Prev() {
	if len(s.playlist) == 0 {
		s.logger.PrintError("Prev", ErrNoPlaylist)
		return
	}

	s.currentTime = 0
	if s.selectedIndex == 0 {
		s.selectedIndex = len(s.playlist) - 1
	}
	s.changed()

	s.Play()
}

// Drag marks the seek slider as being moved to value. Position updates from
// the player are ignored until SeekTo.
func (s *PlaybackScreen) Drag(value int) {
	s.dragging = true
}

func (s *PlaybackScreen) SeekTo(position int) {
	s.dragging = false

	if err := s.player.SeekTo(position); err != nil {
		s.logger.PrintError("SeekTo", err)
	}
}

func (s *PlaybackScreen) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *PlaybackScreen) Playlist() playlist.Playlist {
	return s.playlist
}

func (s *PlaybackScreen) SelectedIndex() int {
	return s.selectedIndex
}

func (s *PlaybackScreen) CurrentTime() int {
	return s.currentTime
}

func (s *PlaybackScreen) IsDragging() bool {
	return s.dragging
}

// View is the rendered form of the screen state.
type View struct {
	// false while no playlist is loaded; nothing is drawn then
	Visible bool

	Title       string
	CurrentTime int
	Max         int
	Low, High   string
}

func (s *PlaybackScreen) View() View {
	if s.playlist == nil {
		return View{}
	}

	v := View{
		Visible:     true,
		CurrentTime: s.currentTime,
		Max:         1,
	}
	if s.selectedIndex >= 0 && s.selectedIndex < len(s.playlist) {
		entry := s.playlist[s.selectedIndex]
		v.Max = int(entry.Duration)
		v.Title = formatEntry(entry)
	}
	v.Low = formatSeconds(v.CurrentTime)
	v.High = formatSeconds(v.Max)
	return v
}

func formatEntry(e playlist.Entry) string {
	switch {
	case e.Title != "" && e.Artist != "":
		return e.Title + " by " + e.Artist
	case e.Title != "":
		return e.Title
	default:
		return e.Artist
	}
}

func formatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
