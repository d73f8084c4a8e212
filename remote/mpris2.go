// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package remote

import (
	"errors"
	"sync/atomic"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/godbus/dbus/v5/prop"
	"github.com/spezifisch/streamplay/events"
	"github.com/spezifisch/streamplay/logger"
)

const (
	mprisPath        = "/org/mpris/MediaPlayer2"
	mprisRootIface   = "org.mpris.MediaPlayer2"
	mprisPlayerIface = "org.mpris.MediaPlayer2.Player"
	mprisName        = "org.mpris.MediaPlayer2.streamplay"

	trackId = dbus.ObjectPath("/org/spezifisch/streamplay/CurrentTrack")
)

type MprisPlayer struct {
	dbus     *dbus.Conn
	props    *prop.Properties
	screen   ControlledScreen
	dispatch func(func())
	channel  EventChannel
	logger   logger.LoggerInterface

	subscriptions []events.Subscription

	state    atomic.Int32 // events.PlaybackState
	position atomic.Int64 // seconds
}

// RegisterMprisPlayer exports the MPRIS2 interfaces on the session bus. dispatch
// must run its argument on the UI goroutine.
func RegisterMprisPlayer(screen ControlledScreen, channel EventChannel, dispatch func(func()), logger_ logger.LoggerInterface) (mpp *MprisPlayer, err error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return
	}

	mpp = &MprisPlayer{
		dbus:     conn,
		screen:   screen,
		dispatch: dispatch,
		channel:  channel,
		logger:   logger_,
	}

	err = conn.Export(mpp, mprisPath, mprisPlayerIface)
	if err != nil {
		return
	}

	var mprisPlayer = map[string]*prop.Prop{
		"CanControl":     {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanGoNext":      {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanGoPrevious":  {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanPause":       {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanPlay":        {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanSeek":        {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"Metadata":       {Value: trackMetadata(nil), Writable: false, Emit: prop.EmitTrue, Callback: nil},
		"PlaybackStatus": {Value: playbackStatus(events.StateNone), Writable: false, Emit: prop.EmitTrue, Callback: nil},
		"Position":       {Value: int64(0), Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"Rate":           {Value: 1.0, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"MinimumRate":    {Value: 1.0, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"MaximumRate":    {Value: 1.0, Writable: false, Emit: prop.EmitFalse, Callback: nil},
	}

	var mediaPlayer = map[string]*prop.Prop{
		"CanQuit":             {Value: false, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanRaise":            {Value: false, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"HasTrackList":        {Value: false, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"Identity":            {Value: "streamplay", Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"SupportedUriSchemes": {Value: []string{"http", "https"}, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"SupportedMimeTypes":  {Value: []string{}, Writable: false, Emit: prop.EmitFalse, Callback: nil},
	}

	mpp.props, err = prop.Export(
		conn,
		mprisPath,
		map[string]map[string]*prop.Prop{
			mprisRootIface:   mediaPlayer,
			mprisPlayerIface: mprisPlayer,
		},
	)
	if err != nil {
		return
	}

	n := &introspect.Node{
		Name: mprisPath,
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			prop.IntrospectData,
			{
				Name:       mprisPlayerIface,
				Methods:    introspect.Methods(mpp),
				Properties: mpp.props.Introspection(mprisPlayerIface),
			},
		},
	}
	err = conn.Export(introspect.NewIntrospectable(n), mprisPath, "org.freedesktop.DBus.Introspectable")
	if err != nil {
		return
	}

	reply, err := conn.RequestName(mprisName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		err = errors.New("name already owned")
		return
	}

	mpp.subscriptions = []events.Subscription{
		channel.Subscribe(events.EventPlaybackStateChanged, mpp.onPlaybackStateChanged),
		channel.Subscribe(events.EventUpdatePosition, mpp.onUpdatePosition),
	}
	return
}

func (m *MprisPlayer) Close() {
	for _, sub := range m.subscriptions {
		m.channel.Unsubscribe(sub)
	}
	m.subscriptions = nil

	if err := m.dbus.Close(); err != nil {
		m.logger.PrintError("mpp Close", err)
	}
}

func (m *MprisPlayer) onPlaybackStateChanged(payload interface{}) {
	ev, ok := payload.(events.PlaybackStateChanged)
	if !ok {
		return
	}
	m.state.Store(int32(ev.State))
	m.props.SetMust(mprisPlayerIface, "PlaybackStatus", playbackStatus(ev.State))
}

func (m *MprisPlayer) onUpdatePosition(payload interface{}) {
	ev, ok := payload.(events.UpdatePosition)
	if !ok {
		return
	}
	seconds, err := ev.Seconds()
	if err != nil {
		return
	}
	m.position.Store(int64(seconds))
	m.props.SetMust(mprisPlayerIface, "Position", secondsToMicro(int64(seconds)))
}

// OnSongChange publishes the metadata of the newly loaded stream.
func (m *MprisPlayer) OnSongChange(currentSong TrackInterface) {
	m.logger.Print("mpris: OnSongChange called")
	m.position.Store(0)
	m.props.SetMust(mprisPlayerIface, "Metadata", trackMetadata(currentSong))
}

// Mandatory functions
func (m *MprisPlayer) Stop() *dbus.Error {
	m.dispatch(m.screen.Stop)
	return nil
}

func (m *MprisPlayer) Next() *dbus.Error {
	m.dispatch(m.screen.Next)
	return nil
}

func (m *MprisPlayer) Previous() *dbus.Error {
	m.dispatch(m.screen.Prev)
	return nil
}

func (m *MprisPlayer) Pause() *dbus.Error {
	m.dispatch(m.screen.Pause)
	return nil
}

func (m *MprisPlayer) Play() *dbus.Error {
	m.dispatch(m.screen.Play)
	return nil
}

func (m *MprisPlayer) PlayPause() *dbus.Error {
	if playbackStatus(events.PlaybackState(m.state.Load())) == "Playing" {
		return m.Pause()
	}
	return m.Play()
}

// Seek moves by offset microseconds relative to the current position.
func (m *MprisPlayer) Seek(offset int64) *dbus.Error {
	target := seekTarget(m.position.Load(), offset)
	m.dispatch(func() {
		m.screen.SeekTo(target)
	})
	return nil
}

func (m *MprisPlayer) SetPosition(track dbus.ObjectPath, position int64) *dbus.Error {
	if track != trackId || position < 0 {
		// stale request for another track
		return nil
	}
	target := int(position / 1000000)
	m.dispatch(func() {
		m.screen.SeekTo(target)
	})
	return nil
}

func (m *MprisPlayer) OpenUri(string) *dbus.Error {
	return dbus.MakeFailedError(errors.New("OpenUri is not supported"))
}
