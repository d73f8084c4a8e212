// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spezifisch/streamplay/events"
	"github.com/spezifisch/streamplay/logger"
	"github.com/spezifisch/streamplay/mpvplayer"
	"github.com/spezifisch/streamplay/playlist"
	"github.com/spezifisch/streamplay/screen"
)

// struct contains all the updatable elements of the Ui
type Ui struct {
	app   *tview.Application
	pages *tview.Pages

	// top bar
	startStopStatus *tview.TextView
	playerStatus    *tview.TextView

	// bottom bar
	menuWidget *MenuWidget

	// playback page
	playbackPage *PlaybackPage

	// log page
	logPage *LogPage

	// modals
	helpModal  tview.Primitive
	helpWidget *HelpWidget

	screen *screen.PlaybackScreen
	keys   *KeyMap

	playerEvents  chan events.PlaybackStateChanged
	subscriptions []events.Subscription

	emitter *events.Emitter
	player  *mpvplayer.Player
	logger  *logger.Logger
}

// GuiSettings are the config values the Ui reads at construction.
type GuiSettings struct {
	Stream   screen.Stream
	SeekStep int
	LogLines int
	Keys     *KeyMap
}

const (
	// page identifiers (use these instead of hardcoding page names for showing/hiding)
	PagePlayback = "playback"
	PageLog      = "log"

	PageHelpBox = "helpBox"
)

func InitGui(player *mpvplayer.Player,
	emitter *events.Emitter,
	fetcher playlist.Fetcher,
	logger *logger.Logger,
	settings GuiSettings) (ui *Ui) {
	if settings.Keys == nil {
		settings.Keys = NewKeyMap()
	}

	ui = &Ui{
		playerEvents: make(chan events.PlaybackStateChanged, 5),
		keys:         settings.Keys,

		emitter: emitter,
		player:  player,
		logger:  logger,
	}

	ui.app = tview.NewApplication()
	ui.pages = tview.NewPages()

	ui.screen = screen.New(player, emitter, fetcher, logger, ui.dispatch, settings.Stream)

	// status text at the top
	statusLeft := fmt.Sprintf("[::b]%s[::-] v%s", Name, Version)
	ui.startStopStatus = tview.NewTextView().SetText(statusLeft).
		SetTextAlign(tview.AlignLeft).
		SetDynamicColors(true).
		SetScrollable(false)
	ui.startStopStatus.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		return action, nil
	})

	statusRight := formatPlayerStatus(0, 0)
	ui.playerStatus = tview.NewTextView().SetText(statusRight).
		SetTextAlign(tview.AlignRight).
		SetDynamicColors(true).
		SetScrollable(false)

	ui.menuWidget = ui.createMenuWidget()
	ui.helpWidget = ui.createHelpWidget()

	// help box modal
	ui.helpModal = makeModal(ui.helpWidget.Root, 60, 20)
	ui.helpWidget.Root.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if ui.helpWidget.visible && (event.Key() == tcell.KeyEscape) {
			ui.CloseHelp()
		}
		return event
	})

	// top bar: status text
	topBarFlex := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(ui.startStopStatus, 0, 1, false).
		AddItem(ui.playerStatus, 20, 0, false)

	// playback page
	ui.playbackPage = ui.createPlaybackPage(settings.SeekStep)

	// log page
	ui.logPage = ui.createLogPage(settings.LogLines)

	ui.pages.AddPage(PagePlayback, ui.playbackPage.Root, true, true).
		AddPage(PageHelpBox, ui.helpModal, true, false).
		AddPage(PageLog, ui.logPage.Root, true, false)

	rootFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(topBarFlex, 1, 0, false).
		AddItem(ui.pages, 0, 1, true).
		AddItem(ui.menuWidget.Root, 1, 0, false)

	// add main input handler
	rootFlex.SetInputCapture(ui.handlePageInput)

	ui.app.SetRoot(rootFlex, true).
		SetFocus(rootFlex).
		EnableMouse(true)

	ui.screen.SetChangedFunc(ui.onScreenChanged)

	return ui
}

// dispatch runs f on the tview event loop and redraws afterwards.
func (ui *Ui) dispatch(f func()) {
	ui.app.QueueUpdateDraw(f)
}

func (ui *Ui) onScreenChanged() {
	ui.playbackPage.Update()
	ui.menuWidget.SetPlaylistInfo(ui.screen.Playlist())

	view := ui.screen.View()
	ui.playerStatus.SetText(formatPlayerStatus(view.CurrentTime, view.Max))
}

func (ui *Ui) Run() error {
	// receive state changes for the status bar
	ui.subscriptions = append(ui.subscriptions,
		ui.emitter.Subscribe(events.EventPlaybackStateChanged, ui.SendEvent))

	// run gui event handler
	go ui.guiEventLoop()

	// run mpv event handler
	go ui.player.EventLoop()

	ui.screen.Mount()
	defer ui.screen.Unmount()

	// gui main loop (blocking)
	return ui.app.Run()
}

func (ui *Ui) ShowHelp() {
	activePage := ui.menuWidget.GetActivePage()
	ui.helpWidget.RenderHelp(activePage)

	ui.pages.ShowPage(PageHelpBox)
	ui.pages.SendToFront(PageHelpBox)
	ui.app.SetFocus(ui.helpModal)
	ui.helpWidget.visible = true
}

func (ui *Ui) CloseHelp() {
	ui.helpWidget.visible = false
	ui.pages.HidePage(PageHelpBox)
}
