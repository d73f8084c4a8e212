// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spezifisch/streamplay/playlist"
)

// MenuWidget is the bottom bar: page tabs, playlist info, help and quit.
type MenuWidget struct {
	Root *tview.Flex

	tabs *tview.TextView
	info *tview.TextView

	activePage string

	buttonStyle     tcell.Style
	quitActiveStyle tcell.Style

	// external references
	ui *Ui
}

type menuTab struct {
	page    string
	command string
}

var menuTabs = []menuTab{
	{PagePlayback, CommandPagePlayback},
	{PageLog, CommandPageLog},
}

func (ui *Ui) createMenuWidget() (m *MenuWidget) {
	m = &MenuWidget{
		activePage: PagePlayback,

		buttonStyle:     tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
		quitActiveStyle: tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorRed),

		ui: ui,
	}

	// page tabs are text regions; clicking one highlights it
	m.tabs = tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetWrap(false).
		SetHighlightedFunc(func(added, removed, remaining []string) {
			if len(added) > 0 && added[0] != m.activePage {
				ui.ShowPage(added[0])
			}
		})
	m.tabs.SetText(m.tabText())
	m.tabs.Highlight(m.activePage)

	m.info = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetScrollable(false)
	m.SetPlaylistInfo(nil)

	quitButton := tview.NewButton(m.keyLabel(CommandQuit) + "quit").
		SetStyle(m.buttonStyle).
		SetActivatedStyle(m.quitActiveStyle).
		SetSelectedFunc(func() {
			ui.Quit()
		})

	helpButton := tview.NewButton(m.keyLabel(CommandHelp) + "help").
		SetStyle(m.buttonStyle).
		SetActivatedStyle(m.buttonStyle).
		SetSelectedFunc(func() {
			ui.ShowHelp()
		})

	m.Root = tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(m.tabs, 0, 2, false).
		AddItem(m.info, 0, 2, false).
		AddItem(helpButton, 9, 0, false).
		AddItem(quitButton, 9, 0, false)

	return
}

// keyLabel is "<first key>: " for cmd, or nothing if cmd is unbound.
func (m *MenuWidget) keyLabel(cmd string) string {
	keys := m.ui.keys.KeysFor(cmd)
	if len(keys) == 0 {
		return ""
	}
	return keys[0] + ": "
}

func (m *MenuWidget) tabText() string {
	parts := make([]string, 0, len(menuTabs))
	for _, tab := range menuTabs {
		parts = append(parts, fmt.Sprintf(`["%s"] %s%s [""]`, tab.page, m.keyLabel(tab.command), tab.page))
	}
	return strings.Join(parts, " ")
}

// SetPlaylistInfo shows how many entries the loaded playlist has.
func (m *MenuWidget) SetPlaylistInfo(pl playlist.Playlist) {
	switch {
	case pl == nil:
		m.info.SetText("[gray]no playlist[-]")
	case len(pl) == 1:
		m.info.SetText("1 entry")
	default:
		m.info.SetText(fmt.Sprintf("%d entries", len(pl)))
	}
}

func (m *MenuWidget) SetActivePage(name string) {
	for _, tab := range menuTabs {
		if tab.page == name {
			m.activePage = name
			m.tabs.Highlight(name)
			return
		}
	}
}

func (m *MenuWidget) GetActivePage() string {
	return m.activePage
}
