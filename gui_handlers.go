// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"github.com/gdamore/tcell/v2"
)

// relative seek distance for the seek commands
const seekJump = 10

func (ui *Ui) handlePageInput(event *tcell.EventKey) *tcell.EventKey {
	// let the slider see its own keys
	if ui.playbackPage.slider.HasFocus() {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyRight, tcell.KeyHome, tcell.KeyEnd, tcell.KeyEnter:
			return event
		}
	}

	if event.Key() != tcell.KeyRune {
		return event
	}

	cmd, ok := ui.keys.Command(event.Rune())
	if !ok {
		return event
	}

	ui.runCommand(cmd)
	return nil
}

func (ui *Ui) runCommand(cmd string) {
	switch cmd {
	case CommandPagePlayback:
		ui.ShowPage(PagePlayback)

	case CommandPageLog:
		ui.ShowPage(PageLog)

	case CommandHelp:
		ui.ShowHelp()

	case CommandQuit:
		ui.Quit()

	case CommandPlay:
		ui.screen.Play()

	case CommandPause:
		ui.screen.Pause()

	case CommandStop:
		ui.screen.Stop()

	case CommandNext:
		ui.screen.Next()

	case CommandPrev:
		ui.screen.Prev()

	case CommandSeekForward:
		ui.jump(seekJump)

	case CommandSeekBackward:
		ui.jump(-seekJump)
	}
}

// jump performs a complete slider gesture relative to the current position.
func (ui *Ui) jump(delta int) {
	if !ui.screen.View().Visible {
		return
	}
	target := ui.screen.CurrentTime() + delta
	if target < 0 {
		target = 0
	}
	ui.screen.Drag(target)
	ui.screen.SeekTo(target)
}

func (ui *Ui) ShowPage(name string) {
	ui.pages.SwitchToPage(name)
	ui.menuWidget.SetActivePage(name)
	_, prim := ui.pages.GetFrontPage()
	ui.app.SetFocus(prim)
}

func (ui *Ui) Quit() {
	for _, sub := range ui.subscriptions {
		ui.emitter.Unsubscribe(sub)
	}
	ui.subscriptions = nil

	ui.screen.Unmount()
	ui.player.Quit()
	ui.app.Stop()
}
