// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type PlaybackPage struct {
	Root *tview.Flex

	controls *tview.Flex
	title    *tview.TextView
	buttons  *tview.Flex
	slider   *SeekSlider
	low      *tview.TextView
	high     *tview.TextView

	// whether controls are attached to Root
	shown bool

	buttonStyle tcell.Style

	// external refs
	ui *Ui
}

func (ui *Ui) createPlaybackPage(seekStep int) *PlaybackPage {
	p := PlaybackPage{
		ui: ui,

		buttonStyle: tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite),
	}

	p.title = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetScrollable(false)

	playButton := p.makeButton("Play", ui.screen.Play)
	pauseButton := p.makeButton("Pause", ui.screen.Pause)
	stopButton := p.makeButton("Stop", ui.screen.Stop)

	p.buttons = tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(nil, 0, 1, false).
		AddItem(playButton, 10, 0, true).
		AddItem(nil, 0, 1, false).
		AddItem(pauseButton, 10, 0, false).
		AddItem(nil, 0, 1, false).
		AddItem(stopButton, 10, 0, false).
		AddItem(nil, 0, 1, false)

	p.slider = NewSeekSlider().
		SetStep(seekStep).
		SetChangedFunc(ui.screen.Drag).
		SetFinishedFunc(ui.screen.SeekTo)

	p.low = tview.NewTextView().SetTextAlign(tview.AlignLeft)
	p.high = tview.NewTextView().SetTextAlign(tview.AlignRight)
	labels := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(nil, 2, 0, false).
		AddItem(p.low, 0, 1, false).
		AddItem(p.high, 0, 1, false).
		AddItem(nil, 2, 0, false)

	p.controls = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(p.title, 1, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(p.buttons, 1, 0, true).
		AddItem(nil, 1, 0, false).
		AddItem(p.slider, 1, 0, false).
		AddItem(labels, 1, 0, false).
		AddItem(nil, 0, 1, false)

	p.Root = tview.NewFlex().SetDirection(tview.FlexRow)

	// tab cycles between the buttons row and the slider
	p.controls.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() != tcell.KeyTab {
			return event
		}
		if p.slider.HasFocus() {
			ui.app.SetFocus(playButton)
		} else {
			ui.app.SetFocus(p.slider)
		}
		return nil
	})

	return &p
}

func (p *PlaybackPage) makeButton(label string, action func()) *tview.Button {
	return tview.NewButton(label).
		SetStyle(p.buttonStyle).
		SetActivatedStyle(p.buttonStyle.Bold(true)).
		SetSelectedFunc(action)
}

// Update copies the screen state into the widgets. Must run on the UI
// goroutine.
func (p *PlaybackPage) Update() {
	view := p.ui.screen.View()

	if !view.Visible {
		if p.shown {
			p.Root.Clear()
			p.shown = false
		}
		return
	}
	if !p.shown {
		p.Root.AddItem(p.controls, 0, 1, true)
		p.shown = true

		// Root had nothing to focus before
		if name, _ := p.ui.pages.GetFrontPage(); name == PagePlayback {
			p.ui.app.SetFocus(p.controls)
		}
	}

	p.title.SetText("[::b]" + tview.Escape(view.Title))
	p.slider.SetMax(view.Max)
	if !p.slider.IsDragging() {
		p.slider.SetValue(view.CurrentTime)
	}
	p.low.SetText(view.Low)
	p.high.SetText(view.High)
}
