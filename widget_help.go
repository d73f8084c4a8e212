// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

type HelpWidget struct {
	Root *tview.Flex

	helpBook                *tview.Flex
	leftColumn, rightColumn *tview.TextView

	// visible reflects whether the modal is shown
	visible bool

	// external references
	ui *Ui
}

func (ui *Ui) createHelpWidget() (m *HelpWidget) {
	m = &HelpWidget{
		ui: ui,
	}

	// two help columns side by side
	m.leftColumn = tview.NewTextView().
		SetTextAlign(tview.AlignLeft).
		SetDynamicColors(true)
	m.rightColumn = tview.NewTextView().
		SetTextAlign(tview.AlignLeft).
		SetDynamicColors(true)
	m.helpBook = tview.NewFlex().
		SetDirection(tview.FlexColumn)

	m.Root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(m.helpBook, 0, 1, false)

	m.Root.Box.SetBorder(true).SetTitle(" Help ")

	return
}

func (h *HelpWidget) RenderHelp(context string) {
	h.leftColumn.SetText(helpText("Keys", keyHelp(h.ui.keys)))
	h.rightColumn.SetText(pageHelpText(context))

	h.helpBook.Clear()
	h.helpBook.AddItem(h.leftColumn, 26, 0, false).
		AddItem(h.rightColumn, 0, 1, true) // gets focus for scrolling
}

func pageHelpText(context string) string {
	switch context {
	case PagePlayback:
		return helpText("Playback page", helpPagePlayback)
	case PageLog:
		return helpText("Log", helpPageLog)
	default:
		return ""
	}
}

func helpText(heading, body string) string {
	return "[::b]" + heading + "[::-]\n" + tview.Escape(strings.TrimSpace(body))
}

func keyHelp(keys *KeyMap) string {
	var sb strings.Builder
	for _, c := range helpCommands {
		bound := keys.KeysFor(c.command)
		if len(bound) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%-6s%s\n", strings.Join(bound, "/"), c.text)
	}
	return sb.String()
}
