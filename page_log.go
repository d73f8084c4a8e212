// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"time"

	"github.com/rivo/tview"
)

type LogPage struct {
	Root *tview.Flex

	logList  *tview.List
	maxLines int

	// external refs
	ui *Ui
}

func (ui *Ui) createLogPage(maxLines int) *LogPage {
	if maxLines < 1 {
		maxLines = 100
	}
	logPage := LogPage{
		ui:       ui,
		maxLines: maxLines,
	}

	logPage.logList = tview.NewList().ShowSecondaryText(false)

	logPage.Root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(logPage.logList, 0, 1, true)

	return &logPage
}

func (l *LogPage) Print(line string) {
	l.ui.app.QueueUpdateDraw(func() {
		line := time.Now().Local().Format("(15:04:05) ") + line
		l.logList.InsertItem(0, line, "", 0, nil)

		// Make sure the log list doesn't grow infinitely
		for l.logList.GetItemCount() > l.maxLines {
			l.logList.RemoveItem(-1)
		}
	})
}
