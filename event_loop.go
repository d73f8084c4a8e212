// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

// handle ui updates
func (ui *Ui) guiEventLoop() {
	for {
		select {
		case msg := <-ui.logger.Prints:
			// handle log page output
			ui.logPage.Print(msg)

		case ev := <-ui.playerEvents:
			statusText := formatPlaybackState(ev.State)
			ui.app.QueueUpdateDraw(func() {
				ui.startStopStatus.SetText(statusText)
			})
		}
	}
}
