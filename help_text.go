// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

// command descriptions for the key help column, in display order
var helpCommands = []struct {
	command string
	text    string
}{
	{CommandPlay, "play stream"},
	{CommandPause, "pause"},
	{CommandStop, "stop"},
	{CommandNext, "next entry"},
	{CommandPrev, "previous entry"},
	{CommandSeekForward, "seek +10 seconds"},
	{CommandSeekBackward, "seek -10 seconds"},
	{CommandPagePlayback, "playback page"},
	{CommandPageLog, "log page"},
	{CommandQuit, "quit"},
}

const helpPagePlayback = `
TAB   switch buttons/slider
ENTER press button
slider
  LEFT/RIGHT move
  HOME/END   move to start/end
  ENTER      seek to slider
mouse: drag the slider, release to seek
`

const helpPageLog = `
newest lines are on top
`
