// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package mpvplayer

// EventEmitter is where the player publishes position and state events.
type EventEmitter interface {
	Emit(name string, payload interface{})
}
