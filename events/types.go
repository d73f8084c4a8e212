// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package events

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// event names on the shared channel
const (
	EventUpdatePosition       = "onUpdatePosition"
	EventPlaybackStateChanged = "onPlaybackStateChanged"
)

var ErrNoPosition = errors.New("no position")

// UpdatePosition is the payload of EventUpdatePosition.
// CurrentPosition is reported in seconds, either as a number or as a string.
type UpdatePosition struct {
	CurrentPosition interface{}
}

// Seconds converts the reported position the way an integer parse would:
// fractions are truncated, numeric strings are accepted.
func (u UpdatePosition) Seconds() (int, error) {
	switch v := u.CurrentPosition.(type) {
	case nil:
		return 0, ErrNoPosition
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid position %q: %w", v, err)
		}
		return int(f), nil
	default:
		return cast.ToIntE(v)
	}
}

// PlaybackStateChanged is the payload of EventPlaybackStateChanged.
type PlaybackStateChanged struct {
	State PlaybackState
}
