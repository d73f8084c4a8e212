// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// commands a key can be bound to
const (
	CommandPagePlayback = "page-playback"
	CommandPageLog      = "page-log"
	CommandHelp         = "help"
	CommandQuit         = "quit"
	CommandPlay         = "play"
	CommandPause        = "pause"
	CommandStop         = "stop"
	CommandNext         = "next"
	CommandPrev         = "prev"
	CommandSeekForward  = "seek-forward"
	CommandSeekBackward = "seek-backward"
)

// keybinding context read from the keys.config file
const keyContextGlobal = "Global"

var knownCommands = map[string]bool{
	CommandPagePlayback: true,
	CommandPageLog:      true,
	CommandHelp:         true,
	CommandQuit:         true,
	CommandPlay:         true,
	CommandPause:        true,
	CommandStop:         true,
	CommandNext:         true,
	CommandPrev:         true,
	CommandSeekForward:  true,
	CommandSeekBackward: true,
}

var defaultBindings = map[rune]string{
	'1': CommandPagePlayback,
	'2': CommandPageLog,
	'?': CommandHelp,
	'Q': CommandQuit,
	'p': CommandPlay,
	' ': CommandPause,
	'P': CommandStop,
	'n': CommandNext,
	'>': CommandNext,
	'b': CommandPrev,
	'<': CommandPrev,
	'.': CommandSeekForward,
	',': CommandSeekBackward,
}

// KeyMap resolves key runes to commands.
type KeyMap struct {
	bindings map[rune]string
}

func NewKeyMap() *KeyMap {
	k := &KeyMap{bindings: make(map[rune]string, len(defaultBindings))}
	for r, cmd := range defaultBindings {
		k.bindings[r] = cmd
	}
	return k
}

// LoadKeyMap reads the Global table of a keybinding file:
//
//	[Global]
//	"j" = "next"
//	"k" = "prev"
//
// A command bound in the file loses its default keys; everything else keeps
// the defaults.
func LoadKeyMap(path string) (*KeyMap, error) {
	var contexts map[string]map[string]string
	if _, err := toml.DecodeFile(path, &contexts); err != nil {
		return nil, fmt.Errorf("[LoadKeyMap] %w", err)
	}

	keys := NewKeyMap()
	global := contexts[keyContextGlobal]

	parsed := make(map[rune]string, len(global))
	for key, cmd := range global {
		r, err := parseKey(key)
		if err != nil {
			return nil, fmt.Errorf("[LoadKeyMap] %w", err)
		}
		if !knownCommands[cmd] {
			return nil, fmt.Errorf("[LoadKeyMap] unknown command %q for key %q", cmd, key)
		}
		parsed[r] = cmd
	}

	for _, cmd := range parsed {
		keys.unbind(cmd)
	}
	for r, cmd := range parsed {
		keys.bindings[r] = cmd
	}
	return keys, nil
}

func parseKey(key string) (rune, error) {
	if key == "space" {
		return ' ', nil
	}
	if utf8.RuneCountInString(key) != 1 {
		return 0, fmt.Errorf("invalid key %q, want a single character or \"space\"", key)
	}
	r, _ := utf8.DecodeRuneInString(key)
	return r, nil
}

func (k *KeyMap) unbind(cmd string) {
	for r, bound := range k.bindings {
		if bound == cmd {
			delete(k.bindings, r)
		}
	}
}

// Command returns the command bound to r.
func (k *KeyMap) Command(r rune) (string, bool) {
	cmd, ok := k.bindings[r]
	return cmd, ok
}

// KeysFor returns the keys bound to cmd in display form, sorted.
func (k *KeyMap) KeysFor(cmd string) []string {
	var keys []string
	for r, bound := range k.bindings {
		if bound != cmd {
			continue
		}
		if r == ' ' {
			keys = append(keys, "SPACE")
		} else {
			keys = append(keys, string(r))
		}
	}
	sort.Strings(keys)
	return keys
}
