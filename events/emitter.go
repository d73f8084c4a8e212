// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package events

import (
	"sync"

	"github.com/google/uuid"
)

// Handler receives the payload of an emitted event.
type Handler func(payload interface{})

// Subscription identifies one registered handler. The zero value is not
// registered anywhere and may be passed to Unsubscribe safely.
type Subscription struct {
	name string
	id   uuid.UUID
}

func (s Subscription) Name() string {
	return s.name
}

type listener struct {
	id      uuid.UUID
	handler Handler
}

// Emitter is a process-wide publish/subscribe channel for player events.
// Handlers run on the emitting goroutine, in subscription order.
type Emitter struct {
	mu        sync.RWMutex
	listeners map[string][]listener
}

func NewEmitter() *Emitter {
	return &Emitter{
		listeners: make(map[string][]listener),
	}
}

func (e *Emitter) Subscribe(name string, handler Handler) Subscription {
	sub := Subscription{name: name, id: uuid.New()}

	e.mu.Lock()
	e.listeners[name] = append(e.listeners[name], listener{id: sub.id, handler: handler})
	e.mu.Unlock()

	return sub
}

// Unsubscribe removes the handler behind sub. Removing an unknown or already
// removed subscription is a no-op.
func (e *Emitter) Unsubscribe(sub Subscription) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ls := e.listeners[sub.name]
	for i, l := range ls {
		if l.id == sub.id {
			e.listeners[sub.name] = append(ls[:i:i], ls[i+1:]...)
			break
		}
	}
	if len(e.listeners[sub.name]) == 0 {
		delete(e.listeners, sub.name)
	}
}

// Emit delivers payload to every handler subscribed to name.
func (e *Emitter) Emit(name string, payload interface{}) {
	e.mu.RLock()
	ls := make([]listener, len(e.listeners[name]))
	copy(ls, e.listeners[name])
	e.mu.RUnlock()

	for _, l := range ls {
		l.handler(payload)
	}
}

func (e *Emitter) ListenerCount(name string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners[name])
}
