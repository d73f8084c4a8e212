// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// SeekSlider is a horizontal slider over [0, max]. It reports every
// intermediate value while it is moved and the final value once the gesture
// ends (mouse release or Enter).
type SeekSlider struct {
	*tview.Box

	value    int
	max      int
	step     int
	dragging bool

	trackStyle  tcell.Style
	filledStyle tcell.Style
	thumbStyle  tcell.Style

	changed  func(value int)
	finished func(value int)
}

func NewSeekSlider() *SeekSlider {
	return &SeekSlider{
		Box:  tview.NewBox(),
		max:  1,
		step: 1,

		trackStyle:  tcell.StyleDefault.Foreground(tcell.ColorGray),
		filledStyle: tcell.StyleDefault.Foreground(tcell.ColorRed),
		thumbStyle:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	}
}

func (s *SeekSlider) SetChangedFunc(f func(value int)) *SeekSlider {
	s.changed = f
	return s
}

func (s *SeekSlider) SetFinishedFunc(f func(value int)) *SeekSlider {
	s.finished = f
	return s
}

func (s *SeekSlider) SetStep(step int) *SeekSlider {
	if step < 1 {
		step = 1
	}
	s.step = step
	return s
}

// SetMax sets the upper bound; the lower bound is always 0.
func (s *SeekSlider) SetMax(max int) *SeekSlider {
	if max < 0 {
		max = 0
	}
	s.max = max
	s.value = s.clamp(s.value)
	return s
}

func (s *SeekSlider) SetValue(value int) *SeekSlider {
	s.value = s.clamp(value)
	return s
}

func (s *SeekSlider) GetValue() int {
	return s.value
}

func (s *SeekSlider) IsDragging() bool {
	return s.dragging
}

func (s *SeekSlider) clamp(value int) int {
	if value < 0 {
		return 0
	}
	if value > s.max {
		return s.max
	}
	return value
}

// valueAt maps a screen column inside the slider to a value.
func (s *SeekSlider) valueAt(x int) int {
	rx, _, width, _ := s.GetInnerRect()
	if width <= 1 {
		return 0
	}
	return s.clamp((x - rx) * s.max / (width - 1))
}

// thumbAt maps the current value to a column offset inside the slider.
func (s *SeekSlider) thumbAt(width int) int {
	if s.max <= 0 || width <= 1 {
		return 0
	}
	return s.value * (width - 1) / s.max
}

func (s *SeekSlider) move(value int) {
	s.dragging = true
	s.value = s.clamp(value)
	if s.changed != nil {
		s.changed(s.value)
	}
}

func (s *SeekSlider) finish() {
	if !s.dragging {
		return
	}
	s.dragging = false
	if s.finished != nil {
		s.finished(s.value)
	}
}

// Blur ends a keyboard gesture that was left without Enter.
func (s *SeekSlider) Blur() {
	s.finish()
	s.Box.Blur()
}

func (s *SeekSlider) Draw(screen tcell.Screen) {
	s.Box.DrawForSubclass(screen, s)

	x, y, width, height := s.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	row := y + height/2
	thumb := s.thumbAt(width)
	for i := 0; i < width; i++ {
		switch {
		case i == thumb:
			screen.SetContent(x+i, row, '●', nil, s.thumbStyle)
		case i < thumb:
			screen.SetContent(x+i, row, '━', nil, s.filledStyle)
		default:
			screen.SetContent(x+i, row, '─', nil, s.trackStyle)
		}
	}
}

func (s *SeekSlider) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return s.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyLeft:
			s.move(s.value - s.step)
		case tcell.KeyRight:
			s.move(s.value + s.step)
		case tcell.KeyHome:
			s.move(0)
		case tcell.KeyEnd:
			s.move(s.max)
		case tcell.KeyEnter:
			s.finish()
		}
	})
}

func (s *SeekSlider) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return s.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		x, y := event.Position()

		switch action {
		case tview.MouseLeftDown:
			if !s.InRect(x, y) {
				return false, nil
			}
			setFocus(s)
			s.move(s.valueAt(x))
			// keep receiving events while the button is held
			return true, s

		case tview.MouseMove:
			if s.dragging {
				s.move(s.valueAt(x))
				return true, s
			}

		case tview.MouseLeftUp:
			if s.dragging {
				s.move(s.valueAt(x))
				s.finish()
				return true, nil
			}
		}
		return false, nil
	})
}
