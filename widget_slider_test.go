package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

type sliderRecorder struct {
	changed  []int
	finished []int
}

func newTestSlider(max int) (*SeekSlider, *sliderRecorder) {
	rec := &sliderRecorder{}
	slider := NewSeekSlider().
		SetMax(max).
		SetChangedFunc(func(v int) { rec.changed = append(rec.changed, v) }).
		SetFinishedFunc(func(v int) { rec.finished = append(rec.finished, v) })
	slider.SetRect(0, 0, 11, 1)
	return slider, rec
}

func noFocus(tview.Primitive) {}

func TestSeekSliderClamp(t *testing.T) {
	slider, _ := newTestSlider(100)

	assert.Equal(t, 0, slider.SetValue(-5).GetValue())
	assert.Equal(t, 100, slider.SetValue(250).GetValue())
	assert.Equal(t, 42, slider.SetValue(42).GetValue())

	// shrinking the range pulls the value back in
	slider.SetMax(10)
	assert.Equal(t, 10, slider.GetValue())

	slider.SetMax(-1)
	assert.Equal(t, 0, slider.GetValue())
}

func TestSeekSliderKeyboard(t *testing.T) {
	slider, rec := newTestSlider(100)
	slider.SetStep(5).SetValue(50)
	handler := slider.InputHandler()

	handler(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), noFocus)
	assert.True(t, slider.IsDragging())
	handler(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), noFocus)
	handler(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), noFocus)
	assert.Equal(t, []int{55, 60, 55}, rec.changed)
	assert.Empty(t, rec.finished)

	handler(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), noFocus)
	assert.False(t, slider.IsDragging())
	assert.Equal(t, []int{55}, rec.finished)

	// Enter without a preceding move does not seek
	handler(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), noFocus)
	assert.Len(t, rec.finished, 1)

	handler(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone), noFocus)
	assert.Equal(t, 100, slider.GetValue())
	handler(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), noFocus)
	assert.Equal(t, 0, slider.GetValue())
}

func TestSeekSliderStepFloor(t *testing.T) {
	slider, rec := newTestSlider(10)
	slider.SetStep(0)

	slider.InputHandler()(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), noFocus)
	assert.Equal(t, []int{1}, rec.changed)
}

func TestSeekSliderMouseDrag(t *testing.T) {
	slider, rec := newTestSlider(100)
	handler := slider.MouseHandler()

	consumed, capture := handler(tview.MouseLeftDown, tcell.NewEventMouse(5, 0, tcell.Button1, tcell.ModNone), noFocus)
	assert.True(t, consumed)
	assert.Equal(t, slider, capture)
	assert.True(t, slider.IsDragging())

	handler(tview.MouseMove, tcell.NewEventMouse(8, 0, tcell.Button1, tcell.ModNone), noFocus)
	assert.Empty(t, rec.finished)

	consumed, capture = handler(tview.MouseLeftUp, tcell.NewEventMouse(10, 0, tcell.ButtonNone, tcell.ModNone), noFocus)
	assert.True(t, consumed)
	assert.Nil(t, capture)
	assert.False(t, slider.IsDragging())

	assert.Equal(t, []int{50, 80, 100}, rec.changed)
	assert.Equal(t, []int{100}, rec.finished)
}

func TestSeekSliderMouseOutside(t *testing.T) {
	slider, rec := newTestSlider(100)

	consumed, _ := slider.MouseHandler()(tview.MouseLeftDown, tcell.NewEventMouse(30, 4, tcell.Button1, tcell.ModNone), noFocus)
	assert.False(t, consumed)
	assert.False(t, slider.IsDragging())
	assert.Empty(t, rec.changed)
}

func TestSeekSliderThumb(t *testing.T) {
	slider, _ := newTestSlider(200)

	assert.Equal(t, 0, slider.thumbAt(11))
	slider.SetValue(100)
	assert.Equal(t, 5, slider.thumbAt(11))
	slider.SetValue(200)
	assert.Equal(t, 10, slider.thumbAt(11))
	assert.Equal(t, 0, slider.thumbAt(1))

	assert.Equal(t, 0, slider.valueAt(0))
	assert.Equal(t, 200, slider.valueAt(10))
}

func TestSeekSliderBlurEndsKeyboardGesture(t *testing.T) {
	slider, rec := newTestSlider(100)
	slider.SetValue(40)
	slider.Focus(noFocus)

	slider.InputHandler()(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), noFocus)
	assert.True(t, slider.IsDragging())

	slider.Blur()
	assert.False(t, slider.IsDragging())
	assert.False(t, slider.HasFocus())
	assert.Equal(t, []int{41}, rec.finished)

	// nothing pending, nothing to finish
	slider.Blur()
	assert.Len(t, rec.finished, 1)
}
