package terminal

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"ShapePong/geometry"
	"ShapePong/input"
	"ShapePong/pixel"

	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func TestWritePixelPaintsHalfBlocks(t *testing.T) {
	sim := simScreen(t, 4, 2)
	scr := New(sim, 4, 4)

	scr.SetDrawWindow(geometry.Rect(1, 0, 1, 1))
	scr.WritePixel(pixel.Red)
	scr.WritePixel(pixel.Blue)

	r, _, style, _ := sim.GetContent(1, 0)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, HalfBlock, r)
	assert.Equal(t, tcellColor(pixel.Red), fg)
	assert.Equal(t, tcellColor(pixel.Blue), bg)

	assert.Equal(t, pixel.Red, scr.Pixel(geometry.Vec(1, 0)))
	assert.Equal(t, pixel.Blue, scr.Pixel(geometry.Vec(1, 1)))
}

func TestWritePixelWrapsInsideWindow(t *testing.T) {
	sim := simScreen(t, 4, 2)
	scr := New(sim, 4, 4)

	scr.SetDrawWindow(geometry.Rect(2, 2, 3, 3))
	for _, c := range []pixel.Color{pixel.Red, pixel.Green, pixel.Blue, pixel.White, pixel.Purple} {
		scr.WritePixel(c)
	}

	// the fifth write wraps to the window's first pixel
	assert.Equal(t, pixel.Purple, scr.Pixel(geometry.Vec(2, 2)))
	assert.Equal(t, pixel.Green, scr.Pixel(geometry.Vec(3, 2)))
	assert.Equal(t, pixel.Blue, scr.Pixel(geometry.Vec(2, 3)))
	assert.Equal(t, pixel.White, scr.Pixel(geometry.Vec(3, 3)))
	assert.Equal(t, pixel.Color(0), scr.Pixel(geometry.Vec(0, 0)))
}

func TestWritePixelIgnoresOffscreen(t *testing.T) {
	sim := simScreen(t, 2, 1)
	scr := New(sim, 2, 2)

	scr.SetDrawWindow(geometry.Rect(5, 5, 5, 5))
	assert.NotPanics(t, func() { scr.WritePixel(pixel.Red) })
	assert.Equal(t, pixel.Color(0), scr.Pixel(geometry.Vec(5, 5)))
}

func TestDrawDigits(t *testing.T) {
	sim := simScreen(t, 10, 4)
	scr := New(sim, 10, 8)

	scr.DrawDigits(3, 5, "1|2", pixel.White, pixel.Black)

	want := []rune{'1', '|', '2'}
	for i, w := range want {
		r, _, style, _ := sim.GetContent(3+i, 2)
		fg, bg, _ := style.Decompose()
		assert.Equal(t, w, r)
		assert.Equal(t, tcellColor(pixel.White), fg)
		assert.Equal(t, tcellColor(pixel.Black), bg)
	}
}

func TestKeyboardMapsKeys(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		ch   rune
		want input.State
	}{
		{tcell.KeyUp, 0, input.Paddle1Up},
		{tcell.KeyDown, 0, input.Paddle1Down},
		{tcell.KeyRune, 'w', input.Paddle2Up},
		{tcell.KeyRune, 's', input.Paddle2Down},
	}

	for _, tt := range tests {
		sim := simScreen(t, 4, 2)
		k := NewKeyboard()
		k.Listen(sim, nil)

		sim.InjectKey(tt.key, tt.ch, tcell.ModNone)

		var got input.State
		require.Eventually(t, func() bool {
			got = k.CurrentState()
			return got != input.Idle
		}, time.Second, time.Millisecond)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, input.Idle, k.CurrentState(), "a key press is reported once")
	}
}

func TestKeyboardIgnoresOtherKeys(t *testing.T) {
	sim := simScreen(t, 4, 2)
	k := NewKeyboard()
	k.Listen(sim, nil)

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)

	var got input.State
	require.Eventually(t, func() bool {
		got = k.CurrentState()
		return got != input.Idle
	}, time.Second, time.Millisecond)
	assert.Equal(t, input.Paddle1Up, got)
}

func TestKeyboardQuit(t *testing.T) {
	for _, key := range []tcell.Key{tcell.KeyEscape, tcell.KeyCtrlC} {
		sim := simScreen(t, 4, 2)
		k := NewKeyboard()
		k.Listen(sim, nil)

		sim.InjectKey(key, 0, tcell.ModNone)
		select {
		case <-k.Quit():
		case <-time.After(time.Second):
			t.Fatalf("key %v did not quit", key)
		}
	}

	sim := simScreen(t, 4, 2)
	k := NewKeyboard()
	k.Listen(sim, nil)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case <-k.Quit():
	case <-time.After(time.Second):
		t.Fatal("q did not quit")
	}
}

func TestKeyboardResize(t *testing.T) {
	sim := simScreen(t, 4, 2)
	var resized int32
	NewKeyboard().Listen(sim, func() { atomic.StoreInt32(&resized, 1) })

	require.NoError(t, sim.PostEvent(tcell.NewEventResize(8, 4)))
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&resized) == 1
	}, time.Second, time.Millisecond)
}

func TestKeyboardKeepsOnlyLatestPress(t *testing.T) {
	sim := simScreen(t, 4, 2)
	handled := make(chan struct{})
	var once sync.Once
	k := NewKeyboard()
	k.Listen(sim, func() { once.Do(func() { close(handled) }) })

	// auto-repeat delivers presses faster than the game polls
	for i := 0; i < 8; i++ {
		sim.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	}
	sim.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	require.NoError(t, sim.PostEvent(tcell.NewEventResize(4, 2)))

	select {
	case <-handled:
	case <-time.After(time.Second):
		t.Fatal("events not handled")
	}

	assert.Equal(t, input.Paddle2Up, k.CurrentState())
	for frame := 0; frame < 20; frame++ {
		assert.Equal(t, input.Idle, k.CurrentState(), "frame %d", frame)
	}
}
