package terminal

import (
	"sync"
	"sync/atomic"

	"ShapePong/input"

	"github.com/gdamore/tcell"
)

// Keyboard turns tcell key events into control states. Only the latest key
// press is kept and it is reported by exactly one CurrentState call.
type Keyboard struct {
	latest   int32
	quit     chan struct{}
	quitOnce sync.Once
	onResize func()
}

func NewKeyboard() *Keyboard {
	return &Keyboard{
		quit: make(chan struct{}),
	}
}

// Listen starts polling events from s. onResize, if set, runs on the poller
// goroutine after every resize. The poller stops when the screen is finalised.
func (k *Keyboard) Listen(s tcell.Screen, onResize func()) {
	k.onResize = onResize

	//監聽鍵盤事件
	go func() {
		for {
			switch ev := s.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				if k.onResize != nil {
					k.onResize()
				}
			case *tcell.EventKey:
				k.handle(ev)
			}
		}
	}()
}

func (k *Keyboard) handle(ev *tcell.EventKey) {
	if isQuit(ev) {
		k.quitOnce.Do(func() { close(k.quit) })
		return
	}
	st := keyState(ev)
	if st == input.Idle {
		return
	}
	atomic.StoreInt32(&k.latest, int32(st))
}

// CurrentState returns the key pressed since the last call, or Idle. Presses
// overwritten before a call are lost.
func (k *Keyboard) CurrentState() input.State {
	return input.State(atomic.SwapInt32(&k.latest, int32(input.Idle)))
}

// Quit is closed once the player asks to leave.
func (k *Keyboard) Quit() <-chan struct{} {
	return k.quit
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// Paddle 1 is the right paddle on the arrow keys, paddle 2 the left one on w/s.
func keyState(ev *tcell.EventKey) input.State {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.Paddle1Up
	case tcell.KeyDown:
		return input.Paddle1Down
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w':
			return input.Paddle2Up
		case 's':
			return input.Paddle2Down
		}
	}
	return input.Idle
}
