// Package audio drives the piezo buzzer. The buzzer only understands a timer
// period: zero is silence, anything else is a square wave of that period.
package audio

import (
	"sync"

	"ShapePong/logger"

	"github.com/sirupsen/logrus"
)

// Buzzer takes fire-and-forget pitch changes; the last write wins.
type Buzzer interface {
	SetPitch(period uint16)
}

const Silence uint16 = 0

// TimerHz is the clock the periods are counted in.
const TimerHz = 2000000

type Cue int

const (
	CueNone Cue = iota
	CuePaddle1
	CuePaddle2
	CueWall
	CueScore
)

var cuePeriods = map[Cue]uint16{
	CueNone:    Silence,
	CuePaddle1: 5000,
	CuePaddle2: 4000,
	CueWall:    2500,
	CueScore:   2000,
}

func (c Cue) Period() uint16 {
	return cuePeriods[c]
}

func (c Cue) String() string {
	switch c {
	case CuePaddle1:
		return "paddle1"
	case CuePaddle2:
		return "paddle2"
	case CueWall:
		return "wall"
	case CueScore:
		return "score"
	}
	return "none"
}

// Frequency converts a period to Hz, zero for silence.
func Frequency(period uint16) int {
	if period == Silence {
		return 0
	}
	return TimerHz / int(period)
}

// LogBuzzer stands in for the piezo: it remembers the pitch and logs changes.
type LogBuzzer struct {
	mu     sync.Mutex
	period uint16
}

func (b *LogBuzzer) SetPitch(period uint16) {
	b.mu.Lock()
	changed := b.period != period
	b.period = period
	b.mu.Unlock()

	if changed {
		logger.Log.Debug(logger.PitchMsg, logrus.Fields{"period": period, "hz": Frequency(period)})
	}
}

func (b *LogBuzzer) Period() uint16 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.period
}
