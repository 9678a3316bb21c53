package audio

import (
	"strings"

	"github.com/pkg/errors"
)

// Note periods.
const (
	NoteA  uint16 = 1255
	NoteB  uint16 = 1118
	NoteC  uint16 = 1055
	NoteCS uint16 = 996
	NoteD  uint16 = 940
	NoteEb uint16 = 887
	NoteE  uint16 = 837
	NoteFS uint16 = 746
	NoteG  uint16 = 704
	NoteA2 uint16 = 627
)

type Melody []uint16

var Cannon = Melody{
	NoteA2, NoteFS, NoteG, NoteA2, NoteFS, NoteG, NoteA2,
	NoteA, NoteB, NoteCS, NoteD, NoteE, NoteFS, NoteG, NoteFS,
	Silence, Silence,
}

var FurElise = Melody{
	NoteE, NoteEb, NoteE, NoteEb, NoteE, NoteB, NoteD, NoteC, NoteA,
	Silence, Silence, Silence, Silence,
}

// MelodyByName resolves the audio.melody setting. "none" yields nil.
func MelodyByName(name string) (Melody, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return nil, nil
	case "cannon":
		return Cannon, nil
	case "furelise":
		return FurElise, nil
	}
	return nil, errors.Errorf("unknown melody %q", name)
}

// Sequencer plays a melody one note per Step.
type Sequencer struct {
	buzzer Buzzer
	melody Melody
	note   int
	active bool
}

func NewSequencer(b Buzzer, m Melody) *Sequencer {
	return &Sequencer{buzzer: b, melody: m}
}

// Start rewinds to the first note. A sequencer without a melody stays idle.
func (s *Sequencer) Start() {
	s.note = 0
	s.active = len(s.melody) > 0
}

func (s *Sequencer) Playing() bool {
	return s.active
}

// Step plays the current note and reports whether one was played. The buzzer
// is silenced once the melody runs out.
func (s *Sequencer) Step() bool {
	if !s.active {
		return false
	}
	if s.note >= len(s.melody) {
		s.active = false
		s.buzzer.SetPitch(Silence)
		return false
	}
	s.buzzer.SetPitch(s.melody[s.note])
	s.note++
	return true
}
