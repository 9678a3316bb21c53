// Package game runs the pong loop: a ticker goroutine issues advance commands,
// the game goroutine applies input, advances the ball and repaints.
package game

import (
	"sync"
	"sync/atomic"
	"time"

	"ShapePong/audio"
	"ShapePong/config"
	"ShapePong/core"
	"ShapePong/geometry"
	"ShapePong/input"
	"ShapePong/logger"
	"ShapePong/pixel"
	"ShapePong/render"
	"ShapePong/scene"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const Player1Label = "Player 1"
const Player2Label = "Player 2"

// TextOverlay draws text over the pixel surface.
type TextOverlay interface {
	DrawDigits(x, y int, text string, fg, bg pixel.Color)
}

// Devices are the game's peripherals. Text is optional, a missing Input never
// moves a paddle and a missing Buzzer only logs.
type Devices struct {
	Display render.Display
	Text    TextOverlay
	Input   input.Source
	Buzzer  audio.Buzzer
}

type Game struct {
	settings   *config.Settings
	layout     *Layout
	engine     *core.Engine
	state      *core.State
	compositor *render.Compositor
	text       TextOverlay
	input      input.Source
	melody     *audio.Sequencer

	advance chan struct{}
	redraw  chan struct{}
	stop    chan struct{}
	done    chan struct{}

	stopOnce sync.Once
	ticks    uint64
	dropped  uint64
}

func New(s *config.Settings, d Devices) (*Game, error) {
	if d.Display == nil {
		return nil, errors.New("no display")
	}
	rule, err := core.ParseScoreRule(s.Score.Rule)
	if err != nil {
		return nil, errors.Wrap(err, "score.rule")
	}
	melody, err := audio.MelodyByName(s.Audio.Melody)
	if err != nil {
		return nil, errors.Wrap(err, "audio.melody")
	}
	layout, err := NewLayout(s)
	if err != nil {
		return nil, err
	}

	src := d.Input
	if src == nil {
		src = input.None{}
	}

	rules := core.Rules{PaddleMargin: s.Paddle.Margin, ServeSpeed: s.Ball.Serve, ScoreRule: rule}
	screen := geometry.Rect(0, 0, s.Screen.Width-1, s.Screen.Height-1)
	buzzer := d.Buzzer
	if buzzer == nil {
		buzzer = &audio.LogBuzzer{}
	}

	return &Game{
		settings:   s,
		layout:     layout,
		engine:     core.NewEngine(layout.Scene, buzzer, rules),
		state:      core.NewState(layout.Fence),
		compositor: render.NewCompositor(d.Display, screen, s.Color.Background),
		text:       d.Text,
		input:      src,
		melody:     audio.NewSequencer(buzzer, melody),
		advance:    make(chan struct{}, 1),
		redraw:     make(chan struct{}, 1),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}, nil
}

func (g *Game) Layout() *Layout {
	return g.layout
}

// Score is only safe to read from the game goroutine or after Run returned.
func (g *Game) Score() core.Score {
	return g.state.Score
}

// Dropped counts advance commands skipped because one was still pending.
func (g *Game) Dropped() uint64 {
	return atomic.LoadUint64(&g.dropped)
}

// Tick is the timer interrupt: every Tick.PerFrame ticks it posts an advance
// command, unless the previous one has not been consumed yet.
func (g *Game) Tick() {
	n := atomic.AddUint64(&g.ticks, 1)
	if n%uint64(g.settings.Tick.PerFrame) != 0 {
		return
	}
	select {
	case g.advance <- struct{}{}:
	default:
		atomic.AddUint64(&g.dropped, 1)
		logger.Log.Debug(logger.FrameDroppedMsg, logrus.Fields{"tick": n})
	}
}

// RequestRedraw asks for a full repaint, e.g. after the terminal was resized.
func (g *Game) RequestRedraw() {
	select {
	case g.redraw <- struct{}{}:
	default:
	}
}

// Step runs one advance: one input state, one ball step, one melody note.
func (g *Game) Step() core.Outcome {
	l := g.layout
	core.ApplyInput(g.input.CurrentState(), l.Paddle1, l.Paddle2)

	out := g.engine.Advance(l.Ball, l.Paddle1, l.Paddle2, g.state)
	g.report(out)

	if out.Wrapped {
		g.melody.Start()
		if g.melody.Playing() {
			logger.Log.Info(logger.MelodyStartMsg, logrus.Fields{"melody": g.settings.Audio.Melody})
		}
	}
	g.melody.Step()
	return out
}

func (g *Game) report(out core.Outcome) {
	fields := logrus.Fields{"x": out.Position.X, "y": out.Position.Y, "vx": out.Velocity.X, "vy": out.Velocity.Y}
	if out.Paddle != 0 {
		logger.Log.Debug(logger.PaddleHitMsg, fields, logrus.Fields{"paddle": out.Paddle})
	}
	for _, axis := range out.Walls {
		logger.Log.Debug(logger.WallHitMsg, fields, logrus.Fields{"axis": axis.String()})
	}
	if out.Scored != core.EdgeNone {
		logger.Log.Info(logger.ScoreMsg, logrus.Fields{"edge": out.Scored.String(), "score": out.Score.String()})
	}
	if out.Wrapped {
		logger.Log.Info(logger.ScoreWrapMsg)
	}
}

// Render commits the ball and both paddles and repaints what they uncovered,
// then the whole screen if a full repaint is pending, then the score line.
// It returns the number of pixels written.
func (g *Game) Render() int {
	if !g.state.Redraw && !g.state.FullRedraw {
		return 0
	}
	l := g.layout

	n := 0
	for _, set := range []scene.MovingSet{l.Ball.Set, l.Paddle1.Set, l.Paddle2.Set} {
		n += g.compositor.CommitAndRedraw(l.Scene, set)
	}
	if g.state.FullRedraw {
		n += g.compositor.RedrawAll(l.Scene)
		g.state.FullRedraw = false
		logger.Log.Debug(logger.FullRedrawMsg)
	}
	g.state.Redraw = false

	g.drawScore()
	g.compositor.Flush()
	return n
}

func (g *Game) drawScore() {
	if g.text == nil {
		return
	}
	c := g.settings.Color
	fence := g.layout.Fence
	score := g.state.Score.String()

	x := g.compositor.Screen().Center().X - runewidth.StringWidth(score)/2
	g.text.DrawDigits(x, 0, score, c.Text, c.Background)
	g.text.DrawDigits(fence.TopLeft.X, 0, Player2Label, c.Paddle2, c.Background)
	g.text.DrawDigits(fence.BottomRight.X-runewidth.StringWidth(Player1Label)+1, 0, Player1Label, c.Paddle1, c.Background)
}

// Run paints the first frame, starts the ticker and serves advance commands
// and redraw requests until Stop is called.
func (g *Game) Run() {
	defer close(g.done)

	logger.Log.Info(logger.GameStartMsg, logrus.Fields{
		"width":    g.settings.Screen.Width,
		"height":   g.settings.Screen.Height,
		"interval": g.settings.Tick.Interval.String(),
		"perFrame": g.settings.Tick.PerFrame,
	})

	g.state.FullRedraw = true
	g.Render()

	ticker := time.NewTicker(g.settings.Tick.Interval)
	defer ticker.Stop()
	go func() {
		for {
			select {
			case <-g.stop:
				return
			case <-ticker.C:
				g.Tick()
			}
		}
	}()

	for {
		select {
		case <-g.stop:
			logger.Log.Info(logger.GameStopMsg, logrus.Fields{
				"score":   g.state.Score.String(),
				"dropped": g.Dropped(),
			})
			return
		case <-g.advance:
			g.Step()
			g.Render()
		case <-g.redraw:
			g.state.FullRedraw = true
			g.Render()
		}
	}
}

func (g *Game) Stop() {
	g.stopOnce.Do(func() { close(g.stop) })
}

// Done is closed when Run has returned.
func (g *Game) Done() <-chan struct{} {
	return g.done
}
