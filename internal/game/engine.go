// Package game implements the timed mini-game assessments. A single Engine
// drives every variant; the variants differ only in the Generator that
// produces challenges and judges answers.
package game

import "math"

// State is the lifecycle of a game round.
type State int

const (
	Running State = iota
	Finished
)

// DefaultDuration is the countdown length in seconds.
const DefaultDuration = 30

// Challenge is one round of a game: the text shown to the player, optional
// selectable candidates, and the expected answer. Answer is for judging and
// must not be displayed.
type Challenge struct {
	Prompt  string
	Options []string
	Answer  string
}

// Generator produces challenges and judges answers for one game variant.
type Generator interface {
	// Next returns a fresh challenge, or ok=false when the variant's pool
	// is exhausted and the round should end early.
	Next() (ch Challenge, ok bool)
	// Check reports whether input answers the challenge.
	Check(ch Challenge, input string) bool
}

// Config configures an Engine.
type Config struct {
	TestName string
	Duration int // seconds; DefaultDuration when zero
	Gen      Generator
}

// Result is the score/miss/accuracy triple a finished round produces.
type Result struct {
	TestName string
	Score    int
	Misses   int
	Accuracy float64
}

// Engine is the shared state machine behind every game variant. It starts
// Running with a challenge already presented and reaches Finished when the
// countdown hits zero or the generator runs dry. Finished is terminal.
type Engine struct {
	name      string
	gen       Generator
	remaining int
	score     int
	misses    int
	state     State
	current   Challenge
}

// New creates an engine in the Running state with its first challenge.
func New(cfg Config) *Engine {
	duration := cfg.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}

	e := &Engine{
		name:      cfg.TestName,
		gen:       cfg.Gen,
		remaining: duration,
		state:     Running,
	}

	ch, ok := e.gen.Next()
	if !ok {
		e.state = Finished
		return e
	}
	e.current = ch

	return e
}

func (e *Engine) State() State       { return e.state }
func (e *Engine) TestName() string   { return e.name }
func (e *Engine) Current() Challenge { return e.current }
func (e *Engine) Remaining() int     { return e.remaining }
func (e *Engine) Score() int         { return e.score }
func (e *Engine) Misses() int        { return e.misses }

// Tick advances the countdown by one second. Reaching zero moves the engine
// to Finished; further ticks are no-ops.
func (e *Engine) Tick() {
	if e.state != Running {
		return
	}

	e.remaining--
	if e.remaining <= 0 {
		e.remaining = 0
		e.state = Finished
	}
}

// Answer classifies the input against the current challenge, updates the
// score or miss count, and presents a fresh challenge. It reports whether
// the answer was correct. Answers after Finished are ignored.
func (e *Engine) Answer(input string) bool {
	if e.state != Running {
		return false
	}

	correct := e.gen.Check(e.current, input)
	if correct {
		e.score++
	} else {
		e.misses++
	}

	ch, ok := e.gen.Next()
	if !ok {
		e.state = Finished
		return correct
	}
	e.current = ch

	return correct
}

// Accuracy returns score/(score+misses)*100 rounded to two decimals, or 0
// when no attempts were made.
func (e *Engine) Accuracy() float64 {
	total := e.score + e.misses
	if total == 0 {
		return 0
	}
	return math.Round(float64(e.score)/float64(total)*100*100) / 100
}

// Result returns the finished round's submission payload.
func (e *Engine) Result() Result {
	return Result{
		TestName: e.name,
		Score:    e.score,
		Misses:   e.misses,
		Accuracy: e.Accuracy(),
	}
}
