// Package greeting drives the multilingual loading screen shown before the
// page fades in.
package greeting

import (
	"context"
	"time"
)

type Greeting struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// Default is the loading screen's greeting order.
var Default = []Greeting{
	{Text: "Hello", Lang: "English"},
	{Text: "नमस्ते", Lang: "Hindi"},
	{Text: "नमस्कार", Lang: "Marathi"},
	{Text: "Bonjour", Lang: "French"},
	{Text: "こんにちは", Lang: "Japanese"},
	{Text: "Hola", Lang: "Spanish"},
	{Text: "Ciao", Lang: "Italian"},
	{Text: "안녕하세요", Lang: "Korean"},
	{Text: "你好", Lang: "Chinese"},
	{Text: "Olá", Lang: "Portuguese"},
}

// Kind of a sequencer step.
type Kind string

const (
	KindShow     Kind = "show"
	KindHide     Kind = "hide"
	KindComplete Kind = "complete"
)

// Step is one transition of the loading screen.
type Step struct {
	Kind     Kind     `json:"kind"`
	Index    int      `json:"index"`
	Greeting Greeting `json:"greeting"`
}

// Sequencer cycles through greetings on fixed timers.
type Sequencer struct {
	Greetings []Greeting
	// Interval between greeting swaps.
	Interval time.Duration
	// FadeOut is the gap between hiding a greeting and showing the next.
	FadeOut time.Duration
	// Linger is the gap between hiding the last greeting and completing.
	Linger time.Duration
	// MaxDuration caps the whole sequence; zero means no cap.
	MaxDuration time.Duration
}

// NewSequencer returns the loading screen timings.
func NewSequencer() *Sequencer {
	return &Sequencer{
		Greetings:   Default,
		Interval:    time.Second,
		FadeOut:     500 * time.Millisecond,
		Linger:      time.Second,
		MaxDuration: 2500 * time.Millisecond,
	}
}

// Run emits the first greeting, then keeps each greeting visible for a full
// Interval before a Hide and, FadeOut later, the next Show. After the last
// greeting it emits Hide, waits Linger and emits Complete. It returns when the
// sequence completes or ctx is done; a cancelled run emits no Complete.
// Every timer is stopped before Run returns.
func (s *Sequencer) Run(ctx context.Context, emit func(Step)) error {
	if len(s.Greetings) == 0 {
		emit(Step{Kind: KindComplete})
		return nil
	}

	var deadline <-chan time.Time
	if s.MaxDuration > 0 {
		limit := time.NewTimer(s.MaxDuration)
		defer limit.Stop()
		deadline = limit.C
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// pending fires the delayed half of a transition.
	pending := time.NewTimer(time.Hour)
	pending.Stop()
	defer pending.Stop()

	current := 0
	finishing := false
	emit(Step{Kind: KindShow, Index: 0, Greeting: s.Greetings[0]})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-deadline:
			emit(Step{Kind: KindComplete, Index: current})
			return nil

		case <-ticker.C:
			if finishing {
				continue
			}
			emit(Step{Kind: KindHide, Index: current})
			// the next greeting restarts the interval once it is shown
			ticker.Stop()
			if current < len(s.Greetings)-1 {
				pending.Reset(s.FadeOut)
			} else {
				finishing = true
				pending.Reset(s.Linger)
			}

		case <-pending.C:
			if finishing {
				emit(Step{Kind: KindComplete, Index: current})
				return nil
			}
			current++
			emit(Step{Kind: KindShow, Index: current, Greeting: s.Greetings[current]})
			ticker.Reset(s.Interval)
		}
	}
}
