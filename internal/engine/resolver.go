package engine

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/pattern"
)

// Resolver turns raw input into a Date.
//
// An explicit Pattern or any Parsers take priority: they are tried in order
// (parsers first, then the pattern) and the first one that parses wins.
// Otherwise the inferred locale Format is used.
type Resolver struct {
	Pattern  string
	Parsers  []string
	Language string
	Format   *LocaleFormat
	Clock    Clock
}

// Candidates returns the patterns tried in order.
func (r *Resolver) Candidates() []string {
	out := make([]string, 0, len(r.Parsers)+1)
	out = append(out, r.Parsers...)
	if r.Pattern != "" {
		out = append(out, r.Pattern)
	}
	return out
}

// Parse resolves text. Empty text returns ok=false and no error: an empty
// field is a valid "no date".
func (r *Resolver) Parse(text string) (d Date, ok bool, err error) {
	if text == "" {
		return Date{}, false, nil
	}

	if candidates := r.Candidates(); len(candidates) > 0 {
		d, err = r.parseCandidates(text, candidates)
	} else if r.Format != nil {
		d, err = r.Format.Parse(text)
	} else {
		err = ErrNoStrategy
	}

	if err != nil {
		return Date{}, false, err
	}
	return d, true, nil
}

func (r *Resolver) parseCandidates(text string, candidates []string) (Date, error) {
	now := r.now()
	shortest := minLength(candidates)

	for _, candidate := range candidates {
		input := text
		if len(text) < shortest {
			input = Complete(text, candidate, now)
			slog.Debug(config.MsgCompleted,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyInput, text,
				config.LogKeyCompleted, input,
				config.LogKeyPattern, candidate,
			)
		}

		t, err := pattern.Parse(input, candidate, now, r.Language)
		if err != nil {
			continue
		}
		return DateOf(t), nil
	}

	return Date{}, fmt.Errorf("%w: %q", ErrNoCandidateMatched, text)
}

func (r *Resolver) now() time.Time {
	if r.Clock == nil {
		return RealClock{}.Now()
	}
	return r.Clock.Now()
}

func minLength(patterns []string) int {
	shortest := math.MaxInt
	for _, p := range patterns {
		if len(p) < shortest {
			shortest = len(p)
		}
	}
	return shortest
}
