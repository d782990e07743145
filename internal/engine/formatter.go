package engine

import (
	"time"

	"github.com/tartampluch/go-datepicker/internal/locale"
	"github.com/tartampluch/go-datepicker/internal/pattern"
)

// Formatter turns a Date into display text. An explicit Pattern wins over the Locale.
type Formatter struct {
	Pattern  string
	Locale   string
	Language string
	Renderer locale.Renderer
}

// Format renders d with the pattern, or with the locale renderer when no
// pattern is set. Renderer output is cleaned of non-ASCII marks.
func (f *Formatter) Format(d Date) (string, error) {
	switch {
	case f.Pattern != "":
		return pattern.Format(d.Time(time.Local), f.Pattern, f.Language)
	case f.Locale != "" && f.Renderer != nil:
		out, err := f.Renderer.Render(d.Time(time.Local), f.Locale)
		if err != nil {
			return "", err
		}
		return Clean(out), nil
	default:
		return "", ErrNoStrategy
	}
}
