// Package pattern implements token based date patterns such as "dd/MM/yyyy".
//
// Supported tokens:
//   - d, dd: day of month, unpadded or zero padded
//   - M, MM: month number, unpadded or zero padded
//   - MMM, MMMM: abbreviated or full month name in the requested language
//   - yy, yyyy: two or four digit year
//
// Any other letter, digit or underscore is rejected; remaining characters are
// copied as literal separators. Patterns are translated to Go reference
// layouts and rendered through monday so month names follow the language.
package pattern

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"github.com/tartampluch/go-datepicker/internal/config"
)

var (
	// ErrUnsupportedToken is returned for pattern characters with no Go layout equivalent.
	ErrUnsupportedToken = errors.New(config.ErrUnsupportedToken)

	// ErrEmptyPattern is returned when the pattern has no characters at all.
	ErrEmptyPattern = errors.New(config.ErrEmptyPattern)
)

// Compiled is a pattern translated to a Go layout.
type Compiled struct {
	Pattern string
	Layout  string

	HasDay   bool
	HasMonth bool
	HasYear  bool
}

// Compile translates a token pattern into a Go reference layout.
func Compile(p string) (Compiled, error) {
	if p == "" {
		return Compiled{}, ErrEmptyPattern
	}

	c := Compiled{Pattern: p}
	var b strings.Builder

	for i := 0; i < len(p); {
		ch := p[i]
		j := i
		for j < len(p) && p[j] == ch {
			j++
		}
		run := j - i

		switch ch {
		case 'd':
			switch run {
			case 1:
				b.WriteString("2")
			case 2:
				b.WriteString("02")
			default:
				return Compiled{}, fmt.Errorf("%w: %q", ErrUnsupportedToken, p[i:j])
			}
			c.HasDay = true
		case 'M':
			switch run {
			case 1:
				b.WriteString("1")
			case 2:
				b.WriteString("01")
			case 3:
				b.WriteString("Jan")
			case 4:
				b.WriteString("January")
			default:
				return Compiled{}, fmt.Errorf("%w: %q", ErrUnsupportedToken, p[i:j])
			}
			c.HasMonth = true
		case 'y':
			switch run {
			case 1, 4:
				b.WriteString("2006")
			case 2:
				b.WriteString("06")
			default:
				return Compiled{}, fmt.Errorf("%w: %q", ErrUnsupportedToken, p[i:j])
			}
			c.HasYear = true
		default:
			if isLetter(ch) || isDigit(ch) || ch == '_' {
				return Compiled{}, fmt.Errorf("%w: %q", ErrUnsupportedToken, p[i:j])
			}
			b.WriteString(p[i:j])
		}
		i = j
	}

	c.Layout = b.String()
	return c, nil
}

// Format renders t with the pattern. Month names use the given language.
func Format(t time.Time, p, lang string) (string, error) {
	c, err := Compile(p)
	if err != nil {
		return "", err
	}
	return monday.Format(t, c.Layout, Locale(lang)), nil
}

// Parse reads text according to the pattern. Fields absent from the pattern
// are taken from ref, as is the location of the result.
func Parse(text, p string, ref time.Time, lang string) (time.Time, error) {
	c, err := Compile(p)
	if err != nil {
		return time.Time{}, err
	}

	t, err := monday.ParseInLocation(c.Layout, text, ref.Location(), Locale(lang))
	if err != nil {
		return time.Time{}, err
	}

	year, month, day := t.Date()
	if !c.HasYear {
		year = ref.Year()
	}
	if !c.HasMonth {
		month = ref.Month()
	}
	if !c.HasDay {
		day = ref.Day()
	}
	out := time.Date(year, month, day, 0, 0, 0, 0, ref.Location())

	// Filling fields from ref may produce e.g. 31 February.
	if out.Day() != day {
		return time.Time{}, fmt.Errorf("%s: %q", config.ErrDateRange, text)
	}
	return out, nil
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
