package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/go-datepicker/internal/config"
)

// Complete pads a partially typed date so that it can be parsed with pattern p.
// Missing leading zeros are added, an absent month or day is taken from now,
// a two digit year is expanded and an absent year is taken from now.
//
// The heuristic assumes the day and month precede the year. Patterns with
// month names or without a separator return the input unchanged.
func Complete(input, p string, now time.Time) string {
	if strings.Contains(strings.ToUpper(p), config.TokenFullMonth) {
		return input
	}
	sep, ok := separator(p)
	if !ok {
		return input
	}

	rest := input
	result := ""

	for count := 2; count > 0; count-- {
		switch {
		case len(rest) > 2 && rest[1] == sep:
			if doubleDigit(p, len(result)) {
				result += "0"
			}
			result += rest[:1] + string(sep)
			rest = rest[2:]
		case len(rest) > 2 && rest[2] == sep:
			result += rest[:2] + string(sep)
			rest = rest[3:]
		case len(rest) > 1:
			result += rest[:2] + string(sep)
			rest = rest[2:]
		case len(rest) == 1:
			if doubleDigit(p, len(result)) {
				result += "0"
			}
			result += rest + string(sep)
			rest = ""
		case count == 1:
			result = appendMonthOrDay(p, result, now, sep)
		}
	}

	switch len(rest) {
	case 2:
		if yy, err := strconv.Atoi(rest); err == nil {
			result += strconv.Itoa(millennium(now.Year()) + yy)
		} else {
			result += rest
		}
	case 0:
		result = appendYear(p, result, now)
	}
	return result
}

// separator returns the first '-', '.' or '/' of the pattern.
func separator(p string) (byte, bool) {
	for i := 0; i < len(p); i++ {
		if p[i] > ',' && p[i] < '0' {
			return p[i], true
		}
	}
	return 0, false
}

// doubleDigit reports whether the pattern holds a two letter day or month token at pos.
func doubleDigit(p string, pos int) bool {
	if pos+1 >= len(p) {
		return false
	}
	c := upper(p[pos])
	return (c == 'D' || c == 'M') && p[pos] == p[pos+1]
}

func appendMonthOrDay(p, result string, now time.Time, sep byte) string {
	pos := len(result)
	if pos >= len(p) {
		return result
	}

	var v int
	switch upper(p[pos]) {
	case 'M':
		v = int(now.Month())
	case 'D':
		v = now.Day()
	default:
		return result
	}

	if v < 10 && doubleDigit(p, pos) {
		result += "0"
	}
	return result + strconv.Itoa(v) + string(sep)
}

func appendYear(p, result string, now time.Time) string {
	switch {
	case strings.Contains(p, config.TokenLongYear):
		return result + strconv.Itoa(now.Year())
	case strings.Contains(p, config.TokenShortYear):
		return result + fmt.Sprintf("%02d", now.Year()%100)
	}
	return result
}

// millennium rounds year to the nearest thousand.
func millennium(year int) int {
	return (year + 500) / 1000 * 1000
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
