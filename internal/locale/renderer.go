// Package locale provides the locale-aware date rendering primitive.
// Rendering is one-directional: a date and a BCP 47 locale go in, the
// locale's short numeric date comes out. No reverse operation is offered.
package locale

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/pattern"
	"golang.org/x/text/language"
)

// ErrUnsupportedLocale is returned when a locale cannot be parsed or matched.
var ErrUnsupportedLocale = errors.New(config.ErrUnsupportedLocale)

// Renderer turns a date into its localized textual form.
type Renderer interface {
	Render(t time.Time, locale string) (string, error)
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(t time.Time, locale string) (string, error)

// Render calls f(t, locale).
func (f RendererFunc) Render(t time.Time, locale string) (string, error) {
	return f(t, locale)
}

// Mark characters some hosts insert around bidirectional text.
const (
	LeftToRightMark = "\u200e"
	RightToLeftMark = "\u200f"
)

// shortDate describes the CLDR short numeric date of one locale.
type shortDate struct {
	tag     string
	pattern string
	mark    string // inserted before every field when non-empty
}

// shortDates holds the CLDR "numeric year, numeric month, numeric day" skeleton
// of each supported locale. The first entry is the matcher default.
var shortDates = []shortDate{
	{tag: "en-US", pattern: "M/d/yyyy"},
	{tag: "en-GB", pattern: "dd/MM/yyyy"},
	{tag: "en-CA", pattern: "yyyy-MM-dd"},
	{tag: "en-AU", pattern: "dd/MM/yyyy"},
	{tag: "de-DE", pattern: "d.M.yyyy"},
	{tag: "fr-FR", pattern: "dd/MM/yyyy"},
	{tag: "fr-CA", pattern: "yyyy-MM-dd"},
	{tag: "es-ES", pattern: "d/M/yyyy"},
	{tag: "it-IT", pattern: "d/M/yyyy"},
	{tag: "pt-BR", pattern: "dd/MM/yyyy"},
	{tag: "pt-PT", pattern: "dd/MM/yyyy"},
	{tag: "nl-NL", pattern: "d-M-yyyy"},
	{tag: "sv-SE", pattern: "yyyy-MM-dd"},
	{tag: "da-DK", pattern: "d.M.yyyy"},
	{tag: "nb-NO", pattern: "d.M.yyyy"},
	{tag: "fi-FI", pattern: "d.M.yyyy"},
	{tag: "pl-PL", pattern: "d.MM.yyyy"},
	{tag: "cs-CZ", pattern: "d. M. yyyy"},
	{tag: "hu-HU", pattern: "yyyy. MM. dd."},
	{tag: "ru-RU", pattern: "dd.MM.yyyy"},
	{tag: "uk-UA", pattern: "dd.MM.yyyy"},
	{tag: "tr-TR", pattern: "dd.MM.yyyy"},
	{tag: "ja-JP", pattern: "yyyy/M/d"},
	{tag: "zh-CN", pattern: "yyyy/M/d"},
	{tag: "ko-KR", pattern: "yyyy. M. d."},
	{tag: "he-IL", pattern: "d.M.yyyy", mark: RightToLeftMark},
}

// CLDRRenderer renders dates from the built-in short date table.
// Locales are resolved with a language matcher, so "de-AT" renders like "de-DE".
type CLDRRenderer struct {
	// Marks enables the directionality marks of locales that carry them.
	Marks bool

	matcher language.Matcher
}

// NewCLDRRenderer builds a renderer over the supported locale table.
func NewCLDRRenderer() *CLDRRenderer {
	tags := make([]language.Tag, len(shortDates))
	for i, sd := range shortDates {
		tags[i] = language.MustParse(sd.tag)
	}
	return &CLDRRenderer{
		Marks:   true,
		matcher: language.NewMatcher(tags),
	}
}

// Render formats t as the locale's short numeric date.
func (r *CLDRRenderer) Render(t time.Time, locale string) (string, error) {
	sd, err := r.lookup(locale)
	if err != nil {
		return "", err
	}

	out, err := pattern.Format(t, sd.pattern, config.DefaultLanguage)
	if err != nil {
		return "", err
	}

	if r.Marks && sd.mark != "" {
		out = insertMarks(out, sd.mark)
	}
	return out, nil
}

// Pattern returns the short date pattern the locale resolves to.
func (r *CLDRRenderer) Pattern(locale string) (string, error) {
	sd, err := r.lookup(locale)
	if err != nil {
		return "", err
	}
	return sd.pattern, nil
}

func (r *CLDRRenderer) lookup(locale string) (shortDate, error) {
	if strings.TrimSpace(locale) == "" {
		return shortDate{}, fmt.Errorf("%w: empty locale", ErrUnsupportedLocale)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return shortDate{}, fmt.Errorf("%w: %q: %v", ErrUnsupportedLocale, locale, err)
	}

	_, idx, conf := r.matcher.Match(tag)
	if conf == language.No {
		return shortDate{}, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	return shortDates[idx], nil
}

// insertMarks prefixes every run of digits with the mark.
func insertMarks(s, mark string) string {
	var b strings.Builder
	inDigits := false
	for _, r := range s {
		digit := r >= '0' && r <= '9'
		if digit && !inDigits {
			b.WriteString(mark)
		}
		inDigits = digit
		b.WriteRune(r)
	}
	return b.String()
}

// Supported lists the locale tags of the built-in table in sorted order.
func Supported() []string {
	out := make([]string, len(shortDates))
	for i, sd := range shortDates {
		out[i] = sd.tag
	}
	sort.Strings(out)
	return out
}
