package engine

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/locale"
)

// Field names one component of a Date.
type Field int

const (
	FieldDay Field = iota
	FieldMonth
	FieldYear
)

func (f Field) String() string {
	switch f {
	case FieldDay:
		return "day"
	case FieldMonth:
		return "month"
	case FieldYear:
		return "year"
	default:
		return "unknown"
	}
}

// Sentinel is a known value searched for in a locale's reference rendering.
type Sentinel struct {
	Field   Field
	Initial string
	Index   int // -1 until probed
}

// group returns the capture group that replaces the sentinel's literal text.
func (s *Sentinel) group() string {
	if s.Field == FieldYear {
		return config.GroupYear
	}
	return config.GroupDayMonth
}

// LocaleFormat is the parsing expression derived from one locale.
// Capture group i of Regex holds Order[i].
type LocaleFormat struct {
	Locale    string
	Reference string
	Regex     *regexp.Regexp
	Order     []Field
	Complete  bool
}

// Inferer derives LocaleFormats from a Renderer. Its sentinels are created
// once and re-probed on every call.
type Inferer struct {
	Renderer locale.Renderer

	// parts are kept in declaration order: day, month, year.
	parts []*Sentinel
}

// NewInferer creates an Inferer with unprobed sentinels.
func NewInferer(r locale.Renderer) *Inferer {
	return &Inferer{
		Renderer: r,
		parts: []*Sentinel{
			{Field: FieldDay, Initial: config.SentinelDay, Index: -1},
			{Field: FieldMonth, Initial: config.SentinelMonth, Index: -1},
			{Field: FieldYear, Initial: config.SentinelYear, Index: -1},
		},
	}
}

// Sentinels returns the day, month and year sentinels.
func (in *Inferer) Sentinels() []*Sentinel {
	return in.parts
}

// ReferenceDate is the day built from the three sentinel values.
func ReferenceDate() Date {
	day, _ := strconv.Atoi(config.SentinelDay)
	month, _ := strconv.Atoi(config.SentinelMonth)
	year, _ := strconv.Atoi(config.SentinelYear)
	return Date{Day: day, Month: month - 1, Year: year}
}

// Probe renders the reference date for loc and strips non-ASCII marks.
func Probe(r locale.Renderer, loc string) (string, error) {
	out, err := r.Render(ReferenceDate().Time(time.Local), loc)
	if err != nil {
		return "", err
	}
	return Clean(out), nil
}

// Infer builds the LocaleFormat of loc. A rendering that lacks one of the
// sentinels yields a format with Complete set to false; such a format never
// matches any input.
func (in *Inferer) Infer(loc string) (*LocaleFormat, error) {
	reference, err := Probe(in.Renderer, loc)
	if err != nil {
		return nil, err
	}

	complete := true
	for _, part := range in.parts {
		part.Index = strings.Index(reference, part.Initial)
		if part.Index < 0 {
			complete = false
		}
	}

	ordered := make([]*Sentinel, len(in.parts))
	copy(ordered, in.parts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Index < ordered[j].Index
	})

	order := make([]Field, 0, len(ordered))
	for _, part := range ordered {
		if part.Index >= 0 {
			order = append(order, part.Field)
		}
	}

	// Escape first so separators such as "." stay literal, then substitute
	// each sentinel once in declaration order.
	expr := regexp.QuoteMeta(reference)
	for _, part := range in.parts {
		expr = strings.Replace(expr, part.Initial, part.group(), 1)
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrIncompleteFormat, err)
	}

	f := &LocaleFormat{
		Locale:    loc,
		Reference: reference,
		Regex:     re,
		Order:     order,
		Complete:  complete && re.NumSubexp() == len(in.parts),
	}

	slog.Debug(config.MsgFormatInferred,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyLocale, loc,
		config.LogKeyReference, reference,
		config.LogKeyRegex, expr,
		config.LogKeyOrder, order,
	)
	return f, nil
}

// Parse matches text against the format. The month is read one-indexed.
func (f *LocaleFormat) Parse(text string) (Date, error) {
	if f == nil || f.Regex == nil {
		return Date{}, ErrNoLocaleMatch
	}
	if !f.Complete {
		return Date{}, fmt.Errorf("%w: %w", ErrNoLocaleMatch, ErrIncompleteFormat)
	}

	match := f.Regex.FindStringSubmatch(Clean(text))
	if len(match) != len(f.Order)+1 || len(match) != 4 {
		return Date{}, fmt.Errorf("%w: %q", ErrNoLocaleMatch, text)
	}

	var d Date
	for i, field := range f.Order {
		n, err := strconv.Atoi(match[i+1])
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrNoLocaleMatch, text)
		}
		switch field {
		case FieldDay:
			d.Day = n
		case FieldMonth:
			d.Month = n - 1
		case FieldYear:
			d.Year = n
		}
	}

	if !d.Valid() {
		return Date{}, fmt.Errorf("%w: %s: %q", ErrNoLocaleMatch, config.ErrDateRange, text)
	}
	return d, nil
}

// Clean removes every non-ASCII character, such as the directionality marks
// some renderers insert.
func Clean(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0x7F {
			return -1
		}
		return r
	}, s)
}
