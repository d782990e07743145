package pattern_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datepicker/internal/pattern"
)

func TestCompile_Layouts(t *testing.T) {
	tests := []struct {
		pattern string
		layout  string
	}{
		{"dd/MM/yyyy", "02/01/2006"},
		{"M/d/yyyy", "1/2/2006"},
		{"yyyy-MM-dd", "2006-01-02"},
		{"dd.MM.yy", "02.01.06"},
		{"d MMM yyyy", "2 Jan 2006"},
		{"d MMMM yyyy", "2 January 2006"},
		{"yyyy. M. d.", "2006. 1. 2."},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			c, err := pattern.Compile(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.layout, c.Layout)
			assert.True(t, c.HasDay)
			assert.True(t, c.HasMonth)
			assert.True(t, c.HasYear)
		})
	}
}

func TestCompile_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"Empty", ""},
		{"UnknownLetter", "dd/MM/QQ"},
		{"TripleDay", "ddd/MM/yyyy"},
		{"FiveMonths", "dd/MMMMM/yyyy"},
		{"ThreeYears", "dd/MM/yyy"},
		{"DigitLiteral", "dd1MM/yyyy"},
		{"Underscore", "M_d_yyyy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pattern.Compile(tt.pattern)
			assert.Error(t, err)
		})
	}
}

func TestFormat(t *testing.T) {
	ref := time.Date(1987, time.November, 22, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		pattern string
		lang    string
		want    string
	}{
		{"dd/MM/yyyy", "en", "22/11/1987"},
		{"M/d/yy", "en", "11/22/87"},
		{"d MMMM yyyy", "en", "22 November 1987"},
		{"d MMMM yyyy", "fr", "22 novembre 1987"},
		{"dd.MM.yyyy", "unknown", "22.11.1987"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"_"+tt.lang, func(t *testing.T) {
			got, err := pattern.Format(ref, tt.pattern, tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	ref := time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		text    string
		pattern string
		want    time.Time
	}{
		{"DayFirst", "01/02/2020", "dd/MM/yyyy", time.Date(2020, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{"MonthFirstUnpadded", "3/4/2021", "M/d/yyyy", time.Date(2021, time.March, 4, 0, 0, 0, 0, time.UTC)},
		{"ISO", "2021-12-31", "yyyy-MM-dd", time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{"MissingYearFromReference", "22/11", "dd/MM", time.Date(2026, time.November, 22, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pattern.Parse(tt.text, tt.pattern, ref, "en")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	ref := time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		text    string
		pattern string
	}{
		{"ImpossibleDay", "31/02/2020", "dd/MM/yyyy"},
		{"PaddingRequired", "5/1/2020", "dd/MM/yyyy"},
		{"TrailingText", "01/02/2020x", "dd/MM/yyyy"},
		{"WrongSeparator", "01-02-2020", "dd/MM/yyyy"},
		{"BadPattern", "01/02/2020", "dd/QQ/yyyy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pattern.Parse(tt.text, tt.pattern, ref, "en")
			assert.Error(t, err)
		})
	}
}

func TestLocale_Fallback(t *testing.T) {
	assert.Equal(t, pattern.Locale("en"), pattern.Locale("xx"))
	assert.Equal(t, pattern.Locale("fr"), pattern.Locale("FR"))
	assert.NotEqual(t, pattern.Locale("en"), pattern.Locale("de"))
}
