package picker_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/engine"
	"github.com/tartampluch/go-datepicker/internal/locale"
	"github.com/tartampluch/go-datepicker/internal/picker"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockWidget simulates the host date field using testify/mock.
type MockWidget struct {
	mock.Mock
}

func (m *MockWidget) InputValue() (string, bool) {
	args := m.Called()
	return args.String(0), args.Bool(1)
}

func (m *MockWidget) StoredValue() string {
	return m.Called().String(0)
}

func (m *MockWidget) SetSelectedDate(d engine.Date) {
	m.Called(d)
}

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

var today = MockClock{CurrentTime: time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)}

// emptyWidget returns a widget whose field holds no text.
func emptyWidget() *MockWidget {
	w := new(MockWidget)
	w.On("InputValue").Return("", true)
	return w
}

func newPicker(t *testing.T) *picker.Picker {
	t.Helper()
	return picker.New(emptyWidget(), locale.NewCLDRRenderer(), today)
}

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func TestNew_Defaults(t *testing.T) {
	p := newPicker(t)

	cfg := p.Config()
	assert.Equal(t, config.DefaultLocale, cfg.Locale)
	assert.Empty(t, cfg.Pattern)
	assert.Empty(t, cfg.Parsers)
	assert.Equal(t, "en", p.Language())
	require.NotNil(t, p.LocaleFormat())
	assert.True(t, p.LocaleFormat().Complete)
}

func TestPicker_EndToEndLocale(t *testing.T) {
	p := newPicker(t)
	p.SetLocale("en-US")

	f := p.LocaleFormat()
	assert.Equal(t, `(\d{1,2})/(\d{1,2})/(\d{4})`, f.Regex.String())
	assert.Equal(t, []engine.Field{engine.FieldMonth, engine.FieldDay, engine.FieldYear}, f.Order)

	d, ok, err := p.ParseDate("3/4/2021")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, engine.Date{Day: 4, Month: 2, Year: 2021}, d)

	text, err := p.FormatDate(d)
	require.NoError(t, err)
	assert.Equal(t, "3/4/2021", text)
}

func TestSetLocale_InvalidFallsBack(t *testing.T) {
	p := newPicker(t)
	p.SetLocale("de-DE")
	require.Equal(t, "de-DE", p.Config().Locale)

	p.SetLocale("xx-INVALID")
	assert.Equal(t, config.DefaultLocale, p.Config().Locale)
	assert.Equal(t, "en", p.Language())
}

func TestSetLocale_Idempotent(t *testing.T) {
	p := newPicker(t)

	p.SetLocale("fr-FR")
	first := p.LocaleFormat()
	firstText, err := p.FormatDate(engine.Date{Day: 3, Month: 4, Year: 2021})
	require.NoError(t, err)

	p.SetLocale("fr-FR")
	second := p.LocaleFormat()
	secondText, err := p.FormatDate(engine.Date{Day: 3, Month: 4, Year: 2021})
	require.NoError(t, err)

	assert.Equal(t, first.Regex.String(), second.Regex.String())
	assert.Equal(t, first.Order, second.Order)
	assert.Equal(t, firstText, secondText)
	assert.Equal(t, "03/05/2021", secondText)
}

func TestSetLocale_RecomputesFormat(t *testing.T) {
	p := newPicker(t)

	p.SetLocale("en-US")
	us := p.LocaleFormat()
	p.SetLocale("de-DE")
	de := p.LocaleFormat()

	assert.NotSame(t, us, de, "A locale change must never reuse the previous format")
	assert.Equal(t, "de", p.Language())

	d, _, err := p.ParseDate("4.3.2021")
	require.NoError(t, err)
	assert.Equal(t, engine.Date{Day: 4, Month: 2, Year: 2021}, d)

	_, _, err = p.ParseDate("3/4/2021")
	assert.ErrorIs(t, err, engine.ErrNoLocaleMatch)
}

func TestSetPattern_PrecedenceAndDefault(t *testing.T) {
	p := newPicker(t)
	p.SetLocale("en-US")
	p.SetPattern("dd/MM/yyyy")

	d, ok, err := p.ParseDate("01/02/2020")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, engine.Date{Day: 1, Month: 1, Year: 2020}, d, "Explicit pattern wins over the locale")

	text, err := p.FormatDate(d)
	require.NoError(t, err)
	assert.Equal(t, "01/02/2020", text)

	p.SetPattern("")
	assert.Equal(t, config.DefaultPattern, p.Config().Pattern)
}

func TestSetParsers(t *testing.T) {
	p := newPicker(t)
	p.SetPattern("dd/MM/yyyy")

	patterns := []string{"yyyy-MM-dd", "dd.MM.yyyy"}
	p.SetParsers(patterns...)
	patterns[0] = "mutated"

	assert.Equal(t, []string{"yyyy-MM-dd", "dd.MM.yyyy"}, p.Config().Parsers, "Parsers are stored as a copy")

	for text, want := range map[string]engine.Date{
		"2020-03-04": {Day: 4, Month: 2, Year: 2020},
		"04.03.2020": {Day: 4, Month: 2, Year: 2020},
		"04/03/2020": {Day: 4, Month: 2, Year: 2020},
	} {
		d, _, err := p.ParseDate(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, d, text)
	}

	_, _, err := p.ParseDate("March 4th")
	assert.ErrorIs(t, err, engine.ErrNoCandidateMatched)

	p.SetParsers()
	assert.Empty(t, p.Config().Parsers)
}

func TestParseDate_Completion(t *testing.T) {
	p := newPicker(t)
	p.SetPattern("dd/MM/yyyy")

	d, ok, err := p.ParseDate("5")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, d.Day)
	assert.Equal(t, engine.Date{Day: 5, Month: 9, Year: 2026}, d)
}

func TestParseDate_EmptyInput(t *testing.T) {
	p := newPicker(t)

	configure := []func(){
		func() {},
		func() { p.SetLocale("ko-KR") },
		func() { p.SetPattern("yyyy-MM-dd") },
		func() { p.SetParsers("d.M.yyyy") },
	}

	for _, step := range configure {
		step()
		d, ok, err := p.ParseDate("")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, engine.Date{}, d)
	}
}

func TestSetLocaleAndPattern(t *testing.T) {
	p := newPicker(t)

	p.SetLocaleAndPattern("de-DE", "yyyy-MM-dd")
	cfg := p.Config()
	assert.Equal(t, "de-DE", cfg.Locale)
	assert.Equal(t, "yyyy-MM-dd", cfg.Pattern)

	// An empty pattern returns to locale parsing.
	p.SetLocaleAndPattern("de-DE", "")
	d, _, err := p.ParseDate("4.3.2021")
	require.NoError(t, err)
	assert.Equal(t, engine.Date{Day: 4, Month: 2, Year: 2021}, d)

	p.SetLocaleAndPattern("xx-INVALID", "")
	assert.Equal(t, config.DefaultLocale, p.Config().Locale)
}

func TestReconfigure_KeepsSelection(t *testing.T) {
	w := new(MockWidget)
	w.On("InputValue").Return("", true).Once()
	p := picker.New(w, locale.NewCLDRRenderer(), today)
	assert.Equal(t, config.DefaultLocale, p.Baseline())

	// The user typed a US date; switching to German must re-select the same day.
	w.On("InputValue").Return("3/4/2021", true).Once()
	w.On("SetSelectedDate", engine.Date{Day: 4, Month: 2, Year: 2021}).Once()

	p.SetLocale("de-DE")

	w.AssertExpectations(t)
	assert.Equal(t, config.DefaultLocale, p.Baseline(), "Baseline only moves while the field is empty")
}

func TestReconfigure_FallsBackToStoredValue(t *testing.T) {
	w := new(MockWidget)
	w.On("InputValue").Return("", true).Once()
	p := picker.New(w, locale.NewCLDRRenderer(), today)

	w.On("InputValue").Return("", false).Once()
	w.On("StoredValue").Return("12/24/2020").Once()
	w.On("SetSelectedDate", engine.Date{Day: 24, Month: 11, Year: 2020}).Once()

	p.SetLocale("en-GB")

	w.AssertExpectations(t)
}

func TestReconfigure_UnparsableInputKeepsSelection(t *testing.T) {
	w := new(MockWidget)
	w.On("InputValue").Return("", true).Once()
	p := picker.New(w, locale.NewCLDRRenderer(), today)

	w.On("InputValue").Return("not a date", true).Once()
	p.SetLocale("fr-FR")

	w.AssertNotCalled(t, "SetSelectedDate", mock.Anything)
	assert.Equal(t, config.DefaultLocale, p.Baseline())
}

func TestReconfigure_EmptyInputMovesBaseline(t *testing.T) {
	p := newPicker(t)
	p.SetLocale("ja-JP")
	assert.Equal(t, "ja-JP", p.Baseline())
}

func TestHeadless(t *testing.T) {
	p := picker.New(nil, locale.NewCLDRRenderer(), nil)
	p.SetLocale("sv-SE")

	d, ok, err := p.ParseDate("2021-03-04")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, engine.Date{Day: 4, Month: 2, Year: 2021}, d)
}

func TestHandleBlur(t *testing.T) {
	p := newPicker(t)
	assert.NotPanics(t, func() {
		p.HandleBlur("", true)
		p.HandleBlur("", false)
		p.HandleBlur("garbage", true)
	})
}

func TestBind(t *testing.T) {
	p := picker.New(nil, locale.NewCLDRRenderer(), today)

	w := new(MockWidget)
	w.On("InputValue").Return("01/02/2020", true)
	w.On("SetSelectedDate", engine.Date{Day: 2, Month: 0, Year: 2020}).Once()
	p.Bind(w)

	p.SetLocale("fr-FR")
	w.AssertExpectations(t)
}
