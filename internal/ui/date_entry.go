package ui

import (
	"errors"

	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/engine"
	"github.com/tartampluch/go-datepicker/internal/locale"
	"github.com/tartampluch/go-datepicker/internal/picker"
)

// DateEntry is a text field that parses and formats dates through a picker.Picker.
// It embeds widget.Entry to inherit all standard behavior.
type DateEntry struct {
	widget.Entry

	Picker     *picker.Picker
	Translator *Translator

	// Required marks an empty field as invalid when focus is lost.
	Required bool

	// OnDateSelected is called whenever the selection changes. ok is false when it was cleared.
	OnDateSelected func(d engine.Date, ok bool)

	selected  *engine.Date
	committed string
	invalid   bool
}

// NewDateEntry creates a DateEntry configured for config.DefaultLocale.
func NewDateEntry(r locale.Renderer, clock engine.Clock, tr *Translator) *DateEntry {
	entry := &DateEntry{Translator: tr}
	entry.ExtendBaseWidget(entry)
	entry.Picker = picker.New(entry, r, clock)
	entry.Validator = entry.validate
	entry.refreshHints()
	return entry
}

// InputValue returns the typed text. A fyne entry is always readable.
func (e *DateEntry) InputValue() (string, bool) {
	return e.Text, true
}

// StoredValue returns the text of the last committed selection.
func (e *DateEntry) StoredValue() string {
	return e.committed
}

// SetSelectedDate selects d and displays it with the active configuration.
func (e *DateEntry) SetSelectedDate(d engine.Date) {
	text, err := e.Picker.FormatDate(d)
	if err != nil {
		return
	}
	e.selected = &d
	e.committed = text
	e.invalid = false
	e.SetText(text)
	e.notify(d, true)
}

// Selected returns the current selection.
func (e *DateEntry) Selected() (engine.Date, bool) {
	if e.selected == nil {
		return engine.Date{}, false
	}
	return *e.selected, true
}

// Invalid reports whether the last commit rejected the text.
func (e *DateEntry) Invalid() bool {
	return e.invalid
}

// FocusLost commits the typed text when the user leaves the field.
func (e *DateEntry) FocusLost() {
	e.Entry.FocusLost()
	e.Commit()
}

// Commit parses the text and updates the selection. Unparsable text keeps
// the previous selection and marks the field invalid.
func (e *DateEntry) Commit() {
	d, ok, err := e.Picker.ParseDate(e.Text)
	switch {
	case err != nil:
		e.invalid = true
	case !ok:
		e.invalid = e.Required
		if e.selected != nil {
			e.selected = nil
			e.committed = ""
			e.notify(engine.Date{}, false)
		}
	default:
		e.SetSelectedDate(d)
	}
	_ = e.Validate()
	e.Picker.HandleBlur(e.Text, e.invalid)
}

// SetLocale forwards to the picker and refreshes the placeholder.
func (e *DateEntry) SetLocale(loc string) {
	e.Picker.SetLocale(loc)
	e.refreshHints()
}

// SetPattern forwards to the picker and refreshes the placeholder.
func (e *DateEntry) SetPattern(pattern string) {
	e.Picker.SetPattern(pattern)
	e.refreshHints()
}

// SetParsers forwards to the picker.
func (e *DateEntry) SetParsers(patterns ...string) {
	e.Picker.SetParsers(patterns...)
}

// SetLocaleAndPattern forwards to the picker and refreshes the placeholder.
func (e *DateEntry) SetLocaleAndPattern(loc, pattern string) {
	e.Picker.SetLocaleAndPattern(loc, pattern)
	e.refreshHints()
}

func (e *DateEntry) validate(text string) error {
	if text == "" {
		if e.Required {
			return errors.New(e.invalidMessage())
		}
		return nil
	}
	if _, _, err := e.Picker.ParseDate(text); err != nil {
		return errors.New(e.invalidMessage())
	}
	return nil
}

func (e *DateEntry) invalidMessage() string {
	msg := e.Translator.GetMsg(config.TKeyErrInvalid)
	if msg == config.TKeyErrInvalid {
		return config.FallbackInvalid
	}
	return msg
}

// refreshHints shows a sample date in the active format as placeholder.
func (e *DateEntry) refreshHints() {
	if e.Translator != nil {
		e.Translator.SetLanguage(e.Picker.Language())
	}
	sample, err := e.Picker.FormatDate(engine.ReferenceDate())
	if err != nil {
		e.SetPlaceHolder("")
		return
	}
	e.SetPlaceHolder(e.Translator.Format(config.TKeyPlaceholder, map[string]any{"Example": sample}))
}

func (e *DateEntry) notify(d engine.Date, ok bool) {
	if e.OnDateSelected != nil {
		e.OnDateSelected(d, ok)
	}
}
