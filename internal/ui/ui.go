// Package ui hosts the date picker in a fyne window.
package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/engine"
	"github.com/tartampluch/go-datepicker/internal/interop"
	"github.com/tartampluch/go-datepicker/internal/locale"
)

// ErrNothingSelected is returned by Export when no date is selected.
var ErrNothingSelected = errors.New(config.MsgNoValue)

// DatePickerApp encapsulates the window, the date field and its settings controls.
type DatePickerApp struct {
	App        fyne.App
	Window     fyne.Window
	Translator *Translator
	Clock      engine.Clock // Injected clock for testability

	Entry         *DateEntry
	LocaleSelect  *widget.Select
	PatternEntry  *widget.Entry
	SelectedLabel *widget.Label
	ExportButton  *widget.Button
	form          *widget.Form

	// ExportPath is the .ics file written by Export. Empty disables the button.
	ExportPath string
}

// NewDatePickerApp constructs the application and wires dependencies.
// A nil clock uses the system time.
func NewDatePickerApp(a fyne.App, r locale.Renderer, clock engine.Clock, exportPath string) *DatePickerApp {
	if clock == nil {
		clock = engine.RealClock{}
	}
	tr := NewTranslator()

	app := &DatePickerApp{
		App:        a,
		Translator: tr,
		Clock:      clock,
		ExportPath: exportPath,
	}

	app.Entry = NewDateEntry(r, clock, tr)
	app.Entry.OnDateSelected = func(engine.Date, bool) { app.refreshSelection() }

	app.LocaleSelect = widget.NewSelect(locale.Supported(), func(loc string) {
		app.Entry.SetLocale(loc)
		app.refreshLabels()
	})
	app.LocaleSelect.Selected = app.Entry.Picker.Config().Locale

	app.PatternEntry = widget.NewEntry()
	app.PatternEntry.OnSubmitted = func(p string) {
		// An empty pattern returns to locale-driven parsing.
		app.Entry.SetLocaleAndPattern(app.Entry.Picker.Config().Locale, p)
		app.refreshLabels()
	}

	app.SelectedLabel = widget.NewLabel("")
	app.ExportButton = widget.NewButton("", func() {
		if err := app.Export(); err != nil {
			slog.Error(config.ErrExport,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyError, err,
			)
		}
	})
	if exportPath == "" {
		app.ExportButton.Disable()
	}

	return app
}

// BuildWindow lays out the controls in a new window.
func (app *DatePickerApp) BuildWindow() fyne.Window {
	app.Window = app.App.NewWindow(config.FallbackWindowName)

	app.form = widget.NewForm(
		widget.NewFormItem("", app.LocaleSelect),
		widget.NewFormItem("", app.PatternEntry),
		widget.NewFormItem("", app.Entry),
	)

	app.Window.SetContent(container.NewVBox(app.form, app.SelectedLabel, app.ExportButton))
	app.Window.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	app.refreshLabels()
	return app.Window
}

// Run shows the window and enters the fyne event loop.
func (app *DatePickerApp) Run() {
	app.BuildWindow()
	app.Window.ShowAndRun()
}

// Configure applies the startup settings. Empty values keep the defaults.
func (app *DatePickerApp) Configure(loc, pattern string, parsers []string) {
	if loc != "" {
		app.Entry.SetLocale(loc)
		app.LocaleSelect.Selected = app.Entry.Picker.Config().Locale
	}
	if pattern != "" {
		app.Entry.SetPattern(pattern)
		app.PatternEntry.SetText(pattern)
	}
	if len(parsers) > 0 {
		app.Entry.SetParsers(parsers...)
	}
	app.refreshLabels()
}

// Seed selects d as if the user had picked it.
func (app *DatePickerApp) Seed(d engine.Date) {
	app.Entry.SetSelectedDate(d)
}

// Export writes the selected date to ExportPath as an all-day calendar event.
func (app *DatePickerApp) Export() error {
	d, ok := app.Entry.Selected()
	if !ok {
		return ErrNothingSelected
	}

	f, err := os.OpenFile(app.ExportPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, config.FilePermUserRW)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrExport, err)
	}
	defer f.Close()

	summary := app.Translator.GetMsg(config.TKeyEventSummary)
	if summary == config.TKeyEventSummary {
		summary = config.FallbackSummary
	}
	if err := interop.EncodeEvent(f, summary, d, app.Clock.Now()); err != nil {
		return err
	}

	slog.Info(config.MsgExported,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyDate, d.String(),
		config.LogKeyFile, app.ExportPath,
	)
	app.App.SendNotification(fyne.NewNotification(config.AppName,
		app.Translator.Format(config.TKeyNotifExport, map[string]any{"Path": app.ExportPath})))
	return nil
}

// refreshLabels re-translates every label after a language change.
func (app *DatePickerApp) refreshLabels() {
	if app.Window != nil {
		app.Window.SetTitle(app.Translator.GetMsg(config.TKeyWinTitle))
	}
	if app.form != nil {
		app.form.Items[0].Text = app.Translator.GetMsg(config.TKeyLblLocale)
		app.form.Items[1].Text = app.Translator.GetMsg(config.TKeyLblPattern)
		app.form.Items[1].HintText = app.Translator.GetMsg(config.TKeyHelpPattern)
		app.form.Items[2].Text = app.Translator.GetMsg(config.TKeyLblDate)
		app.form.Refresh()
	}
	app.ExportButton.SetText(app.Translator.GetMsg(config.TKeyBtnExport))
	app.refreshSelection()
}

func (app *DatePickerApp) refreshSelection() {
	value := config.MsgNoValue
	if d, ok := app.Entry.Selected(); ok {
		value = d.String()
	}
	app.SelectedLabel.SetText(app.Translator.Format(config.TKeyLblSelected, map[string]any{"Date": value}))
}
