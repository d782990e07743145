// Package picker binds the date engine to a host date field.
//
// A Picker owns the configuration (locale, explicit pattern, alternate
// parsers) and the state derived from it (inferred locale format, resolver,
// formatter). Every setter rebuilds the derived state and publishes it with a
// single atomic store, so FormatDate and ParseDate never see a mix of old and
// new settings.
package picker

import (
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/engine"
	"github.com/tartampluch/go-datepicker/internal/locale"
)

// Widget is the host date field a Picker is bound to.
type Widget interface {
	// InputValue returns the raw text typed by the user.
	// ok is false when the field is not ready to be read.
	InputValue() (text string, ok bool)

	// StoredValue returns the last committed value, read when InputValue is unavailable.
	StoredValue() string

	// SetSelectedDate selects d so that it is displayed with the current configuration.
	SetSelectedDate(d engine.Date)
}

// Config is the user-facing configuration. Pattern takes priority over
// Parsers, which take priority over Locale.
type Config struct {
	Locale  string
	Pattern string
	Parsers []string
}

// binding is the state derived from one Config.
type binding struct {
	config    Config
	language  string
	format    *engine.LocaleFormat
	resolver  *engine.Resolver
	formatter *engine.Formatter
}

// Picker parses and formats dates for one Widget.
type Picker struct {
	renderer locale.Renderer
	clock    engine.Clock
	widget   Widget
	inferer  *engine.Inferer

	current  atomic.Pointer[binding]
	baseline string
}

// New creates a Picker configured for config.DefaultLocale.
// A nil widget is allowed for headless use.
func New(w Widget, r locale.Renderer, clock engine.Clock) *Picker {
	if clock == nil {
		clock = engine.RealClock{}
	}
	p := &Picker{
		renderer: r,
		clock:    clock,
		widget:   w,
		inferer:  engine.NewInferer(r),
		baseline: config.DefaultLocale,
	}
	p.apply(Config{Locale: config.DefaultLocale})
	return p
}

// Bind attaches the picker to a widget after construction.
func (p *Picker) Bind(w Widget) {
	p.widget = w
}

// Config returns a copy of the active configuration.
func (p *Picker) Config() Config {
	b := p.current.Load()
	cfg := b.config
	cfg.Parsers = append([]string(nil), b.config.Parsers...)
	return cfg
}

// Language returns the language derived from the active locale.
func (p *Picker) Language() string {
	return p.current.Load().language
}

// LocaleFormat returns the format inferred for the active locale, or nil.
func (p *Picker) LocaleFormat() *engine.LocaleFormat {
	return p.current.Load().format
}

// Baseline returns the locale recorded the last time the field was empty.
func (p *Picker) Baseline() string {
	return p.baseline
}

// SetLocale switches the locale. A locale the renderer rejects is replaced
// by config.DefaultLocale.
func (p *Picker) SetLocale(loc string) {
	cfg := p.Config()
	cfg.Locale = p.validLocale(loc)
	p.apply(cfg)
}

// SetPattern sets the explicit pattern. An empty pattern selects config.DefaultPattern.
func (p *Picker) SetPattern(pattern string) {
	if pattern == "" {
		pattern = config.DefaultPattern
	}
	cfg := p.Config()
	cfg.Pattern = pattern
	p.apply(cfg)
}

// SetParsers replaces the alternate patterns, tried in order before the explicit pattern.
func (p *Picker) SetParsers(patterns ...string) {
	cfg := p.Config()
	cfg.Parsers = append([]string(nil), patterns...)
	p.apply(cfg)
}

// SetLocaleAndPattern applies both settings in one reconfiguration.
// Unlike SetPattern, an empty pattern clears it and returns to locale parsing.
func (p *Picker) SetLocaleAndPattern(loc, pattern string) {
	cfg := p.Config()
	cfg.Locale = p.validLocale(loc)
	cfg.Pattern = pattern
	p.apply(cfg)
}

// FormatDate renders d with the active configuration.
func (p *Picker) FormatDate(d engine.Date) (string, error) {
	b := p.current.Load()
	out, err := b.formatter.Format(d)
	if err != nil {
		log := slog.Warn
		if errors.Is(err, engine.ErrNoStrategy) {
			log = slog.Error
		}
		log(config.MsgFormatFailed,
			config.LogKeyComponent, config.CompPicker,
			config.LogKeyDate, d.String(),
			config.LogKeyError, err,
		)
		return "", err
	}
	return out, nil
}

// ParseDate resolves text with the active configuration.
// Empty text yields ok=false and no error.
func (p *Picker) ParseDate(text string) (engine.Date, bool, error) {
	d, ok, err := p.current.Load().resolver.Parse(text)
	if err != nil {
		slog.Debug(config.MsgParseFailed,
			config.LogKeyComponent, config.CompPicker,
			config.LogKeyInput, text,
			config.LogKeyError, err,
		)
	}
	return d, ok, err
}

// HandleBlur is called when the field loses focus.
func (p *Picker) HandleBlur(text string, invalid bool) {
	if text == "" && invalid {
		slog.Warn(config.MsgInvalidValue, config.LogKeyComponent, config.CompPicker)
	}
}

func (p *Picker) validLocale(loc string) string {
	if _, err := p.renderer.Render(p.clock.Now(), loc); err != nil {
		slog.Warn(config.MsgLocaleFallback,
			config.LogKeyComponent, config.CompPicker,
			config.LogKeyLocale, loc,
			config.LogKeyDefault, config.DefaultLocale,
			config.LogKeyError, err,
		)
		return config.DefaultLocale
	}
	return loc
}

// apply rebuilds the derived state for cfg and publishes it. A date the user
// already typed is re-read under the old configuration and handed back to the
// widget so the selection survives the change.
func (p *Picker) apply(cfg Config) {
	input := p.inputValue()

	var prior engine.Date
	hasPrior := false
	if old := p.current.Load(); old != nil && input != "" {
		if d, ok, err := old.resolver.Parse(input); err == nil && ok {
			prior, hasPrior = d, true
		}
	}

	lang := languageOf(cfg.Locale)

	var format *engine.LocaleFormat
	if cfg.Locale != "" {
		f, err := p.inferer.Infer(cfg.Locale)
		if err != nil {
			slog.Warn(config.MsgFormatPartial,
				config.LogKeyComponent, config.CompPicker,
				config.LogKeyLocale, cfg.Locale,
				config.LogKeyError, err,
			)
		} else {
			if !f.Complete {
				slog.Warn(config.MsgFormatPartial,
					config.LogKeyComponent, config.CompPicker,
					config.LogKeyLocale, cfg.Locale,
					config.LogKeyReference, f.Reference,
				)
			}
			format = f
		}
	}

	p.current.Store(&binding{
		config:   cfg,
		language: lang,
		format:   format,
		resolver: &engine.Resolver{
			Pattern:  cfg.Pattern,
			Parsers:  cfg.Parsers,
			Language: lang,
			Format:   format,
			Clock:    p.clock,
		},
		formatter: &engine.Formatter{
			Pattern:  cfg.Pattern,
			Locale:   cfg.Locale,
			Language: lang,
			Renderer: p.renderer,
		},
	})

	slog.Debug(config.MsgReconfigured,
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyLocale, cfg.Locale,
		config.LogKeyPattern, cfg.Pattern,
		config.LogKeyParsers, cfg.Parsers,
	)

	switch {
	case input == "":
		p.baseline = cfg.Locale
	case hasPrior && p.widget != nil:
		slog.Debug(config.MsgSelectionKept,
			config.LogKeyComponent, config.CompPicker,
			config.LogKeyDate, prior.String(),
		)
		p.widget.SetSelectedDate(prior)
	}
}

// inputValue reads the widget text, falling back to its stored value.
func (p *Picker) inputValue() string {
	if p.widget == nil {
		return ""
	}
	if text, ok := p.widget.InputValue(); ok {
		return text
	}
	return p.widget.StoredValue()
}

// languageOf returns the text before the first "-" of the locale.
func languageOf(loc string) string {
	if loc == "" {
		return config.DefaultLanguage
	}
	lang, _, _ := strings.Cut(loc, config.LocaleSeparator)
	return lang
}
