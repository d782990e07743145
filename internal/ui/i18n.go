package ui

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-datepicker/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator serves the UI strings in the picker's language.
type Translator struct {
	Bundle             *i18n.Bundle
	Localizer          *i18n.Localizer
	SupportedLanguages []string
	lang               string
}

// NewTranslator loads the embedded message catalogs and selects config.DefaultLanguage.
func NewTranslator() *Translator {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	tr := &Translator{Bundle: bundle}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		tr.SetLanguage(config.DefaultLanguage)
		return tr
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		tr.SupportedLanguages = append(tr.SupportedLanguages, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	tr.SetLanguage(config.DefaultLanguage)
	return tr
}

// SetLanguage switches the catalog. Languages without a catalog fall back to English.
func (tr *Translator) SetLanguage(lang string) {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	tr.lang = lang
	tr.Localizer = i18n.NewLocalizer(tr.Bundle, lang)
}

// Language returns the language last passed to SetLanguage.
func (tr *Translator) Language() string {
	return tr.lang
}

// GetMsg translates key, returning the key itself when it is missing.
func (tr *Translator) GetMsg(key string) string {
	return tr.Format(key, nil)
}

// Format translates key with template data.
func (tr *Translator) Format(key string, data map[string]any) string {
	if tr == nil || tr.Localizer == nil {
		return key
	}
	msg, err := tr.Localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}
