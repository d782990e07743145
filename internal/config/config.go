package config

import (
	"io/fs"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go DatePicker"
	AppID       = "com.github.tartampluch.go-datepicker"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion  = "version"
	FlagDebug    = "debug"
	FlagLocale   = "locale"
	FlagPattern  = "pattern"
	FlagParsers  = "parsers"
	FlagParse    = "parse"
	FlagFormat   = "format"
	FlagVCard    = "vcard"
	FlagExport   = "export"
	FlagHeadless = "headless"

	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescLocale   = "BCP 47 locale used to infer the date format (e.g. de-DE)"
	FlagDescPattern  = "Explicit date pattern (e.g. dd/MM/yyyy); overrides the locale"
	FlagDescParsers  = "Comma separated list of alternate parse patterns"
	FlagDescParse    = "Parse the given text, print the structured date and exit"
	FlagDescFormat   = "Format the given ISO date (yyyy-MM-dd) and exit"
	FlagDescVCard    = "Seed the picker with the first BDAY found in a vCard file"
	FlagDescExport   = "Path of the .ics file written by the Export button"
	FlagDescHeadless = "Run without a window (implied by -parse and -format)"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
	MsgParseOutput   = "day=%d month=%d year=%d\n"
	MsgNoValue       = "no value"

	ParsersSeparator = ","
	ISODateLayout    = "2006-01-02"
)

// -----------------------------------------------------------------------------
// Picker Defaults
// -----------------------------------------------------------------------------

const (
	// DefaultLocale replaces any locale the renderer rejects.
	DefaultLocale = "en-US"

	// DefaultPattern replaces an empty pattern passed to SetPattern.
	DefaultPattern = "dd/MM/yyyy"

	// DefaultLanguage is used when no locale is configured.
	DefaultLanguage = "en"

	// LocaleSeparator splits the language from the region in a locale tag.
	LocaleSeparator = "-"

	// ReferenceHour is the wall-clock hour of every date handed to the
	// renderer. Midday keeps DST transitions from moving the calendar day.
	ReferenceHour = 12
)

// Sentinel values rendered to locate the day, month and year fields.
// None of them can be mistaken for another field.
const (
	SentinelDay   = "22"
	SentinelMonth = "11"
	SentinelYear  = "1987"
)

// Regular expression fragments substituted for the sentinels.
const (
	GroupDayMonth = `(\d{1,2})`
	GroupYear     = `(\d{4})`
)

// Pattern tokens understood by the completion heuristic.
const (
	TokenFullMonth = "MMM"
	TokenLongYear  = "yyyy"
	TokenShortYear = "yy"
)

// -----------------------------------------------------------------------------
// Window Layout
// -----------------------------------------------------------------------------

const (
	WindowWidth  = 420
	WindowHeight = 220
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle     = "win_title"
	TKeyLblDate      = "lbl_date"
	TKeyLblLocale    = "lbl_locale"
	TKeyLblPattern   = "lbl_pattern"
	TKeyLblSelected  = "lbl_selected"
	TKeyHelpPattern  = "help_pattern"
	TKeyPlaceholder  = "placeholder_date"
	TKeyErrInvalid   = "err_invalid_date"
	TKeyBtnExport    = "btn_export"
	TKeyNotifExport  = "notif_export"
	TKeyEventSummary = "event_summary"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go DatePicker//Export//EN"
	ICalDomain  = "godatepicker"

	PropUID     = "UID"
	PropSummary = "SUMMARY"
	PropDTStart = "DTSTART"
	PropDTStamp = "DTSTAMP"
	PropVersion = "VERSION"
	PropProdid  = "PRODID"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"

	FormatUID = "%04d%02d%02d@%s"

	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"
	DefaultLeapYear     = 2000
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrUnsupportedLocale = "locale is not supported"
	ErrUnsupportedToken  = "unsupported pattern token"
	ErrEmptyPattern      = "pattern is empty"
	ErrIncompleteFormat  = "sentinel not found in reference rendering"
	ErrNoLocaleMatch     = "input does not match the locale format"
	ErrNoCandidate       = "input does not match any configured pattern"
	ErrNoStrategy        = "must define either a parsing pattern or a locale, currently both are undefined"
	ErrDateRange         = "date fields out of range"
	ErrDateParse         = "unable to parse date"
	ErrNoBirthday        = "no BDAY property found"
	ErrICalEncode        = "failed to encode iCalendar data"
	ErrLogFile           = "failed to open log file"
	ErrCacheDir          = "could not determine user cache dir"
	ErrCreateDir         = "could not create app cache dir"
	ErrAppFailed         = "application failed unexpectedly"
	ErrLocalesAccess     = "failed to access embedded locales"
	ErrLocaleLoad        = "failed to load locale file"
	ErrExport            = "failed to export selected date"
	ErrSeed              = "failed to seed picker from vCard"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgLocaleFallback  = "The locale is not supported, using default locale setting"
	MsgInvalidValue    = "Invalid value in the DatePicker"
	MsgReconfigured    = "Picker reconfigured"
	MsgSelectionKept   = "Selection carried over to new configuration"
	MsgFormatInferred  = "Locale format inferred"
	MsgFormatPartial   = "Locale format is incomplete"
	MsgParseFailed     = "Unable to parse date input"
	MsgCompleted       = "Partial input completed"
	MsgFormatFailed    = "Unable to format date"
	MsgAppStarting     = "Starting application"
	MsgAppStop         = "Application stopped gracefully"
	MsgCtxCancel       = "Context cancelled, shutting down UI"
	MsgExported        = "Selected date exported"
	MsgSeeded          = "Picker seeded from vCard"
	MsgSkippedCard     = "Skipping malformed vCard"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgLogWarning      = "Warning: %s at %s: %v\n"
	FallbackInvalid    = "Invalid date"
	FallbackSummary    = "Selected date"
	FallbackWindowName = "Go DatePicker"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyLocale    = "locale"
	LogKeyDefault   = "default"
	LogKeyPattern   = "pattern"
	LogKeyParsers   = "parsers"
	LogKeyInput     = "input"
	LogKeyCompleted = "completed"
	LogKeyRegex     = "regex"
	LogKeyOrder     = "order"
	LogKeyReference = "reference"
	LogKeyDate      = "date"
	LogKeyName      = "name"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI      = "ui"
	CompPicker  = "picker"
	CompEngine  = "engine"
	CompLocale  = "locale"
	CompInterop = "interop"
	CompMain    = "main"
	CompI18n    = "i18n"
)
