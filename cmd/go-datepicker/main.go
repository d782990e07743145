package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/interop"
	"github.com/tartampluch/go-datepicker/internal/locale"
	"github.com/tartampluch/go-datepicker/internal/ui"
)

// options holds the parsed command line.
type options struct {
	Locale   string
	Pattern  string
	Parsers  []string
	Parse    string
	Format   string
	VCard    string
	Export   string
	Headless bool
}

// main is the application entry point.
// It delegates execution to runMain so that deferred calls run before os.Exit.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	var opts options
	var parsers string

	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	flag.StringVar(&opts.Locale, config.FlagLocale, "", config.FlagDescLocale)
	flag.StringVar(&opts.Pattern, config.FlagPattern, "", config.FlagDescPattern)
	flag.StringVar(&parsers, config.FlagParsers, "", config.FlagDescParsers)
	flag.StringVar(&opts.Parse, config.FlagParse, "", config.FlagDescParse)
	flag.StringVar(&opts.Format, config.FlagFormat, "", config.FlagDescFormat)
	flag.StringVar(&opts.VCard, config.FlagVCard, "", config.FlagDescVCard)
	flag.StringVar(&opts.Export, config.FlagExport, "", config.FlagDescExport)
	flag.BoolVar(&opts.Headless, config.FlagHeadless, false, config.FlagDescHeadless)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	opts.Parsers = splitParsers(parsers)
	if opts.Parse != "" || opts.Format != "" {
		opts.Headless = true
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	// Headless results go to stdout, so logs move to stderr.
	console := io.Writer(os.Stdout)
	if opts.Headless {
		console = os.Stderr
	}
	logCloser := setupLogging(*debugMode, console)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Application Logic
	// -------------------------------------------------------------------------
	if opts.Headless {
		if err := runHeadless(os.Stdout, opts); err != nil {
			slog.Error(config.ErrAppFailed,
				config.LogKeyComponent, config.CompMain,
				config.LogKeyError, err,
			)
			return config.ExitCodeError
		}
		return config.ExitCodeSuccess
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	if err := run(ctx, opts); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run initializes the Fyne application, wires dependencies, and starts the UI loop.
func run(ctx context.Context, opts options) error {
	a := app.NewWithID(config.AppID)

	gui := ui.NewDatePickerApp(a, locale.NewCLDRRenderer(), nil, opts.Export)
	gui.Configure(opts.Locale, opts.Pattern, opts.Parsers)

	if opts.VCard != "" {
		if err := seedFromVCard(gui, opts.VCard); err != nil {
			slog.Warn(config.ErrSeed,
				config.LogKeyComponent, config.CompMain,
				config.LogKeyFile, opts.VCard,
				config.LogKeyError, err,
			)
		}
	}

	// Lifecycle Bridge: quit the UI when the context is cancelled.
	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		a.Quit()
	}()

	// Blocks until the main window closes.
	gui.Run()

	return nil
}

// seedFromVCard selects the first birthday found in the vCard file at path.
func seedFromVCard(gui *ui.DatePickerApp, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	name, d, err := interop.BirthdayFromVCard(f)
	if err != nil {
		return err
	}
	gui.Seed(d)

	slog.Info(config.MsgSeeded,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyName, name,
		config.LogKeyDate, d.String(),
	)
	return nil
}

// splitParsers turns the comma separated flag value into a pattern list.
func splitParsers(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(value, config.ParsersSeparator) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger to write to console and,
// when possible, to a log file in the user's cache directory.
func setupLogging(debugMode bool, console io.Writer) io.Closer {
	writers := []io.Writer{console}
	var logFile *os.File

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
