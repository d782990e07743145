package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/engine"
	"github.com/tartampluch/go-datepicker/internal/interop"
	"github.com/tartampluch/go-datepicker/internal/locale"
	"github.com/tartampluch/go-datepicker/internal/picker"
)

// runHeadless configures a picker without a window and prints the results of
// -parse, -format and -vcard to w.
func runHeadless(w io.Writer, opts options) error {
	p := picker.New(nil, locale.NewCLDRRenderer(), nil)
	if opts.Locale != "" {
		p.SetLocale(opts.Locale)
	}
	if opts.Pattern != "" {
		p.SetPattern(opts.Pattern)
	}
	if len(opts.Parsers) > 0 {
		p.SetParsers(opts.Parsers...)
	}

	if opts.Parse != "" {
		d, ok, err := p.ParseDate(opts.Parse)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w, config.MsgNoValue)
		} else {
			fmt.Fprintf(w, config.MsgParseOutput, d.Day, d.Month, d.Year)
		}
	}

	if opts.Format != "" {
		t, err := time.Parse(config.ISODateLayout, opts.Format)
		if err != nil {
			return fmt.Errorf("%s: %w", config.ErrDateParse, err)
		}
		if err := printFormatted(w, p, engine.DateOf(t)); err != nil {
			return err
		}
	}

	if opts.VCard != "" {
		f, err := os.Open(opts.VCard)
		if err != nil {
			return fmt.Errorf("%s: %w", config.ErrSeed, err)
		}
		defer f.Close()

		_, d, err := interop.BirthdayFromVCard(f)
		if err != nil {
			return fmt.Errorf("%s: %w", config.ErrSeed, err)
		}
		if err := printFormatted(w, p, d); err != nil {
			return err
		}
	}

	return nil
}

func printFormatted(w io.Writer, p *picker.Picker, d engine.Date) error {
	text, err := p.FormatDate(d)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, text)
	return nil
}
