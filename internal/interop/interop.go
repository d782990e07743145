// Package interop moves picker dates in and out of vCard and iCalendar data.
package interop

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/araddon/dateparse"
	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/engine"
)

// ErrNoBirthday is returned when a vCard stream holds no usable BDAY.
var ErrNoBirthday = errors.New(config.ErrNoBirthday)

// ParseBDAY handles the vCard date forms. yearKnown is false for the
// truncated --MM-DD forms, whose year is set to config.DefaultLeapYear.
func ParseBDAY(value string) (d engine.Date, yearKnown bool, err error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		time.RFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return engine.DateOf(t), true, nil
		}
	}

	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			safe := time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return engine.DateOf(safe), false, nil
		}
	}

	// vCard 3 allows free text such as "April 5, 1980".
	if t, err := dateparse.ParseAny(value); err == nil {
		return engine.DateOf(t), true, nil
	}

	return engine.Date{}, false, fmt.Errorf("%s: %q", config.ErrDateParse, value)
}

// BirthdayFromVCard returns the name and birthday of the first card in r
// that carries a parsable BDAY.
func BirthdayFromVCard(r io.Reader) (string, engine.Date, error) {
	dec := vcard.NewDecoder(r)
	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompInterop,
				config.LogKeyError, err)
			return "", engine.Date{}, fmt.Errorf("%w: %w", ErrNoBirthday, err)
		}

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}
		d, _, err := ParseBDAY(bday.Value)
		if err != nil {
			slog.Debug(config.ErrDateParse,
				config.LogKeyComponent, config.CompInterop,
				config.LogKeyInput, bday.Value)
			continue
		}

		name := ""
		if fn := card.Get(config.VCardFN); fn != nil {
			name = fn.Value
		}
		return name, d, nil
	}
	return "", engine.Date{}, ErrNoBirthday
}

// EncodeEvent writes a calendar holding one all-day event on d.
func EncodeEvent(w io.Writer, summary string, d engine.Date, now time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, d.Year, d.Month+1, d.Day, config.ICalDomain))
	event.Props.SetText(config.PropSummary, summary)

	stamp := ical.NewProp(config.PropDTStamp)
	stamp.SetDateTime(now.UTC())
	event.Props.Set(stamp)

	start := ical.NewProp(config.PropDTStart)
	start.SetDate(d.Time(time.UTC))
	event.Props.Set(start)

	cal.Children = append(cal.Children, event.Component)

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return nil
}
