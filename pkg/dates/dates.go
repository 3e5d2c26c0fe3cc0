// Package dates holds calendar-day helpers. A Date never carries a time of day
// or a zone: "today" is always taken from the wall clock in the user's location.
package dates

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	// Layout is the wire and storage format of a Date (YYYY-MM-DD)
	Layout = "2006-01-02"
	// TimeLayout is the format of a time of day (HH:MM)
	TimeLayout = "15:04"
)

var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar day. The zero value is not a valid day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New normalizes overflowing days and months the same way time.Date does.
func New(year int, month time.Month, day int) Date {
	return Of(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Of returns the calendar day of t as seen on t's own wall clock.
func Of(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the local calendar day of the clock in loc.
func Today(clock Clock, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	return Of(clock.Now().In(loc))
}

func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w %q", ErrInvalidDate, s)
	}
	return Of(t), nil
}

// MustParse is meant for fixtures and tests.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.utc().Format(Layout)
}

// Midnight returns the first instant of d in loc.
func (d Date) Midnight(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	return Of(d.utc().AddDate(0, 0, n))
}

func (d Date) Weekday() time.Weekday {
	return d.utc().Weekday()
}

func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool  { return d == other }

// Sub returns the number of whole days from other to d.
func (d Date) Sub(other Date) int {
	return int(d.utc().Sub(other.utc()).Hours() / 24)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// DaysAgo returns the day n days before today.
func DaysAgo(today Date, n int) Date {
	return today.AddDays(-n)
}

// StartOfWeek returns the latest day not after d that falls on first.
func StartOfWeek(d Date, first time.Weekday) Date {
	shift := (int(d.Weekday()) - int(first) + 7) % 7
	return d.AddDays(-shift)
}

func EndOfWeek(d Date, first time.Weekday) Date {
	return StartOfWeek(d, first).AddDays(6)
}

// Range lists every day from from to to inclusive. It is empty when to is before from.
func Range(from, to Date) []Date {
	if to.Before(from) {
		return nil
	}
	days := make([]Date, 0, to.Sub(from)+1)
	for d := from; !d.After(to); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// MinuteOfDay returns minutes since local midnight of t, 0..1439.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// LoadLocation resolves an IANA zone name. Empty and "Local" mean the system zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	unquoted, err := strconv.Unquote(s)
	if err != nil {
		return fmt.Errorf("%w %s", ErrInvalidDate, s)
	}
	// Timestamps are accepted and cut down to their own calendar day.
	if len(unquoted) > len(Layout) {
		t, err := time.Parse(time.RFC3339, unquoted)
		if err != nil {
			return fmt.Errorf("%w %q", ErrInvalidDate, unquoted)
		}
		*d = Of(t)
		return nil
	}
	parsed, err := Parse(unquoted)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ScanDate lets pgx scan a postgres date column straight into a Date.
func (d *Date) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		*d = Date{}
		return nil
	}
	if v.InfinityModifier != pgtype.Finite {
		return fmt.Errorf("%w: infinite date", ErrInvalidDate)
	}
	*d = Of(v.Time)
	return nil
}

// DateValue lets pgx encode a Date as a postgres date parameter.
func (d Date) DateValue() (pgtype.Date, error) {
	if d.IsZero() {
		return pgtype.Date{}, nil
	}
	return pgtype.Date{Time: d.utc(), Valid: true}, nil
}
