// Package clock implements the optional device clock: a manually set
// date and time independent of the wall clock, plus process uptime.
package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Year bounds accepted by SetDate, matching classic IOS behavior.
const (
	MinYear = 1993
	MaxYear = 2035
)

// Clock holds a device date and time that only changes through SetTime
// and SetDate.
type Clock struct {
	hour, min, sec int
	day            int
	month          time.Month
	year           int
	started        time.Time
}

// New returns a clock initialized to the emulator's epoch
// (12:00:00 June 1 2024) with uptime starting now.
func New() *Clock {
	return &Clock{
		hour:    12,
		day:     1,
		month:   time.June,
		year:    2024,
		started: time.Now(),
	}
}

// SetTime parses and validates an "hh:mm:ss" string. Exactly three
// colon-separated integer fields are accepted; trailing or fractional
// input is rejected rather than truncated.
func (c *Clock) SetTime(s string) error {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return fmt.Errorf("invalid time %q, expected hh:mm:ss", s)
	}
	var fields [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("invalid time %q, expected hh:mm:ss", s)
		}
		fields[i] = v
	}
	hh, mm, ss := fields[0], fields[1], fields[2]
	if hh < 0 || hh > 23 {
		return fmt.Errorf("hour %d out of range 0-23", hh)
	}
	if mm < 0 || mm > 59 {
		return fmt.Errorf("minute %d out of range 0-59", mm)
	}
	if ss < 0 || ss > 59 {
		return fmt.Errorf("second %d out of range 0-59", ss)
	}
	c.hour, c.min, c.sec = hh, mm, ss
	return nil
}

// SetDate validates day against the month length (leap years included) and
// the year against [MinYear, MaxYear]. monthName is a full English month
// name, case-insensitive.
func (c *Clock) SetDate(day int, monthName string, year int) error {
	month, ok := parseMonth(monthName)
	if !ok {
		return fmt.Errorf("invalid month %q", monthName)
	}
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("year %d out of range %d-%d", year, MinYear, MaxYear)
	}
	if max := daysIn(month, year); day < 1 || day > max {
		return fmt.Errorf("day %d out of range 1-%d for %s %d", day, max, month, year)
	}
	c.day, c.month, c.year = day, month, year
	return nil
}

// String renders the held date and time, e.g. "12:30:45 January 15 2025".
func (c *Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d %s %d %d",
		c.hour, c.min, c.sec, c.month, c.day, c.year)
}

// Uptime reports how long the clock (and the process owning it) has been
// running.
func (c *Clock) Uptime() time.Duration {
	return time.Since(c.started)
}

func parseMonth(name string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(name, m.String()) {
			return m, true
		}
	}
	return 0, false
}

func daysIn(m time.Month, year int) int {
	switch m {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if isLeap(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
