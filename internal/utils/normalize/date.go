// Package normalize converts raw spreadsheet cell values into canonical dates and amounts.
// Every function here is pure: the caller supplies the reference time, and unparseable
// input yields nil or zero rather than an error.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// serialEpochOffsetDays is the spreadsheet serial number of 1970-01-01.
	serialEpochOffsetDays = 25569
	// maxUnixMillis bounds serial dates to the range a timestamp can represent.
	maxUnixMillis = 8.64e15
)

var (
	dateNoise      = regexp.MustCompile(`[^\d/\-]`)
	dateSeparators = regexp.MustCompile(`[/\-]`)
)

// genericLayouts are tried, in order, for strings that carry no '/' or '-' after cleaning.
var genericLayouts = []string{
	time.RFC3339,
	"20060102",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"Mon Jan 2 2006",
}

// Date normalizes a cell value to midnight of its calendar day in now's location.
// Accepted shapes are time.Time, numeric spreadsheet serials, and strings. It returns nil
// when the value cannot be read as a date.
func Date(raw any, now time.Time) *time.Time {
	loc := now.Location()
	switch v := raw.(type) {
	case nil:
		return nil
	case time.Time:
		return startOfDay(v, loc)
	case *time.Time:
		if v == nil {
			return nil
		}
		return startOfDay(*v, loc)
	case float64:
		return fromSerial(v, loc)
	case float32:
		return fromSerial(float64(v), loc)
	case int:
		return fromSerial(float64(v), loc)
	case int64:
		return fromSerial(float64(v), loc)
	case string:
		return fromString(v, now)
	}
	return nil
}

// fromSerial reads a spreadsheet serial date. The serial names a calendar day, so the day is
// taken in UTC and then placed at midnight in loc.
func fromSerial(v float64, loc *time.Location) *time.Time {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	ms := (v - serialEpochOffsetDays) * 86400 * 1000
	if math.Abs(ms) > maxUnixMillis {
		return nil
	}
	y, m, d := time.UnixMilli(int64(ms)).UTC().Date()
	return midnight(y, m, d, loc)
}

func fromString(s string, now time.Time) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	clean := dateNoise.ReplaceAllString(s, "")
	if strings.ContainsAny(clean, "/-") {
		parts := dateSeparators.Split(clean, -1)
		if len(parts) >= 2 {
			day, month, year, ok := SplitDayMonthYear(parts, now.Year())
			if !ok {
				return nil
			}
			return buildDate(year, month, day, now.Location())
		}
	}

	for _, layout := range genericLayouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return startOfDay(t, now.Location())
		}
	}
	return nil
}

// SplitDayMonthYear decides which component of a split date string is the day, month and year.
//
// When the first two components have at most two digits the string is read day-first
// (DD/MM/YY). A four-digit first component is read year-first (YYYY-MM-DD). Anything else is
// read month-first. A missing or empty year defaults to defaultYear and two-digit years are
// moved into the 2000s. Dates like 03/04/25 are inherently ambiguous; this function is the
// single place that resolves them.
func SplitDayMonthYear(parts []string, defaultYear int) (day, month, year int, ok bool) {
	if len(parts) < 2 {
		return 0, 0, 0, false
	}
	component := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	var dayStr, monthStr, yearStr string
	switch {
	case len(parts[0]) <= 2 && len(parts[1]) <= 2:
		dayStr, monthStr, yearStr = parts[0], parts[1], component(2)
	case len(parts[0]) == 4:
		yearStr, monthStr, dayStr = parts[0], parts[1], component(2)
	default:
		monthStr, dayStr, yearStr = parts[0], parts[1], component(2)
	}

	var err error
	if day, err = strconv.Atoi(dayStr); err != nil {
		return 0, 0, 0, false
	}
	if month, err = strconv.Atoi(monthStr); err != nil {
		return 0, 0, 0, false
	}
	year = defaultYear
	if yearStr != "" {
		if year, err = strconv.Atoi(yearStr); err != nil {
			return 0, 0, 0, false
		}
	}
	if year < 100 {
		year += 2000
	}
	return day, month, year, true
}

// buildDate returns nil instead of letting time.Date roll an invalid day or month over.
func buildDate(year, month, day int, loc *time.Location) *time.Time {
	if month < 1 || month > 12 || day < 1 {
		return nil
	}
	if day > time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day() {
		return nil
	}
	return midnight(year, time.Month(month), day, loc)
}

func startOfDay(t time.Time, loc *time.Location) *time.Time {
	y, m, d := t.In(loc).Date()
	return midnight(y, m, d, loc)
}

func midnight(year int, month time.Month, day int, loc *time.Location) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	return &t
}
