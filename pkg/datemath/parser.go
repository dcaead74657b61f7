package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser normalizes deadline strings to absolute time.Time values.
// Deadlines arrive in mixed shapes: absolute dates, "today", "next
// friday", "in 3 days". Everything resolves against a base time in
// the parser's timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parse converts a deadline string to an absolute time.Time. The
// baseTime is the reference point (usually time.Now()). Absolute
// inputs (RFC 3339 or YYYY-MM-DD) pass through; relative inputs
// resolve to the start of the target day. Unrecognized input is an
// error so a garbled deadline never silently becomes "today".
func (p *Parser) Parse(deadline string, baseTime time.Time) (time.Time, error) {
	s := strings.ToLower(strings.TrimSpace(deadline))
	if s == "" {
		return time.Time{}, fmt.Errorf("empty deadline")
	}

	if t, err := time.Parse(time.RFC3339, deadline); err == nil {
		return t.In(p.location), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, p.location); err == nil {
		return t, nil
	}

	switch s {
	case "today", "tonight", "end of day", "eod":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "next week":
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), nil
	case "next month":
		return p.startOfDay(baseTime.AddDate(0, 1, 0)), nil
	}

	if wd, ok := weekdays[strings.TrimPrefix(s, "next ")]; ok {
		return p.nextWeekday(wd, baseTime), nil
	}

	if strings.HasPrefix(s, "in ") {
		return p.parseInDuration(s, baseTime)
	}

	return time.Time{}, fmt.Errorf("unrecognized deadline: %q", deadline)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(s string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(s)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", s)
	}

	amount, _ := strconv.Atoi(matches[1])
	switch {
	case strings.HasPrefix(matches[2], "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(matches[2], "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// nextWeekday returns the next occurrence of the weekday strictly
// after the base day. A bare "friday" on a Friday means next Friday.
func (p *Parser) nextWeekday(target time.Weekday, baseTime time.Time) time.Time {
	daysUntil := int(target - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil))
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
