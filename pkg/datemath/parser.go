package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationPattern = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	isoDatePattern    = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	nextDayPattern    = regexp.MustCompile(`next (monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Paris"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today", "tonight":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "next week":
		return p.startOfWeek(baseTime).AddDate(0, 0, 7), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	if t, err := time.ParseInLocation(time.DateOnly, relative, p.location); err == nil {
		return t, nil
	}

	// Fallback: treat unknown as today
	return p.startOfDay(baseTime), nil
}

// Find scans free text for the first date expression it understands
// (ISO date, today, tonight, tomorrow, "in N days", "next friday", "next week").
func (p *Parser) Find(text string, baseTime time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)

	if m := isoDatePattern.FindString(lower); m != "" {
		if t, err := time.ParseInLocation(time.DateOnly, m, p.location); err == nil {
			return t, true
		}
	}
	if m := inDurationPattern.FindString(lower); m != "" {
		if t, err := p.parseInDuration(m, baseTime); err == nil {
			return t, true
		}
	}
	if m := nextDayPattern.FindString(lower); m != "" {
		if t, err := p.parseNextWeekday(m, baseTime); err == nil {
			return t, true
		}
	}
	for _, kw := range []string{"tomorrow", "tonight", "today", "next week"} {
		if strings.Contains(lower, kw) {
			t, _ := p.Parse(kw, baseTime)
			return t, true
		}
	}
	return time.Time{}, false
}

// Window resolves a relative period keyword into a time range:
// today, tomorrow, tonight, morning, afternoon, evening, this week, next week.
func (p *Parser) Window(keyword string, baseTime time.Time) (Window, error) {
	day := p.startOfDay(baseTime)

	switch strings.ToLower(strings.TrimSpace(keyword)) {
	case "today":
		return Window{Start: day, End: day.AddDate(0, 0, 1)}, nil
	case "tomorrow":
		return Window{Start: day.AddDate(0, 0, 1), End: day.AddDate(0, 0, 2)}, nil
	case "tonight":
		return Window{Start: day.Add(18 * time.Hour), End: day.AddDate(0, 0, 1)}, nil
	case "morning":
		return Window{Start: day.Add(6 * time.Hour), End: day.Add(12 * time.Hour)}, nil
	case "afternoon":
		return Window{Start: day.Add(12 * time.Hour), End: day.Add(18 * time.Hour)}, nil
	case "evening":
		return Window{Start: day.Add(18 * time.Hour), End: day.Add(22 * time.Hour)}, nil
	case "this week":
		start := p.startOfWeek(baseTime)
		return Window{Start: start, End: start.AddDate(0, 0, 7)}, nil
	case "next week":
		start := p.startOfWeek(baseTime).AddDate(0, 0, 7)
		return Window{Start: start, End: start.AddDate(0, 0, 7)}, nil
	}

	return Window{}, fmt.Errorf("unknown period: %q", keyword)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationPattern.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(targetWeekday - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// startOfWeek returns midnight on the Monday of t's week.
func (p *Parser) startOfWeek(t time.Time) time.Time {
	day := p.startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
