package validate

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Indian 10-digit mobile numbers start with 6-9
	mobileRe = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// FieldErrors collects per-field validation failures.
// An empty map means the input passed.
type FieldErrors map[string]string

func (e FieldErrors) Any() bool { return len(e) > 0 }

// Error joins all field messages deterministically (sorted by field).
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(e))
	for _, f := range fields {
		msgs = append(msgs, e[f])
	}
	return strings.Join(msgs, "; ")
}

func (e FieldErrors) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		e[field] = field + " is required"
	}
}

func (e FieldErrors) Email(field, value string) {
	if !emailRe.MatchString(value) {
		e[field] = "please enter a valid email address"
	}
}

func (e FieldErrors) IndianMobile(field, value string) {
	if !mobileRe.MatchString(value) {
		e[field] = "please enter a valid 10-digit phone number"
	}
}

func (e FieldErrors) IntRange(field string, value, min, max int) {
	if value < min || value > max {
		e[field] = field + " must be between " +
			strconv.Itoa(min) + " and " + strconv.Itoa(max)
	}
}

func (e FieldErrors) FloatPositive(field string, value float64) {
	if value <= 0 {
		e[field] = field + " must be greater than zero"
	}
}

func (e FieldErrors) OneOf(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	e[field] = field + " must be one of: " + strings.Join(allowed, ", ")
}

// DateNotPast parses value as YYYY-MM-DD and rejects dates strictly before
// today's calendar day. Time-of-day and timezone are deliberately ignored.
// Returns the parsed date (zero when invalid).
func (e FieldErrors) DateNotPast(field, value string, now time.Time) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		e[field] = "please enter a valid date (YYYY-MM-DD)"
		return time.Time{}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(today) {
		e[field] = "booking date cannot be in the past"
		return time.Time{}
	}
	return d
}
