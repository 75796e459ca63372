package validate

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode"
)

// Error names the offending field and the constraint it violated. Handlers
// translate it into an HTTP 400 with the message intact.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Field + ": " + e.Message
}

func fail(field, format string, args ...any) error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

func LengthInRange(value string, min, max int, field string) error {
	n := len(value)
	if n < min || n > max {
		return fail(field, "length must be between %d and %d", min, max)
	}
	return nil
}

func PositiveInt(value int64, field string) error {
	if value <= 0 {
		return fail(field, "must be a positive integer")
	}
	return nil
}

func NonEmptyString(value string, field string) error {
	if strings.TrimSpace(value) == "" {
		return fail(field, "must not be empty")
	}
	return nil
}

func Alphanumeric(value string, field string) error {
	if value == "" {
		return fail(field, "must be alphanumeric")
	}
	for _, r := range value {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fail(field, "must be alphanumeric")
		}
	}
	return nil
}

func Alphabetic(value string, field string) error {
	if value == "" {
		return fail(field, "must be alphabetic")
	}
	for _, r := range value {
		if !unicode.IsLetter(r) {
			return fail(field, "must be alphabetic")
		}
	}
	return nil
}

func Email(value string, field string) error {
	addr := strings.ToLower(strings.TrimSpace(value))
	if addr == "" {
		return fail(field, "must be a valid email address")
	}
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return fail(field, "must be a valid email address")
	}
	return nil
}

// MatchesPattern is the escape hatch of the predicate set: callers with a
// field rule not covered by the named predicates bring their own regexp.
// Closed enums inside the domain packages admit values through their own
// parse functions instead.
func MatchesPattern(value string, pattern *regexp.Regexp, field string) error {
	if pattern == nil || !pattern.MatchString(value) {
		return fail(field, "has an invalid format")
	}
	return nil
}

func NumberInRange(value, min, max float64, field string) error {
	if value < min || value > max {
		return fail(field, "must be between %g and %g", min, max)
	}
	return nil
}

func NotEmptySlice[T any](value []T, field string) error {
	if len(value) == 0 {
		return fail(field, "must contain at least one entry")
	}
	return nil
}

var digitsRe = regexp.MustCompile(`^[0-9]+$`)

// Digits checks an exact-length numeric identifier, e.g. the 12-digit
// national identity number.
func Digits(value string, length int, field string) error {
	if len(value) != length || !digitsRe.MatchString(value) {
		return fail(field, "must be exactly %d digits", length)
	}
	return nil
}
