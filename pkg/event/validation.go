package event

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

const MinTitleLength = 3

// The error texts double as the messages shown to the user.
var (
	ErrTitleEmpty    = errors.New("Please enter an event title")
	ErrTitleTooShort = errors.New("Event title must be at least 3 characters")
)

// ValidateTitle trims the raw input and returns the title to submit.
// Checks run in order: empty first, then minimum length.
func ValidateTitle(raw string) (string, error) {
	title := strings.TrimFunc(raw, isTrimmable)
	if title == "" {
		return "", ErrTitleEmpty
	}
	if utf8.RuneCountInString(title) < MinTitleLength {
		return "", ErrTitleTooShort
	}
	return title, nil
}

// isTrimmable matches the characters a browser strips when trimming form
// input: Unicode white space plus the byte order mark.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}
