package utils

import (
	"strconv"
	"strings"
)

// ParseFloat converts a string to a float64, returning 0 if it is empty
func ParseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}

	return value, nil
}

// ParseInt converts a string to an int, returning 0 if it is empty
func ParseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}

	return value, nil
}

// ParseBool reports whether a form flag is "true", ignoring case.
func ParseBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}
