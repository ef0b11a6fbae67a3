package validate

import (
	"regexp"
	"sort"
	"strings"
)

// Errors collects field-level validation failures keyed by field name.
// It is returned by services when user input is rejectable and correctable.
type Errors map[string]string

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var builder strings.Builder
	builder.WriteString("validation failed: ")
	for i, field := range fields {
		if i > 0 {
			builder.WriteString("; ")
		}
		builder.WriteString(field)
		builder.WriteString(": ")
		builder.WriteString(e[field])
	}
	return builder.String()
}

// Add records a failure for a field. The first message per field wins.
func (e Errors) Add(field, message string) {
	if _, ok := e[field]; ok {
		return
	}
	e[field] = message
}

func (e Errors) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "is required")
	}
}

// OrNil returns the collected errors as an error, or nil if none were recorded.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidEmail(value string) bool {
	return emailPattern.MatchString(strings.TrimSpace(value))
}
