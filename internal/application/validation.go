package application

import (
	"fmt"
	"strings"
	"time"

	"timelog/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "ticketKey" -> "ticket key")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"ticketKey": "ticket key",
		"startDate": "start date",
		"endDate":   "end date",
		"path":      "path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateTicketKey checks that key looks like PROJECT-123
func ValidateTicketKey(fieldName, key string) error {
	if err := ValidateRequired(fieldName, key); err != nil {
		return err
	}
	project, number, ok := strings.Cut(key, "-")
	if !ok || project == "" || number == "" || !domain.LooksLikeTicket(key) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected %s like ABC-123, got: %s", formatFieldName(fieldName), key),
		}
	}
	return nil
}

// ResolveDate turns an optional date token into a calendar date. An empty
// token yields the zero time. Unparsable tokens wrap ErrInvalidDate.
func ResolveDate(fieldName, token string, now time.Time) (time.Time, error) {
	if token == "" {
		return time.Time{}, nil
	}
	date, err := domain.ResolveDate(token, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", formatFieldName(fieldName), err)
	}
	return date, nil
}
