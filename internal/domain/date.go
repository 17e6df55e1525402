package domain

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date accepted by ResolveDate
const DateLayout = "2006-01-02"

var ErrUnparsableDate = errors.New("unparsable date")

// ResolveDate turns a date token into a calendar date (local midnight).
// Accepted tokens: YYYY-MM-DD, today, yesterday, month, biweekly, friday.
func ResolveDate(token string, now time.Time) (time.Time, error) {
	if date, err := time.ParseInLocation(DateLayout, token, time.Local); err == nil {
		return date, nil
	}

	today := startOfDay(now)
	switch token {
	case "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "month":
		return today.AddDate(0, 0, 1-today.Day()), nil
	case "biweekly":
		target := 1
		if today.Day() >= 15 {
			target = 15
		}
		return today.AddDate(0, 0, target-today.Day()), nil
	case "friday":
		gap := (int(today.Weekday()) - int(time.Friday) + 7) % 7
		return today.AddDate(0, 0, -gap), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableDate, token)
	}
}
