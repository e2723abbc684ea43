package model

import (
	"errors"
	"time"
)

// DueDateLayout is the only accepted input format for due dates. Due dates
// carry no time-of-day: a parsed date is midnight UTC of that calendar day.
const DueDateLayout = "2006-01-02"

var ErrInvalidDateFormat = errors.New("invalid date format")

func ParseDueDate(text string) (time.Time, error) {
	date, err := time.ParseInLocation(DueDateLayout, text, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}

	return date, nil
}
