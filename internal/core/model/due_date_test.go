package model

import (
	"errors"
	"testing"
	"time"
)

func TestParseDueDate(t *testing.T) {
	date, err := ParseDueDate("2025-01-15")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), date; !e.Equal(g) {
		t.Errorf("date: expected %s, got %s", e, g)
	}

	if e, g := int64(1736899200), date.Unix(); e != g {
		t.Errorf("date.Unix(): expected %d, got %d", e, g)
	}
}

func TestParseDueDateInvalid(t *testing.T) {
	invalid := []string{
		"2024-13-01",
		"2024-02-30",
		"15-01-2025",
		"2025/01/15",
		"tomorrow",
		"",
	}

	for _, text := range invalid {
		if _, err := ParseDueDate(text); !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("ParseDueDate(%q): expected ErrInvalidDateFormat, got %v", text, err)
		}
	}
}
