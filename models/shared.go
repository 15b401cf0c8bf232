package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Address holds a user's postal address.
type Address struct {
	Street  string `bson:"street,omitempty" json:"street,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	ZipCode string `bson:"zipCode,omitempty" json:"zipCode,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

// SlotWindow is a time-of-day interval in 24-hour "HH:mm" form.
type SlotWindow struct {
	Start string `bson:"start" json:"start" binding:"required"`
	End   string `bson:"end" json:"end" binding:"required"`
}

// ClockMinutes parses an "HH:mm" string into minutes since midnight.
func ClockMinutes(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:mm", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", clock)
	}
	return h*60 + m, nil
}

// Validate checks that both bounds parse and the window has positive length.
func (w SlotWindow) Validate() error {
	start, err := ClockMinutes(w.Start)
	if err != nil {
		return err
	}
	end, err := ClockMinutes(w.End)
	if err != nil {
		return err
	}
	if end <= start {
		return fmt.Errorf("end time %q must be after start time %q", w.End, w.Start)
	}
	return nil
}

// Weekday names accepted in availability templates.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// IsWeekday reports whether day is a valid lowercase weekday name.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
