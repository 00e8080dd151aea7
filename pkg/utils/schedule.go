package utils

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	minutesPerDay = 24 * 60

	// Boarding opens a fixed lead ahead of scheduled departure.
	boardingLeadMinutes = 30
)

// ClockMinutes parses an HH:MM local clock time into minutes since midnight.
func ClockMinutes(clock string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(clock), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock time %q out of range", clock)
	}

	return hours*60 + minutes, nil
}

// FormatClock renders minutes since midnight as HH:MM, wrapping across days.
func FormatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// BoardingTime returns the boarding clock time for a scheduled departure,
// 30 minutes earlier. A departure just after midnight wraps to the previous
// clock day (00:10 boards at 23:40).
func BoardingTime(departure string) (string, error) {
	mins, err := ClockMinutes(departure)
	if err != nil {
		return "", err
	}
	return FormatClock(mins - boardingLeadMinutes), nil
}

// ClockDistance returns the minimal circular distance in minutes between two
// HH:MM clock times, so departures either side of midnight still compare.
func ClockDistance(a, b string) (int, error) {
	am, err := ClockMinutes(a)
	if err != nil {
		return 0, err
	}
	bm, err := ClockMinutes(b)
	if err != nil {
		return 0, err
	}

	d := am - bm
	if d < 0 {
		d = -d
	}
	if d > minutesPerDay/2 {
		d = minutesPerDay - d
	}
	return d, nil
}
