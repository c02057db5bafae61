package attendance

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Layouts for the stored date and 12-hour clock strings.
const (
	DateLayout  = "02 Jan 2006"
	ClockLayout = "03:04 PM"
)

// parseClock converts a 12-hour clock string like "07:59 AM" to minutes
// since midnight. 12 AM maps to hour 0, 12 PM stays 12.
func parseClock(s string) (int, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, fmt.Errorf("malformed clock %q", s)
	}
	hm := strings.SplitN(fields[0], ":", 2)
	if len(hm) != 2 {
		return 0, fmt.Errorf("malformed clock %q", s)
	}
	hours, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, fmt.Errorf("malformed clock %q", s)
	}
	minutes, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, fmt.Errorf("malformed clock %q", s)
	}
	switch strings.ToUpper(fields[1]) {
	case "PM":
		if hours != 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	default:
		return 0, fmt.Errorf("malformed clock %q", s)
	}
	return hours*60 + minutes, nil
}

// ValidClock reports whether s parses as a 12-hour clock string.
func ValidClock(s string) bool {
	_, err := parseClock(s)
	return err == nil
}

// ComputeDuration subtracts two clock strings and formats the difference as
// "<h>h <m>m". Checkout clocks earlier than checkin are not special-cased.
func ComputeDuration(checkIn, checkOut string) (string, error) {
	in, err := parseClock(checkIn)
	if err != nil {
		return "", err
	}
	out, err := parseClock(checkOut)
	if err != nil {
		return "", err
	}
	diff := out - in
	return fmt.Sprintf("%dh %dm", diff/60, diff%60), nil
}

// sortDateDesc orders records newest date first. Unparseable dates sort last.
func sortDateDesc(records []Record) {
	parse := func(s string) int64 {
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			return 0
		}
		return t.Unix()
	}
	sort.SliceStable(records, func(i, j int) bool {
		return parse(records[i].Date) > parse(records[j].Date)
	})
}
