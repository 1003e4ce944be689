package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The studio chain publishes every schedule in US Central time, so the
// converter hardcodes that single zone rule instead of pulling in tzdata:
// UTC-6 standard, UTC-5 between 02:00 on the second Sunday of March and
// 02:00 on the first Sunday of November. The window comparison treats the
// civil instant as if it were UTC, which matches the modern rule for every
// year but does not reproduce historical rule changes.
const (
	standardOffsetHours = -6
	daylightOffsetHours = -5
	dstBoundaryHour     = 2
)

type civilDate struct {
	year  int
	month int
	day   int
}

type civilClock struct {
	hour   int
	minute int
	second int
}

// parseCivilDate reads a YYYY-MM-DD value. Anything that is not three
// numeric fields is a conversion failure, never a panic.
func parseCivilDate(value string) (civilDate, error) {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return civilDate{}, fmt.Errorf("date %q: expected 3 fields, got %d", value, len(parts))
	}
	nums, err := parseFields(value, parts)
	if err != nil {
		return civilDate{}, err
	}
	return civilDate{year: nums[0], month: nums[1], day: nums[2]}, nil
}

// parseCivilClock reads an H:M:S value.
func parseCivilClock(value string) (civilClock, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return civilClock{}, fmt.Errorf("time %q: expected 3 fields, got %d", value, len(parts))
	}
	nums, err := parseFields(value, parts)
	if err != nil {
		return civilClock{}, err
	}
	return civilClock{hour: nums[0], minute: nums[1], second: nums[2]}, nil
}

func parseFields(value string, parts []string) ([3]int, error) {
	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nums, fmt.Errorf("parse %q: %w", value, err)
		}
		nums[i] = n
	}
	return nums, nil
}

// toUTC converts a civil date and clock in US Central time to the absolute
// UTC instant. Subtracting the (negative) offset may push the hour past 23;
// time.Date normalizes the overflow across day, month and year boundaries.
func toUTC(d civilDate, c civilClock) time.Time {
	offset := standardOffsetHours
	civil := time.Date(d.year, time.Month(d.month), d.day, c.hour, c.minute, c.second, 0, time.UTC)
	if inDaylightWindow(civil) {
		offset = daylightOffsetHours
	}
	return time.Date(d.year, time.Month(d.month), d.day, c.hour-offset, c.minute, c.second, 0, time.UTC)
}

// inDaylightWindow reports whether the civil instant falls inside the
// half-open daylight saving window [start, end) of its year.
func inDaylightWindow(civil time.Time) bool {
	year := civil.Year()
	start := time.Date(year, time.March, nthSunday(year, time.March, 2), dstBoundaryHour, 0, 0, 0, time.UTC)
	end := time.Date(year, time.November, nthSunday(year, time.November, 1), dstBoundaryHour, 0, 0, 0, time.UTC)
	return !civil.Before(start) && civil.Before(end)
}

// nthSunday returns the day of month of the nth Sunday.
func nthSunday(year int, month time.Month, n int) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	firstSunday := 1 + (7-int(first.Weekday()))%7
	return firstSunday + 7*(n-1)
}
