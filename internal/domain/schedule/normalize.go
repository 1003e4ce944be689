package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// utcMillis renders an instant as ISO-8601 UTC with millisecond precision,
// the format the frontend sorts and displays.
const utcMillis = "2006-01-02T15:04:05.000Z"

// Normalize turns a raw booking-platform payload into day-grouped, UTC
// annotated classes. The payload may be a bare JSON array or an object whose
// "result" field holds the array; null, non-array and otherwise malformed
// payloads yield an empty slice rather than an error. Records missing their
// date or times, or carrying unparsable ones, are dropped silently.
func Normalize(payload []byte) []DayGroup {
	return normalizeRecords(decodeRecords(payload))
}

func decodeRecords(payload []byte) []ClassRecord {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] == '{' {
		var envelope struct {
			Result json.RawMessage `json:"result"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil
		}
		trimmed = bytes.TrimSpace(envelope.Result)
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return nil
	}
	records := make([]ClassRecord, 0, len(elements))
	for _, element := range elements {
		var rec ClassRecord
		if err := json.Unmarshal(element, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records
}

func normalizeRecords(records []ClassRecord) []DayGroup {
	byDate := make(map[string]*DayGroup)

	for _, rec := range records {
		if rec.ArrivalDate == "" || rec.StartTime == "" || rec.EndTime == "" {
			continue
		}
		date, err := parseCivilDate(rec.ArrivalDate)
		if err != nil {
			continue
		}
		start, err := parseCivilClock(rec.StartTime)
		if err != nil {
			continue
		}
		end, err := parseCivilClock(rec.EndTime)
		if err != nil {
			continue
		}

		utcStart := toUTC(date, start)
		utcEnd := toUTC(date, end)
		dayFull := time.Date(date.year, time.Month(date.month), date.day, 0, 0, 0, 0, time.UTC).Weekday().String()
		dayShort := dayFull[:3]

		cls := Class{
			ID:               rec.ID,
			ClassID:          rec.ClassID,
			Name:             rec.Name,
			Location:         locationLabel(rec),
			Date:             rec.ArrivalDate,
			DayShort:         dayShort,
			DayFull:          dayFull,
			StartTime:        rec.StartTime,
			EndTime:          rec.EndTime,
			StartTimeDisplay: displayClock(start),
			EndTimeDisplay:   displayClock(end),
			UTCStart:         utcStart.Format(utcMillis),
			UTCEnd:           utcEnd.Format(utcMillis),
			UTCStartShort:    utcStart.Format("15:04"),
			UTCEndShort:      utcEnd.Format("15:04"),
			Availability:     rec.Availability,
			Description:      rec.Description,
			DescriptionHTML:  rec.DescriptionHTML,
		}

		group, ok := byDate[rec.ArrivalDate]
		if !ok {
			group = &DayGroup{Date: rec.ArrivalDate, DayShort: dayShort, DayFull: dayFull}
			byDate[rec.ArrivalDate] = group
		}
		group.Classes = append(group.Classes, cls)
	}

	days := make([]DayGroup, 0, len(byDate))
	for _, group := range byDate {
		days = append(days, *group)
	}
	sortDayGroups(days)
	return days
}

// sortDayGroups orders days ascending by date and classes within each day
// ascending by UTC start. Both keys are fixed-width zero-padded strings, so
// lexicographic comparison is chronological. Stable sorts keep insertion
// order for classes sharing a start instant.
func sortDayGroups(days []DayGroup) {
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
	for i := range days {
		classes := days[i].Classes
		sort.SliceStable(classes, func(a, b int) bool {
			return classes[a].UTCStart < classes[b].UTCStart
		})
	}
}

// locationLabel prefers the class location over the business name.
func locationLabel(rec ClassRecord) string {
	if rec.Location != "" {
		return rec.Location
	}
	return rec.CompanyName
}

// displayClock renders a civil clock as "h:mm am" / "h:mm pm".
func displayClock(c civilClock) string {
	hour := c.hour % 12
	if hour == 0 {
		hour = 12
	}
	suffix := "am"
	if c.hour%24 >= 12 {
		suffix = "pm"
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.minute, suffix)
}
