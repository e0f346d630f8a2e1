package entity

// CanonicalWeekdays lists the seven weekday names in storage order. Every
// persisted schedule contains exactly these days, in this order.
var CanonicalWeekdays = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// ScheduleEntry describes the opening hours of a store on a single weekday.
// A closed day carries no opening or closing time.
type ScheduleEntry struct {
	Day      string  `json:"day"`      // One of CanonicalWeekdays.
	OpensAt  *string `json:"opensAt"`  // Opening time, e.g. "09:00". Nil when closed.
	ClosesAt *string `json:"closesAt"` // Closing time, e.g. "17:00". Nil when closed.
	Closed   bool    `json:"closed"`   // True when the store does not open that day.
}

// WeekSchedule is a full week of schedule entries, one per canonical weekday.
type WeekSchedule []ScheduleEntry

// NormalizeWeekSchedule merges partial caller input into a complete seven-day
// schedule. Days missing from the input are synthesized as closed with no
// opening or closing times. Input entries with unknown day names are dropped.
// The result is always exactly seven entries in canonical order.
func NormalizeWeekSchedule(input []ScheduleEntry) WeekSchedule {
	byDay := make(map[string]ScheduleEntry, len(input))
	for _, e := range input {
		byDay[e.Day] = e
	}

	schedule := make(WeekSchedule, 0, len(CanonicalWeekdays))
	for _, day := range CanonicalWeekdays {
		entry, ok := byDay[day]
		if !ok {
			entry = ScheduleEntry{Day: day, Closed: true}
		}
		if entry.Closed {
			entry.OpensAt = nil
			entry.ClosesAt = nil
		}
		schedule = append(schedule, entry)
	}

	return schedule
}
