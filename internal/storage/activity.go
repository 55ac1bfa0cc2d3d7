package storage

import (
	"strings"
	"time"

	"folha-tarefa/internal/constants"
)

// ActivityRecord is one normalized row of the spreadsheet.
type ActivityRecord struct {
	Row            int
	Description    string
	Location       string
	StartDate      string
	EndDate        string
	StartTime      string
	EndTime        string
	Status         string
	MorningForeman string
	NightForeman   string

	// Fields keeps every column of the row, keyed by header.
	Fields map[string]string
}

// Schedule holds the parsed start/end pairs of a record. OK is false when any
// of the four values is missing or malformed.
type Schedule struct {
	StartDate time.Time
	EndDate   time.Time
	StartTime time.Duration
	EndTime   time.Duration
	OK        bool
}

func NewActivityRecord(row int, fields map[string]string) ActivityRecord {
	if fields == nil {
		fields = map[string]string{}
	}
	for _, col := range constants.BlankFilled {
		if _, ok := fields[col]; !ok {
			fields[col] = ""
		}
	}

	return ActivityRecord{
		Row:            row,
		Description:    fields[constants.ColDescription],
		Location:       fields[constants.ColLocation],
		StartDate:      fields[constants.ColStartDate],
		EndDate:        fields[constants.ColEndDate],
		StartTime:      fields[constants.ColStartTime],
		EndTime:        fields[constants.ColEndTime],
		Status:         fields[constants.ColStatus],
		MorningForeman: fields[constants.ColMorningForeman],
		NightForeman:   fields[constants.ColNightForeman],
		Fields:         fields,
	}
}

func (r ActivityRecord) Schedule() Schedule {
	var s Schedule
	var ok1, ok2, ok3, ok4 bool

	s.StartDate, ok1 = ParseDate(r.StartDate)
	s.EndDate, ok2 = ParseDate(r.EndDate)
	s.StartTime, ok3 = ParseClock(r.StartTime)
	s.EndTime, ok4 = ParseClock(r.EndTime)
	s.OK = ok1 && ok2 && ok3 && ok4

	return s
}

// Label is the description used in logs.
func (r ActivityRecord) Label() string {
	if d := strings.TrimSpace(r.Description); d != "" {
		return d
	}
	return constants.DefaultDescription
}

// ParseDate parses a DD/MM/YYYY value into a midnight UTC date.
func ParseDate(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(constants.DateLayout, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseClock parses an HH:MM value into an offset from midnight.
func ParseClock(v string) (time.Duration, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	// the hour accepts one digit, e.g. 8:30
	t, err := time.Parse(constants.TimeLayout, v)
	if err != nil {
		return 0, false
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, true
}
