// Package shift decides which activities belong on a shift's task sheet.
package shift

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"folha-tarefa/internal/constants"
	"folha-tarefa/internal/storage"
)

type Shift string

const (
	Morning Shift = "MORNING"
	Night   Shift = "NIGHT"
)

var (
	morningStart = 8*time.Hour + 30*time.Minute
	morningEnd   = 18 * time.Hour
	nightStart   = 19*time.Hour + 30*time.Minute
	nightEnd     = 5 * time.Hour // next day
)

// ParseShift accepts the English and Portuguese names, ignoring case.
func ParseShift(s string) (Shift, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "morning", "manhã", "manha":
		return Morning, nil
	case "night", "noite":
		return Night, nil
	}
	return "", fmt.Errorf("unknown shift %q", s)
}

// Label is the name printed on sheets and used in file names.
func (s Shift) Label() string {
	if s == Night {
		return "NOITE"
	}
	return "MANHÃ"
}

// ForemanColumn is the spreadsheet column holding the shift's supervisor.
func (s Shift) ForemanColumn() string {
	if s == Night {
		return constants.ColNightForeman
	}
	return constants.ColMorningForeman
}

// Foreman returns the record's supervisor for the shift.
func (s Shift) Foreman(rec storage.ActivityRecord) string {
	if s == Night {
		return rec.NightForeman
	}
	return rec.MorningForeman
}

// Window is the half-open [Start, End) interval a shift covers.
type Window struct {
	Start time.Time
	End   time.Time
}

// WindowFor resolves the shift on date. Night windows end the next morning.
func WindowFor(date time.Time, s Shift) Window {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if s == Night {
		return Window{
			Start: day.Add(nightStart),
			End:   day.AddDate(0, 0, 1).Add(nightEnd),
		}
	}
	return Window{
		Start: day.Add(morningStart),
		End:   day.Add(morningEnd),
	}
}

// Overlaps reports whether [start, end) intersects the window.
func (w Window) Overlaps(start, end time.Time) bool {
	return start.Before(w.End) && end.After(w.Start)
}

// IsOverride reports whether status forces the activity onto every sheet.
func IsOverride(status string) bool {
	return constants.OverrideStatus[strings.ToLower(strings.TrimSpace(status))]
}

// Belongs reports whether rec goes on the sheet for date and shift.
func Belongs(rec storage.ActivityRecord, date time.Time, s Shift) bool {
	if IsOverride(rec.Status) {
		return true
	}

	sched := rec.Schedule()
	if !sched.OK {
		return false
	}

	start := sched.StartDate.Add(sched.StartTime)
	end := sched.EndDate.Add(sched.EndTime)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}

	return WindowFor(date, s).Overlaps(start, end)
}

// Partition keeps the records that belong to the shift, in their original
// order, and logs every activity left out.
func Partition(log *slog.Logger, records []storage.ActivityRecord, date time.Time, s Shift) []storage.ActivityRecord {
	kept := make([]storage.ActivityRecord, 0, len(records))
	for _, rec := range records {
		if Belongs(rec, date, s) {
			kept = append(kept, rec)
			continue
		}
		log.Warn("activity ignored (outside shift)",
			slog.String("description", rec.Label()),
			slog.Int("row", rec.Row),
			slog.String("shift", s.Label()),
		)
	}
	return kept
}
