// Package normalize turns the raw monday.com export into a canonical table:
// banner rows dropped, real header applied, date and time columns rewritten
// as DD/MM/YYYY and HH:MM text.
package normalize

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"folha-tarefa/internal/constants"
	"folha-tarefa/internal/storage"
)

// bannerRows precede the real header in every export.
const bannerRows = 2

var ErrNoHeader = errors.New("header row not found")

var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02/01/2006 15:04",
	"02/01/2006 15:04:05",
	"2/1/2006 15:04",
	"2/1/2006 15:04:05",
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02-01-2006",
	"02.01.2006",
	"02/01/06",
}

var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04:05 PM",
	"03:04 PM",
	"03:04:05 PM",
	"15H04",
}

// timeLayouts also accept full datetimes and keep only the time of day.
var timeLayouts = append(append([]string{}, clockLayouts...), dateLayouts...)

// excelEpoch is serial day zero in the 1900 date system.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Normalize applies the export contract to raw rows. Unparseable date or time
// cells become blank; only a missing header is an error.
func Normalize(raw [][]string) (*storage.Table, error) {
	const op = "service.normalize.Normalize"

	if len(raw) <= bannerRows {
		return nil, fmt.Errorf("%s: %w", op, ErrNoHeader)
	}

	header := make([]string, len(raw[bannerRows]))
	for i, h := range raw[bannerRows] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		header[i] = h
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoHeader)
	}

	t := &storage.Table{Header: header}
	timeCols := t.Indexes(constants.TimeColumns)
	dateCols := t.Indexes(constants.DateColumns)

	for i, line := range raw[bannerRows+1:] {
		row := make([]string, len(header))
		copy(row, line)
		if strings.TrimSpace(row[0]) == "" {
			continue
		}

		for _, c := range timeCols {
			row[c] = FormatTime(row[c])
		}
		for _, c := range dateCols {
			row[c] = FormatDate(row[c])
		}

		t.Rows = append(t.Rows, row)
		t.Lines = append(t.Lines, bannerRows+i+2)
	}

	return t, nil
}

// FormatDate rewrites v as DD/MM/YYYY, or returns "" when v is not a date.
func FormatDate(v string) string {
	ts, ok := parseInstant(v, dateLayouts)
	if !ok {
		return ""
	}
	return ts.Format(constants.DateLayout)
}

// FormatTime rewrites v as HH:MM, or returns "" when v holds no time of day.
func FormatTime(v string) string {
	ts, ok := parseInstant(v, timeLayouts)
	if !ok {
		return ""
	}
	return ts.Format(constants.TimeLayout)
}

func parseInstant(v string, layouts []string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "nan") {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		return fromSerial(serial)
	}

	for _, layout := range layouts {
		if ts, err := time.Parse(layout, strings.ToUpper(v)); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// fromSerial converts an Excel serial (days plus fraction of day). The time of
// day is rounded to the second so 0.7083333 reads as 17:00.
func fromSerial(serial float64) (time.Time, bool) {
	if serial < 0 || math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, false
	}

	days := math.Floor(serial)
	secs := math.Round((serial - days) * 86400)

	base := excelEpoch
	if days >= 1 {
		d, err := excelize.ExcelDateToTime(days, false)
		if err != nil {
			return time.Time{}, false
		}
		base = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
	return base.Add(time.Duration(secs) * time.Second), true
}
