package shift

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folha-tarefa/internal/constants"
	"folha-tarefa/internal/storage"
)

var day = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

func activity(startDate, startTime, endDate, endTime, status string) storage.ActivityRecord {
	return storage.NewActivityRecord(4, map[string]string{
		constants.ColDescription: "Trocar válvula",
		constants.ColStartDate:   startDate,
		constants.ColStartTime:   startTime,
		constants.ColEndDate:     endDate,
		constants.ColEndTime:     endTime,
		constants.ColStatus:      status,
	})
}

func TestParseShift(t *testing.T) {
	for _, in := range []string{"morning", "MANHÃ", " manha "} {
		s, err := ParseShift(in)
		require.NoError(t, err, in)
		assert.Equal(t, Morning, s)
	}
	for _, in := range []string{"NIGHT", "Noite"} {
		s, err := ParseShift(in)
		require.NoError(t, err, in)
		assert.Equal(t, Night, s)
	}
	_, err := ParseShift("tarde")
	assert.Error(t, err)
}

func TestLabelAndColumns(t *testing.T) {
	assert.Equal(t, "MANHÃ", Morning.Label())
	assert.Equal(t, "NOITE", Night.Label())
	assert.Equal(t, constants.ColMorningForeman, Morning.ForemanColumn())
	assert.Equal(t, constants.ColNightForeman, Night.ForemanColumn())

	rec := storage.NewActivityRecord(1, map[string]string{
		constants.ColMorningForeman: "Carlos",
		constants.ColNightForeman:   "Renato",
	})
	assert.Equal(t, "Carlos", Morning.Foreman(rec))
	assert.Equal(t, "Renato", Night.Foreman(rec))
}

func TestWindowFor(t *testing.T) {
	m := WindowFor(day.Add(13*time.Hour), Morning)
	assert.Equal(t, time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC), m.Start)
	assert.Equal(t, time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC), m.End)

	n := WindowFor(day, Night)
	assert.Equal(t, time.Date(2024, 3, 15, 19, 30, 0, 0, time.UTC), n.Start)
	assert.Equal(t, time.Date(2024, 3, 16, 5, 0, 0, 0, time.UTC), n.End)
}

func TestBelongs(t *testing.T) {
	cases := []struct {
		name  string
		rec   storage.ActivityRecord
		shift Shift
		want  bool
	}{
		{"overlaps end of morning", activity("15/03/2024", "17:00", "15/03/2024", "19:00", "Planned"), Morning, true},
		{"night excludes early morning", activity("15/03/2024", "04:00", "15/03/2024", "06:00", "Planned"), Night, false},
		{"ends exactly at window start", activity("15/03/2024", "06:00", "15/03/2024", "08:30", ""), Morning, false},
		{"starts exactly at window end", activity("15/03/2024", "18:00", "15/03/2024", "19:00", ""), Morning, false},
		{"overnight roll-over", activity("15/03/2024", "22:00", "15/03/2024", "02:00", ""), Night, true},
		{"equal instants roll over", activity("15/03/2024", "20:00", "15/03/2024", "20:00", ""), Night, true},
		{"next day inside night window", activity("16/03/2024", "01:00", "16/03/2024", "03:00", ""), Night, true},
		{"other day", activity("14/03/2024", "09:00", "14/03/2024", "10:00", ""), Morning, false},
		{"multi day span", activity("10/03/2024", "08:00", "20/03/2024", "17:00", ""), Morning, true},
		{"missing time", activity("15/03/2024", "", "15/03/2024", "10:00", ""), Morning, false},
		{"missing date", activity("", "09:00", "15/03/2024", "10:00", ""), Morning, false},
		{"override ignores missing schedule", activity("", "", "", "", " Atraso "), Morning, true},
		{"override english", activity("lixo", "x", "", "", "In Progress"), Night, true},
		{"override em andamento", activity("01/01/2020", "09:00", "01/01/2020", "10:00", "EM ANDAMENTO"), Night, true},
		{"delay", activity("", "", "", "", "delay"), Night, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Belongs(tc.rec, day, tc.shift))
		})
	}
}

func TestPartition_LogsExcluded(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	keep := activity("15/03/2024", "09:00", "15/03/2024", "10:00", "")
	drop := storage.NewActivityRecord(9, map[string]string{constants.ColStatus: "Planned"})

	got := Partition(log, []storage.ActivityRecord{drop, keep, keep}, day, Morning)

	assert.Len(t, got, 2)
	assert.Contains(t, buf.String(), "activity ignored")
	assert.Contains(t, buf.String(), constants.DefaultDescription)
	assert.Contains(t, buf.String(), "row=9")
}
