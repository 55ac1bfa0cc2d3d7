package generate_pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"folha-tarefa/internal/constants"
	"folha-tarefa/internal/service/layout"
	"folha-tarefa/internal/service/shift"
	"folha-tarefa/internal/storage"
	"folha-tarefa/internal/storage/xlsx"
)

type MockSpreadsheet struct {
	mock.Mock
}

func (m *MockSpreadsheet) ReadRows(path string) ([][]string, error) {
	args := m.Called(path)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	rows, ok := args.Get(0).([][]string)
	if !ok {
		return nil, fmt.Errorf("expected [][]string, got %T", args.Get(0))
	}

	return rows, args.Error(1)
}

func (m *MockSpreadsheet) WriteTable(path string, t *storage.Table) error {
	return m.Called(path, t).Error(0)
}

func (m *MockSpreadsheet) WriteSummary(path string, rows []xlsx.SummaryRow) error {
	return m.Called(path, rows).Error(0)
}

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) Write(ctx context.Context, doc Document, path string) (int, error) {
	args := m.Called(ctx, doc, path)
	return args.Int(0), args.Error(1)
}

type MockCovers struct {
	mock.Mock
}

func (m *MockCovers) Build(supervisor string, date time.Time, shiftLabel string) layout.Grid {
	args := m.Called(supervisor, date, shiftLabel)
	return args.Get(0).(layout.Grid)
}

var day = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

var header = []string{
	"Name", constants.ColDescription, constants.ColLocation,
	constants.ColStartDate, constants.ColEndDate, constants.ColStartTime, constants.ColEndTime,
	constants.ColStatus, constants.ColMorningForeman, constants.ColNightForeman,
}

func export() [][]string {
	return [][]string{
		{"Quadro de atividades"},
		{"Exportado em 14/03/2024"},
		header,
		{"A-1", "Trocar válvula", "U-272D", "15/03/2024", "15/03/2024", "09:00", "11:00", "", "Carlos", "Renato"},
		{"A-2", "Pintura", "U-272D", "15/03/2024", "15/03/2024", "20:00", "22:00", "", "Carlos", "Renato"},
		{"A-3", "Solda", "Pipe rack", "", "", "", "", "Atraso", "ana", ""},
		{"A-4", "Inspeção", "U-272D", "15/03/2024", "15/03/2024", "09:00", "10:00", "", "carlos ", ""},
		{"A-5", "Sem encarregado", "U-272D", "15/03/2024", "15/03/2024", "09:00", "10:00", "", "", ""},
	}
}

func record(fields map[string]string) storage.ActivityRecord {
	return storage.NewActivityRecord(4, fields)
}

func newService(t *testing.T, sheets Spreadsheet, writer DocumentWriter, covers CoverBuilder, opts Options) (*GenerateService, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	opts.Styles = layout.DefaultStyles()
	opts.Checkbox = layout.Box(0.35, 0.35)
	return NewGenerateService(log, sheets, writer, covers, opts), &buf
}

func TestAssemble_FragmentsAndBreaks(t *testing.T) {
	st := layout.DefaultStyles()
	for _, n := range []int{0, 1, 4, 5, 9} {
		records := make([]storage.ActivityRecord, n)
		for i := range records {
			records[i] = record(map[string]string{constants.ColDescription: fmt.Sprintf("atividade %d", i+1)})
		}

		doc := Assemble("t", layout.Grid{}, records, header, st, layout.Box(0.35, 0.35))

		fragments := n + BlankFragments
		assert.Equal(t, fragments+1, doc.Grids(), "records=%d", n)
		assert.Equal(t, fragments/FragmentsPerPage, doc.PageBreaks(), "records=%d", n)
	}
}

func TestAssemble_Order(t *testing.T) {
	st := layout.DefaultStyles()
	records := []storage.ActivityRecord{
		record(map[string]string{constants.ColDescription: "primeira"}),
		record(map[string]string{constants.ColDescription: "segunda"}),
		record(map[string]string{constants.ColDescription: "terceira"}),
		record(map[string]string{constants.ColDescription: "quarta"}),
	}

	doc := Assemble("t", layout.Grid{}, records, header, st, layout.Box(0.35, 0.35))

	require.Equal(t, BlockGrid, doc.Blocks[0].Kind)
	require.Equal(t, BlockSpacer, doc.Blocks[1].Kind)
	assert.InDelta(t, 12, doc.Blocks[1].Height, 1e-9)

	var descriptions, frames []string
	for _, b := range doc.Blocks[2:] {
		if b.Kind != BlockGrid {
			continue
		}
		frame, _ := b.Grid.Rows[0][1].Rich()
		desc, _ := b.Grid.Rows[1][0].Rich()
		frames = append(frames, frame.Text)
		descriptions = append(descriptions, desc.Text)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, frames)
	assert.Equal(t, []string{"primeira", "segunda", "terceira", "quarta", "", "", ""}, descriptions)

	// fourth fragment: grid, spacer, break
	assert.Equal(t, BlockGrid, doc.Blocks[8].Kind)
	assert.Equal(t, BlockSpacer, doc.Blocks[9].Kind)
	assert.InDelta(t, 1, doc.Blocks[9].Height, 1e-9)
	assert.Equal(t, BlockPageBreak, doc.Blocks[10].Kind)
}

func TestGroupBySupervisor(t *testing.T) {
	records := []storage.ActivityRecord{
		record(map[string]string{constants.ColDescription: "a", constants.ColMorningForeman: "Paulo"}),
		record(map[string]string{constants.ColDescription: "b", constants.ColMorningForeman: "  carlos"}),
		record(map[string]string{constants.ColDescription: "c", constants.ColMorningForeman: ""}),
		record(map[string]string{constants.ColDescription: "d", constants.ColMorningForeman: "Carlos"}),
		record(map[string]string{constants.ColDescription: "e", constants.ColMorningForeman: "Paulo", constants.ColNightForeman: "Renato"}),
	}

	groups := GroupBySupervisor(records, shift.Morning)
	require.Len(t, groups, 2)

	assert.Equal(t, "Carlos", groups[0].Supervisor)
	assert.Equal(t, []string{"b", "d"}, []string{groups[0].Records[0].Description, groups[0].Records[1].Description})
	assert.Equal(t, "Paulo", groups[1].Supervisor)
	assert.Len(t, groups[1].Records, 2)

	night := GroupBySupervisor(records, shift.Night)
	require.Len(t, night, 1)
	assert.Equal(t, "Renato", night[0].Supervisor)
}

func TestNaming(t *testing.T) {
	assert.Equal(t, "Folhas-Tarefa 15-03-2024_MANHÃ", FolderName("Folhas-Tarefa", day, shift.Morning))
	assert.Equal(t, "15-03-2024_NOITE", FolderName("", day, shift.Night))
	assert.Equal(t, "Folha_Tarefa_Carlos_15-03-2024_NOITE.pdf", FileName("Folha_Tarefa", "Carlos", day, shift.Night))
	assert.Equal(t, "Folha_Tarefa_J_ Silva_15-03-2024_MANHÃ.pdf", FileName("Folha_Tarefa", "J/ Silva", day, shift.Morning))
	assert.Equal(t, "Carlos_15-03-2024_MANHÃ.pdf", FileName("", "Carlos", day, shift.Morning))
}

func TestRun(t *testing.T) {
	out := t.TempDir()
	folder := filepath.Join(out, "Folhas-Tarefa 15-03-2024_MANHÃ")
	normalized := filepath.Join(out, "saida_tratada.xlsx")

	sheets := new(MockSpreadsheet)
	sheets.On("ReadRows", "export.xlsx").Return(export(), nil)
	sheets.On("WriteTable", normalized, mock.MatchedBy(func(t *storage.Table) bool {
		return len(t.Rows) == 5
	})).Return(nil)
	sheets.On("WriteSummary", filepath.Join(folder, "resumo.xlsx"), mock.MatchedBy(func(rows []xlsx.SummaryRow) bool {
		return len(rows) == 2 &&
			rows[0].Supervisor == "Carlos" && rows[0].File == "Folha_Tarefa_Carlos_15-03-2024_MANHÃ.pdf" && rows[0].Pages == 2 &&
			rows[1].Supervisor == "ana" && rows[1].Error != "" && rows[1].File == ""
	})).Return(nil)

	covers := new(MockCovers)
	covers.On("Build", "Carlos", day, "MANHÃ").Return(layout.Grid{})
	covers.On("Build", "ana", day, "MANHÃ").Return(layout.Grid{})

	writer := new(MockWriter)
	writer.On("Write", mock.Anything, mock.MatchedBy(func(d Document) bool { return d.Grids() == 6 }),
		filepath.Join(folder, "Folha_Tarefa_Carlos_15-03-2024_MANHÃ.pdf")).Return(2, nil)
	writer.On("Write", mock.Anything, mock.MatchedBy(func(d Document) bool { return d.Grids() == 5 }),
		filepath.Join(folder, "Folha_Tarefa_ana_15-03-2024_MANHÃ.pdf")).Return(0, errors.New("disk full"))

	svc, logs := newService(t, sheets, writer, covers, Options{
		OutputDir:      out,
		FolderPrefix:   "Folhas-Tarefa",
		ArtifactPrefix: "Folha_Tarefa",
		NormalizedPath: normalized,
		Summary:        true,
	})

	report, err := svc.Run(context.Background(), Request{InputPath: "export.xlsx", Date: day, Shift: shift.Morning})
	require.NoError(t, err)

	assert.Equal(t, folder, report.Folder)
	assert.DirExists(t, folder)
	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 4, report.Kept)
	require.Len(t, report.Results, 2)

	carlos := report.Results[0]
	assert.Equal(t, "Carlos", carlos.Supervisor)
	assert.Equal(t, 2, carlos.Activities)
	assert.Equal(t, 5, carlos.Fragments)
	assert.Equal(t, 2, carlos.Pages)
	assert.NoError(t, carlos.Err)

	ana := report.Results[1]
	assert.Equal(t, "ana", ana.Supervisor)
	assert.ErrorContains(t, ana.Err, "disk full")
	assert.Equal(t, 1, report.Failed())

	assert.Contains(t, logs.String(), "activity ignored (outside shift)")
	assert.Contains(t, logs.String(), "failed to generate task sheet")

	sheets.AssertExpectations(t)
	covers.AssertExpectations(t)
	writer.AssertExpectations(t)
}

func TestRun_PanicIsContained(t *testing.T) {
	sheets := new(MockSpreadsheet)
	sheets.On("ReadRows", "export.xlsx").Return(export(), nil)

	covers := new(MockCovers)
	covers.On("Build", "Carlos", day, "MANHÃ").Return(layout.Grid{})
	covers.On("Build", "ana", day, "MANHÃ").Return(nil)

	writer := new(MockWriter)
	writer.On("Write", mock.Anything, mock.Anything, mock.Anything).Return(1, nil)

	svc, _ := newService(t, sheets, writer, covers, Options{OutputDir: t.TempDir()})

	report, err := svc.Run(context.Background(), Request{InputPath: "export.xlsx", Date: day, Shift: shift.Morning})
	require.NoError(t, err)
	require.Len(t, report.Results, 2)

	assert.NoError(t, report.Results[0].Err)
	assert.ErrorContains(t, report.Results[1].Err, "panic")
	writer.AssertNumberOfCalls(t, "Write", 1)
}

func TestRun_NoInput(t *testing.T) {
	svc, _ := newService(t, new(MockSpreadsheet), new(MockWriter), new(MockCovers), Options{})

	_, err := svc.Run(context.Background(), Request{Date: day, Shift: shift.Morning})
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestRun_ReadFailure(t *testing.T) {
	sheets := new(MockSpreadsheet)
	sheets.On("ReadRows", "missing.xlsx").Return(nil, errors.New("open missing.xlsx: no such file"))

	svc, _ := newService(t, sheets, new(MockWriter), new(MockCovers), Options{OutputDir: t.TempDir()})

	_, err := svc.Run(context.Background(), Request{InputPath: "missing.xlsx", Date: day, Shift: shift.Morning})
	assert.ErrorContains(t, err, "no such file")
}

func TestRun_NormalizedSaveFailureIsNotFatal(t *testing.T) {
	sheets := new(MockSpreadsheet)
	sheets.On("ReadRows", "export.xlsx").Return(export(), nil)
	sheets.On("WriteTable", "saida.xlsx", mock.Anything).Return(errors.New("read-only"))

	covers := new(MockCovers)
	covers.On("Build", mock.Anything, day, "NOITE").Return(layout.Grid{})

	writer := new(MockWriter)
	writer.On("Write", mock.Anything, mock.Anything, mock.Anything).Return(1, nil)

	svc, logs := newService(t, sheets, writer, covers, Options{OutputDir: t.TempDir(), NormalizedPath: "saida.xlsx"})

	report, err := svc.Run(context.Background(), Request{InputPath: "export.xlsx", Date: day, Shift: shift.Night})
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "Renato", report.Results[0].Supervisor)
	assert.Contains(t, logs.String(), "failed to save normalized spreadsheet")
}
