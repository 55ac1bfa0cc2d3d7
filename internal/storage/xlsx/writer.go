package xlsx

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"folha-tarefa/internal/storage"
)

const (
	normalizedSheet = "Atividades"
	summarySheet    = "Resumo"
)

// SummaryRow is one line of the run summary workbook.
type SummaryRow struct {
	Supervisor string
	Activities int
	Fragments  int
	Pages      int
	File       string
	Error      string
}

// WriteTable saves the normalized table so operators can inspect what was read.
func WriteTable(path string, t *storage.Table) error {
	const op = "storage.xlsx.WriteTable"

	rows := make([][]any, 0, len(t.Rows))
	for _, r := range t.Rows {
		line := make([]any, len(r))
		for i, v := range r {
			line[i] = v
		}
		rows = append(rows, line)
	}

	if err := writeSheet(path, normalizedSheet, t.Header, rows); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// WriteSummary lists what was generated for each supervisor in one run.
func WriteSummary(path string, summary []SummaryRow) error {
	const op = "storage.xlsx.WriteSummary"

	header := []string{"Encarregado", "Atividades", "Tabelas", "Páginas", "Arquivo", "Erro"}
	rows := make([][]any, 0, len(summary))
	for _, s := range summary {
		rows = append(rows, []any{s.Supervisor, s.Activities, s.Fragments, s.Pages, s.File, s.Error})
	}

	if err := writeSheet(path, summarySheet, header, rows); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func writeSheet(path, sheet string, header []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"D9D9D9"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return err
	}

	for i, name := range header {
		if err := f.SetCellValue(sheet, cellName(i+1, 1), name); err != nil {
			return err
		}
	}
	if len(header) > 0 {
		if err := f.SetCellStyle(sheet, "A1", cellName(len(header), 1), headerStyle); err != nil {
			return err
		}
	}

	for r, row := range rows {
		if err := f.SetSheetRow(sheet, cellName(1, r+2), &row); err != nil {
			return err
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	if len(header) > 0 {
		last, _ := excelize.ColumnNumberToName(len(header))
		if err := f.SetColWidth(sheet, "A", last, 18); err != nil {
			return err
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
