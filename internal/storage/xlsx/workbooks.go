package xlsx

import "folha-tarefa/internal/storage"

// Workbooks exposes the package functions as a value the services can hold.
type Workbooks struct{}

func (Workbooks) ReadRows(path string) ([][]string, error) { return ReadRows(path) }

func (Workbooks) WriteTable(path string, t *storage.Table) error { return WriteTable(path, t) }

func (Workbooks) WriteSummary(path string, rows []SummaryRow) error { return WriteSummary(path, rows) }
