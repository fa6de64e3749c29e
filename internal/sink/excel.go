package sink

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/2389/recgen/internal/record"
)

const excelColumnWidth = 24

// Excel streams records into a single-sheet workbook saved on Close.
type Excel struct {
	kind  record.Kind
	path  string
	file  *excelize.File
	sw    *excelize.StreamWriter
	row   int
	width int
}

// CreateExcel starts a workbook whose only sheet is named after kind.
func CreateExcel(path string, kind record.Kind) (*Excel, error) {
	f := excelize.NewFile()
	sheet := kind.String()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, err
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create stream writer: %w", err)
	}

	headers := record.Headers(kind)
	if err := sw.SetColWidth(1, len(headers), excelColumnWidth); err != nil {
		f.Close()
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}
	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = excelize.Cell{StyleID: bold, Value: h}
	}
	if err := sw.SetRow("A1", cells, excelize.RowOpts{StyleID: bold}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write headers: %w", err)
	}

	return &Excel{kind: kind, path: path, file: f, sw: sw, row: 2, width: len(headers)}, nil
}

func (s *Excel) WriteRecords(records []record.Record) error {
	for _, r := range records {
		if err := checkKind(s.kind, r); err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(1, s.row)
		if err != nil {
			return err
		}
		row := r.Row()
		if len(row) > s.width {
			row = row[:s.width]
		}
		if err := s.sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", s.row, err)
		}
		s.row++
	}
	return nil
}

// Close flushes the sheet and saves the workbook to disk.
func (s *Excel) Close() error {
	defer s.file.Close()
	if err := s.sw.Flush(); err != nil {
		return err
	}
	if err := s.file.SaveAs(s.path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
