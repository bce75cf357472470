package spreadsheet

import (
	"fmt"

	portssvc "github.com/SscSPs/receivables_app/internal/core/ports/services"
	"github.com/xuri/excelize/v2"
)

const defaultColumnWidth = 18

// Writer builds single-sheet xlsx workbooks.
type Writer struct{}

// NewWriter creates a new spreadsheet writer.
func NewWriter() *Writer {
	return &Writer{}
}

var _ portssvc.SheetWriter = (*Writer)(nil)

// WriteRows writes a bold header row followed by rows into a workbook whose only sheet is sheetName.
func (w *Writer) WriteRows(sheetName string, header []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerCells); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if len(header) > 0 {
		lastCol, err := excelize.ColumnNumberToName(len(header))
		if err != nil {
			return nil, err
		}
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, fmt.Errorf("failed to create header style: %w", err)
		}
		if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", style); err != nil {
			return nil, fmt.Errorf("failed to style header: %w", err)
		}
		if err := f.SetColWidth(sheetName, "A", lastCol, defaultColumnWidth); err != nil {
			return nil, fmt.Errorf("failed to size columns: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
