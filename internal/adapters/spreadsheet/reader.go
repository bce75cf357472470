package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/receivables_app/internal/apperrors"
	portssvc "github.com/SscSPs/receivables_app/internal/core/ports/services"
	"github.com/xuri/excelize/v2"
)

// Reader parses uploaded xlsx and csv files into rows of typed cells.
type Reader struct{}

// NewReader creates a new spreadsheet reader.
func NewReader() *Reader {
	return &Reader{}
}

var _ portssvc.SheetReader = (*Reader)(nil)

// ReadRows returns every row of the first sheet. Numeric cells come back as float64,
// date-typed cells as time.Time, blank cells as nil and everything else as string.
func (r *Reader) ReadRows(src io.Reader, filename string) ([][]any, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return readWorkbook(src)
	case ".csv":
		return readCSV(src)
	default:
		return nil, apperrors.InvalidUploadf("unsupported file type %q", filepath.Ext(filename))
	}
}

func readWorkbook(src io.Reader) (rows [][]any, err error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, apperrors.InvalidUploadf("file is not a readable workbook: %v", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", cerr)
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, apperrors.InvalidUploadf("workbook has no sheets")
	}

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperrors.InvalidUploadf("failed to read sheet %q: %v", sheet, err)
	}

	rows = make([][]any, 0, len(raw))
	for i, cells := range raw {
		row := make([]any, len(cells))
		for j, value := range cells {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheet, cellName)
			if err != nil {
				return nil, fmt.Errorf("failed to read cell type of %s: %w", cellName, err)
			}
			row[j] = typedCell(cellType, value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// typedCell converts a raw cell value using the type recorded in the workbook.
// Number cells usually carry no explicit type, so untyped values that parse as
// numbers are treated as numbers.
func typedCell(cellType excelize.CellType, value string) any {
	if value == "" {
		return nil
	}
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeBool, excelize.CellTypeError:
		return value
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
			return t
		}
		return value
	}
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return n
	}
	return value
}

func readCSV(src io.Reader) ([][]any, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows [][]any
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.InvalidUploadf("malformed csv: %v", err)
		}
		row := make([]any, len(record))
		for i, value := range record {
			if strings.TrimSpace(value) == "" {
				continue
			}
			row[i] = value
		}
		rows = append(rows, row)
	}
	return rows, nil
}
