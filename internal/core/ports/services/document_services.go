package services

import (
	"context"
	"io"
	"time"
)

// SheetReader parses an uploaded tabular file into rows of typed cells.
// Cells are string, float64, time.Time or nil.
type SheetReader interface {
	ReadRows(r io.Reader, filename string) ([][]any, error)
}

// SheetWriter serializes rows into a spreadsheet workbook.
type SheetWriter interface {
	WriteRows(sheetName string, header []string, rows [][]any) ([]byte, error)
}

// InvoiceReport is the projection rendered by a PDFRenderer.
type InvoiceReport struct {
	Title       string
	GeneratedAt time.Time
	Header      []string
	Widths      []int // grid units per column, summing to 12
	Rows        [][]string
	Total       string
}

// PDFRenderer renders an invoice report as a PDF document.
type PDFRenderer interface {
	RenderInvoiceReport(ctx context.Context, report InvoiceReport) ([]byte, error)
}
