package services

import "context"

// ExportSvc renders the active invoice set into downloadable documents.
type ExportSvc interface {
	// ExportSpreadsheet returns an xlsx workbook with one header row and one row per active invoice.
	ExportSpreadsheet(ctx context.Context) ([]byte, error)

	// ExportPDF returns the same projection as a PDF report.
	ExportPDF(ctx context.Context) ([]byte, error)
}
