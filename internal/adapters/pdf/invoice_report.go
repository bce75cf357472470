package pdf

import (
	"context"
	"fmt"

	portssvc "github.com/SscSPs/receivables_app/internal/core/ports/services"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const (
	gridSize     = 12
	amountHeader = "Monto"
)

// ReportRenderer renders invoice listings as landscape PDF tables.
type ReportRenderer struct{}

// NewReportRenderer creates a new PDF report renderer.
func NewReportRenderer() *ReportRenderer {
	return &ReportRenderer{}
}

var _ portssvc.PDFRenderer = (*ReportRenderer)(nil)

// RenderInvoiceReport lays out the report title, one header row, one row per entry and the total.
func (r *ReportRenderer) RenderInvoiceReport(ctx context.Context, report portssvc.InvoiceReport) ([]byte, error) {
	if err := validateWidths(report); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(8, report.Title, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
		}),
		text.NewCol(4, "Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
			Size:  9,
			Align: align.Right,
		}),
	)

	headerCols := make([]core.Col, 0, len(report.Header))
	for i, h := range report.Header {
		headerCols = append(headerCols, text.NewCol(report.Widths[i], h, props.Text{Style: fontstyle.Bold, Size: 8}))
	}
	m.AddRow(8, headerCols...)

	for _, row := range report.Rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cols := make([]core.Col, 0, len(row))
		for i, cell := range row {
			cellProps := props.Text{Size: 8}
			if report.Header[i] == amountHeader {
				cellProps.Align = align.Right
			}
			cols = append(cols, text.NewCol(report.Widths[i], cell, cellProps))
		}
		m.AddRow(7, cols...)
	}

	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, report.Total, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func validateWidths(report portssvc.InvoiceReport) error {
	if len(report.Widths) != len(report.Header) {
		return fmt.Errorf("report has %d columns but %d widths", len(report.Header), len(report.Widths))
	}
	sum := 0
	for _, w := range report.Widths {
		sum += w
	}
	if sum != gridSize {
		return fmt.Errorf("report column widths add up to %d, want %d", sum, gridSize)
	}
	for i, row := range report.Rows {
		if len(row) != len(report.Header) {
			return fmt.Errorf("report row %d has %d cells, want %d", i, len(row), len(report.Header))
		}
	}
	return nil
}
