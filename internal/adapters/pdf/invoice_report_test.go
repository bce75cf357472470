package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/SscSPs/receivables_app/internal/adapters/pdf"
	portssvc "github.com/SscSPs/receivables_app/internal/core/ports/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() portssvc.InvoiceReport {
	return portssvc.InvoiceReport{
		Title:       "Cobranza",
		GeneratedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Header:      []string{"Numero", "Razón social", "Monto", "Estado"},
		Widths:      []int{2, 6, 2, 2},
		Rows: [][]string{
			{"F-1", "ACME", "1.500", "Pending"},
			{"F-2", "Globex", "250", "Overdue"},
		},
		Total: "1.750",
	}
}

func TestRenderInvoiceReport(t *testing.T) {
	out, err := pdf.NewReportRenderer().RenderInvoiceReport(context.Background(), sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output should be a PDF document")
}

func TestRenderInvoiceReport_RejectsBadLayout(t *testing.T) {
	renderer := pdf.NewReportRenderer()

	report := sampleReport()
	report.Widths = []int{2, 2, 2, 2}
	_, err := renderer.RenderInvoiceReport(context.Background(), report)
	assert.Error(t, err)

	report = sampleReport()
	report.Rows = append(report.Rows, []string{"F-3"})
	_, err = renderer.RenderInvoiceReport(context.Background(), report)
	assert.Error(t, err)
}

func TestRenderInvoiceReport_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pdf.NewReportRenderer().RenderInvoiceReport(ctx, sampleReport())
	assert.ErrorIs(t, err, context.Canceled)
}
