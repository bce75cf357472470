package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/receivables_app/internal/core/domain"
	portssvc "github.com/SscSPs/receivables_app/internal/core/ports/services"
	"github.com/SscSPs/receivables_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func exportFixture() []domain.Invoice {
	paid := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Invoice{
		{
			InvoiceNumber: "F-1",
			ClientName:    "ACME",
			InvoiceDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			DueDate:       time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC),
			Amount:        1234567,
			Status:        domain.StatusPaid,
			Priority:      domain.PriorityHigh,
			PaymentDate:   &paid,
			Notes:         "ok",
		},
		{
			InvoiceNumber: "F-2",
			ClientName:    "Globex",
			InvoiceDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			DueDate:       time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC),
			Amount:        500,
			Status:        domain.StatusPending,
			Priority:      domain.PriorityLow,
		},
	}
}

func TestExportSpreadsheet_ProjectsColumns(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInvoiceRepository)
	writer := new(MockSheetWriter)
	repo.On("ListActiveInvoices", ctx).Return(exportFixture(), nil).Once()

	expectedRows := [][]any{
		{"15/01/2024", "F-1", "ACME", int64(1234567), "14/02/2024", "Paid", "01/03/2024", "ok", "High", ""},
		{"15/03/2024", "F-2", "Globex", int64(500), "14/04/2024", "Pending", "", "", "Low", ""},
	}
	writer.On("WriteRows", services.ExportSheetName, services.ExportHeader, expectedRows).Return([]byte("xlsx"), nil).Once()

	svc := services.NewExportService(repo, writer, new(MockPDFRenderer), time.UTC)
	data, err := svc.ExportSpreadsheet(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
	repo.AssertExpectations(t)
	writer.AssertExpectations(t)
}

func TestExportSpreadsheet_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInvoiceRepository)
	repo.On("ListActiveInvoices", ctx).Return(nil, errors.New("db down")).Once()

	svc := services.NewExportService(repo, new(MockSheetWriter), new(MockPDFRenderer), time.UTC)
	_, err := svc.ExportSpreadsheet(ctx)
	assert.Error(t, err)
}

func TestExportPDF_BuildsReportWithTotal(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInvoiceRepository)
	renderer := new(MockPDFRenderer)
	repo.On("ListActiveInvoices", ctx).Return(exportFixture(), nil).Once()
	renderer.On("RenderInvoiceReport", ctx, mock.MatchedBy(func(r portssvc.InvoiceReport) bool {
		return len(r.Rows) == 2 &&
			r.Rows[0][3] == "1.234.567" &&
			r.Total == "1.235.067" &&
			len(r.Header) == len(r.Widths)
	})).Return([]byte("%PDF"), nil).Once()

	svc := services.NewExportService(repo, new(MockSheetWriter), renderer, time.UTC)
	data, err := svc.ExportPDF(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
	renderer.AssertExpectations(t)
}

func TestFormatAmount(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1.000",
		1234567:  "1.234.567",
		-25000:   "-25.000",
		10000000: "10.000.000",
	}
	for in, want := range cases {
		assert.Equal(t, want, services.FormatAmount(decimal.NewFromInt(in)), "amount %d", in)
	}
}
