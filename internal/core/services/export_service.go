package services

import (
	"context"
	"time"

	portsrepo "github.com/SscSPs/receivables_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/receivables_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// ExportSheetName is the single sheet of the downloadable workbook.
	ExportSheetName  = "Cobranza"
	exportDateLayout = "02/01/2006"
)

// ExportHeader is the column set of the downloadable workbook. The first four
// columns follow the upload column contract so an export can be re-ingested.
var ExportHeader = []string{
	"Fecha de factura",
	"Numero de Factura",
	"Razón social",
	"Monto",
	"Fecha de vencimiento",
	"Estado",
	"Fecha de Pago",
	"Notas",
	"Prioridad",
	"Próxima Llamada",
}

var (
	pdfHeader = []string{"Fecha", "Numero", "Razón social", "Monto", "Vencimiento", "Estado", "Prioridad", "Próxima Llamada"}
	pdfWidths = []int{1, 1, 3, 2, 1, 1, 1, 2}
)

// exportService implements the ExportSvc interface
type exportService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceReader
	sheetWriter portssvc.SheetWriter
	pdfRenderer portssvc.PDFRenderer
	now         func() time.Time
	location    *time.Location
}

// NewExportService creates a new export service. Dates are rendered in loc.
func NewExportService(repo portsrepo.InvoiceReader, writer portssvc.SheetWriter, renderer portssvc.PDFRenderer, loc *time.Location) portssvc.ExportSvc {
	if loc == nil {
		loc = time.Local
	}
	return &exportService{
		invoiceRepo: repo,
		sheetWriter: writer,
		pdfRenderer: renderer,
		now:         time.Now,
		location:    loc,
	}
}

// Ensure exportService implements the ExportSvc interface
var _ portssvc.ExportSvc = (*exportService)(nil)

func (s *exportService) ExportSpreadsheet(ctx context.Context) ([]byte, error) {
	invoices, err := s.invoiceRepo.ListActiveInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load invoices for export")
		return nil, err
	}

	rows := make([][]any, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, []any{
			s.formatDate(&inv.InvoiceDate),
			inv.InvoiceNumber,
			inv.ClientName,
			inv.Amount,
			s.formatDate(&inv.DueDate),
			string(inv.Status),
			s.formatDate(inv.PaymentDate),
			inv.Notes,
			string(inv.Priority),
			s.formatDate(inv.NextFollowUpDate),
		})
	}

	data, err := s.sheetWriter.WriteRows(ExportSheetName, ExportHeader, rows)
	if err != nil {
		s.LogError(ctx, err, "Failed to build export workbook")
		return nil, err
	}
	return data, nil
}

func (s *exportService) ExportPDF(ctx context.Context) ([]byte, error) {
	invoices, err := s.invoiceRepo.ListActiveInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load invoices for pdf export")
		return nil, err
	}

	total := decimal.Zero
	rows := make([][]string, 0, len(invoices))
	for _, inv := range invoices {
		amount := decimal.NewFromInt(inv.Amount)
		total = total.Add(amount)
		rows = append(rows, []string{
			s.formatDate(&inv.InvoiceDate),
			inv.InvoiceNumber,
			inv.ClientName,
			FormatAmount(amount),
			s.formatDate(&inv.DueDate),
			string(inv.Status),
			string(inv.Priority),
			s.formatDate(inv.NextFollowUpDate),
		})
	}

	report := portssvc.InvoiceReport{
		Title:       "Cobranza",
		GeneratedAt: s.now().In(s.location),
		Header:      pdfHeader,
		Widths:      pdfWidths,
		Rows:        rows,
		Total:       FormatAmount(total),
	}

	data, err := s.pdfRenderer.RenderInvoiceReport(ctx, report)
	if err != nil {
		s.LogError(ctx, err, "Failed to render pdf export")
		return nil, err
	}
	return data, nil
}

func (s *exportService) formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.In(s.location).Format(exportDateLayout)
}

// amountPrinter groups digits the Spanish way, e.g. 1234567 -> "1.234.567".
var amountPrinter = message.NewPrinter(language.Spanish)

// FormatAmount renders an amount rounded to whole units with "." thousands separators.
func FormatAmount(d decimal.Decimal) string {
	return amountPrinter.Sprintf("%d", d.Round(0).IntPart())
}
