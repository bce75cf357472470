package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/receivables_app/internal/apperrors"
	"github.com/SscSPs/receivables_app/internal/core/domain"
	portsrepo "github.com/SscSPs/receivables_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/receivables_app/internal/core/ports/services"
	"github.com/SscSPs/receivables_app/internal/utils/normalize"
	"github.com/google/uuid"
)

// Positional column contract with the spreadsheet producer.
const (
	colInvoiceDate = iota
	colInvoiceNumber
	colClientName
	colAmount
)

// headerLabels are first-cell values of repeated header rows, lowercased.
var headerLabels = map[string]struct{}{
	"fecha":            {},
	"fecha de factura": {},
	"fecha factura":    {},
}

// monthBannerPattern matches title rows such as "COBRANZA SEPT 25" or "Enero 2024".
var monthBannerPattern = regexp.MustCompile(`(?i)\b(ENERO|FEBRERO|MARZO|ABRIL|MAYO|JUNIO|JULIO|AGOSTO|SEPTIEMBRE|OCTUBRE|NOVIEMBRE|DICIEMBRE|ENE|FEB|MAR|ABR|MAY|JUN|JUL|AGO|SEPT|SEP|OCT|NOV|DIC)\.?\s*'?\d{2,4}\b`)

// ingestionService implements the IngestionSvc interface
type ingestionService struct {
	BaseService
	invoiceRepo     portsrepo.InvoiceRepositoryFacade
	sheetReader     portssvc.SheetReader
	now             func() time.Time
	location        *time.Location
	gracePeriodDays int
}

// IngestionOption is a functional option for configuring the ingestion service
type IngestionOption func(*ingestionService)

// WithIngestionClock overrides the source of "today".
func WithIngestionClock(now func() time.Time) IngestionOption {
	return func(s *ingestionService) {
		s.now = now
	}
}

// WithIngestionLocation sets the business timezone used for midnight truncation.
func WithIngestionLocation(loc *time.Location) IngestionOption {
	return func(s *ingestionService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithGracePeriodDays sets the interval between invoice date and due date.
func WithGracePeriodDays(days int) IngestionOption {
	return func(s *ingestionService) {
		if days > 0 {
			s.gracePeriodDays = days
		}
	}
}

// NewIngestionService creates a new ingestion service with the provided options
func NewIngestionService(repo portsrepo.InvoiceRepositoryFacade, reader portssvc.SheetReader, options ...IngestionOption) portssvc.IngestionSvc {
	svc := &ingestionService{
		invoiceRepo:     repo,
		sheetReader:     reader,
		now:             time.Now,
		location:        time.Local,
		gracePeriodDays: domain.DefaultGracePeriodDays,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure ingestionService implements the IngestionSvc interface
var _ portssvc.IngestionSvc = (*ingestionService)(nil)

func (s *ingestionService) IngestSpreadsheet(ctx context.Context, filename string, r io.Reader, actor domain.Identity) (*domain.IngestionStats, error) {
	rows, err := s.sheetReader.ReadRows(r, filename)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidUpload) {
			s.LogWarn(ctx, "Rejected upload", slog.String("filename", filename), slog.String("error", err.Error()))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to read uploaded spreadsheet", slog.String("filename", filename))
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	today := domain.StartOfDay(s.now(), s.location)
	candidates, skipped := s.extractCandidates(ctx, rows, today, actor)
	if len(candidates) == 0 {
		s.LogWarn(ctx, "Upload holds no valid invoice rows",
			slog.String("filename", filename),
			slog.Int("rows", len(rows)),
			slog.Int("skipped", skipped))
		return nil, apperrors.InvalidUploadf("no valid invoice rows found")
	}

	stats := s.Reconcile(ctx, candidates)
	stats.Skipped = skipped

	s.LogInfo(ctx, "Spreadsheet ingested",
		slog.String("filename", filename),
		slog.Int("total_processed", stats.TotalProcessed),
		slog.Int("created", stats.Created),
		slog.Int("updated", stats.Updated),
		slog.Int("errors", stats.Errors),
		slog.Int("skipped", stats.Skipped))
	return &stats, nil
}

// extractCandidates applies the row filter, normalizers and classifier to every row.
// Blank rows are ignored; rows dropped for any other reason are counted as skipped.
func (s *ingestionService) extractCandidates(ctx context.Context, rows [][]any, today time.Time, actor domain.Identity) ([]domain.InvoiceCandidate, int) {
	candidates := make([]domain.InvoiceCandidate, 0, len(rows))
	skipped := 0

	for i, row := range rows {
		rowNumber := i + 1
		if isBlankRow(row) {
			continue
		}
		if reason, skip := isTitleRow(row, today); skip {
			s.LogDebug(ctx, "Skipping title row", slog.Int("row", rowNumber), slog.String("reason", reason))
			skipped++
			continue
		}

		invoiceNumber := cellText(cellAt(row, colInvoiceNumber))
		clientName := cellText(cellAt(row, colClientName))
		amountCell := cellAt(row, colAmount)
		if invoiceNumber == "" || clientName == "" || isBlankCell(amountCell) {
			s.LogWarn(ctx, "Skipping row with missing required fields",
				slog.Int("row", rowNumber),
				slog.String("invoice_number", invoiceNumber),
				slog.Bool("has_client", clientName != ""),
				slog.Bool("has_amount", !isBlankCell(amountCell)))
			skipped++
			continue
		}

		class := domain.ClassifyInvoice(normalize.Date(cellAt(row, colInvoiceDate), today), today, s.gracePeriodDays)
		candidates = append(candidates, domain.InvoiceCandidate{
			RowNumber:        rowNumber,
			InvoiceNumber:    invoiceNumber,
			ClientName:       clientName,
			InvoiceDate:      class.InvoiceDate,
			DueDate:          class.DueDate,
			Amount:           normalize.Amount(amountCell),
			Status:           class.Status,
			Priority:         class.Priority,
			NextFollowUpDate: class.NextFollowUpDate,
			CreatedBy:        actor.UserID,
		})
	}
	return candidates, skipped
}

func (s *ingestionService) Reconcile(ctx context.Context, candidates []domain.InvoiceCandidate) domain.IngestionStats {
	stats := domain.IngestionStats{TotalProcessed: len(candidates)}

	for _, candidate := range candidates {
		created, err := s.reconcileOne(ctx, candidate)
		if err != nil {
			s.LogError(ctx, err, "Failed to reconcile invoice",
				slog.Int("row", candidate.RowNumber),
				slog.String("invoice_number", candidate.InvoiceNumber))
			stats.Errors++
			continue
		}
		if created {
			stats.Created++
		} else {
			stats.Updated++
		}
	}
	return stats
}

// reconcileOne updates the active invoice carrying the candidate's number or inserts a new one.
// Lookup and write are separate round trips; concurrent uploads of the same number may race.
func (s *ingestionService) reconcileOne(ctx context.Context, candidate domain.InvoiceCandidate) (bool, error) {
	now := s.now()

	existing, err := s.invoiceRepo.FindActiveInvoiceByNumber(ctx, candidate.InvoiceNumber)
	switch {
	case err == nil:
		existing.ApplyCandidate(candidate)
		existing.LastUpdatedAt = now
		existing.LastUpdatedBy = candidate.CreatedBy
		if err := s.invoiceRepo.RefreshIngestedFields(ctx, *existing); err != nil {
			return false, err
		}
		return false, nil
	case errors.Is(err, apperrors.ErrNotFound):
		invoice := domain.Invoice{
			InvoiceID:     uuid.NewString(),
			InvoiceNumber: candidate.InvoiceNumber,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     candidate.CreatedBy,
				LastUpdatedAt: now,
				LastUpdatedBy: candidate.CreatedBy,
			},
		}
		invoice.ApplyCandidate(candidate)
		if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}

func cellAt(row []any, i int) any {
	if i < len(row) {
		return row[i]
	}
	return nil
}

func isBlankCell(v any) bool {
	switch c := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(c) == ""
	}
	return false
}

func isBlankRow(row []any) bool {
	for _, v := range row {
		if !isBlankCell(v) {
			return false
		}
	}
	return true
}

// isTitleRow reports whether the row is a repeated header or a month banner. A first cell that
// reads as a text date ("Sep 15, 2025") on a row carrying an invoice number and client is data.
func isTitleRow(row []any, today time.Time) (string, bool) {
	first, ok := cellAt(row, colInvoiceDate).(string)
	if !ok {
		return "", false
	}
	first = strings.TrimSpace(first)
	if _, isHeader := headerLabels[strings.ToLower(first)]; isHeader {
		return "header", true
	}
	if !monthBannerPattern.MatchString(first) {
		return "", false
	}
	hasKey := cellText(cellAt(row, colInvoiceNumber)) != "" || cellText(cellAt(row, colClientName)) != ""
	if hasKey && normalize.Date(first, today) != nil {
		return "", false
	}
	return "month banner", true
}

// cellText renders a cell as trimmed text. Numeric invoice numbers keep no trailing ".0".
func cellText(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(c)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case time.Time:
		return c.Format("2006-01-02")
	default:
		return strings.TrimSpace(fmt.Sprint(c))
	}
}
