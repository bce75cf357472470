package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/receivables_app/internal/apperrors"
	"github.com/SscSPs/receivables_app/internal/core/domain"
	portsrepo "github.com/SscSPs/receivables_app/internal/core/ports/repositories"
	"github.com/SscSPs/receivables_app/internal/models"
	"github.com/SscSPs/receivables_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryFacade
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, invoice_number, client_name, invoice_date, due_date, amount, status, priority,
        payment_date, next_follow_up_date, notes, created_at, created_by, last_updated_at, last_updated_by,
        deleted_at, deleted_by`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.InvoiceNumber,
		&m.ClientName,
		&m.InvoiceDate,
		&m.DueDate,
		&m.Amount,
		&m.Status,
		&m.Priority,
		&m.PaymentDate,
		&m.NextFollowUpDate,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
		&m.DeletedBy,
	)
	return m, err
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
        INSERT INTO invoices (` + invoiceColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.InvoiceID,
		m.InvoiceNumber,
		m.ClientName,
		m.InvoiceDate,
		m.DueDate,
		m.Amount,
		m.Status,
		m.Priority,
		m.PaymentDate,
		m.NextFollowUpDate,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.DeletedAt,
		m.DeletedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save invoice %s: %w", invoice.InvoiceNumber, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindActiveInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1 AND deleted_at IS NULL;`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}
	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

// FindActiveInvoiceByNumber returns the oldest active record when duplicates exist.
func (r *PgxInvoiceRepository) FindActiveInvoiceByNumber(ctx context.Context, invoiceNumber string) (*domain.Invoice, error) {
	query := `
        SELECT ` + invoiceColumns + `
        FROM invoices
        WHERE invoice_number = $1 AND deleted_at IS NULL
        ORDER BY created_at ASC
        LIMIT 1;
    `
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by number %s: %w", invoiceNumber, err)
	}
	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

func (r *PgxInvoiceRepository) ListActiveInvoices(ctx context.Context) ([]domain.Invoice, error) {
	query := `
        SELECT ` + invoiceColumns + `
        FROM invoices
        WHERE deleted_at IS NULL
        ORDER BY due_date ASC, invoice_number ASC;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	var ms []models.Invoice
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}

	return mapping.ToDomainInvoiceSlice(ms), nil
}

// RefreshIngestedFields leaves notes and payment date untouched.
func (r *PgxInvoiceRepository) RefreshIngestedFields(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
        UPDATE invoices
        SET client_name = $1, invoice_date = $2, due_date = $3, amount = $4, status = $5, priority = $6,
            next_follow_up_date = $7, last_updated_at = $8, last_updated_by = $9
        WHERE invoice_id = $10 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ClientName,
		m.InvoiceDate,
		m.DueDate,
		m.Amount,
		m.Status,
		m.Priority,
		m.NextFollowUpDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.InvoiceID,
	)
	if err != nil {
		return fmt.Errorf("failed to refresh invoice %s: %w", invoice.InvoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
        UPDATE invoices
        SET status = $1, priority = $2, next_follow_up_date = $3, payment_date = $4, notes = $5,
            last_updated_at = $6, last_updated_by = $7
        WHERE invoice_id = $8 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Status,
		m.Priority,
		m.NextFollowUpDate,
		m.PaymentDate,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.InvoiceID,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", invoice.InvoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) MarkInvoiceDeleted(ctx context.Context, invoiceID string, deletedAt time.Time, deletedBy string) error {
	query := `
        UPDATE invoices
        SET deleted_at = $1, deleted_by = $2, last_updated_at = $1, last_updated_by = $2
        WHERE invoice_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deletedBy, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to mark invoice %s as deleted: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
