package services_test

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/receivables_app/internal/apperrors"
	"github.com/SscSPs/receivables_app/internal/core/domain"
	portssvc "github.com/SscSPs/receivables_app/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// MockInvoiceRepository is a mock type for the InvoiceRepositoryFacade interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindActiveInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindActiveInvoiceByNumber(ctx context.Context, invoiceNumber string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListActiveInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) RefreshIngestedFields(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) MarkInvoiceDeleted(ctx context.Context, invoiceID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, invoiceID, deletedAt, deletedBy)
	return args.Error(0)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockSheetWriter is a mock type for the SheetWriter interface
type MockSheetWriter struct {
	mock.Mock
}

func (m *MockSheetWriter) WriteRows(sheetName string, header []string, rows [][]any) ([]byte, error) {
	args := m.Called(sheetName, header, rows)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockPDFRenderer is a mock type for the PDFRenderer interface
type MockPDFRenderer struct {
	mock.Mock
}

func (m *MockPDFRenderer) RenderInvoiceReport(ctx context.Context, report portssvc.InvoiceReport) ([]byte, error) {
	args := m.Called(ctx, report)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// staticSheetReader returns fixed rows regardless of input.
type staticSheetReader struct {
	rows [][]any
	err  error
}

func (r staticSheetReader) ReadRows(_ io.Reader, _ string) ([][]any, error) {
	return r.rows, r.err
}

// memoryInvoiceRepository is an in-memory InvoiceRepositoryFacade that honors soft deletion.
type memoryInvoiceRepository struct {
	mu       sync.Mutex
	invoices []domain.Invoice
	failFor  map[string]error
}

func newMemoryInvoiceRepository() *memoryInvoiceRepository {
	return &memoryInvoiceRepository{failFor: map[string]error{}}
}

func (r *memoryInvoiceRepository) FindActiveInvoiceByID(_ context.Context, invoiceID string) (*domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.invoices {
		if inv.InvoiceID == invoiceID && !inv.IsDeleted() {
			found := inv
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memoryInvoiceRepository) FindActiveInvoiceByNumber(_ context.Context, invoiceNumber string) (*domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.failFor[invoiceNumber]; ok {
		return nil, err
	}
	for _, inv := range r.invoices {
		if inv.InvoiceNumber == invoiceNumber && !inv.IsDeleted() {
			found := inv
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memoryInvoiceRepository) ListActiveInvoices(_ context.Context) ([]domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	active := make([]domain.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		if !inv.IsDeleted() {
			active = append(active, inv)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		if !active[i].DueDate.Equal(active[j].DueDate) {
			return active[i].DueDate.Before(active[j].DueDate)
		}
		return active[i].InvoiceNumber < active[j].InvoiceNumber
	})
	return active, nil
}

func (r *memoryInvoiceRepository) SaveInvoice(_ context.Context, invoice domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices = append(r.invoices, invoice)
	return nil
}

func (r *memoryInvoiceRepository) RefreshIngestedFields(_ context.Context, invoice domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.invoices {
		stored := &r.invoices[i]
		if stored.InvoiceID == invoice.InvoiceID && !stored.IsDeleted() {
			stored.ClientName = invoice.ClientName
			stored.InvoiceDate = invoice.InvoiceDate
			stored.DueDate = invoice.DueDate
			stored.Amount = invoice.Amount
			stored.Status = invoice.Status
			stored.Priority = invoice.Priority
			stored.NextFollowUpDate = invoice.NextFollowUpDate
			stored.LastUpdatedAt = invoice.LastUpdatedAt
			stored.LastUpdatedBy = invoice.LastUpdatedBy
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *memoryInvoiceRepository) UpdateInvoice(_ context.Context, invoice domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.invoices {
		if r.invoices[i].InvoiceID == invoice.InvoiceID && !r.invoices[i].IsDeleted() {
			r.invoices[i] = invoice
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *memoryInvoiceRepository) MarkInvoiceDeleted(_ context.Context, invoiceID string, deletedAt time.Time, deletedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.invoices {
		if r.invoices[i].InvoiceID == invoiceID && !r.invoices[i].IsDeleted() {
			r.invoices[i].DeletedAt = &deletedAt
			r.invoices[i].DeletedBy = &deletedBy
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// all returns every stored invoice including soft-deleted ones.
func (r *memoryInvoiceRepository) all() []domain.Invoice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Invoice(nil), r.invoices...)
}
