package pgsql

import (
	portsrepo "github.com/SscSPs/receivables_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo: newPgxInvoiceRepository(dbPool),
		UserRepo:    newPgxUserRepository(dbPool),
		Health:      &BaseRepository{Pool: dbPool},
	}
}
