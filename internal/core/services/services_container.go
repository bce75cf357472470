package services

import (
	"github.com/SscSPs/receivables_app/internal/adapters/pdf"
	"github.com/SscSPs/receivables_app/internal/adapters/spreadsheet"
	portsrepo "github.com/SscSPs/receivables_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/receivables_app/internal/core/ports/services"
	"github.com/SscSPs/receivables_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Invoice: NewInvoiceService(repos.InvoiceRepo, cfg.Location),
		Ingestion: NewIngestionService(
			repos.InvoiceRepo,
			spreadsheet.NewReader(),
			WithIngestionLocation(cfg.Location),
			WithGracePeriodDays(cfg.GracePeriodDays),
		),
		Export: NewExportService(repos.InvoiceRepo, spreadsheet.NewWriter(), pdf.NewReportRenderer(), cfg.Location),
		User:   NewUserService(repos.UserRepo),
		Token:  NewTokenService(cfg),
	}
}
