package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/receivables_app/internal/core/ports/services"
	"github.com/SscSPs/receivables_app/internal/dto"
	"github.com/SscSPs/receivables_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
	uploadFormField = "file"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService   portssvc.InvoiceSvcFacade
	ingestionService portssvc.IngestionSvc
	exportService    portssvc.ExportSvc
	maxUploadBytes   int64
	exportFilename   string
}

func newInvoiceHandler(services *portssvc.ServiceContainer, maxUploadBytes int64, exportFilename string) *invoiceHandler {
	return &invoiceHandler{
		invoiceService:   services.Invoice,
		ingestionService: services.Ingestion,
		exportService:    services.Export,
		maxUploadBytes:   maxUploadBytes,
		exportFilename:   exportFilename,
	}
}

// registerInvoiceRoutes registers all invoice-related routes.
func registerInvoiceRoutes(rg *gin.RouterGroup, h *invoiceHandler) {
	invoices := rg.Group("/invoices")
	{
		invoices.POST("/upload", h.uploadInvoices)
		invoices.GET("", h.listInvoices)
		invoices.GET("/download", h.downloadSpreadsheet)
		invoices.GET("/download/pdf", h.downloadPDF)
		invoices.PUT("/:id", h.updateInvoice)
		invoices.DELETE("/:id", middleware.RequireAdmin(), h.deleteInvoice)
	}
}

// uploadInvoices godoc
// @Summary Upload a collections spreadsheet
// @Description Parses an xlsx (or csv) file and creates or updates one invoice per valid row.
// @Tags invoices
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet"
// @Success 200 {object} dto.UploadInvoicesResponse
// @Failure 400 {object} ErrorResponse "No file, unreadable file or no valid rows"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/upload [post]
func (h *invoiceHandler) uploadInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}
	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("File exceeds the %d byte limit", tooLarge.Limit)})
		case errors.Is(err, http.ErrMissingFile):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No file uploaded"})
		default:
			logger.Warn("Malformed upload", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No file uploaded"})
		}
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Uploaded file could not be read"})
		return
	}
	defer file.Close()

	logger.Info("Received spreadsheet upload",
		slog.String("filename", fileHeader.Filename),
		slog.Int64("size", fileHeader.Size))

	stats, err := h.ingestionService.IngestSpreadsheet(c.Request.Context(), fileHeader.Filename, file, actor)
	if err != nil {
		respondWithError(c, logger, err, "Upload")
		return
	}
	c.JSON(http.StatusOK, dto.ToUploadInvoicesResponse(stats))
}

// listInvoices godoc
// @Summary List active invoices
// @Description Returns every invoice that has not been deleted, ordered by due date.
// @Tags invoices
// @Produce json
// @Success 200 {array} dto.InvoiceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "List invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponseSlice(invoices))
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Edits status, priority, follow-up date, payment date or notes. An empty date string clears the date.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param invoice body dto.UpdateInvoiceRequest true "Fields to update"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")

	actor, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), invoiceID, req, actor)
	if err != nil {
		respondWithError(c, logger.With(slog.String("invoice_id", invoiceID)), err, "Update invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Description Soft-deletes an invoice. Admin only.
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")

	actor, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), invoiceID, actor); err != nil {
		respondWithError(c, logger.With(slog.String("invoice_id", invoiceID)), err, "Delete invoice")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Invoice deleted"})
}

// downloadSpreadsheet godoc
// @Summary Download active invoices as xlsx
// @Tags invoices
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/download [get]
func (h *invoiceHandler) downloadSpreadsheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, err := h.exportService.ExportSpreadsheet(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Export spreadsheet")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, h.exportFilename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// downloadPDF godoc
// @Summary Download active invoices as pdf
// @Tags invoices
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/download/pdf [get]
func (h *invoiceHandler) downloadPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, err := h.exportService.ExportPDF(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Export pdf")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, h.exportFilename))
	c.Data(http.StatusOK, pdfContentType, data)
}
