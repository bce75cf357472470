package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/receivables_app/internal/apperrors"
	"github.com/SscSPs/receivables_app/internal/core/domain"
	portssvc "github.com/SscSPs/receivables_app/internal/core/ports/services"
	"github.com/SscSPs/receivables_app/internal/core/services"
	"github.com/SscSPs/receivables_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func strPtr(s string) *string {
	return &s
}

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInvoiceRepository
	service  portssvc.InvoiceSvcFacade
	ctx      context.Context
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.service = services.NewInvoiceService(suite.mockRepo, time.UTC)
	suite.ctx = context.Background()
}

func (suite *InvoiceServiceTestSuite) storedInvoice() *domain.Invoice {
	follow := today.AddDate(0, 0, 1)
	return &domain.Invoice{
		InvoiceID:        "inv-1",
		InvoiceNumber:    "F-1",
		ClientName:       "ACME",
		Status:           domain.StatusOverdue,
		Priority:         domain.PriorityHigh,
		NextFollowUpDate: &follow,
		Notes:            "first call",
	}
}

func (suite *InvoiceServiceTestSuite) TestListInvoices() {
	invoices := []domain.Invoice{*suite.storedInvoice()}
	suite.mockRepo.On("ListActiveInvoices", suite.ctx).Return(invoices, nil).Once()

	result, err := suite.service.ListInvoices(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(invoices, result)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_Success() {
	suite.mockRepo.On("FindActiveInvoiceByID", suite.ctx, "inv-1").Return(suite.storedInvoice(), nil).Once()
	suite.mockRepo.On("UpdateInvoice", suite.ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	req := dto.UpdateInvoiceRequest{
		Status:           strPtr("Paid"),
		PaymentDate:      strPtr("2024-03-10"),
		NextFollowUpDate: strPtr(""),
		Notes:            strPtr("paid by transfer"),
	}
	updated, err := suite.service.UpdateInvoice(suite.ctx, "inv-1", req, operator)
	suite.Require().NoError(err)

	suite.Equal(domain.StatusPaid, updated.Status)
	suite.Equal(domain.PriorityHigh, updated.Priority)
	suite.Require().NotNil(updated.PaymentDate)
	suite.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *updated.PaymentDate)
	suite.Nil(updated.NextFollowUpDate)
	suite.Equal("paid by transfer", updated.Notes)
	suite.Equal(operator.UserID, updated.LastUpdatedBy)
	suite.WithinDuration(time.Now(), updated.LastUpdatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_AcceptsRFC3339() {
	suite.mockRepo.On("FindActiveInvoiceByID", suite.ctx, "inv-1").Return(suite.storedInvoice(), nil).Once()
	suite.mockRepo.On("UpdateInvoice", suite.ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	updated, err := suite.service.UpdateInvoice(suite.ctx, "inv-1",
		dto.UpdateInvoiceRequest{NextFollowUpDate: strPtr("2024-03-20T15:04:05Z")}, operator)
	suite.Require().NoError(err)
	suite.Require().NotNil(updated.NextFollowUpDate)
	suite.Equal(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), *updated.NextFollowUpDate)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_ValidationErrors() {
	cases := map[string]dto.UpdateInvoiceRequest{
		"no fields":        {},
		"unknown status":   {Status: strPtr("Cancelled")},
		"unknown priority": {Priority: strPtr("Urgent")},
		"bad date":         {PaymentDate: strPtr("next tuesday")},
	}
	for name, req := range cases {
		suite.Run(name, func() {
			suite.mockRepo.On("FindActiveInvoiceByID", suite.ctx, "inv-1").Return(suite.storedInvoice(), nil).Maybe()

			_, err := suite.service.UpdateInvoice(suite.ctx, "inv-1", req, operator)
			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.mockRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything)
		})
	}
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_NotFound() {
	suite.mockRepo.On("FindActiveInvoiceByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateInvoice(suite.ctx, "missing", dto.UpdateInvoiceRequest{Notes: strPtr("x")}, operator)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_AdminOnly() {
	err := suite.service.DeleteInvoice(suite.ctx, "inv-1", operator)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkInvoiceDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_Success() {
	suite.mockRepo.On("MarkInvoiceDeleted", suite.ctx, "inv-1", mock.AnythingOfType("time.Time"), admin.UserID).Return(nil).Once()

	suite.NoError(suite.service.DeleteInvoice(suite.ctx, "inv-1", admin))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_Propagates() {
	suite.mockRepo.On("MarkInvoiceDeleted", suite.ctx, "gone", mock.Anything, admin.UserID).Return(apperrors.ErrNotFound).Once()
	suite.ErrorIs(suite.service.DeleteInvoice(suite.ctx, "gone", admin), apperrors.ErrNotFound)

	storageErr := apperrors.NewStorageError("update failed", errors.New("conn refused"))
	suite.mockRepo.On("MarkInvoiceDeleted", suite.ctx, "inv-2", mock.Anything, admin.UserID).Return(storageErr).Once()
	err := suite.service.DeleteInvoice(suite.ctx, "inv-2", admin)
	var appErr *apperrors.AppError
	suite.ErrorAs(err, &appErr)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
