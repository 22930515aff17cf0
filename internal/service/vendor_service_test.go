package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lekha/internal/domain"
	"lekha/internal/service"
	"lekha/internal/tds"
	"lekha/mocks"
)

func TestVendorService_Create_DefaultsPayeeType(t *testing.T) {
	repo := new(mocks.MockVendorRepo)
	purchaseRepo := new(mocks.MockPurchaseRepo)
	svc := service.NewVendorService(repo, purchaseRepo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Vendor")).Return(nil)

	vendor, err := svc.Create(context.Background(), uuid.New(), uuid.New(), service.CreateVendorInput{
		Name:        "Gupta Consultants",
		PAN:         "AAPFU0939F",
		TDSCategory: "Professional Fees",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Individual", vendor.PayeeType)
	assert.Equal(t, "Professional Fees", vendor.TDSCategory)
	assert.Equal(t, domain.PartyActive, vendor.Status)
	repo.AssertExpectations(t)
}

func TestVendorService_Create_InvalidPAN(t *testing.T) {
	repo := new(mocks.MockVendorRepo)
	purchaseRepo := new(mocks.MockPurchaseRepo)
	svc := service.NewVendorService(repo, purchaseRepo)

	vendor, err := svc.Create(context.Background(), uuid.New(), uuid.New(), service.CreateVendorInput{
		Name: "Gupta Consultants",
		PAN:  "1234567890",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidPAN)
	assert.Nil(t, vendor)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVendorService_TDSThreshold_CrossedWithCurrentPayment(t *testing.T) {
	repo := new(mocks.MockVendorRepo)
	purchaseRepo := new(mocks.MockPurchaseRepo)
	svc := service.NewVendorService(repo, purchaseRepo)

	companyID := uuid.New()
	vendorID := uuid.New()
	asOf := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	quarters := tds.Quarters(tds.FinancialYearOf(asOf))

	repo.On("GetByID", mock.Anything, companyID, vendorID).
		Return(&domain.Vendor{ID: vendorID, TDSCategory: "Professional Fees"}, nil)
	purchaseRepo.On("ListByVendor", mock.Anything, companyID, vendorID,
		quarters[0].StartDate, quarters[3].EndDate).
		Return([]domain.Purchase{
			{GrandTotal: 15000, Status: domain.StatusPaid},
			{GrandTotal: 10000, Status: domain.StatusSent},
			// Cancelled bills never count toward the threshold.
			{GrandTotal: 50000, Status: domain.StatusCancelled},
		}, nil)

	// 25k billed so far, 10k now: the 30k threshold is crossed.
	result, err := svc.TDSThreshold(context.Background(), companyID, vendorID, 10000, asOf)

	assert.NoError(t, err)
	assert.True(t, result.ShouldDeduct)
	assert.Equal(t, 10000.0, result.ApplicableAmount)
	repo.AssertExpectations(t)
	purchaseRepo.AssertExpectations(t)
}

func TestVendorService_TDSThreshold_BelowThreshold(t *testing.T) {
	repo := new(mocks.MockVendorRepo)
	purchaseRepo := new(mocks.MockPurchaseRepo)
	svc := service.NewVendorService(repo, purchaseRepo)

	companyID := uuid.New()
	vendorID := uuid.New()
	asOf := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	quarters := tds.Quarters(tds.FinancialYearOf(asOf))

	repo.On("GetByID", mock.Anything, companyID, vendorID).
		Return(&domain.Vendor{ID: vendorID, TDSCategory: "Professional Fees"}, nil)
	purchaseRepo.On("ListByVendor", mock.Anything, companyID, vendorID,
		quarters[0].StartDate, quarters[3].EndDate).
		Return([]domain.Purchase{
			{GrandTotal: 10000, Status: domain.StatusPaid},
		}, nil)

	result, err := svc.TDSThreshold(context.Background(), companyID, vendorID, 5000, asOf)

	assert.NoError(t, err)
	assert.False(t, result.ShouldDeduct)
	repo.AssertExpectations(t)
}
