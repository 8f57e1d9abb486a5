package handlers_test

import (
	"context"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/affiliate_ledger/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock WorkplaceService ---
type MockWorkplaceService struct {
	mock.Mock
}

func (m *MockWorkplaceService) FindWorkplaceByID(ctx context.Context, workplaceID, requestingUserID string) (*domain.Workplace, error) {
	args := m.Called(ctx, workplaceID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}
func (m *MockWorkplaceService) ListUserWorkplaces(ctx context.Context, userID string, includeDisabled bool) ([]domain.Workplace, error) {
	args := m.Called(ctx, userID, includeDisabled)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workplace), args.Error(1)
}
func (m *MockWorkplaceService) CreateWorkplace(ctx context.Context, name, description, ownerName, creatorUserID string) (*domain.Workplace, error) {
	args := m.Called(ctx, name, description, ownerName, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}
func (m *MockWorkplaceService) TrustWorkplace(ctx context.Context, workplaceID, trustedWorkplaceID, requestingUserID string) error {
	return m.Called(ctx, workplaceID, trustedWorkplaceID, requestingUserID).Error(0)
}
func (m *MockWorkplaceService) AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error {
	return m.Called(ctx, userID, workplaceID, requiredRole).Error(0)
}

var _ portssvc.WorkplaceSvcFacade = (*MockWorkplaceService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) SaveRecord(ctx context.Context, workplaceID string, collection domain.Collection, payload []byte, userID string) (*domain.StoredRecord, error) {
	args := m.Called(ctx, workplaceID, collection, payload, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredRecord), args.Error(1)
}
func (m *MockLedgerService) DeleteRecord(ctx context.Context, workplaceID string, collection domain.Collection, recordID, userID string) error {
	return m.Called(ctx, workplaceID, collection, recordID, userID).Error(0)
}
func (m *MockLedgerService) AddAdAccount(ctx context.Context, workplaceID string, account domain.Asset, userID string) (*domain.Asset, error) {
	args := m.Called(ctx, workplaceID, account, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}
func (m *MockLedgerService) AddAdAccounts(ctx context.Context, workplaceID string, accounts []domain.Asset, userID string) ([]domain.Asset, error) {
	args := m.Called(ctx, workplaceID, accounts, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}
func (m *MockLedgerService) CreatePartner(ctx context.Context, workplaceID string, partner domain.Partner, userID string) (*domain.Partner, error) {
	args := m.Called(ctx, workplaceID, partner, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}
func (m *MockLedgerService) DeletePartner(ctx context.Context, workplaceID, partnerID, userID string) error {
	return m.Called(ctx, workplaceID, partnerID, userID).Error(0)
}
func (m *MockLedgerService) AddLedgerEntry(ctx context.Context, workplaceID string, entry domain.PartnerLedgerEntry, userID string) (*domain.PartnerLedgerEntry, error) {
	args := m.Called(ctx, workplaceID, entry, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PartnerLedgerEntry), args.Error(1)
}
func (m *MockLedgerService) WipeWorkplace(ctx context.Context, workplaceID, userID string) error {
	return m.Called(ctx, workplaceID, userID).Error(0)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock PeriodService ---
type MockPeriodService struct {
	mock.Mock
}

func (m *MockPeriodService) GetPeriodState(ctx context.Context, workplaceID, userID string) (*domain.PeriodState, error) {
	args := m.Called(ctx, workplaceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodState), args.Error(1)
}
func (m *MockPeriodService) OpenPeriod(ctx context.Context, workplaceID, period, userID string) (*domain.PeriodState, error) {
	args := m.Called(ctx, workplaceID, period, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodState), args.Error(1)
}
func (m *MockPeriodService) ClosePeriod(ctx context.Context, workplaceID, userID string) (*domain.ClosedPeriod, error) {
	args := m.Called(ctx, workplaceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosedPeriod), args.Error(1)
}

var _ portssvc.PeriodService = (*MockPeriodService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) PeriodFinancials(ctx context.Context, workplaceID, period, userID string) (*domain.PeriodFinancials, error) {
	args := m.Called(ctx, workplaceID, period, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodFinancials), args.Error(1)
}
func (m *MockReportingService) PartnerLedgers(ctx context.Context, workplaceID, userID string) ([]domain.PartnerLedger, []domain.Warning, error) {
	args := m.Called(ctx, workplaceID, userID)
	var (
		ledgers  []domain.PartnerLedger
		warnings []domain.Warning
	)
	if v := args.Get(0); v != nil {
		ledgers = v.([]domain.PartnerLedger)
	}
	if v := args.Get(1); v != nil {
		warnings = v.([]domain.Warning)
	}
	return ledgers, warnings, args.Error(2)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock TaxSettingsService ---
type MockTaxSettingsService struct {
	mock.Mock
}

func (m *MockTaxSettingsService) GetTaxSettings(ctx context.Context, workplaceID, userID string) (*domain.TaxSettings, error) {
	args := m.Called(ctx, workplaceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxSettings), args.Error(1)
}
func (m *MockTaxSettingsService) SaveTaxSettings(ctx context.Context, workplaceID string, settings domain.TaxSettings, userID string) (*domain.TaxSettings, error) {
	args := m.Called(ctx, workplaceID, settings, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxSettings), args.Error(1)
}

var _ portssvc.TaxSettingsService = (*MockTaxSettingsService)(nil)
