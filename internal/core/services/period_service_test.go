package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/affiliate_ledger/internal/apperrors"
	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/SscSPs/affiliate_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// seedSoloWorkplace stores one solo project with 1,000,000 VND revenue and 10 USD of ad spend in May 2024.
func seedSoloWorkplace(store *memStore, workplaceID string) {
	store.put(workplaceID, domain.CollectionPartners, "me", "", `{"id":"me","name":"Me","isSelf":true}`)
	store.put(workplaceID, domain.CollectionProjects, "p1", "", `{"id":"p1","name":"Solo offer"}`)
	store.put(workplaceID, domain.CollectionAssets, "bank", "", `{"id":"bank","name":"VND bank","kind":"bank","currency":"VND"}`)
	store.put(workplaceID, domain.CollectionAssets, "ads", "", `{"id":"ads","name":"Ads","kind":"ad_account","currency":"USD","initialBalance":"100"}`)
	store.put(workplaceID, domain.CollectionCommissions, "c1", "2024-05-03",
		`{"id":"c1","date":"2024-05-03","projectId":"p1","assetId":"bank","amount":"1000000","currency":"VND"}`)
	store.put(workplaceID, domain.CollectionAdCosts, "a1", "2024-05-04",
		`{"id":"a1","date":"2024-05-04","projectId":"p1","assetId":"ads","amount":"10","currency":"USD","rate":"25000"}`)
}

func TestPeriodService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	seedSoloWorkplace(store, "wp1")
	cache := new(MockReportCache)
	cache.On("Bump", mock.Anything, "wp1").Return(nil).Once()

	svc := services.NewPeriodService(store, store, store, store,
		services.WithPeriodCache(cache),
		services.WithPeriodClock(func() time.Time { return fixedNow }))

	_, err := svc.ClosePeriod(ctx, "wp1", "u1")
	require.ErrorIs(t, err, apperrors.ErrPrecondition)

	state, err := svc.OpenPeriod(ctx, "wp1", "2024-05", "u1")
	require.NoError(t, err)
	assert.Equal(t, "2024-05", state.ActivePeriod)

	_, err = svc.OpenPeriod(ctx, "wp1", "2024-06", "u1")
	assert.ErrorIs(t, err, apperrors.ErrPrecondition)

	closed, err := svc.ClosePeriod(ctx, "wp1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "2024-05", closed.Period)
	assert.Equal(t, "wp1", closed.WorkplaceID)
	assert.Equal(t, fixedNow, closed.ClosedAt)
	assert.True(t, decimal.NewFromInt(1000000).Equal(closed.Financials.PnL.TotalRevenue))
	assert.True(t, decimal.NewFromInt(750000).Equal(closed.Financials.PnL.TotalProfit))
	assert.Nil(t, closed.Financials.Tax)

	state, err = svc.GetPeriodState(ctx, "wp1", "u1")
	require.NoError(t, err)
	assert.Empty(t, state.ActivePeriod)
	require.Len(t, state.Closed, 1)

	_, err = svc.OpenPeriod(ctx, "wp1", "2024-05", "u1")
	assert.ErrorIs(t, err, apperrors.ErrPrecondition)
	cache.AssertExpectations(t)
}

func TestPeriodService_CloseAppliesTaxSettings(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	seedSoloWorkplace(store, "wp1")
	rate := decimal.NewFromFloat(1.5)
	store.settings["wp1"] = domain.TaxSettings{Method: domain.TaxMethodRevenue, RevenueRate: &rate}
	store.states["wp1"] = &domain.PeriodState{WorkplaceID: "wp1", ActivePeriod: "2024-05"}

	svc := services.NewPeriodService(store, store, store, store)
	closed, err := svc.ClosePeriod(ctx, "wp1", "u1")

	require.NoError(t, err)
	require.NotNil(t, closed.Financials.Tax)
	assert.True(t, decimal.NewFromInt(15000).Equal(closed.Financials.Tax.TaxPayable), closed.Financials.Tax.TaxPayable.String())
}

func TestPeriodService_IncompleteTaxSettingsKeepPeriodOpen(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	seedSoloWorkplace(store, "wp1")
	store.settings["wp1"] = domain.TaxSettings{Method: domain.TaxMethodProfitVAT}
	store.states["wp1"] = &domain.PeriodState{WorkplaceID: "wp1", ActivePeriod: "2024-05"}

	svc := services.NewPeriodService(store, store, store, store)
	_, err := svc.ClosePeriod(ctx, "wp1", "u1")

	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	assert.Equal(t, "2024-05", store.states["wp1"].ActivePeriod)
	assert.Empty(t, store.states["wp1"].Closed)
}

func TestPeriodService_RequiresAdmin(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	authorizer := new(MockWorkplaceAuthorizer)
	authorizer.On("AuthorizeUserAction", mock.Anything, "member", "wp1", domain.RoleAdmin).Return(apperrors.ErrForbidden)

	svc := services.NewPeriodService(store, store, store, store, services.WithPeriodWorkplaceAuthorizer(authorizer))

	_, err := svc.OpenPeriod(ctx, "wp1", "2024-05", "member")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	_, err = svc.ClosePeriod(ctx, "wp1", "member")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	authorizer.AssertExpectations(t)
}

func TestPeriodService_CloseReadsRecordsThroughLockingTransaction(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	seedSoloWorkplace(store, "wp1")
	store.states["wp1"] = &domain.PeriodState{WorkplaceID: "wp1", ActivePeriod: "2024-05"}

	svc := services.NewPeriodService(store, store, store, store)
	closed, err := svc.ClosePeriod(ctx, "wp1", "u1")

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000000).Equal(closed.Financials.PnL.TotalRevenue))
	assert.Zero(t, store.poolReads, "no listing may wait on a pool connection while the period is locked")
	assert.Equal(t, len(domain.Collections), store.txReads)
}
