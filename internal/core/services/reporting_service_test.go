package services_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/SscSPs/affiliate_ledger/internal/apperrors"
	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/SscSPs/affiliate_ledger/internal/core/services"
	"github.com/SscSPs/affiliate_ledger/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func trustedStore() *memStore {
	store := newMemStore()
	seedSoloWorkplace(store, "wp1")
	store.put("wp2", domain.CollectionPartners, "other-self", "", `{"id":"other-self","name":"Other","isSelf":true}`)
	store.put("wp2", domain.CollectionCommissions, "c2", "2024-05-10",
		`{"id":"c2","date":"2024-05-10","projectId":"p1","amount":"500000","currency":"VND"}`)
	store.put("wp2", domain.CollectionCommissions, "c1", "2024-05-03",
		`{"id":"c1","date":"2024-05-03","projectId":"p1","amount":"9999999","currency":"VND"}`)
	store.trusts["wp1"] = []string{"wp2", "wp1", "wp2"}
	return store
}

func TestReportingService_FoldsTrustedWorkplaces(t *testing.T) {
	ctx := context.Background()
	store := trustedStore()
	svc := services.NewReportingService(store, store, store, store)

	financials, err := svc.PeriodFinancials(ctx, "wp1", "2024-05", "u1")

	require.NoError(t, err)
	// c1 is read from wp1; wp2's copy with the same id is ignored.
	assert.True(t, decimal.NewFromInt(1500000).Equal(financials.PnL.TotalRevenue), financials.PnL.TotalRevenue.String())

	ledgers, _, err := svc.PartnerLedgers(ctx, "wp1", "u1")
	require.NoError(t, err)
	require.Len(t, ledgers, 1)
	assert.Equal(t, "me", ledgers[0].PartnerID)
}

func TestReportingService_ClosedPeriodServesSnapshot(t *testing.T) {
	ctx := context.Background()
	store := trustedStore()
	stored := domain.PeriodFinancials{
		Period:   "2024-05",
		PnL:      domain.PnL{Period: "2024-05", TotalRevenue: decimal.NewFromInt(42)},
		Warnings: []domain.Warning{{Code: domain.WarnMissingRate, RecordID: "x", Message: "record excluded"}},
	}
	store.states["wp1"] = &domain.PeriodState{
		WorkplaceID: "wp1",
		Closed:      []domain.ClosedPeriod{{WorkplaceID: "wp1", Period: "2024-05", Financials: stored}},
	}

	svc := services.NewReportingService(store, store, store, store)
	financials, err := svc.PeriodFinancials(ctx, "wp1", "2024-05", "u1")

	require.NoError(t, err)
	assert.Equal(t, stored, *financials)
}

func TestReportingService_InvalidPeriod(t *testing.T) {
	store := newMemStore()
	svc := services.NewReportingService(store, store, store, store)

	_, err := svc.PeriodFinancials(context.Background(), "wp1", "2024-13", "u1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestReportingService_UsesVersionedCache(t *testing.T) {
	ctx := context.Background()
	store := trustedStore()
	cache := new(MockReportCache)
	cache.On("Version", mock.Anything, "wp1").Return(int64(3), nil)
	cache.On("Version", mock.Anything, "wp2").Return(int64(7), nil)
	cache.On("FetchJSON", mock.Anything, "ledger:financials:2024-05:wp1@3:wp2@7", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			raw := args.Get(2).(*json.RawMessage)
			*raw = json.RawMessage(`{"period":"2024-05","pnl":{"totalRevenue":"123"},"warnings":[]}`)
		}).
		Return(nil).Once()

	svc := services.NewReportingService(store, store, store, store, services.WithReportingCache(cache))
	financials, err := svc.PeriodFinancials(ctx, "wp1", "2024-05", "u1")

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(123).Equal(financials.PnL.TotalRevenue))
	cache.AssertExpectations(t)
}

func TestReportingService_RequiresMembership(t *testing.T) {
	store := newMemStore()
	authorizer := new(MockWorkplaceAuthorizer)
	authorizer.On("AuthorizeUserAction", mock.Anything, "stranger", "wp1", domain.RoleReadOnly).Return(apperrors.ErrForbidden)
	svc := services.NewReportingService(store, store, store, store, services.WithReportingWorkplaceAuthorizer(authorizer))

	_, err := svc.PeriodFinancials(context.Background(), "wp1", "2024-05", "stranger")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	_, _, err = svc.PartnerLedgers(context.Background(), "wp1", "stranger")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestReportingService_DeniedAccessIsNotLoggedAsError(t *testing.T) {
	var logs bytes.Buffer
	ctx := middleware.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&logs, nil)))
	store := trustedStore()
	authorizer := new(MockWorkplaceAuthorizer)
	authorizer.On("AuthorizeUserAction", mock.Anything, "outsider", "wp1", domain.RoleReadOnly).Return(apperrors.ErrForbidden)
	svc := services.NewReportingService(store, store, store, store, services.WithReportingWorkplaceAuthorizer(authorizer))

	_, _, err := svc.PartnerLedgers(ctx, "wp1", "outsider")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	_, err = svc.PeriodFinancials(ctx, "wp1", "2024-05", "outsider")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	assert.Contains(t, logs.String(), "User not authorized to view partner ledgers")
	assert.NotContains(t, logs.String(), `"level":"ERROR"`)
	authorizer.AssertExpectations(t)
}
