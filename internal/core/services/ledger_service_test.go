package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/affiliate_ledger/internal/apperrors"
	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/affiliate_ledger/internal/core/ports/services"
	"github.com/SscSPs/affiliate_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   *memStore
	cache   *MockReportCache
	service portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = newMemStore()
	suite.store.states["wp1"] = &domain.PeriodState{
		WorkplaceID:  "wp1",
		ActivePeriod: "2024-05",
		Closed:       []domain.ClosedPeriod{{WorkplaceID: "wp1", Period: "2024-04"}},
	}
	suite.store.put("wp1", domain.CollectionPartners, "me", "", `{"id":"me","name":"Me","isSelf":true}`)

	suite.cache = new(MockReportCache)
	suite.cache.On("Bump", mock.Anything, "wp1").Return(nil).Maybe()

	suite.service = services.NewLedgerService(suite.store, suite.store, suite.store,
		services.WithLedgerCache(suite.cache),
		services.WithLedgerClock(func() time.Time { return fixedNow }),
	)
}

func (suite *LedgerServiceTestSuite) TestSaveRecord_StoresCanonicalDocument() {
	payload := []byte(`{"id":"c1","date":"2024-05-03","projectId":"p1","assetId":"ads","amount":1000.50,"currency":"USD","rate":"25000"}`)

	saved, err := suite.service.SaveRecord(suite.ctx, "wp1", domain.CollectionCommissions, payload, "u1")

	suite.Require().NoError(err)
	suite.Equal("c1", saved.RecordID)
	suite.Equal("2024-05-03", saved.RecordDate)
	suite.Equal("u1", saved.CreatedBy)
	suite.Equal(fixedNow, saved.CreatedAt)

	var c domain.Commission
	suite.Require().NoError(json.Unmarshal(saved.Payload, &c))
	suite.True(decimal.RequireFromString("1000.5").Equal(c.Amount))
	suite.cache.AssertCalled(suite.T(), "Bump", mock.Anything, "wp1")
}

func (suite *LedgerServiceTestSuite) TestSaveRecord_ReplaceKeepsCreationAudit() {
	suite.store.put("wp1", domain.CollectionExpenses, "e1", "2024-05-01", `{"id":"e1","date":"2024-05-01","amount":"10","currency":"VND"}`)
	rec := suite.store.records[recordKey("wp1", domain.CollectionExpenses, "e1")]
	rec.CreatedBy = "creator"
	suite.store.records[recordKey("wp1", domain.CollectionExpenses, "e1")] = rec

	saved, err := suite.service.SaveRecord(suite.ctx, "wp1", domain.CollectionExpenses,
		[]byte(`{"id":"e1","date":"2024-05-02","assetId":"bank","amount":"20","currency":"VND"}`), "editor")

	suite.Require().NoError(err)
	suite.Equal("creator", saved.CreatedBy)
	suite.Equal("editor", saved.LastUpdatedBy)
	suite.Equal("2024-05-02", saved.RecordDate)
}

func (suite *LedgerServiceTestSuite) TestSaveRecord_Validation() {
	cases := map[string]struct {
		collection domain.Collection
		payload    string
	}{
		"unknown collection": {"journals", `{"id":"x"}`},
		"malformed json":     {domain.CollectionCommissions, `{"id":`},
		"missing date":       {domain.CollectionCommissions, `{"id":"c1","amount":"1","currency":"USD"}`},
		"bad date":           {domain.CollectionCommissions, `{"id":"c1","date":"03/05/2024","amount":"1","currency":"USD"}`},
		"bad currency":       {domain.CollectionCommissions, `{"id":"c1","date":"2024-05-03","amount":"1","currency":"EUR"}`},
		"negative amount":    {domain.CollectionAdCosts, `{"id":"a1","date":"2024-05-03","assetId":"ads","amount":"-1","currency":"USD","rate":"25000"}`},
		"missing asset":      {domain.CollectionCommissions, `{"id":"c1","date":"2024-05-03","amount":"100","currency":"VND"}`},
		"expense no asset":   {domain.CollectionExpenses, `{"id":"e1","date":"2024-05-03","amount":"100","currency":"VND"}`},
		"usd without rate":   {domain.CollectionCommissions, `{"id":"c1","date":"2024-05-03","assetId":"ads","amount":"100","currency":"USD"}`},
		"usd zero rate":      {domain.CollectionAdCosts, `{"id":"a1","date":"2024-05-03","assetId":"ads","amount":"1","currency":"USD","rate":"0"}`},
		"shares over 100":    {domain.CollectionProjects, `{"id":"p1","isPartnership":true,"partnerShares":[{"partnerId":"pa","sharePercentage":"80"},{"partnerId":"pb","sharePercentage":"30"}]}`},
		"same asset":         {domain.CollectionExchanges, `{"id":"x1","date":"2024-05-03","fromAssetId":"a","toAssetId":"a","fromAmount":"1","toAmount":"1"}`},
		"reserved id":        {domain.CollectionPartnerLedger, `{"id":"auto-profit-x","partnerId":"me","date":"2024-05-03","type":"inflow","amount":"1"}`},
	}
	for name, tc := range cases {
		suite.Run(name, func() {
			_, err := suite.service.SaveRecord(suite.ctx, "wp1", tc.collection, []byte(tc.payload), "u1")
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.Equal(0, suite.store.saves)
}

func (suite *LedgerServiceTestSuite) TestSaveRecord_ClosedPeriodIsReadOnly() {
	_, err := suite.service.SaveRecord(suite.ctx, "wp1", domain.CollectionCommissions,
		[]byte(`{"id":"c1","date":"2024-04-30","assetId":"ads","amount":"1","currency":"USD","rate":"25000"}`), "u1")
	suite.ErrorIs(err, apperrors.ErrPeriodClosed)

	// Moving a closed record into an open period is a write to the closed period too.
	suite.store.put("wp1", domain.CollectionCommissions, "old", "2024-04-10", `{"id":"old","date":"2024-04-10","amount":"1","currency":"USD"}`)
	_, err = suite.service.SaveRecord(suite.ctx, "wp1", domain.CollectionCommissions,
		[]byte(`{"id":"old","date":"2024-05-10","assetId":"ads","amount":"1","currency":"USD","rate":"25000"}`), "u1")
	suite.ErrorIs(err, apperrors.ErrPeriodClosed)

	// Undated collections are never frozen.
	_, err = suite.service.SaveRecord(suite.ctx, "wp1", domain.CollectionProjects, []byte(`{"id":"p1","name":"Offer"}`), "u1")
	suite.NoError(err)
}

func (suite *LedgerServiceTestSuite) TestDeleteRecord() {
	suite.store.put("wp1", domain.CollectionCommissions, "old", "2024-04-10", `{"id":"old","date":"2024-04-10","amount":"1","currency":"USD"}`)
	suite.store.put("wp1", domain.CollectionCommissions, "new", "2024-05-10", `{"id":"new","date":"2024-05-10","amount":"1","currency":"USD"}`)

	suite.ErrorIs(suite.service.DeleteRecord(suite.ctx, "wp1", domain.CollectionCommissions, "old", "u1"), apperrors.ErrPeriodClosed)
	suite.ErrorIs(suite.service.DeleteRecord(suite.ctx, "wp1", domain.CollectionCommissions, "missing", "u1"), apperrors.ErrNotFound)
	suite.NoError(suite.service.DeleteRecord(suite.ctx, "wp1", domain.CollectionCommissions, "new", "u1"))

	_, err := suite.store.FindRecord(suite.ctx, "wp1", domain.CollectionCommissions, "new")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	_, err = suite.store.FindRecord(suite.ctx, "wp1", domain.CollectionCommissions, "old")
	suite.NoError(err)
}

func (suite *LedgerServiceTestSuite) TestDeleteAsset_UsedByClosedPeriod() {
	suite.store.put("wp1", domain.CollectionAssets, "bank", "", `{"id":"bank","name":"Bank","kind":"bank","currency":"VND"}`)
	suite.store.put("wp1", domain.CollectionAssets, "spare", "", `{"id":"spare","name":"Spare","kind":"bank","currency":"VND"}`)
	suite.store.put("wp1", domain.CollectionAssets, "card", "", `{"id":"card","name":"Card","kind":"bank","currency":"VND"}`)
	suite.store.put("wp1", domain.CollectionExchanges, "x-old", "2024-04-12",
		`{"id":"x-old","date":"2024-04-12","fromAssetId":"ads","toAssetId":"bank","fromAmount":"1","toAmount":"25000"}`)
	suite.store.put("wp1", domain.CollectionCommissions, "c-new", "2024-05-10",
		`{"id":"c-new","date":"2024-05-10","assetId":"card","amount":"1","currency":"VND"}`)

	err := suite.service.DeleteRecord(suite.ctx, "wp1", domain.CollectionAssets, "bank", "u1")
	suite.ErrorIs(err, apperrors.ErrPeriodClosed)
	_, err = suite.store.FindRecord(suite.ctx, "wp1", domain.CollectionAssets, "bank")
	suite.NoError(err)

	// Only active-period records use these assets.
	suite.NoError(suite.service.DeleteRecord(suite.ctx, "wp1", domain.CollectionAssets, "spare", "u1"))
	suite.NoError(suite.service.DeleteRecord(suite.ctx, "wp1", domain.CollectionAssets, "card", "u1"))
}

func (suite *LedgerServiceTestSuite) TestPartners() {
	suite.ErrorIs(suite.service.DeletePartner(suite.ctx, "wp1", "me", "u1"), apperrors.ErrPrecondition)

	_, err := suite.service.CreatePartner(suite.ctx, "wp1", domain.Partner{Name: "Impostor", IsSelf: true}, "u1")
	suite.ErrorIs(err, apperrors.ErrValidation)

	pa, err := suite.service.CreatePartner(suite.ctx, "wp1", domain.Partner{Name: "Partner A"}, "u1")
	suite.Require().NoError(err)
	suite.NotEmpty(pa.ID)

	entry, err := suite.service.AddLedgerEntry(suite.ctx, "wp1", domain.PartnerLedgerEntry{
		PartnerID: pa.ID,
		Date:      "2024-05-05",
		Type:      domain.LedgerInflow,
		Amount:    decimal.NewFromInt(500000),
	}, "u1")
	suite.Require().NoError(err)
	suite.NotEmpty(entry.ID)

	suite.NoError(suite.service.DeletePartner(suite.ctx, "wp1", pa.ID, "u1"))
}

func (suite *LedgerServiceTestSuite) TestAddAdAccounts() {
	accounts, err := suite.service.AddAdAccounts(suite.ctx, "wp1", []domain.Asset{
		{Name: "FB 01", Kind: domain.AssetBank, InitialBalance: decimal.NewFromInt(100)},
		{Name: "FB 02", Currency: domain.VND},
	}, "u1")

	suite.Require().NoError(err)
	suite.Require().Len(accounts, 2)
	for _, a := range accounts {
		suite.NotEmpty(a.ID)
		suite.Equal(domain.AssetAdAccount, a.Kind)
		stored, err := suite.store.FindRecord(suite.ctx, "wp1", domain.CollectionAssets, a.ID)
		suite.Require().NoError(err)
		suite.Empty(stored.RecordDate)
	}
	suite.Equal(domain.USD, accounts[0].Currency)
	suite.Equal(domain.VND, accounts[1].Currency)
	suite.Equal(1, suite.store.saves)

	_, err = suite.service.AddAdAccounts(suite.ctx, "wp1", nil, "u1")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestWipeWorkplace_KeepsOwnerPartner() {
	suite.store.put("wp1", domain.CollectionCommissions, "old", "2024-04-10", `{"id":"old","date":"2024-04-10","amount":"1","currency":"USD"}`)
	suite.store.settings["wp1"] = domain.TaxSettings{Method: domain.TaxMethodRevenue}

	suite.Require().NoError(suite.service.WipeWorkplace(suite.ctx, "wp1", "u1"))

	suite.Len(suite.store.records, 1)
	self, err := suite.store.FindRecord(suite.ctx, "wp1", domain.CollectionPartners, "me")
	suite.Require().NoError(err)
	suite.Contains(string(self.Payload), `"isSelf":true`)
	suite.NotContains(suite.store.settings, "wp1")

	state, err := suite.store.FindPeriodState(suite.ctx, "wp1")
	suite.Require().NoError(err)
	suite.Empty(state.ActivePeriod)
	suite.Empty(state.Closed)
}

func (suite *LedgerServiceTestSuite) TestWritesRequireMembership() {
	authorizer := new(MockWorkplaceAuthorizer)
	authorizer.On("AuthorizeUserAction", mock.Anything, "outsider", "wp1", domain.RoleMember).Return(apperrors.ErrForbidden)
	authorizer.On("AuthorizeUserAction", mock.Anything, "outsider", "wp1", domain.RoleAdmin).Return(apperrors.ErrForbidden)
	svc := services.NewLedgerService(suite.store, suite.store, suite.store, services.WithLedgerWorkplaceAuthorizer(authorizer))

	_, err := svc.SaveRecord(suite.ctx, "wp1", domain.CollectionProjects, []byte(`{"id":"p1"}`), "outsider")
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.ErrorIs(svc.WipeWorkplace(suite.ctx, "wp1", "outsider"), apperrors.ErrForbidden)
	suite.Equal(0, suite.store.saves)
	authorizer.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
