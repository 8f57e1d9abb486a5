package services_test

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/SscSPs/affiliate_ledger/internal/apperrors"
	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// memStore is an in-memory stand-in for the ledger, period and tax settings repositories.
// Transactions are no-ops.
type memStore struct {
	mu       sync.Mutex
	records  map[string]domain.StoredRecord
	states   map[string]*domain.PeriodState
	settings map[string]domain.TaxSettings
	trusts   map[string][]string
	saves    int

	// poolReads and txReads count record listings outside and inside a transaction.
	poolReads int
	txReads   int
}

func newMemStore() *memStore {
	return &memStore{
		records:  map[string]domain.StoredRecord{},
		states:   map[string]*domain.PeriodState{},
		settings: map[string]domain.TaxSettings{},
		trusts:   map[string][]string{},
	}
}

func recordKey(workplaceID string, collection domain.Collection, recordID string) string {
	return workplaceID + "|" + string(collection) + "|" + recordID
}

func (m *memStore) Begin(ctx context.Context) (pgx.Tx, error)    { return nil, nil }
func (m *memStore) Commit(ctx context.Context, tx pgx.Tx) error   { return nil }
func (m *memStore) Rollback(ctx context.Context, tx pgx.Tx) error { return nil }

func (m *memStore) ListRecords(ctx context.Context, workplaceIDs []string, collection domain.Collection) ([]domain.StoredRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.poolReads++
	return m.listLocked(workplaceIDs, collection), nil
}

func (m *memStore) ListRecordsInTx(ctx context.Context, tx pgx.Tx, workplaceIDs []string, collection domain.Collection) ([]domain.StoredRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txReads++
	return m.listLocked(workplaceIDs, collection), nil
}

func (m *memStore) listLocked(workplaceIDs []string, collection domain.Collection) []domain.StoredRecord {
	var out []domain.StoredRecord
	for _, r := range m.records {
		if r.Collection == collection && slices.Contains(workplaceIDs, r.WorkplaceID) {
			out = append(out, r)
		}
	}
	// Trusted copies first so the loader has to prefer the workplace's own record.
	slices.SortFunc(out, func(a, b domain.StoredRecord) int {
		if a.RecordID != b.RecordID {
			if a.RecordID < b.RecordID {
				return -1
			}
			return 1
		}
		if a.WorkplaceID == workplaceIDs[0] {
			return 1
		}
		return -1
	})
	return out
}

func (m *memStore) FindRecord(ctx context.Context, workplaceID string, collection domain.Collection, recordID string) (*domain.StoredRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[recordKey(workplaceID, collection, recordID)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &r, nil
}

func (m *memStore) SaveRecordsInTx(ctx context.Context, tx pgx.Tx, records []domain.StoredRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range records {
		m.records[recordKey(r.WorkplaceID, r.Collection, r.RecordID)] = r
	}
	m.saves++
	return nil
}

func (m *memStore) DeleteRecordInTx(ctx context.Context, tx pgx.Tx, workplaceID string, collection domain.Collection, recordID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := recordKey(workplaceID, collection, recordID)
	if _, ok := m.records[key]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.records, key)
	return nil
}

func (m *memStore) DeleteWorkplaceRecordsInTx(ctx context.Context, tx pgx.Tx, workplaceID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for k, r := range m.records {
		if r.WorkplaceID == workplaceID {
			delete(m.records, k)
			n++
		}
	}
	return n, nil
}

func (m *memStore) put(workplaceID string, collection domain.Collection, recordID, date, payload string) {
	m.records[recordKey(workplaceID, collection, recordID)] = domain.StoredRecord{
		WorkplaceID: workplaceID,
		Collection:  collection,
		RecordID:    recordID,
		RecordDate:  date,
		Payload:     []byte(payload),
	}
}

func (m *memStore) stateOf(workplaceID string) *domain.PeriodState {
	st, ok := m.states[workplaceID]
	if !ok {
		st = &domain.PeriodState{WorkplaceID: workplaceID}
		m.states[workplaceID] = st
	}
	return st
}

func (m *memStore) FindPeriodState(ctx context.Context, workplaceID string) (*domain.PeriodState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := *m.stateOf(workplaceID)
	st.Closed = slices.Clone(st.Closed)
	return &st, nil
}

func (m *memStore) FindPeriodStateForUpdate(ctx context.Context, tx pgx.Tx, workplaceID string) (*domain.PeriodState, error) {
	return m.FindPeriodState(ctx, workplaceID)
}

func (m *memStore) SaveActivePeriodInTx(ctx context.Context, tx pgx.Tx, workplaceID, period, userID string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stateOf(workplaceID).ActivePeriod = period
	return nil
}

func (m *memStore) SaveClosedPeriodInTx(ctx context.Context, tx pgx.Tx, closed domain.ClosedPeriod) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.stateOf(closed.WorkplaceID)
	st.Closed = append(st.Closed, closed)
	return nil
}

func (m *memStore) DeletePeriodsInTx(ctx context.Context, tx pgx.Tx, workplaceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, workplaceID)
	return nil
}

func (m *memStore) FindTaxSettings(ctx context.Context, workplaceID string) (*domain.TaxSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.settings[workplaceID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &s, nil
}

func (m *memStore) SaveTaxSettings(ctx context.Context, workplaceID string, settings domain.TaxSettings, userID string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[workplaceID] = settings
	return nil
}

func (m *memStore) DeleteTaxSettingsInTx(ctx context.Context, tx pgx.Tx, workplaceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.settings, workplaceID)
	return nil
}

func (m *memStore) SaveWorkplaceTrust(ctx context.Context, trust domain.WorkplaceTrust) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trusts[trust.WorkplaceID] = append(m.trusts[trust.WorkplaceID], trust.TrustedWorkplaceID)
	return nil
}

func (m *memStore) ListTrustedWorkplaceIDs(ctx context.Context, workplaceID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.trusts[workplaceID]), nil
}

// MockWorkplaceAuthorizer is a mock type for the WorkplaceAuthorizerSvc interface
type MockWorkplaceAuthorizer struct {
	mock.Mock
}

func (m *MockWorkplaceAuthorizer) AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error {
	args := m.Called(ctx, userID, workplaceID, requiredRole)
	return args.Error(0)
}

// MockReportCache is a mock type for the ReportCache interface
type MockReportCache struct {
	mock.Mock
}

func (m *MockReportCache) Version(ctx context.Context, workplaceID string) (int64, error) {
	args := m.Called(ctx, workplaceID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportCache) FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error {
	args := m.Called(ctx, key, dest, loader)
	return args.Error(0)
}

func (m *MockReportCache) Bump(ctx context.Context, workplaceID string) error {
	args := m.Called(ctx, workplaceID)
	return args.Error(0)
}

// MockWorkplaceRepository is a mock type for the WorkplaceRepositoryWithTx interface
type MockWorkplaceRepository struct {
	mock.Mock
}

func (m *MockWorkplaceRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockWorkplaceRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockWorkplaceRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceRepository) ListWorkplacesByUserID(ctx context.Context, userID string) ([]domain.Workplace, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceRepository) SaveWorkplaceInTx(ctx context.Context, tx pgx.Tx, workplace domain.Workplace) error {
	args := m.Called(ctx, tx, workplace)
	return args.Error(0)
}

func (m *MockWorkplaceRepository) AddUserToWorkplaceInTx(ctx context.Context, tx pgx.Tx, membership domain.UserWorkplace) error {
	args := m.Called(ctx, tx, membership)
	return args.Error(0)
}

func (m *MockWorkplaceRepository) FindUserWorkplaceRole(ctx context.Context, userID, workplaceID string) (*domain.UserWorkplace, error) {
	args := m.Called(ctx, userID, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserWorkplace), args.Error(1)
}

func (m *MockWorkplaceRepository) SaveWorkplaceTrust(ctx context.Context, trust domain.WorkplaceTrust) error {
	args := m.Called(ctx, trust)
	return args.Error(0)
}

func (m *MockWorkplaceRepository) ListTrustedWorkplaceIDs(ctx context.Context, workplaceID string) ([]string, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
