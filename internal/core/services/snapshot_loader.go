package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/affiliate_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

// snapshotLoader assembles the read-only LedgerSnapshot the finance engine works on.
type snapshotLoader struct {
	ledgerRepo portsrepo.LedgerRecordReader
	trustRepo  portsrepo.WorkplaceTrustManager
	periodRepo portsrepo.PeriodReader
}

func newSnapshotLoader(ledgerRepo portsrepo.LedgerRecordReader, trustRepo portsrepo.WorkplaceTrustManager, periodRepo portsrepo.PeriodReader) *snapshotLoader {
	return &snapshotLoader{ledgerRepo: ledgerRepo, trustRepo: trustRepo, periodRepo: periodRepo}
}

// sources returns the workplace itself followed by the workplaces it trusts, sorted and without duplicates.
func (l *snapshotLoader) sources(ctx context.Context, workplaceID string) ([]string, error) {
	trusted, err := l.trustRepo.ListTrustedWorkplaceIDs(ctx, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("list trusted workplaces: %w", err)
	}
	others := make([]string, 0, len(trusted))
	for _, id := range trusted {
		if id != "" && id != workplaceID {
			others = append(others, id)
		}
	}
	slices.Sort(others)
	others = slices.Compact(others)
	return append([]string{workplaceID}, others...), nil
}

// maxParallelReads bounds how many pool connections one snapshot load holds at a time.
const maxParallelReads = 4

// load reads every collection of sources[0] plus the shared collections of the other sources.
func (l *snapshotLoader) load(ctx context.Context, sources []string) (*domain.LedgerSnapshot, error) {
	workplaceID := sources[0]
	results := make([][]domain.StoredRecord, len(domain.Collections))
	var state *domain.PeriodState

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)
	for i, collection := range domain.Collections {
		g.Go(func() error {
			records, err := l.ledgerRepo.ListRecords(gctx, collectionSources(sources, collection), collection)
			if err != nil {
				return fmt.Errorf("list %s: %w", collection, err)
			}
			results[i] = dedupRecords(workplaceID, records)
			return nil
		})
	}
	g.Go(func() error {
		var err error
		state, err = l.periodRepo.FindPeriodState(gctx, workplaceID)
		if err != nil {
			return fmt.Errorf("load period state: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var closed []domain.ClosedPeriod
	if state != nil {
		closed = state.Closed
	}
	return assembleSnapshot(workplaceID, closed, results)
}

// loadInTx reads the same snapshot as load, sequentially on tx. It is used while the period
// state is locked, so the read never waits on a pool connection held by a blocked writer.
func (l *snapshotLoader) loadInTx(ctx context.Context, reader portsrepo.LedgerRecordTxReader, tx pgx.Tx,
	sources []string, closed []domain.ClosedPeriod) (*domain.LedgerSnapshot, error) {
	workplaceID := sources[0]
	results := make([][]domain.StoredRecord, len(domain.Collections))
	for i, collection := range domain.Collections {
		records, err := reader.ListRecordsInTx(ctx, tx, collectionSources(sources, collection), collection)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", collection, err)
		}
		results[i] = dedupRecords(workplaceID, records)
	}
	return assembleSnapshot(workplaceID, closed, results)
}

// collectionSources limits private collections to the workplace itself.
func collectionSources(sources []string, collection domain.Collection) []string {
	if !collection.Shared() {
		return sources[:1]
	}
	return sources
}

func assembleSnapshot(workplaceID string, closed []domain.ClosedPeriod, results [][]domain.StoredRecord) (*domain.LedgerSnapshot, error) {
	snapshot := &domain.LedgerSnapshot{WorkplaceID: workplaceID, ClosedPeriods: closed}
	for i, collection := range domain.Collections {
		if err := assignCollection(snapshot, collection, results[i]); err != nil {
			return nil, err
		}
	}
	return snapshot, nil
}

// dedupRecords keeps one record per id. The workplace's own copy wins over a trusted one.
func dedupRecords(workplaceID string, records []domain.StoredRecord) []domain.StoredRecord {
	byID := make(map[string]int, len(records))
	out := make([]domain.StoredRecord, 0, len(records))
	for _, r := range records {
		idx, seen := byID[r.RecordID]
		if !seen {
			byID[r.RecordID] = len(out)
			out = append(out, r)
			continue
		}
		if r.WorkplaceID == workplaceID && out[idx].WorkplaceID != workplaceID {
			out[idx] = r
		}
	}
	slices.SortStableFunc(out, func(a, b domain.StoredRecord) int {
		return cmp.Or(cmp.Compare(a.RecordDate, b.RecordDate), cmp.Compare(a.RecordID, b.RecordID))
	})
	return out
}

func assignCollection(s *domain.LedgerSnapshot, collection domain.Collection, records []domain.StoredRecord) error {
	var err error
	switch collection {
	case domain.CollectionProjects:
		s.Projects, err = decodeRecords[domain.Project](records)
	case domain.CollectionAssets:
		s.Assets, err = decodeRecords[domain.Asset](records)
	case domain.CollectionAdCosts:
		s.AdCosts, err = decodeRecords[domain.DailyAdCost](records)
	case domain.CollectionCommissions:
		s.Commissions, err = decodeRecords[domain.Commission](records)
	case domain.CollectionExpenses:
		s.Expenses, err = decodeRecords[domain.MiscellaneousExpense](records)
	case domain.CollectionExchanges:
		s.Exchanges, err = decodeRecords[domain.ExchangeLog](records)
	case domain.CollectionAdFundTransfers:
		s.AdFundTransfers, err = decodeRecords[domain.AdFundTransfer](records)
	case domain.CollectionTaxPayments:
		s.TaxPayments, err = decodeRecords[domain.TaxPayment](records)
	case domain.CollectionLiabilities:
		s.Liabilities, err = decodeRecords[domain.Liability](records)
	case domain.CollectionLiabilityPayments:
		s.LiabilityPayments, err = decodeRecords[domain.LiabilityPayment](records)
	case domain.CollectionReceivables:
		s.Receivables, err = decodeRecords[domain.Receivable](records)
	case domain.CollectionReceivablePayments:
		s.ReceivablePayments, err = decodeRecords[domain.ReceivablePayment](records)
	case domain.CollectionCapitalInflows:
		s.CapitalInflows, err = decodeRecords[domain.CapitalInflow](records)
	case domain.CollectionWithdrawals:
		s.Withdrawals, err = decodeRecords[domain.Withdrawal](records)
	case domain.CollectionPartners:
		s.Partners, err = decodeRecords[domain.Partner](records)
	case domain.CollectionPartnerLedger:
		s.PartnerLedgerEntries, err = decodeRecords[domain.PartnerLedgerEntry](records)
	default:
		err = fmt.Errorf("unknown collection %q", collection)
	}
	return err
}
