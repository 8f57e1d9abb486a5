package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/affiliate_ledger/internal/apperrors"
	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/SscSPs/affiliate_ledger/internal/core/finance"
	"github.com/SscSPs/affiliate_ledger/internal/utils/accounting"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// parsedRecord is a validated record ready to be stored.
type parsedRecord struct {
	id      string
	date    string
	payload []byte
}

type recordParser func(raw []byte) (parsedRecord, error)

func parserFor[T any](key func(T) (id, date string)) recordParser {
	return func(raw []byte) (parsedRecord, error) {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return parsedRecord{}, fmt.Errorf("%w: malformed record: %v", apperrors.ErrValidation, err)
		}
		if err := validate.Struct(v); err != nil {
			return parsedRecord{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		if err := checkRecord(v); err != nil {
			return parsedRecord{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		canonical, err := json.Marshal(v)
		if err != nil {
			return parsedRecord{}, err
		}
		id, date := key(v)
		return parsedRecord{id: id, date: date, payload: canonical}, nil
	}
}

func datedKey[T domain.Dated](v T) (string, string) { return v.RecordID(), v.RecordDate() }

var recordParsers = map[domain.Collection]recordParser{
	domain.CollectionProjects:           parserFor(func(v domain.Project) (string, string) { return v.ID, "" }),
	domain.CollectionAssets:             parserFor(func(v domain.Asset) (string, string) { return v.ID, "" }),
	domain.CollectionPartners:           parserFor(func(v domain.Partner) (string, string) { return v.ID, "" }),
	domain.CollectionAdCosts:            parserFor(datedKey[domain.DailyAdCost]),
	domain.CollectionCommissions:        parserFor(datedKey[domain.Commission]),
	domain.CollectionExpenses:           parserFor(datedKey[domain.MiscellaneousExpense]),
	domain.CollectionExchanges:          parserFor(datedKey[domain.ExchangeLog]),
	domain.CollectionAdFundTransfers:    parserFor(datedKey[domain.AdFundTransfer]),
	domain.CollectionTaxPayments:        parserFor(datedKey[domain.TaxPayment]),
	domain.CollectionLiabilities:        parserFor(datedKey[domain.Liability]),
	domain.CollectionLiabilityPayments:  parserFor(datedKey[domain.LiabilityPayment]),
	domain.CollectionReceivables:        parserFor(datedKey[domain.Receivable]),
	domain.CollectionReceivablePayments: parserFor(datedKey[domain.ReceivablePayment]),
	domain.CollectionCapitalInflows:     parserFor(datedKey[domain.CapitalInflow]),
	domain.CollectionWithdrawals:        parserFor(datedKey[domain.Withdrawal]),
	domain.CollectionPartnerLedger:      parserFor(datedKey[domain.PartnerLedgerEntry]),
}

// parseRecord validates raw as a document of collection.
func parseRecord(collection domain.Collection, raw []byte) (parsedRecord, error) {
	parse, ok := recordParsers[collection]
	if !ok {
		return parsedRecord{}, fmt.Errorf("%w: unknown collection %q", apperrors.ErrValidation, collection)
	}
	return parse(raw)
}

// checkRecord enforces the rules struct tags cannot express.
func checkRecord(v any) error {
	switch r := v.(type) {
	case domain.Project:
		if r.IsPartnership {
			if _, err := accounting.ValidateShares(r.PartnerShares); err != nil {
				return err
			}
		}
		if r.Period != "" {
			if _, err := finance.ParsePeriod(r.Period); err != nil {
				return err
			}
		}
	case domain.Asset:
		if !r.Currency.IsValid() {
			return fmt.Errorf("asset currency %q is not supported", r.Currency)
		}
		switch r.Kind {
		case domain.AssetCash, domain.AssetBank, domain.AssetWallet, domain.AssetAdAccount:
		default:
			return fmt.Errorf("asset kind %q is not supported", r.Kind)
		}
	case domain.Partner:
		if r.IsSelf {
			return fmt.Errorf("the owner partner is created with the workplace")
		}
	case domain.DailyAdCost:
		return checkConverted(r.Amount, r.Currency, r.Rate)
	case domain.Commission:
		return checkConverted(r.Amount, r.Currency, r.Rate)
	case domain.MiscellaneousExpense:
		if r.IsPartnership {
			if _, err := accounting.ValidateShares(r.PartnerShares); err != nil {
				return err
			}
		}
		return checkConverted(r.Amount, r.Currency, r.Rate)
	case domain.CapitalInflow:
		return checkConverted(r.Amount, r.Currency, r.Rate)
	case domain.Withdrawal:
		return checkConverted(r.Amount, r.Currency, r.Rate)
	case domain.TaxPayment:
		if r.ForPeriod != "" {
			if _, err := finance.ParsePeriod(r.ForPeriod); err != nil {
				return err
			}
		}
		return checkMoney(r.Amount, r.Currency)
	case domain.ExchangeLog:
		if r.FromAssetID == r.ToAssetID {
			return fmt.Errorf("exchange needs two different assets")
		}
		return nonNegative(r.FromAmount, r.ToAmount)
	case domain.AdFundTransfer:
		if r.FromAssetID == r.ToAssetID {
			return fmt.Errorf("transfer needs two different assets")
		}
		return nonNegative(r.Amount)
	case domain.Liability:
		return checkMoney(r.TotalAmount, r.Currency)
	case domain.Receivable:
		return checkMoney(r.TotalAmount, r.Currency)
	case domain.LiabilityPayment:
		return nonNegative(r.Amount)
	case domain.ReceivablePayment:
		return nonNegative(r.Amount)
	case domain.PartnerLedgerEntry:
		if strings.HasPrefix(r.ID, domain.AutoEntryPrefix) {
			return fmt.Errorf("ids starting with %q are reserved for automatic entries", domain.AutoEntryPrefix)
		}
		return nonNegative(r.Amount)
	}
	return nil
}

func checkMoney(amount decimal.Decimal, currency domain.Currency) error {
	if !currency.IsValid() {
		return fmt.Errorf("currency %q is not supported", currency)
	}
	return nonNegative(amount)
}

// checkConverted validates a record that is converted to VND with its own rate.
func checkConverted(amount decimal.Decimal, currency domain.Currency, rate decimal.Decimal) error {
	if err := checkMoney(amount, currency); err != nil {
		return err
	}
	if currency == domain.USD && !rate.IsPositive() {
		return fmt.Errorf("a %s amount needs a positive rate", currency)
	}
	return nonNegative(rate)
}

func nonNegative(amounts ...decimal.Decimal) error {
	for _, a := range amounts {
		if a.IsNegative() {
			return fmt.Errorf("amount %s must not be negative", a.String())
		}
	}
	return nil
}

// decodeRecords unmarshals stored documents into typed records.
func decodeRecords[T any](records []domain.StoredRecord) ([]T, error) {
	out := make([]T, 0, len(records))
	for _, r := range records {
		var v T
		if err := json.Unmarshal(r.Payload, &v); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", r.Collection, r.RecordID, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// assetRefs holds every field a record uses to name an asset.
type assetRefs struct {
	AssetID     string `json:"assetId"`
	FromAssetID string `json:"fromAssetId"`
	ToAssetID   string `json:"toAssetId"`
}

func referencesAsset(payload []byte, assetID string) bool {
	var refs assetRefs
	if err := json.Unmarshal(payload, &refs); err != nil {
		return false
	}
	return refs.AssetID == assetID || refs.FromAssetID == assetID || refs.ToAssetID == assetID
}
