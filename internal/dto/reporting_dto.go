package dto

import (
	"time"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenPeriodRequest names the "YYYY-MM" period to open.
type OpenPeriodRequest struct {
	Period string `json:"period" binding:"required,datetime=2006-01"`
}

// ClosedPeriodSummary is a closed period without its full financials.
type ClosedPeriodSummary struct {
	Period      string          `json:"period"`
	ClosedAt    time.Time       `json:"closedAt"`
	ClosedBy    string          `json:"closedBy"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
	MyProfit    decimal.Decimal `json:"myProfit"`
	TaxPayable  decimal.Decimal `json:"taxPayable"`
}

// PeriodStateResponse is the lifecycle position of a workplace.
type PeriodStateResponse struct {
	WorkplaceID  string                `json:"workplaceID"`
	ActivePeriod string                `json:"activePeriod,omitempty"`
	Closed       []ClosedPeriodSummary `json:"closed"`
}

// ToClosedPeriodSummary converts a closed period snapshot to its summary.
func ToClosedPeriodSummary(c domain.ClosedPeriod) ClosedPeriodSummary {
	summary := ClosedPeriodSummary{
		Period:      c.Period,
		ClosedAt:    c.ClosedAt,
		ClosedBy:    c.ClosedBy,
		TotalProfit: c.Financials.PnL.TotalProfit,
		MyProfit:    c.Financials.PnL.MyProfit,
	}
	if c.Financials.Tax != nil {
		summary.TaxPayable = c.Financials.Tax.TaxPayable
	}
	return summary
}

// ToPeriodStateResponse converts domain.PeriodState to DTO.
func ToPeriodStateResponse(s *domain.PeriodState) PeriodStateResponse {
	closed := make([]ClosedPeriodSummary, len(s.Closed))
	for i, c := range s.Closed {
		closed[i] = ToClosedPeriodSummary(c)
	}
	return PeriodStateResponse{
		WorkplaceID:  s.WorkplaceID,
		ActivePeriod: s.ActivePeriod,
		Closed:       closed,
	}
}

// PartnerLedgersResponse wraps every partner's reconciled ledger.
type PartnerLedgersResponse struct {
	Ledgers  []domain.PartnerLedger `json:"ledgers"`
	Warnings []domain.Warning       `json:"warnings"`
}
