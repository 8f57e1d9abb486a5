package finance

import (
	"fmt"
	"time"

	"github.com/SscSPs/affiliate_ledger/internal/apperrors"
	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
)

// OpenPeriod returns state with period active. It fails with apperrors.ErrPrecondition while another
// period is open, when period is already closed, or when period precedes the latest closed period.
// The input state is never modified.
func OpenPeriod(state domain.PeriodState, period string) (domain.PeriodState, error) {
	if _, err := ParsePeriod(period); err != nil {
		return state, err
	}
	if state.ActivePeriod != "" {
		return state, apperrors.NewPreconditionError(fmt.Sprintf("period %s is already open", state.ActivePeriod))
	}
	if state.IsClosed(period) {
		return state, apperrors.NewPreconditionError(fmt.Sprintf("period %s is closed and cannot be reopened", period))
	}
	if latest := LatestClosed(state); latest != "" && period < latest {
		return state, apperrors.NewPreconditionError(fmt.Sprintf("period %s precedes closed period %s", period, latest))
	}

	next := state
	next.ActivePeriod = period
	next.Closed = append([]domain.ClosedPeriod(nil), state.Closed...)
	return next, nil
}

// ClosePeriod moves the active period to the closed history together with its financials, which
// the caller computes before the transition. Without an active period it fails with
// apperrors.ErrPrecondition and nothing changes.
func ClosePeriod(state domain.PeriodState, financials domain.PeriodFinancials, closedBy string, closedAt time.Time) (domain.PeriodState, domain.ClosedPeriod, error) {
	if state.ActivePeriod == "" {
		return state, domain.ClosedPeriod{}, apperrors.NewPreconditionError("no period is open")
	}
	if state.IsClosed(state.ActivePeriod) {
		return state, domain.ClosedPeriod{}, apperrors.NewPreconditionError(fmt.Sprintf("period %s is already closed", state.ActivePeriod))
	}
	if financials.Period != state.ActivePeriod {
		return state, domain.ClosedPeriod{}, fmt.Errorf("%w: financials for %s cannot close period %s",
			apperrors.ErrValidation, financials.Period, state.ActivePeriod)
	}

	closed := domain.ClosedPeriod{
		WorkplaceID: state.WorkplaceID,
		Period:      state.ActivePeriod,
		Financials:  financials,
		ClosedAt:    closedAt,
		ClosedBy:    closedBy,
	}

	next := state
	next.ActivePeriod = ""
	next.Closed = make([]domain.ClosedPeriod, 0, len(state.Closed)+1)
	next.Closed = append(next.Closed, state.Closed...)
	next.Closed = append(next.Closed, closed)
	return next, closed, nil
}

// LatestClosed returns the most recent closed period, or "" when none is closed.
func LatestClosed(state domain.PeriodState) string {
	latest := ""
	for _, c := range state.Closed {
		if c.Period > latest {
			latest = c.Period
		}
	}
	return latest
}

// EnsureWritable rejects changes to records dated within a closed period.
func EnsureWritable(state domain.PeriodState, date string) error {
	if p := PeriodOf(date); p != "" && state.IsClosed(p) {
		return fmt.Errorf("%w: %s belongs to closed period %s", apperrors.ErrPeriodClosed, date, p)
	}
	return nil
}
