// Package finance is the period aggregation engine. Every function in it is a pure computation
// over a domain.LedgerSnapshot: nothing here performs I/O, logs, or mutates its inputs.
package finance

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/affiliate_ledger/internal/apperrors"
	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
)

// ParsePeriod validates a "YYYY-MM" period string and returns the first day of the month in UTC.
func ParsePeriod(period string) (time.Time, error) {
	if len(period) != len(domain.PeriodLayout) {
		return time.Time{}, fmt.Errorf("%w: period %q must be formatted YYYY-MM", apperrors.ErrValidation, period)
	}
	t, err := time.Parse(domain.PeriodLayout, period)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: period %q must be formatted YYYY-MM", apperrors.ErrValidation, period)
	}
	return t, nil
}

// PeriodOf returns the "YYYY-MM" period a "YYYY-MM-DD" date belongs to.
func PeriodOf(date string) string {
	if len(date) < len(domain.PeriodLayout) {
		return ""
	}
	return date[:len(domain.PeriodLayout)]
}

// InPeriod reports whether date falls within period.
func InPeriod(date, period string) bool {
	return period != "" && strings.HasPrefix(date, period)
}

// BeforePeriod reports whether date is earlier than the first day of period.
func BeforePeriod(date, period string) bool {
	p := PeriodOf(date)
	return p != "" && p < period
}

// AfterPeriod reports whether date is later than the last day of period.
func AfterPeriod(date, period string) bool {
	return PeriodOf(date) > period
}

// PreviousPeriod returns the month before period.
func PreviousPeriod(period string) (string, error) {
	start, err := ParsePeriod(period)
	if err != nil {
		return "", err
	}
	return start.AddDate(0, -1, 0).Format(domain.PeriodLayout), nil
}

// NextPeriod returns the month after period.
func NextPeriod(period string) (string, error) {
	start, err := ParsePeriod(period)
	if err != nil {
		return "", err
	}
	return start.AddDate(0, 1, 0).Format(domain.PeriodLayout), nil
}

// PeriodEndDate returns the last day of period as "YYYY-MM-DD".
func PeriodEndDate(period string) (string, error) {
	start, err := ParsePeriod(period)
	if err != nil {
		return "", err
	}
	return start.AddDate(0, 1, -1).Format(domain.DateLayout), nil
}

// SelectInPeriod returns the records whose date starts with period, preserving input order.
// The input slice is never modified; empty input yields an empty, non-nil result.
func SelectInPeriod[T domain.Dated](records []T, period string) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if InPeriod(r.RecordDate(), period) {
			out = append(out, r)
		}
	}
	return out
}
