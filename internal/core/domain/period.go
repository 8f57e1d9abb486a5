package domain

import "time"

// ClosedPeriod is the immutable snapshot taken when a period is closed.
type ClosedPeriod struct {
	WorkplaceID string           `json:"workplaceId"`
	Period      string           `json:"period"`
	Financials  PeriodFinancials `json:"financials"`
	ClosedAt    time.Time        `json:"closedAt"`
	ClosedBy    string           `json:"closedBy"`
}

// PeriodState is the lifecycle position of a workplace: at most one open period plus closed history.
type PeriodState struct {
	WorkplaceID  string         `json:"workplaceId"`
	ActivePeriod string         `json:"activePeriod,omitempty"`
	Closed       []ClosedPeriod `json:"closed"`
}

// IsClosed reports whether period has been closed.
func (s PeriodState) IsClosed(period string) bool {
	for _, c := range s.Closed {
		if c.Period == period {
			return true
		}
	}
	return false
}

// FindClosed returns the closed snapshot for period, if any.
func (s PeriodState) FindClosed(period string) (*ClosedPeriod, bool) {
	for i := range s.Closed {
		if s.Closed[i].Period == period {
			return &s.Closed[i], true
		}
	}
	return nil, false
}
