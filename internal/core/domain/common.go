package domain

import "time"

// DateLayout is the layout of every record date ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// PeriodLayout is the layout of an accounting period ("YYYY-MM").
const PeriodLayout = "2006-01"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}
