package dto

import (
	"time"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
)

// --- Workplace DTOs ---

// CreateWorkplaceRequest defines data for creating a new workplace.
type CreateWorkplaceRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=1000"`
	// OwnerName names the isSelf partner; defaults to the workplace name.
	OwnerName string `json:"ownerName" binding:"max=200"`
}

// TrustWorkplaceRequest names a workplace whose shared records should be folded into reports.
type TrustWorkplaceRequest struct {
	TrustedWorkplaceID string `json:"trustedWorkplaceID" binding:"required"`
}

// WorkplaceResponse defines data returned for a workplace.
type WorkplaceResponse struct {
	WorkplaceID   string    `json:"workplaceID"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID
}

// ToWorkplaceResponse converts domain.Workplace to DTO.
func ToWorkplaceResponse(w *domain.Workplace) WorkplaceResponse {
	return WorkplaceResponse{
		WorkplaceID:   w.WorkplaceID,
		Name:          w.Name,
		Description:   w.Description,
		IsActive:      w.IsActive,
		CreatedAt:     w.CreatedAt,
		CreatedBy:     w.CreatedBy,
		LastUpdatedAt: w.LastUpdatedAt,
		LastUpdatedBy: w.LastUpdatedBy,
	}
}

// ListWorkplacesResponse wraps a list of workplaces.
type ListWorkplacesResponse struct {
	Workplaces []WorkplaceResponse `json:"workplaces"`
}

// ToListWorkplacesResponse converts a slice of domain.Workplace to DTO.
func ToListWorkplacesResponse(ws []domain.Workplace) ListWorkplacesResponse {
	list := make([]WorkplaceResponse, len(ws))
	for i, w := range ws {
		list[i] = ToWorkplaceResponse(&w)
	}
	return ListWorkplacesResponse{Workplaces: list}
}
