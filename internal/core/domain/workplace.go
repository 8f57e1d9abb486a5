package domain

import "time"

// Workplace is the data partition owned by one user. Every ledger record belongs to exactly one workplace.
type Workplace struct {
	WorkplaceID string `json:"workplaceID"` // Primary Key (e.g., UUID)
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// UserWorkplaceRole defines the possible roles a user can have within a workplace.
type UserWorkplaceRole string

const (
	RoleAdmin    UserWorkplaceRole = "ADMIN"
	RoleMember   UserWorkplaceRole = "MEMBER"
	RoleReadOnly UserWorkplaceRole = "READONLY" // Users with read-only access to workplace data
)

// roleRank orders roles so that a higher rank satisfies a lower requirement.
var roleRank = map[UserWorkplaceRole]int{
	RoleReadOnly: 1,
	RoleMember:   2,
	RoleAdmin:    3,
}

// Satisfies reports whether r grants at least the required role.
func (r UserWorkplaceRole) Satisfies(required UserWorkplaceRole) bool {
	return roleRank[r] >= roleRank[required] && roleRank[r] > 0
}

// UserWorkplace represents the membership of a User in a Workplace.
type UserWorkplace struct {
	UserID      string            `json:"userID"`
	WorkplaceID string            `json:"workplaceID"`
	Role        UserWorkplaceRole `json:"role"`
	JoinedAt    time.Time         `json:"joinedAt"`
}

// WorkplaceTrust marks another workplace whose shared records are folded into this workplace's snapshot.
type WorkplaceTrust struct {
	WorkplaceID        string    `json:"workplaceID"`
	TrustedWorkplaceID string    `json:"trustedWorkplaceID"`
	CreatedAt          time.Time `json:"createdAt"`
}
