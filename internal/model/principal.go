package model

import "github.com/google/uuid"

type UserRole string

const (
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleContractor UserRole = "CONTRACTOR"
)

type Principal struct {
	UserID       uuid.UUID
	Role         UserRole
	ContractorID *uuid.UUID
}

func (p Principal) IsAdmin() bool {
	return p.Role == UserRoleAdmin
}

func (p Principal) IsContractor() bool {
	return p.Role == UserRoleContractor
}

// ActsFor reports whether the principal is the contractor identified by id.
func (p Principal) ActsFor(contractorID uuid.UUID) bool {
	return p.IsContractor() && p.ContractorID != nil && *p.ContractorID == contractorID
}
