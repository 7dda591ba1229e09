// Package domain defines the types and interfaces for the members service
package domain

import "time"

// Member is one enrolled reader in a club. Members are never hard-deleted;
// departed readers are deactivated so their history keeps resolving
type Member struct {
	ID        string // uuid
	ClubID    string // uuid
	Name      string // display form, as enrolled
	Folded    string // canonical fold of Name, the matching key
	Active    bool
	CreatedAt time.Time
}

// EnrollInput creates a member
type EnrollInput struct {
	Name string `json:"name" validate:"required,min=1"`
}

// ListInput filters the member list
type ListInput struct {
	IncludeInactive bool `json:"include_inactive"`
}
