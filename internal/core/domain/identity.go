package domain

import "errors"

// Role determines which dashboard views and navigation items an
// identity can reach.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleHR       Role = "hr"
	RoleAdmin    Role = "admin"
)

// Valid reports whether the role is one of the fixed enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleHR, RoleAdmin:
		return true
	}
	return false
}

// Identity is the authenticated user record. TeamLead and HRManager are
// descriptive relations (emails), not enforced anywhere. The role never
// changes within a session; switching roles requires a new login.
type Identity struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
	TeamLead   string `json:"team_lead,omitempty"`
	HRManager  string `json:"hr_manager,omitempty"`
}

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrMalformedSession = errors.New("malformed persisted session")
var ErrLoginInProgress = errors.New("login already in progress")
