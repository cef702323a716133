package directory

import "github.com/emsuite/employee-system/internal/core/domain"

// Seed returns the built-in account set: one identity per role, all
// sharing the single configured credential value.
func Seed() []domain.Identity {
	return []domain.Identity{
		{
			ID:         "1",
			Email:      "employee@company.com",
			Name:       "John Smith",
			Role:       domain.RoleEmployee,
			Department: "Engineering",
			TeamLead:   "hr@company.com",
			HRManager:  "hr@company.com",
		},
		{
			ID:         "2",
			Email:      "hr@company.com",
			Name:       "Sarah Johnson",
			Role:       domain.RoleHR,
			Department: "Human Resources",
		},
		{
			ID:         "3",
			Email:      "admin@company.com",
			Name:       "Michael Brown",
			Role:       domain.RoleAdmin,
			Department: "Administration",
		},
	}
}
