// Package domain contains core concepts of the portal messaging system.
// This file defines Account entities and role invariants.
// No storage, rendering, or transport logic should be added here.
package domain

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Account is an entry of the account directory.
// Accounts are never deleted or mutated in place; the role is fixed at
// creation and the username is unique (case-sensitive).
type Account struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// DefaultAccounts seeds the directory on first run.
func DefaultAccounts() []Account {
	return []Account{
		{Username: "admin1", Password: "Admin!123", Role: RoleAdmin},
		{Username: "student1", Password: "Student!123", Role: RoleStudent},
		{Username: "teacher1", Password: "Teacher!123", Role: RoleTeacher},
	}
}
