package domain

import "github.com/samber/lo"

// AllowedRecipients returns the accounts the session may write to.
// Pure function of the sender role and the directory:
// students reach teachers, teachers reach students, admins reach
// everyone but themselves.
func AllowedRecipients(session Session, accounts []Account) []Account {
	switch session.Role {
	case RoleStudent:
		return lo.Filter(accounts, func(a Account, _ int) bool {
			return a.Role == RoleTeacher
		})
	case RoleTeacher:
		return lo.Filter(accounts, func(a Account, _ int) bool {
			return a.Role == RoleStudent
		})
	case RoleAdmin:
		return lo.Filter(accounts, func(a Account, _ int) bool {
			return a.Username != session.Username
		})
	default:
		return nil
	}
}

// RouteAllowed is the authorization rule applied at send time.
// Only the student/teacher pairing is constrained; admins carry no
// opposing constraint and may message anyone.
func RouteAllowed(sender, recipient Role) bool {
	switch sender {
	case RoleStudent:
		return recipient == RoleTeacher
	case RoleTeacher:
		return recipient == RoleStudent
	default:
		return true
	}
}

// FindAccount resolves a username against the directory.
// The second return is false when the username is stale or unknown.
func FindAccount(accounts []Account, username string) (Account, bool) {
	return lo.Find(accounts, func(a Account) bool {
		return a.Username == username
	})
}
