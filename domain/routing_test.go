package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func directory() []Account {
	return []Account{
		{Username: "admin1", Password: "Admin!123", Role: RoleAdmin},
		{Username: "student1", Password: "Student!123", Role: RoleStudent},
		{Username: "student2", Password: "Student!456", Role: RoleStudent},
		{Username: "teacher1", Password: "Teacher!123", Role: RoleTeacher},
	}
}

func TestAllowedRecipients(t *testing.T) {
	req := require.New(t)
	accounts := directory()

	t.Run("student reaches all teachers", func(t *testing.T) {
		got := AllowedRecipients(Session{Username: "student1", Role: RoleStudent}, accounts)
		req.Len(got, 1)
		req.Equal("teacher1", got[0].Username)
	})

	t.Run("teacher reaches all students", func(t *testing.T) {
		got := AllowedRecipients(Session{Username: "teacher1", Role: RoleTeacher}, accounts)
		req.Len(got, 2)
		for _, a := range got {
			req.Equal(RoleStudent, a.Role)
		}
	})

	t.Run("admin reaches everyone but itself", func(t *testing.T) {
		got := AllowedRecipients(Session{Username: "admin1", Role: RoleAdmin}, accounts)
		req.Len(got, 3)
		for _, a := range got {
			req.NotEqual("admin1", a.Username)
		}
	})
}

func TestRouteAllowed(t *testing.T) {
	req := require.New(t)

	req.True(RouteAllowed(RoleStudent, RoleTeacher))
	req.True(RouteAllowed(RoleTeacher, RoleStudent))
	req.False(RouteAllowed(RoleStudent, RoleStudent))
	req.False(RouteAllowed(RoleStudent, RoleAdmin))
	req.False(RouteAllowed(RoleTeacher, RoleTeacher))
	req.False(RouteAllowed(RoleTeacher, RoleAdmin))

	// Admins carry no opposing constraint
	req.True(RouteAllowed(RoleAdmin, RoleStudent))
	req.True(RouteAllowed(RoleAdmin, RoleTeacher))
	req.True(RouteAllowed(RoleAdmin, RoleAdmin))
}

func TestFindAccount_CaseSensitive(t *testing.T) {
	req := require.New(t)
	accounts := directory()

	_, ok := FindAccount(accounts, "student1")
	req.True(ok)

	_, ok = FindAccount(accounts, "Student1")
	req.False(ok)
}
