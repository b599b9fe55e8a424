package auth

import (
	"strings"
	"testing"
	"time"

	"portal-messaging/domain"
	"portal-messaging/errors"

	"github.com/stretchr/testify/require"
)

func TestPlainVerifier(t *testing.T) {
	req := require.New(t)
	v := PlainVerifier{}

	stored, err := v.Seal("Student!123")
	req.NoError(err)
	req.Equal("Student!123", stored)

	match, err := v.Verify("Student!123", stored)
	req.NoError(err)
	req.True(match)

	// Comparison is exact, including case
	match, err = v.Verify("student!123", stored)
	req.NoError(err)
	req.False(match)
}

func TestArgon2Verifier(t *testing.T) {
	req := require.New(t)
	v := Argon2Verifier{}

	stored, err := v.Seal("MonMotDePasseTr0pSûr!")
	req.NoError(err)
	req.True(strings.HasPrefix(stored, "$argon2id$"))

	match, err := v.Verify("MonMotDePasseTr0pSûr!", stored)
	req.NoError(err)
	req.True(match)

	match, err = v.Verify("MauvaisMDP", stored)
	req.NoError(err)
	req.False(match)
}

func TestSessionStamp(t *testing.T) {
	req := require.New(t)

	stamp, err := StampSession("teacher1", domain.RoleTeacher, time.Hour)
	req.NoError(err)

	claims, err := VerifySessionStamp(stamp)
	req.NoError(err)
	req.Equal("teacher1", claims.Username)
	req.Equal(domain.RoleTeacher, claims.Role)

	// A tampered stamp must not verify
	_, err = VerifySessionStamp(stamp + "x")
	req.Error(err)

	// An expired stamp must not verify
	expired, err := StampSession("teacher1", domain.RoleTeacher, -time.Minute)
	req.NoError(err)
	_, err = VerifySessionStamp(expired)
	req.Error(err)
}

func TestValidateProvision(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		req     ProvisionRequest
		wantErr bool
	}{
		{"Valid student", ProvisionRequest{"bob", "pw1", "student"}, false},
		{"Valid admin", ProvisionRequest{"admin2", "Admin!456", "admin"}, false},
		{"Missing username", ProvisionRequest{"", "pw1", "student"}, true},
		{"Missing password", ProvisionRequest{"bob", "", "student"}, true},
		{"Unknown role", ProvisionRequest{"bob", "pw1", "principal"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProvision(tt.req)
			if tt.wantErr {
				req.ErrorIs(err, errors.ErrInvalidAccount)
			} else {
				req.NoError(err)
			}
		})
	}
}

// BenchmarkHashPassword measures the CPU/RAM impact of the strong mode
func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
