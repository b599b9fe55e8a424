package auth

import (
	"time"

	"portal-messaging/domain"

	"github.com/golang-jwt/jwt/v5"
)

// stampKey signs the session stamp written next to the persisted
// session slot. In a production environment this should be loaded from
// an environment variable or a secret manager.
var stampKey = []byte("portal_messaging_session_stamp_key_2026")

// SessionClaims binds a persisted session record to the identity it
// was created for. A reload with a stamp that does not verify restores
// the portal to logged-out instead of trusting the record.
type SessionClaims struct {
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// StampSession creates a signed stamp for a freshly opened session.
func StampSession(username string, role domain.Role, duration time.Duration) (string, error) {
	claims := &SessionClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "portal-messaging",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(stampKey)
}

// VerifySessionStamp validates the signature and expiration of a stamp
// and returns the identity it was issued for.
func VerifySessionStamp(stamp string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(stamp, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return stampKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
