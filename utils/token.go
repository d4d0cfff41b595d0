package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The widget never verifies token signatures: it holds no signing secret,
// the remote service does. Parsing unverified is only used to read claims
// the widget displays or checks locally (subject, expiry); the credential
// itself stays opaque and is forwarded as-is.

// TokenSubject extracts the username the token was issued to, or "" when
// the token does not parse.
func TokenSubject(token string) string {
	claims := parseClaims(token)
	if claims == nil {
		return ""
	}
	subject, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return subject
}

// TokenExpired reports whether the token carries an exp claim in the past.
// A token without a readable exp claim is treated as live; the remote
// service is the authority and will reject it if not.
func TokenExpired(token string) bool {
	claims := parseClaims(token)
	if claims == nil {
		return false
	}
	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return false
	}
	return expiry.Before(time.Now())
}

func parseClaims(token string) jwt.MapClaims {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claims
}
