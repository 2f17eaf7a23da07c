package session

import (
	"time" // Time for cookie token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// CookieName is the cookie carrying the signed session token
const CookieName = "expense_session"

// cookieClaims binds the opaque session identifier into the signed cookie
type cookieClaims struct {
	SessionID            string `json:"sid"` // Custom claim for the session identifier
	jwt.RegisteredClaims        // Standard JWT claims
}

// EncodeCookie signs a session identifier into the cookie token
func EncodeCookie(sessionID, secret string, ttl time.Duration) (string, error) {
	// Set token claims
	claims := cookieClaims{
		SessionID: sessionID, // Custom claim for the session identifier
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)), // Cookie expires with the session
			IssuedAt:  jwt.NewNumericDate(time.Now()),          // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// DecodeCookie parses a cookie token and returns the session identifier it carries
func DecodeCookie(tokenStr, secret string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &cookieClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors
	if err != nil {
		return "", err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*cookieClaims); ok && token.Valid {
		return claims.SessionID, nil // Return the session identifier if valid
	}
	// Return error if token is invalid
	return "", jwt.ErrSignatureInvalid
}
