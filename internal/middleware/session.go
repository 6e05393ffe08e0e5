package middleware

import (
	"fmt"     // Error wrapping
	"strings" // Token trimming

	"hotel_reservation/internal/domain" // Error kinds
	"hotel_reservation/internal/utils"  // JWT utility functions
)

// Session is the token handed out at login and carried by the shell until logout
type Session struct {
	Token string // Signed session token, empty when logged out
}

// Authenticate validates a session token and extracts the identity claims
func Authenticate(token, secret string) (*utils.Claims, error) {
	token = strings.TrimSpace(token)
	// A missing token means nobody is logged in
	if token == "" {
		return nil, fmt.Errorf("no active session: %w", domain.ErrInvalidCredentials)
	}
	claims, err := utils.ParseJWT(token, secret) // Parse the session token
	if err != nil {
		// Expired, tampered or foreign tokens all read as a bad session
		return nil, fmt.Errorf("invalid or expired session: %w", domain.ErrInvalidCredentials)
	}
	return claims, nil
}
