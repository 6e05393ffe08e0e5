package middleware

import (
	"context" // Request scoped context
	"errors"  // Error classification
	"fmt"     // Error wrapping

	"hotel_reservation/internal/domain" // Importing domain models
)

// ManagerFinder re-reads a manager record by id
type ManagerFinder interface {
	FindManager(ctx context.Context, id uint) (domain.Identity, error)
}

// ManagerAction is a shell action that needs a logged-in manager
type ManagerAction func(ctx context.Context, manager domain.Identity) error

// ManagerOnly wraps next so it only runs for a valid manager session. The role
// comes from the token but the manager is re-read from the store each call.
func ManagerOnly(secret string, managers ManagerFinder, next ManagerAction) func(ctx context.Context, session Session) error {
	return func(ctx context.Context, session Session) error {
		claims, err := Authenticate(session.Token, secret) // Validate the session token
		if err != nil {
			return err
		}
		// Check the role claim before touching the store
		if claims.Role != string(domain.RoleManager) {
			return fmt.Errorf("manager access required: %w", domain.ErrInvalidCredentials)
		}
		manager, err := managers.FindManager(ctx, claims.UserID) // Fetch manager from the store
		if errors.Is(err, domain.ErrNotFound) {
			// Manager removed since login
			return fmt.Errorf("manager access required: %w", domain.ErrInvalidCredentials)
		}
		if err != nil {
			return err
		}
		return next(ctx, manager) // Proceed to the wrapped action
	}
}
