package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const staffIDKey contextKey = "staff_id"

// ErrStaffIDNotFound is returned when no StaffID exists in the request context.
var ErrStaffIDNotFound = errors.New("staff_id not found in context")

// StaffIDFromCtx extracts the authenticated shop staff member from the request context.
// Returns uuid.Nil and ErrStaffIDNotFound when the request is unauthenticated
// (AUTH_REQUIRED=false or no session).
func StaffIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	staffID, ok := ctx.Value(staffIDKey).(uuid.UUID)
	if !ok || staffID == uuid.Nil {
		return uuid.Nil, ErrStaffIDNotFound
	}
	return staffID, nil
}

// WithStaffID returns a new context with the given StaffID attached.
func WithStaffID(ctx context.Context, staffID uuid.UUID) context.Context {
	return context.WithValue(ctx, staffIDKey, staffID)
}

// LogArgs returns the staff_id attribute pair for log calls, or nothing when
// the request is anonymous.
func LogArgs(ctx context.Context) []any {
	if id, err := StaffIDFromCtx(ctx); err == nil {
		return []any{"staff_id", id.String()}
	}
	return nil
}
