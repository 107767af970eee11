package utils

import "context"

type contextKey string

const (
	StaffIDKey contextKey = "staff_id"
)

// SetStaffContext sets the acting staff identity into context (called by middleware).
func SetStaffContext(ctx context.Context, staffID string) context.Context {
	return context.WithValue(ctx, StaffIDKey, staffID)
}

// GetStaffIDFromContext retrieves the staff ID safely.
func GetStaffIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(StaffIDKey).(string)
	return id, ok
}
