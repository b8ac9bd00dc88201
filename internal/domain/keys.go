package domain

type contextKey string

// Context keys used across middleware and usecases.
const (
	KeyRequestID contextKey = "request_id"
	KeyAdminID   contextKey = "admin_id"
)
