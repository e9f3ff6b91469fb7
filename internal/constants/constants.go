package constants

// Pagination bounds
const (
	DefaultPageSize = 10
	MinPageSize     = 1
	MaxPageSize     = 100
)

// Validation
const (
	MinPasswordLength = 6
	MinNameLength     = 2
)

// ContextKeyUserID is the gin context key holding the authenticated user ID.
const ContextKeyUserID = "user_id"
