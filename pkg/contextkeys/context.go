package contextkeys

// ContextKey is a dedicated type for context keys to avoid collisions
// with keys set by other packages.
type ContextKey string

const (
	// DBContextKey carries the *gorm.DB handle (pool or transaction) for the
	// current request. Set by middleware.DBMiddleware, read by handlers.
	DBContextKey ContextKey = "db"

	// UserIDContextKey carries the authenticated user's id.
	UserIDContextKey ContextKey = "userID"

	// UserRoleContextKey carries the authenticated user's role.
	UserRoleContextKey ContextKey = "role"

	// UserEmailContextKey carries the authenticated user's email.
	UserEmailContextKey ContextKey = "email"
)
