package contextkeys

// Custom type to avoid collisions with other context keys.
type contextKey string

// DBContextKey is the key under which the per-request *gorm.DB is stored.
const DBContextKey = contextKey("db")
