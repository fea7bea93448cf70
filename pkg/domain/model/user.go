package model

// User represents a clinician account. Users are seeded at startup and are
// never mutated or deleted.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}
