package model

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Scope is the caller identity extracted from the verified token.
// Role promotion (admin-email allowlist) happens once in the auth
// middleware, so IsAdmin is the single role check everywhere else.
type Scope struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}
