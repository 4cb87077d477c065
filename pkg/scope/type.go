package scope

// Payload is the verified token content.
type Payload struct {
	UserID    string
	Email     string
	Role      string
	Subject   string
	Issuer    string
	ID        string
	IssuedAt  int64
	ExpiresAt int64
}

// Manager verifies tokens into payloads and mints tokens from payloads.
// pkg/jwt provides the production implementation.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}
