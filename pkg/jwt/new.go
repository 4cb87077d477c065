package jwt

import (
	"fmt"
	"time"
)

const (
	// MinSecretKeyLen is the minimum length for the HS256 secret key.
	MinSecretKeyLen = 32

	defaultTTL = 8 * time.Hour
)

// New creates a new JWT manager with an HS256 symmetric key.
func New(cfg Config) (*Manager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, fmt.Errorf("secret key must be at least %d characters long, got %d", MinSecretKeyLen, len(cfg.SecretKey))
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &Manager{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       ttl,
	}, nil
}
