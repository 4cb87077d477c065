package scope

import (
	"context"

	"market-intel-srv/internal/model"
)

type contextKey int

const (
	payloadKey contextKey = iota
	scopeKey
)

// NewScope builds the caller scope from a verified payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID: userID,
		Email:  payload.Email,
		Role:   payload.Role,
	}
}

// SetPayloadToContext stores the raw token payload in the context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey, payload)
}

// GetPayloadFromContext returns the token payload, or a zero Payload when
// the request was not authenticated.
func GetPayloadFromContext(ctx context.Context) Payload {
	if p, ok := ctx.Value(payloadKey).(Payload); ok {
		return p
	}
	return Payload{}
}

// SetScopeToContext stores the caller scope in the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey, sc)
}

// GetScopeFromContext returns the caller scope, or a zero Scope when the
// request was not authenticated.
func GetScopeFromContext(ctx context.Context) model.Scope {
	if sc, ok := ctx.Value(scopeKey).(model.Scope); ok {
		return sc
	}
	return model.Scope{}
}
