package middleware

import (
	"strings"

	"market-intel-srv/internal/model"
	"market-intel-srv/pkg/response"
	"market-intel-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string
		var err error

		// Priority 1: Try to read token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			// Support both "Bearer <token>" and plain token
			if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenString = authHeader[7:]
			} else {
				tokenString = authHeader
			}
		}

		// Priority 2: If no token in header, try cookie
		if tokenString == "" {
			tokenString, err = c.Cookie(m.cookieConfig.Name)
			if err != nil || tokenString == "" {
				response.Unauthorized(c)
				c.Abort()
				return
			}
		}

		// Verify JWT token
		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Resolve the role once, here. Everything downstream trusts
		// sc.IsAdmin() and never re-checks emails or claims.
		sc := scope.NewScope(payload)
		sc.Role = m.resolveRole(sc)

		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, sc)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// AdminOnly rejects non-admin callers. Must run after Auth.
func (m Middleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := scope.GetScopeFromContext(c.Request.Context())
		if !sc.IsAdmin() {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// InternalAuth validates the internal key from the Authorization header (Bearer <key> or raw key).
// If internalKey is empty, all requests are rejected with 401.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		// Support both "Bearer <key>" and raw key
		tokenString := authHeader
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenString = authHeader[7:]
		}
		if m.internalKey == "" || tokenString != m.internalKey {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// resolveRole maps the token's role claim and the configured admin-email
// allowlist to the effective role.
func (m Middleware) resolveRole(sc model.Scope) string {
	if _, ok := m.adminEmails[strings.ToLower(sc.Email)]; ok {
		return model.RoleAdmin
	}
	if sc.Role == model.RoleAdmin {
		return model.RoleAdmin
	}
	return model.RoleUser
}
