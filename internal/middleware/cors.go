package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS builds the cross-origin policy for the API. Production deployments
// restrict origins through the allowlist; everything else stays permissive
// so local frontends can talk to the server.
func CORS(allowOrigins []string) gin.HandlerFunc {
	config := cors.DefaultConfig()

	if len(allowOrigins) > 0 {
		config.AllowOrigins = allowOrigins
	} else {
		config.AllowAllOrigins = true
	}

	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Internal-Key"}
	config.AllowCredentials = len(allowOrigins) > 0
	config.MaxAge = 12 * time.Hour

	return cors.New(config)
}
