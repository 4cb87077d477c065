package response

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "market-intel-srv/pkg/errors"
)

// Notifier receives out-of-band alerts for 5xx-class failures.
// pkg/discord.IDiscord satisfies it; nil disables notification.
type Notifier interface {
	SendError(ctx context.Context, title, description string, err error) error
}

// OK writes the payload as-is with status 200. Success payloads define
// their own wire shape ({"success": true, ...}).
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error renders an error as the stable {error, details} body.
// *pkgErrors.HTTPError keeps its status and message; anything else is a
// 500 with a generic message, and the notifier is pinged so the raw error
// is not lost (nor leaked to the client).
func Error(c *gin.Context, err error, notifier Notifier) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		body := ErrResp{
			Error:     httpErr.Message,
			Details:   httpErr.Details,
			Timestamp: time.Now().Format(time.RFC3339),
		}
		if httpErr.StatusCode >= http.StatusInternalServerError {
			notify(c, notifier, httpErr.Message, err)
		}
		c.JSON(httpErr.StatusCode, body)
		return
	}

	notify(c, notifier, "Internal server error", err)
	c.JSON(http.StatusInternalServerError, ErrResp{
		Error:     "Internal server error",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// ValidationFailed renders a 400 with the structured field errors and the
// joined details string.
func ValidationFailed(c *gin.Context, details string, fields any) {
	c.JSON(http.StatusBadRequest, ErrResp{
		Error:     "Validation failed",
		Details:   details,
		Errors:    fields,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Unauthorized writes a 401. Missing or invalid credentials are never
// downgraded to an empty result.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrResp{
		Error:     "Unauthorized",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Forbidden writes a 403 for role mismatches on restricted operations.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, ErrResp{
		Error:     "Forbidden: Admin access required",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// PanicError renders a recovered panic as a 500 and alerts the notifier.
func PanicError(c *gin.Context, recovered any, notifier Notifier) {
	notify(c, notifier, "Panic recovered", fmt.Errorf("%v", recovered))
	c.JSON(http.StatusInternalServerError, ErrResp{
		Error:     "Internal server error",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func notify(c *gin.Context, notifier Notifier, title string, err error) {
	if notifier == nil {
		return
	}
	desc := fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path)
	// Alerting must never delay or fail the response.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = notifier.SendError(ctx, title, desc, err)
	}()
}
