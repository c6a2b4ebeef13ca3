package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/bank_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that are neither tracked nor rate limited
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful API calls with PostHog.
// The client IP is used as the distinct id since the API carries no user identity.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		eventName := EventNameForRoute(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string)
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(c.ClientIP(), eventName, props)
	}
}

// EventNameForRoute turns a route pattern into an analytics event name,
// e.g. "/api/v1/operations/deposit/:accountID" -> "api_v1_operations_deposit".
func EventNameForRoute(fullPath string) string {
	segments := strings.Split(strings.Trim(fullPath, "/"), "/")
	kept := segments[:0]
	for _, s := range segments {
		if s == "" || strings.HasPrefix(s, ":") || strings.HasPrefix(s, "*") {
			continue
		}
		kept = append(kept, s)
	}
	return strings.Join(kept, "_")
}
