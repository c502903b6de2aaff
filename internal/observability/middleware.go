package observability

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Context keys the codec handlers use to hand their outcome to the
// request logger.
const (
	ctxCards    = "cardctl.cards"
	ctxWarnings = "cardctl.warnings"
)

// SetCodecOutcome attaches a parse outcome to the current request.
// RequestLogger folds it into the request line.
func SetCodecOutcome(c *gin.Context, cards, warnings int) {
	c.Set(ctxCards, cards)
	c.Set(ctxWarnings, warnings)
}

// RequestLogger emits one line per request. Codec endpoints that called
// SetCodecOutcome get cards and warnings counts on the same line, so a
// tolerated-but-messy payload is visible without a second lookup.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		event := logger.Info()
		if status >= 500 {
			event = logger.Error()
		} else if status >= 400 {
			event = logger.Warn()
		}

		event = event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Int("bytes", c.Writer.Size())

		if cards, ok := c.Get(ctxCards); ok {
			event = event.Int("cards", cards.(int))
		}
		if warnings, ok := c.Get(ctxWarnings); ok {
			event = event.Int("warnings", warnings.(int))
		}
		event.Msg("request")
	}
}

// RequestMetricsMiddleware feeds every request into the HTTP metric
// family under the configured node label.
func RequestMetricsMiddleware(node string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		RecordHTTPRequest(node, c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
