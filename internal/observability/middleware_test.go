package observability

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/danmuck/cardctl/internal/testutil/testlog"
)

func TestRequestLoggerIncludesCodecOutcome(t *testing.T) {
	testlog.Start(t)
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.POST("/v1/cards/parse", func(c *gin.Context) {
		SetCodecOutcome(c, 2, 3)
		c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/cards/parse", nil)
	router.ServeHTTP(rec, req)

	line := buf.String()
	if !strings.Contains(line, `"cards":2`) {
		t.Fatalf("request line missing cards count: %s", line)
	}
	if !strings.Contains(line, `"warnings":3`) {
		t.Fatalf("request line missing warnings count: %s", line)
	}
	if !strings.Contains(line, `"path":"/v1/cards/parse"`) {
		t.Fatalf("request line missing path: %s", line)
	}
}

func TestRequestLoggerOmitsCodecFieldsForPlainRoutes(t *testing.T) {
	testlog.Start(t)
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	line := buf.String()
	if strings.Contains(line, `"cards"`) {
		t.Fatalf("plain route should not carry codec fields: %s", line)
	}
}
