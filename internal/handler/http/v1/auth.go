package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safety_response_coordinator/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	apiKeyHeader     = "X-API-Key"
	apiKeyQueryParam = "api_key"
	liveStreamPath   = "/live/stream"
)

// APIKeyAuthMiddleware пропускает запросы с ключом из API_KEYS.
// Ключ берется из X-API-Key или Authorization: Bearer; браузерный websocket
// не умеет ставить заголовки, поэтому для ленты допускается ?api_key=.
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	keys := make([][]byte, 0, len(cfg.APIKeys))
	for _, key := range cfg.APIKeys {
		keys = append(keys, []byte(key))
	}

	return func(c *gin.Context) {
		entry := log.WithFields(logrus.Fields{
			"middleware": "api_key",
			"path":       c.FullPath(),
		})

		apiKey := extractAPIKey(c)
		if apiKey == "" {
			entry.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		if !matchesAny(keys, []byte(apiKey)) {
			entry.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

func extractAPIKey(c *gin.Context) string {
	if key := c.GetHeader(apiKeyHeader); key != "" {
		return key
	}
	if bearer, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(bearer)
	}
	if strings.HasSuffix(c.FullPath(), liveStreamPath) {
		return c.Query(apiKeyQueryParam)
	}
	return ""
}

// matchesAny сравнивает за постоянное время относительно содержимого ключа
func matchesAny(keys [][]byte, candidate []byte) bool {
	matched := 0
	for _, key := range keys {
		matched |= subtle.ConstantTimeCompare(key, candidate)
	}
	return matched == 1
}
