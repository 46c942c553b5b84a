package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/facility_gis/internal/config"
	"github.com/sirupsen/logrus"
)

// requestAPIKey берет ключ из X-API-Key, иначе из Authorization: Bearer
func requestAPIKey(c *gin.Context) string {
	if key := c.GetHeader("X-API-Key"); key != "" {
		return key
	}
	if token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func knownAPIKey(keys []string, candidate string) bool {
	for _, key := range keys {
		if key != "" && subtle.ConstantTimeCompare([]byte(key), []byte(candidate)) == 1 {
			return true
		}
	}
	return false
}

// APIKeyAuthMiddleware пропускает в админку только запросы с известным API-ключом.
// Сам ключ в лог не пишется.
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry := log.WithFields(logrus.Fields{
			"middleware": "api_key",
			"path":       c.FullPath(),
		})

		apiKey := requestAPIKey(c)
		switch {
		case apiKey == "":
			entry.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		case !knownAPIKey(cfg.APIKeys, apiKey):
			entry.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}
