package middleware

import (
	"strings"

	"zentherasoft-backend/config"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers for cross-origin requests from the
// Next.js site to this backend.
//
// The origin whitelist is strict:
// - Production: only the zentherasoft.com domains (plus the configured frontend URL)
// - Development: localhost origins
// - Vercel previews: only zenthera-* prefixed subdomains
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	isProduction := cfg.GinMode == "release"

	productionOrigins := map[string]bool{
		"https://www.zentherasoft.com": true,
		"https://zentherasoft.com":     true,
	}
	if cfg.FrontendURL != "" {
		productionOrigins[cfg.FrontendURL] = true
	}

	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
		"http://localhost:3001": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		var isAllowed bool

		if productionOrigins[origin] {
			isAllowed = true
		}

		// Development origins, ONLY outside release mode
		if !isProduction && devOrigins[origin] {
			isAllowed = true
		}

		// Vercel preview deployments with strict subdomain validation.
		// Pattern: zenthera-*.vercel.app or *-zenthera-*.vercel.app, which
		// keeps malicious-zenthera.vercel.app style origins out.
		if !isAllowed && strings.HasSuffix(origin, ".vercel.app") {
			subdomain := strings.TrimPrefix(origin, "https://")
			subdomain = strings.TrimSuffix(subdomain, ".vercel.app")
			if strings.HasPrefix(subdomain, "zenthera") ||
				strings.Contains(subdomain, "-zenthera-") {
				isAllowed = true
			}
		}

		// Same-origin requests carry no Origin header
		if origin == "" {
			isAllowed = true
		}

		// Only set headers for allowed origins; otherwise the browser blocks.
		if isAllowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}
