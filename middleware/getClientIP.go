package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the address the rate limiter buckets by. Proxy
// headers win over the socket peer since the service normally sits
// behind an ingress; gin's own ClientIP is not used because its
// trusted-proxy handling depends on engine configuration this
// middleware should not assume.
func getClientIP(c *gin.Context) string {
	// X-Forwarded-For carries a comma-separated chain; the first hop
	// is the originating client.
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); xri != "" {
		return xri
	}
	// Fall back to the peer address, stripping the port when present.
	addr := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
