package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// IPPolicy blocks traffic from private and loopback ranges when running in
// production. The admin blog submission endpoint stays reachable from those
// ranges, and from requests carrying a trusted Origin suffix, so the content
// automation integration keeps working. The origin check is an IP-policy
// exemption only; the API key remains the authorization boundary.
type IPPolicy struct {
	production          bool
	trustedOriginSuffix string
	exemptPath          string
	logger              *logrus.Logger
}

func NewIPPolicy(production bool, trustedOriginSuffix string, logger *logrus.Logger) *IPPolicy {
	return &IPPolicy{
		production:          production,
		trustedOriginSuffix: trustedOriginSuffix,
		exemptPath:          "/api/admin/blog",
		logger:              logger,
	}
}

func (p *IPPolicy) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !p.production {
			c.Next()
			return
		}

		ip := net.ParseIP(c.ClientIP())
		if ip == nil || !(ip.IsPrivate() || ip.IsLoopback()) {
			c.Next()
			return
		}

		if p.isExempt(c) {
			c.Next()
			return
		}

		p.logger.WithFields(logrus.Fields{
			"client_ip": c.ClientIP(),
			"path":      c.Request.URL.Path,
		}).Warn("Blocked request from private address range")
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Access denied",
		})
	}
}

func (p *IPPolicy) isExempt(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, p.exemptPath) {
		return true
	}
	if p.trustedOriginSuffix == "" {
		return false
	}
	origin := c.GetHeader("Origin")
	return origin != "" && strings.HasSuffix(originHost(origin), p.trustedOriginSuffix)
}

func originHost(origin string) string {
	host := origin
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
