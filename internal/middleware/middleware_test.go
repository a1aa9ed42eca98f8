package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func perform(router *gin.Engine, method, path, remoteAddr string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAPIKey(t *testing.T) {
	router := gin.New()
	router.GET("/admin", RequireAPIKey("secret"), okHandler)

	// Missing key
	w := perform(router, "GET", "/admin", "203.0.113.5:1000", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong key
	w = perform(router, "GET", "/admin", "203.0.113.5:1000", map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Header key
	w = perform(router, "GET", "/admin", "203.0.113.5:1000", map[string]string{"X-API-Key": "secret"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Bearer token
	w = perform(router, "GET", "/admin", "203.0.113.5:1000", map[string]string{"Authorization": "Bearer secret"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Malformed Authorization header
	w = perform(router, "GET", "/admin", "203.0.113.5:1000", map[string]string{"Authorization": "secret"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAPIKey_UnconfiguredDeniesAll(t *testing.T) {
	router := gin.New()
	router.GET("/admin", RequireAPIKey(""), okHandler)

	w := perform(router, "GET", "/admin", "203.0.113.5:1000", map[string]string{"X-API-Key": ""})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSizeLimit(t *testing.T) {
	router := gin.New()
	router.Use(SizeLimit())
	router.POST("/submit", okHandler)

	req := httptest.NewRequest("POST", "/submit", nil)
	req.ContentLength = MaxRequestSize + 1
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	req = httptest.NewRequest("POST", "/submit", nil)
	req.ContentLength = MaxRequestSize
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func newIPPolicyRouter(production bool, suffix string) *gin.Engine {
	logger := logrus.New()
	router := gin.New()
	router.Use(NewIPPolicy(production, suffix, logger).Handler())
	router.GET("/api/properties", okHandler)
	router.POST("/api/admin/blog", okHandler)
	return router
}

func TestIPPolicy_BlocksPrivateRangesInProduction(t *testing.T) {
	router := newIPPolicyRouter(true, ".replit.app")

	for _, addr := range []string{"192.168.1.10:1000", "10.0.0.4:1000", "172.16.3.2:1000", "127.0.0.1:1000"} {
		w := perform(router, "GET", "/api/properties", addr, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, "addr %s", addr)
	}

	// Public addresses pass
	w := perform(router, "GET", "/api/properties", "203.0.113.5:1000", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIPPolicy_DevelopmentAllowsEverything(t *testing.T) {
	router := newIPPolicyRouter(false, "")

	w := perform(router, "GET", "/api/properties", "127.0.0.1:1000", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIPPolicy_AdminSubmissionExempt(t *testing.T) {
	router := newIPPolicyRouter(true, ".replit.app")

	w := perform(router, "POST", "/api/admin/blog", "192.168.1.10:1000", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIPPolicy_TrustedOriginExempt(t *testing.T) {
	router := newIPPolicyRouter(true, ".replit.app")

	w := perform(router, "GET", "/api/properties", "10.0.0.4:1000",
		map[string]string{"Origin": "https://content-bot.replit.app"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(router, "GET", "/api/properties", "10.0.0.4:1000",
		map[string]string{"Origin": "https://evil.example.com"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestIPRateLimiter_Boundary(t *testing.T) {
	router := gin.New()
	router.Use(NewIPRateLimiter(100, 15*time.Minute).Handler())
	router.GET("/api/properties", okHandler)

	for i := 1; i <= 100; i++ {
		w := perform(router, "GET", "/api/properties", "203.0.113.5:1000", nil)
		require.Equal(t, http.StatusOK, w.Code, "request %d should pass", i)
	}

	w := perform(router, "GET", "/api/properties", "203.0.113.5:1000", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// Budgets are per client IP
	w = perform(router, "GET", "/api/properties", "198.51.100.7:1000", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmissionLimiter(t *testing.T) {
	router := gin.New()
	router.Use(NewSubmissionLimiter(3, time.Hour, "Too many submissions").Handler())
	router.POST("/api/contact", okHandler)

	for i := 1; i <= 3; i++ {
		w := perform(router, "POST", "/api/contact", "203.0.113.5:1000", nil)
		require.Equal(t, http.StatusOK, w.Code, "submission %d should pass", i)
	}

	w := perform(router, "POST", "/api/contact", "203.0.113.5:1000", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestSpeedLimiter_DelayFor(t *testing.T) {
	sl := NewSpeedLimiter(50, 500*time.Millisecond, 20*time.Second, 15*time.Minute)

	assert.Equal(t, time.Duration(0), sl.delayFor(1))
	assert.Equal(t, time.Duration(0), sl.delayFor(50))
	assert.Equal(t, 500*time.Millisecond, sl.delayFor(51))
	assert.Equal(t, 5*time.Second, sl.delayFor(60))
	// Capped
	assert.Equal(t, 20*time.Second, sl.delayFor(91))
	assert.Equal(t, 20*time.Second, sl.delayFor(5000))
}

func TestSpeedLimiter_NoDelayUnderThreshold(t *testing.T) {
	router := gin.New()
	router.Use(NewSpeedLimiter(5, 100*time.Millisecond, time.Second, time.Hour).Handler())
	router.GET("/api/properties", okHandler)

	start := time.Now()
	for i := 0; i < 5; i++ {
		w := perform(router, "GET", "/api/properties", "203.0.113.5:1000", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	logger := logrus.New()
	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/api/properties", okHandler)

	w := perform(router, "GET", "/api/properties", "203.0.113.5:1000", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
