package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bayshore/server/config"
	"bayshore/server/internal/middleware"
)

// Admission control budgets. Fixed by design, not externally tunable.
const (
	generalRateLimit  = 100
	generalRateWindow = 15 * time.Minute
	speedLimitAfter   = 50
	speedLimitStep    = 500 * time.Millisecond
	speedLimitMax     = 20 * time.Second
	formSubmissionMax = 5
	formWindow        = time.Hour
	newsletterMax     = 3
	newsletterWindow  = 24 * time.Hour
)

// SetupRoutes wires the admission-control chain and all route handlers. The
// chain order is fixed: size cap, IP policy, rate limit, speed limit, then
// submission limits on the form endpoints.
func SetupRoutes(router *gin.Engine, h *Handler, cfg *config.Config, logger *logrus.Logger) {
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-API-Key"},
		ExposeHeaders: []string{"X-Request-ID", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}))
	router.Use(middleware.SizeLimit())
	router.Use(middleware.NewIPPolicy(cfg.IsProduction(), cfg.TrustedOriginSuffix, logger).Handler())
	router.Use(middleware.NewIPRateLimiter(generalRateLimit, generalRateWindow).Handler())
	router.Use(middleware.NewSpeedLimiter(speedLimitAfter, speedLimitStep, speedLimitMax, generalRateWindow).Handler())

	// One shared budget across the general form endpoints, a stricter daily
	// one for newsletter sign-ups.
	formLimiter := middleware.NewSubmissionLimiter(formSubmissionMax, formWindow,
		"Too many submissions, please try again later").Handler()
	newsletterLimiter := middleware.NewSubmissionLimiter(newsletterMax, newsletterWindow,
		"Too many sign-ups, please try again tomorrow").Handler()

	api := router.Group("/api")
	{
		api.GET("/properties", h.GetProperties)
		api.GET("/properties/featured", h.GetFeaturedProperties)
		api.GET("/properties/:id", h.GetProperty)
		api.GET("/blog", h.GetBlogPosts)
		api.GET("/blog/:slug", h.GetBlogPost)
		api.GET("/neighborhoods", h.GetNeighborhoods)
		api.GET("/neighborhoods/:id", h.GetNeighborhood)
		api.GET("/reviews", h.GetReviews)

		api.POST("/leads", formLimiter, h.CreateLead("property_inquiry_form", "property_inquiry", false))
		api.POST("/contact", formLimiter, h.CreateLead("contact_form", "general_inquiry", false))
		api.POST("/consultation", formLimiter, h.CreateLead("consultation_form", "consultation_request", false))
		api.POST("/valuation", formLimiter, h.CreateLead("valuation_form", "home_valuation", false))
		api.POST("/newsletter", newsletterLimiter, h.CreateLead("newsletter_form", "newsletter_signup", true))

		admin := api.Group("/admin", middleware.RequireAPIKey(cfg.AdminAPIKey))
		{
			admin.GET("/blog", h.ListBlogPosts)
			admin.POST("/blog", h.CreateBlogPost)
			admin.PUT("/blog/:slug", h.UpdateBlogPost)
			admin.DELETE("/blog/:slug", h.DeleteBlogPost)
			admin.GET("/leads", h.ListLeads)
		}
	}

	// Derived documents, recomputed from live store state on every request.
	router.GET("/robots.txt", h.Robots)
	router.GET("/sitemap.xml", h.Sitemap)
	router.GET("/rss.xml", h.RSS)
	router.GET("/business.json", h.BusinessProfile)
	router.GET("/local-seo/:neighborhood", h.LocalSEO)
}
