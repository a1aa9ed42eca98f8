package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bayshore/server/config"
	"bayshore/server/internal/models"
	"bayshore/server/internal/queue"
	"bayshore/server/internal/reviews"
	"bayshore/server/internal/storage"
	"bayshore/server/internal/validation"
)

type Handler struct {
	store   *storage.Store
	cfg     *config.Config
	logger  *logrus.Logger
	leads   *queue.LeadQueue
	reviews *reviews.Client
}

func NewHandler(store *storage.Store, cfg *config.Config, logger *logrus.Logger, leads *queue.LeadQueue, reviewsClient *reviews.Client) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return &Handler{
		store:   store,
		cfg:     cfg,
		logger:  logger,
		leads:   leads,
		reviews: reviewsClient,
	}
}

// stringFilter treats absent and "all" values as no constraint.
func stringFilter(c *gin.Context, name string) *string {
	v := c.Query(name)
	if v == "" || v == "all" {
		return nil
	}
	return &v
}

// intFilter tolerates malformed numbers by treating them as no constraint.
func intFilter(c *gin.Context, name string) *int {
	v := c.Query(name)
	if v == "" || v == "all" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func boolFilter(c *gin.Context, name string) *bool {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

func (h *Handler) GetProperties(c *gin.Context) {
	filter := models.PropertyFilter{
		PropertyType: stringFilter(c, "propertyType"),
		MinPrice:     intFilter(c, "minPrice"),
		MaxPrice:     intFilter(c, "maxPrice"),
		Bedrooms:     intFilter(c, "bedrooms"),
		Neighborhood: stringFilter(c, "neighborhood"),
		IsWaterfront: boolFilter(c, "isWaterfront"),
	}

	c.JSON(http.StatusOK, h.store.GetProperties(filter))
}

func (h *Handler) GetFeaturedProperties(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetFeaturedProperties())
}

func (h *Handler) GetProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	property, ok := h.store.GetProperty(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *Handler) GetBlogPosts(c *gin.Context) {
	category := c.Query("category")
	if category == "all" {
		category = ""
	}

	c.JSON(http.StatusOK, h.store.GetBlogPosts(category))
}

func (h *Handler) GetBlogPost(c *gin.Context) {
	post, ok := h.store.GetBlogPost(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) GetNeighborhoods(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetNeighborhoods())
}

func (h *Handler) GetNeighborhood(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Neighborhood not found"})
		return
	}

	neighborhood, ok := h.store.GetNeighborhood(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Neighborhood not found"})
		return
	}

	c.JSON(http.StatusOK, neighborhood)
}

// CreateLead builds the handler for one lead-capture form. Source and type
// identify the form; the client cannot set them.
func (h *Handler) CreateLead(leadSource, leadType string, newsletter bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.LeadInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		validation.NormalizeLead(&input)
		var fieldErrors []validation.FieldError
		if newsletter {
			fieldErrors = validation.ValidateNewsletter(&input)
		} else {
			fieldErrors = validation.ValidateLead(&input)
		}
		if len(fieldErrors) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Validation failed",
				"errors":  fieldErrors,
			})
			return
		}

		input.LeadSource = leadSource
		input.LeadType = leadType
		lead := h.store.CreateLead(input)

		// Notification fan-out is advisory; a full queue never fails the request.
		if h.leads != nil {
			if err := h.leads.Push(lead); err != nil {
				h.logger.WithError(err).WithField("lead_id", lead.ID).Warn("Failed to enqueue lead notification")
			}
		}

		c.JSON(http.StatusCreated, lead)
	}
}

func (h *Handler) GetReviews(c *gin.Context) {
	c.JSON(http.StatusOK, h.reviews.Fetch(c.Request.Context()))
}

// Admin endpoints. The API-key middleware runs before all of these.

func (h *Handler) ListBlogPosts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetBlogPosts(""))
}

func (h *Handler) ListLeads(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetLeads())
}

func (h *Handler) blogPostURL(slug string) string {
	return h.cfg.SiteURL + "/blog/" + slug
}

func (h *Handler) CreateBlogPost(c *gin.Context) {
	var input models.BlogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	validation.NormalizeBlogPost(&input)
	if fieldErrors := validation.ValidateBlogPost(&input); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  fieldErrors,
		})
		return
	}

	post, err := h.store.CreateBlogPost(input)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateSlug) {
			c.JSON(http.StatusConflict, gin.H{"error": "A post with this slug already exists"})
			return
		}
		h.logger.WithError(err).Error("Failed to create blog post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"post": post,
		"url":  h.blogPostURL(post.Slug),
	})
}

func (h *Handler) UpdateBlogPost(c *gin.Context) {
	var update models.BlogPostUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if fieldErrors := validation.ValidateBlogPostUpdate(&update); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  fieldErrors,
		})
		return
	}

	post, ok := h.store.UpdateBlogPost(c.Param("slug"), update)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post": post,
		"url":  h.blogPostURL(post.Slug),
	})
}

func (h *Handler) DeleteBlogPost(c *gin.Context) {
	if !h.store.DeleteBlogPost(c.Param("slug")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
