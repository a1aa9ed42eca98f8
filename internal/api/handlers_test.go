package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bayshore/server/config"
	"bayshore/server/internal/models"
	"bayshore/server/internal/reviews"
	"bayshore/server/internal/storage"
)

const testAPIKey = "test-admin-key"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*gin.Engine, *storage.Store) {
	t.Helper()

	logger := logrus.New()
	cfg := &config.Config{
		Environment: "test",
		AdminAPIKey: testAPIKey,
		SiteURL:     "https://example.test",
	}
	store := storage.NewStore()
	handler := NewHandler(store, cfg, logger, nil, reviews.NewClient(logger, "", time.Second))
	router := gin.New()
	SetupRoutes(router, handler, cfg, logger)
	return router, store
}

func doJSON(router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "203.0.113.5:1000"
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestContactFormScenario(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(router, "POST", "/api/contact", gin.H{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@example.com",
		"phone":     "+17275550123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var lead models.Lead
	decode(t, w, &lead)
	assert.Equal(t, "contact_form", lead.LeadSource)
	assert.Equal(t, "general_inquiry", lead.LeadType)
	assert.False(t, lead.IsContactedBack)
	assert.Equal(t, "jane@example.com", lead.Email)
}

func TestLeadEndpointTags(t *testing.T) {
	cases := []struct {
		path   string
		source string
		typ    string
	}{
		{"/api/leads", "property_inquiry_form", "property_inquiry"},
		{"/api/consultation", "consultation_form", "consultation_request"},
		{"/api/valuation", "valuation_form", "home_valuation"},
	}
	for _, tc := range cases {
		router, _ := newTestServer(t)
		w := doJSON(router, "POST", tc.path, gin.H{
			"firstName": "Jane",
			"lastName":  "Doe",
			"email":     "jane@example.com",
			// Client-supplied tags must be ignored
			"leadSource": "spoofed",
		}, nil)
		require.Equal(t, http.StatusCreated, w.Code, "path %s", tc.path)

		var lead models.Lead
		decode(t, w, &lead)
		assert.Equal(t, tc.source, lead.LeadSource)
		assert.Equal(t, tc.typ, lead.LeadType)
	}
}

func TestLeadValidationFailure(t *testing.T) {
	router, store := newTestServer(t)

	w := doJSON(router, "POST", "/api/contact", gin.H{
		"firstName": "J4ne",
		"lastName":  "",
		"email":     "not-an-email",
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "Validation failed", resp.Message)

	fields := make([]string, len(resp.Errors))
	for i, e := range resp.Errors {
		fields[i] = e.Field
	}
	assert.ElementsMatch(t, []string{"firstName", "lastName", "email"}, fields)

	// Validation is strictly pre-commit
	assert.Empty(t, store.GetLeads())
}

func TestNewsletterEmailOnly(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(router, "POST", "/api/newsletter", gin.H{"email": "subscriber@example.com"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var lead models.Lead
	decode(t, w, &lead)
	assert.Equal(t, "newsletter_form", lead.LeadSource)
	assert.Equal(t, "newsletter_signup", lead.LeadType)
}

func TestGetProperties_QueryFilters(t *testing.T) {
	router, store := newTestServer(t)
	store.CreateProperty(models.PropertyInput{Title: "Condo A", Price: 400000, Bedrooms: 2, PropertyType: "Condo", Neighborhood: "Downtown"})
	store.CreateProperty(models.PropertyInput{Title: "House B", Price: 800000, Bedrooms: 4, PropertyType: "Single Family", Neighborhood: "Kenwood", IsWaterfront: true})

	var result []models.Property

	w := doJSON(router, "GET", "/api/properties?propertyType=Condo", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &result)
	require.Len(t, result, 1)
	assert.Equal(t, "Condo A", result[0].Title)

	// "all" means no constraint
	w = doJSON(router, "GET", "/api/properties?propertyType=all&bedrooms=all", nil, nil)
	decode(t, w, &result)
	assert.Len(t, result, 2)

	// Malformed numbers are tolerated as no constraint
	w = doJSON(router, "GET", "/api/properties?minPrice=abc&bedrooms=xyz", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &result)
	assert.Len(t, result, 2)

	w = doJSON(router, "GET", "/api/properties?minPrice=500000&isWaterfront=true", nil, nil)
	decode(t, w, &result)
	require.Len(t, result, 1)
	assert.Equal(t, "House B", result[0].Title)
}

func TestGetFeaturedProperties(t *testing.T) {
	router, store := newTestServer(t)
	store.CreateProperty(models.PropertyInput{Title: "Plain"})
	featured := store.CreateProperty(models.PropertyInput{Title: "Featured", IsFeatured: true})

	w := doJSON(router, "GET", "/api/properties/featured", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result []models.Property
	decode(t, w, &result)
	require.Len(t, result, 1)
	assert.Equal(t, featured.ID, result[0].ID)
}

func TestGetProperty(t *testing.T) {
	router, store := newTestServer(t)
	created := store.CreateProperty(models.PropertyInput{Title: "The One"})

	w := doJSON(router, "GET", "/api/properties/1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Property
	decode(t, w, &got)
	assert.Equal(t, created.ID, got.ID)

	w = doJSON(router, "GET", "/api/properties/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, "GET", "/api/properties/not-a-number", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBlogPost_NotFound(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(router, "GET", "/api/blog/does-not-exist", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRequiresAPIKey(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(router, "GET", "/api/admin/blog", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, "GET", "/api/admin/blog", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, "GET", "/api/admin/blog", nil, map[string]string{"Authorization": "Bearer " + testAPIKey})
	assert.Equal(t, http.StatusOK, w.Code)
}

func adminHeaders() map[string]string {
	return map[string]string{"X-API-Key": testAPIKey}
}

func TestAdminBlogLifecycle(t *testing.T) {
	router, _ := newTestServer(t)

	// Create without an explicit slug; it is derived from the title
	w := doJSON(router, "POST", "/api/admin/blog", gin.H{
		"title":    "Hello, World! 2024",
		"excerpt":  "An excerpt long enough to pass",
		"content":  "Content that is definitely longer than fifty characters in total length.",
		"category": "Market Reports",
	}, adminHeaders())
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Post models.BlogPost `json:"post"`
		URL  string          `json:"url"`
	}
	decode(t, w, &created)
	assert.Equal(t, "hello-world-2024", created.Post.Slug)
	assert.Equal(t, "https://example.test/blog/hello-world-2024", created.URL)
	assert.Equal(t, storage.DefaultAuthor, created.Post.Author)

	// Duplicate slug is rejected
	w = doJSON(router, "POST", "/api/admin/blog", gin.H{
		"title":    "Hello, World! 2024",
		"excerpt":  "Another excerpt long enough",
		"content":  "More content that is definitely longer than fifty characters in length.",
		"category": "Market Reports",
	}, adminHeaders())
	assert.Equal(t, http.StatusConflict, w.Code)

	// Update changes the title but never identity or PublishedAt
	w = doJSON(router, "PUT", "/api/admin/blog/hello-world-2024", gin.H{
		"title": "A Renamed Blog Post",
	}, adminHeaders())
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		Post models.BlogPost `json:"post"`
	}
	decode(t, w, &updated)
	assert.Equal(t, created.Post.ID, updated.Post.ID)
	assert.Equal(t, "A Renamed Blog Post", updated.Post.Title)
	assert.Equal(t, "hello-world-2024", updated.Post.Slug)
	assert.True(t, created.Post.PublishedAt.Equal(updated.Post.PublishedAt))

	// Public read sees the update
	w = doJSON(router, "GET", "/api/blog/hello-world-2024", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Delete, then the slug is gone
	w = doJSON(router, "DELETE", "/api/admin/blog/hello-world-2024", nil, adminHeaders())
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "DELETE", "/api/admin/blog/hello-world-2024", nil, adminHeaders())
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, "GET", "/api/blog/hello-world-2024", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminBlogCreateValidation(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(router, "POST", "/api/admin/blog", gin.H{
		"title":    "shrt",
		"excerpt":  "too short",
		"content":  "too short",
		"category": "",
	}, adminHeaders())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminListLeads(t *testing.T) {
	router, store := newTestServer(t)
	store.CreateLead(models.LeadInput{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", LeadSource: "contact_form", LeadType: "general_inquiry"})

	w := doJSON(router, "GET", "/api/admin/leads", nil, adminHeaders())
	require.Equal(t, http.StatusOK, w.Code)

	var leads []models.Lead
	decode(t, w, &leads)
	assert.Len(t, leads, 1)
}

func TestGetNeighborhoods(t *testing.T) {
	router, store := newTestServer(t)
	created := store.CreateNeighborhood(models.NeighborhoodInput{Name: "Old Northeast"})

	w := doJSON(router, "GET", "/api/neighborhoods", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []models.Neighborhood
	decode(t, w, &all)
	require.Len(t, all, 1)

	w = doJSON(router, "GET", "/api/neighborhoods/1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Neighborhood
	decode(t, w, &got)
	assert.Equal(t, created.ID, got.ID)

	w = doJSON(router, "GET", "/api/neighborhoods/99", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReviews_Fallback(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(router, "GET", "/api/reviews", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload reviews.Payload
	decode(t, w, &payload)
	assert.Equal(t, "fallback", payload.Source)
	assert.NotEmpty(t, payload.Reviews)
}
