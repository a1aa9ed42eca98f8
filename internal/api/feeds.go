package api

import (
	"encoding/xml"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bayshore/server/internal/models"
	"bayshore/server/internal/validation"
)

// Derived read-only documents. Each one is recomputed from current store
// contents at request time; there is no caching or staleness window.

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Category    string `xml:"category,omitempty"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

func (h *Handler) writeXML(c *gin.Context, v interface{}) {
	out, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		h.logger.WithError(err).Error("Failed to marshal XML document")
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
}

func (h *Handler) Robots(c *gin.Context) {
	body := "User-agent: *\n" +
		"Allow: /\n" +
		"Disallow: /api/admin/\n\n" +
		"Sitemap: " + h.cfg.SiteURL + "/sitemap.xml\n"
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

func (h *Handler) Sitemap(c *gin.Context) {
	urls := []sitemapURL{
		{Loc: h.cfg.SiteURL + "/", ChangeFreq: "daily", Priority: "1.0"},
		{Loc: h.cfg.SiteURL + "/properties", ChangeFreq: "daily", Priority: "0.9"},
		{Loc: h.cfg.SiteURL + "/neighborhoods", ChangeFreq: "weekly", Priority: "0.7"},
		{Loc: h.cfg.SiteURL + "/blog", ChangeFreq: "daily", Priority: "0.8"},
	}

	for _, p := range h.store.GetProperties(models.PropertyFilter{}) {
		urls = append(urls, sitemapURL{
			Loc:        h.cfg.SiteURL + "/properties/" + strconv.FormatInt(p.ID, 10),
			LastMod:    p.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}
	for _, post := range h.store.GetBlogPosts("") {
		urls = append(urls, sitemapURL{
			Loc:        h.cfg.SiteURL + "/blog/" + post.Slug,
			LastMod:    post.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   "0.6",
		})
	}
	for _, n := range h.store.GetNeighborhoods() {
		urls = append(urls, sitemapURL{
			Loc:        h.cfg.SiteURL + "/local-seo/" + validation.Slugify(n.Name),
			ChangeFreq: "monthly",
			Priority:   "0.5",
		})
	}

	h.writeXML(c, sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	})
}

func (h *Handler) RSS(c *gin.Context) {
	posts := h.store.GetBlogPosts("")
	items := make([]rssItem, 0, len(posts))
	for _, post := range posts {
		items = append(items, rssItem{
			Title:       post.Title,
			Link:        h.blogPostURL(post.Slug),
			Description: post.Excerpt,
			Category:    post.Category,
			PubDate:     post.PublishedAt.Format(time.RFC1123Z),
			GUID:        h.blogPostURL(post.Slug),
		})
	}

	h.writeXML(c, rssFeed{
		Version: "2.0",
		Channel: rssChannel{
			Title:       "Bayshore Realty Group Blog",
			Link:        h.cfg.SiteURL + "/blog",
			Description: "Market reports, buying and selling guides for the Tampa Bay area",
			Items:       items,
		},
	})
}

func (h *Handler) BusinessProfile(c *gin.Context) {
	neighborhoods := h.store.GetNeighborhoods()
	areas := make([]string, 0, len(neighborhoods))
	for _, n := range neighborhoods {
		areas = append(areas, n.Name)
	}

	c.JSON(http.StatusOK, gin.H{
		"@context":  "https://schema.org",
		"@type":     "RealEstateAgent",
		"name":      "Bayshore Realty Group",
		"url":       h.cfg.SiteURL,
		"telephone": "+17275550142",
		"address": gin.H{
			"@type":           "PostalAddress",
			"streetAddress":   "400 Beach Dr NE Suite 200",
			"addressLocality": "St. Petersburg",
			"addressRegion":   "FL",
			"postalCode":      "33701",
			"addressCountry":  "US",
		},
		"areaServed":     areas,
		"activeListings": len(h.store.GetProperties(models.PropertyFilter{})),
	})
}

// LocalSEO serves the per-neighborhood landing document: the neighborhood
// record plus its current listings, addressed by slugified name.
func (h *Handler) LocalSEO(c *gin.Context) {
	slug := c.Param("neighborhood")

	for _, n := range h.store.GetNeighborhoods() {
		if validation.Slugify(n.Name) != slug {
			continue
		}
		name := n.Name
		listings := h.store.GetProperties(models.PropertyFilter{Neighborhood: &name})
		c.JSON(http.StatusOK, gin.H{
			"neighborhood": n,
			"listings":     listings,
			"canonicalUrl": h.cfg.SiteURL + "/local-seo/" + slug,
		})
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Neighborhood not found"})
}
