package reviews

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_NoURLServesFallback(t *testing.T) {
	c := NewClient(logrus.New(), "", time.Second)

	payload := c.Fetch(context.Background())
	assert.Equal(t, "fallback", payload.Source)
	assert.NotEmpty(t, payload.Reviews)
	assert.Greater(t, payload.Rating, 0.0)
}

func TestFetch_LiveThenCached(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"rating":4.8,"count":12,"reviews":[{"author":"A. Tester","rating":5,"text":"Great service","date":"2025-08-01"}]}`))
	}))

	c := NewClient(logrus.New(), server.URL, time.Second)

	payload := c.Fetch(context.Background())
	require.Equal(t, "live", payload.Source)
	assert.Equal(t, 4.8, payload.Rating)
	require.Len(t, payload.Reviews, 1)
	assert.Equal(t, "A. Tester", payload.Reviews[0].Author)

	// Upstream goes away; the last good response is served as cached.
	server.Close()

	payload = c.Fetch(context.Background())
	assert.Equal(t, "cached", payload.Source)
	assert.Equal(t, 4.8, payload.Rating)
	require.Len(t, payload.Reviews, 1)
}

func TestFetch_ErrorWithoutCacheServesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(logrus.New(), server.URL, time.Second)

	payload := c.Fetch(context.Background())
	assert.Equal(t, "fallback", payload.Source)
	assert.NotEmpty(t, payload.Reviews)
}

func TestFetch_NonOKStatusDoesNotOverwriteCache(t *testing.T) {
	failing := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"rating":5,"count":1,"reviews":[]}`))
	}))
	defer server.Close()

	c := NewClient(logrus.New(), server.URL, time.Second)

	payload := c.Fetch(context.Background())
	require.Equal(t, "live", payload.Source)

	failing = true
	payload = c.Fetch(context.Background())
	assert.Equal(t, "cached", payload.Source)
	assert.Equal(t, 5.0, payload.Rating)
}
