package transfermarkt

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"FubolSync/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	path    string
	headers http.Header
}

type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (r *recorder) handler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		r.mu.Lock()
		r.requests = append(r.requests, recordedRequest{path: req.URL.Path, headers: req.Header.Clone()})
		r.mu.Unlock()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func newTestFetcher(minDelay, maxDelay time.Duration) (*Fetcher, *[]time.Duration) {
	f := NewFetcher(&config.ScraperConfig{
		MinDelay: minDelay,
		MaxDelay: maxDelay,
		Timeout:  5 * time.Second,
	}, logrus.New())
	slept := &[]time.Duration{}
	f.sleep = func(_ context.Context, d time.Duration) error {
		*slept = append(*slept, d)
		return nil
	}
	return f, slept
}

func TestFetcherSendsBrowserHeaders(t *testing.T) {
	rec := &recorder{}
	srv := httptest.NewServer(rec.handler(http.StatusOK, `<html><body><table class="items"></table></body></html>`))
	defer srv.Close()

	f, slept := newTestFetcher(5*time.Second, 60*time.Second)
	for i := 0; i < 5; i++ {
		doc, err := f.Fetch(context.Background(), srv.URL+"/page")
		require.NoError(t, err)
		require.Equal(t, 1, doc.Find("table.items").Length())
	}

	require.Len(t, rec.requests, 5)
	for _, req := range rec.requests {
		require.Equal(t, "/page", req.path)
		require.Contains(t, config.DefaultUserAgents, req.headers.Get("User-Agent"))
		require.Equal(t, baseHeaders["Accept"], req.headers.Get("Accept"))
		require.Equal(t, "en-US,en;q=0.9", req.headers.Get("Accept-Language"))
		require.Equal(t, "no-cache", req.headers.Get("Cache-Control"))
		require.Equal(t, "no-cache", req.headers.Get("Pragma"))
		require.Equal(t, "1", req.headers.Get("DNT"))
		require.Equal(t, "1", req.headers.Get("Upgrade-Insecure-Requests"))
	}

	require.Len(t, *slept, 5)
	for _, d := range *slept {
		require.GreaterOrEqual(t, d, 5*time.Second)
		require.LessOrEqual(t, d, 60*time.Second)
	}
}

func TestFetcherFailsOnNonSuccessStatus(t *testing.T) {
	rec := &recorder{}
	srv := httptest.NewServer(rec.handler(http.StatusForbidden, "blocked"))
	defer srv.Close()

	f, _ := newTestFetcher(0, 0)
	doc, err := f.Fetch(context.Background(), srv.URL+"/blocked")
	require.Nil(t, doc)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	// 不重试
	require.Len(t, rec.requests, 1)
}

func TestFetcherTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	f, _ := newTestFetcher(0, 0)
	_, err := f.Fetch(context.Background(), url)
	require.Error(t, err)
}

func TestFetcherDelayAbortsOnCancelledContext(t *testing.T) {
	rec := &recorder{}
	srv := httptest.NewServer(rec.handler(http.StatusOK, "<html></html>"))
	defer srv.Close()

	f := NewFetcher(&config.ScraperConfig{MinDelay: time.Minute, MaxDelay: time.Minute, Timeout: time.Second}, logrus.New())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Fetch(ctx, srv.URL)
	require.Error(t, err)
	require.Empty(t, rec.requests)
}

func TestNextDelayBounds(t *testing.T) {
	f := &Fetcher{minDelay: 2 * time.Second, maxDelay: 3 * time.Second}
	for i := 0; i < 100; i++ {
		d := f.nextDelay()
		require.GreaterOrEqual(t, d, 2*time.Second)
		require.LessOrEqual(t, d, 3*time.Second)
	}

	fixed := &Fetcher{minDelay: time.Second, maxDelay: time.Second}
	require.Equal(t, time.Second, fixed.nextDelay())
}
