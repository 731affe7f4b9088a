package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(limiter *rateLimiter, hits *int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/analyze/plagiarism", limiter.handle, func(c *gin.Context) {
		atomic.AddInt64(hits, 1)
		c.Status(http.StatusOK)
	})
	router.POST("/analyze/summarize", limiter.handle, func(c *gin.Context) {
		atomic.AddInt64(hits, 1)
		c.Status(http.StatusOK)
	})
	return router
}

func doPost(router *gin.Engine, path, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_BlocksRepeatWithinWindow(t *testing.T) {
	current := time.Unix(1700000000, 0)
	limiter := &rateLimiter{
		window:        time.Second,
		last:          make(map[string]time.Time),
		sweepInterval: 10 * time.Second,
		now:           func() time.Time { return current },
	}
	var hits int64
	router := newLimitedRouter(limiter, &hits)

	rec := doPost(router, "/analyze/plagiarism", "10.0.0.1")
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 1, hits)

	rec = doPost(router, "/analyze/plagiarism", "10.0.0.1")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), http.StatusText(http.StatusTooManyRequests))
	require.EqualValues(t, 1, hits)

	current = current.Add(time.Second)
	rec = doPost(router, "/analyze/plagiarism", "10.0.0.1")
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 2, hits)
}

func TestRateLimit_KeyedByClientAndPath(t *testing.T) {
	current := time.Unix(1700000000, 0)
	limiter := &rateLimiter{
		window:        time.Second,
		last:          make(map[string]time.Time),
		sweepInterval: 10 * time.Second,
		now:           func() time.Time { return current },
	}
	var hits int64
	router := newLimitedRouter(limiter, &hits)

	doPost(router, "/analyze/plagiarism", "10.0.0.1")
	doPost(router, "/analyze/summarize", "10.0.0.1")
	doPost(router, "/analyze/plagiarism", "10.0.0.2")
	require.EqualValues(t, 3, hits)
}

func TestRateLimit_DisabledWindow(t *testing.T) {
	var hits int64
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/analyze/humanize", RateLimit(0), func(c *gin.Context) {
		atomic.AddInt64(&hits, 1)
		c.Status(http.StatusOK)
	})
	for i := 0; i < 3; i++ {
		doPost(router, "/analyze/humanize", "10.0.0.1")
	}
	require.EqualValues(t, 3, hits)
}

func TestRateLimit_SweepDropsExpiredEntries(t *testing.T) {
	current := time.Unix(1700000000, 0)
	limiter := &rateLimiter{
		window:        time.Second,
		last:          make(map[string]time.Time),
		sweepInterval: 5 * time.Second,
		now:           func() time.Time { return current },
	}
	var hits int64
	router := newLimitedRouter(limiter, &hits)

	doPost(router, "/analyze/plagiarism", "10.0.0.1")
	doPost(router, "/analyze/summarize", "10.0.0.1")
	require.Len(t, limiter.last, 2)

	current = current.Add(6 * time.Second)
	doPost(router, "/analyze/plagiarism", "10.0.0.2")
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	require.Len(t, limiter.last, 1)
}
