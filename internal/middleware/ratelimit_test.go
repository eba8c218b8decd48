package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLimiter(t *testing.T, limit int) (*RedisLimiter, *miniredis.Miniredis, *time.Time) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	l := NewRedisLimiter(rdb, limit, time.Hour, "test")
	l.now = func() time.Time { return now }
	return l, mr, &now
}

func TestRedisLimiter_SlidingWindow(t *testing.T) {
	l, _, now := newRedisLimiter(t, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d", i+1)
		*now = now.Add(10 * time.Minute)
	}

	ok, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Another client has its own budget.
	ok, err = l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok)

	// The first attempt leaves the window one hour after it was made.
	*now = now.Add(30 * time.Minute)
	ok, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisLimiter_DeniedAttemptsDoNotCount(t *testing.T) {
	l, mr, _ := newRedisLimiter(t, 1)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := l.Allow(ctx, "k")
		require.NoError(t, err)
	}

	members, err := mr.ZMembers("test:k")
	require.NoError(t, err)
	assert.Len(t, members, 1)
	assert.True(t, mr.TTL("test:k") > 0)
}

func TestMemoryLimiter(t *testing.T) {
	l := NewMemoryLimiter(2, time.Hour)
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "a")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "a")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "a")
	assert.False(t, ok)

	now = now.Add(time.Hour + time.Second)
	ok, _ = l.Allow(ctx, "a")
	assert.True(t, ok)
}

func TestMemoryLimiter_ForgetsIdleClients(t *testing.T) {
	l := NewMemoryLimiter(3, time.Hour)
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		_, _ = l.Allow(ctx, "10.0.0."+strconv.Itoa(i))
	}
	assert.Equal(t, 50, l.Len())

	now = now.Add(time.Hour + time.Minute)
	ok, _ := l.Allow(ctx, "192.168.1.10")
	assert.True(t, ok)
	assert.Equal(t, 1, l.Len())
}

func rateLimitedRouter(l Limiter, trusted ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if err := r.SetTrustedProxies(trusted); err != nil {
		panic(err)
	}
	r.POST("/api/bookings", RateLimit(l, time.Hour, zerolog.Nop()), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func TestRateLimit_Middleware(t *testing.T) {
	l, _, _ := newRedisLimiter(t, 3)
	r := rateLimitedRouter(l)

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.RemoteAddr = "192.168.1.10:5555"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)

		if w.Code == http.StatusTooManyRequests {
			assert.Equal(t, "3600", w.Header().Get("Retry-After"))
			assert.Contains(t, w.Body.String(), `"error_code":"rate_limited"`)
		}
	}

	assert.Equal(t, []int{201, 201, 201, 429}, codes)
}

func forwardedCodes(r *gin.Engine, n int) []int {
	codes := make([]int, 0, n)
	for i := 0; i < n; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.RemoteAddr = "192.168.1.10:5555"
		req.Header.Set("X-Forwarded-For", "10.0.0."+strconv.Itoa(i+1))
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	return codes
}

func TestRateLimit_ForwardedForFromUntrustedPeer(t *testing.T) {
	l := NewMemoryLimiter(3, time.Hour)
	r := rateLimitedRouter(l)

	assert.Equal(t, []int{201, 201, 201, 429}, forwardedCodes(r, 4))
	assert.Equal(t, 1, l.Len())
}

func TestRateLimit_ForwardedForFromTrustedProxy(t *testing.T) {
	l := NewMemoryLimiter(3, time.Hour)
	r := rateLimitedRouter(l, "192.168.1.10")

	assert.Equal(t, []int{201, 201, 201, 201}, forwardedCodes(r, 4))
	assert.Equal(t, 4, l.Len())
}

func TestRateLimit_FailsOpen(t *testing.T) {
	l, mr, _ := newRedisLimiter(t, 1)
	mr.Close()

	r := rateLimitedRouter(l)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/bookings", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
}
