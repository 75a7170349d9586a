package ratelimiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 2)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("1.1.1.1"))
	assert.False(t, rl.Allow("1.1.1.1"), "burst exhausted")

	// other keys have their own bucket
	assert.True(t, rl.Allow("2.2.2.2"))

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("1.1.1.1"), "refilled after one second")
}

func TestRateLimiter_EvictsIdleKeys(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return now }

	rl.Allow("a")
	now = now.Add(11 * time.Minute)
	rl.Allow("b")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "a")
	assert.Contains(t, rl.visitors, "b")
}

// 掃除は idleTTL 間隔でのみ走るため、期限切れのキーも次の掃除までは残る
func TestRateLimiter_SweepsAtMostOncePerInterval(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := t0
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return now }

	steps := []struct {
		name       string
		at         time.Duration
		key        string
		wantA      bool
		wantLastAt time.Duration
	}{
		{name: "first request sweeps", at: 0, key: "a", wantA: true, wantLastAt: 0},
		{name: "a not yet idle long enough", at: 10 * time.Minute, key: "b", wantA: true, wantLastAt: 10 * time.Minute},
		{name: "a idle but sweep not due", at: 15 * time.Minute, key: "c", wantA: true, wantLastAt: 10 * time.Minute},
		{name: "next sweep evicts a", at: 20 * time.Minute, key: "c", wantA: false, wantLastAt: 20 * time.Minute},
	}
	for _, st := range steps {
		now = t0.Add(st.at)
		rl.Allow(st.key)

		rl.mu.Lock()
		_, hasA := rl.visitors["a"]
		lastSweep := rl.lastSweep
		rl.mu.Unlock()

		assert.Equal(t, st.wantA, hasA, st.name)
		assert.Equal(t, t0.Add(st.wantLastAt), lastSweep, st.name)
	}
}

type stubLimiter struct{ allow bool }

func (s stubLimiter) Allow(string) bool { return s.allow }

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		allow      bool
		wantStatus int
	}{
		{name: "allowed", allow: true, wantStatus: http.StatusOK},
		{name: "limited", allow: false, wantStatus: http.StatusTooManyRequests},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(Middleware(stubLimiter{allow: tt.allow}))
			r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestPerMinute(t *testing.T) {
	assert.InDelta(t, 10.0/60.0, float64(PerMinute(10)), 1e-9)
}
