package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"vidtube/config"
	deliverycontext "vidtube/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const visitorTTL = 5 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware throttles callers per client IP with a token bucket.
type RateLimitMiddleware struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
	logger   *slog.Logger
}

// NewRateLimitMiddleware allows cfg.RateLimit.Requests per Window plus Burst.
func NewRateLimitMiddleware(cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	requests, window, burst := cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.RateLimit.Burst
	if requests <= 0 {
		requests = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	if burst <= 0 {
		burst = 1
	}

	return &RateLimitMiddleware{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    burst,
		now:      time.Now,
		logger:   logger,
	}
}

func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ip := c.RealIP()
		if !m.allow(ip) {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Rate limit exceeded", slog.String("remote_ip", ip), slog.String("path", c.Path()))

			return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, please try again later")
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) allow(key string) bool {
	if key == "" {
		key = "unknown"
	}
	now := m.now()

	m.mu.Lock()
	v, ok := m.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.visitors[key] = v
	}
	v.lastSeen = now
	for k, other := range m.visitors {
		if now.Sub(other.lastSeen) > visitorTTL {
			delete(m.visitors, k)
		}
	}
	m.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}
