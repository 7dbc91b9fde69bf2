package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownUserAgent  = "unknown"
)

// window counts requests per client in a fixed Redis window. The count is
// saved with the window TTL on every request, so an active client keeps
// extending its own window.
type window struct {
	cache       cache.RedisCache
	maxRequests int
	seconds     int
}

// hit records one request and returns the count including it.
func (w window) hit(ctx context.Context, key string) (int, error) {
	var count int

	err := w.cache.Get(ctx, key, &count)
	if err != nil && !errors.Is(err, cache.Nil) {
		return 0, err
	}

	count++

	if err := w.cache.Save(ctx, key, count, w.seconds); err != nil {
		return 0, err
	}

	return count, nil
}

func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	settings := a.config.App.RateLimiter
	limit := window{cache: a.cache, maxRequests: settings.MaxRequests, seconds: settings.WindowSeconds}

	return func(next http.Handler) http.Handler {
		if !settings.Enable {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r))

			count, err := limit.hit(r.Context(), key)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable, letting request through")
				next.ServeHTTP(w, r)

				return
			}

			window := strconv.Itoa(limit.seconds)

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limit.maxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limit.maxRequests-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, window)

			if count > limit.maxRequests {
				w.Header().Set(constant.RequestHeaderRetryAfter, window)
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return unknownUserAgent
}

// getClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the peer address.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
