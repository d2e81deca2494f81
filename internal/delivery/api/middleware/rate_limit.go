package middleware

import (
	"math"
	"strconv"
	"time"

	"lastseen/internal/delivery/api/response"
	domainerrors "lastseen/internal/domain/errors"
	"lastseen/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// limiterIdleExpiry drops the bucket of a client that has been quiet this long.
const limiterIdleExpiry = 3 * time.Minute

// NewShareRateLimiter limits public share lookups per client IP.
// A non-positive perMinute disables the limit.
func NewShareRateLimiter(perMinute int, recorder metrics.Recorder) echo.MiddlewareFunc {
	if perMinute <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	limit := rate.Limit(float64(perMinute) / 60)
	retryAfter := strconv.Itoa(int(math.Ceil(60 / float64(perMinute))))

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     perMinute,
		ExpiresIn: limiterIdleExpiry,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return response.HandleAppError(c, domainerrors.ErrTooManyRequests)
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			recorder.RecordShareResolve(metrics.OutcomeLimited)
			c.Response().Header().Set("Retry-After", retryAfter)

			return response.HandleAppError(c, domainerrors.ErrTooManyRequests)
		},
	})
}
