package middlewares

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// 限流表的上限，超过后整体重建，避免被伪造来源撑爆内存
const maxTrackedIPs = 10000

// RateLimit 针对来源 IP 限流，挂在公开的写入接口上（订阅、退订、下单）。
func RateLimit(rps float64, burst int) echo.MiddlewareFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	get := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		if lim, ok := limiters[ip]; ok {
			return lim
		}

		if len(limiters) >= maxTrackedIPs {
			limiters = make(map[string]*rate.Limiter)
		}

		lim := rate.NewLimiter(rate.Limit(rps), burst)
		limiters[ip] = lim
		return lim
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !get(c.RealIP()).Allow() {
				return c.NoContent(http.StatusTooManyRequests)
			}

			return next(c)
		}
	}
}
