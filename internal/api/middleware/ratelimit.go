package middleware

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/projeto-evento/evento-api/internal/api/handler/v1/response"
	"github.com/projeto-evento/evento-api/internal/pkg/ratelimit"
)

type Limiter interface {
	Allow(ctx context.Context, scope, subject string) (ratelimit.Decision, error)
}

// RateLimit counts requests per client IP within scope. A limiter failure lets the request through.
func RateLimit(limiter Limiter, scope string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if limiter == nil {
			ctx.Next()
			return
		}

		decision, err := limiter.Allow(ctx.Request.Context(), scope, ctx.ClientIP())
		if err != nil {
			zap.L().Warn("rate limiter unavailable", zap.String("scope", scope), zap.Error(err))
			ctx.Next()
			return
		}

		if !decision.Allowed {
			seconds := int(decision.RetryAfter.Seconds())
			ctx.Header("Retry-After", strconv.Itoa(seconds))
			response.RenderErr(ctx, response.ErrTooManyRequests(seconds))
			return
		}

		ctx.Next()
	}
}
