package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

type RequestObserver interface {
	ObserveRequest(route, method string, status int, elapsed time.Duration)
}

func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		observer.ObserveRequest(ctx.FullPath(), ctx.Request.Method, ctx.Writer.Status(), time.Since(start))
	}
}
