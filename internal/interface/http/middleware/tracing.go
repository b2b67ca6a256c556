package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"

	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

const tracerName = "http"

// Tracing 每个请求一个Span,沿用上游traceparent
// 事务Span(store.Transaction)挂在该Span之下
func Tracing() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		name := c.FullPath()
		if name == "" {
			name = "unmatched"
		}
		ctx, span := tracing.StartSpan(ctx, tracerName, c.Request.Method+" "+name)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", name),
			attribute.Int("http.status_code", status),
		)
		var err error
		if status >= 500 {
			err = fmt.Errorf("http status %d", status)
		}
		tracing.EndSpan(span, err)
	}
}
