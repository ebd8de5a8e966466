package middleware

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/serroba/linx/internal/handlers"
	"github.com/serroba/linx/internal/metrics"
	"go.uber.org/zap"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

// RequestMeta is a middleware that tags each request with a request id and
// the client IP, then logs and measures it once the handler returns.
func RequestMeta(logger *zap.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		requestID := ctx.Header(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.SetHeader(HeaderRequestID, requestID)

		meta := handlers.RequestMeta{
			RequestID: requestID,
			ClientIP:  extractClientIP(ctx),
		}

		ctx = huma.WithContext(ctx, handlers.ContextWithRequestMeta(ctx.Context(), meta))

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		next(ctx)

		status := ctx.Status()
		if status == 0 {
			status = 200
		}

		operationID := ""
		if op := ctx.Operation(); op != nil {
			operationID = op.OperationID
		}

		duration := time.Since(start)

		metrics.HTTPRequestDuration.
			WithLabelValues(ctx.Method(), operationID, strconv.Itoa(status)).
			Observe(duration.Seconds())

		logger.Info("request",
			zap.String("requestId", requestID),
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.URL().Path),
			zap.String("operation", operationID),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("clientIp", meta.ClientIP),
		)
	}
}

func extractClientIP(ctx huma.Context) string {
	// Check X-Forwarded-For first (may contain multiple IPs)
	if xff := ctx.Header("X-Forwarded-For"); xff != "" {
		// Take the first IP (original client)
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := ctx.Header("X-Real-IP"); xri != "" {
		return xri
	}

	addr := ctx.RemoteAddr()

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}

	return host
}
