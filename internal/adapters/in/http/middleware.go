package http

import (
	"time"

	"photoflow/internal/observability"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// observe opens a server span for every request, counts it and writes one
// access log entry.
func (s *Server) observe() echo.MiddlewareFunc {
	propagator := observability.Propagator()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			start := time.Now()

			spanCtx := propagator.Extract(req.Context(), propagation.HeaderCarrier(req.Header))
			spanCtx, span := observability.Tracer().Start(spanCtx, req.Method+" "+ctx.Path(),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", req.Method),
					attribute.String("http.route", ctx.Path()),
				))
			ctx.SetRequest(req.WithContext(spanCtx))

			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			status := ctx.Response().Status
			elapsed := time.Since(start)
			span.SetAttributes(attribute.Int("http.response.status_code", status))
			observability.EndSpan(span, err)

			if s.metrics != nil {
				s.metrics.RecordHTTPRequest(req.Method, ctx.Path(), status, elapsed)
			}

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("route", ctx.Path()),
				zap.Int("status", status),
				zap.Duration("duration", elapsed),
				zap.String("request_id", ctx.Response().Header().Get(echo.HeaderXRequestID)),
			}
			if traceID := observability.TraceIDFromContext(spanCtx); traceID != "" {
				fields = append(fields, zap.String("trace_id", traceID))
			}
			s.logger.Info("request", fields...)

			return nil
		}
	}
}
