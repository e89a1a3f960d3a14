package appwritefake

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"snapgram/internal/domain/gateway"
	"snapgram/internal/infra/appwrite"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDKey = "request_id"

// requestID takes the caller's request id or generates one and echoes it back.
func (s *Server) requestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get(appwrite.HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(requestIDKey, id)
		c.Response().Header().Set(appwrite.HeaderRequestID, id)

		return next(c)
	}
}

// logRequests writes one line per request at a level chosen by the status.
func (s *Server) logRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		req := c.Request()
		status := statusOf(err, c.Response().Status)
		fields := []slog.Attr{
			slog.String("request_id", requestIDOf(c)),
			slog.String("method", req.Method),
			slog.String("uri", req.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
		}
		if len(req.URL.RawQuery) > 0 {
			fields = append(fields, slog.String("query", req.URL.RawQuery))
		}
		if err != nil {
			fields = append(fields, slog.Any("error", err))
		}

		level := slog.LevelDebug
		if status >= http.StatusBadRequest {
			level = slog.LevelWarn
		}
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		s.logger.LogAttrs(context.Background(), level, "Fake backend request", fields...)

		return err
	}
}

func requestIDOf(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)

	return id
}

// statusOf is the status handleError will write for err.
func statusOf(err error, written int) int {
	if err == nil {
		return written
	}

	var remoteErr *gateway.RemoteError
	if errors.As(err, &remoteErr) {
		if remoteErr.Code == 0 {
			return http.StatusServiceUnavailable
		}

		return remoteErr.Code
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
