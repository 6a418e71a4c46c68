package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"

	ctxRequestIDKey = "request_id"
)

type AccessLogMiddleware struct {
	logger    *log.Logger
	skipPaths map[string]struct{}
}

func NewAccessLogMiddleware(logger *log.Logger, skipPaths ...string) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}
	return &AccessLogMiddleware{logger: logger, skipPaths: skip}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)
		c.Locals(ctxRequestIDKey, rid)

		err := c.Next()

		if _, skip := m.skipPaths[c.Path()]; skip {
			return err
		}

		// the error middleware sits inside this one, so the status is final
		m.logger.Printf(
			"HTTP access | rid=%s ip=%s method=%s path=%s status=%d latency=%s resp_bytes=%d ua=%q",
			rid, c.IP(), c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start),
			len(c.Response().Body()), c.Get("User-Agent"),
		)
		return err
	}
}

// RequestID returns the id assigned by AccessLogMiddleware, if any.
func RequestID(c fiber.Ctx) string {
	rid, _ := c.Locals(ctxRequestIDKey).(string)
	return rid
}
