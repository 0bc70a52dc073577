package middleware

import (
	"time"

	"github.com/Vinicius-Leon/leons-cupcake/internal/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const CtxRequestIDKey = "request_id"

// アクセスログ。request_idを割り振ってX-Request-IDでも返す。
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get("X-Request-ID")
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Set(CtxRequestIDKey, reqID)
			c.Response().Header().Set("X-Request-ID", reqID)

			inicio := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.L().Info("request",
				zap.String("request_id", reqID),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(inicio)),
			)
			return nil
		}
	}
}
