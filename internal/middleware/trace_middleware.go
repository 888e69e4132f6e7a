package middleware

import (
	"context"

	"myLaptopHub/business/recommend"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Trace assigns every request a trace id and propagates it through the
// request context, so ranking logs can be tied back to a request.
func Trace() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(echo.HeaderXRequestID)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			ctx := context.WithValue(c.Request().Context(), recommend.TraceIDKey, traceID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(echo.HeaderXRequestID, traceID)

			return next(c)
		}
	}
}
