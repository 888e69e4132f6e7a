package middleware

import (
	"errors"
	"net/http"

	"myLaptopHub/pkg/logger"
	jsonres "myLaptopHub/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the central echo error handler for errors that escape
// the handlers, mostly routing and binding failures.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("unhandled request error", err)
	}

	if jsonErr := c.JSON(code, jsonres.Error(http.StatusText(code), message, nil)); jsonErr != nil {
		logger.Error("failed to write error response", jsonErr)
	}
}
