package middleware

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/gym-membership/internal/errs"
)

// RequireIntParam makes a route match only when the named path parameter is
// a non-negative decimal integer that fits in an int64. Anything else is
// answered as an unknown route.
func RequireIntParam(name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			value := c.Param(name)
			if _, err := strconv.ParseUint(value, 10, 63); err != nil {
				return errs.NewNotFoundError(fmt.Errorf("path parameter %s=%q is not an id: %w", name, value, err))
			}
			return next(c)
		}
	}
}
