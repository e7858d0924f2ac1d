package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const welcomeMessage = "Welcome to the Martial Arts Gym Membership System!"

// Home answers the root path with a plain-text greeting.
func Home(c echo.Context) error {
	return c.String(http.StatusOK, welcomeMessage)
}
