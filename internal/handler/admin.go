package handler

import (
	"tour-booking-service/internal/middleware"

	"github.com/labstack/echo/v4"
)

// adminSubject is the token subject AdminAuth stored on the context.
func adminSubject(c echo.Context) string {
	subject, _ := c.Get(middleware.ContextSubject).(string)
	return subject
}
