package router

import (
	"github.com/labstack/echo/v4"

	"vendora/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, rateLimiter *middleware.RateLimiter) {
	SetupOrderRouter(e, authMiddleware, rateLimiter)
	SetupInventoryRouter(e, authMiddleware, adminMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
