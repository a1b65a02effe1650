package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Auth        *AuthHandler
	APIKey      *APIKeyHandler
	IPBlacklist *IPBlacklistHandler
}

type MiddlewareConfig struct {
	IPGate             fiber.Handler
	RequireAuth        fiber.Handler
	LoginRateLimit     int
	LoginRateWindowSec int
}

// RegisterRoutes mounts the whole surface behind the fixed evaluation
// order: IP gate, then rate limiting (login only), then credential
// verification, then role checks.
func RegisterRoutes(app *fiber.App, h Handlers, mw MiddlewareConfig) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1", mw.IPGate)

	loginLimiter := limiter.New(limiter.Config{
		Max:        mw.LoginRateLimit,
		Expiration: time.Duration(mw.LoginRateWindowSec) * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return clientIP(c)
		},
	})

	auth := api.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", loginLimiter, h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	auth.Post("/logout", mw.RequireAuth, h.Auth.Logout)

	apiKeys := api.Group("/api-keys", mw.RequireAuth)
	apiKeys.Post("/", h.APIKey.Create)
	apiKeys.Get("/", h.APIKey.List)
	apiKeys.Delete("/:id", h.APIKey.Revoke)

	ipBlacklist := api.Group("/ip-blacklist", mw.RequireAuth, RequireRole("ip-blacklist"))
	ipBlacklist.Post("/", h.IPBlacklist.Block)
	ipBlacklist.Delete("/:ip", h.IPBlacklist.Unblock)
}
