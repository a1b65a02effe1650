package handler

import (
	"errors"
	"strings"

	"github.com/gatewarden/auth-service/internal/auth/domain"
	"github.com/gatewarden/auth-service/internal/auth/service"
	autherror "github.com/gatewarden/auth-service/internal/errors"
	"github.com/gatewarden/auth-service/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

const userLocalsKey = "user"

// HeaderAPIKey is the dedicated API key header; keys also work in the
// bearer slot, told apart from JWTs by their marker prefix.
const HeaderAPIKey = "X-API-Key"

// IPGate rejects requests from blocked origins before anything else runs.
// It is the cheapest check, so it goes first.
func IPGate(ipService *service.IPBlacklistService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		blocked, err := ipService.IsBlocked(c.Context(), clientIP(c))
		if err != nil {
			return internalError(c, "ip gate", err)
		}
		if blocked {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "access denied",
			})
		}

		return c.Next()
	}
}

// RequireAuth authenticates the request by whichever credential is present:
// an API key (X-API-Key header, or a marker-prefixed value in the bearer
// slot) or a bearer access token. The verified user lands in c.Locals.
func RequireAuth(userService *service.UserService, apiKeyService *service.APIKeyService, apiKeyMarker string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rawKey := extractAPIKey(c, apiKeyMarker); rawKey != "" {
			user, err := apiKeyService.Verify(c.Context(), rawKey)
			if err != nil {
				return internalError(c, "api key verify", err)
			}
			if user == nil {
				return unauthorized(c)
			}

			c.Locals(userLocalsKey, user)
			return c.Next()
		}

		token := bearerToken(c)
		if token == "" {
			return unauthorized(c)
		}

		user, err := userService.Authenticate(c.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, autherror.ErrTokenRevoked),
				errors.Is(err, autherror.ErrInvalidCredentials),
				errors.Is(err, autherror.ErrAccountInactive),
				errors.Is(err, autherror.ErrAccountLocked):
				return unauthorized(c)
			}
			return internalError(c, "authenticate", err)
		}

		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// routePolicy is the static role table: route identifier → roles allowed.
// Routes absent from the table only require authentication.
var routePolicy = map[string][]string{
	"ip-blacklist": {constant.RoleAdmin, constant.RoleSuperAdmin},
}

// RequireRole enforces the policy table entry for routeID.
func RequireRole(routeID string) fiber.Handler {
	allowed := routePolicy[routeID]

	return func(c *fiber.Ctx) error {
		user := currentUser(c)
		if user == nil {
			return unauthorized(c)
		}

		for _, role := range allowed {
			if user.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "insufficient permissions",
		})
	}
}

func currentUser(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals(userLocalsKey).(*domain.User)
	return user
}

func extractAPIKey(c *fiber.Ctx, marker string) string {
	if key := strings.TrimSpace(c.Get(HeaderAPIKey)); key != "" {
		return key
	}
	if token := bearerToken(c); strings.HasPrefix(token, marker) {
		return token
	}
	return ""
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "unauthorized",
	})
}
