package handler

import (
	"errors"

	"github.com/gatewarden/auth-service/internal/auth/dto"
	"github.com/gatewarden/auth-service/internal/auth/service"
	autherror "github.com/gatewarden/auth-service/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type APIKeyHandler struct {
	apiKeyService *service.APIKeyService
}

func NewAPIKeyHandler(apiKeyService *service.APIKeyService) *APIKeyHandler {
	return &APIKeyHandler{apiKeyService: apiKeyService}
}

func (h *APIKeyHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateAPIKeyInput
	if err := c.BodyParser(&input); err != nil || input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	user := currentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	key, err := h.apiKeyService.Issue(c.Context(), user.ID, input.Name)
	if err != nil {
		return internalError(c, "issue api key", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      key.ID,
		"name":    key.Name,
		"api_key": key.APIKey,
		"warning": "store this key securely, it will not be shown again",
	})
}

func (h *APIKeyHandler) List(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	keys, err := h.apiKeyService.List(c.Context(), user.ID)
	if err != nil {
		return internalError(c, "list api keys", err)
	}

	return c.Status(fiber.StatusOK).JSON(keys)
}

func (h *APIKeyHandler) Revoke(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	if err := h.apiKeyService.Revoke(c.Context(), c.Params("id"), user.ID); err != nil {
		if errors.Is(err, autherror.ErrAPIKeyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "api key not found"})
		}
		return internalError(c, "revoke api key", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "api key revoked successfully",
	})
}
