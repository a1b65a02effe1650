package handler

import (
	"github.com/gatewarden/auth-service/internal/auth/dto"
	"github.com/gatewarden/auth-service/internal/auth/service"
	"github.com/gofiber/fiber/v2"
)

type IPBlacklistHandler struct {
	ipService *service.IPBlacklistService
}

func NewIPBlacklistHandler(ipService *service.IPBlacklistService) *IPBlacklistHandler {
	return &IPBlacklistHandler{ipService: ipService}
}

func (h *IPBlacklistHandler) Block(c *fiber.Ctx) error {
	var input dto.BlockIPInput
	if err := c.BodyParser(&input); err != nil || input.IPAddress == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ip_address is required"})
	}

	blocked, err := h.ipService.Block(c.Context(), input)
	if err != nil {
		return internalError(c, "block ip", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.BlockedIPOutput{
		IPAddress:   blocked.IPAddress,
		Reason:      blocked.Reason,
		IsPermanent: blocked.IsPermanent,
		ExpiresAt:   blocked.ExpiresAt,
		CreatedAt:   blocked.CreatedAt,
	})
}

func (h *IPBlacklistHandler) Unblock(c *fiber.Ctx) error {
	if err := h.ipService.Unblock(c.Context(), c.Params("ip")); err != nil {
		return internalError(c, "unblock ip", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "ip unblocked successfully",
	})
}
