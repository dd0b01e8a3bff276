package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sekolahku/user-service/internal/dto"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "OK",
		Service:   "user-service",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
