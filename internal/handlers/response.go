package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sekolahku/user-service/internal/dto"
)

func sendResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(dto.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func sendList(c *fiber.Ctx, message string, items interface{}, pagination *dto.Pagination) error {
	return c.Status(fiber.StatusOK).JSON(dto.Response{
		Success:    true,
		Message:    message,
		Data:       items,
		Pagination: pagination,
	})
}

func sendError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(dto.ErrorResponse{
		Success: false,
		Message: message,
	})
}
