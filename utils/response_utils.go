package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Shahnasha/audio-summarizer/models"
)

// RespondWithError sends the standard JSON error body. Every non-200
// response from this service uses this shape.
func RespondWithError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(models.ErrorResponse{Error: message})
}

// RespondWithJSON sends a JSON success response.
func RespondWithJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(data)
}
