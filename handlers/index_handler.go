package handlers

import "github.com/gofiber/fiber/v2"

// Index serves the upload UI page.
func (h *ApplicationHandler) Index(c *fiber.Ctx) error {
	return c.SendFile("./static/index.html")
}
