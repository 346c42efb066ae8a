package helpers

import (
	"math"

	"github.com/gofiber/fiber/v2"
)

// JSONError writes the uniform error body {"error": "..."}. Every failed
// request goes through here so clients only ever see this shape.
func JSONError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// ValidationError is JSONError plus the list of offending fields.
func ValidationError(c *fiber.Ctx, message string, fields []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  message,
		"fields": fields,
	})
}

func FormatFloat(num float64, precision int) float64 {
	pow := math.Pow(10, float64(precision))
	return math.Round(num*pow) / pow
}
