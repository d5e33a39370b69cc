package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// JsonOK returns the payload as-is (list endpoints return bare arrays,
// detail endpoints return the entity/DTO graph).
func JsonOK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonCreated returns 201 with the created entity.
func JsonCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// JsonNoContent returns an empty 204.
func JsonNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// JsonError returns the error envelope {"error": message}.
func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}

// ValidationError maps validator.v10 failures into one 400 envelope,
// listing the first offending field.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return JsonError(c, fiber.StatusBadRequest, "invalid input")
	}
	return JsonError(c, fiber.StatusBadRequest, "validation failed on field "+ve[0].Field())
}
