package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/harshitsingh20/HRMS-Lite-Backend/pkg/apperr"
)

// errorResponse memetakan jenis kegagalan inti ke status HTTP.
func errorResponse(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		status := fiber.StatusInternalServerError
		switch appErr.Kind {
		case apperr.KindInvalidArgument:
			status = fiber.StatusBadRequest
		case apperr.KindNotFound:
			status = fiber.StatusNotFound
		case apperr.KindConflict:
			status = fiber.StatusConflict
		case apperr.KindStoreUnavailable:
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{"error": appErr.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
