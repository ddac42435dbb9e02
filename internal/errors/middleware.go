package errors

import (
	"errors"

	"github.com/aryadee/smart-bank/internal/constants"
	"github.com/aryadee/smart-bank/internal/service"
	"github.com/gofiber/fiber/v2"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"code":    constants.ErrCodeInternalError,
				"message": fiberErr.Message,
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   constants.ErrMsgInternalError,
			"message": "Could not process the request",
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	return c.Status(constants.GetHTTPStatus(err.Code)).JSON(fiber.Map{
		"code":    err.Code,
		"message": constants.GetErrorMessage(err.Code),
	})
}
