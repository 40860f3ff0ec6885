package serverutils

import (
	"errors"

	"teaching-assistant-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts service errors into the response
// envelope. Unknown errors become a generic 500: internal failure
// details never reach the caller.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		switch {
		case errors.Is(err, apperror.ErrSessionNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(FailureResponse("Session not found"))
		case errors.Is(err, apperror.ErrProcessingFailed):
			return ctx.Status(fiber.StatusInternalServerError).JSON(FailureResponse("Failed to process request"))
		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusBadRequest).JSON(FailureResponse(validationErr.Error()))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(FailureResponse(fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(FailureResponse("Error processing request"))
	}
}
