package helpers

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gofiber/fiber/v2"

	"trip-booking-service/internal/pkg/errors"
	"trip-booking-service/internal/pkg/log"
)

type successResponse struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func RespSuccess(ctx *fiber.Ctx, logger log.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(successResponse{
		Data:    data,
		Message: message,
	})
}

func RespCreated(ctx *fiber.Ctx, logger log.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusCreated).JSON(successResponse{
		Data:    data,
		Message: message,
	})
}

func RespError(ctx *fiber.Ctx, logger log.Logger, err error) error {
	return ctx.Status(errors.HTTPCode(err)).JSON(errorResponse{
		Error: err.Error(),
	})
}

// GenerateSecureToken returns n random bytes hex-encoded from crypto/rand.
// Used for status tokens and QR payloads, which act as capability tokens and
// must not be predictable.
func GenerateSecureToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
