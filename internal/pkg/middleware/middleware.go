package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"trip-booking-service/internal/module/booking/repositories"
	"trip-booking-service/internal/pkg/errors"
	"trip-booking-service/internal/pkg/helpers"
	"trip-booking-service/internal/pkg/log"
)

type Middleware struct {
	Log  log.Logger
	Repo repositories.Repositories
}

// ValidateToken requires a valid bearer token and stashes the caller identity
// in locals.
func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	token, err := bearerToken(ctx)
	if err != nil {
		m.Log.Error(ctx.UserContext(), "error get token from header")
		return helpers.RespError(ctx, m.Log, err)
	}

	resp, err := m.Repo.ValidateToken(ctx.Context(), token)
	if err != nil {
		m.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	ctx.Locals("user_id", resp.UserID)
	ctx.Locals("company_id", resp.CompanyID)
	ctx.Locals("email_user", resp.EmailUser)

	return ctx.Next()
}

// OptionalToken validates a bearer token when one is supplied and lets the
// request through as a guest otherwise. Used on the booking creation route,
// where missing auth implies guest contact fields in the payload.
func (m *Middleware) OptionalToken(ctx *fiber.Ctx) error {
	if ctx.Get("Authorization") == "" {
		return ctx.Next()
	}
	return m.ValidateToken(ctx)
}

// ValidateCompanyToken requires a token bound to a company account.
func (m *Middleware) ValidateCompanyToken(ctx *fiber.Ctx) error {
	token, err := bearerToken(ctx)
	if err != nil {
		m.Log.Error(ctx.UserContext(), "error get token from header")
		return helpers.RespError(ctx, m.Log, err)
	}

	resp, err := m.Repo.ValidateToken(ctx.Context(), token)
	if err != nil {
		m.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	if resp.CompanyID == 0 {
		m.Log.Error(ctx.UserContext(), "token is not a company token")
		return helpers.RespError(ctx, m.Log, errors.ForbiddenError("company account required"))
	}

	ctx.Locals("user_id", resp.UserID)
	ctx.Locals("company_id", resp.CompanyID)
	ctx.Locals("email_user", resp.EmailUser)

	return ctx.Next()
}

func bearerToken(ctx *fiber.Ctx) (string, error) {
	auth := ctx.Get("Authorization")
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		return "", errors.UnauthorizedError("error get token from header")
	}
	return strings.TrimPrefix(auth, "Bearer "), nil
}
