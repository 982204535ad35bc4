package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"trip-booking-service/internal/module/trip/usecases"
	"trip-booking-service/internal/pkg/errors"
	"trip-booking-service/internal/pkg/helpers"
	"trip-booking-service/internal/pkg/log"
)

type TripHandler struct {
	Log     log.Logger
	Usecase usecases.Usecase
}

func (h *TripHandler) SearchTrips(ctx *fiber.Ctx) error {
	routeFrom := ctx.Query("from")
	routeTo := ctx.Query("to")
	if routeFrom == "" || routeTo == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("from and to are required"))
	}

	// Truncate works on UTC, which shifts the day near midnight in other
	// zones, so build midnight in the server's own location.
	now := time.Now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse date: %v", err))
			return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid date format, use YYYY-MM-DD"))
		}
		date = parsed
	}

	resp, err := h.Usecase.SearchTrips(ctx.UserContext(), routeFrom, routeTo, date)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error search trips: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success search trips")
}
