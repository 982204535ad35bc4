package router

import (
	"github.com/gofiber/fiber/v2"

	bookinghandler "trip-booking-service/internal/module/booking/handler"
	triphandler "trip-booking-service/internal/module/trip/handler"
	"trip-booking-service/internal/pkg/middleware"
)

func Initialize(app *fiber.App, handlerBooking *bookinghandler.BookingHandler, handlerTrip *triphandler.TripHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	// public routes; booking creation accepts guests, status lookup relies on
	// token unguessability only
	v1 := Api.Group("/v1")
	v1.Get("/trips", handlerTrip.SearchTrips)
	v1.Post("/bookings", m.OptionalToken, handlerBooking.CreateBooking)
	v1.Get("/bookings", m.ValidateToken, handlerBooking.ShowBookings)
	v1.Get("/bookings/status/:token", handlerBooking.ResolveByToken)
	v1.Post("/bookings/:id/cancellation-request", m.ValidateToken, handlerBooking.RequestCancellation)

	// company-side routes
	private := Api.Group("/private", m.ValidateCompanyToken)
	private.Post("/bookings/:id/accept", handlerBooking.AcceptBooking)
	private.Post("/bookings/:id/reject", handlerBooking.RejectBooking)
	private.Post("/checkin", handlerBooking.VerifyAndCheckIn)

	return app

}
