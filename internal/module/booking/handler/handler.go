package handler

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"

	"trip-booking-service/internal/module/booking/models/request"
	"trip-booking-service/internal/module/booking/usecases"
	"trip-booking-service/internal/pkg/errors"
	"trip-booking-service/internal/pkg/helpers"
	"trip-booking-service/internal/pkg/log"
)

type BookingHandler struct {
	Log       log.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	// Absence of user_id means a guest request; the usecase enforces the
	// contact fields in that case.
	var userID int64
	if v, ok := ctx.Locals("user_id").(int64); ok {
		userID = v
	}
	var emailUser string
	if v, ok := ctx.Locals("email_user").(string); ok {
		emailUser = v
	}

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), &req, userID, emailUser)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create booking, track it via the status link")
}

func (h *BookingHandler) AcceptBooking(ctx *fiber.Ctx) error {
	bookingID := ctx.Params("id")
	companyID := ctx.Locals("company_id").(int64)

	if err := h.Usecase.AcceptBooking(ctx.UserContext(), bookingID, companyID); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error accept booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success accept booking")
}

func (h *BookingHandler) RejectBooking(ctx *fiber.Ctx) error {
	var req request.RejectBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	bookingID := ctx.Params("id")
	companyID := ctx.Locals("company_id").(int64)

	if err := h.Usecase.RejectBooking(ctx.UserContext(), bookingID, companyID, &req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error reject booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success reject booking")
}

func (h *BookingHandler) RequestCancellation(ctx *fiber.Ctx) error {
	bookingID := ctx.Params("id")
	userID := ctx.Locals("user_id").(int64)

	if err := h.Usecase.RequestCancellation(ctx.UserContext(), bookingID, userID); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error request cancellation: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success request cancellation")
}

func (h *BookingHandler) VerifyAndCheckIn(ctx *fiber.Ctx) error {
	var req request.VerifyCheckIn
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	companyID := ctx.Locals("company_id").(int64)

	resp, err := h.Usecase.VerifyAndCheckIn(ctx.UserContext(), &req, companyID)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error verify check in: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "check in processed")
}

func (h *BookingHandler) ResolveByToken(ctx *fiber.Ctx) error {
	token := ctx.Params("token")
	if token == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("missing status token"))
	}

	resp, err := h.Usecase.ResolveByToken(ctx.UserContext(), token)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error resolve by token: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success resolve booking status")
}

func (h *BookingHandler) ShowBookings(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.ShowBookings(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error show bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show bookings")
}

// ConsumeLifecycleQueue feeds the notification dispatcher. Undecodable and
// failing payloads go to the poison topic instead of blocking the queue.
func (h *BookingHandler) ConsumeLifecycleQueue(msg *message.Message) error {
	msg.Ack()
	var event request.LifecycleEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error unmarshal message: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	ctx := context.Background()

	if err := h.Usecase.DispatchLifecycleNotification(ctx, &event); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error dispatch lifecycle notification: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	return nil
}

func (h *BookingHandler) SendDepartureReminder(ctx context.Context, t *asynq.Task) error {
	var req request.DepartureReminder
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Error(ctx, fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx, fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	if err := h.Usecase.SendDepartureReminder(ctx, &req); err != nil {
		h.Log.Error(ctx, fmt.Sprintf("error send departure reminder: %v", err))
		return err
	}

	return nil
}

func (h *BookingHandler) publishPoisoned(msg *message.Message, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: usecases.TopicLifecycleEvents,
		ErrorMsg:    cause.Error(),
		Payload:     msg.Payload,
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)

	if err := h.Publish.Publish(usecases.TopicLifecyclePoison, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error publish to poison queue: %v", err))
	}
}
