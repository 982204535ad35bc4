package usecases

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"

	"trip-booking-service/config"
	"trip-booking-service/internal/module/booking/models/entity"
	"trip-booking-service/internal/module/booking/models/request"
	"trip-booking-service/internal/module/booking/models/response"
	"trip-booking-service/internal/module/booking/repositories"
	"trip-booking-service/internal/pkg/errors"
	"trip-booking-service/internal/pkg/helpers"
	"trip-booking-service/internal/pkg/log"
)

// AMQP topics. Lifecycle events are consumed in-process by the notification
// dispatcher, which fans out to the mailer queues.
const (
	TopicLifecycleEvents = "booking_lifecycle"
	TopicLifecyclePoison = "booking_lifecycle_poisoned"
	TopicNotifyEmail     = "notify_email"
	TopicNotifyCompany   = "notify_company"
)

const (
	EventBookingCreated               = "booking_created"
	EventBookingAccepted              = "booking_accepted"
	EventBookingRejected              = "booking_rejected"
	EventBookingCancellationRequested = "booking_cancellation_requested"
	EventDepartureReminder            = "booking_departure_reminder"
)

const timeLayout = "2006-01-02 15:04:05"

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
	cfg     *config.BookingConfig
}

type Usecase interface {
	// http
	CreateBooking(ctx context.Context, payload *request.CreateBooking, userID int64, emailUser string) (response.BookingCreated, error)
	AcceptBooking(ctx context.Context, bookingID string, companyID int64) error
	RejectBooking(ctx context.Context, bookingID string, companyID int64, payload *request.RejectBooking) error
	RequestCancellation(ctx context.Context, bookingID string, userID int64) error
	VerifyAndCheckIn(ctx context.Context, payload *request.VerifyCheckIn, companyID int64) (response.CheckInResult, error)
	ResolveByToken(ctx context.Context, token string) (response.BookingStatus, error)
	ShowBookings(ctx context.Context, userID int64) ([]response.BookingStatus, error)
	// queue
	DispatchLifecycleNotification(ctx context.Context, event *request.LifecycleEvent) error
	// scheduler
	SendDepartureReminder(ctx context.Context, payload *request.DepartureReminder) error
}

func New(repo repositories.Repositories, logger log.Logger, publisher message.Publisher, cfg *config.BookingConfig) Usecase {
	return &usecase{
		repo:    repo,
		log:     logger,
		publish: publisher,
		cfg:     cfg,
	}
}

// CreateBooking validates the request, reserves inventory in one locked
// transaction, and dispatches the created event after commit. Guest contact
// checks run before any lock is taken.
func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking, userID int64, emailUser string) (response.BookingCreated, error) {
	if userID == 0 {
		if payload.GuestName == "" || payload.GuestEmail == "" || payload.GuestPhone == "" {
			return response.BookingCreated{}, errors.BadRequest("guest contact details are incomplete")
		}
	}
	if len(payload.PassengerNames) != payload.Quantity {
		return response.BookingCreated{}, errors.BadRequest("passenger names must match the number of seats")
	}

	fareCategory := payload.FareCategory
	if fareCategory == "" {
		fareCategory = entity.FareCategoryStandard
	}
	bookingOption := payload.BookingOption
	if bookingOption == "" {
		bookingOption = entity.BookingOptionDefault
	}

	statusToken, err := helpers.GenerateSecureToken(32)
	if err != nil {
		return response.BookingCreated{}, errors.InternalServerError("error generating status token")
	}

	booking, err := u.repo.ReserveSeats(ctx, repositories.ReserveSeatsParams{
		TripID:         payload.TripID,
		FareCategory:   fareCategory,
		BookingOption:  bookingOption,
		Quantity:       payload.Quantity,
		PassengerNames: payload.PassengerNames,
		UserID:         userID,
		UserEmail:      emailUser,
		GuestName:      payload.GuestName,
		GuestEmail:     payload.GuestEmail,
		GuestPhone:     payload.GuestPhone,
		StatusToken:    statusToken,
	})
	if err != nil {
		return response.BookingCreated{}, err
	}

	statusLink := u.cfg.StatusBaseURL + "/" + booking.StatusToken

	// Post-commit, best effort: a dispatch failure never fails the booking.
	trip, tripErr := u.repo.FindTripByID(ctx, booking.TripID)
	if tripErr != nil {
		u.log.Warn(ctx, "error loading trip for created event", tripErr)
	}
	u.publishLifecycleEvent(ctx, EventBookingCreated, booking, trip, statusLink, "")

	return response.BookingCreated{
		BookingID:   booking.ID.String(),
		Status:      booking.BookingStatus,
		SeatsBooked: booking.SeatsBooked,
		TotalPrice:  booking.TotalPrice,
		Currency:    booking.Currency,
		StatusLink:  statusLink,
	}, nil
}

// AcceptBooking moves a pending booking to confirmed, minting the QR payload
// and scheduling a departure reminder.
func (u *usecase) AcceptBooking(ctx context.Context, bookingID string, companyID int64) error {
	qrCodeData, err := helpers.GenerateSecureToken(32)
	if err != nil {
		return errors.InternalServerError("error generating qr code data")
	}

	booking, err := u.repo.ConfirmBooking(ctx, bookingID, companyID, qrCodeData)
	if err != nil {
		return err
	}

	u.repo.InvalidateStatus(ctx, booking.StatusToken)

	trip, tripErr := u.repo.FindTripByID(ctx, booking.TripID)
	if tripErr != nil {
		u.log.Warn(ctx, "error loading trip for accepted event", tripErr)
	}
	u.publishLifecycleEvent(ctx, EventBookingAccepted, booking, trip, u.statusLink(booking), "")

	u.scheduleDepartureReminder(ctx, booking, trip)

	return nil
}

// RejectBooking moves a pending booking to rejected. Inventory restoration is
// decided by configuration and happens atomically with the transition.
func (u *usecase) RejectBooking(ctx context.Context, bookingID string, companyID int64, payload *request.RejectBooking) error {
	booking, err := u.repo.RejectBooking(ctx, bookingID, companyID, payload.Reason, u.cfg.RestoreOnReject)
	if err != nil {
		return err
	}

	u.repo.InvalidateStatus(ctx, booking.StatusToken)

	trip, tripErr := u.repo.FindTripByID(ctx, booking.TripID)
	if tripErr != nil {
		u.log.Warn(ctx, "error loading trip for rejected event", tripErr)
	}
	u.publishLifecycleEvent(ctx, EventBookingRejected, booking, trip, u.statusLink(booking), payload.Reason)

	return nil
}

// RequestCancellation is advisory: the booking is parked in
// cancellation_requested until company tooling resolves it.
func (u *usecase) RequestCancellation(ctx context.Context, bookingID string, userID int64) error {
	booking, err := u.repo.MarkCancellationRequested(ctx, bookingID, userID)
	if err != nil {
		return err
	}

	u.repo.InvalidateStatus(ctx, booking.StatusToken)

	trip, tripErr := u.repo.FindTripByID(ctx, booking.TripID)
	if tripErr != nil {
		u.log.Warn(ctx, "error loading trip for cancellation event", tripErr)
	}
	u.publishLifecycleEvent(ctx, EventBookingCancellationRequested, booking, trip, u.statusLink(booking), "")

	return nil
}

// VerifyAndCheckIn reports only valid or invalid: the caller never learns
// whether the QR was unknown, the company mismatched, or the booking already
// used.
func (u *usecase) VerifyAndCheckIn(ctx context.Context, payload *request.VerifyCheckIn, companyID int64) (response.CheckInResult, error) {
	booking, err := u.repo.CheckInByQR(ctx, payload.QRData, companyID)
	if err != nil {
		if errors.Is(err, 404) {
			return response.CheckInResult{Valid: false}, nil
		}
		return response.CheckInResult{}, err
	}

	u.repo.InvalidateStatus(ctx, booking.StatusToken)

	trip, err := u.repo.FindTripByID(ctx, booking.TripID)
	if err != nil {
		return response.CheckInResult{}, err
	}
	passengers, err := u.repo.FindPassengersByBookingID(ctx, booking.ID.String())
	if err != nil {
		return response.CheckInResult{}, err
	}

	return response.CheckInResult{
		Valid: true,
		Booking: &response.CheckInBooking{
			BookingID:     booking.ID.String(),
			RouteFrom:     trip.RouteFrom,
			RouteTo:       trip.RouteTo,
			DepartureTime: trip.DepartureTime.Format(timeLayout),
			Seats:         booking.SeatsBooked,
			Passengers:    toPassengers(passengers),
		},
	}, nil
}

// ResolveByToken serves the public status page. Reads are lock-free and
// short-TTL cached.
func (u *usecase) ResolveByToken(ctx context.Context, token string) (response.BookingStatus, error) {
	if status, ok := u.repo.GetCachedStatus(ctx, token); ok {
		return status, nil
	}

	booking, err := u.repo.FindBookingByToken(ctx, token)
	if err != nil {
		return response.BookingStatus{}, err
	}

	status, err := u.buildStatus(ctx, booking)
	if err != nil {
		return response.BookingStatus{}, err
	}

	u.repo.CacheStatus(ctx, token, status)
	return status, nil
}

func (u *usecase) ShowBookings(ctx context.Context, userID int64) ([]response.BookingStatus, error) {
	bookings, err := u.repo.FindBookingsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	statuses := make([]response.BookingStatus, 0, len(bookings))
	for _, booking := range bookings {
		status, err := u.buildStatus(ctx, booking)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// DispatchLifecycleNotification fans one lifecycle event out to the mailer
// queues: one message for the requester, one for the operating company.
func (u *usecase) DispatchLifecycleNotification(ctx context.Context, event *request.LifecycleEvent) error {
	if event.RecipientEmail != "" {
		email := request.EmailMessage{
			RecipientEmail: event.RecipientEmail,
			RecipientName:  event.RecipientName,
			Subject:        subjectFor(event.Event),
			Body:           bodyFor(event),
			QRCodeData:     event.QRCodeData,
		}
		if err := u.publishJSON(TopicNotifyEmail, email); err != nil {
			return err
		}
	}

	if err := u.publishJSON(TopicNotifyCompany, event); err != nil {
		return err
	}

	return nil
}

// SendDepartureReminder runs from the scheduler. The reminder is skipped
// silently when the booking has left confirmed since it was scheduled.
func (u *usecase) SendDepartureReminder(ctx context.Context, payload *request.DepartureReminder) error {
	booking, err := u.repo.FindBookingByID(ctx, payload.BookingID)
	if err != nil {
		if errors.Is(err, 404) {
			return nil
		}
		return err
	}
	if booking.BookingStatus != entity.StatusConfirmed {
		return nil
	}

	trip, err := u.repo.FindTripByID(ctx, booking.TripID)
	if err != nil {
		return err
	}
	if !trip.DepartureTime.After(time.Now()) {
		return nil
	}

	u.publishLifecycleEvent(ctx, EventDepartureReminder, booking, trip, u.statusLink(booking), "")
	return nil
}

func (u *usecase) buildStatus(ctx context.Context, booking entity.Booking) (response.BookingStatus, error) {
	trip, err := u.repo.FindTripByID(ctx, booking.TripID)
	if err != nil {
		return response.BookingStatus{}, err
	}
	passengers, err := u.repo.FindPassengersByBookingID(ctx, booking.ID.String())
	if err != nil {
		return response.BookingStatus{}, err
	}

	return response.BookingStatus{
		BookingID:     booking.ID.String(),
		Status:        booking.BookingStatus,
		RouteFrom:     trip.RouteFrom,
		RouteTo:       trip.RouteTo,
		DepartureTime: trip.DepartureTime.Format(timeLayout),
		ArrivalTime:   trip.ArrivalTime.Format(timeLayout),
		SeatsBooked:   booking.SeatsBooked,
		TotalPrice:    booking.TotalPrice,
		Currency:      booking.Currency,
		Passengers:    toPassengers(passengers),
	}, nil
}

// publishLifecycleEvent resolves the recipient from the booking row itself:
// the requester's email is persisted at creation (user_email for
// authenticated bookings, guest_email for guests), so every later transition
// has an address without the caller re-supplying identity.
func (u *usecase) publishLifecycleEvent(ctx context.Context, eventName string, booking entity.Booking, trip entity.Trip, statusLink, rejectReason string) {
	recipientEmail := booking.UserEmail.String
	recipientName := ""
	if booking.IsGuest() {
		recipientEmail = booking.GuestEmail.String
		recipientName = booking.GuestName.String
	}

	event := request.LifecycleEvent{
		Event:          eventName,
		BookingID:      booking.ID.String(),
		TripID:         booking.TripID,
		CompanyID:      trip.CompanyID,
		RouteFrom:      trip.RouteFrom,
		RouteTo:        trip.RouteTo,
		DepartureTime:  trip.DepartureTime.Format(timeLayout),
		SeatsBooked:    booking.SeatsBooked,
		TotalPrice:     booking.TotalPrice,
		Currency:       booking.Currency,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		StatusURL:      statusLink,
		QRCodeData:     booking.QRCodeData.String,
		RejectReason:   rejectReason,
	}

	if err := u.publishJSON(TopicLifecycleEvents, event); err != nil {
		u.log.Error(ctx, "error publishing lifecycle event", err)
	}
}

func (u *usecase) scheduleDepartureReminder(ctx context.Context, booking entity.Booking, trip entity.Trip) {
	runAt := trip.DepartureTime.Add(-u.cfg.ReminderLead)
	if !runAt.After(time.Now()) {
		return
	}

	payload, err := json.Marshal(request.DepartureReminder{BookingID: booking.ID.String()})
	if err != nil {
		u.log.Error(ctx, "error marshalling departure reminder", err)
		return
	}
	if _, err := u.repo.EnqueueDepartureReminder(ctx, runAt, payload); err != nil {
		u.log.Error(ctx, "error scheduling departure reminder", err)
	}
}

func (u *usecase) publishJSON(topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return u.publish.Publish(topic, message.NewMessage(watermill.NewUUID(), data))
}

func (u *usecase) statusLink(booking entity.Booking) string {
	return u.cfg.StatusBaseURL + "/" + booking.StatusToken
}

func toPassengers(passengers []entity.BookingPassenger) []response.Passenger {
	out := make([]response.Passenger, 0, len(passengers))
	for _, p := range passengers {
		out = append(out, response.Passenger{
			Name:       p.PassengerName,
			SeatNumber: p.SeatNumber,
		})
	}
	return out
}

func subjectFor(event string) string {
	switch event {
	case EventBookingCreated:
		return "Your booking request was received"
	case EventBookingAccepted:
		return "Your booking is confirmed"
	case EventBookingRejected:
		return "Your booking was rejected"
	case EventBookingCancellationRequested:
		return "Your cancellation request was received"
	case EventDepartureReminder:
		return "Your trip departs soon"
	default:
		return "Booking update"
	}
}

func bodyFor(event *request.LifecycleEvent) string {
	body := "Booking " + event.BookingID + " for " + event.RouteFrom + " - " + event.RouteTo +
		" departing " + event.DepartureTime + "."
	if event.RejectReason != "" {
		body += " Reason: " + event.RejectReason + "."
	}
	if event.StatusURL != "" {
		body += " Track it at " + event.StatusURL
	}
	return body
}
