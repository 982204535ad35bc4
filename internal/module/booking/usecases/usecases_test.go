package usecases_test

import (
	"context"
	"database/sql"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"trip-booking-service/config"
	"trip-booking-service/internal/module/booking/mocks"
	"trip-booking-service/internal/module/booking/models/entity"
	"trip-booking-service/internal/module/booking/models/request"
	"trip-booking-service/internal/module/booking/models/response"
	"trip-booking-service/internal/module/booking/repositories"
	"trip-booking-service/internal/module/booking/usecases"
	"trip-booking-service/internal/pkg/errors"
	"trip-booking-service/internal/pkg/log"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	logMock  log.Logger
	p        *recordingPublisher
	cfg      *config.BookingConfig
)

// recordingPublisher keeps published topics and payloads so tests can assert
// on dispatch without a broker.
type recordingPublisher struct {
	mu       sync.Mutex
	topics   []string
	payloads map[string][][]byte
}

func (m *recordingPublisher) Close() error {
	return nil
}

func (m *recordingPublisher) Publish(topic string, messages ...*message.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.topics = append(m.topics, topic)
	if m.payloads == nil {
		m.payloads = make(map[string][][]byte)
	}
	for _, msg := range messages {
		m.payloads[topic] = append(m.payloads[topic], msg.Payload)
	}
	return nil
}

func (m *recordingPublisher) published(topic string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.topics {
		if t == topic {
			return true
		}
	}
	return false
}

func (m *recordingPublisher) lastPayload(topic string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.payloads[topic]
	if len(all) == 0 {
		return nil
	}
	return all[len(all)-1]
}

func setup() {
	repoMock = new(mocks.Repositories)
	p = &recordingPublisher{}
	logZap := log.SetupLogger()
	log.Init(logZap)
	logMock = log.GetLogger()
	cfg = &config.BookingConfig{
		StatusBaseURL:   "http://localhost:8081/api/v1/bookings/status",
		RestoreOnReject: true,
		ReminderLead:    24 * time.Hour,
	}
	uc = usecases.New(repoMock, logMock, p, cfg)
}

func teardown() {
	repoMock = nil
	uc = nil
}

func futureTrip() entity.Trip {
	return entity.Trip{
		ID:             1,
		RouteFrom:      "Riga",
		RouteTo:        "Tallinn",
		CompanyID:      7,
		DepartureTime:  time.Now().Add(72 * time.Hour),
		ArrivalTime:    time.Now().Add(76 * time.Hour),
		SeatsTotal:     40,
		SeatsAvailable: 38,
		Status:         "scheduled",
		IsActive:       true,
	}
}

func TestCreateBooking(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		payload := request.CreateBooking{
			TripID:         1,
			Quantity:       2,
			PassengerNames: []string{"John Doe", "Jane Doe"},
		}

		var capturedToken string
		repoMock.On("ReserveSeats", ctx, mock.MatchedBy(func(params repositories.ReserveSeatsParams) bool {
			capturedToken = params.StatusToken
			return params.TripID == int64(1) &&
				params.Quantity == 2 &&
				params.UserEmail == "user@test.com" &&
				params.FareCategory == entity.FareCategoryStandard &&
				params.BookingOption == entity.BookingOptionDefault &&
				len(params.StatusToken) == 64
		})).Return(entity.Booking{
			ID:            uuid.New(),
			UserID:        sql.NullInt64{Int64: 1, Valid: true},
			UserEmail:     sql.NullString{String: "user@test.com", Valid: true},
			TripID:        1,
			BookingStatus: entity.StatusPending,
			SeatsBooked:   2,
			TotalPrice:    2000,
			Currency:      "EUR",
			StatusToken:   "abc123",
		}, nil).Once()
		repoMock.On("FindTripByID", ctx, int64(1)).Return(futureTrip(), nil).Once()

		resp, err := uc.CreateBooking(ctx, &payload, 1, "user@test.com")

		assert.NoError(t, err)
		assert.Equal(t, entity.StatusPending, resp.Status)
		assert.Equal(t, float64(2000), resp.TotalPrice)
		assert.Equal(t, "http://localhost:8081/api/v1/bookings/status/abc123", resp.StatusLink)
		assert.Len(t, capturedToken, 64)
		assert.True(t, p.published(usecases.TopicLifecycleEvents))
	})

	t.Run("guest contact incomplete", func(t *testing.T) {
		setup()
		payload := request.CreateBooking{
			TripID:         1,
			Quantity:       1,
			PassengerNames: []string{"John Doe"},
			GuestName:      "John Doe",
			GuestEmail:     "john@test.com",
			// phone missing
		}

		_, err := uc.CreateBooking(ctx, &payload, 0, "")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, http.StatusBadRequest))
		repoMock.AssertNotCalled(t, "ReserveSeats", mock.Anything, mock.Anything)
	})

	t.Run("passenger names do not match quantity", func(t *testing.T) {
		payload := request.CreateBooking{
			TripID:         1,
			Quantity:       2,
			PassengerNames: []string{"John Doe"},
		}

		_, err := uc.CreateBooking(ctx, &payload, 1, "user@test.com")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, http.StatusBadRequest))
	})

	t.Run("inventory exhausted", func(t *testing.T) {
		payload := request.CreateBooking{
			TripID:         1,
			Quantity:       2,
			PassengerNames: []string{"John Doe", "Jane Doe"},
		}

		repoMock.On("ReserveSeats", ctx, mock.Anything).
			Return(entity.Booking{}, errors.BadRequest("not enough seats available for this trip")).Once()

		_, err := uc.CreateBooking(ctx, &payload, 1, "user@test.com")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, http.StatusBadRequest))
	})
}

func TestAcceptBooking(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success generates qr distinct from status token", func(t *testing.T) {
		bookingID := uuid.New()
		statusToken := "f00d" // persisted at creation, unrelated to the qr

		var capturedQR string
		repoMock.On("ConfirmBooking", ctx, bookingID.String(), int64(7), mock.MatchedBy(func(qr string) bool {
			capturedQR = qr
			return len(qr) == 64
		})).Return(entity.Booking{
			ID:            bookingID,
			UserID:        sql.NullInt64{Int64: 42, Valid: true},
			UserEmail:     sql.NullString{String: "user@test.com", Valid: true},
			TripID:        1,
			BookingStatus: entity.StatusConfirmed,
			StatusToken:   statusToken,
			QRCodeData:    sql.NullString{String: "deadbeef", Valid: true},
		}, nil).Once()
		repoMock.On("InvalidateStatus", ctx, statusToken).Once()
		repoMock.On("FindTripByID", ctx, int64(1)).Return(futureTrip(), nil).Once()
		repoMock.On("EnqueueDepartureReminder", ctx, mock.Anything, mock.Anything).Return("task-1", nil).Once()

		err := uc.AcceptBooking(ctx, bookingID.String(), 7)

		assert.NoError(t, err)
		assert.NotEqual(t, statusToken, capturedQR)
		assert.True(t, p.published(usecases.TopicLifecycleEvents))
		repoMock.AssertExpectations(t)
	})

	t.Run("accepted event for a user booking carries the requester email", func(t *testing.T) {
		setup()
		bookingID := uuid.New()
		repoMock.On("ConfirmBooking", ctx, bookingID.String(), int64(7), mock.Anything).
			Return(entity.Booking{
				ID:            bookingID,
				UserID:        sql.NullInt64{Int64: 42, Valid: true},
				UserEmail:     sql.NullString{String: "rider@test.com", Valid: true},
				TripID:        1,
				BookingStatus: entity.StatusConfirmed,
				StatusToken:   "tok",
			}, nil).Once()
		repoMock.On("InvalidateStatus", ctx, "tok").Once()
		repoMock.On("FindTripByID", ctx, int64(1)).Return(futureTrip(), nil).Once()
		repoMock.On("EnqueueDepartureReminder", ctx, mock.Anything, mock.Anything).Return("task-1", nil).Once()

		err := uc.AcceptBooking(ctx, bookingID.String(), 7)

		assert.NoError(t, err)
		var event request.LifecycleEvent
		assert.NoError(t, json.Unmarshal(p.lastPayload(usecases.TopicLifecycleEvents), &event))
		assert.Equal(t, usecases.EventBookingAccepted, event.Event)
		assert.Equal(t, "rider@test.com", event.RecipientEmail)
	})

	t.Run("state conflict surfaces", func(t *testing.T) {
		repoMock.On("ConfirmBooking", ctx, "b-1", int64(7), mock.Anything).
			Return(entity.Booking{}, errors.Conflict("booking is not pending")).Once()

		err := uc.AcceptBooking(ctx, "b-1", 7)

		assert.Error(t, err)
		assert.True(t, errors.Is(err, http.StatusConflict))
	})
}

func TestRejectBooking(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success passes restore flag from config", func(t *testing.T) {
		bookingID := uuid.New()
		repoMock.On("RejectBooking", ctx, bookingID.String(), int64(7), "overbooked vehicle", true).
			Return(entity.Booking{
				ID:            bookingID,
				TripID:        1,
				BookingStatus: entity.StatusRejected,
				StatusToken:   "tok",
			}, nil).Once()
		repoMock.On("InvalidateStatus", ctx, "tok").Once()
		repoMock.On("FindTripByID", ctx, int64(1)).Return(futureTrip(), nil).Once()

		err := uc.RejectBooking(ctx, bookingID.String(), 7, &request.RejectBooking{Reason: "overbooked vehicle"})

		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
	})

	t.Run("reject confirmed booking is a state conflict", func(t *testing.T) {
		repoMock.On("RejectBooking", ctx, "b-1", int64(7), "late", true).
			Return(entity.Booking{}, errors.Conflict("booking is not pending")).Once()

		err := uc.RejectBooking(ctx, "b-1", 7, &request.RejectBooking{Reason: "late"})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, http.StatusConflict))
	})
}

func TestRequestCancellation(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		bookingID := uuid.New()
		repoMock.On("MarkCancellationRequested", ctx, bookingID.String(), int64(1)).
			Return(entity.Booking{
				ID:            bookingID,
				TripID:        1,
				BookingStatus: entity.StatusCancellationRequested,
				StatusToken:   "tok",
			}, nil).Once()
		repoMock.On("InvalidateStatus", ctx, "tok").Once()
		repoMock.On("FindTripByID", ctx, int64(1)).Return(futureTrip(), nil).Once()

		err := uc.RequestCancellation(ctx, bookingID.String(), 1)

		assert.NoError(t, err)
	})

	t.Run("trip already departed", func(t *testing.T) {
		repoMock.On("MarkCancellationRequested", ctx, "b-1", int64(1)).
			Return(entity.Booking{}, errors.Conflict("trip already departed")).Once()

		err := uc.RequestCancellation(ctx, "b-1", 1)

		assert.Error(t, err)
		assert.True(t, errors.Is(err, http.StatusConflict))
	})
}

func TestVerifyAndCheckIn(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		bookingID := uuid.New()
		repoMock.On("CheckInByQR", ctx, "qr-data", int64(7)).Return(entity.Booking{
			ID:            bookingID,
			TripID:        1,
			BookingStatus: entity.StatusCheckedIn,
			SeatsBooked:   2,
			StatusToken:   "tok",
		}, nil).Once()
		repoMock.On("InvalidateStatus", ctx, "tok").Once()
		repoMock.On("FindTripByID", ctx, int64(1)).Return(futureTrip(), nil).Once()
		repoMock.On("FindPassengersByBookingID", ctx, bookingID.String()).Return([]entity.BookingPassenger{
			{BookingID: bookingID, PassengerName: "John Doe", SeatNumber: 1},
			{BookingID: bookingID, PassengerName: "Jane Doe", SeatNumber: 2},
		}, nil).Once()

		resp, err := uc.VerifyAndCheckIn(ctx, &request.VerifyCheckIn{QRData: "qr-data"}, 7)

		assert.NoError(t, err)
		assert.True(t, resp.Valid)
		assert.Equal(t, "Riga", resp.Booking.RouteFrom)
		assert.Len(t, resp.Booking.Passengers, 2)
	})

	t.Run("second scan of the same qr is invalid", func(t *testing.T) {
		// after check-in the confirmed-status predicate no longer matches
		repoMock.On("CheckInByQR", ctx, "qr-data", int64(7)).
			Return(entity.Booking{}, errors.NotFound("no matching confirmed booking")).Once()

		resp, err := uc.VerifyAndCheckIn(ctx, &request.VerifyCheckIn{QRData: "qr-data"}, 7)

		assert.NoError(t, err)
		assert.False(t, resp.Valid)
		assert.Nil(t, resp.Booking)
	})

	t.Run("wrong company is indistinguishable from unknown qr", func(t *testing.T) {
		repoMock.On("CheckInByQR", ctx, "qr-data", int64(99)).
			Return(entity.Booking{}, errors.NotFound("no matching confirmed booking")).Once()

		resp, err := uc.VerifyAndCheckIn(ctx, &request.VerifyCheckIn{QRData: "qr-data"}, 99)

		assert.NoError(t, err)
		assert.False(t, resp.Valid)
	})
}

func TestResolveByToken(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("cache hit", func(t *testing.T) {
		cached := response.BookingStatus{BookingID: "b-1", Status: entity.StatusConfirmed}
		repoMock.On("GetCachedStatus", ctx, "tok").Return(cached, true).Once()

		resp, err := uc.ResolveByToken(ctx, "tok")

		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
		repoMock.AssertNotCalled(t, "FindBookingByToken", mock.Anything, mock.Anything)
	})

	t.Run("cache miss resolves and caches", func(t *testing.T) {
		bookingID := uuid.New()
		repoMock.On("GetCachedStatus", ctx, "tok2").Return(response.BookingStatus{}, false).Once()
		repoMock.On("FindBookingByToken", ctx, "tok2").Return(entity.Booking{
			ID:            bookingID,
			TripID:        1,
			BookingStatus: entity.StatusPending,
			SeatsBooked:   1,
			TotalPrice:    1000,
			Currency:      "EUR",
			StatusToken:   "tok2",
		}, nil).Once()
		repoMock.On("FindTripByID", ctx, int64(1)).Return(futureTrip(), nil).Once()
		repoMock.On("FindPassengersByBookingID", ctx, bookingID.String()).Return([]entity.BookingPassenger{
			{BookingID: bookingID, PassengerName: "John Doe", SeatNumber: 1},
		}, nil).Once()
		repoMock.On("CacheStatus", ctx, "tok2", mock.Anything).Once()

		resp, err := uc.ResolveByToken(ctx, "tok2")

		assert.NoError(t, err)
		assert.Equal(t, bookingID.String(), resp.BookingID)
		assert.Equal(t, "Riga", resp.RouteFrom)
	})

	t.Run("unknown token", func(t *testing.T) {
		repoMock.On("GetCachedStatus", ctx, "nope").Return(response.BookingStatus{}, false).Once()
		repoMock.On("FindBookingByToken", ctx, "nope").
			Return(entity.Booking{}, errors.NotFound("booking not found")).Once()

		_, err := uc.ResolveByToken(ctx, "nope")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, http.StatusNotFound))
	})
}

func TestShowBookings(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		bookingID := uuid.New()
		repoMock.On("FindBookingsByUserID", ctx, int64(1)).Return([]entity.Booking{
			{
				ID:            bookingID,
				UserID:        sql.NullInt64{Int64: 1, Valid: true},
				TripID:        1,
				BookingStatus: entity.StatusConfirmed,
				SeatsBooked:   1,
				TotalPrice:    1000,
				Currency:      "EUR",
			},
		}, nil).Once()
		repoMock.On("FindTripByID", ctx, int64(1)).Return(futureTrip(), nil).Once()
		repoMock.On("FindPassengersByBookingID", ctx, bookingID.String()).Return([]entity.BookingPassenger{
			{BookingID: bookingID, PassengerName: "John Doe", SeatNumber: 1},
		}, nil).Once()

		resp, err := uc.ShowBookings(ctx, 1)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, entity.StatusConfirmed, resp[0].Status)
	})
}

func TestSendDepartureReminder(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("reminder for confirmed booking publishes event", func(t *testing.T) {
		bookingID := uuid.New()
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(entity.Booking{
			ID:            bookingID,
			TripID:        1,
			BookingStatus: entity.StatusConfirmed,
			StatusToken:   "tok",
		}, nil).Once()
		repoMock.On("FindTripByID", ctx, int64(1)).Return(futureTrip(), nil).Once()

		err := uc.SendDepartureReminder(ctx, &request.DepartureReminder{BookingID: bookingID.String()})

		assert.NoError(t, err)
		assert.True(t, p.published(usecases.TopicLifecycleEvents))
	})

	t.Run("booking no longer confirmed is skipped", func(t *testing.T) {
		setup()
		bookingID := uuid.New()
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(entity.Booking{
			ID:            bookingID,
			TripID:        1,
			BookingStatus: entity.StatusCancellationRequested,
		}, nil).Once()

		err := uc.SendDepartureReminder(ctx, &request.DepartureReminder{BookingID: bookingID.String()})

		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "FindTripByID", mock.Anything, mock.Anything)
	})
}
