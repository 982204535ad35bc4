package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	circuit "github.com/rubyist/circuitbreaker"

	"trip-booking-service/config"
	"trip-booking-service/internal/module/booking/models/entity"
	"trip-booking-service/internal/module/booking/models/response"
	"trip-booking-service/internal/pkg/errors"
	"trip-booking-service/internal/pkg/log"
	"trip-booking-service/internal/pkg/scheduler"
)

const statusCacheTTL = 30 * time.Second

type repositories struct {
	db              *sqlx.DB
	log             log.Logger
	httpClient      *circuit.HTTPClient
	cfgUserService  *config.UserServiceConfig
	redisClient     *redis.Client
	schedulerClient *asynq.Client
}

// ReserveSeatsParams carries everything the reservation transaction needs.
// The status token is generated by the caller so the transaction itself
// never blocks on an entropy source.
type ReserveSeatsParams struct {
	TripID         int64
	FareCategory   string
	BookingOption  string
	Quantity       int
	PassengerNames []string
	UserID         int64 // 0 means guest
	UserEmail      string
	GuestName      string
	GuestEmail     string
	GuestPhone     string
	StatusToken    string
}

type Repositories interface {
	// http
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
	// db
	ReserveSeats(ctx context.Context, params ReserveSeatsParams) (entity.Booking, error)
	FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error)
	FindBookingByToken(ctx context.Context, token string) (entity.Booking, error)
	FindBookingsByUserID(ctx context.Context, userID int64) ([]entity.Booking, error)
	FindTripByID(ctx context.Context, tripID int64) (entity.Trip, error)
	FindPassengersByBookingID(ctx context.Context, bookingID string) ([]entity.BookingPassenger, error)
	ConfirmBooking(ctx context.Context, bookingID string, companyID int64, qrCodeData string) (entity.Booking, error)
	RejectBooking(ctx context.Context, bookingID string, companyID int64, reason string, restoreInventory bool) (entity.Booking, error)
	MarkCancellationRequested(ctx context.Context, bookingID string, userID int64) (entity.Booking, error)
	CheckInByQR(ctx context.Context, qrData string, companyID int64) (entity.Booking, error)
	// redis
	GetCachedStatus(ctx context.Context, token string) (response.BookingStatus, bool)
	CacheStatus(ctx context.Context, token string, status response.BookingStatus)
	InvalidateStatus(ctx context.Context, token string)
	// scheduler
	EnqueueDepartureReminder(ctx context.Context, runAt time.Time, payload []byte) (string, error)
}

func New(
	db *sqlx.DB,
	logger log.Logger,
	httpClient *circuit.HTTPClient,
	cfgUserService *config.UserServiceConfig,
	redisClient *redis.Client,
	schedulerClient *asynq.Client,
) Repositories {
	return &repositories{
		db:              db,
		log:             logger,
		httpClient:      httpClient,
		cfgUserService:  cfgUserService,
		redisClient:     redisClient,
		schedulerClient: schedulerClient,
	}
}

// ReserveSeats implements Repositories. It is the only write path for the
// two seat counters: trip row locked first, fare row second, both decrements
// before the booking insert, all in one transaction. Concurrent requests for
// the same trip serialize on the trip row lock.
func (r *repositories) ReserveSeats(ctx context.Context, params ReserveSeatsParams) (entity.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	var trip entity.Trip
	err = tx.GetContext(ctx, &trip, `
		SELECT id, company_id, seats_total, seats_available, departure_time
		FROM trips
		WHERE id = $1 AND is_active = true AND status = 'scheduled'
		FOR UPDATE
	`, params.TripID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("trip not found")
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error locking trip row")
	}

	if params.Quantity > trip.SeatsAvailable {
		return entity.Booking{}, errors.BadRequest("not enough seats available for this trip")
	}

	var fare entity.TripFare
	err = tx.GetContext(ctx, &fare, `
		SELECT id, trip_id, fare_category, booking_option, price, currency, seats_available
		FROM trip_fares
		WHERE trip_id = $1 AND fare_category = $2 AND booking_option = $3
		FOR UPDATE
	`, params.TripID, params.FareCategory, params.BookingOption)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.BadRequest("fare not offered for this trip")
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error locking trip fare row")
	}

	if params.Quantity > fare.SeatsAvailable {
		return entity.Booking{}, errors.BadRequest("not enough seats available for this fare")
	}

	// Both decrements happen before any further statement so a concurrent
	// transaction blocked on the locks above never observes stale counts.
	_, err = tx.ExecContext(ctx, `
		UPDATE trips SET seats_available = seats_available - $1, updated_at = now() WHERE id = $2
	`, params.Quantity, trip.ID)
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error decrementing trip inventory")
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE trip_fares SET seats_available = seats_available - $1, updated_at = now() WHERE id = $2
	`, params.Quantity, fare.ID)
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error decrementing fare inventory")
	}

	booking := entity.Booking{
		ID:            uuid.New(),
		TripID:        trip.ID,
		TripFareID:    fare.ID,
		BookingStatus: entity.StatusPending,
		SeatsBooked:   params.Quantity,
		TotalPrice:    fare.Price * float64(params.Quantity),
		Currency:      fare.Currency,
		StatusToken:   params.StatusToken,
		CreatedAt:     time.Now(),
	}
	if params.UserID != 0 {
		booking.UserID = sql.NullInt64{Int64: params.UserID, Valid: true}
		booking.UserEmail = sql.NullString{String: params.UserEmail, Valid: true}
	} else {
		booking.GuestName = sql.NullString{String: params.GuestName, Valid: true}
		booking.GuestEmail = sql.NullString{String: params.GuestEmail, Valid: true}
		booking.GuestPhone = sql.NullString{String: params.GuestPhone, Valid: true}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bookings (
			id, user_id, user_email, trip_id, trip_fare_id, booking_status,
			seats_booked, total_price, currency, guest_name, guest_email,
			guest_phone, status_token, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`,
		booking.ID, booking.UserID, booking.UserEmail, booking.TripID,
		booking.TripFareID, booking.BookingStatus, booking.SeatsBooked,
		booking.TotalPrice, booking.Currency, booking.GuestName,
		booking.GuestEmail, booking.GuestPhone, booking.StatusToken,
		booking.CreatedAt,
	)
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error inserting booking")
	}

	for i, name := range params.PassengerNames {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO booking_passengers (booking_id, passenger_name, seat_number)
			VALUES ($1, $2, $3)
		`, booking.ID, name, i+1)
		if err != nil {
			return entity.Booking{}, errors.InternalServerError("error inserting booking passenger")
		}
	}

	if err = tx.Commit(); err != nil {
		return entity.Booking{}, errors.InternalServerError("error committing transaction")
	}

	return booking, nil
}

// ConfirmBooking implements Repositories. The booking row is locked so the
// pending check and the transition commit or roll back together.
func (r *repositories) ConfirmBooking(ctx context.Context, bookingID string, companyID int64, qrCodeData string) (entity.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	booking, tripCompanyID, err := lockBookingRow(ctx, tx, bookingID)
	if err != nil {
		return entity.Booking{}, err
	}
	if tripCompanyID != companyID {
		return entity.Booking{}, errors.ForbiddenError("booking does not belong to this company")
	}
	if booking.BookingStatus != entity.StatusPending {
		return entity.Booking{}, errors.Conflict("booking is not pending")
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE bookings SET booking_status = $1, qr_code_data = $2, updated_at = now() WHERE id = $3
	`, entity.StatusConfirmed, qrCodeData, booking.ID)
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error confirming booking")
	}

	if err = tx.Commit(); err != nil {
		return entity.Booking{}, errors.InternalServerError("error committing transaction")
	}

	booking.BookingStatus = entity.StatusConfirmed
	booking.QRCodeData = sql.NullString{String: qrCodeData, Valid: true}
	return booking, nil
}

// RejectBooking implements Repositories. When restoreInventory is set, both
// seat counters are re-credited in the same transaction as the transition,
// trip row before fare row to match the reservation lock order. The trip
// counter is capped at seats_total.
func (r *repositories) RejectBooking(ctx context.Context, bookingID string, companyID int64, reason string, restoreInventory bool) (entity.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	booking, tripCompanyID, err := lockBookingRow(ctx, tx, bookingID)
	if err != nil {
		return entity.Booking{}, err
	}
	if tripCompanyID != companyID {
		return entity.Booking{}, errors.ForbiddenError("booking does not belong to this company")
	}
	if booking.BookingStatus != entity.StatusPending {
		return entity.Booking{}, errors.Conflict("booking is not pending")
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE bookings SET booking_status = $1, reject_reason = $2, updated_at = now() WHERE id = $3
	`, entity.StatusRejected, reason, booking.ID)
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error rejecting booking")
	}

	if restoreInventory {
		_, err = tx.ExecContext(ctx, `
			UPDATE trips SET seats_available = LEAST(seats_total, seats_available + $1), updated_at = now() WHERE id = $2
		`, booking.SeatsBooked, booking.TripID)
		if err != nil {
			return entity.Booking{}, errors.InternalServerError("error restoring trip inventory")
		}
		_, err = tx.ExecContext(ctx, `
			UPDATE trip_fares SET seats_available = seats_available + $1, updated_at = now() WHERE id = $2
		`, booking.SeatsBooked, booking.TripFareID)
		if err != nil {
			return entity.Booking{}, errors.InternalServerError("error restoring fare inventory")
		}
	}

	if err = tx.Commit(); err != nil {
		return entity.Booking{}, errors.InternalServerError("error committing transaction")
	}

	booking.BookingStatus = entity.StatusRejected
	booking.RejectReason = sql.NullString{String: reason, Valid: true}
	return booking, nil
}

// MarkCancellationRequested implements Repositories. Advisory only: no
// inventory change, company tooling finalizes the cancellation.
func (r *repositories) MarkCancellationRequested(ctx context.Context, bookingID string, userID int64) (entity.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	booking, _, err := lockBookingRow(ctx, tx, bookingID)
	if err != nil {
		return entity.Booking{}, err
	}
	if !booking.UserID.Valid || booking.UserID.Int64 != userID {
		return entity.Booking{}, errors.ForbiddenError("booking does not belong to this user")
	}
	if booking.BookingStatus != entity.StatusPending && booking.BookingStatus != entity.StatusConfirmed {
		return entity.Booking{}, errors.Conflict("booking cannot be cancelled from its current status")
	}

	var departureTime time.Time
	err = tx.GetContext(ctx, &departureTime, `SELECT departure_time FROM trips WHERE id = $1`, booking.TripID)
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error reading trip departure")
	}
	if !departureTime.After(time.Now()) {
		return entity.Booking{}, errors.Conflict("trip already departed")
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE bookings SET booking_status = $1, updated_at = now() WHERE id = $2
	`, entity.StatusCancellationRequested, booking.ID)
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error requesting cancellation")
	}

	if err = tx.Commit(); err != nil {
		return entity.Booking{}, errors.InternalServerError("error committing transaction")
	}

	booking.BookingStatus = entity.StatusCancellationRequested
	return booking, nil
}

// CheckInByQR implements Repositories. A single conditional update enforces
// the one-shot semantic: the confirmed-status predicate fails for any booking
// already checked in, and the caller learns only that no row matched.
func (r *repositories) CheckInByQR(ctx context.Context, qrData string, companyID int64) (entity.Booking, error) {
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, `
		UPDATE bookings b
		SET booking_status = $1, updated_at = now()
		FROM trips t
		WHERE b.trip_id = t.id
		  AND b.qr_code_data = $2
		  AND t.company_id = $3
		  AND b.booking_status = $4
		RETURNING b.id, b.user_id, b.user_email, b.trip_id, b.trip_fare_id,
		          b.booking_status, b.seats_booked, b.total_price, b.currency,
		          b.guest_name, b.guest_email, b.guest_phone, b.status_token,
		          b.qr_code_data, b.reject_reason, b.created_at, b.updated_at
	`, entity.StatusCheckedIn, qrData, companyID, entity.StatusConfirmed)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("no matching confirmed booking")
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error checking in booking")
	}
	return booking, nil
}

func (r *repositories) FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error) {
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, `SELECT * FROM bookings WHERE id = $1`, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

func (r *repositories) FindBookingByToken(ctx context.Context, token string) (entity.Booking, error) {
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, `SELECT * FROM bookings WHERE status_token = $1`, token)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error find booking by token")
	}
	return booking, nil
}

func (r *repositories) FindBookingsByUserID(ctx context.Context, userID int64) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.SelectContext(ctx, &bookings, `
		SELECT * FROM bookings WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, errors.InternalServerError("error find bookings by user id")
	}
	return bookings, nil
}

func (r *repositories) FindTripByID(ctx context.Context, tripID int64) (entity.Trip, error) {
	var trip entity.Trip
	err := r.db.GetContext(ctx, &trip, `SELECT * FROM trips WHERE id = $1`, tripID)
	if err == sql.ErrNoRows {
		return entity.Trip{}, errors.NotFound("trip not found")
	}
	if err != nil {
		return entity.Trip{}, errors.InternalServerError("error find trip by id")
	}
	return trip, nil
}

func (r *repositories) FindPassengersByBookingID(ctx context.Context, bookingID string) ([]entity.BookingPassenger, error) {
	var passengers []entity.BookingPassenger
	err := r.db.SelectContext(ctx, &passengers, `
		SELECT * FROM booking_passengers WHERE booking_id = $1 ORDER BY seat_number
	`, bookingID)
	if err != nil {
		return nil, errors.InternalServerError("error find passengers by booking id")
	}
	return passengers, nil
}

// GetCachedStatus implements Repositories. Cache misses and decode failures
// both fall through to the database.
func (r *repositories) GetCachedStatus(ctx context.Context, token string) (response.BookingStatus, bool) {
	data, err := r.redisClient.Get(ctx, statusCacheKey(token)).Bytes()
	if err != nil {
		return response.BookingStatus{}, false
	}
	var status response.BookingStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return response.BookingStatus{}, false
	}
	return status, true
}

func (r *repositories) CacheStatus(ctx context.Context, token string, status response.BookingStatus) {
	data, err := json.Marshal(status)
	if err != nil {
		return
	}
	if err := r.redisClient.Set(ctx, statusCacheKey(token), data, statusCacheTTL).Err(); err != nil {
		r.log.Warn(ctx, "error caching booking status", err)
	}
}

func (r *repositories) InvalidateStatus(ctx context.Context, token string) {
	if err := r.redisClient.Del(ctx, statusCacheKey(token)).Err(); err != nil {
		r.log.Warn(ctx, "error invalidating booking status cache", err)
	}
}

// EnqueueDepartureReminder implements Repositories.
func (r *repositories) EnqueueDepartureReminder(ctx context.Context, runAt time.Time, payload []byte) (string, error) {
	task := asynq.NewTask(scheduler.TypeDepartureReminder, payload)
	info, err := r.schedulerClient.EnqueueContext(ctx, task, asynq.ProcessAt(runAt))
	if err != nil {
		return "", errors.InternalServerError("error enqueueing departure reminder")
	}
	return info.ID, nil
}

func (r *repositories) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	url := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s", r.cfgUserService.Host, r.cfgUserService.Port, token)
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return response.UserServiceValidate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		r.log.Error(ctx, "invalid token", resp.StatusCode)
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	var respData response.UserServiceValidate
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&respData); err != nil {
		return response.UserServiceValidate{}, err
	}

	if !respData.IsValid {
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	return respData, nil
}

// lockBookingRow locks one booking row and returns it with the owning trip's
// company id.
func lockBookingRow(ctx context.Context, tx *sqlx.Tx, bookingID string) (entity.Booking, int64, error) {
	var row struct {
		entity.Booking
		TripCompanyID int64 `db:"trip_company_id"`
	}
	err := tx.GetContext(ctx, &row, `
		SELECT b.id, b.user_id, b.user_email, b.trip_id, b.trip_fare_id,
		       b.booking_status, b.seats_booked, b.total_price, b.currency,
		       b.guest_name, b.guest_email, b.guest_phone, b.status_token,
		       b.qr_code_data, b.reject_reason, b.created_at, b.updated_at,
		       t.company_id AS trip_company_id
		FROM bookings b
		JOIN trips t ON t.id = b.trip_id
		WHERE b.id = $1
		FOR UPDATE OF b
	`, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, 0, errors.NotFound("booking not found")
	}
	if err != nil {
		return entity.Booking{}, 0, errors.InternalServerError("error locking booking row")
	}
	return row.Booking, row.TripCompanyID, nil
}

func statusCacheKey(token string) string {
	return "booking:status:" + token
}
