package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Booking lifecycle states. A booking enters pending on creation; confirmed
// and rejected are the only transitions out of pending; checked_in and
// rejected are terminal here. cancellation_requested is a holding state:
// company-side tooling finalizes it to a cancelled status outside this
// service, so no constant for that state exists here.
const (
	StatusPending               = "pending"
	StatusConfirmed             = "confirmed"
	StatusRejected              = "rejected"
	StatusCancellationRequested = "cancellation_requested"
	StatusCheckedIn             = "checked_in"
)

const (
	FareCategoryStandard = "STANDARD"
	BookingOptionDefault = "DEFAULT"
)

type Trip struct {
	ID             int64        `db:"id"`
	RouteFrom      string       `db:"route_from"`
	RouteTo        string       `db:"route_to"`
	CompanyID      int64        `db:"company_id"`
	DepartureTime  time.Time    `db:"departure_time"`
	ArrivalTime    time.Time    `db:"arrival_time"`
	SeatsTotal     int          `db:"seats_total"`
	SeatsAvailable int          `db:"seats_available"`
	Status         string       `db:"status"`
	IsActive       bool         `db:"is_active"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      sql.NullTime `db:"updated_at"`
}

type TripFare struct {
	ID             int64        `db:"id"`
	TripID         int64        `db:"trip_id"`
	FareCategory   string       `db:"fare_category"`
	BookingOption  string       `db:"booking_option"`
	Price          float64      `db:"price"`
	Currency       string       `db:"currency"`
	SeatsAvailable int          `db:"seats_available"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      sql.NullTime `db:"updated_at"`
}

type Booking struct {
	ID            uuid.UUID      `db:"id"`
	UserID        sql.NullInt64  `db:"user_id"`
	UserEmail     sql.NullString `db:"user_email"`
	TripID        int64          `db:"trip_id"`
	TripFareID    int64          `db:"trip_fare_id"`
	BookingStatus string         `db:"booking_status"`
	SeatsBooked   int            `db:"seats_booked"`
	TotalPrice    float64        `db:"total_price"`
	Currency      string         `db:"currency"`
	GuestName     sql.NullString `db:"guest_name"`
	GuestEmail    sql.NullString `db:"guest_email"`
	GuestPhone    sql.NullString `db:"guest_phone"`
	StatusToken   string         `db:"status_token"`
	QRCodeData    sql.NullString `db:"qr_code_data"`
	RejectReason  sql.NullString `db:"reject_reason"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     sql.NullTime   `db:"updated_at"`
}

type BookingPassenger struct {
	ID            int64     `db:"id"`
	BookingID     uuid.UUID `db:"booking_id"`
	PassengerName string    `db:"passenger_name"`
	SeatNumber    int       `db:"seat_number"`
}

func (b Booking) IsGuest() bool {
	return !b.UserID.Valid
}
