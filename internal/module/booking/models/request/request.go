package request

type CreateBooking struct {
	TripID         int64    `json:"trip_id" validate:"required"`
	FareCategory   string   `json:"fare_category"`
	BookingOption  string   `json:"booking_option"`
	Quantity       int      `json:"quantity" validate:"required,min=1"`
	PassengerNames []string `json:"passenger_names" validate:"required,min=1,dive,required"`
	GuestName      string   `json:"guest_name"`
	GuestEmail     string   `json:"guest_email" validate:"omitempty,email"`
	GuestPhone     string   `json:"guest_phone"`
}

type RejectBooking struct {
	Reason string `json:"reason" validate:"required"`
}

type VerifyCheckIn struct {
	QRData string `json:"qr_data" validate:"required"`
}

// LifecycleEvent is published post-commit on every booking state change and
// consumed by the notification dispatcher.
type LifecycleEvent struct {
	Event          string  `json:"event" validate:"required"`
	BookingID      string  `json:"booking_id" validate:"required"`
	TripID         int64   `json:"trip_id" validate:"required"`
	CompanyID      int64   `json:"company_id"`
	RouteFrom      string  `json:"route_from"`
	RouteTo        string  `json:"route_to"`
	DepartureTime  string  `json:"departure_time"`
	SeatsBooked    int     `json:"seats_booked"`
	TotalPrice     float64 `json:"total_price"`
	Currency       string  `json:"currency"`
	RecipientEmail string  `json:"recipient_email"`
	RecipientName  string  `json:"recipient_name"`
	StatusURL      string  `json:"status_url"`
	QRCodeData     string  `json:"qr_code_data,omitempty"`
	RejectReason   string  `json:"reject_reason,omitempty"`
}

// EmailMessage is the payload handed to the external mailer queue.
type EmailMessage struct {
	RecipientEmail string `json:"recipient_email" validate:"required"`
	RecipientName  string `json:"recipient_name"`
	Subject        string `json:"subject" validate:"required"`
	Body           string `json:"body" validate:"required"`
	QRCodeData     string `json:"qr_code_data,omitempty"`
}

type DepartureReminder struct {
	BookingID string `json:"booking_id" validate:"required"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
