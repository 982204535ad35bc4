package response

type UserServiceValidate struct {
	IsValid   bool   `json:"is_valid"`
	UserID    int64  `json:"user_id"`
	CompanyID int64  `json:"company_id"`
	EmailUser string `json:"email_user"`
}

type Passenger struct {
	Name       string `json:"name"`
	SeatNumber int    `json:"seat_number"`
}

type BookingCreated struct {
	BookingID   string  `json:"booking_id"`
	Status      string  `json:"status"`
	SeatsBooked int     `json:"seats_booked"`
	TotalPrice  float64 `json:"total_price"`
	Currency    string  `json:"currency"`
	StatusLink  string  `json:"status_link"`
}

type BookingStatus struct {
	BookingID     string      `json:"booking_id"`
	Status        string      `json:"status"`
	RouteFrom     string      `json:"route_from"`
	RouteTo       string      `json:"route_to"`
	DepartureTime string      `json:"departure_time"`
	ArrivalTime   string      `json:"arrival_time"`
	SeatsBooked   int         `json:"seats_booked"`
	TotalPrice    float64     `json:"total_price"`
	Currency      string      `json:"currency"`
	Passengers    []Passenger `json:"passengers"`
}

type CheckInBooking struct {
	BookingID     string      `json:"booking_id"`
	RouteFrom     string      `json:"route_from"`
	RouteTo       string      `json:"route_to"`
	DepartureTime string      `json:"departure_time"`
	Seats         int         `json:"seats"`
	Passengers    []Passenger `json:"passengers"`
}

type CheckInResult struct {
	Valid   bool            `json:"valid"`
	Booking *CheckInBooking `json:"booking,omitempty"`
}
