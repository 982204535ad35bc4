package response

type Fare struct {
	FareCategory   string  `json:"fare_category"`
	BookingOption  string  `json:"booking_option"`
	Price          float64 `json:"price"`
	Currency       string  `json:"currency"`
	SeatsAvailable int     `json:"seats_available"`
}

type Trip struct {
	ID             int64  `json:"id"`
	RouteFrom      string `json:"route_from"`
	RouteTo        string `json:"route_to"`
	CompanyID      int64  `json:"company_id"`
	DepartureTime  string `json:"departure_time"`
	ArrivalTime    string `json:"arrival_time"`
	SeatsAvailable int    `json:"seats_available"`
	Fares          []Fare `json:"fares"`
}
