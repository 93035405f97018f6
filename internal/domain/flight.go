package domain

// Addon is an optional paid extra offered on a flight and selectable in a
// booking (extra baggage, meals, lounge access).
type Addon struct {
	Type        string  `json:"type,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

type Flight struct {
	ID               string  `json:"_id"`
	Airline          string  `json:"airline"`
	FlightNumber     string  `json:"flightNumber"`
	Destination      string  `json:"destination"`
	DepartureAirport string  `json:"departureAirport"`
	ArrivalAirport   string  `json:"arrivalAirport"`
	DepartureTime    string  `json:"departureTime"`
	ArrivalTime      string  `json:"arrivalTime"`
	Price            float64 `json:"price"`
	AvailableSeats   int     `json:"availableSeats"`
	// Type is the fare class: Economy, Business or First.
	Type   string  `json:"type"`
	Addons []Addon `json:"addons"`
}

// FlightUpdate carries a partial flight for a field-level merge on update.
// Nil fields are left untouched.
type FlightUpdate struct {
	Airline          *string  `json:"airline"`
	FlightNumber     *string  `json:"flightNumber"`
	Destination      *string  `json:"destination"`
	DepartureAirport *string  `json:"departureAirport"`
	ArrivalAirport   *string  `json:"arrivalAirport"`
	DepartureTime    *string  `json:"departureTime"`
	ArrivalTime      *string  `json:"arrivalTime"`
	Price            *float64 `json:"price"`
	AvailableSeats   *int     `json:"availableSeats"`
	Type             *string  `json:"type"`
	Addons           *[]Addon `json:"addons"`
}

// Apply merges the non-nil fields of u into f.
func (u FlightUpdate) Apply(f *Flight) {
	if u.Airline != nil {
		f.Airline = *u.Airline
	}
	if u.FlightNumber != nil {
		f.FlightNumber = *u.FlightNumber
	}
	if u.Destination != nil {
		f.Destination = *u.Destination
	}
	if u.DepartureAirport != nil {
		f.DepartureAirport = *u.DepartureAirport
	}
	if u.ArrivalAirport != nil {
		f.ArrivalAirport = *u.ArrivalAirport
	}
	if u.DepartureTime != nil {
		f.DepartureTime = *u.DepartureTime
	}
	if u.ArrivalTime != nil {
		f.ArrivalTime = *u.ArrivalTime
	}
	if u.Price != nil {
		f.Price = *u.Price
	}
	if u.AvailableSeats != nil {
		f.AvailableSeats = *u.AvailableSeats
	}
	if u.Type != nil {
		f.Type = *u.Type
	}
	if u.Addons != nil {
		f.Addons = *u.Addons
	}
}
