package domain

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusCompleted BookingStatus = "Completed"
)

// ValidStatus reports whether s is one of the four booking statuses.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCancelled, BookingStatusPending, BookingStatusCompleted:
		return true
	}
	return false
}

// Passenger is a main (primary) traveler on a flight segment.
type Passenger struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"Address"`
	IdentityNo string `json:"IdentityNo"`
}

// AdditionalPassenger is a non-primary traveler attached to the booking as a
// whole rather than to a single segment.
type AdditionalPassenger struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
	Nationality string `json:"nationality"`
}

// FlightSegment is one leg of a booking: the departure trip or the optional
// return trip. Segment flight ids are not foreign keys; a booking outlives
// the flight record it was made against.
type FlightSegment struct {
	FlightID          string      `json:"flightId"`
	DepartureDate     string      `json:"departureDate"`
	ArrivalDate       string      `json:"arrivalDate"`
	DepartureLocation string      `json:"departureLocation"`
	ArrivalLocation   string      `json:"arrivalLocation"`
	MainPassengers    []Passenger `json:"mainPassengers"`
}

type Booking struct {
	ID                   string                `json:"_id"`
	UserID               string                `json:"userId"`
	Status               BookingStatus         `json:"status"`
	Flights              []FlightSegment       `json:"flights"`
	Addons               []Addon               `json:"addons"`
	AdditionalPassengers []AdditionalPassenger `json:"additionalPassengers"`
	TotalPrice           float64               `json:"totalPrice"`
	CreatedAt            string                `json:"createdAt"`
}

// BookingFilter narrows a booking list query. Zero values mean no filtering
// on that dimension. Dates compare against CreatedAt lexicographically,
// which holds for the ISO-8601 timestamps the store writes.
type BookingFilter struct {
	UserID    string
	Status    BookingStatus
	StartDate string
	EndDate   string
}
