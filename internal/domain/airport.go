package domain

// IATACode is a reference record for a 3-letter airport code, used by the
// search screens for autocompletion. It carries no relation to the airport
// fields stored on flights.
type IATACode struct {
	ID          string `json:"_id"`
	IataCode    string `json:"iataCode"`
	AirportName string `json:"airportName"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// State is a reference entry for the signup address autocompletion.
type State struct {
	State string `json:"state"`
}
