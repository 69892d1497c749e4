package domain

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a destination search result from the places provider.
type Place struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Address        string `json:"address"`
	PhotoReference string `json:"photoReference,omitempty"`
	Location       LatLng `json:"location"`
}

// Flight is one flight search result.
type Flight struct {
	ID            string  `json:"id"`
	Airline       string  `json:"airline"`
	Price         float64 `json:"price"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	Duration      string  `json:"duration"`
}
