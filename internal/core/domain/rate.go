package domain

import "time"

// RateEstimate is one priced service offered by a carrier for a shipment.
type RateEstimate struct {
	Origin       Location  `json:"origin"`
	Destination  Location  `json:"destination"`
	Carrier      string    `json:"carrier"`
	ServiceName  string    `json:"service_name"`
	ServiceCode  string    `json:"service_code"`
	ServiceType  string    `json:"service_type"`
	TotalPrice   float64   `json:"total_price"`
	Currency     string    `json:"currency"`
	Packages     []Package `json:"packages"`
	DeliveryDate time.Time `json:"delivery_date,omitempty"`
}

// RateResponse is the outcome of a rate request. A carrier refusal is
// reported through Success and Message, never as an error.
type RateResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	XML     string         `json:"-"`
	Rates   []RateEstimate `json:"rates"`
}

// Shipment is the input to a rate request.
type Shipment struct {
	Origin      Location
	Destination Location
	Packages    []Package
}
