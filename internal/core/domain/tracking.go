package domain

import "time"

// ShipmentEvent is a single scan reported by the carrier. Time is always in
// UTC with the carrier's clock fields kept verbatim.
type ShipmentEvent struct {
	Description string    `json:"description"`
	Time        time.Time `json:"time"`
	Location    Location  `json:"location"`
}

// TrackingResponse is the outcome of a tracking request. Events are sorted
// ascending by Time.
type TrackingResponse struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	XML            string          `json:"-"`
	TrackingNumber string          `json:"tracking_number"`
	Destination    Location        `json:"destination"`
	Events         []ShipmentEvent `json:"events"`
}

// LatestEvent returns the most recent event, if any.
func (r *TrackingResponse) LatestEvent() (ShipmentEvent, bool) {
	if len(r.Events) == 0 {
		return ShipmentEvent{}, false
	}
	return r.Events[len(r.Events)-1], true
}
