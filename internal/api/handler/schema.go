package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type locationRequest struct {
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	Address3    string `json:"address3"`
	City        string `json:"city"         validate:"required"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"  validate:"required"`
	CountryCode string `json:"country_code" validate:"required,min=2,max=3"`
	AddressType string `json:"address_type" validate:"omitempty,oneof=residential commercial unknown"`
}

type packageRequest struct {
	Weight float64 `json:"weight" validate:"gte=0"`
	Length float64 `json:"length" validate:"gte=0"`
	Width  float64 `json:"width"  validate:"gte=0"`
	Height float64 `json:"height" validate:"gte=0"`
}

type rateOptionsRequest struct {
	DropoffType   string           `json:"dropoff_type"`
	PackagingType string           `json:"packaging_type"`
	Shipper       *locationRequest `json:"shipper"`
	Test          bool             `json:"test"`
}

type rateRequest struct {
	Origin      locationRequest     `json:"origin"      validate:"required"`
	Destination locationRequest     `json:"destination" validate:"required"`
	Units       string              `json:"units"       validate:"omitempty,oneof=imperial metric"`
	Packages    []packageRequest    `json:"packages"    validate:"required,min=1,dive"`
	Options     *rateOptionsRequest `json:"options"`
}

type trackingItemRequest struct {
	TrackingNumber        string     `json:"tracking_number"         validate:"required"`
	PackageIdentifierType string     `json:"package_identifier_type"`
	ShipDateBegin         *time.Time `json:"ship_date_begin"`
	ShipDateEnd           *time.Time `json:"ship_date_end"`
	Test                  bool       `json:"test"`
}

type trackingBatchRequest struct {
	Items []trackingItemRequest `json:"items" validate:"required,min=1,dive"`
}

type addressVerifyRequest struct {
	Address     locationRequest `json:"address"     validate:"required"`
	Residential bool            `json:"residential"`
	Test        bool            `json:"test"`
}

// --- Response types ---
// Kept apart from the domain types so the JSON contract does not follow
// internal changes.

type locationResponse struct {
	Address1    string `json:"address1,omitempty"`
	Address2    string `json:"address2,omitempty"`
	Address3    string `json:"address3,omitempty"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`
	CountryCode string `json:"country_code"`
	AddressType string `json:"address_type,omitempty"`
}

type rateEstimateResponse struct {
	Carrier      string     `json:"carrier"`
	ServiceName  string     `json:"service_name"`
	ServiceCode  string     `json:"service_code"`
	ServiceType  string     `json:"service_type"`
	TotalPrice   float64    `json:"total_price"`
	Currency     string     `json:"currency"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
}

type rateQuoteResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Rates   []rateEstimateResponse `json:"rates"`
}

type trackingEventResponse struct {
	Description string           `json:"description"`
	Time        time.Time        `json:"time"`
	Location    locationResponse `json:"location"`
}

type trackingResponse struct {
	Success        bool                    `json:"success"`
	Message        string                  `json:"message"`
	TrackingNumber string                  `json:"tracking_number"`
	Destination    locationResponse        `json:"destination"`
	Events         []trackingEventResponse `json:"events"`
}

type trackingBatchItemResponse struct {
	TrackingNumber string            `json:"tracking_number"`
	Tracking       *trackingResponse `json:"tracking,omitempty"`
	Error          string            `json:"error,omitempty"`
}

type trackingBatchResponse struct {
	Results []trackingBatchItemResponse `json:"results"`
}

type addressCandidateResponse struct {
	Score       int              `json:"score"`
	Address     locationResponse `json:"address"`
	AddressType string           `json:"address_type"`
}

type addressVerifyResponse struct {
	Success    bool                       `json:"success"`
	Message    string                     `json:"message"`
	Candidates []addressCandidateResponse `json:"candidates"`
}
