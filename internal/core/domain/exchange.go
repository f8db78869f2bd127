package domain

import "time"

// Operation names a carrier API call.
type Operation string

const (
	OperationRate              Operation = "rate"
	OperationTracking          Operation = "tracking"
	OperationAddressValidation Operation = "address_validation"
)

// Exchange is an audited request/response pair. RequestXML never contains
// credentials.
type Exchange struct {
	ID          string
	Operation   Operation
	Test        bool
	RequestXML  string
	ResponseXML string
	Success     bool
	Message     string
	Error       string
	CreatedAt   time.Time
}
