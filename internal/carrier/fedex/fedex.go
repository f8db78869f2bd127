// Package fedex translates between the gateway's domain model and the FedEx
// XML web services (rate v6, track v3, address validation v2).
//
// Everything here is pure: Build* functions assemble request documents and
// Parse* functions turn reply documents into domain results. Sending the
// documents is left to a transport.
package fedex

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

// CarrierName is reported on every rate estimate.
const CarrierName = "FedEx"

const (
	LiveURL = "https://gateway.fedex.com:443/xml"
	TestURL = "https://gatewaybeta.fedex.com:443/xml"
)

// CustomerTransactionID is echoed back by FedEx in every reply.
const CustomerTransactionID = "CarrierGateway"

// Credentials identify the FedEx account used for every request.
type Credentials struct {
	Key      string `validate:"required"`
	Password string `validate:"required"`
	Account  string `validate:"required"`
	Login    string `validate:"required"` // meter number
}

var validate = validator.New()

// Validate reports missing credentials as a configuration error.
func (c Credentials) Validate() error {
	if err := validate.Struct(c); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]string, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
			return fmt.Errorf("%w: missing credentials: %s", domain.ErrInvalidConfiguration, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfiguration, err)
	}
	return nil
}
