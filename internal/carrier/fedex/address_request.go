package fedex

import (
	"fmt"
	"strings"
	"time"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
	"github.com/99minutos/carrier-gateway/internal/pkg/xmlnode"
)

// addressID tags the single address sent for validation.
const addressID = "first"

const maximumMatches = 5

var addressValidationAttrs = []xmlnode.Attr{
	{Key: "xmlns", Value: "http://fedex.com/ws/addressvalidation/v2"},
	{Key: "xmlns:xsd", Value: "http://www.w3.org/2001/XMLSchema"},
	{Key: "xmlns:soap", Value: "http://schemas.xmlsoap.org/soap/envelope/"},
	{Key: "xmlns:xsi", Value: "http://www.w3.org/2001/XMLSchema-instance"},
	{Key: "xmlns:rep", Value: "http://fedex.com/esb/report"},
}

// BuildAddressValidationRequest assembles an AddressValidationRequest for a
// single address. A residential hint is sent only when opts.Residential is set
// or the address itself is tagged residential.
func BuildAddressValidationRequest(creds Credentials, address domain.Location, opts domain.RequestOptions, requestTime time.Time) (string, error) {
	if err := creds.Validate(); err != nil {
		return "", err
	}
	addr, err := address.Normalized()
	if err != nil {
		return "", fmt.Errorf("address: %w", err)
	}
	lines := addr.StreetLines()
	if len(lines) == 0 && addr.PostalCode == "" && addr.City == "" {
		return "", fmt.Errorf("%w: address needs a street, city or postal code", domain.ErrInvalidConfiguration)
	}
	residential := opts.Residential || addr.IsResidential()

	root := xmlnode.Build("AddressValidationRequest", func(root *xmlnode.Node) {
		root.Add(requestHeader(creds)...)
		root.Add(versionNode("aval", 2))
		root.Add(xmlnode.New("RequestTimestamp", requestTime))

		root.Add(xmlnode.Build("Options", func(o *xmlnode.Node) {
			o.Add(xmlnode.New("CheckResidentialStatus", 1))
			o.Add(xmlnode.New("MaximumNumberOfMatches", maximumMatches))
			o.Add(xmlnode.New("StreetAccuracy", "LOOSE"))
			o.Add(xmlnode.New("DirectionalAccuracy", "LOOSE"))
			o.Add(xmlnode.New("CompanyNameAccuracy", "LOOSE"))
			o.Add(xmlnode.New("RecognizeAlternateCityNames", true))
			o.Add(xmlnode.New("ReturnParsedElements", true))
		}))

		root.Add(xmlnode.Build("AddressesToValidate", func(av *xmlnode.Node) {
			av.Add(xmlnode.New("AddressId", addressID))
			av.Add(xmlnode.Build("Address", func(a *xmlnode.Node) {
				a.Add(xmlnode.New("StreetLines", strings.Join(lines, "\n")))
				a.Add(xmlnode.New("City", addr.City))
				a.Add(xmlnode.New("StateOrProvinceCode", addr.State))
				a.Add(xmlnode.New("PostalCode", addr.PostalCode))
				a.Add(xmlnode.New("CountryCode", addr.CountryCode))
				if residential {
					a.Add(xmlnode.New("Residential", true))
				}
			}))
		}))
	}, addressValidationAttrs...)

	return root.String(), nil
}
