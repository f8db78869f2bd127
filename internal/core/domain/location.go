package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// AddressType classifies a location for carriers that price residential
// deliveries differently.
type AddressType string

const (
	AddressUnknown     AddressType = "unknown"
	AddressResidential AddressType = "residential"
	AddressCommercial  AddressType = "commercial"
)

// Location is a postal address. Only City, State, PostalCode and CountryCode
// are used for rating; the street lines matter for address verification.
type Location struct {
	Address1    string      `json:"address1,omitempty"`
	Address2    string      `json:"address2,omitempty"`
	Address3    string      `json:"address3,omitempty"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	PostalCode  string      `json:"postal_code"`
	CountryCode string      `json:"country_code"`
	AddressType AddressType `json:"address_type,omitempty"`
}

// StreetLines returns the non-empty street lines in order.
func (l Location) StreetLines() []string {
	lines := make([]string, 0, 3)
	for _, s := range []string{l.Address1, l.Address2, l.Address3} {
		if s = strings.TrimSpace(s); s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}

// IsResidential reports whether the location is tagged as residential.
func (l Location) IsResidential() bool {
	return l.AddressType == AddressResidential
}

// Normalized returns a copy of l with CountryCode converted to ISO 3166-1
// alpha-2. Alpha-3 and UN M.49 numeric codes are accepted.
func (l Location) Normalized() (Location, error) {
	code, err := NormalizeCountryCode(l.CountryCode)
	if err != nil {
		return Location{}, err
	}
	l.CountryCode = code
	if l.AddressType == "" {
		l.AddressType = AddressUnknown
	}
	return l, nil
}

// NormalizeCountryCode converts a country identifier to its alpha-2 form.
func NormalizeCountryCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", fmt.Errorf("%w: country code is required", ErrInvalidConfiguration)
	}
	region, err := language.ParseRegion(code)
	if err != nil || !region.IsCountry() {
		return "", fmt.Errorf("%w: unknown country code %q", ErrInvalidConfiguration, code)
	}
	return region.String(), nil
}
