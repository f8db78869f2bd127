package fedex

import (
	"fmt"
	"strings"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
	"github.com/99minutos/carrier-gateway/internal/pkg/xmlnode"
)

const trackNamespace = "http://fedex.com/ws/track/v3"

const shipDateLayout = "2006-01-02"

// BuildTrackingRequest assembles a TrackRequest for a package identifier,
// which is a tracking number unless opts.PackageIdentifierType says otherwise.
func BuildTrackingRequest(creds Credentials, identifier string, opts domain.RequestOptions) (string, error) {
	if err := creds.Validate(); err != nil {
		return "", err
	}
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return "", fmt.Errorf("%w: package identifier is required", domain.ErrInvalidConfiguration)
	}
	idType, err := resolveCode("package identifier type", PackageIdentifierTypes, opts.PackageIdentifierType, defaultPackageIdentifierType)
	if err != nil {
		return "", err
	}
	if !opts.ShipDateRangeBegin.IsZero() && !opts.ShipDateRangeEnd.IsZero() &&
		opts.ShipDateRangeEnd.Before(opts.ShipDateRangeBegin) {
		return "", fmt.Errorf("%w: ship date range ends before it begins", domain.ErrInvalidConfiguration)
	}

	root := xmlnode.Build("TrackRequest", func(root *xmlnode.Node) {
		root.Add(requestHeader(creds)...)
		root.Add(versionNode("trck", 3))

		root.Add(xmlnode.Build("PackageIdentifier", func(p *xmlnode.Node) {
			p.Add(xmlnode.New("Value", identifier))
			p.Add(xmlnode.New("Type", idType))
		}))

		if !opts.ShipDateRangeBegin.IsZero() {
			root.Add(xmlnode.New("ShipDateRangeBegin", opts.ShipDateRangeBegin.Format(shipDateLayout)))
		}
		if !opts.ShipDateRangeEnd.IsZero() {
			root.Add(xmlnode.New("ShipDateRangeEnd", opts.ShipDateRangeEnd.Format(shipDateLayout)))
		}
		root.Add(xmlnode.New("IncludeDetailedScans", 1))
	}, xmlnode.Attr{Key: "xmlns", Value: trackNamespace})

	return root.String(), nil
}
