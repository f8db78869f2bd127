package domain

import "time"

// RequestOptions carries the per-call knobs understood by carrier adapters.
// Zero values mean "use the carrier default".
type RequestOptions struct {
	DropoffType           string
	PackagingType         string
	Shipper               *Location // overrides origin as the shipper block
	Residential           bool      // hint for address verification
	PackageIdentifierType string
	ShipDateRangeBegin    time.Time
	ShipDateRangeEnd      time.Time
	Test                  bool // route to the carrier's test endpoint
	LogXML                bool // audit and debug-log the raw documents
}

// Merge overlays o on defaults. Boolean switches are sticky: a default of
// true cannot be turned off per call.
func (o RequestOptions) Merge(defaults RequestOptions) RequestOptions {
	out := defaults
	if o.DropoffType != "" {
		out.DropoffType = o.DropoffType
	}
	if o.PackagingType != "" {
		out.PackagingType = o.PackagingType
	}
	if o.Shipper != nil {
		out.Shipper = o.Shipper
	}
	if o.PackageIdentifierType != "" {
		out.PackageIdentifierType = o.PackageIdentifierType
	}
	if !o.ShipDateRangeBegin.IsZero() {
		out.ShipDateRangeBegin = o.ShipDateRangeBegin
	}
	if !o.ShipDateRangeEnd.IsZero() {
		out.ShipDateRangeEnd = o.ShipDateRangeEnd
	}
	out.Residential = out.Residential || o.Residential
	out.Test = out.Test || o.Test
	out.LogXML = out.LogXML || o.LogXML
	return out
}
