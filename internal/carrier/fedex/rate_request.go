package fedex

import (
	"fmt"
	"math"
	"time"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
	"github.com/99minutos/carrier-gateway/internal/pkg/xmlnode"
)

const rateNamespace = "http://fedex.com/ws/rate/v6"

// minimumWeight keeps FedEx from rejecting zero or near-zero weights.
const minimumWeight = 0.1

// imperialCountries rate in pounds and inches; everyone else in kg and cm.
var imperialCountries = map[string]bool{
	"US": true,
	"LR": true,
	"MM": true,
}

// BuildRateRequest assembles a RateRequest for shipment. shipTime is sent as
// the ship timestamp.
func BuildRateRequest(creds Credentials, shipment domain.Shipment, opts domain.RequestOptions, shipTime time.Time) (string, error) {
	if err := creds.Validate(); err != nil {
		return "", err
	}
	if len(shipment.Packages) == 0 {
		return "", fmt.Errorf("%w: at least one package is required", domain.ErrInvalidConfiguration)
	}

	origin, err := shipment.Origin.Normalized()
	if err != nil {
		return "", fmt.Errorf("origin: %w", err)
	}
	destination, err := shipment.Destination.Normalized()
	if err != nil {
		return "", fmt.Errorf("destination: %w", err)
	}
	shipper := origin
	if opts.Shipper != nil {
		if shipper, err = opts.Shipper.Normalized(); err != nil {
			return "", fmt.Errorf("shipper: %w", err)
		}
	}

	dropoff, err := resolveCode("dropoff type", DropoffTypes, opts.DropoffType, defaultDropoffType)
	if err != nil {
		return "", err
	}
	packaging, err := resolveCode("packaging type", PackageTypes, opts.PackagingType, defaultPackagingType)
	if err != nil {
		return "", err
	}

	imperial := imperialCountries[origin.CountryCode]

	root := xmlnode.Build("RateRequest", func(root *xmlnode.Node) {
		root.Add(requestHeader(creds)...)
		root.Add(versionNode("crs", 6))

		root.Add(xmlnode.New("ReturnTransitAndCommit", true))
		root.Add(xmlnode.New("VariableOptions", "SATURDAY_DELIVERY"))

		root.Add(xmlnode.Build("RequestedShipment", func(rs *xmlnode.Node) {
			rs.Add(xmlnode.New("ShipTimestamp", shipTime))
			rs.Add(xmlnode.New("DropoffType", dropoff))
			rs.Add(xmlnode.New("PackagingType", packaging))

			rs.Add(locationNode("Shipper", shipper))
			rs.Add(locationNode("Recipient", destination))
			if shipper != origin {
				rs.Add(locationNode("Origin", origin))
			}

			rs.Add(xmlnode.New("RateRequestTypes", "ACCOUNT"))
			rs.Add(xmlnode.New("PackageCount", len(shipment.Packages)))
			for _, pkg := range shipment.Packages {
				rs.Add(packageNode(pkg, imperial))
			}
		}))
	}, xmlnode.Attr{Key: "xmlns", Value: rateNamespace})

	return root.String(), nil
}

func locationNode(name string, l domain.Location) *xmlnode.Node {
	return xmlnode.Build(name, func(n *xmlnode.Node) {
		n.Add(xmlnode.Build("Address", func(a *xmlnode.Node) {
			a.Add(xmlnode.New("City", l.City))
			a.Add(xmlnode.New("StateOrProvinceCode", l.State))
			a.Add(xmlnode.New("PostalCode", l.PostalCode))
			a.Add(xmlnode.New("CountryCode", l.CountryCode))
			if l.IsResidential() {
				a.Add(xmlnode.New("Residential", true))
			}
		}))
	})
}

func packageNode(pkg domain.Package, imperial bool) *xmlnode.Node {
	weightUnits, dimensionUnits := "KG", "CM"
	if imperial {
		weightUnits, dimensionUnits = "LB", "IN"
	}

	return xmlnode.Build("RequestedPackages", func(rp *xmlnode.Node) {
		rp.Add(xmlnode.Build("Weight", func(w *xmlnode.Node) {
			w.Add(xmlnode.New("Units", weightUnits))
			w.Add(xmlnode.New("Value", packageWeight(pkg, imperial)))
		}))
		rp.Add(xmlnode.Build("Dimensions", func(d *xmlnode.Node) {
			d.Add(xmlnode.New("Length", packageDimension(pkg, domain.Length, imperial)))
			d.Add(xmlnode.New("Width", packageDimension(pkg, domain.Width, imperial)))
			d.Add(xmlnode.New("Height", packageDimension(pkg, domain.Height, imperial)))
			d.Add(xmlnode.New("Units", dimensionUnits))
		}))
	})
}

// packageWeight is rounded to 3 decimals and never below minimumWeight.
func packageWeight(pkg domain.Package, imperial bool) float64 {
	w := pkg.Kilograms()
	if imperial {
		w = pkg.Pounds()
	}
	return math.Max(round3(w), minimumWeight)
}

// packageDimension rounds up so a dimension is never understated.
func packageDimension(pkg domain.Package, axis domain.Axis, imperial bool) int {
	d := pkg.Centimeters(axis)
	if imperial {
		d = pkg.Inches(axis)
	}
	return int(math.Ceil(round3(d)))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
