package domain

import (
	"fmt"
	"math"
)

const (
	gramsPerPound      = 453.59237
	centimetersPerInch = 2.54
)

// UnitSystem selects the measurement system a value was supplied in.
type UnitSystem int

const (
	Metric UnitSystem = iota
	Imperial
)

// Axis names one of the three package dimensions.
type Axis int

const (
	Length Axis = iota
	Width
	Height
)

// Package is a parcel's weight and dimensions, stored in grams and
// centimeters and readable in either unit system.
type Package struct {
	WeightGrams float64 `json:"weight_grams"`
	LengthCm    float64 `json:"length_cm"`
	WidthCm     float64 `json:"width_cm"`
	HeightCm    float64 `json:"height_cm"`
}

// NewPackage builds a Package from a weight (kg or lb) and dimensions
// (cm or in) given in length, width, height order.
func NewPackage(weight float64, dims [3]float64, units UnitSystem) (Package, error) {
	if weight < 0 || math.IsNaN(weight) {
		return Package{}, fmt.Errorf("%w: package weight must not be negative", ErrInvalidConfiguration)
	}
	for _, d := range dims {
		if d < 0 || math.IsNaN(d) {
			return Package{}, fmt.Errorf("%w: package dimensions must not be negative", ErrInvalidConfiguration)
		}
	}

	if units == Imperial {
		return Package{
			WeightGrams: weight * gramsPerPound,
			LengthCm:    dims[0] * centimetersPerInch,
			WidthCm:     dims[1] * centimetersPerInch,
			HeightCm:    dims[2] * centimetersPerInch,
		}, nil
	}
	return Package{
		WeightGrams: weight * 1000,
		LengthCm:    dims[0],
		WidthCm:     dims[1],
		HeightCm:    dims[2],
	}, nil
}

func (p Package) Kilograms() float64 { return p.WeightGrams / 1000 }

func (p Package) Pounds() float64 { return p.WeightGrams / gramsPerPound }

// Centimeters returns the dimension along axis.
func (p Package) Centimeters(axis Axis) float64 {
	switch axis {
	case Width:
		return p.WidthCm
	case Height:
		return p.HeightCm
	default:
		return p.LengthCm
	}
}

func (p Package) Inches(axis Axis) float64 {
	return p.Centimeters(axis) / centimetersPerInch
}
