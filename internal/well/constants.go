// Package well computes the stationary states of a particle confined in a
// cubic three dimensional infinite potential well.
package well

import (
	"fmt"
	"math"

	"github.com/tphakala/qwell/internal/errors"
)

const (
	PlanckConstant = 6.62607004e-34 // Planck constant (J*s)
	ElectronMass   = 9.1094e-31     // Default particle mass (kg)
	MaxWavenumber  = 6              // Upper bound accepted for the wavenumber limit

	// MaxWavenumberLimit caps a configured MaxWavenumber. A table for this
	// bound holds Count(100) = 171700 states.
	MaxWavenumberLimit = 100
)

// Constants holds the physical parameters of one well. The zero value is
// not usable; build instances with NewConstants.
type Constants struct {
	planck float64
	mass   float64
	length float64
}

// NewConstants returns the parameters for a well of side length (m) holding
// a particle of the given mass (kg). Every value must be finite and positive.
func NewConstants(planck, mass, length float64) (Constants, error) {
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"planck constant", planck},
		{"mass", mass},
		{"length", length},
	} {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) || p.value <= 0 {
			return Constants{}, errors.Newf("%s must be a finite positive number, got %v", p.name, p.value).
				Component("well").
				Category(errors.CategoryValidation).
				Context(p.name, p.value).
				Build()
		}
	}

	return Constants{planck: planck, mass: mass, length: length}, nil
}

// WithMass returns a copy of c with the particle mass replaced.
func (c Constants) WithMass(mass float64) (Constants, error) {
	return NewConstants(c.planck, mass, c.length)
}

// Planck returns the Planck constant in J*s.
func (c Constants) Planck() float64 { return c.planck }

// Mass returns the particle mass in kg.
func (c Constants) Mass() float64 { return c.mass }

// Length returns the side length of the well in m.
func (c Constants) Length() float64 { return c.length }

// GroundStateUnit is h²/(8mL²), the energy of one unit of nx²+ny²+nz².
func (c Constants) GroundStateUnit() float64 {
	return c.planck * c.planck / (8 * c.mass) / (c.length * c.length)
}

// String implements fmt.Stringer
func (c Constants) String() string {
	return fmt.Sprintf("h=%g J*s m=%g kg L=%g m", c.planck, c.mass, c.length)
}
