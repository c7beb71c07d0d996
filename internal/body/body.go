// Package body normalizes raw IAU body parameter records into canonical
// shape descriptors (sphere, biaxial or triaxial ellipsoid) with the
// derived fields the WKT builders need.
package body

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidShapeParameters reports a malformed or physically impossible
// set of body radii.
var ErrInvalidShapeParameters = errors.New("invalid shape parameters")

// radiusTol is the relative tolerance under which two radii are considered equal.
const radiusTol = 1e-9

// ShapeKind classifies the reference ellipsoid of a body.
type ShapeKind int

const (
	// Biaxial models a body with two equal equatorial radii and a
	// distinct polar radius. A sphere is a biaxial body with infinite
	// inverse flattening.
	Biaxial ShapeKind = iota
	// Triaxial models a body with three distinct principal radii.
	Triaxial
)

func (k ShapeKind) String() string {
	switch k {
	case Biaxial:
		return "biaxial"
	case Triaxial:
		return "triaxial"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// Rotation is the rotation sense of a body.
type Rotation int

const (
	RotationUnknown Rotation = iota
	Direct
	Retrograde
)

// Direction is the sign convention for positive longitudes.
type Direction string

const (
	East Direction = "east"
	West Direction = "west"
)

// ShapeHint optionally pins the shape class of a record. The zero value
// lets Resolve derive the class from the radii.
type ShapeHint int

const (
	HintAuto ShapeHint = iota
	HintBiaxial
	HintTriaxial
)

// Record is a raw body parameter row from the IAU table. Axis values are
// in meters; unsupplied axes are zero (the CSV loader skips rows with an
// undefined radius, so zero axes only occur on hand-built records). Mean
// is zero when the table carries no mean radius.
type Record struct {
	NaifID      int
	Name        string
	SemiMajor   float64 // a, largest equatorial radius
	AxisB       float64 // b, second equatorial radius (triaxial only)
	SemiMinor   float64 // c, polar radius
	Mean        float64
	Rotation    Rotation
	Hint        ShapeHint
	OriginName  string // prime meridian origin feature, e.g. "Airy-0"
	OriginValue float64
}

// Descriptor is the canonical shape of a body. It is immutable once built:
// every field is populated by Resolve and never changed afterwards.
type Descriptor struct {
	NaifID    int
	Name      string
	Kind      ShapeKind
	SemiMajor float64
	Median    float64 // triaxial only, zero otherwise
	SemiMinor float64
	// InverseFlattening is a/(a-c) for a biaxial body and math.Inf(1)
	// for a sphere. It is not defined for triaxial bodies.
	InverseFlattening float64
	MeanRadius        float64
	// MeanDerived is set when the table carried no mean radius and
	// MeanRadius was derived as (a+b+c)/3.
	MeanDerived bool
	Rotation    Rotation
	OriginName  string
	OriginValue float64
}

// Sphere reports whether the body shape degenerates to a sphere.
func (d Descriptor) Sphere() bool {
	return d.Kind == Biaxial && math.IsInf(d.InverseFlattening, 1)
}

// MeanEquatorial returns the arithmetic mean of the two equatorial axes,
// the radius used where downstream grammar needs a biaxial-compatible
// ellipsoid for a triaxial body.
func (d Descriptor) MeanEquatorial() float64 {
	if d.Kind == Triaxial {
		return (d.SemiMajor + d.Median) / 2
	}
	return d.SemiMajor
}

// TriaxialPolicy selects how triaxial bodies are exposed to consumers that
// only understand biaxial grammar.
type TriaxialPolicy int

const (
	// MeanRadiusSphere additionally publishes a best-fit sphere CRS using
	// the body's mean radius, alongside the native triaxial CRS.
	MeanRadiusSphere TriaxialPolicy = iota
	// NativeTriaxial publishes only the native TRIAXIAL datum kinds.
	NativeTriaxial
)

func equalRadii(x, y float64) bool {
	scale := math.Max(math.Abs(x), math.Abs(y))
	return math.Abs(x-y) <= radiusTol*scale
}

// Resolve normalizes a raw record into a canonical Descriptor.
//
// All equal radii yield a sphere (infinite inverse flattening, never a
// division by zero). Two radii yield a biaxial shape with inverse
// flattening a/(a-c). Three distinct radii yield a triaxial shape.
func Resolve(r Record) (Descriptor, error) {
	supplied := 0
	for _, v := range []float64{r.SemiMajor, r.AxisB, r.SemiMinor} {
		if v != 0 {
			supplied++
		}
	}
	if supplied == 1 {
		return Descriptor{}, fmt.Errorf("%w: body %q: exactly one radius supplied", ErrInvalidShapeParameters, r.Name)
	}
	if supplied == 0 {
		return Descriptor{}, fmt.Errorf("%w: body %q: no radii supplied", ErrInvalidShapeParameters, r.Name)
	}
	for _, v := range []float64{r.SemiMajor, r.AxisB, r.SemiMinor} {
		if v != 0 && (v < 0 || math.IsNaN(v) || math.IsInf(v, 0)) {
			return Descriptor{}, fmt.Errorf("%w: body %q: non-positive radius %v", ErrInvalidShapeParameters, r.Name, v)
		}
	}

	a, b, c := r.SemiMajor, r.AxisB, r.SemiMinor
	if a == 0 || c == 0 {
		return Descriptor{}, fmt.Errorf("%w: body %q: semi-major and semi-minor axes are required", ErrInvalidShapeParameters, r.Name)
	}
	if b == 0 {
		b = a
	}
	if c > a || b > a || c > b {
		return Descriptor{}, fmt.Errorf("%w: body %q: radii must satisfy a >= b >= c (got %v, %v, %v)",
			ErrInvalidShapeParameters, r.Name, a, b, c)
	}

	d := Descriptor{
		NaifID:      r.NaifID,
		Name:        r.Name,
		SemiMajor:   a,
		SemiMinor:   c,
		MeanRadius:  r.Mean,
		Rotation:    r.Rotation,
		OriginName:  r.OriginName,
		OriginValue: r.OriginValue,
	}
	if d.MeanRadius <= 0 {
		// Case 1 of the IAU table rules: derive the mean radius when the
		// table does not define one.
		d.MeanRadius = (a + b + c) / 3
		d.MeanDerived = true
	}

	switch {
	case equalRadii(a, b) && equalRadii(a, c):
		if r.Hint == HintTriaxial {
			return Descriptor{}, fmt.Errorf("%w: body %q: marked triaxial but all radii are equal", ErrInvalidShapeParameters, r.Name)
		}
		d.Kind = Biaxial
		d.InverseFlattening = math.Inf(1)
	case equalRadii(a, b) || equalRadii(b, c):
		// Two equal radii: an oblate (a == b) or prolate-like (b == c)
		// spheroid, both expressed with the biaxial convention.
		if r.Hint == HintTriaxial {
			return Descriptor{}, fmt.Errorf("%w: body %q: marked triaxial but only two distinct radii", ErrInvalidShapeParameters, r.Name)
		}
		d.Kind = Biaxial
		d.InverseFlattening = a / (a - c)
	default:
		if r.Hint == HintBiaxial {
			return Descriptor{}, fmt.Errorf("%w: body %q: marked biaxial but carries three distinct radii", ErrInvalidShapeParameters, r.Name)
		}
		d.Kind = Triaxial
		d.Median = b
	}
	return d, nil
}

// LongitudeDirection returns the sign convention for positive longitudes
// in an ographic CRS. Direct rotation is west-positive and retrograde
// rotation east-positive, with two exceptions: Sun, Earth and Moon are
// east-positive for historical reasons, and small bodies, comets and
// dwarf planets (NAIF id >= 900) are always east-positive.
func LongitudeDirection(name string, rot Rotation, naifID int) Direction {
	switch name {
	case "Sun", "Earth", "Moon":
		return East
	}
	if naifID >= 900 {
		return East
	}
	if rot == Direct {
		return West
	}
	return East
}
