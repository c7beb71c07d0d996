package wkt

import (
	"fmt"
	"math"
	"strings"

	"github.com/pspoerri/planetwkt/internal/body"
)

const (
	primeMeridian = `PRIMEM["Reference Meridian", 0, ANGLEUNIT["degree", 0.017453292519943295, ID["EPSG", 9122]]]`

	// referenceMeridian is the origin name meaning "no anchor feature":
	// the prime meridian is purely conventional for such bodies.
	referenceMeridian = "Reference_Meridian"
)

// DatumClause renders a DATUM[...] fragment (ellipsoid plus prime
// meridian) for embedding into a geodetic CRS. The two implementations
// cover the biaxial and triaxial ellipsoid conventions.
type DatumClause interface {
	Fragment() (string, error)
	Name() string
}

// BiaxialDatum renders the WKT2 ELLIPSOID clause for a biaxial body or a
// best-fit sphere. The descriptor snapshot is immutable once the clause
// is built.
type BiaxialDatum struct {
	DatumName     string
	EllipsoidName string
	// Radius is the rendered semi-major axis. For a sphere
	// interoperability datum this is the mean or equatorial radius
	// chosen by the caller, not necessarily Desc.SemiMajor.
	Radius            float64
	InverseFlattening float64 // math.Inf(1) or 0 for a sphere
	Desc              body.Descriptor
}

func (d BiaxialDatum) Name() string { return d.DatumName }

// Fragment renders the DATUM and PRIMEM clauses. The sphere convention
// renders the inverse-flattening field as literal 0, never as infinity.
func (d BiaxialDatum) Fragment() (string, error) {
	if d.DatumName == "" || d.EllipsoidName == "" {
		return "", fmt.Errorf("%w: datum or ellipsoid name empty", ErrMissingDatum)
	}
	if d.Radius <= 0 {
		return "", fmt.Errorf("%w: datum %q: non-positive radius", ErrMissingDatum, d.DatumName)
	}
	invF := "0"
	if !math.IsInf(d.InverseFlattening, 1) && d.InverseFlattening != 0 {
		invF = fnum(d.InverseFlattening)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "DATUM[%q,\n", d.DatumName)
	fmt.Fprintf(&b, "        ELLIPSOID[%q, %s, %s, LENGTHUNIT[\"metre\", 1]]",
		d.EllipsoidName, fnum(d.Radius), invF)
	writeAnchor(&b, d.Desc)
	b.WriteString("\n    ],\n    ")
	b.WriteString(primeMeridian)
	return b.String(), nil
}

// TriaxialDatum renders the TRIAXIAL clause carrying all three principal
// radii, for the native triaxial datum kinds.
type TriaxialDatum struct {
	DatumName     string
	EllipsoidName string
	Desc          body.Descriptor
}

func (d TriaxialDatum) Name() string { return d.DatumName }

func (d TriaxialDatum) Fragment() (string, error) {
	if d.DatumName == "" || d.EllipsoidName == "" {
		return "", fmt.Errorf("%w: datum or ellipsoid name empty", ErrMissingDatum)
	}
	if d.Desc.Kind != body.Triaxial {
		return "", fmt.Errorf("%w: datum %q: descriptor is not triaxial", ErrMissingDatum, d.DatumName)
	}
	if d.Desc.SemiMajor <= 0 || d.Desc.Median <= 0 || d.Desc.SemiMinor <= 0 {
		return "", fmt.Errorf("%w: datum %q: non-positive radius", ErrMissingDatum, d.DatumName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "DATUM[%q,\n", d.DatumName)
	fmt.Fprintf(&b, "        TRIAXIAL[%q, %s, %s, %s, LENGTHUNIT[\"metre\", 1, ID[\"EPSG\", 9001]]]",
		d.EllipsoidName, fnum(d.Desc.SemiMajor), fnum(d.Desc.Median), fnum(d.Desc.SemiMinor))
	writeAnchor(&b, d.Desc)
	b.WriteString("\n    ],\n    ")
	b.WriteString(primeMeridian)
	return b.String(), nil
}

// writeAnchor appends an ANCHOR clause naming the prime meridian origin
// feature, unless the body only has the conventional reference meridian.
func writeAnchor(b *strings.Builder, d body.Descriptor) {
	if d.OriginName == "" || d.OriginName == referenceMeridian {
		return
	}
	fmt.Fprintf(b, ",\n        ANCHOR[\"%s: %s\"]", d.OriginName, fnum(d.OriginValue))
}
