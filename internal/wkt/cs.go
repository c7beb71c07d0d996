package wkt

import (
	"fmt"
	"strings"

	"github.com/pspoerri/planetwkt/internal/body"
)

// AxisOrder is the geographic axis ordering of an ellipsoidal CS.
type AxisOrder int

const (
	LatLong AxisOrder = iota
	LongLat
)

// AngularUnit is the angular unit of a geographic CS.
type AngularUnit int

const (
	Degree AngularUnit = iota
	Radian
)

func (u AngularUnit) fragment() string {
	if u == Radian {
		return `ANGLEUNIT["radian", 1, ID["EPSG", 9101]]`
	}
	return `ANGLEUNIT["degree", 0.017453292519943295, ID["EPSG", 9122]]`
}

// CSOptions configures the coordinate system of a geodetic CRS.
// The zero value is the IAU convention: latitude first, degrees.
type CSOptions struct {
	Order        AxisOrder
	Unit         AngularUnit
	LonDirection body.Direction
}

func (o CSOptions) lonDirection() body.Direction {
	if o.LonDirection == "" {
		return body.East
	}
	return o.LonDirection
}

// ellipsoidalCS renders the two-axis geographic CS of an ographic CRS.
// Axis names, abbreviations and directions follow the configured order
// exactly; there is no silent reordering.
func ellipsoidalCS(o CSOptions) string {
	lat := `AXIS["Latitude (B)", north`
	lon := fmt.Sprintf(`AXIS["Longitude (L)", %s`, o.lonDirection())
	first, second := lat, lon
	if o.Order == LongLat {
		first, second = lon, lat
	}
	var b strings.Builder
	b.WriteString("CS[ellipsoidal, 2],\n")
	fmt.Fprintf(&b, "    %s, ORDER[1]],\n", first)
	fmt.Fprintf(&b, "    %s, ORDER[2]],\n", second)
	b.WriteString("    " + o.Unit.fragment())
	return b.String()
}

// sphericalCS renders the three-axis planetocentric CS of an ocentric CRS.
func sphericalCS(o CSOptions) string {
	unit := o.Unit.fragment()
	lat := `AXIS["Planetocentric latitude (U)", north`
	lon := fmt.Sprintf(`AXIS["Planetocentric longitude (V)", %s`, o.lonDirection())
	first, second := lat, lon
	if o.Order == LongLat {
		first, second = lon, lat
	}
	var b strings.Builder
	b.WriteString("CS[spherical, 3],\n")
	fmt.Fprintf(&b, "    %s, ORDER[1], %s],\n", first, unit)
	fmt.Fprintf(&b, "    %s, ORDER[2], %s],\n", second, unit)
	b.WriteString(`    AXIS["Radius (R)", up, ORDER[3], LENGTHUNIT["metre", 1, ID["EPSG", 9001]]]`)
	return b.String()
}

// cartesianCS renders the two-axis projected CS. West-positive bases get
// a westing axis instead of an easting axis.
func cartesianCS(dir body.Direction) string {
	longAxis := "Easting (E)"
	if dir == body.West {
		longAxis = "Westing (W)"
	}
	var b strings.Builder
	b.WriteString("CS[Cartesian, 2],\n")
	fmt.Fprintf(&b, "    AXIS[%q, %s, ORDER[1]],\n", longAxis, dir)
	b.WriteString("    AXIS[\"Northing (N)\", north, ORDER[2]],\n")
	b.WriteString(`    LENGTHUNIT["metre", 1, ID["EPSG", 9001]]`)
	return b.String()
}
