// Package projection defines the supported map projection method set and
// the fixed IAU projection catalog used to derive projected CRS.
package projection

import (
	"errors"
	"fmt"
)

// ErrUnsupportedProjection reports a projection method name outside the
// supported set.
var ErrUnsupportedProjection = errors.New("unsupported projection method")

// Method identifies a map projection method in its source registry.
// Codes come from the EPSG registry and the GeoTIFF projection list.
type Method struct {
	Name      string
	Authority string
	Code      int
}

// Mollweide has no EPSG method code; it is rendered without an ID.
var methods = map[string]Method{
	"Equidistant Cylindrical":                  {"Equidistant Cylindrical", "EPSG", 1028},
	"Equidistant Cylindrical (Spherical)":      {"Equidistant Cylindrical (Spherical)", "EPSG", 1029},
	"Sinusoidal":                               {"Sinusoidal", "GeoTIFF", 24},
	"Robinson":                                 {"Robinson", "GeoTIFF", 23},
	"Mollweide":                                {Name: "Mollweide"},
	"Transverse Mercator":                      {"Transverse Mercator", "EPSG", 9807},
	"Lambert Conic Conformal (2SP)":            {"Lambert Conic Conformal (2SP)", "EPSG", 9802},
	"Stereographic":                            {"Stereographic", "EPSG", 9810},
	"Lambert Azimuthal Equal Area":             {"Lambert Azimuthal Equal Area", "EPSG", 9820},
	"Lambert Azimuthal Equal Area (Spherical)": {"Lambert Azimuthal Equal Area (Spherical)", "EPSG", 1027},
	"Albers Equal Area":                        {"Albers Equal Area", "EPSG", 9822},
	"Orthographic":                             {"Orthographic", "EPSG", 9840},
}

// MethodByName resolves a projection method name against the supported set.
func MethodByName(name string) (Method, error) {
	m, ok := methods[name]
	if !ok {
		return Method{}, fmt.Errorf("%w: %q", ErrUnsupportedProjection, name)
	}
	return m, nil
}

// paramDef carries the EPSG parameter code and the rendered WKT unit
// fragment for a conversion parameter.
type paramDef struct {
	code int
	unit string
}

const (
	metreUnit  = `LENGTHUNIT["metre", 1, ID["EPSG", 9001]]`
	degreeUnit = `ANGLEUNIT["degree", 0.017453292519943295, ID["EPSG", 9102]]`
	scaleUnit  = `SCALEUNIT["unity", 1, ID["EPSG", 9201]]`
)

var paramDefs = map[string]paramDef{
	"False easting":                     {8806, metreUnit},
	"False northing":                    {8807, metreUnit},
	"Easting at false origin":           {8826, metreUnit},
	"Northing at false origin":          {8827, metreUnit},
	"Latitude of natural origin":        {8801, degreeUnit},
	"Longitude of natural origin":       {8802, degreeUnit},
	"Latitude of false origin":          {8821, degreeUnit},
	"Longitude of false origin":         {8822, degreeUnit},
	"Latitude of 1st standard parallel": {8823, degreeUnit},
	"Latitude of 2nd standard parallel": {8824, degreeUnit},
	"Scale factor at natural origin":    {8805, scaleUnit},
}

// ParamInfo returns the EPSG parameter code and unit fragment for a
// conversion parameter name.
func ParamInfo(name string) (code int, unit string, err error) {
	def, ok := paramDefs[name]
	if !ok {
		return 0, "", fmt.Errorf("%w: unknown parameter %q", ErrUnsupportedProjection, name)
	}
	return def.code, def.unit, nil
}
