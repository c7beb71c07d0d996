// Package wkt composes WKT2 coordinate reference system text for solar
// system bodies: ellipsoid and datum clauses, geodetic (planetographic or
// planetocentric) CRS and projected CRS. It is a one-directional writer;
// nothing in this package parses WKT.
package wkt

import (
	"errors"
	"strconv"

	"github.com/pspoerri/planetwkt/internal/body"
)

// Authority and registry version stamped into every ID clause.
const (
	Authority = "IAU"
	Version   = 2015
)

// ErrMissingDatum reports a geodetic CRS build attempted without a valid
// datum clause.
var ErrMissingDatum = errors.New("missing datum")

// CRS is the common contract of every rendered coordinate reference system.
type CRS interface {
	// WKT returns the complete rendered WKT2 string. Rendering happens
	// once at build time; WKT is a pure accessor and always returns the
	// same bytes.
	WKT() string
	Name() string
	Authority() string
	Code() int
	Version() int
}

// GeodeticCRS is the contract a projected CRS needs from its base: the
// rendered datum fragment to embed, the base keyword to wrap it in, and
// the longitude convention driving the projected axis names.
type GeodeticCRS interface {
	CRS
	DatumFragment() string
	BaseKeyword() string // "BASEGEOGCRS" (ographic) or "BASEGEODCRS" (ocentric)
	LonDirection() body.Direction
}

// ProjectedCRS is a projected CRS with a non-owning reference to the
// geodetic CRS it was derived from.
type ProjectedCRS interface {
	CRS
	Base() GeodeticCRS
}

// fnum renders a number in fixed decimal notation, never scientific, with
// the shortest representation that round-trips. Ambiguity-free for every
// downstream WKT parser.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
