package wkt

import (
	"fmt"
	"strings"

	"github.com/pspoerri/planetwkt/internal/body"
)

// Geodetic is a fully built geodetic CRS. It is rendered once at
// construction and immutable afterwards.
type Geodetic struct {
	name   string
	code   int
	remark string
	datum  string
	lonDir body.Direction
	base   string // embedding keyword: BASEGEOGCRS or BASEGEODCRS
	wkt    string
}

// GeodeticConfig carries the per-CRS naming and coordinate system options.
type GeodeticConfig struct {
	Name   string
	Code   int
	Remark string
	CS     CSOptions
}

// NewOgraphic builds a planetographic CRS: a two-axis ellipsoidal
// coordinate system whose longitude direction follows the body's
// rotation sense.
func NewOgraphic(datum DatumClause, cfg GeodeticConfig) (*Geodetic, error) {
	return newGeodetic(datum, cfg, ellipsoidalCS(cfg.CS), "BASEGEOGCRS")
}

// NewOcentric builds a planetocentric CRS: a three-axis spherical
// coordinate system. Ocentric longitudes are positive east by definition.
func NewOcentric(datum DatumClause, cfg GeodeticConfig) (*Geodetic, error) {
	if dir := cfg.CS.lonDirection(); dir != body.East {
		return nil, fmt.Errorf("ocentric CRS %q: longitude direction must be east, not %s", cfg.Name, dir)
	}
	return newGeodetic(datum, cfg, sphericalCS(cfg.CS), "BASEGEODCRS")
}

func newGeodetic(datum DatumClause, cfg GeodeticConfig, cs, baseKeyword string) (*Geodetic, error) {
	if datum == nil {
		return nil, fmt.Errorf("%w: geodetic CRS %q", ErrMissingDatum, cfg.Name)
	}
	fragment, err := datum.Fragment()
	if err != nil {
		return nil, fmt.Errorf("geodetic CRS %q: %w", cfg.Name, err)
	}
	if cfg.Name == "" {
		return nil, fmt.Errorf("geodetic CRS: empty name (code %d)", cfg.Code)
	}

	g := &Geodetic{
		name:   cfg.Name,
		code:   cfg.Code,
		remark: cfg.Remark,
		datum:  fragment,
		lonDir: cfg.CS.lonDirection(),
		base:   baseKeyword,
	}

	var b strings.Builder
	fmt.Fprintf(&b, "GEODCRS[%q,\n", g.name)
	b.WriteString("    " + fragment + ",\n")
	b.WriteString("    " + cs + ",\n")
	fmt.Fprintf(&b, "    ID[%q, %d, %d]", Authority, g.code, Version)
	if g.remark != "" {
		fmt.Fprintf(&b, ", REMARK[%q]", g.remark)
	}
	b.WriteString("\n]")
	g.wkt = b.String()
	return g, nil
}

func (g *Geodetic) WKT() string                  { return g.wkt }
func (g *Geodetic) Name() string                 { return g.name }
func (g *Geodetic) Authority() string            { return Authority }
func (g *Geodetic) Code() int                    { return g.code }
func (g *Geodetic) Version() int                 { return Version }
func (g *Geodetic) DatumFragment() string        { return g.datum }
func (g *Geodetic) BaseKeyword() string          { return g.base }
func (g *Geodetic) LonDirection() body.Direction { return g.lonDir }
