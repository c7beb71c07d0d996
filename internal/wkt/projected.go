package wkt

import (
	"fmt"
	"strings"

	"github.com/pspoerri/planetwkt/internal/projection"
)

// Projected is a fully built projected CRS. It borrows its base geodetic
// CRS rather than copying it, so the embedded datum fragment is byte
// identical to the standalone geodetic rendering.
type Projected struct {
	name string
	code int
	base GeodeticCRS
	wkt  string
}

// NewProjected wraps a built geodetic CRS into a PROJCRS with the given
// conversion. Conversion parameters are rendered in declared order; an
// unsupported method or parameter name fails without emitting anything.
func NewProjected(base GeodeticCRS, conv projection.Conversion, code int) (*Projected, error) {
	if base == nil {
		return nil, fmt.Errorf("projected CRS %q (code %d): no base geodetic CRS", conv.Name, code)
	}
	method, err := projection.MethodByName(conv.Method)
	if err != nil {
		return nil, fmt.Errorf("projected CRS %q (code %d): %w", conv.Name, code, err)
	}

	p := &Projected{
		name: base.Name() + " / " + conv.Name,
		code: code,
		base: base,
	}

	var b strings.Builder
	fmt.Fprintf(&b, "PROJCRS[%q,\n", p.name)
	fmt.Fprintf(&b, "    %s[%q,\n", base.BaseKeyword(), base.Name())
	b.WriteString("        " + base.DatumFragment() + "\n")
	b.WriteString("    ],\n")
	fmt.Fprintf(&b, "    CONVERSION[%q,\n", conv.Name)
	fmt.Fprintf(&b, "        METHOD[%q", method.Name)
	if method.Authority != "" {
		fmt.Fprintf(&b, ", ID[%q, %d]", method.Authority, method.Code)
	}
	b.WriteString("]")
	if len(conv.Parameters) > 0 {
		b.WriteString(",")
	}
	b.WriteString("\n")
	for i, param := range conv.Parameters {
		pcode, unit, err := projection.ParamInfo(param.Name)
		if err != nil {
			return nil, fmt.Errorf("projected CRS %q (code %d): %w", conv.Name, code, err)
		}
		fmt.Fprintf(&b, "        PARAMETER[%q, %s, %s, ID[\"EPSG\", %d]]",
			param.Name, fnum(param.Value), unit, pcode)
		if i < len(conv.Parameters)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("    ],\n")
	b.WriteString("    " + cartesianCS(base.LonDirection()) + ",\n")
	fmt.Fprintf(&b, "    ID[%q, %d, %d]", Authority, p.code, Version)
	b.WriteString("\n]")
	p.wkt = b.String()
	return p, nil
}

func (p *Projected) WKT() string       { return p.wkt }
func (p *Projected) Name() string      { return p.name }
func (p *Projected) Authority() string { return Authority }
func (p *Projected) Code() int         { return p.code }
func (p *Projected) Version() int      { return Version }
func (p *Projected) Base() GeodeticCRS { return p.base }
