package crs

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pspoerri/planetwkt/internal/body"
	"github.com/pspoerri/planetwkt/internal/projection"
	"github.com/pspoerri/planetwkt/internal/wkt"
)

// ErrInconsistentBaseCRS reports a projected CRS requested against a body
// for which no matching geodetic CRS was built.
var ErrInconsistentBaseCRS = errors.New("inconsistent base CRS")

const sourceRemark = "Source of IAU Coordinate systems: doi://10.1007/s10569-017-9805-5"

// Config controls a generation run.
type Config struct {
	// Policy selects the triaxial interoperability behavior.
	Policy body.TriaxialPolicy
	// Catalog overrides the projection catalog; nil means the built-in
	// IAU catalog.
	Catalog []projection.Conversion
	// Logger defaults to a nop logger.
	Logger *zap.Logger
}

// variant is one geodetic CRS built for a body, keyed by its datum kind.
type variant struct {
	kind projection.DatumKind
	geo  *wkt.Geodetic
}

// Generate renders the full CRS set for the given records.
//
// Ordering is part of the contract: bodies in input order, each body's
// geodetic CRS before any of its projected CRS, projections in catalog
// order. The run aborts on the first builder error; a partially rendered
// document is never returned.
func Generate(cfg Config, records []body.Record) (*Document, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = projection.Catalog()
	}

	doc := NewDocument()
	for _, rec := range records {
		desc, err := body.Resolve(rec)
		if err != nil {
			return nil, err
		}

		variants, err := geodeticVariants(desc, cfg.Policy)
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", desc.Name, err)
		}
		built := make(map[projection.DatumKind]*wkt.Geodetic, len(variants))
		for _, v := range variants {
			built[v.kind] = v.geo
			if err := doc.append(Entry{Code: v.geo.Code(), Body: desc.Name, WKT: v.geo.WKT()}); err != nil {
				return nil, err
			}
		}

		projected := 0
		for _, conv := range catalog {
			if _, ok := built[conv.Kind]; !ok {
				continue
			}
			code := desc.NaifID*100 + conv.ID
			proj, err := buildProjected(built[conv.Kind], conv, code)
			if err != nil {
				return nil, fmt.Errorf("body %q: %w", desc.Name, err)
			}
			if err := doc.append(Entry{Code: code, Body: desc.Name, WKT: proj.WKT()}); err != nil {
				return nil, err
			}
			projected++
		}

		logger.Debug("rendered body",
			zap.String("body", desc.Name),
			zap.Int("naif", desc.NaifID),
			zap.Stringer("shape", desc.Kind),
			zap.Int("geodetic", len(variants)),
			zap.Int("projected", projected))
	}

	logger.Info("generation complete",
		zap.Int("bodies", len(records)),
		zap.Int("crs", doc.Len()))
	return doc, nil
}

// buildProjected wraps the builder call with the base-consistency check:
// a projected CRS must reference a successfully built geodetic CRS.
func buildProjected(base *wkt.Geodetic, conv projection.Conversion, code int) (*wkt.Projected, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: conversion %q (code %d)", ErrInconsistentBaseCRS, conv.Name, code)
	}
	return wkt.NewProjected(base, conv, code)
}

// geodeticVariants builds every geodetic CRS applicable to a body, in
// fixed kind order (sphere, ographic, ocentric), mirroring the IAU code
// assignment NAIF*100 + kind.
func geodeticVariants(desc body.Descriptor, policy body.TriaxialPolicy) ([]variant, error) {
	baseName := fmt.Sprintf("%s (%d)", desc.Name, wkt.Version)
	var out []variant

	// Spherical interoperability CRS (kind 0). Every consumer understands
	// a sphere; triaxial bodies use the mean radius, others the
	// semi-major axis.
	if desc.Kind != body.Triaxial || policy == body.MeanRadiusSphere {
		sphereName := baseName + " - Sphere"
		radius := desc.SemiMajor
		remark := sourceRemark
		switch {
		case desc.Sphere():
			// A true sphere needs no approximation remark.
		case desc.Kind == body.Triaxial:
			radius = desc.MeanRadius
			remark = "Use mean radius as sphere radius for interoperability. " + remark
			if desc.MeanDerived {
				remark = "Use R_m = (a+b+c)/3 as mean radius. " + remark
			}
		default:
			remark = "Use semi-major radius as sphere for interoperability. " + remark
		}
		geo, err := wkt.NewOcentric(
			wkt.BiaxialDatum{
				DatumName:         sphereName,
				EllipsoidName:     sphereName,
				Radius:            radius,
				InverseFlattening: 0,
				Desc:              desc,
			},
			wkt.GeodeticConfig{
				Name:   sphereName + " / Ocentric",
				Code:   desc.NaifID * 100,
				Remark: remark,
				CS:     wkt.CSOptions{LonDirection: body.East},
			})
		if err != nil {
			return nil, err
		}
		out = append(out, variant{projection.KindSphere, geo})
	}
	switch desc.Kind {
	case body.Biaxial:
		// Sun and Moon keep only the spherical definition for
		// historical reasons. Other spherical bodies still get the
		// ellipse variants, with flattening rendered as zero.
		if desc.Name == "Sun" || desc.Name == "Moon" {
			return out, nil
		}
		datum := wkt.BiaxialDatum{
			DatumName:         baseName,
			EllipsoidName:     baseName,
			Radius:            desc.SemiMajor,
			InverseFlattening: desc.InverseFlattening,
			Desc:              desc,
		}
		v, err := ographicVariant(desc, datum, baseName, projection.KindOgraphic)
		if err != nil {
			return nil, err
		}
		out = append(out, v...)
		geo, err := wkt.NewOcentric(datum, wkt.GeodeticConfig{
			Name:   baseName + " / Ocentric",
			Code:   desc.NaifID*100 + int(projection.KindOcentric),
			Remark: sourceRemark,
			CS:     wkt.CSOptions{LonDirection: body.East},
		})
		if err != nil {
			return nil, err
		}
		out = append(out, variant{projection.KindOcentric, geo})

	case body.Triaxial:
		datum := wkt.TriaxialDatum{
			DatumName:     baseName,
			EllipsoidName: baseName,
			Desc:          desc,
		}
		v, err := ographicVariant(desc, datum, baseName, projection.KindTriaxialOgraphic)
		if err != nil {
			return nil, err
		}
		out = append(out, v...)
		geo, err := wkt.NewOcentric(datum, wkt.GeodeticConfig{
			Name:   baseName + " / Ocentric",
			Code:   desc.NaifID*100 + int(projection.KindTriaxialOcentric),
			Remark: sourceRemark,
			CS:     wkt.CSOptions{LonDirection: body.East},
		})
		if err != nil {
			return nil, err
		}
		out = append(out, variant{projection.KindTriaxialOcentric, geo})
	}
	return out, nil
}

// ographicVariant builds the planetographic CRS when the body's rotation
// sense is known; without it the longitude sign convention is undefined.
func ographicVariant(desc body.Descriptor, datum wkt.DatumClause, baseName string, kind projection.DatumKind) ([]variant, error) {
	if desc.Rotation == body.RotationUnknown {
		return nil, nil
	}
	dir := body.LongitudeDirection(desc.Name, desc.Rotation, desc.NaifID)
	geo, err := wkt.NewOgraphic(datum, wkt.GeodeticConfig{
		Name:   baseName + " / Ographic",
		Code:   desc.NaifID*100 + int(kind),
		Remark: sourceRemark,
		CS:     wkt.CSOptions{LonDirection: dir},
	})
	if err != nil {
		return nil, err
	}
	return []variant{{kind, geo}}, nil
}
