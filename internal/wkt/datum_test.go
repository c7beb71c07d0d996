package wkt

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/pspoerri/planetwkt/internal/body"
)

func marsDescriptor(t *testing.T) body.Descriptor {
	t.Helper()
	d, err := body.Resolve(body.Record{
		NaifID: 499, Name: "Mars",
		SemiMajor: 3396190, AxisB: 3396190, SemiMinor: 3376200,
		Rotation: body.Direct, OriginName: "Airy-0", OriginValue: 0,
	})
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func phobosDescriptor(t *testing.T) body.Descriptor {
	t.Helper()
	d, err := body.Resolve(body.Record{
		NaifID: 401, Name: "Phobos",
		SemiMajor: 13000, AxisB: 11400, SemiMinor: 9100,
		Rotation: body.Direct,
	})
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestBiaxialDatumFragment(t *testing.T) {
	d := marsDescriptor(t)
	frag, err := BiaxialDatum{
		DatumName:         "Mars (2015)",
		EllipsoidName:     "Mars (2015)",
		Radius:            d.SemiMajor,
		InverseFlattening: d.InverseFlattening,
		Desc:              d,
	}.Fragment()
	if err != nil {
		t.Fatalf("Fragment: %v", err)
	}

	invF := strconv.FormatFloat(3396190.0/(3396190.0-3376200.0), 'f', -1, 64)
	want := `ELLIPSOID["Mars (2015)", 3396190, ` + invF + `, LENGTHUNIT["metre", 1]]`
	if !strings.Contains(frag, want) {
		t.Errorf("fragment missing %q:\n%s", want, frag)
	}
	if !strings.HasPrefix(frag, `DATUM["Mars (2015)",`) {
		t.Errorf("fragment does not open with the datum clause:\n%s", frag)
	}
	if !strings.Contains(frag, primeMeridian) {
		t.Errorf("fragment missing prime meridian:\n%s", frag)
	}
	if !strings.Contains(frag, `ANCHOR["Airy-0: 0"]`) {
		t.Errorf("fragment missing anchor:\n%s", frag)
	}
}

func TestSphereDatumRendersZeroFlattening(t *testing.T) {
	d, err := body.Resolve(body.Record{
		NaifID: 301, Name: "Moon",
		SemiMajor: 1737400, AxisB: 1737400, SemiMinor: 1737400,
		Rotation: body.Direct,
	})
	if err != nil {
		t.Fatal(err)
	}
	frag, err := BiaxialDatum{
		DatumName:         "Moon (2015) - Sphere",
		EllipsoidName:     "Moon (2015) - Sphere",
		Radius:            1737400,
		InverseFlattening: d.InverseFlattening,
		Desc:              d,
	}.Fragment()
	if err != nil {
		t.Fatalf("Fragment: %v", err)
	}
	want := `ELLIPSOID["Moon (2015) - Sphere", 1737400, 0, LENGTHUNIT["metre", 1]]`
	if !strings.Contains(frag, want) {
		t.Errorf("fragment missing %q:\n%s", want, frag)
	}
	if strings.Contains(frag, "Inf") || strings.Contains(frag, "inf") {
		t.Errorf("infinite flattening leaked into output:\n%s", frag)
	}
}

func TestBiaxialDatumValidation(t *testing.T) {
	d := marsDescriptor(t)
	tests := []struct {
		name  string
		datum BiaxialDatum
	}{
		{"empty names", BiaxialDatum{Radius: 1, Desc: d}},
		{"zero radius", BiaxialDatum{DatumName: "x", EllipsoidName: "x", Desc: d}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.datum.Fragment()
			if !errors.Is(err, ErrMissingDatum) {
				t.Errorf("error = %v, want ErrMissingDatum", err)
			}
		})
	}
}

func TestTriaxialDatumFragment(t *testing.T) {
	d := phobosDescriptor(t)
	frag, err := TriaxialDatum{
		DatumName:     "Phobos (2015)",
		EllipsoidName: "Phobos (2015)",
		Desc:          d,
	}.Fragment()
	if err != nil {
		t.Fatalf("Fragment: %v", err)
	}
	want := `TRIAXIAL["Phobos (2015)", 13000, 11400, 9100, LENGTHUNIT["metre", 1, ID["EPSG", 9001]]]`
	if !strings.Contains(frag, want) {
		t.Errorf("fragment missing %q:\n%s", want, frag)
	}
	// No explicit origin feature, so no anchor.
	if strings.Contains(frag, "ANCHOR") {
		t.Errorf("unexpected anchor clause:\n%s", frag)
	}
}

func TestTriaxialDatumRejectsBiaxialDescriptor(t *testing.T) {
	_, err := TriaxialDatum{
		DatumName:     "Mars (2015)",
		EllipsoidName: "Mars (2015)",
		Desc:          marsDescriptor(t),
	}.Fragment()
	if !errors.Is(err, ErrMissingDatum) {
		t.Fatalf("error = %v, want ErrMissingDatum", err)
	}
}

func TestAnchorSkipsReferenceMeridian(t *testing.T) {
	d := marsDescriptor(t)
	d.OriginName = "Reference_Meridian"
	frag, err := BiaxialDatum{
		DatumName:         "Mars (2015)",
		EllipsoidName:     "Mars (2015)",
		Radius:            d.SemiMajor,
		InverseFlattening: d.InverseFlattening,
		Desc:              d,
	}.Fragment()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(frag, "ANCHOR") {
		t.Errorf("conventional reference meridian must not render an anchor:\n%s", frag)
	}
}

func TestFnum(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{3396190, "3396190"},
		{0.9996, "0.9996"},
		{-90, "-90"},
		{0.017453292519943295, "0.017453292519943295"},
		{1737400.5, "1737400.5"},
	}
	for _, tt := range tests {
		if got := fnum(tt.v); got != tt.want {
			t.Errorf("fnum(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
	// Large values stay in fixed notation.
	if got := fnum(math.Pow(10, 8)); got != "100000000" {
		t.Errorf("fnum(1e8) = %q, want fixed notation", got)
	}
}
