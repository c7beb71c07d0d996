package projection

import (
	"testing"
)

func TestCatalogShape(t *testing.T) {
	cat := Catalog()
	if len(cat) != len(families)*len(kinds) {
		t.Fatalf("catalog size = %d, want %d", len(cat), len(families)*len(kinds))
	}

	seen := make(map[int]bool, len(cat))
	for _, c := range cat {
		if seen[c.ID] {
			t.Errorf("duplicate conversion id %d", c.ID)
		}
		seen[c.ID] = true
		if c.ID < 10 || c.ID > 84 {
			t.Errorf("conversion id %d outside [10, 84]", c.ID)
		}
		if want := DatumKind(c.ID % 5); c.Kind != want {
			t.Errorf("conversion %d: kind = %v, want %v", c.ID, c.Kind, want)
		}
		if _, err := MethodByName(c.Method); err != nil {
			t.Errorf("conversion %d (%s): %v", c.ID, c.Name, err)
		}
		for _, p := range c.Parameters {
			if _, _, err := ParamInfo(p.Name); err != nil {
				t.Errorf("conversion %d (%s): %v", c.ID, c.Name, err)
			}
		}
	}
}

func TestCatalogSphereVariants(t *testing.T) {
	byID := make(map[int]Conversion)
	for _, c := range Catalog() {
		byID[c.ID] = c
	}

	// The sphere rows of equirectangular and LAEA families swap in the
	// spherical method variant; every other kind keeps the ellipsoidal one.
	tests := []struct {
		id         int
		wantMethod string
	}{
		{10, "Equidistant Cylindrical (Spherical)"},
		{11, "Equidistant Cylindrical"},
		{15, "Equidistant Cylindrical (Spherical)"},
		{16, "Equidistant Cylindrical"},
		{75, "Lambert Azimuthal Equal Area (Spherical)"},
		{76, "Lambert Azimuthal Equal Area"},
		{20, "Sinusoidal"},
		{40, "Mollweide"},
	}
	for _, tt := range tests {
		c, ok := byID[tt.id]
		if !ok {
			t.Fatalf("conversion %d missing from catalog", tt.id)
		}
		if c.Method != tt.wantMethod {
			t.Errorf("conversion %d: method = %q, want %q", tt.id, c.Method, tt.wantMethod)
		}
	}

	// The spherical LAEA variant is centered on the equator.
	laea := byID[75]
	var lat *Parameter
	for i, p := range laea.Parameters {
		if p.Name == "Latitude of natural origin" {
			lat = &laea.Parameters[i]
		}
	}
	if lat == nil || lat.Value != 0 {
		t.Errorf("spherical LAEA latitude of natural origin = %v, want 0", lat)
	}
}

func TestDatumKindPredicates(t *testing.T) {
	tests := []struct {
		kind     DatumKind
		triaxial bool
		ographic bool
	}{
		{KindSphere, false, false},
		{KindOgraphic, false, true},
		{KindOcentric, false, false},
		{KindTriaxialOgraphic, true, true},
		{KindTriaxialOcentric, true, false},
	}
	for _, tt := range tests {
		if got := tt.kind.Triaxial(); got != tt.triaxial {
			t.Errorf("%v.Triaxial() = %v, want %v", tt.kind, got, tt.triaxial)
		}
		if got := tt.kind.Ographic(); got != tt.ographic {
			t.Errorf("%v.Ographic() = %v, want %v", tt.kind, got, tt.ographic)
		}
	}
}

func TestMethodByName(t *testing.T) {
	m, err := MethodByName("Equidistant Cylindrical")
	if err != nil {
		t.Fatalf("MethodByName: %v", err)
	}
	if m.Authority != "EPSG" || m.Code != 1028 {
		t.Errorf("method = %+v, want EPSG 1028", m)
	}

	// Mollweide has no registry code and renders without an ID.
	m, err = MethodByName("Mollweide")
	if err != nil {
		t.Fatalf("MethodByName: %v", err)
	}
	if m.Authority != "" || m.Code != 0 {
		t.Errorf("Mollweide method = %+v, want no authority", m)
	}

	if _, err := MethodByName("Mercator"); err == nil {
		t.Error("expected error for unsupported method")
	}
}
