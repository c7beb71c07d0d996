package projection

// DatumKind identifies which geodetic CRS variant a conversion applies to.
// The numeric value is the variant's authority code offset.
type DatumKind int

const (
	KindSphere DatumKind = iota
	KindOgraphic
	KindOcentric
	KindTriaxialOgraphic
	KindTriaxialOcentric
)

func (k DatumKind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindOgraphic:
		return "ographic"
	case KindOcentric:
		return "ocentric"
	case KindTriaxialOgraphic:
		return "triaxial ographic"
	case KindTriaxialOcentric:
		return "triaxial ocentric"
	}
	return "unknown"
}

// Triaxial reports whether the kind carries a TRIAXIAL datum clause.
func (k DatumKind) Triaxial() bool {
	return k == KindTriaxialOgraphic || k == KindTriaxialOcentric
}

// Ographic reports whether the kind uses the planetographic convention.
func (k DatumKind) Ographic() bool {
	return k == KindOgraphic || k == KindTriaxialOgraphic
}

// Parameter is a single named conversion parameter. Parameters are
// order-sensitive: they are rendered in declaration order.
type Parameter struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
}

// Conversion is one projected-CRS recipe from the catalog: a named method
// with its ordered parameter list, applicable to one datum kind. ID is the
// projected authority code offset added to the base geodetic code.
type Conversion struct {
	ID         int         `yaml:"id"`
	Kind       DatumKind   `yaml:"kind"`
	Name       string      `yaml:"name"`
	Method     string      `yaml:"method"`
	Parameters []Parameter `yaml:"parameters"`
}

// family is a conversion template expanded for all five datum kinds.
type family struct {
	baseID       int
	name         string
	method       string
	sphereMethod string      // method override for the sphere kind, if any
	params       []Parameter
	sphereParams []Parameter // parameter override for the sphere kind, if any
}

var families = []family{
	{
		baseID: 10, name: "Equirectangular, clon = 0",
		method: "Equidistant Cylindrical", sphereMethod: "Equidistant Cylindrical (Spherical)",
		params: []Parameter{
			{"False easting", 0}, {"False northing", 0},
			{"Longitude of natural origin", 0}, {"Latitude of 1st standard parallel", 0},
		},
	},
	{
		baseID: 15, name: "Equirectangular, clon = 180",
		method: "Equidistant Cylindrical", sphereMethod: "Equidistant Cylindrical (Spherical)",
		params: []Parameter{
			{"False easting", 0}, {"False northing", 0},
			{"Longitude of natural origin", 180}, {"Latitude of 1st standard parallel", 0},
		},
	},
	{
		baseID: 20, name: "Sinusoidal, clon = 0", method: "Sinusoidal",
		params: []Parameter{
			{"False easting", 0}, {"False northing", 0},
			{"Longitude of false origin", 0},
		},
	},
	{
		baseID: 25, name: "Sinusoidal, clon = 180", method: "Sinusoidal",
		params: []Parameter{
			{"False easting", 0}, {"False northing", 0},
			{"Longitude of false origin", 180},
		},
	},
	{
		baseID: 30, name: "North Polar, clon = 0", method: "Stereographic",
		params: []Parameter{
			{"False easting", 0}, {"False northing", 0},
			{"Longitude of natural origin", 0},
			{"Scale factor at natural origin", 1},
			{"Latitude of natural origin", 90},
		},
	},
	{
		baseID: 35, name: "South Polar, clon = 0", method: "Stereographic",
		params: []Parameter{
			{"False easting", 0}, {"False northing", 0},
			{"Longitude of natural origin", 0},
			{"Scale factor at natural origin", 1},
			{"Latitude of natural origin", -90},
		},
	},
	{
		baseID: 40, name: "Mollweide, clon = 0", method: "Mollweide",
		params: []Parameter{
			{"False easting", 0}, {"False northing", 0},
			{"Longitude of natural origin", 0},
		},
	},
	{
		baseID: 45, name: "Mollweide, clon = 180", method: "Mollweide",
		params: []Parameter{
			{"False easting", 0}, {"False northing", 0},
			{"Longitude of natural origin", 180},
		},
	},
	{
		baseID: 50, name: "Robinson, clon = 0", method: "Robinson",
		params: []Parameter{
			{"False easting", 0}, {"False northing", 0},
			{"Longitude of false origin", 0},
		},
	},
	{
		baseID: 55, name: "Robinson, clon = 180", method: "Robinson",
		params: []Parameter{
			{"False easting", 0}, {"False northing", 0},
			{"Longitude of false origin", 180},
		},
	},
	{
		baseID: 60, name: "Transverse Mercator", method: "Transverse Mercator",
		params: []Parameter{
			{"False easting", 0}, {"False northing", 0},
			{"Longitude of natural origin", 0},
			{"Scale factor at natural origin", 0.9996},
			{"Latitude of natural origin", 0},
		},
	},
	{
		baseID: 65, name: "Orthographic", method: "Orthographic",
		params: []Parameter{
			{"False easting", 0}, {"False northing", 0},
			{"Longitude of natural origin", 0},
			{"Latitude of natural origin", 90},
		},
	},
	{
		baseID: 70, name: "Lambert Conic Conformal", method: "Lambert Conic Conformal (2SP)",
		params: []Parameter{
			{"Easting at false origin", 0}, {"Northing at false origin", 0},
			{"Longitude of false origin", 0}, {"Latitude of false origin", 0},
			{"Latitude of 1st standard parallel", -20},
			{"Latitude of 2nd standard parallel", 20},
		},
	},
	{
		baseID: 75, name: "Lambert Azimuthal Equal Area",
		method: "Lambert Azimuthal Equal Area", sphereMethod: "Lambert Azimuthal Equal Area (Spherical)",
		params: []Parameter{
			{"False easting", 0}, {"False northing", 0},
			{"Longitude of natural origin", 0},
			{"Latitude of natural origin", 90},
		},
		// The spherical variant is centered on the equator, not the pole.
		sphereParams: []Parameter{
			{"False easting", 0}, {"False northing", 0},
			{"Longitude of natural origin", 0},
			{"Latitude of natural origin", 0},
		},
	},
	{
		baseID: 80, name: "Albers Equal Area", method: "Albers Equal Area",
		params: []Parameter{
			{"Easting at false origin", 0}, {"Northing at false origin", 0},
			{"Longitude of false origin", 0}, {"Latitude of false origin", 40},
			{"Latitude of 1st standard parallel", 60},
			{"Latitude of 2nd standard parallel", 20},
		},
	},
}

var kinds = []DatumKind{KindSphere, KindOgraphic, KindOcentric, KindTriaxialOgraphic, KindTriaxialOcentric}

// Catalog returns the fixed IAU projection catalog: every conversion family
// expanded for all datum kinds, conversion ids 10 through 84. The returned
// slice is freshly allocated; callers may filter it freely.
func Catalog() []Conversion {
	out := make([]Conversion, 0, len(families)*len(kinds))
	for _, f := range families {
		for i, k := range kinds {
			method := f.method
			params := f.params
			if k == KindSphere {
				if f.sphereMethod != "" {
					method = f.sphereMethod
				}
				if f.sphereParams != nil {
					params = f.sphereParams
				}
			}
			out = append(out, Conversion{
				ID:         f.baseID + i,
				Kind:       k,
				Name:       f.name,
				Method:     method,
				Parameters: params,
			})
		}
	}
	return out
}
