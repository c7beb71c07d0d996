// Package csvdata loads body parameter records from the IAU working group
// CSV table (naifcodes_radii_m_wAsteroids_IAU2015.csv layout). Columns are
// resolved by header name, so column order in the table does not matter.
package csvdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pspoerri/planetwkt/internal/body"
)

// Column names of the IAU table.
const (
	colNaifID     = "Naif_id"
	colBody       = "Body"
	colMean       = "IAU2015_Mean"
	colSemiMajor  = "IAU2015_Semimajor"
	colAxisB      = "IAU2015_Axisb"
	colSemiMinor  = "IAU2015_Semiminor"
	colRotation   = "rotation"
	colOriginName = "origin_long_name"
	colOriginPos  = "origin_lon_pos"
)

// undefined is the table's sentinel for a value the report does not define.
const undefined = -1

// Load reads the IAU body parameter table. Records with any undefined
// radius are skipped, matching the upstream table semantics: such bodies
// have no published shape model. Column values are validated numerically;
// a malformed cell aborts the load with row context.
func Load(r io.Reader) ([]body.Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colNaifID, colBody, colSemiMajor, colAxisB, colSemiMinor} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var records []body.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rec, skip, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if skip {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string, cols map[string]int) (body.Record, bool, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	num := func(name string) (float64, error) {
		s := field(name)
		if s == "" {
			return undefined, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("column %s: invalid number %q", name, s)
		}
		return v, nil
	}

	name := field(colBody)
	naif, err := strconv.Atoi(field(colNaifID))
	if err != nil {
		return body.Record{}, false, fmt.Errorf("body %q: invalid NAIF id %q", name, field(colNaifID))
	}

	a, err := num(colSemiMajor)
	if err != nil {
		return body.Record{}, false, fmt.Errorf("body %q: %w", name, err)
	}
	b, err := num(colAxisB)
	if err != nil {
		return body.Record{}, false, fmt.Errorf("body %q: %w", name, err)
	}
	c, err := num(colSemiMinor)
	if err != nil {
		return body.Record{}, false, fmt.Errorf("body %q: %w", name, err)
	}
	if a == undefined || b == undefined || c == undefined {
		return body.Record{}, true, nil
	}
	mean, err := num(colMean)
	if err != nil {
		return body.Record{}, false, fmt.Errorf("body %q: %w", name, err)
	}
	if mean == undefined {
		mean = 0
	}

	var rot body.Rotation
	switch field(colRotation) {
	case "Direct":
		rot = body.Direct
	case "Retrograde":
		rot = body.Retrograde
	case "":
		rot = body.RotationUnknown
	default:
		return body.Record{}, false, fmt.Errorf("body %q: unknown rotation %q", name, field(colRotation))
	}

	originName := field(colOriginName)
	if originName == "" {
		originName = "Reference_Meridian"
	}
	originValue := 0.0
	if s := field(colOriginPos); s != "" {
		originValue, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return body.Record{}, false, fmt.Errorf("body %q: invalid origin longitude %q", name, s)
		}
	}

	return body.Record{
		NaifID:      naif,
		Name:        name,
		SemiMajor:   a,
		AxisB:       b,
		SemiMinor:   c,
		Mean:        mean,
		Rotation:    rot,
		OriginName:  originName,
		OriginValue: originValue,
	}, false, nil
}
