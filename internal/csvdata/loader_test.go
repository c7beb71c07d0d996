package csvdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pspoerri/planetwkt/internal/body"
)

const header = "Naif_id,Body,IAU2015_Mean,IAU2015_Semimajor,IAU2015_Axisb,IAU2015_Semiminor,rotation,origin_long_name,origin_lon_pos\n"

func TestLoad(t *testing.T) {
	input := header +
		"499,Mars,3389500,3396190,3396190,3376200,Direct,Airy-0,0\n" +
		"301,Moon,1737400,1737400,1737400,1737400,Direct,,\n" +
		"401,Phobos,-1,13000,11400,9100,Direct,,\n"

	records, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)

	mars := records[0]
	assert.Equal(t, 499, mars.NaifID)
	assert.Equal(t, "Mars", mars.Name)
	assert.Equal(t, 3396190.0, mars.SemiMajor)
	assert.Equal(t, 3396190.0, mars.AxisB)
	assert.Equal(t, 3376200.0, mars.SemiMinor)
	assert.Equal(t, 3389500.0, mars.Mean)
	assert.Equal(t, body.Direct, mars.Rotation)
	assert.Equal(t, "Airy-0", mars.OriginName)

	// Blank origin falls back to the conventional reference meridian.
	moon := records[1]
	assert.Equal(t, "Reference_Meridian", moon.OriginName)
	assert.Equal(t, 0.0, moon.OriginValue)

	// Undefined mean radius is surfaced as zero, not the -1 sentinel.
	phobos := records[2]
	assert.Equal(t, 0.0, phobos.Mean)
}

func TestLoadSkipsUndefinedRadii(t *testing.T) {
	input := header +
		"514,Thebe,49300,58000,49000,42000,Direct,,\n" +
		"515,Adrastea,8200,10000,8000,-1,Direct,,\n" +
		"516,Metis,21500,30000,-1,-1,Direct,,\n"

	records, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Thebe", records[0].Name)
}

func TestLoadColumnOrderIndependent(t *testing.T) {
	input := "Body,Naif_id,IAU2015_Semiminor,IAU2015_Axisb,IAU2015_Semimajor,IAU2015_Mean,rotation\n" +
		"Mars,499,3376200,3396190,3396190,3389500,Direct\n"

	records, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 3396190.0, records[0].SemiMajor)
	assert.Equal(t, 3376200.0, records[0].SemiMinor)
}

func TestLoadRotation(t *testing.T) {
	input := header +
		"299,Venus,6051800,6051800,6051800,6051800,Retrograde,,\n" +
		"1000041,Hartley 2,580,580,580,580,,,\n"

	records, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, body.Retrograde, records[0].Rotation)
	assert.Equal(t, body.RotationUnknown, records[1].Rotation)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "missing column",
			input: "Naif_id,Body\n499,Mars\n",
			want:  "missing column",
		},
		{
			name:  "bad naif id",
			input: header + "abc,Mars,3389500,3396190,3396190,3376200,Direct,,\n",
			want:  "invalid NAIF id",
		},
		{
			name:  "bad radius",
			input: header + "499,Mars,3389500,huge,3396190,3376200,Direct,,\n",
			want:  "invalid number",
		},
		{
			name:  "bad rotation",
			input: header + "499,Mars,3389500,3396190,3396190,3376200,Sideways,,\n",
			want:  "unknown rotation",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
