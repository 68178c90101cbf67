package ellipsoid

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/skyframe/vecmat"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		a, f float64
		err  error
	}{
		{"wgs84", WGS84.A, WGS84.F, nil},
		{"sphere", 1, 0, nil},
		{"negative flattening", 1, -0.1, ErrInvalidFlattening},
		{"flat", 1, 1, ErrInvalidFlattening},
		{"zero radius", 0, 0.003, ErrInvalidRadius},
		{"negative radius", -1, 0.003, ErrInvalidRadius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.a, tt.f)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				_, err = NewConverter(Ellipsoid{A: tt.a, F: tt.f})
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Ellipsoid{A: tt.a, F: tt.f}, e)

			c, err := NewConverter(e)
			require.NoError(t, err)
			assert.Equal(t, e, c.Ellipsoid())
		})
	}
}

func TestToGeodetic(t *testing.T) {
	// SOFA t_sofa_c gc2gde case
	c, err := NewConverter(Ellipsoid{A: 6378136.0, F: 0.0033528})
	require.NoError(t, err)

	g := c.ToGeodetic(vecmat.Vec3{2e6, 3e6, 5.244e6})
	assert.InDelta(t, 0.9827937232473290680, g.Longitude, 1e-14)
	assert.InDelta(t, 0.9716018377570411532, g.Latitude, 1e-14)
	assert.InDelta(t, 332.36862495764397, g.Height, 1e-6)
}

func TestToGeocentric(t *testing.T) {
	// SOFA t_sofa_c gd2gce case
	c, err := NewConverter(WGS84)
	require.NoError(t, err)

	xyz, err := c.ToGeocentric(Geodetic{Longitude: 3.1, Latitude: -0.5, Height: 2500.0})
	require.NoError(t, err)
	assert.InDelta(t, -5599000.5577049947, xyz[0], 1e-7)
	assert.InDelta(t, 233011.67223479203, xyz[1], 1e-7)
	assert.InDelta(t, -3040909.4706983363, xyz[2], 1e-7)
}

func TestPoles(t *testing.T) {
	c, err := NewConverter(WGS84)
	require.NoError(t, err)
	b := WGS84.A * (1 - WGS84.F)

	north := c.ToGeodetic(vecmat.Vec3{0, 0, b + 100})
	assert.Zero(t, north.Longitude)
	assert.Equal(t, math.Pi/2, north.Latitude)
	assert.InDelta(t, 100, north.Height, 1e-6)

	south := c.ToGeodetic(vecmat.Vec3{0, 0, -b + 10})
	assert.Equal(t, -math.Pi/2, south.Latitude)
	assert.InDelta(t, -10, south.Height, 1e-6)
}

func TestRoundTrip(t *testing.T) {
	c, err := NewConverter(WGS84)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(84))
	for n := 0; n < 1000; n++ {
		g := Geodetic{
			Longitude: (-180 + 360*rng.Float64()) * vecmat.Degree,
			Latitude:  (-90 + 180*rng.Float64()) * vecmat.Degree,
			Height:    10000 * rng.Float64(),
		}

		xyz, err := c.ToGeocentric(g)
		require.NoError(t, err)
		back := c.ToGeodetic(xyz)

		e := math.Abs(g.Longitude-back.Longitude) +
			math.Abs(g.Latitude-back.Latitude) +
			math.Abs(g.Height-back.Height)
		require.Lessf(t, e, 1.5e-8, "%s -> %v -> %s", g, xyz, back)
	}
}

func TestZenith(t *testing.T) {
	g := Geodetic360{Longitude: 90, Latitude: 0}.Radians()
	z := g.Zenith()
	assert.InDelta(t, 0, z[0], 1e-15)
	assert.InDelta(t, 1, z[1], 1e-15)
	assert.InDelta(t, 0, z[2], 1e-15)

	g = Geodetic360{Longitude: 12, Latitude: 45}.Radians()
	assert.InDelta(t, 1, g.Zenith().Norm(), 1e-15)
}

func TestDegrees(t *testing.T) {
	tests := []struct {
		name string
		in   Geodetic
		want Geodetic360
	}{
		{"east", Geodetic{Longitude: 10 * vecmat.Degree, Latitude: 45 * vecmat.Degree}, Geodetic360{Longitude: 10, Latitude: 45}},
		{"west", Geodetic{Longitude: -75 * vecmat.Degree, Latitude: -33 * vecmat.Degree, Height: 5}, Geodetic360{Longitude: -75, Latitude: -33, Height: 5}},
		{"wrapped", Geodetic{Longitude: 270 * vecmat.Degree}, Geodetic360{Longitude: -90}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Degrees()
			assert.InDelta(t, tt.want.Longitude, got.Longitude, 1e-12)
			assert.InDelta(t, tt.want.Latitude, got.Latitude, 1e-12)
			assert.Equal(t, tt.want.Height, got.Height)

			back := got.Radians()
			assert.InDelta(t, math.Remainder(tt.in.Longitude-back.Longitude, vecmat.TwoPi), 0, 1e-12)
		})
	}
}

func TestString(t *testing.T) {
	g := Geodetic{
		Longitude: 123.456789 * vecmat.Degree,
		Latitude:  22.654321 * vecmat.Degree,
		Height:    33333.333,
	}
	assert.Equal(t, "+22.654321,+123.456789,+33333.33", g.String())
}
