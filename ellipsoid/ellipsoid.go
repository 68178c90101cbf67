// Package ellipsoid converts between geodetic and geocentric coordinates on
// a reference ellipsoid.
package ellipsoid

import (
	"errors"
	"fmt"
	"math"

	"github.com/subtlepseudonym/skyframe/vecmat"
)

var (
	ErrInvalidRadius     = errors.New("invalid radius")
	ErrInvalidFlattening = errors.New("invalid flattening")
	ErrBadEccentricity   = errors.New("could not compute eccentricity")
	ErrBadCoordinates    = errors.New("bad coordinates")
)

// Ellipsoid is described by its equatorial radius A in metres and its
// flattening F.
type Ellipsoid struct {
	A float64
	F float64
}

// WGS84 is the World Geodetic System 1984 ellipsoid.
var WGS84 = Ellipsoid{A: 6378137.0, F: 1 / 298.257223563}

func New(a, f float64) (Ellipsoid, error) {
	e := Ellipsoid{A: a, F: f}
	if err := e.Validate(); err != nil {
		return Ellipsoid{}, err
	}
	return e, nil
}

func (e Ellipsoid) Validate() error {
	if e.F < 0 || e.F >= 1 {
		return fmt.Errorf("%w: %g", ErrInvalidFlattening, e.F)
	}
	if e.A <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidRadius, e.A)
	}
	return nil
}

// Geodetic is a point in geodetic coordinates.
type Geodetic struct {
	Longitude float64 // radians, east positive
	Latitude  float64 // radians
	Height    float64 // metres above the ellipsoid
}

// Zenith returns the unit vector along the ellipsoid normal at g, in
// geocentric axes.
func (g Geodetic) Zenith() vecmat.Vec3 {
	cp := math.Cos(g.Latitude)
	return vecmat.Vec3{
		cp * math.Cos(g.Longitude),
		cp * math.Sin(g.Longitude),
		math.Sin(g.Latitude),
	}
}

// Degrees converts to degrees, bringing the longitude into [-180, 180).
func (g Geodetic) Degrees() Geodetic360 {
	return Geodetic360{
		Longitude: wrap(g.Longitude/vecmat.Degree+180, 360) - 180,
		Latitude:  g.Latitude / vecmat.Degree,
		Height:    g.Height,
	}
}

func (g Geodetic) String() string {
	return g.Degrees().String()
}

// Geodetic360 is a geodetic point with angles in degrees, the form
// locations are configured in.
type Geodetic360 struct {
	Longitude float64 `json:"longitude" mapstructure:"longitude"`
	Latitude  float64 `json:"latitude" mapstructure:"latitude"`
	Height    float64 `json:"height" mapstructure:"height"`
}

func (g Geodetic360) Radians() Geodetic {
	return Geodetic{
		Longitude: g.Longitude * vecmat.Degree,
		Latitude:  g.Latitude * vecmat.Degree,
		Height:    g.Height,
	}
}

// String formats as latitude,longitude,height, e.g.
// +22.654321,+123.456789,+33333.33
func (g Geodetic360) String() string {
	return fmt.Sprintf("%+010.6f,%+011.6f,%+09.2f", g.Latitude, g.Longitude, g.Height)
}

// wrap reduces x into [0, n).
func wrap(x, n float64) float64 {
	m := math.Mod(x, n)
	if m < 0 {
		m += n
	}
	return m
}

// Converter holds the quantities derived from an ellipsoid that both
// conversions need.
type Converter struct {
	el    Ellipsoid
	aeps2 float64
	e2    float64
	e4t   float64
	ec2   float64
	ec    float64
	b     float64
}

func NewConverter(e Ellipsoid) (*Converter, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	e2 := (2 - e.F) * e.F
	ec2 := 1 - e2
	if ec2 <= 0 {
		return nil, fmt.Errorf("%w: 1-e^2 = %g", ErrBadEccentricity, ec2)
	}
	ec := math.Sqrt(ec2)

	return &Converter{
		el:    e,
		aeps2: e.A * e.A * 1e-32,
		e2:    e2,
		e4t:   e2 * e2 * 1.5,
		ec2:   ec2,
		ec:    ec,
		b:     e.A * ec,
	}, nil
}

func (c *Converter) Ellipsoid() Ellipsoid {
	return c.el
}

// ToGeodetic transforms geocentric coordinates in metres to geodetic ones
// using Fukushima's method (2006). Points on the polar axis get zero
// longitude.
func (c *Converter) ToGeodetic(xyz vecmat.Vec3) Geodetic {
	a := c.el.A
	x, y, z := xyz[0], xyz[1], xyz[2]

	p2 := x*x + y*y
	var elong float64
	if p2 > 0 {
		elong = math.Atan2(y, x)
	}

	absz := math.Abs(z)

	var phi, height float64
	if p2 > c.aeps2 {
		p := math.Sqrt(p2)
		s0 := absz / a
		pn := p / a
		zc := c.ec * s0

		// prepare Newton correction factors
		c0 := c.ec * pn
		c02 := c0 * c0
		c03 := c02 * c0
		s02 := s0 * s0
		s03 := s02 * s0
		a02 := c02 + s02
		a0 := math.Sqrt(a02)
		a03 := a02 * a0
		d0 := zc*a03 + c.e2*s03
		f0 := pn*a03 - c.e2*c03

		// one Halley step
		b0 := c.e4t * s02 * c02 * pn * (a0 - c.ec)
		s1 := d0*f0 - b0*s0
		cc := c.ec * (f0*f0 - b0*c0)

		phi = math.Atan(s1 / cc)
		s12 := s1 * s1
		cc2 := cc * cc
		height = (p*cc + absz*s1 - a*math.Sqrt(c.ec2*s12+cc2)) / math.Sqrt(s12+cc2)
	} else {
		// pole
		phi = math.Pi / 2
		height = absz - c.b
	}

	if z < 0 {
		phi = -phi
	}

	return Geodetic{Longitude: elong, Latitude: phi, Height: height}
}

// ToGeocentric transforms geodetic coordinates to geocentric ones in
// metres.
func (c *Converter) ToGeocentric(g Geodetic) (vecmat.Vec3, error) {
	sp := math.Sin(g.Latitude)
	cp := math.Cos(g.Latitude)
	w := 1 - c.el.F
	w = w * w
	d := cp*cp + w*sp*sp
	if d <= 0 {
		return vecmat.Vec3{}, fmt.Errorf("%w: latitude %g", ErrBadCoordinates, g.Latitude)
	}

	ac := c.el.A / math.Sqrt(d)
	r := (ac + g.Height) * cp
	return vecmat.Vec3{
		r * math.Cos(g.Longitude),
		r * math.Sin(g.Longitude),
		(w*ac + g.Height) * sp,
	}, nil
}
