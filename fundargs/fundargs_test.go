package fundargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReference(t *testing.T) {
	// SOFA t_sofa_c, t = 0.8 centuries
	const tc = 0.8
	tests := []struct {
		name string
		fn   func(float64) float64
		want float64
	}{
		{"L", L, 5.132369751108684150},
		{"Lp", Lp, 6.226797973505507345},
		{"F", F, 0.2597711366745499518},
		{"D", D, 1.946709205396925672},
		{"Om", Om, -5.973618440951302183},
		{"Me", Me, 5.417338184297289661},
		{"Ve", Ve, 3.424900460533758000},
		{"E", E, 1.744713738913081846},
		{"Ma", Ma, 3.275506840277781492},
		{"Ju", Ju, 5.275711665202481138},
		{"Sa", Sa, 5.371574539440827046},
		{"Ur", Ur, 5.180636450180413523},
		{"Ne", Ne, 2.079343830860413523},
		{"Pa", Pa, 0.1950884762240000000e-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.fn(tc), 1e-12)
		})
	}
}

func TestArguments(t *testing.T) {
	a := Arguments(0.8)
	assert.Equal(t, L(0.8), a.L)
	assert.Equal(t, Lp(0.8), a.Lp)
	assert.Equal(t, F(0.8), a.F)
	assert.Equal(t, D(0.8), a.D)
	assert.Equal(t, Om(0.8), a.Om)
}

func TestLinear(t *testing.T) {
	// the truncated arguments stay within a few arcseconds of the full
	// polynomials over a century
	for _, tc := range []float64{-1, -0.3, 0, 0.25, 1} {
		full := Arguments(tc)
		lin := Linear(tc)
		const tol = 40 * 4.848136811095359935899141e-6
		assert.InDelta(t, full.L, lin.L, tol)
		assert.InDelta(t, full.Lp, lin.Lp, tol)
		assert.InDelta(t, full.F, lin.F, tol)
		assert.InDelta(t, full.D, lin.D, tol)
		assert.InDelta(t, full.Om, lin.Om, tol)
	}
}

func TestEpoch(t *testing.T) {
	// at J2000 the arguments reduce to their constant terms
	assert.InDelta(t, 485868.249036*4.848136811095359935899141e-6, L(0), 1e-15)
	assert.InDelta(t, 1.753470314, E(0), 1e-15)
	assert.Zero(t, Pa(0))
}
