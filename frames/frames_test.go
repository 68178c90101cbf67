package frames

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/skyframe/earth"
	"github.com/subtlepseudonym/skyframe/timescale"
	"github.com/subtlepseudonym/skyframe/vecmat"
)

const epsilon = 0x1p-52

func assertMat(t *testing.T, want, got vecmat.Mat3, tol float64, name string) {
	t.Helper()
	for i := range want {
		for j := range want[i] {
			assert.InDeltaf(t, want[i][j], got[i][j], tol, "%s[%d][%d]", name, i, j)
		}
	}
}

func assertOrthonormal(t *testing.T, m vecmat.Mat3, name string) {
	t.Helper()
	assertMat(t, vecmat.Identity(), m.Compose(m.Transpose()), 1e-14, name)
}

// The reference values below come from the SOFA t_sofa_c validation
// program unless marked otherwise.

func TestNutation(t *testing.T) {
	dpsi, deps := Nutation(timescale.TT{D1: 2400000.5, D2: 53736})
	assert.InDelta(t, -0.9632552291148362783e-5, dpsi, 1e-13)
	assert.InDelta(t, 0.4063197106621159367e-4, deps, 1e-13)
}

func TestNutationBounded(t *testing.T) {
	// 17.2 and 9.2 arcseconds lead the two series
	for d := -36525.0; d <= 36525; d += 97.3 {
		dpsi, deps := Nutation(timescale.TT{D1: timescale.J2000, D2: d})
		assert.Less(t, math.Abs(dpsi), 20*vecmat.ArcsecToRad)
		assert.Less(t, math.Abs(deps), 11*vecmat.ArcsecToRad)
	}
}

func TestPrecessionRate(t *testing.T) {
	dpsipr, depspr := PrecessionRate(timescale.TT{D1: 2400000.5, D2: 53736})
	assert.InDelta(t, -0.8716465172668347629e-7, dpsipr, 1e-20)
	assert.InDelta(t, -0.7342018386722813087e-8, depspr, 1e-20)
}

func TestMeanObliquity(t *testing.T) {
	got := MeanObliquity(timescale.TT{D1: 2400000.5, D2: 54388})
	assert.InDelta(t, 0.4090751347643816218, got, 1e-14)
}

func TestFrameBias(t *testing.T) {
	dpsibi, depsbi, dra := FrameBias()
	assert.InDelta(t, -0.2025309152835086613e-6, dpsibi, 1e-12)
	assert.InDelta(t, -0.3306041454222147847e-7, depsbi, 1e-12)
	assert.InDelta(t, -0.7078279744199225506e-7, dra, 1e-12)
}

func TestBiasAndPrecession(t *testing.T) {
	rb, rp, rbp := BiasAndPrecession(timescale.TT{D1: 2400000.5, D2: 50123.9999})

	assertMat(t, vecmat.Mat3{
		{0.9999999999999942498, -0.7078279744199196626e-7, 0.8056217146976134152e-7},
		{0.7078279477857337206e-7, 0.9999999999999969484, 0.3306041454222136517e-7},
		{-0.8056217380986972157e-7, -0.3306040883980552500e-7, 0.9999999999999962084},
	}, rb, 1e-12, "rb")

	assertMat(t, vecmat.Mat3{
		{0.9999995504864048241, 0.8696113836207084411e-3, 0.3778928813389333402e-3},
		{-0.8696113818227265968e-3, 0.9999996218879365258, -0.1690679263009242066e-6},
		{-0.3778928854764695214e-3, -0.1595521004195286491e-6, 0.9999999285984682756},
	}, rp, 1e-12, "rp")

	assertMat(t, vecmat.Mat3{
		{0.9999995505175087260, 0.8695405883617884705e-3, 0.3779734722239007105e-3},
		{-0.8695405990410863719e-3, 0.9999996219494925900, -0.1360775820404982209e-6},
		{-0.3779734476558184991e-3, -0.1925857585832024058e-6, 0.9999999285680153377},
	}, rbp, 1e-12, "rbp")

	assertOrthonormal(t, rbp, "rbp")
}

func TestNutationMatrix(t *testing.T) {
	got := NutationMatrix(0.4090789763356509900, -0.9630909107115582393e-5, 0.4063197106621141e-4)
	assertMat(t, vecmat.Mat3{
		{0.9999999999536227949, 0.8836239320236250577e-5, 0.3830833447458251908e-5},
		{-0.8836083657016688588e-5, 0.9999999991354654959, -0.4063198798559591654e-4},
		{-0.3831192481833385226e-5, 0.4063195412258168380e-4, 0.9999999991671806225},
	}, got, 1e-12, "rn")

	// no nutation, no rotation
	assertMat(t, vecmat.Identity(), NutationMatrix(0.409, 0, 0), epsilon, "rn0")
}

func TestPrecessionNutation(t *testing.T) {
	tt := timescale.TT{D1: 2400000.5, D2: 50123.9999}
	pn := NewPrecessionNutation(tt)

	dpsi, deps := Nutation(tt)
	assert.Equal(t, dpsi, pn.Dpsi)
	assert.Equal(t, deps, pn.Deps)

	_, depspr := PrecessionRate(tt)
	assert.Equal(t, MeanObliquity(tt)+depspr, pn.Epsa)
	assert.Equal(t, NutationMatrix(pn.Epsa, dpsi, deps), pn.RN)
	assert.Equal(t, pn.RN.Compose(pn.RBP), pn.RBPN)
	assert.Equal(t, pn.RBPN, PrecessionNutationMatrix(tt))
	assertOrthonormal(t, pn.RBPN, "rbpn")

	// regression value from the chain above
	assertMat(t, vecmat.Mat3{
		{0.999999583277621, 0.0008372401264429648, 0.00036396916814502694},
		{-0.0008372552234147129, 0.9999996486477685, 4.1328321909421944e-05},
		{-0.0003639344385341863, -4.1633039774223634e-05, 0.999999932909205},
	}, pn.RBPN, 1e-12, "rbpn")
}

func TestPrecessionNutationWith(t *testing.T) {
	tt := timescale.TT{D1: 2400000.5, D2: 53736}
	pn := PrecessionNutationWith(tt, 0, 0)

	// without nutation the chain reduces to bias and precession
	assertMat(t, pn.RBP, pn.RBPN, 1e-15, "rbpn")
}

func TestCIOLocator(t *testing.T) {
	assert.Zero(t, CIOLocator(timescale.TT{D1: 2400000.5, D2: 53736}, 0.5791308486706011000e-3, 0.4020579816732961219e-4))
}

func TestCelestialToIntermediateXYS(t *testing.T) {
	const x, y, s = 0.5791308486706011000e-3, 0.4020579816732961219e-4, -0.1220040848472271978e-7
	got := CelestialToIntermediateXYS(x, y, s)
	assertOrthonormal(t, got, "rc2i")

	// the CIP lands on the pole of the intermediate system
	cip := vecmat.Vec3{x, y, math.Sqrt(1 - x*x - y*y)}
	pole := got.Apply(cip)
	assert.InDelta(t, 0, pole[0], 1e-15)
	assert.InDelta(t, 0, pole[1], 1e-15)
	assert.InDelta(t, 1, pole[2], 1e-15)

	// s is a final rotation about the pole
	assertMat(t, vecmat.Rotation(vecmat.AxisZ, -s).Compose(CelestialToIntermediateXYS(x, y, 0)), got, 1e-15, "s")

	// the pole itself
	assertMat(t, vecmat.Identity(), CelestialToIntermediateXYS(0, 0, 0), epsilon, "pole")
}

func TestCelestialToIntermediate(t *testing.T) {
	// SOFA c2i00b, which includes a CIO locator of about -1.2e-8 rad
	got := CelestialToIntermediate(timescale.TT{D1: 2400000.5, D2: 53736})
	assertMat(t, vecmat.Mat3{
		{0.9999998323040954356, 0.5581526349131823372e-9, -0.5791308477073443415e-3},
		{-0.2384266227870752452e-7, 0.9999999991917405258, -0.4020594955028209745e-4},
		{0.5791308472168152904e-3, 0.4020595661591500259e-4, 0.9999998314958529887},
	}, got, 2e-8, "rc2i")

	// the third row is the CIP unit vector, untouched by s
	x, y := CIPXY(PrecessionNutationMatrix(timescale.TT{D1: 2400000.5, D2: 53736}))
	assert.InDelta(t, x, got[2][0], 1e-15)
	assert.InDelta(t, y, got[2][1], 1e-15)
	assert.InDelta(t, 0.5791308472168152904e-3, got[2][0], 1e-9)
	assert.InDelta(t, 0.4020595661591500259e-4, got[2][1], 1e-9)
}

func TestCelestialToTerrestrialCIO(t *testing.T) {
	rc2i := vecmat.Rotation(vecmat.AxisX, 1e-4)
	rpom := earth.PolarMotion(2e-7, 1e-6, 0)
	got := CelestialToTerrestrialCIO(rc2i, 1.5, rpom)

	want := rpom.Compose(vecmat.Rotation(vecmat.AxisZ, 1.5).Compose(rc2i))
	assertMat(t, want, got, 1e-15, "rc2t")
}

func TestCelestialToTerrestrial(t *testing.T) {
	tt := timescale.TT{D1: 2400000.5, D2: 53736.0}
	ut1 := timescale.UT1{D1: 2400000.5, D2: 53736.0}
	const xp, yp = 2.55060238e-7, 1.860359247e-6

	got := CelestialToTerrestrial(tt, ut1, xp, yp)
	assertOrthonormal(t, got, "rc2t")

	want := CelestialToTerrestrialCIO(
		CelestialToIntermediate(tt),
		earth.RotationAngle(ut1),
		earth.PolarMotion(xp, yp, 0),
	)
	assert.Equal(t, want, got)

	// regression value from the chain above
	assertMat(t, vecmat.Mat3{
		{-0.1810332008452779, 0.9834769829000426, 6.555564378694898e-05},
		{-0.9834768156201991, -0.18103320837970815, 0.0005749793929996925},
		{0.0005773467471791841, 3.961790413728865e-05, 0.9999998325505636},
	}, got, 1e-12, "rc2t")
}

func TestCelestialPoleStaysNearZenithOfNorthPole(t *testing.T) {
	// the GCRS pole lands within the precession cone of the ITRS pole
	for d := -7300.0; d <= 7300; d += 365 {
		tt := timescale.TT{D1: timescale.J2000, D2: d}
		ut1 := timescale.UT1{D1: timescale.J2000, D2: d}
		m := CelestialToTerrestrial(tt, ut1, 0, 0)
		pole := m.Apply(vecmat.Vec3{0, 0, 1})
		require.Less(t, pole.Angle(vecmat.Vec3{0, 0, 1}), 0.01, "day %f", d)
	}
}
