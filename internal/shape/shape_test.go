package shape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Handbook values are rounded to three significant figures
func TestISection(t *testing.T) {
	p := ISection(Dims{D: 198, B: 99, Tf: 7, Tw: 4.5, R1: 11})
	assert.InEpsilon(t, 2320, p.Area, 0.005)
	assert.InEpsilon(t, 15.8e6, p.Ix, 0.005)
	assert.InEpsilon(t, 1.14e6, p.Iy, 0.005)
	assert.InEpsilon(t, 180e3, p.Sx, 0.005)
	assert.InEpsilon(t, 160e3, p.Zx(), 0.005)
	assert.InEpsilon(t, 82.6, p.Rx(), 0.005)
	assert.InEpsilon(t, 22.1, p.Ry(), 0.005)
	assert.InEpsilon(t, 38.6e3, p.J, 0.01)
	assert.InEpsilon(t, 10.4e9, p.Iw, 0.01)
}

func TestWeldedISection(t *testing.T) {
	p := ISection(Dims{D: 1192, B: 500, Tf: 36, Tw: 16})
	assert.InDelta(t, 53920, p.Area, 1e-6)
	assert.InEpsilon(t, 13.9e9, p.Ix, 0.005)
	assert.InEpsilon(t, 25.8e6, p.Sx, 0.005)
}

func TestChannel(t *testing.T) {
	p := Channel(Dims{D: 200, B: 75, Tf: 12, Tw: 6, R1: 12})
	assert.InEpsilon(t, 2920, p.Area, 0.005)
	assert.InEpsilon(t, 24.4, p.Xc, 0.005)
	assert.InEpsilon(t, 19.1e6, p.Ix, 0.005)
	assert.InEpsilon(t, 1.65e6, p.Iy, 0.005)
	assert.InEpsilon(t, 221e3, p.Sx, 0.005)
	assert.InEpsilon(t, 58.9e3, p.Sy, 0.005)
	assert.InEpsilon(t, 32.7e3, p.Zy(), 0.005)
	assert.InEpsilon(t, 105e3, p.J, 0.01)
	assert.InEpsilon(t, 10.6e9, p.Iw, 0.02)
	assert.Equal(t, 75-p.Xc, p.XMax)
}

func TestTee(t *testing.T) {
	p := Tee(Dims{D: 125, B: 146, Tf: 8.6, Tw: 6.1, R1: 8.9})
	assert.InEpsilon(t, 2000, p.Area, 0.01)
	assert.Greater(t, p.Yc, 8.6)
	assert.Less(t, p.Yc, 62.5)
	assert.Equal(t, 125-p.Yc, p.YMax)
	assert.Zero(t, p.Iw)
}

func TestRectangularHollow(t *testing.T) {
	p := RectangularHollow(Dims{D: 200, B: 200, T: 5, Ro: 12.5})
	assert.InEpsilon(t, 3810, p.Area, 0.005)
	assert.InEpsilon(t, 23.9e6, p.Ix, 0.005)
	assert.InDelta(t, p.Ix, p.Iy, 1e-6)
	assert.InEpsilon(t, 239e3, p.Zx(), 0.005)
	assert.InEpsilon(t, 277e3, p.Sx, 0.005)
	assert.InEpsilon(t, 79.1, p.Rx(), 0.005)
	assert.InEpsilon(t, 37.8e6, p.J, 0.01)
	assert.Zero(t, p.Iw)
}

func TestCircularHollow(t *testing.T) {
	p := CircularHollow(Dims{D: 168.3, T: 7.1})
	assert.InEpsilon(t, 3600, p.Area, 0.005)
	assert.InEpsilon(t, 11.7e6, p.Ix, 0.005)
	assert.InEpsilon(t, 139e3, p.Zx(), 0.005)
	assert.InEpsilon(t, 185e3, p.Sx, 0.005)
	assert.InDelta(t, 2*p.Ix, p.J, 1e-6)
}

func TestRectangle(t *testing.T) {
	p := Rectangle(Dims{D: 240, B: 45})
	assert.Equal(t, 10800.0, p.Area)
	assert.InDelta(t, 45*math.Pow(240, 3)/12, p.Ix, 1e-6)
	assert.InDelta(t, 45.0*240*240/6, p.Zx(), 1e-6)
	assert.InDelta(t, 1.5*p.Zx(), p.Sx, 1e-6)
	assert.Greater(t, p.J, 0.0)
}
