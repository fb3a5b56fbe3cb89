// Package shape computes closed-form section properties for each steel and
// timber section family from its raw dimensions (mm).
package shape

import "math"

// Dims holds the raw dimensions of a section. Unused fields are zero.
type Dims struct {
	D  float64 // Overall depth (or outside diameter for CHS)
	B  float64 // Overall width
	Tf float64 // Flange thickness
	Tw float64 // Web thickness
	T  float64 // Wall thickness for hollow sections
	R1 float64 // Root radius
	Ro float64 // Outside corner radius for RHS/SHS
}

// Properties holds the derived section properties (mm based units)
type Properties struct {
	Area float64 // Gross area A_g
	Ix   float64 // Second moment of area, major axis
	Iy   float64 // Second moment of area, minor axis
	Sx   float64 // Plastic section modulus, major axis
	Sy   float64 // Plastic section modulus, minor axis
	J    float64 // Torsion constant
	Iw   float64 // Warping constant
	Xc   float64 // Centroid from the back of a channel web
	Yc   float64 // Centroid from the outside of a tee flange
	XMax float64 // Extreme fibre distance, minor axis
	YMax float64 // Extreme fibre distance, major axis
}

// Elastic section moduli from the extreme fibre distances
func (p Properties) Zx() float64 { return safeDiv(p.Ix, p.YMax) }
func (p Properties) Zy() float64 { return safeDiv(p.Iy, p.XMax) }

// Radii of gyration
func (p Properties) Rx() float64 { return math.Sqrt(safeDiv(p.Ix, p.Area)) }
func (p Properties) Ry() float64 { return math.Sqrt(safeDiv(p.Iy, p.Area)) }

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// Root fillet constants: area of one fillet is filletArea·r², its centroid
// lies filletOffset·r from the corner and its own second moment is filletI·r⁴
const (
	filletArea   = 1 - math.Pi/4
	filletOffset = 0.776
	filletI      = 0.01825
)

// ISection computes UB, UC, WB and WC properties with four root fillets.
// Welded sections have R1 = 0.
func ISection(s Dims) Properties {
	bw := s.D - 2*s.Tf
	r := s.R1
	fa := filletArea * r * r
	armX := filletOffset*r - r + s.D/2 - s.Tf
	armY := r - filletOffset*r + s.Tw/2

	p := Properties{XMax: s.B / 2, YMax: s.D / 2}
	p.Area = 2*s.B*s.Tf + s.Tw*bw + 4*fa
	p.Ix = 2*(s.B*pow3(s.Tf)/12+s.B*s.Tf*sq((s.D-s.Tf)/2)) + s.Tw*pow3(bw)/12 +
		4*(filletI*pow4(r)+fa*sq(armX))
	p.Iy = bw*pow3(s.Tw)/12 + 2*(s.Tf*pow3(s.B)/12) + 4*(filletI*pow4(r)+fa*sq(armY))
	p.Sx = 2*(s.Tw*sq(bw/2)/2+s.Tf*s.B*(s.D-s.Tf)/2) + 4*fa*armX
	p.Sy = 2*(bw*sq(s.Tw/2)/2+2*s.Tf*sq(s.B/2)/2) + 4*fa*armY
	p.Iw = p.Iy * sq(s.D-s.Tf) / 4

	// Darwish and Johnston (1965)
	d1 := (sq(s.Tf+r) + s.Tw*(r+s.Tw/4)) / (2*r + s.Tf)
	a1 := -0.042 + 0.2204*s.Tw/s.Tf + 0.1355*r/s.Tf -
		0.0865*s.Tw*r/sq(s.Tf) - 0.0725*sq(s.Tw)/sq(s.Tf)
	p.J = (2*s.B*pow3(s.Tf)+bw*pow3(s.Tw))/3 + 2*a1*pow4(d1) - 4*0.105*pow4(s.Tf)
	return p
}

// Channel computes parallel flange channel properties with two root fillets
func Channel(s Dims) Properties {
	bw := s.D - 2*s.Tf
	bf := s.B - s.Tw
	r := s.R1
	fa := filletArea * r * r
	armX := filletOffset*r - r + s.D/2 - s.Tf

	p := Properties{YMax: s.D / 2}
	p.Area = 2*s.Tf*bf + s.D*s.Tw + 2*fa
	p.Xc = (sq(s.Tw)/2*bw + 2*sq(s.B)/2*s.Tf + 2*fa*(r-filletOffset*r+s.Tw)) / p.Area
	p.XMax = math.Max(p.Xc, s.B-p.Xc)

	p.Ix = s.Tw*pow3(s.D)/12 + 2.0/12*pow3(s.Tf)*bf + s.Tf*bf*2*sq(s.D/2-s.Tf/2) +
		2*(filletI*pow4(r)+fa*sq(armX))
	p.Iy = bw*pow3(s.Tw)/12 + 2.0/12*pow3(s.B)*s.Tf +
		bw*s.Tw*sq(p.Xc-s.Tw/2) + 2*s.Tf*s.B*sq(s.B/2-p.Xc) +
		2*(filletI*pow4(r)+fa*sq(p.Xc-s.Tw-(1-filletOffset)*r))
	p.Sx = 2*(s.Tw*sq(bw/2)/2+s.Tf*s.B*(s.D/2-s.Tf/2)) + 2*fa*armX

	// Plastic neutral axis from the back of the web
	var xp float64
	if s.Tw < p.Area/(2*s.D) {
		xp = s.B - p.Area/(4*s.Tf)
	} else {
		xp = p.Area / (2 * s.D)
	}
	if xp > s.Tw {
		p.Sy = s.Tf*sq(bf)/2 + s.B*s.D*s.Tw/2 - sq(s.D)*sq(s.Tw)/8/s.Tf
	} else {
		p.Sy = (4*s.Tf*sq(s.B)*(s.D-s.Tf) + sq(s.Tw)*(sq(s.D)-4*sq(s.Tf)) - 4*s.B*s.Tf*bw*s.Tw) / (4 * s.D)
	}
	xr := (1 - filletOffset) * r
	var xf float64
	if xp > s.Tw+xr {
		xf = xp - s.Tw - xr
	} else {
		xf = s.Tw - xp + xr
	}
	p.Sy += 2 * fa * xf

	p.Iw = sq(s.D-s.Tf) / 4 * (p.Iy - p.Area*sq(p.Xc-s.Tw/2)*(sq(s.D-s.Tf)*p.Area/(4*p.Ix)-1))

	a3 := -0.0908 + 0.2621*s.Tw/s.Tf + 0.1231*r/s.Tf -
		0.0752*s.Tw*r/sq(s.Tf) - 0.0945*sq(s.Tw)/sq(s.Tf)
	d3 := 2 * ((3*r + s.Tw + s.Tf) - math.Sqrt(2*(2*r+s.Tw)*(2*r+s.Tf)))
	p.J = 2*s.B*pow3(s.Tf)/3 + bw*pow3(s.Tw)/3 + 2*a3*pow4(d3) - 2*0.105*pow4(s.Tf)
	return p
}

// Tee computes properties of a tee cut from an I-section (BT, CT)
func Tee(s Dims) Properties {
	bw := s.D - s.Tf
	r := s.R1
	fa := filletArea * r * r
	xr := (1 - filletOffset) * r

	p := Properties{XMax: s.B / 2}
	p.Area = s.B*s.Tf + s.Tw*bw + 2*fa
	p.Yc = (s.Tw*bw*(bw/2+s.Tf) + s.B*sq(s.Tf)/2 + 2*fa*(s.Tf+xr)) / p.Area
	p.YMax = math.Max(p.Yc, s.D-p.Yc)

	p.Ix = (s.B*pow3(s.Tf)+s.Tw*pow3(bw))/12 + 2*filletI*pow4(r) +
		s.B*s.Tf*sq(p.Yc-s.Tf/2) + bw*s.Tw*sq(p.Yc-(s.Tf+bw/2)) +
		2*fa*sq(p.Yc-(s.Tf+xr))
	p.Iy = bw*pow3(s.Tw)/12 + s.Tf*pow3(s.B)/12 + 2*(filletI*pow4(r)+fa*sq(r-filletOffset*r+s.Tw/2))

	if s.Tf < p.Area/(2*s.B) {
		p.Sx = s.Tw*sq(s.D-s.Tf)/4 + s.B*s.D*s.Tf/2 - sq(s.B)*sq(s.Tf)/(4*s.Tw)
	} else {
		p.Sx = s.Tw*sq(s.D)/2 + s.B*sq(s.Tf)/4 - s.D*s.Tf*s.Tw/2 - sq(s.D-s.Tf)*sq(s.Tw)/(4*s.B)
	}
	p.Sy = 2*bw*sq(s.Tw/2)/2 + 2*s.Tf*sq(s.B/2)/2 + 2*fa*(r-filletOffset*r+s.Tw/2)

	d1 := (sq(s.Tf+r) + s.Tw*(r+s.Tw/4)) / (2*r + s.Tf)
	a1 := -0.042 + 0.2204*s.Tw/s.Tf + 0.1355*r/s.Tf -
		0.0865*s.Tw*r/sq(s.Tf) - 0.0725*sq(s.Tw)/sq(s.Tf)
	p.J = s.B*pow3(s.Tf)/3 + bw/3*pow3(s.Tw) + a1*pow4(d1) - 0.105*pow4(s.Tw) - 2*0.105*pow4(s.Tf)
	return p
}

// quarterCircleI is the second moment of a quarter circle about its own centroid
const quarterCircleI = 0.05488

// RectangularHollow computes RHS and SHS properties with rounded corners of
// outside radius Ro
func RectangularHollow(s Dims) Properties {
	t, ro := s.T, s.Ro
	ri := ro - t
	cq := 4 / (3 * math.Pi)

	cornerI := func(half float64) float64 {
		outer := quarterCircleI*pow4(ro) + math.Pi*sq(ro)/4*sq(half+cq*ro-ro)
		inner := quarterCircleI*pow4(ri) + math.Pi*sq(ri)/4*sq(half-t+cq*ri-ri)
		return outer - inner
	}
	cornerS := func(half float64) float64 {
		return math.Pi*sq(ro)/4*(half+cq*ro-ro) - math.Pi*sq(ri)/4*(half-t+cq*ri-ri)
	}

	p := Properties{XMax: s.B / 2, YMax: s.D / 2}
	p.Area = 2*((s.D-2*ro)*t+(s.B-2*ro)*t) + 4*(math.Pi/4*(sq(ro)-sq(ri)))
	p.Ix = 2*(pow3(s.D-2*ro)*t/12) + 2*((s.B-2*ro)*pow3(t)/12+(s.B-2*ro)*t*sq(s.D/2-t/2)) + 4*cornerI(s.D/2)
	p.Iy = 2*((s.D-2*ro)*pow3(t)/12+(s.D-2*ro)*t*sq(s.B/2-t/2)) + 2*(pow3(s.B-2*ro)*t/12) + 4*cornerI(s.B/2)
	p.Sx = 2*(sq((s.D-2*ro)/2)*t+t*(s.B-2*ro)*(s.D-t)/2) + 4*cornerS(s.D/2)
	p.Sy = 2*(t*(s.D-2*ro)*(s.B-t)/2+t*sq(s.B/2-ro)) + 4*cornerS(s.B/2)

	rm := ro - t/2
	perim := 2*((s.D-t)+(s.B-t)) - 2*rm*(4-math.Pi)
	ap := (s.D-t)*(s.B-t) - sq(rm)*(4-math.Pi)
	p.J = 4*t*sq(ap)/perim + perim*pow3(t)/3
	return p
}

// CircularHollow computes CHS properties from outside diameter D and wall T
func CircularHollow(s Dims) Properties {
	di := s.D - 2*s.T
	p := Properties{XMax: s.D / 2, YMax: s.D / 2}
	p.Area = math.Pi * (sq(s.D/2) - sq(s.D/2-s.T))
	p.Ix = math.Pi / 64 * (pow4(s.D) - pow4(di))
	p.Iy = p.Ix
	p.Sx = (pow3(s.D) - pow3(di)) / 6
	p.Sy = p.Sx
	p.J = math.Pi * (pow4(s.D) - pow4(di)) / 32
	return p
}

// Rectangle computes a solid rectangle of depth D and breadth B. It serves
// steel plates and timber boards.
func Rectangle(s Dims) Properties {
	long, short := math.Max(s.D, s.B), math.Min(s.D, s.B)
	p := Properties{XMax: s.B / 2, YMax: s.D / 2}
	p.Area = s.D * s.B
	p.Ix = s.B * pow3(s.D) / 12
	p.Iy = s.D * pow3(s.B) / 12
	p.Sx = s.B * sq(s.D) / 4
	p.Sy = s.D * sq(s.B) / 4
	// Saint-Venant approximation for a solid rectangle
	if short > 0 {
		p.J = long * pow3(short) * (1.0/3 - 0.21*short/long*(1-pow4(short)/(12*pow4(long))))
	}
	return p
}

func sq(x float64) float64   { return x * x }
func pow3(x float64) float64 { return x * x * x }
func pow4(x float64) float64 { return x * x * x * x }
