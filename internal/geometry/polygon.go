package geometry

import (
	"math"
	"sort"

	"github.com/alexiusacademia/asdesign/internal/shape"
)

// solvePolygon computes properties of a custom section from its vertices.
// Vertices describe a simple polygon without holes, in either winding.
func (s *Section) solvePolygon(j, iw float64) error {
	if len(s.Vertices) < 3 {
		return invalid(s.Name, "custom section must have at least 3 vertices")
	}
	area, cx, cy := areaAndCentroid(s.Vertices)
	if area <= 0 {
		return invalid(s.Name, "custom section has zero area")
	}

	minX, maxX, minY, maxY := bounds(s.Vertices)
	ixo, iyo := secondMomentsAboutOrigin(s.Vertices)

	p := shape.Properties{
		Area: area,
		Ix:   ixo - area*cy*cy,
		Iy:   iyo - area*cx*cx,
		Xc:   cx,
		Yc:   cy,
		XMax: math.Max(maxX-cx, cx-minX),
		YMax: math.Max(maxY-cy, cy-minY),
	}
	p.Sx = plasticModulus(s.Vertices, minY, maxY, area)
	p.Sy = plasticModulus(transpose(s.Vertices), minX, maxX, area)

	// Saint-Venant approximation for solid sections unless supplied
	p.J = j
	if p.J <= 0 {
		p.J = math.Pow(area, 4) / (4 * math.Pi * math.Pi * (p.Ix + p.Iy))
	}
	p.Iw = iw
	s.apply(p)

	s.D, s.B = maxY-minY, maxX-minX
	return nil
}

// areaAndCentroid uses the shoelace formula
func areaAndCentroid(vs []Point) (area, cx, cy float64) {
	n := len(vs)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := vs[i].X*vs[j].Y - vs[j].X*vs[i].Y
		signedArea += cross
		sumX += (vs[i].X + vs[j].X) * cross
		sumY += (vs[i].Y + vs[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// secondMomentsAboutOrigin returns Ix and Iy about the coordinate axes
func secondMomentsAboutOrigin(vs []Point) (ix, iy float64) {
	n := len(vs)
	var signed float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := vs[i].X*vs[j].Y - vs[j].X*vs[i].Y
		signed += cross
		ix += cross * (vs[i].Y*vs[i].Y + vs[i].Y*vs[j].Y + vs[j].Y*vs[j].Y)
		iy += cross * (vs[i].X*vs[i].X + vs[i].X*vs[j].X + vs[j].X*vs[j].X)
	}
	ix /= 12
	iy /= 12
	if signed < 0 {
		ix, iy = -ix, -iy
	}
	return ix, iy
}

func bounds(vs []Point) (minX, maxX, minY, maxY float64) {
	minX, maxX = vs[0].X, vs[0].X
	minY, maxY = vs[0].Y, vs[0].Y
	for _, v := range vs {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return minX, maxX, minY, maxY
}

func transpose(vs []Point) []Point {
	out := make([]Point, len(vs))
	for i, v := range vs {
		out[i] = Point{X: v.Y, Y: v.X}
	}
	return out
}

// clipAbove returns the part of the polygon at or above y
func clipAbove(vs []Point, clipY float64) []Point {
	var result []Point

	n := len(vs)
	for i := 0; i < n; i++ {
		curr := vs[i]
		next := vs[(i+1)%n]

		currAbove := curr.Y >= clipY
		nextAbove := next.Y >= clipY

		if currAbove {
			result = append(result, curr)
		}

		if currAbove != nextAbove {
			t := (clipY - curr.Y) / (next.Y - curr.Y)
			result = append(result, Point{X: curr.X + t*(next.X-curr.X), Y: clipY})
		}
	}

	return result
}

const pnaIterations = 60

// plasticModulus locates the equal-area axis by bisection between minY and
// maxY and sums the first moments of the two halves about it
func plasticModulus(vs []Point, minY, maxY, area float64) float64 {
	lo, hi := minY, maxY
	for i := 0; i < pnaIterations; i++ {
		mid := (lo + hi) / 2
		a, _, _ := areaAndCentroid(clipAbove(vs, mid))
		if a > area/2 {
			lo = mid
		} else {
			hi = mid
		}
	}
	pna := (lo + hi) / 2

	aTop, _, cyTop := areaAndCentroid(clipAbove(vs, pna))
	aBot, _, cyBot := areaAndCentroid(clipAbove(mirrorY(vs), -pna))
	return aTop*(cyTop-pna) + aBot*(pna+cyBot)
}

// mirrorY reflects the polygon about the x axis so clipAbove selects the
// region below the unmirrored cut
func mirrorY(vs []Point) []Point {
	out := make([]Point, len(vs))
	for i, v := range vs {
		out[i] = Point{X: v.X, Y: -v.Y}
	}
	return out
}

// WidthAtY returns the total width of the polygon cut by a horizontal line at y
func (s *Section) WidthAtY(y float64) float64 {
	intersections := findIntersectionsAtY(s.Vertices, y)

	if len(intersections) < 2 {
		return 0
	}

	sort.Float64s(intersections)

	var totalWidth float64
	for i := 0; i+1 < len(intersections); i += 2 {
		totalWidth += intersections[i+1] - intersections[i]
	}

	return totalWidth
}

// findIntersectionsAtY finds all X coordinates where a horizontal line at Y intersects the polygon
func findIntersectionsAtY(vs []Point, y float64) []float64 {
	var intersections []float64
	n := len(vs)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		v1, v2 := vs[i], vs[j]

		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			intersections = append(intersections, v1.X+t*(v2.X-v1.X))
		}
	}

	return intersections
}
