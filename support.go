package clipper

import "math"

// This file wires the public API in clipper.go to the sweep engine
// (Clipper64), the offsetter (ClipperOffset), and small self-contained
// geometry helpers that don't warrant their own file.

// ==============================================================================
// Validation
// ==============================================================================

func validateClipType(ct ClipType) error {
	if ct > Xor {
		return ErrInvalidClipType
	}
	return nil
}

func validateFillRule(fr FillRule) error {
	if fr > Negative {
		return ErrInvalidFillRule
	}
	return nil
}

func validateJoinType(jt JoinType) error {
	if jt > JoinMiter {
		return ErrInvalidJoinType
	}
	return nil
}

func validateEndType(et EndType) error {
	if et > EndRound {
		return ErrInvalidEndType
	}
	return nil
}

// filterValidPaths drops paths with fewer than minPts points.
func filterValidPaths(paths Paths64, minPts int) (Paths64, int) {
	if len(paths) == 0 {
		return paths, 0
	}
	out := make(Paths64, 0, len(paths))
	dropped := 0
	for _, p := range paths {
		if len(p) >= minPts {
			out = append(out, p)
		} else {
			dropped++
		}
	}
	return out, dropped
}

// ==============================================================================
// Boolean operations
// ==============================================================================

func booleanOp64Impl(clipType ClipType, fillRule FillRule, subjects, subjectsOpen, clips Paths64) (Paths64, Paths64, error) {
	c := NewClipper64()
	c.AddPaths(subjects, Subject, true)
	c.AddPaths(subjectsOpen, Subject, false)
	c.AddPaths(clips, Clip, true)

	solution, solutionOpen, ok := c.Execute(clipType, fillRule, fillRule)
	if !ok {
		return Paths64{}, Paths64{}, ErrIntersectionOrderUnresolvable
	}
	return solution, solutionOpen, nil
}

func booleanOp64TreeImpl(clipType ClipType, fillRule FillRule, subjects, clips Paths64) (*PolyTree64, Paths64, error) {
	c := NewClipper64()
	c.AddPaths(subjects, Subject, true)
	c.AddPaths(clips, Clip, true)

	tree, openPaths, ok := c.ExecuteTree(clipType, fillRule, fillRule)
	if !ok {
		return nil, nil, ErrIntersectionOrderUnresolvable
	}
	return tree, openPaths, nil
}

// ==============================================================================
// Offsetting
// ==============================================================================

func inflatePathsImpl(paths Paths64, delta float64, joinType JoinType, endType EndType, opts OffsetOptions) (Paths64, error) {
	co := NewClipperOffset(opts.MiterLimit, opts.ArcTolerance)
	co.SetPreserveCollinear(opts.PreserveCollinear)
	co.SetReverseSolution(opts.ReverseSolution)
	co.AddPaths(paths, joinType, endType)
	return co.Execute(delta)
}

// ==============================================================================
// Area / bounds
// ==============================================================================

func areaImpl(path Path64) float64 {
	if len(path) < 3 {
		return 0
	}
	return Area128(path).ToFloat64() / 2
}

func bounds64Impl(path Path64) Rect64 {
	if len(path) == 0 {
		return Rect64{}
	}
	r := Rect64{Left: path[0].X, Right: path[0].X, Top: path[0].Y, Bottom: path[0].Y}
	for _, pt := range path[1:] {
		if pt.X < r.Left {
			r.Left = pt.X
		}
		if pt.X > r.Right {
			r.Right = pt.X
		}
		if pt.Y < r.Top {
			r.Top = pt.Y
		}
		if pt.Y > r.Bottom {
			r.Bottom = pt.Y
		}
	}
	return r
}

func boundsPaths64Impl(paths Paths64) Rect64 {
	var r Rect64
	first := true
	for _, p := range paths {
		if len(p) == 0 {
			continue
		}
		pb := bounds64Impl(p)
		if first {
			r = pb
			first = false
			continue
		}
		if pb.Left < r.Left {
			r.Left = pb.Left
		}
		if pb.Right > r.Right {
			r.Right = pb.Right
		}
		if pb.Top < r.Top {
			r.Top = pb.Top
		}
		if pb.Bottom > r.Bottom {
			r.Bottom = pb.Bottom
		}
	}
	return r
}

// ==============================================================================
// Simplify (perpendicular-distance point removal)
// ==============================================================================

func simplifyPath64Impl(path Path64, epsilon float64, isClosed bool) Path64 {
	if len(path) < 3 {
		return path
	}
	keep := make([]bool, len(path))
	for i := range keep {
		keep[i] = true
	}

	changed := true
	for changed {
		changed = false
		n := len(path)
		for i := 0; i < n; i++ {
			if !keep[i] {
				continue
			}
			prev := prevKept(keep, i)
			next := nextKept(keep, i)
			if prev == i || next == i {
				continue
			}
			if !isClosed && (prev > i || next < i) {
				continue
			}
			if perpendicularDistance(path[i], path[prev], path[next]) < epsilon {
				keep[i] = false
				changed = true
			}
		}
	}

	out := make(Path64, 0, len(path))
	for i, k := range keep {
		if k {
			out = append(out, path[i])
		}
	}
	return out
}

func prevKept(keep []bool, i int) int {
	n := len(keep)
	for j := 1; j <= n; j++ {
		idx := (i - j + n) % n
		if keep[idx] {
			return idx
		}
	}
	return i
}

func nextKept(keep []bool, i int) int {
	n := len(keep)
	for j := 1; j <= n; j++ {
		idx := (i + j) % n
		if keep[idx] {
			return idx
		}
	}
	return i
}

func perpendicularDistance(p, a, b Point64) float64 {
	if a == b {
		dx, dy := float64(p.X-a.X), float64(p.Y-a.Y)
		return math.Hypot(dx, dy)
	}
	abx, aby := float64(b.X-a.X), float64(b.Y-a.Y)
	apx, apy := float64(p.X-a.X), float64(p.Y-a.Y)
	lenSq := abx*abx + aby*aby
	cross := apx*aby - apy*abx
	return math.Abs(cross) / math.Sqrt(lenSq)
}

// ==============================================================================
// Minkowski
// ==============================================================================

func minkowskiSum64Impl(pattern, path Path64, isClosed bool) (Paths64, error) {
	quads := minkowskiInternal(pattern, path, true, isClosed)
	solution, _, err := booleanOp64Impl(Union, NonZero, quads, nil, nil)
	return solution, err
}

func minkowskiDiff64Impl(pattern, path Path64, isClosed bool) (Paths64, error) {
	quads := minkowskiInternal(pattern, path, false, isClosed)
	solution, _, err := booleanOp64Impl(Union, NonZero, quads, nil, nil)
	return solution, err
}

// ==============================================================================
// Path transforms
// ==============================================================================

func translatePath64Impl(path Path64, dx, dy int64) Path64 {
	out := make(Path64, len(path))
	for i, pt := range path {
		out[i] = Point64{X: pt.X + dx, Y: pt.Y + dy}
	}
	return out
}

func translatePaths64Impl(paths Paths64, dx, dy int64) Paths64 {
	out := make(Paths64, len(paths))
	for i, p := range paths {
		out[i] = translatePath64Impl(p, dx, dy)
	}
	return out
}

func ellipse64Impl(center Point64, radiusX, radiusY float64, steps int) Path64 {
	return ellipse64(center, radiusX, radiusY, steps)
}

func scalePath64Impl(path Path64, scale float64) Path64 {
	out := make(Path64, len(path))
	for i, pt := range path {
		out[i] = Point64{X: round64(float64(pt.X) * scale), Y: round64(float64(pt.Y) * scale)}
	}
	return out
}

func rotatePath64Impl(path Path64, angleRad float64, center Point64) Path64 {
	sinA, cosA := math.Sin(angleRad), math.Cos(angleRad)
	out := make(Path64, len(path))
	for i, pt := range path {
		dx, dy := float64(pt.X-center.X), float64(pt.Y-center.Y)
		out[i] = Point64{
			X: center.X + round64(dx*cosA-dy*sinA),
			Y: center.Y + round64(dx*sinA+dy*cosA),
		}
	}
	return out
}

func starPolygon64Impl(center Point64, outerRadius, innerRadius float64, points int) Path64 {
	if points < 2 {
		points = 2
	}
	path := make(Path64, 0, points*2)
	step := math.Pi / float64(points)
	for i := 0; i < points*2; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		angle := float64(i)*step - math.Pi/2
		path = append(path, Point64{
			X: center.X + round64(r*math.Cos(angle)),
			Y: center.Y + round64(r*math.Sin(angle)),
		})
	}
	return path
}
