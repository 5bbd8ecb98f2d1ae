package clipper

// Path ingestion: turns a caller-supplied path into a circular edge list and
// the local minima (bound pairs) that seed the sweep.
//
// Reference: clip.cpp AddPath, ProcessBound (bodies unavailable in the
// retrieved original source; reconstructed from the classic Vatti
// decomposition: strip duplicates, build a circular edge ring, find local
// minima, split each minimum into two monotone-Y bounds).

const (
	loRange = (1 << 30) - 1
	hiRange = (1 << 62) - 1
)

// stripDuplicateVertices removes adjacent (and closing) duplicate points.
func stripDuplicateVertices(path Path64, closed bool) Path64 {
	if len(path) == 0 {
		return nil
	}
	out := make(Path64, 0, len(path))
	for _, pt := range path {
		if len(out) > 0 && out[len(out)-1] == pt {
			continue
		}
		out = append(out, pt)
	}
	if closed && len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

func maxAbsCoord(path Path64) int64 {
	var m int64
	for _, pt := range path {
		if a := abs64(pt.X); a > m {
			m = a
		}
		if a := abs64(pt.Y); a > m {
			m = a
		}
	}
	return m
}

// addPath ingests one path into the clipper's edge/local-minima state. It
// returns false (without partial state) if any coordinate exceeds hiRange.
func (c *Clipper64) addPath(path Path64, pt PolyType, closed bool) bool {
	if maxAbsCoord(path) > hiRange {
		return false
	}

	path = stripDuplicateVertices(path, closed)
	minPts := 3
	if !closed {
		minPts = 2
	}
	if len(path) < minPts {
		return true // too few points to form a ring; silently discarded
	}

	n := len(path)
	edges := make([]*edge, n)
	for i, p := range path {
		edges[i] = &edge{Curr: p, PolyTyp: pt, OutIdx: outIdxUnassigned}
	}
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		edges[i].Next = edges[next]
		edges[next].Prev = edges[i]
	}

	if !closed {
		// Open paths contribute no winding; both chain ends are marked by a
		// zero WindDelta on every edge derived from them (set below).
	}

	// Assign Bot/Top/Dx per oriented segment (edges[i] represents the
	// directed segment from vertex i to vertex i+1).
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		a, b := path[i], path[next]
		e := edges[i]
		if a.Y <= b.Y {
			e.Bot, e.Top = a, b
		} else {
			e.Bot, e.Top = b, a
		}
		e.Curr = e.Bot
		if e.Top.Y == e.Bot.Y {
			e.Dx = horizontalDx
		} else {
			e.Dx = float64(e.Top.X-e.Bot.X) / float64(e.Top.Y-e.Bot.Y)
		}
	}

	windDelta := func(i int) int {
		if !closed {
			return 0
		}
		next := (i + 1) % n
		if path[i].Y == path[next].Y {
			return 0
		}
		if path[i].Y < path[next].Y {
			return 1
		}
		return -1
	}
	for i := range edges {
		edges[i].WindDelta = windDelta(i)
	}

	// Find local minima: vertex i is a local minimum when both the edge
	// ending at i and the edge starting at i have their Bot at i (each edge's
	// Bot/Top was already assigned above by comparing its own two endpoints).
	// This is exactly the classic Clipper test and, unlike a direct three-way
	// Y comparison, handles a horizontal run at the bottom correctly: every
	// edge inside the run has its Bot pinned to its own lower-index endpoint,
	// so only the single vertex where a genuine descent feeds into the run
	// satisfies the test, regardless of how many flat vertices follow.
	for i := 0; i < n; i++ {
		prevIdx := (i - 1 + n) % n
		if edges[prevIdx].Bot == path[i] && edges[i].Bot == path[i] {
			leftBound, rightBound := c.buildBoundsFromMinimum(edges, i, n, closed)
			if leftBound == nil && rightBound == nil {
				continue
			}
			lm := &localMinimum{Y: path[i].Y, LeftBound: leftBound, RightBound: rightBound}
			c.minimaList = append(c.minimaList, lm)
			c.scanbeam.push(path[i].Y)
		}
	}
	return true
}

// buildBoundsFromMinimum walks away from vertex i in both directions,
// chaining edges via NextInLML until each side reaches its local maximum
// (a vertex whose neighbors are both lower), producing the left and right
// bound of this local minimum. The "left" bound is the one that descends
// (in original path order) into the minimum walking backwards; "right" is
// the one ascending forwards. Open-path end edges are tagged Skip by giving
// them WindDelta 0 (already done above) and by leaving the missing side nil.
func (c *Clipper64) buildBoundsFromMinimum(edges []*edge, i, n int, closed bool) (left, right *edge) {
	// Right bound: walk forward (edges[i], edges[i+1], ...) while ascending.
	right = c.chainBound(edges, i, n, +1, closed)
	// Left bound: walk backward (edges[i-1], edges[i-2], ...) while ascending
	// when traversed in that (reverse) direction. chainBound's dir<0 branch
	// already resolves vertex idx to the edge entering it (edges[idx-1]), so
	// the walk starts at i itself, not i-1.
	left = c.chainBound(edges, i, n, -1, closed)
	if left != nil {
		left.Side = esLeft
	}
	if right != nil {
		right.Side = esRight
	}
	return left, right
}

// chainBound builds one monotone-Y bound starting at vertex index start,
// consuming edges in direction dir (+1 forward, -1 backward over the vertex
// ring) for as long as each successive edge keeps ascending. Returns the
// first edge of the bound (closest to the local minimum); its NextInLML
// chain reaches up to the bound's local maximum.
func (c *Clipper64) chainBound(edges []*edge, start, n, dir int, closed bool) *edge {
	var head, tail *edge
	idx := start
	for k := 0; k < n; k++ {
		var e *edge
		if dir > 0 {
			e = edges[idx]
		} else {
			e = edges[(idx-1+n)%n]
		}
		if e.Dx == horizontalDx && closed {
			// horizontal edges belong to the bound; keep chaining through them
		}
		if head == nil {
			head = e
			tail = e
		} else {
			tail.NextInLML = e
			tail = e
		}
		// Stop once we reach a local maximum: the next edge in this direction
		// would descend.
		var nextIdx int
		if dir > 0 {
			nextIdx = (idx + 1) % n
		} else {
			nextIdx = (idx - 1 + n) % n
		}
		var nextE *edge
		if dir > 0 {
			nextE = edges[nextIdx]
		} else {
			nextE = edges[(nextIdx-1+n)%n]
		}
		if nextE.Top.Y <= e.Top.Y && nextE != e {
			break
		}
		idx = nextIdx
		if idx == start {
			break
		}
	}
	if !closed {
		// mark the outermost edge of an open bound as non-contributing
		head.WindDelta = 0
	}
	return head
}

// sortMinima orders the local minima list by Y descending.
func (c *Clipper64) sortMinima() {
	sortLocalMinimaByYDesc(c.minimaList)
}

func sortLocalMinimaByYDesc(lm []*localMinimum) {
	// simple insertion sort; local minima lists are small relative to edges
	for i := 1; i < len(lm); i++ {
		j := i
		for j > 0 && lm[j-1].Y < lm[j].Y {
			lm[j-1], lm[j] = lm[j], lm[j-1]
			j--
		}
	}
}
