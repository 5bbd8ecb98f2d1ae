package clipper

import (
	"sort"

	"github.com/google/btree"
)

// Clipper64 implements the Vatti sweep-line polygon clipping algorithm
// (Bala R. Vatti, "A generic solution to polygon clipping", 1992) over
// 64-bit integer coordinates.
//
// Reference: clip.cpp ExecuteInternal/SetWindingCount/
// IntersectEdges/ProcessHorizontal/ProcessEdgesAtTopOfScanbeam.
type Clipper64 struct {
	minimaList   []*localMinimum
	minimaIdx    int
	ael          *edge
	sel          *edge
	scanbeam     *scanbeamQueue
	outRecs      []*outRec
	joins        []*join
	ghostJoins   []*join
	hasOpenPaths bool
	executing    bool

	clipType     ClipType
	subjFillRule FillRule
	clipFillRule FillRule

	ReverseSolution   bool
	StrictlySimple    bool
	PreserveCollinear bool

	// maxima collects, in ascending order, the X positions of maxima found at
	// the current scanbeam's top whose pair edge is horizontal or missing. It
	// is cleared before and after each top-of-scanbeam pass. processHorizontals
	// does not read it, so no extra vertices are inserted on horizontals at
	// these positions, with or without StrictlySimple.
	maxima *btree.BTreeG[int64]
}

func maximaLess(a, b int64) bool { return a < b }

func newMaximaTree() *btree.BTreeG[int64] {
	return btree.NewG[int64](2, maximaLess)
}

// NewClipper64 returns an empty, ready-to-use clipper instance.
func NewClipper64() *Clipper64 {
	return &Clipper64{scanbeam: newScanbeamQueue(), maxima: newMaximaTree()}
}

// AddPath adds a single subject or clip path.
func (c *Clipper64) AddPath(path Path64, pt PolyType, closed bool) bool {
	if !closed {
		c.hasOpenPaths = true
	}
	return c.addPath(path, pt, closed)
}

// AddPaths adds multiple paths of the same PolyType.
func (c *Clipper64) AddPaths(paths Paths64, pt PolyType, closed bool) bool {
	for _, p := range paths {
		if !c.AddPath(p, pt, closed) {
			return false
		}
	}
	return true
}

// Clear discards all ingested edges and local minima, resetting the instance.
func (c *Clipper64) Clear() {
	c.minimaList = nil
	c.minimaIdx = 0
	c.ael = nil
	c.sel = nil
	c.scanbeam = newScanbeamQueue()
	c.outRecs = nil
	c.joins = nil
	c.ghostJoins = nil
	c.hasOpenPaths = false
	c.maxima = newMaximaTree()
}

// Execute runs the sweep for the given clip type, applying subjFillRule to
// subject edges and clipFillRule to clip edges, and returns the closed
// result paths, any open result paths, and success.
func (c *Clipper64) Execute(clipType ClipType, subjFillRule, clipFillRule FillRule) (solution, solutionOpen Paths64, ok bool) {
	if c.executing {
		return nil, nil, false
	}
	c.executing = true
	defer func() { c.executing = false }()

	c.clipType = clipType
	c.subjFillRule = subjFillRule
	c.clipFillRule = clipFillRule
	c.outRecs = nil
	c.joins = nil
	c.ghostJoins = nil

	c.sortMinima()
	if !c.executeInternal() {
		c.outRecs = nil
		return Paths64{}, Paths64{}, false
	}

	c.fixOrientations()
	c.joinCommonEdges()
	for _, or := range c.outRecs {
		c.fixupOutPolygon(or)
	}
	if c.StrictlySimple {
		c.doSimplePolygons()
	}

	return c.buildResult()
}

// ExecuteTree runs the sweep and additionally materializes a PolyTree64.
func (c *Clipper64) ExecuteTree(clipType ClipType, subjFillRule, clipFillRule FillRule) (*PolyTree64, Paths64, bool) {
	_, openPaths, ok := c.Execute(clipType, subjFillRule, clipFillRule)
	if !ok {
		return nil, nil, false
	}
	tree := c.buildPolyTree()
	return tree, openPaths, true
}

// ==============================================================================
// Main scanbeam loop
// ==============================================================================

func (c *Clipper64) executeInternal() bool {
	botY, ok := c.scanbeam.pop()
	if !ok {
		return c.minimaIdx >= len(c.minimaList)
	}
	c.insertLocalMinimaIntoAEL(botY)
	for {
		topY, more := c.scanbeam.pop()
		if !more && c.minimaIdx >= len(c.minimaList) {
			break
		}
		if !more {
			// no more scanbeams but minima remain pending at a Y we already
			// consumed; nothing further to do at this Y.
			break
		}
		c.processHorizontals()
		c.clearGhostJoins()
		if !c.processIntersections(topY) {
			return false
		}
		c.processEdgesAtTopOfScanbeam(topY)
		botY = topY
		c.insertLocalMinimaIntoAEL(botY)
	}
	return true
}

func (c *Clipper64) clearGhostJoins() {
	c.ghostJoins = c.ghostJoins[:0]
}

// pendingMinimaAtY reports whether the next local minimum still waiting to
// be inserted lies at exactly y.
func (c *Clipper64) pendingMinimaAtY(y int64) bool {
	return c.minimaIdx < len(c.minimaList) && c.minimaList[c.minimaIdx].Y == y
}

// ==============================================================================
// AEL maintenance
// ==============================================================================

func topXAt(e *edge, y int64) int64 {
	if y == e.Top.Y {
		return e.Top.X
	}
	if y == e.Bot.Y {
		return e.Bot.X
	}
	return e.Bot.X + round64(e.Dx*float64(y-e.Bot.Y))
}

func round64(f float64) int64 {
	if f >= 0 {
		return int64(f + 0.5)
	}
	return int64(f - 0.5)
}

// insertEdgeIntoAEL inserts e into the AEL, searching from the head, ordered
// left to right by Curr.X, ties broken by comparing TopX at the lower of the
// two Top.Y values.
func (c *Clipper64) insertEdgeIntoAEL(e *edge) {
	if c.ael == nil {
		c.ael = e
		e.PrevInAEL, e.NextInAEL = nil, nil
		return
	}
	if e2InsertsBeforeE1(c.ael, e) {
		e.NextInAEL = c.ael
		c.ael.PrevInAEL = e
		c.ael = e
		return
	}
	cur := c.ael
	for cur.NextInAEL != nil && !e2InsertsBeforeE1(cur.NextInAEL, e) {
		cur = cur.NextInAEL
	}
	e.NextInAEL = cur.NextInAEL
	if cur.NextInAEL != nil {
		cur.NextInAEL.PrevInAEL = e
	}
	cur.NextInAEL = e
	e.PrevInAEL = cur
}

// e2InsertsBeforeE1 reports whether e2 belongs immediately before e1 in the AEL.
func e2InsertsBeforeE1(e1, e2 *edge) bool {
	if e2.Curr.X != e1.Curr.X {
		return e2.Curr.X < e1.Curr.X
	}
	topY := e1.Top.Y
	if e2.Top.Y < topY {
		topY = e2.Top.Y
	}
	return topXAt(e2, topY) < topXAt(e1, topY)
}

func deleteFromAEL(c *Clipper64, e *edge) {
	if e.PrevInAEL != nil {
		e.PrevInAEL.NextInAEL = e.NextInAEL
	} else {
		c.ael = e.NextInAEL
	}
	if e.NextInAEL != nil {
		e.NextInAEL.PrevInAEL = e.PrevInAEL
	}
	e.NextInAEL, e.PrevInAEL = nil, nil
}

func swapPositionsInAEL(c *Clipper64, e1, e2 *edge) {
	if e1 == e2 {
		return
	}
	if e1.NextInAEL == e2 {
		swapAdjacentAEL(c, e1, e2)
	} else if e2.NextInAEL == e1 {
		swapAdjacentAEL(c, e2, e1)
	} else {
		// Edges have drifted apart since the event was recorded (an earlier
		// event in this beam already moved one of them): re-anchor both by
		// their current Curr.X rather than assuming adjacency still holds.
		deleteFromAEL(c, e1)
		deleteFromAEL(c, e2)
		c.insertEdgeIntoAEL(e1)
		c.insertEdgeIntoAEL(e2)
	}
}

// swapAdjacentAEL swaps two AEL-adjacent edges where first.NextInAEL == second.
func swapAdjacentAEL(c *Clipper64, first, second *edge) {
	prev, next := first.PrevInAEL, second.NextInAEL
	if prev != nil {
		prev.NextInAEL = second
	} else {
		c.ael = second
	}
	if next != nil {
		next.PrevInAEL = first
	}
	second.PrevInAEL = prev
	second.NextInAEL = first
	first.PrevInAEL = second
	first.NextInAEL = next
}

func addEdgeToSEL(c *Clipper64, e *edge) {
	if c.sel == nil {
		c.sel = e
		e.PrevInSEL, e.NextInSEL = nil, nil
		return
	}
	e.NextInSEL = c.sel
	c.sel.PrevInSEL = e
	e.PrevInSEL = nil
	c.sel = e
}

func popEdgeFromSEL(c *Clipper64) *edge {
	e := c.sel
	if e != nil {
		c.sel = e.NextInSEL
		if c.sel != nil {
			c.sel.PrevInSEL = nil
		}
		e.NextInSEL, e.PrevInSEL = nil, nil
	}
	return e
}

func copyAELToSEL(c *Clipper64) {
	c.sel = nil
	var tail *edge
	for e := c.ael; e != nil; e = e.NextInAEL {
		e.NextInSEL, e.PrevInSEL = nil, nil
		if c.sel == nil {
			c.sel = e
		} else {
			tail.NextInSEL = e
			e.PrevInSEL = tail
		}
		tail = e
	}
}

func deleteFromSEL(c *Clipper64, e *edge) {
	if e.PrevInSEL != nil {
		e.PrevInSEL.NextInSEL = e.NextInSEL
	} else {
		c.sel = e.NextInSEL
	}
	if e.NextInSEL != nil {
		e.NextInSEL.PrevInSEL = e.PrevInSEL
	}
	e.NextInSEL, e.PrevInSEL = nil, nil
}

func swapPositionsInSEL(c *Clipper64, e1, e2 *edge) {
	if e1.NextInSEL == e2 {
		prev, next := e1.PrevInSEL, e2.NextInSEL
		if prev != nil {
			prev.NextInSEL = e2
		} else {
			c.sel = e2
		}
		if next != nil {
			next.PrevInSEL = e1
		}
		e2.PrevInSEL, e2.NextInSEL = prev, e1
		e1.PrevInSEL, e1.NextInSEL = e2, next
	} else if e2.NextInSEL == e1 {
		swapPositionsInSEL(c, e2, e1)
	} else {
		e1.PrevInSEL, e2.PrevInSEL = e2.PrevInSEL, e1.PrevInSEL
		e1.NextInSEL, e2.NextInSEL = e2.NextInSEL, e1.NextInSEL
		if e1.PrevInSEL != nil {
			e1.PrevInSEL.NextInSEL = e1
		} else {
			c.sel = e1
		}
		if e1.NextInSEL != nil {
			e1.NextInSEL.PrevInSEL = e1
		}
		if e2.PrevInSEL != nil {
			e2.PrevInSEL.NextInSEL = e2
		} else {
			c.sel = e2
		}
		if e2.NextInSEL != nil {
			e2.NextInSEL.PrevInSEL = e2
		}
	}
}

// ==============================================================================
// insertLocalMinimaIntoAEL
// ==============================================================================

func (c *Clipper64) insertLocalMinimaIntoAEL(botY int64) {
	for c.minimaIdx < len(c.minimaList) && c.minimaList[c.minimaIdx].Y == botY {
		lm := c.minimaList[c.minimaIdx]
		c.minimaIdx++

		var lb, rb *edge = lm.LeftBound, lm.RightBound
		if lb != nil {
			c.insertEdgeIntoAEL(lb)
			c.setWindingCount(lb)
			if lb.isHorizontal() {
				addEdgeToSEL(c, lb)
			} else {
				c.scanbeam.push(lb.Top.Y)
			}
		}
		if rb != nil {
			if lb != nil {
				c.insertEdgeAfter(rb, lb)
			} else {
				c.insertEdgeIntoAEL(rb)
			}
			c.setWindingCount(rb)
			if rb.isHorizontal() {
				addEdgeToSEL(c, rb)
			} else {
				c.scanbeam.push(rb.Top.Y)
			}
		}

		if lb != nil && rb != nil {
			if c.isContributing(lb) {
				c.addLocalMinPoly(lb, rb, lb.Bot)
			}
		} else if lb != nil && lb.WindDelta == 0 {
			if c.isContributing(lb) {
				c.addOutPt(lb, lb.Bot)
			}
		} else if rb != nil && rb.WindDelta == 0 {
			if c.isContributing(rb) {
				c.addOutPt(rb, rb.Bot)
			}
		}
	}
}

func (c *Clipper64) insertEdgeAfter(e, after *edge) {
	e.PrevInAEL = after
	e.NextInAEL = after.NextInAEL
	if after.NextInAEL != nil {
		after.NextInAEL.PrevInAEL = e
	}
	after.NextInAEL = e
}

// ==============================================================================
// Winding-count and contribution
// ==============================================================================

func (c *Clipper64) setWindingCount(e *edge) {
	var prev *edge
	for p := e.PrevInAEL; p != nil; p = p.PrevInAEL {
		if p.PolyTyp == e.PolyTyp && p.WindDelta != 0 {
			prev = p
			break
		}
	}

	fr := c.effectiveFillRule(e.PolyTyp)

	if prev == nil {
		if e.WindDelta == 0 {
			if fr == Negative {
				e.WindCnt = -1
			} else {
				e.WindCnt = 1
			}
		} else {
			e.WindCnt = e.WindDelta
		}
		e.WindCnt2 = 0
		// accumulate WindCnt2 from AEL head up to e
		c.accumulateWindCnt2(e, nil)
		return
	}

	if e.WindDelta == 0 && fr == EvenOdd {
		inside := true
		for e2 := e.PrevInAEL; e2 != nil; e2 = e2.PrevInAEL {
			if e2.PolyTyp == e.PolyTyp && e2.WindDelta != 0 {
				inside = !inside
			}
		}
		if inside {
			e.WindCnt = 0
		} else {
			e.WindCnt = 1
		}
		e.WindCnt2 = prev.WindCnt2
		c.accumulateWindCnt2(e, prev)
		return
	}

	if e.WindDelta == 0 {
		// open edge under non-evenodd fill: winding is "inside" test via prev
		if prev.WindCnt != 0 {
			e.WindCnt = 1
		} else {
			e.WindCnt = 0
		}
		e.WindCnt2 = prev.WindCnt2
		c.accumulateWindCnt2(e, prev)
		return
	}

	if fr == EvenOdd {
		e.WindCnt = 1
	} else {
		if prev.WindCnt*prev.WindDelta < 0 {
			if abs(prev.WindCnt) > 1 {
				if prev.WindDelta*e.WindDelta < 0 {
					e.WindCnt = prev.WindCnt
				} else {
					e.WindCnt = prev.WindCnt + e.WindDelta
				}
			} else {
				e.WindCnt = e.WindDelta
			}
		} else {
			e.WindCnt = prev.WindCnt + e.WindDelta
		}
	}
	e.WindCnt2 = prev.WindCnt2
	c.accumulateWindCnt2(e, prev)
}

// accumulateWindCnt2 scans the AEL from the position just after `from` (or
// the head when from is nil) up to and excluding e, folding opposite-polytype
// winding contributions into e.WindCnt2.
func (c *Clipper64) accumulateWindCnt2(e, from *edge) {
	start := c.ael
	if from != nil {
		start = from.NextInAEL
	}
	opp := c.effectiveOppositeFillRule(e.PolyTyp)
	for p := start; p != nil && p != e; p = p.NextInAEL {
		if p.PolyTyp != e.PolyTyp {
			if opp == EvenOdd {
				if p.WindDelta != 0 {
					if e.WindCnt2 == 0 {
						e.WindCnt2 = 1
					} else {
						e.WindCnt2 = 0
					}
				}
			} else {
				e.WindCnt2 += p.WindDelta
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// effectiveFillRule returns the fill rule that governs pt's own winding
// count; effectiveOppositeFillRule returns the fill rule of the other
// PolyType, which governs how WindCnt2 (the opposite side's winding,
// accumulated onto this edge) is interpreted.
func (c *Clipper64) effectiveFillRule(pt PolyType) FillRule {
	if pt == Subject {
		return c.subjFillRule
	}
	return c.clipFillRule
}

func (c *Clipper64) effectiveOppositeFillRule(pt PolyType) FillRule {
	if pt == Subject {
		return c.clipFillRule
	}
	return c.subjFillRule
}

// isContributing implements the per-(ClipType,FillRule) contribution predicate.
func (c *Clipper64) isContributing(e *edge) bool {
	fr := c.effectiveFillRule(e.PolyTyp)
	var wc int
	switch fr {
	case EvenOdd:
		wc = e.WindCnt & 1
		if wc == 0 {
			return false
		}
	case NonZero:
		if e.WindCnt == 0 {
			return false
		}
	case Positive:
		if e.WindCnt != 1 {
			return false
		}
	case Negative:
		if e.WindCnt != -1 {
			return false
		}
	}

	oppFr := c.effectiveOppositeFillRule(e.PolyTyp)
	wc2 := e.WindCnt2
	oppInside := func() bool {
		switch oppFr {
		case EvenOdd:
			return wc2&1 != 0
		case Positive:
			return wc2 > 0
		case Negative:
			return wc2 < 0
		default:
			return wc2 != 0
		}
	}()

	switch c.clipType {
	case Intersection:
		return oppInside
	case Union:
		return !oppInside
	case Difference:
		if e.PolyTyp == Subject {
			return !oppInside
		}
		return oppInside
	default: // Xor
		return true
	}
}

// ==============================================================================
// Output builder
// ==============================================================================

func (c *Clipper64) newOutRec() *outRec {
	or := &outRec{Idx: len(c.outRecs)}
	c.outRecs = append(c.outRecs, or)
	return or
}

func getOutRec(or *outRec) *outRec {
	for or.Owner != nil && or.Owner.Pts == nil {
		or.Owner = or.Owner.Owner
	}
	if or.Pts == nil && or.Owner != nil {
		return or.Owner
	}
	return or
}

func (c *Clipper64) setHoleState(e *edge, or *outRec) {
	count := 0
	var firstLeft *outRec
	for p := e.PrevInAEL; p != nil; p = p.PrevInAEL {
		if p.PolyTyp == e.PolyTyp && p.WindDelta != 0 {
			count++
			if firstLeft == nil && p.OutIdx >= 0 {
				firstLeft = getOutRec(c.outRecs[p.OutIdx])
			}
		}
	}
	or.IsHole = count%2 != 0
	if or.IsHole {
		or.FirstLeft = firstLeft
	}
}

func (c *Clipper64) addOutPt(e *edge, pt Point64) *outPt {
	if e.OutIdx < 0 {
		or := c.newOutRec()
		or.IsOpen = e.WindDelta == 0
		c.setHoleState(e, or)
		op := &outPt{Pt: pt, Idx: or.Idx}
		op.Next, op.Prev = op, op
		or.Pts = op
		or.BottomPt = op
		e.OutIdx = or.Idx
		return op
	}

	or := getOutRec(c.outRecs[e.OutIdx])
	op := or.Pts
	if op != nil && op.Pt == pt {
		return op
	}
	if op != nil && op.Prev.Pt == pt {
		return op.Prev
	}
	newOp := &outPt{Pt: pt, Idx: or.Idx}
	if e.Side == esLeft {
		if or.Pts == nil {
			newOp.Next, newOp.Prev = newOp, newOp
			or.Pts = newOp
		} else {
			newOp.Next = or.Pts
			newOp.Prev = or.Pts.Prev
			or.Pts.Prev.Next = newOp
			or.Pts.Prev = newOp
			or.Pts = newOp
		}
	} else {
		if or.Pts == nil {
			newOp.Next, newOp.Prev = newOp, newOp
			or.Pts = newOp
		} else {
			newOp.Prev = or.Pts.Prev
			newOp.Next = or.Pts
			or.Pts.Prev.Next = newOp
			or.Pts.Prev = newOp
		}
	}
	return newOp
}

func (c *Clipper64) addLocalMinPoly(e1, e2 *edge, pt Point64) {
	var left, right *edge
	if e1.Dx < e2.Dx {
		left, right = e1, e2
	} else {
		left, right = e2, e1
	}
	left.Side = esLeft
	right.Side = esRight

	op := c.addOutPt(left, pt)
	right.OutIdx = left.OutIdx

	if prev := left.PrevInAEL; prev != nil && prev.OutIdx >= 0 && sameSlope(prev, left) && prev.WindDelta != 0 {
		prevOp := c.getLastOutPt(prev)
		c.joins = append(c.joins, &join{OutPt1: prevOp, OutPt2: op, OffPt: pt})
	}
}

func (c *Clipper64) getLastOutPt(e *edge) *outPt {
	if e.OutIdx < 0 {
		return nil
	}
	or := getOutRec(c.outRecs[e.OutIdx])
	if e.Side == esLeft {
		return or.Pts
	}
	return or.Pts.Prev
}

func sameSlope(e1, e2 *edge) bool {
	return CrossProduct128(e1.Bot, e1.Top, e2.Top).IsZero()
}

func (c *Clipper64) addLocalMaxPoly(e1, e2 *edge, pt Point64) {
	c.addOutPt(e1, pt)
	if e2.WindDelta == 0 {
		c.addOutPt(e2, pt)
	}
	if e1.OutIdx == e2.OutIdx {
		e1.OutIdx = outIdxUnassigned
		e2.OutIdx = outIdxUnassigned
		return
	}
	c.appendPolygon(e1, e2)
}

// appendPolygon splices the two open rings bounded by e1 and e2 into one,
// then marks the now-obsolete record's Idx to point at the survivor.
func (c *Clipper64) appendPolygon(e1, e2 *edge) {
	var holeStateRec *outRec
	or1 := getOutRec(c.outRecs[e1.OutIdx])
	or2 := getOutRec(c.outRecs[e2.OutIdx])

	if outRecIsLeftOf(or1, or2) {
		holeStateRec = or1
	} else {
		holeStateRec = or2
	}

	p1Start, p1End := or1.Pts, or1.Pts.Prev
	p2Start, p2End := or2.Pts, or2.Pts.Prev

	if e1.Side == esLeft {
		if e2.Side == esLeft {
			reverseOutPts(p2Start)
			p2Start, p2End = p2End, p2Start
		}
		p1End.Next = p2Start
		p2Start.Prev = p1End
		p1Start.Prev = p2End
		p2End.Next = p1Start
		or1.Pts = p2End
	} else {
		if e2.Side == esRight {
			reverseOutPts(p2Start)
			p2Start, p2End = p2End, p2Start
		}
		p2End.Next = p1Start
		p1Start.Prev = p2End
		p2Start.Prev = p1End
		p1End.Next = p2Start
	}

	or1.BottomPt = nil
	or1.IsHole = holeStateRec.IsHole
	or1.FirstLeft = holeStateRec.FirstLeft

	or2.Pts = nil
	or2.Owner = or1

	for _, oc := range c.outRecs {
		if oc.Owner == or2 {
			oc.Owner = or1
		}
	}

	if e1.OutIdx == or1.Idx {
		e1.OutIdx = outIdxUnassigned
	}
	if e2.OutIdx == or2.Idx {
		e2.OutIdx = outIdxUnassigned
	}
	for ae := c.ael; ae != nil; ae = ae.NextInAEL {
		if ae.OutIdx == or2.Idx {
			ae.OutIdx = or1.Idx
			ae.Side = e1.Side
			break
		}
	}
}

func outRecIsLeftOf(a, b *outRec) bool {
	if a.Pts == nil || b.Pts == nil {
		return a.Pts != nil
	}
	return a.Pts.Pt.X <= b.Pts.Pt.X
}

func reverseOutPts(start *outPt) {
	op := start
	for {
		next := op.Next
		op.Next, op.Prev = op.Prev, next
		op = next
		if op == start {
			break
		}
	}
}

// ==============================================================================
// Intersection engine
// ==============================================================================

type intersectNode struct {
	E1, E2 *edge
	Pt     Point64
}

func (c *Clipper64) processIntersections(topY int64) bool {
	if c.ael == nil || c.ael.NextInAEL == nil {
		c.updateCurrXAll(topY)
		return true
	}
	nodes := c.buildIntersectList(topY)
	if len(nodes) == 0 {
		return true
	}
	ordered, ok := c.fixupIntersectionOrder(nodes)
	if !ok {
		return false
	}
	for _, n := range ordered {
		c.intersectEdges(n.E1, n.E2, n.Pt)
		swapPositionsInAEL(c, n.E1, n.E2)
	}
	return true
}

func (c *Clipper64) updateCurrXAll(topY int64) {
	for e := c.ael; e != nil; e = e.NextInAEL {
		e.Curr.X = topXAt(e, topY)
		e.Curr.Y = topY
	}
}

func (c *Clipper64) buildIntersectList(topY int64) []intersectNode {
	copyAELToSEL(c)
	for e := c.sel; e != nil; e = e.NextInSEL {
		e.Curr.X = topXAt(e, topY)
	}

	var nodes []intersectNode
	swapped := true
	for swapped {
		swapped = false
		for e := c.sel; e != nil && e.NextInSEL != nil; e = e.NextInSEL {
			next := e.NextInSEL
			if e.Curr.X > next.Curr.X {
				pt := intersectPoint(e, next)
				if pt.Y < topY {
					y := topY
					x1, x2 := topXAt(e, y), topXAt(next, y)
					pt = Point64{X: (x1 + x2) / 2, Y: y}
				}
				nodes = append(nodes, intersectNode{E1: e, E2: next, Pt: pt})
				swapPositionsInSEL(c, e, next)
				swapped = true
			}
		}
	}
	return nodes
}

func intersectPoint(e1, e2 *edge) Point64 {
	if e1.Dx == e2.Dx {
		return e1.Curr
	}
	if e1.Dx == horizontalDx {
		y := e1.Bot.Y
		x := e2.Bot.X + round64(e2.Dx*float64(y-e2.Bot.Y))
		return clampToEdges(Point64{X: x, Y: y}, e1, e2)
	}
	if e2.Dx == horizontalDx {
		y := e2.Bot.Y
		x := e1.Bot.X + round64(e1.Dx*float64(y-e1.Bot.Y))
		return clampToEdges(Point64{X: x, Y: y}, e1, e2)
	}
	b1 := float64(e1.Bot.X) - float64(e1.Bot.Y)*e1.Dx
	b2 := float64(e2.Bot.X) - float64(e2.Bot.Y)*e2.Dx
	y := (b2 - b1) / (e1.Dx - e2.Dx)
	x := e1.Dx*y + b1
	return clampToEdges(Point64{X: round64(x), Y: round64(y)}, e1, e2)
}

func clampToEdges(pt Point64, e1, e2 *edge) Point64 {
	lo := e1.Bot.Y
	if e2.Bot.Y > lo {
		lo = e2.Bot.Y
	}
	hi := e1.Top.Y
	if e2.Top.Y < hi {
		hi = e2.Top.Y
	}
	if pt.Y < lo {
		pt.Y = lo
	}
	if pt.Y > hi {
		pt.Y = hi
	}
	return pt
}

// fixupIntersectionOrder sorts events by Pt.Y descending (ties by X), then
// replays them against a copy of the AEL (held in SEL) to find an order in
// which every event is SEL-adjacent when it's applied: for event i, if its
// two edges aren't currently adjacent, scan forward for the next event that
// is and swap it into place, applying the SEL swap as we go. If no later
// event is ever adjacent, the scanbeam cannot be resolved.
func (c *Clipper64) fixupIntersectionOrder(nodes []intersectNode) ([]intersectNode, bool) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Pt.Y != nodes[j].Pt.Y {
			return nodes[i].Pt.Y > nodes[j].Pt.Y
		}
		return nodes[i].Pt.X < nodes[j].Pt.X
	})

	copyAELToSEL(c)
	cnt := len(nodes)
	for i := 0; i < cnt; i++ {
		if !edgesAdjacentInSEL(nodes[i]) {
			j := i + 1
			for j < cnt && !edgesAdjacentInSEL(nodes[j]) {
				j++
			}
			if j == cnt {
				return nodes, false
			}
			nodes[i], nodes[j] = nodes[j], nodes[i]
		}
		swapPositionsInSEL(c, nodes[i].E1, nodes[i].E2)
	}
	return nodes, true
}

func edgesAdjacentInSEL(n intersectNode) bool {
	return n.E1.NextInSEL == n.E2 || n.E2.NextInSEL == n.E1
}

func (c *Clipper64) intersectEdges(e1, e2 *edge, pt Point64) {
	e1Contributing := e1.OutIdx >= 0
	e2Contributing := e2.OutIdx >= 0

	if e1.PolyTyp == e2.PolyTyp {
		if c.effectiveFillRule(e1.PolyTyp) == EvenOdd {
			e1.WindCnt, e2.WindCnt = e2.WindCnt, e1.WindCnt
		} else {
			if e1.WindCnt+e2.WindDelta == 0 {
				e1.WindCnt = -e1.WindCnt
			} else {
				e1.WindCnt += e2.WindDelta
			}
			if e2.WindCnt-e1.WindDelta == 0 {
				e2.WindCnt = -e2.WindCnt
			} else {
				e2.WindCnt -= e1.WindDelta
			}
		}
	} else {
		// e2's own fill rule is "the opposite fill" from e1's perspective, and
		// vice versa — each edge's WindCnt2 tracks the other polytype's winding.
		if c.effectiveFillRule(e2.PolyTyp) == EvenOdd {
			if e2.WindDelta != 0 {
				if e1.WindCnt2 == 0 {
					e1.WindCnt2 = 1
				} else {
					e1.WindCnt2 = 0
				}
			}
		} else {
			e1.WindCnt2 += e2.WindDelta
		}
		if c.effectiveFillRule(e1.PolyTyp) == EvenOdd {
			if e1.WindDelta != 0 {
				if e2.WindCnt2 == 0 {
					e2.WindCnt2 = 1
				} else {
					e2.WindCnt2 = 0
				}
			}
		} else {
			e2.WindCnt2 += e1.WindDelta
		}
	}

	e1Wc := effectiveWind(c.effectiveFillRule(e1.PolyTyp), e1.WindCnt)
	e2Wc := effectiveWind(c.effectiveFillRule(e2.PolyTyp), e2.WindCnt)

	switch {
	case e1Contributing && e2Contributing:
		if (e1Wc != 0 && e1Wc != 1) || (e2Wc != 0 && e2Wc != 1) || (e1.PolyTyp != e2.PolyTyp && c.clipType != Xor) {
			c.addLocalMaxPoly(e1, e2, pt)
		} else {
			c.addOutPt(e1, pt)
			c.addOutPt(e2, pt)
			swapSides(e1, e2)
			swapOutIdx(e1, e2)
		}
	case e1Contributing:
		if e2Wc == 0 || e2Wc == 1 {
			c.addOutPt(e1, pt)
			swapSides(e1, e2)
			swapOutIdx(e1, e2)
		}
	case e2Contributing:
		if e1Wc == 0 || e1Wc == 1 {
			c.addOutPt(e2, pt)
			swapSides(e1, e2)
			swapOutIdx(e1, e2)
		}
	default:
		if (e1Wc == 0 || e1Wc == 1) && (e2Wc == 0 || e2Wc == 1) {
			if e1.PolyTyp != e2.PolyTyp {
				c.addLocalMinPoly(e1, e2, pt)
			} else if e1Wc == 1 && e2Wc == 1 {
				if c.isContributing(e1) {
					c.addLocalMinPoly(e1, e2, pt)
				}
			} else {
				swapSides(e1, e2)
			}
		}
	}
}

func effectiveWind(fr FillRule, wc int) int {
	switch fr {
	case EvenOdd:
		return wc & 1
	default:
		if wc < 0 {
			return -wc
		}
		return wc
	}
}

func swapSides(e1, e2 *edge) {
	e1.Side, e2.Side = e2.Side, e1.Side
}

func swapOutIdx(e1, e2 *edge) {
	e1.OutIdx, e2.OutIdx = e2.OutIdx, e1.OutIdx
}

// ==============================================================================
// Horizontal processor
// ==============================================================================

func (c *Clipper64) processHorizontals() {
	for c.sel != nil {
		h := popEdgeFromSEL(c)
		c.processHorizontal(h)
	}
}

func (c *Clipper64) processHorizontal(horz *edge) {
	leftToRight := horz.Bot.X < horz.Top.X
	lo, hi := horz.Bot.X, horz.Top.X
	if !leftToRight {
		lo, hi = hi, lo
	}

	eLastHorz := horz
	for eLastHorz.NextInLML != nil && eLastHorz.NextInLML.isHorizontal() {
		eLastHorz = eLastHorz.NextInLML
	}
	var eMaxPair *edge
	if eLastHorz.NextInLML == nil {
		eMaxPair = c.findMaximaPair(eLastHorz)
	}

	var e *edge
	if leftToRight {
		e = horz.NextInAEL
	} else {
		e = horz.PrevInAEL
	}

	for e != nil {
		if leftToRight && e.Curr.X > hi {
			break
		}
		if !leftToRight && e.Curr.X < lo {
			break
		}
		next := nextAEL(e, leftToRight)

		if e == eMaxPair {
			if horz.OutIdx >= 0 {
				c.addLocalMaxPoly(horz, e, Point64{X: e.Curr.X, Y: horz.Bot.Y})
			}
			deleteFromAEL(c, e)
			deleteFromAEL(c, horz)
			return
		}

		if horz.OutIdx >= 0 {
			c.addOutPt(horz, Point64{X: e.Curr.X, Y: horz.Bot.Y})
		}
		c.intersectEdges(horz, e, Point64{X: e.Curr.X, Y: horz.Bot.Y})
		swapPositionsInAEL(c, horz, e)
		e = next
	}

	if horz.NextInLML != nil && horz.NextInLML.isHorizontal() {
		c.updateEdgeIntoAEL(horz)
		return
	}

	if horz.NextInLML != nil {
		if horz.OutIdx >= 0 {
			c.addOutPt(horz, horz.Top)
		}
		c.updateEdgeIntoAEL(horz)
	} else {
		if horz.OutIdx >= 0 {
			c.addOutPt(horz, horz.Top)
		}
		deleteFromAEL(c, horz)
	}
}

func nextAEL(e *edge, leftToRight bool) *edge {
	if leftToRight {
		return e.NextInAEL
	}
	return e.PrevInAEL
}

func (c *Clipper64) findMaximaPair(e *edge) *edge {
	for o := e.NextInAEL; o != nil; o = o.NextInAEL {
		if o.Top == e.Top && o.NextInLML == nil {
			return o
		}
	}
	for o := e.PrevInAEL; o != nil; o = o.PrevInAEL {
		if o.Top == e.Top && o.NextInLML == nil {
			return o
		}
	}
	return nil
}

// updateEdgeIntoAEL replaces e's AEL slot with its NextInLML continuation,
// preserving OutIdx/Side so output traversal stays correct across the bend.
func (c *Clipper64) updateEdgeIntoAEL(e *edge) *edge {
	next := e.NextInLML
	next.OutIdx = e.OutIdx
	next.Side = e.Side
	next.WindDelta = e.WindDelta
	next.WindCnt = e.WindCnt
	next.WindCnt2 = e.WindCnt2
	next.Curr = next.Bot
	next.PrevInAEL = e.PrevInAEL
	next.NextInAEL = e.NextInAEL
	if e.PrevInAEL != nil {
		e.PrevInAEL.NextInAEL = next
	} else {
		c.ael = next
	}
	if e.NextInAEL != nil {
		e.NextInAEL.PrevInAEL = next
	}
	if !next.isHorizontal() {
		c.scanbeam.push(next.Top.Y)
	}
	return next
}

// ==============================================================================
// Top-of-scanbeam
// ==============================================================================

func (c *Clipper64) processEdgesAtTopOfScanbeam(topY int64) {
	c.maxima.Clear(false)

	e := c.ael
	for e != nil {
		next := e.NextInAEL
		isMaxima := e.Top.Y == topY && e.NextInLML == nil
		if isMaxima {
			pair := c.findMaximaPair(e)
			if pair != nil && !pair.isHorizontal() {
				c.doMaxima(e, pair)
				e = next
				continue
			}
			c.maxima.ReplaceOrInsert(e.Top.X)
		} else if e.NextInLML != nil && e.NextInLML.isHorizontal() && e.Top.Y == topY {
			if e.OutIdx >= 0 {
				c.addOutPt(e, e.Bot)
			}
			updated := c.updateEdgeIntoAEL(e)
			addEdgeToSEL(c, updated)
		} else {
			e.Curr.X = topXAt(e, topY)
			e.Curr.Y = topY
		}
		e = next
	}

	// processHorizontals does not read maxima; the set is cleared once the
	// horizontals are done.
	c.processHorizontals()
	c.maxima.Clear(false)

	for e := c.ael; e != nil; e = e.NextInAEL {
		if e.Top.Y == topY && e.NextInLML != nil && !e.NextInLML.isHorizontal() {
			if e.OutIdx >= 0 {
				c.addOutPt(e, e.Top)
			}
			c.updateEdgeIntoAEL(e)
		}
	}
}

func (c *Clipper64) doMaxima(e, pair *edge) {
	cur := e.NextInAEL
	for cur != nil && cur != pair {
		next := cur.NextInAEL
		c.intersectEdges(e, cur, e.Top)
		swapPositionsInAEL(c, e, cur)
		cur = next
	}
	if e.OutIdx < 0 && pair.OutIdx < 0 {
		deleteFromAEL(c, e)
		deleteFromAEL(c, pair)
		return
	}
	if e.OutIdx >= 0 && pair.OutIdx >= 0 {
		c.addLocalMaxPoly(e, pair, e.Top)
	}
	deleteFromAEL(c, e)
	deleteFromAEL(c, pair)
}

// ==============================================================================
// Post-run fixups
// ==============================================================================

func (c *Clipper64) fixOrientations() {
	for _, or := range c.outRecs {
		if or.Pts == nil || or.IsOpen {
			continue
		}
		area := outPtArea(or.Pts)
		wantPositive := !c.ReverseSolution
		if or.IsHole {
			wantPositive = !wantPositive
		}
		if (area > 0) != wantPositive {
			reverseOutPts(or.Pts)
		}
	}
}

func outPtArea(start *outPt) float64 {
	area := 0.0
	op := start
	for {
		next := op.Next
		area += float64(op.Pt.X)*float64(next.Pt.Y) - float64(next.Pt.X)*float64(op.Pt.Y)
		op = next
		if op == start {
			break
		}
	}
	return area / 2
}

// joinCommonEdges reconciles the deferred Join records recorded while
// building output rings, splicing matching rings together.
func (c *Clipper64) joinCommonEdges() {
	for _, j := range c.joins {
		if j.OutPt1 == nil || j.OutPt2 == nil {
			continue
		}
		or1 := getOutRec(c.outRecs[j.OutPt1.Idx])
		or2 := getOutRec(c.outRecs[j.OutPt2.Idx])
		if or1 == or2 || or1.Pts == nil || or2.Pts == nil {
			continue
		}
		// Splice ring 2 into ring 1 at the join points; ring 2 becomes a
		// child under ring 1's ownership.
		tail1, tail2 := j.OutPt1, j.OutPt2
		n1, n2 := tail1.Next, tail2.Next
		tail1.Next = n2
		n2.Prev = tail1
		tail2.Next = n1
		n1.Prev = tail2
		or2.Pts = nil
		or2.Owner = or1
	}
}

func (c *Clipper64) fixupOutPolygon(or *outRec) {
	if or.Pts == nil {
		return
	}
	op := or.Pts
	for {
		next := op.Next
		if next == op {
			break
		}
		if next.Pt == op.Pt {
			op.Next = next.Next
			next.Next.Prev = op
			if or.Pts == next {
				or.Pts = op
			}
			continue
		}
		if !c.PreserveCollinear && isCollinearChain(op, next) {
			op.Next = next.Next
			next.Next.Prev = op
			if or.Pts == next {
				or.Pts = op
			}
			continue
		}
		op = next
		if op == or.Pts {
			break
		}
	}
}

func isCollinearChain(a, b *outPt) bool {
	return CrossProduct128(a.Pt, b.Pt, b.Next.Pt).IsZero()
}

// doSimplePolygons splits rings that touch themselves at a repeated vertex
// (StrictlySimple mode).
func (c *Clipper64) doSimplePolygons() {
	for idx := 0; idx < len(c.outRecs); idx++ {
		or := c.outRecs[idx]
		if or.Pts == nil {
			continue
		}
		op := or.Pts
		for {
			op2 := op.Next
			for op2 != or.Pts {
				if op2.Pt == op.Pt && op2 != op {
					// split: op..op2 becomes a new ring
					newOr := c.newOutRec()
					newOr.IsHole = or.IsHole
					newOr.FirstLeft = or.FirstLeft

					opPrev, op2Prev := op.Prev, op2.Prev
					op.Prev = op2Prev
					op2Prev.Next = op
					op2.Prev = opPrev
					opPrev.Next = op2

					newOr.Pts = op2
					p := op2
					for {
						p.Idx = newOr.Idx
						p = p.Next
						if p == op2 {
							break
						}
					}
					or.Pts = op
				}
				op2 = op2.Next
			}
			op = op.Next
			if op == or.Pts {
				break
			}
		}
	}
}

// ==============================================================================
// Result assembly
// ==============================================================================

func (c *Clipper64) buildResult() (closedPaths, openPaths Paths64, ok bool) {
	closedPaths = Paths64{}
	openPaths = Paths64{}
	for _, or := range c.outRecs {
		if or.Pts == nil {
			continue
		}
		path := outPtToPath(or.Pts)
		minLen := 3
		if or.IsOpen {
			minLen = 2
		}
		if len(path) < minLen {
			continue
		}
		if or.IsOpen {
			openPaths = append(openPaths, path)
		} else {
			closedPaths = append(closedPaths, path)
		}
	}
	return closedPaths, openPaths, true
}

func outPtToPath(start *outPt) Path64 {
	var path Path64
	op := start
	for {
		path = append(path, op.Pt)
		op = op.Next
		if op == start {
			break
		}
	}
	return path
}

func (c *Clipper64) buildPolyTree() *PolyTree64 {
	tree := NewPolyTree64()
	nodeFor := make(map[*outRec]*PolyPath64, len(c.outRecs))
	for _, or := range c.outRecs {
		if or.Pts == nil || or.IsOpen {
			continue
		}
		path := outPtToPath(or.Pts)
		if len(path) < 3 {
			continue
		}
		parent := tree
		if or.FirstLeft != nil {
			if p, ok := nodeFor[getOutRec(or.FirstLeft)]; ok {
				parent = p
			}
		}
		nodeFor[or] = parent.AddChild(path)
	}
	return tree
}
