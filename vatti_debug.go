package clipper

import (
	"fmt"
	"io"
	"os"
)

// Debug logging infrastructure for the sweep engine. Disabled by default and
// effectively free when VattiDebug is false.
var (
	// VattiDebug enables detailed debug logging when true.
	VattiDebug = false
	// VattiDebugOutput is where debug output goes (default: os.Stdout).
	VattiDebugOutput io.Writer = os.Stdout
)

// debugLog prints a debug message if VattiDebug is enabled.
func debugLog(format string, args ...interface{}) {
	if VattiDebug {
		fmt.Fprintf(VattiDebugOutput, "[VATTI] "+format+"\n", args...)
	}
}

// debugLogPhase prints a phase separator in debug output.
func debugLogPhase(phase string) {
	if VattiDebug {
		fmt.Fprintf(VattiDebugOutput, "\n========================================\n")
		fmt.Fprintf(VattiDebugOutput, "PHASE: %s\n", phase)
		fmt.Fprintf(VattiDebugOutput, "========================================\n\n")
	}
}

// debugLogEdge prints detailed edge information.
func debugLogEdge(label string, e *edge) {
	if VattiDebug && e != nil {
		fmt.Fprintf(VattiDebugOutput, "  %s:\n", label)
		fmt.Fprintf(VattiDebugOutput, "    Bot: %v, Top: %v, Curr: %v\n", e.Bot, e.Top, e.Curr)
		fmt.Fprintf(VattiDebugOutput, "    Dx: %.4f\n", e.Dx)
		fmt.Fprintf(VattiDebugOutput, "    WindDelta: %d, WindCnt: %d, WindCnt2: %d\n", e.WindDelta, e.WindCnt, e.WindCnt2)
		fmt.Fprintf(VattiDebugOutput, "    Side: %v, PolyTyp: %v\n", e.Side, e.PolyTyp)
	}
}

// debugLogAEL prints the entire active edge list.
func debugLogAEL(ael *edge) {
	if !VattiDebug {
		return
	}

	fmt.Fprintf(VattiDebugOutput, "  Active Edge List (left to right):\n")
	if ael == nil {
		fmt.Fprintf(VattiDebugOutput, "    (empty)\n")
		return
	}

	count := 0
	for e := ael; e != nil; e = e.NextInAEL {
		count++
		polyTyp := "subject"
		if e.PolyTyp == Clip {
			polyTyp = "clip"
		}
		fmt.Fprintf(VattiDebugOutput, "    [%d] CurrX=%d Dx=%.4f WindDelta=%d WC=%d/%d Type=%s Side=%v\n",
			count, e.Curr.X, e.Dx, e.WindDelta, e.WindCnt, e.WindCnt2, polyTyp, e.Side)
	}
}

// debugLogOutRec prints output record information.
func debugLogOutRec(label string, or *outRec) {
	if !VattiDebug || or == nil {
		return
	}

	fmt.Fprintf(VattiDebugOutput, "  %s (OutRec #%d):\n", label, or.Idx)

	if or.Pts == nil {
		fmt.Fprintf(VattiDebugOutput, "    (no points)\n")
		return
	}

	fmt.Fprintf(VattiDebugOutput, "    Points: ")
	start := or.Pts
	current := start
	count := 0
	for {
		fmt.Fprintf(VattiDebugOutput, "%v ", current.Pt)
		current = current.Next
		count++
		if current == start || count > 100 {
			break
		}
	}
	fmt.Fprintf(VattiDebugOutput, "\n    Total points: %d\n", count)
}

// debugLogWindingCalc prints winding count calculation details.
func debugLogWindingCalc(e *edge, isContributing bool) {
	if !VattiDebug || e == nil {
		return
	}

	polyTyp := "subject"
	if e.PolyTyp == Clip {
		polyTyp = "clip"
	}

	fmt.Fprintf(VattiDebugOutput, "    Edge at X=%d (type=%s): WC=%d/%d, WindDelta=%d, Contributing=%v\n",
		e.Curr.X, polyTyp, e.WindCnt, e.WindCnt2, e.WindDelta, isContributing)
}
