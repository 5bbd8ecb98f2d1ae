package clipper

import "errors"

// Sentinel errors returned by this package. Callers should compare with
// errors.Is rather than matching on error text.
var (
	// ErrInvalidRectangle indicates an invalid rectangle was provided (must have exactly 4 points).
	ErrInvalidRectangle = errors.New("clipper: invalid rectangle, must have exactly 4 points")

	// ErrNotImplemented indicates a feature is not yet implemented.
	ErrNotImplemented = errors.New("clipper: not implemented")

	// ErrInvalidInput indicates invalid input parameters.
	ErrInvalidInput = errors.New("clipper: invalid input parameters")

	// ErrInvalidFillRule indicates a FillRule value outside its valid range.
	ErrInvalidFillRule = errors.New("clipper: invalid fill rule")

	// ErrInvalidClipType indicates a ClipType value outside its valid range.
	ErrInvalidClipType = errors.New("clipper: invalid clip type")

	// ErrInvalidParameter indicates a numeric parameter outside its valid range (epsilon <= 0, etc).
	ErrInvalidParameter = errors.New("clipper: invalid parameter")

	// ErrInvalidOptions indicates invalid OffsetOptions values (miterLimit <= 0, etc).
	ErrInvalidOptions = errors.New("clipper: invalid offset options")

	// ErrInvalidJoinType indicates a JoinType value outside its valid range.
	ErrInvalidJoinType = errors.New("clipper: invalid join type")

	// ErrInvalidEndType indicates an EndType value outside its valid range.
	ErrInvalidEndType = errors.New("clipper: invalid end type")

	// ErrEmptyPath indicates a nil or empty path was given where a non-empty path is required.
	ErrEmptyPath = errors.New("clipper: empty path")

	// ErrDegeneratePolygon indicates a polygon with fewer than 3 points.
	ErrDegeneratePolygon = errors.New("clipper: degenerate polygon, fewer than 3 points")

	// ErrResultOverflow indicates a 64-bit result could not be converted to 32-bit coordinates.
	ErrResultOverflow = errors.New("clipper: result overflows 32-bit coordinate range")

	// ErrInt32Overflow indicates a 64-bit coordinate could not be represented as int32.
	ErrInt32Overflow = errors.New("clipper: coordinate overflows int32 range")

	// ErrOpenPathWithPathsOutput indicates open subject paths were supplied to an
	// operation that only returns a flat Paths64 result; use BooleanOp64 directly
	// to retrieve the open-path solution separately.
	ErrOpenPathWithPathsOutput = errors.New("clipper: open paths require BooleanOp64's solutionOpen return")

	// ErrIntersectionOrderUnresolvable indicates the sweep could not find a consistent
	// adjacent-swap ordering for a scanbeam's intersection list.
	ErrIntersectionOrderUnresolvable = errors.New("clipper: intersection order unresolvable at scanbeam")

	// ErrInternalInvariant indicates an internal invariant of the sweep was violated.
	// This should never occur; it guards against silent miscomputation.
	ErrInternalInvariant = errors.New("clipper: internal invariant violation")

	// ErrReentrantExecute indicates Execute was called while another Execute on the
	// same Clipper64 was already in progress.
	ErrReentrantExecute = errors.New("clipper: reentrant Execute call")
)
