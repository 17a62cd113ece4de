package floodfill

import (
	"errors"

	"github.com/katalvlaran/lvlpath/openlist"
)

// Sentinel errors for flood-fill execution.
var (
	// ErrNilSpace is returned when a nil space is passed.
	ErrNilSpace = errors.New("floodfill: space is nil")

	// ErrNilOpenList is returned when Iterative receives a nil frontier.
	ErrNilOpenList = errors.New("floodfill: open list is nil")
)

// Space is the capability contract a fillable domain exposes to the
// engine. The engine depends only on this interface, never on a concrete
// domain type.
type Space[P any] interface {
	// Matches reports whether p still carries the fill target.
	Matches(p P) bool

	// Fill relabels p with the replacement value/color.
	Fill(p P)

	// Adjacents returns the positions reachable in one fill step from p.
	Adjacents(p P) []P
}

// Seeker is an optional capability: locating the nearest target-matching
// position when the start itself does not match. Spaces that cannot seek
// simply don't implement it.
type Seeker[P any] interface {
	Nearest(start P) (P, bool)
}

// Recursive relabels the connected target-matching region reachable from
// start, recursing through the call stack. If start does not match, the
// nearest matching position is located first (when the space is a
// Seeker); if none exists the call terminates with no effect.
//
// Complexity: O(R·d) time, O(R) stack depth.
func Recursive[P any](space Space[P], start P) error {
	if space == nil {
		return ErrNilSpace
	}
	seed, ok := seek(space, start)
	if !ok {
		return nil
	}
	fill(space, seed)

	return nil
}

// fill relabels p and recurses into each still-matching adjacent position.
func fill[P any](space Space[P], p P) {
	space.Fill(p)
	for _, q := range space.Adjacents(p) {
		if space.Matches(q) {
			fill(space, q)
		}
	}
}

// Iterative relabels the same region as Recursive but substitutes an
// explicit open list for the call stack. Supplying a LIFO list simulates
// the recursive visitation order; a FIFO list fills level by level. The
// final labeling is identical either way.
//
// Complexity: O(R·d) time, O(R) frontier memory.
func Iterative[P any](space Space[P], start P, open openlist.List[P]) error {
	if space == nil {
		return ErrNilSpace
	}
	if open == nil {
		return ErrNilOpenList
	}
	seed, ok := seek(space, start)
	if !ok {
		return nil
	}

	open.Clear()
	open.Push(seed)
	for {
		p, ok := open.Pop()
		if !ok {
			break
		}
		// A position may enter the frontier more than once; only the
		// first arrival still matches, later duplicates are skipped.
		if !space.Matches(p) {
			continue
		}
		space.Fill(p)
		for _, q := range space.Adjacents(p) {
			open.Push(q)
		}
	}

	return nil
}

// seek resolves the fill seed: start itself when it matches, otherwise
// the nearest matching position if the space can search for one.
func seek[P any](space Space[P], start P) (P, bool) {
	if space.Matches(start) {
		return start, true
	}
	if sk, ok := space.(Seeker[P]); ok {
		return sk.Nearest(start)
	}
	var zero P

	return zero, false
}
