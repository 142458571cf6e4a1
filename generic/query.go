/*
query.go - Point-in-time lookup and path resolution

PURPOSE:
  Answers "which interval is active at instant T", at one level or
  across several nesting levels, without eagerly materializing the full
  subdivision tree when only one path is needed.

BOUNDARY SEMANTICS:
  Containment is closed-closed, so an instant on a shared edge formally
  matches two adjacent intervals. The tie-break is fixed: the LATER
  interval wins. FindActive scans the timeline from the end, which
  makes the tie-break a property of the scan order rather than a
  special case.

OUT-OF-RANGE POLICY:
  Instants before the first interval or after the last clamp to the
  nearest boundary interval instead of failing. Callers that need
  strict rejection can compare the instant against Timeline.Span first.

LAZY vs EAGER:
  FindActivePath materializes only the subdivisions along the active
  path (depth intervals for a timeline of N^depth potential nodes).
  BuildFullTree is the eager counterpart; tests hold the two equivalent.
*/
package generic

import (
	"time"

	"github.com/shopspring/decimal"
)

// FindActive returns the interval containing instant, preferring the
// later interval when the instant sits exactly on a shared edge.
// Out-of-range instants clamp to the first or last interval.
func FindActive(tl Timeline, instant time.Time) (Interval, error) {
	if len(tl) == 0 {
		return Interval{}, ErrEmptyTimeline
	}
	if instant.Before(tl[0].Start) {
		return tl[0], nil
	}
	last := tl[len(tl)-1]
	if instant.After(last.End) {
		return last, nil
	}
	// Reverse scan: on a shared edge the later interval is found first.
	for i := len(tl) - 1; i >= 0; i-- {
		if tl[i].Contains(instant) {
			return tl[i], nil
		}
	}
	// Unreachable for contiguous timelines.
	return last, nil
}

// FindActivePath resolves the active interval at each nesting level
// from 0 through depth, subdividing lazily along the way. The result
// has depth+1 intervals: path[0] is the active level-0 interval,
// path[d] the active interval d levels down.
func FindActivePath(anchor Anchor, seq *Sequence, spanYears decimal.Decimal, instant time.Time, depth int) ([]Interval, error) {
	tl, err := BuildTimeline(anchor, seq, spanYears)
	if err != nil {
		return nil, err
	}
	return descend(tl, seq, instant, depth)
}

func descend(tl Timeline, seq *Sequence, instant time.Time, depth int) ([]Interval, error) {
	active, err := FindActive(tl, instant)
	if err != nil {
		return nil, err
	}
	path := make([]Interval, 0, depth+1)
	path = append(path, active)

	for level := 0; level < depth; level++ {
		children, err := Subdivide(active, seq)
		if err != nil {
			return nil, err
		}
		active, err = FindActive(children, instant)
		if err != nil {
			return nil, err
		}
		path = append(path, active)
	}
	return path, nil
}

// =============================================================================
// EAGER TREE - Full materialization for display callers
// =============================================================================

// TreeNode is one interval together with its eagerly-built children.
type TreeNode struct {
	Interval Interval
	Children []*TreeNode
}

// BuildFullTree builds the level-0 timeline and eagerly subdivides
// every interval down to depth levels. Display callers that render
// whole tables use this; point queries should prefer FindActivePath.
func BuildFullTree(anchor Anchor, seq *Sequence, spanYears decimal.Decimal, depth int) ([]*TreeNode, error) {
	tl, err := BuildTimeline(anchor, seq, spanYears)
	if err != nil {
		return nil, err
	}
	return expand(tl, seq, depth)
}

func expand(tl Timeline, seq *Sequence, depth int) ([]*TreeNode, error) {
	nodes := make([]*TreeNode, 0, len(tl))
	for _, iv := range tl {
		node := &TreeNode{Interval: iv}
		if depth > 0 {
			children, err := Subdivide(iv, seq)
			if err != nil {
				return nil, err
			}
			node.Children, err = expand(children, seq, depth-1)
			if err != nil {
				return nil, err
			}
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// ActivePath walks an eagerly-built tree and returns the active
// interval at each level, using the same containment and tie-break
// rules as FindActive. Equivalent to FindActivePath over the same
// inputs.
func ActivePath(nodes []*TreeNode, instant time.Time) ([]Interval, error) {
	var path []Interval
	for len(nodes) > 0 {
		tl := make(Timeline, len(nodes))
		for i, n := range nodes {
			tl[i] = n.Interval
		}
		active, err := FindActive(tl, instant)
		if err != nil {
			return nil, err
		}
		path = append(path, active)

		next := []*TreeNode(nil)
		for _, n := range nodes {
			if n.Interval.SegmentID == active.SegmentID && n.Interval.Start.Equal(active.Start) {
				next = n.Children
				break
			}
		}
		nodes = next
	}
	if path == nil {
		return nil, ErrEmptyTimeline
	}
	return path, nil
}
