package tui

import "fmt"

// ConstraintError is returned by builder-time constructors that reject an
// invalid argument.
type ConstraintError struct {
	msg string
}

func (e *ConstraintError) Error() string { return e.msg }

// ConstraintKind distinguishes the constraint algebra's cases.
type ConstraintKind uint8

const (
	ConstraintLength ConstraintKind = iota
	ConstraintPercent
	ConstraintRatio
	ConstraintMin
	ConstraintMax
	ConstraintFlex
	ConstraintFill
)

// Constraint governs how one axis of space is allocated to a layout node.
// Construct one via the package-level helpers (Length, Percent, Ratio,
// Min, Max, Flex, Fill) rather than the zero value.
type Constraint struct {
	Kind  ConstraintKind
	Value int // Length: exact cells. Percent: 0-100. Ratio: weight (>0).
}

// Length allocates exactly n cells, clipped to available space.
func Length(n int) Constraint { return Constraint{Kind: ConstraintLength, Value: n} }

// Percent allocates floor(available * p / 100). p must be within [0, 100];
// use PercentChecked to validate eagerly, or ValidateLayout to catch an
// out-of-range value once it's placed in a layout tree.
func Percent(p int) Constraint { return Constraint{Kind: ConstraintPercent, Value: p} }

// PercentChecked validates p is within [0, 100] before constructing.
func PercentChecked(p int) (Constraint, error) {
	if p < 0 || p > 100 {
		return Constraint{}, &ConstraintError{msg: fmt.Sprintf("tui: Percent(%d) out of range [0,100]", p)}
	}
	return Percent(p), nil
}

// Ratio shares space left over after fixed allocations in proportion to
// r / sum(ratios). r must be > 0.
func Ratio(r int) Constraint { return Constraint{Kind: ConstraintRatio, Value: r} }

// RatioChecked validates r > 0 before constructing.
func RatioChecked(r int) (Constraint, error) {
	if r <= 0 {
		return Constraint{}, &ConstraintError{msg: fmt.Sprintf("tui: Ratio(%d) must be > 0", r)}
	}
	return Ratio(r), nil
}

// validate reports a ConstraintError if c carries an out-of-range value
// for its kind, the same check PercentChecked/RatioChecked perform. It is
// the hook layout-tree construction uses to reject invalid constraints
// at build time rather than silently mis-allocating space.
func (c Constraint) validate() error {
	switch c.Kind {
	case ConstraintPercent:
		if c.Value < 0 || c.Value > 100 {
			return &ConstraintError{msg: fmt.Sprintf("tui: Percent(%d) out of range [0,100]", c.Value)}
		}
	case ConstraintRatio:
		if c.Value <= 0 {
			return &ConstraintError{msg: fmt.Sprintf("tui: Ratio(%d) must be > 0", c.Value)}
		}
	}
	return nil
}

// Min bounds the allocation to at least n cells (clipped to available).
func Min(n int) Constraint { return Constraint{Kind: ConstraintMin, Value: n} }

// Max bounds the allocation to at most n cells (clipped to available).
func Max(n int) Constraint { return Constraint{Kind: ConstraintMax, Value: n} }

// Flex takes an equal share of leftover space among flexible siblings.
func Flex() Constraint { return Constraint{Kind: ConstraintFlex} }

// Fill is an alias for Flex: both take equal shares of leftover space.
func Fill() Constraint { return Constraint{Kind: ConstraintFill} }

func (k ConstraintKind) flexible() bool {
	return k == ConstraintFlex || k == ConstraintFill || k == ConstraintRatio
}

// ResolveAxis allocates an available length A among the given constraints,
// fixed constraints (Length, Percent, Min, Max) are allocated
// first in list order, clipping in child order when they overrun A; the
// remainder is then distributed to Ratio/Flex/Fill entries in proportion
// to their weight, with any rounding leftover assigned to the last
// flexible entry. Min/Max entries with no matching sibling semantics are
// clipped to available space directly (there is no separate "content
// size" input at this layer — that is a widget concern).
func ResolveAxis(available int, constraints []Constraint) []int {
	n := len(constraints)
	out := make([]int, n)
	if n == 0 || available <= 0 {
		return out
	}

	remaining := available
	flexIdx := make([]int, 0, n)
	weight := make([]int, 0, n) // parallel to flexIdx: Ratio uses its value, Flex/Fill use weight 1
	totalWeight := 0

	for i, c := range constraints {
		if c.Kind.flexible() {
			w := 1
			if c.Kind == ConstraintRatio {
				w = c.Value
			}
			flexIdx = append(flexIdx, i)
			weight = append(weight, w)
			totalWeight += w
			continue
		}
		var want int
		switch c.Kind {
		case ConstraintLength:
			want = c.Value
		case ConstraintPercent:
			want = available * c.Value / 100
		case ConstraintMin:
			want = c.Value
		case ConstraintMax:
			want = c.Value
		}
		if want < 0 {
			want = 0
		}
		if want > remaining {
			want = remaining
		}
		out[i] = want
		remaining -= want
	}

	if len(flexIdx) == 0 || remaining <= 0 || totalWeight <= 0 {
		return out
	}

	assigned := 0
	for pos, i := range flexIdx {
		isLast := pos == len(flexIdx)-1
		share := remaining * weight[pos] / totalWeight
		if isLast {
			share = remaining - assigned
		}
		if share < 0 {
			share = 0
		}
		out[i] = share
		assigned += share
	}

	return out
}
