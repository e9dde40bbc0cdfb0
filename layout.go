package tui

// Direction is the axis an interior layout node arranges its children on.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

// LayoutNode is a node in a layout tree: either a leaf bound to a widget
// id, or an interior node with a direction and children. A node is a leaf
// iff WidgetID != "" and Children is empty.
type LayoutNode struct {
	Constraint Constraint
	Direction  Direction
	WidgetID   string
	Children   []*LayoutNode
}

// Leaf builds a leaf node bound to widgetID with the given constraint.
func Leaf(widgetID string, c Constraint) *LayoutNode {
	return &LayoutNode{Constraint: c, WidgetID: widgetID}
}

// Row builds an interior node that arranges its children horizontally.
func Row(c Constraint, children ...*LayoutNode) *LayoutNode {
	return &LayoutNode{Constraint: c, Direction: Horizontal, Children: children}
}

// Column builds an interior node that arranges its children vertically.
func Column(c Constraint, children ...*LayoutNode) *LayoutNode {
	return &LayoutNode{Constraint: c, Direction: Vertical, Children: children}
}

func (n *LayoutNode) isLeaf() bool {
	return n.WidgetID != "" && len(n.Children) == 0
}

// ValidateLayout walks root and its descendants, reporting the first
// ConstraintError found among their Constraint fields (e.g. a Percent
// outside [0,100] or a non-positive Ratio). Builder.Layout calls this so
// an invalid constraint is rejected at build time instead of silently
// mis-allocating space when the tree is later resolved.
func ValidateLayout(root *LayoutNode) error {
	if root == nil {
		return nil
	}
	if err := root.Constraint.validate(); err != nil {
		return err
	}
	for _, child := range root.Children {
		if err := ValidateLayout(child); err != nil {
			return err
		}
	}
	return nil
}

// Resolve maps a layout tree onto a root rectangle, producing a
// widget-id -> rectangle assignment. Resolving the same tree
// against the same rectangle twice yields an identical map (the resolver
// holds no mutable state).
func Resolve(root *LayoutNode, rect Rect) map[string]Rect {
	out := make(map[string]Rect)
	if root == nil {
		return out
	}
	resolveInto(root, rect, out)
	return out
}

func resolveInto(node *LayoutNode, rect Rect, out map[string]Rect) {
	if node == nil {
		return
	}
	if node.isLeaf() {
		out[node.WidgetID] = rect
		return
	}
	if len(node.Children) == 0 {
		return
	}

	constraints := make([]Constraint, len(node.Children))
	for i, c := range node.Children {
		constraints[i] = c.Constraint
	}

	switch node.Direction {
	case Horizontal:
		widths := ResolveAxis(rect.Width, constraints)
		x := rect.X
		for i, child := range node.Children {
			childRect := NewRect(x, rect.Y, widths[i], rect.Height)
			resolveInto(child, childRect, out)
			x += widths[i]
		}
	case Vertical:
		heights := ResolveAxis(rect.Height, constraints)
		y := rect.Y
		for i, child := range node.Children {
			childRect := NewRect(rect.X, y, rect.Width, heights[i])
			resolveInto(child, childRect, out)
			y += heights[i]
		}
	}
}
