package tui

// Widget is the capability set the widget manager depends on. It is expressed as an
// interface rather than a class hierarchy so the widget set stays
// extensible by library users; widgets never hold a reference back to the
// manager.
type Widget interface {
	// ID returns a stable identifier matching a layout leaf's WidgetID.
	ID() string

	// Handle processes a message, mutating only the widget's own state.
	// A panic raised here is isolated by the dispatcher and
	// must not be assumed to crash the application.
	Handle(msg Message)

	// Render produces a grid of exactly width x height cells. Returning a
	// ragged grid or one of the wrong dimensions violates the contract.
	Render(width, height int) Grid

	// MinSize and MaxSize advise the layout of this widget's size
	// preferences. Layout resolution does not currently consult them
	// directly (constraints are supplied by the layout tree), but widget
	// authors may use them to size their own Render output.
	MinSize() (width, height int)
	MaxSize() (width, height int)

	// CanFocus reports whether this widget is eligible to receive
	// routed key events.
	CanFocus() bool
	// Focused reports the widget's current focus state.
	Focused() bool
	// Focus and Blur toggle focus state; the manager calls these, never
	// the widget itself.
	Focus()
	Blur()

	// Navigation hooks invoked by the default navigation dispatch. Each
	// returns true if it consumed the key.
	HandleUp() bool
	HandleDown() bool
	HandleLeft() bool
	HandleRight() bool
	HandleTab() bool
	HandleEnter() bool
	HandleEscape() bool
}

// Base is an embeddable helper implementing the non-focus-routing parts
// of Widget with sensible zero-value defaults, in the style of the
// teacher's own Base/Component embedding pattern. Widget authors embed
// Base and override only what they need.
type Base struct {
	id       string
	focused  bool
	canFocus bool
}

// NewBase returns a Base with the given id.
func NewBase(id string) Base { return Base{id: id} }

func (b *Base) ID() string { return b.id }

func (b *Base) CanFocus() bool  { return b.canFocus }
func (b *Base) Focused() bool   { return b.focused }
func (b *Base) Focus()          { b.focused = true }
func (b *Base) Blur()           { b.focused = false }
func (b *Base) SetCanFocus(v bool) { b.canFocus = v }

func (b *Base) MinSize() (int, int) { return 0, 0 }
func (b *Base) MaxSize() (int, int) { return 1 << 30, 1 << 30 }

func (b *Base) HandleUp() bool     { return false }
func (b *Base) HandleDown() bool   { return false }
func (b *Base) HandleLeft() bool   { return false }
func (b *Base) HandleRight() bool  { return false }
func (b *Base) HandleTab() bool    { return false }
func (b *Base) HandleEnter() bool  { return false }
func (b *Base) HandleEscape() bool { return false }

// HandleNavigation is the default navigation dispatch helper: given a
// KeyPress key name, it routes to the appropriate HandleXxx hook on the
// widget and reports whether the key was consumed.
func HandleNavigation(w Widget, key string) bool {
	switch key {
	case "up":
		return w.HandleUp()
	case "down":
		return w.HandleDown()
	case "left":
		return w.HandleLeft()
	case "right":
		return w.HandleRight()
	case "tab":
		return w.HandleTab()
	case "enter":
		return w.HandleEnter()
	case "escape":
		return w.HandleEscape()
	default:
		return false
	}
}
