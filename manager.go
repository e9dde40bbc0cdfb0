package tui

// KeyHandler is a global key handler registered on the manager. It
// returns true if it consumed the key.
type KeyHandler func(key string) bool

// Manager owns the widget set, the layout root, focus state, and the
// global key-handler registry. It is the sole owner of these
// structures; the dispatcher drives it but never mutates its state
// directly.
type Manager struct {
	widgets map[string]Widget
	order   []string // insertion order, used as a focus fallback
	root    *LayoutNode

	focusOrder []string // ids eligible for routed focus, in layout order
	focusIdx   int       // index into focusOrder, or -1 if none focused

	keyHandlers map[string][]KeyHandler
	submitHandlers map[string][]func(payload any)

	theme Theme
}

// NewManager creates an empty manager. Call SetLayout and AddWidget to
// populate it before routing events. The theme defaults to ThemeDark.
func NewManager() *Manager {
	return &Manager{
		widgets:        make(map[string]Widget),
		keyHandlers:    make(map[string][]KeyHandler),
		submitHandlers: make(map[string][]func(payload any)),
		focusIdx:       -1,
		theme:          ThemeDark,
	}
}

// Theme returns the manager's active theme, for widgets that paint
// themselves with Cell.Apply against a shared palette instead of
// hardcoding colors.
func (m *Manager) Theme() Theme { return m.theme }

// SetTheme replaces the manager's active theme.
func (m *Manager) SetTheme(t Theme) { m.theme = t }

// AddWidget registers a widget under its own ID.
func (m *Manager) AddWidget(w Widget) {
	id := w.ID()
	if _, exists := m.widgets[id]; !exists {
		m.order = append(m.order, id)
	}
	m.widgets[id] = w
	m.rebuildFocusOrder()
}

// SetLayout installs the layout tree used both for composition and for
// deriving focus order (breadth-first, left-to-right leaves).
func (m *Manager) SetLayout(root *LayoutNode) {
	m.root = root
	m.rebuildFocusOrder()
}

// Widget returns the widget registered under id, if any.
func (m *Manager) Widget(id string) (Widget, bool) {
	w, ok := m.widgets[id]
	return w, ok
}

// RegisterKeyHandler adds a global handler for the given key (lower-cased
// at registration).
func (m *Manager) RegisterKeyHandler(key string, h KeyHandler) {
	key = lowerASCII(key)
	m.keyHandlers[key] = append(m.keyHandlers[key], h)
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}

// rebuildFocusOrder computes the focus order: leaves of the layout tree,
// breadth-first left-to-right, restricted to CanFocus()==true widgets.
// If the layout has no leaves at all, it falls back to widget insertion
// order.
func (m *Manager) rebuildFocusOrder() {
	var leafIDs []string
	if m.root != nil {
		leafIDs = breadthFirstLeaves(m.root)
	}

	var order []string
	if len(leafIDs) == 0 {
		order = append(order, m.order...)
	} else {
		order = leafIDs
	}

	var focusable []string
	for _, id := range order {
		w, ok := m.widgets[id]
		if ok && w.CanFocus() {
			focusable = append(focusable, id)
		}
	}

	previousID := ""
	if m.focusIdx >= 0 && m.focusIdx < len(m.focusOrder) {
		previousID = m.focusOrder[m.focusIdx]
	}

	m.focusOrder = focusable
	if len(m.focusOrder) == 0 {
		m.focusIdx = -1
		return
	}
	for i, id := range m.focusOrder {
		if id == previousID {
			m.focusIdx = i
			return
		}
	}
	// Previously focused widget is gone (or nothing was focused yet):
	// focus the first eligible widget.
	m.focusIdx = 0
	if w, ok := m.widgets[m.focusOrder[0]]; ok {
		w.Focus()
	}
}

// breadthFirstLeaves walks the layout tree breadth-first, left to right,
// collecting leaf widget ids.
func breadthFirstLeaves(root *LayoutNode) []string {
	var ids []string
	queue := []*LayoutNode{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == nil {
			continue
		}
		if n.isLeaf() {
			ids = append(ids, n.WidgetID)
			continue
		}
		queue = append(queue, n.Children...)
	}
	return ids
}

// FocusNext rotates focus to the next widget in focus order.
func (m *Manager) FocusNext() { m.moveFocus(1) }

// FocusPrev rotates focus to the previous widget in focus order.
func (m *Manager) FocusPrev() { m.moveFocus(-1) }

func (m *Manager) moveFocus(delta int) {
	n := len(m.focusOrder)
	if n == 0 {
		return
	}
	if m.focusIdx >= 0 {
		if w, ok := m.widgets[m.focusOrder[m.focusIdx]]; ok {
			w.Blur()
		}
	}
	if m.focusIdx < 0 {
		m.focusIdx = 0
	} else {
		m.focusIdx = ((m.focusIdx+delta)%n + n) % n
	}
	if w, ok := m.widgets[m.focusOrder[m.focusIdx]]; ok {
		w.Focus()
	}
}

// SetFocus moves focus to a specific widget id, if it is in focus order.
func (m *Manager) SetFocus(id string) {
	for i, candidate := range m.focusOrder {
		if candidate == id {
			if m.focusIdx >= 0 {
				if w, ok := m.widgets[m.focusOrder[m.focusIdx]]; ok {
					w.Blur()
				}
			}
			m.focusIdx = i
			if w, ok := m.widgets[id]; ok {
				w.Focus()
			}
			return
		}
	}
}

// FocusedID returns the currently focused widget's id, or "" if none.
func (m *Manager) FocusedID() string {
	if m.focusIdx < 0 || m.focusIdx >= len(m.focusOrder) {
		return ""
	}
	return m.focusOrder[m.focusIdx]
}

// Route delivers a KeyPress/InputEvent/PasteEvent message per the key
// routing rules:
//  1. "tab" -> FocusNext, consumed.
//  2. "shift+tab" -> FocusPrev, consumed.
//  3. registered global handlers for the key, in registration order;
//     first to return true stops propagation.
//  4. otherwise, delivered to the focused widget.
func (m *Manager) Route(msg Message) {
	if msg.Kind == MsgKeyPress {
		switch msg.Key {
		case "tab":
			m.FocusNext()
			return
		case "shift+tab":
			m.FocusPrev()
			return
		}
		for _, h := range m.keyHandlers[lowerASCII(msg.Key)] {
			if h(msg.Key) {
				return
			}
		}
	}
	id := m.FocusedID()
	if id == "" {
		return
	}
	if w, ok := m.widgets[id]; ok {
		w.Handle(msg)
	}
}

// RegisterSubmitHandler registers fn to run whenever widgetID emits a
// WidgetEvent —
// widget authors call WidgetEventMsg(w.ID(), payload) from their own
// Handle implementation (e.g. on an Enter keypress) and route it back
// through the manager via DispatchWidgetEvent.
func (m *Manager) RegisterSubmitHandler(widgetID string, fn func(payload any)) {
	m.submitHandlers[widgetID] = append(m.submitHandlers[widgetID], fn)
}

// DispatchWidgetEvent runs any submit handlers registered for a
// WidgetEvent message's widget id.
func (m *Manager) DispatchWidgetEvent(msg Message) {
	if msg.Kind != MsgWidgetEvent {
		return
	}
	for _, fn := range m.submitHandlers[msg.WidgetID] {
		fn(msg.Payload)
	}
}

// Broadcast delivers msg to every registered widget, in insertion order.
func (m *Manager) Broadcast(msg Message) {
	for _, id := range m.order {
		if w, ok := m.widgets[id]; ok {
			w.Handle(msg)
		}
	}
}

// Compose resolves the layout against a width x height frame and blits
// every widget's rendered output into a single grid. A
// widget whose resolved rectangle has zero width or height is skipped
// entirely — it is never asked to render.
func (m *Manager) Compose(width, height int) Grid {
	frame := NewGrid(width, height)
	if m.root == nil {
		return frame
	}
	rects := Resolve(m.root, NewRect(0, 0, width, height))
	for id, rect := range rects {
		if rect.Empty() {
			continue
		}
		w, ok := m.widgets[id]
		if !ok {
			continue
		}
		g := w.Render(rect.Width, rect.Height)
		frame.Blit(g, rect.X, rect.Y)
	}
	return frame
}
