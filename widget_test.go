package tui

import "testing"

// stubWidget is a minimal Widget used across tests.
type stubWidget struct {
	Base
	renderCalls int
	lastMsg     Message
	navHandled  string
}

func newStubWidget(id string) *stubWidget {
	w := &stubWidget{Base: NewBase(id)}
	w.SetCanFocus(true)
	return w
}

func (w *stubWidget) Handle(msg Message) { w.lastMsg = msg }

func (w *stubWidget) Render(width, height int) Grid {
	w.renderCalls++
	return NewGrid(width, height)
}

func (w *stubWidget) HandleUp() bool     { w.navHandled = "up"; return true }
func (w *stubWidget) HandleDown() bool   { w.navHandled = "down"; return true }
func (w *stubWidget) HandleEnter() bool  { w.navHandled = "enter"; return true }
func (w *stubWidget) HandleEscape() bool { w.navHandled = "escape"; return false }

func TestHandleNavigationDispatch(t *testing.T) {
	w := newStubWidget("x")
	if !HandleNavigation(w, "up") || w.navHandled != "up" {
		t.Error("expected HandleUp to be invoked and consumed")
	}
	if !HandleNavigation(w, "enter") || w.navHandled != "enter" {
		t.Error("expected HandleEnter to be invoked and consumed")
	}
	if HandleNavigation(w, "left") {
		t.Error("Base default HandleLeft must report unconsumed")
	}
}

func TestBaseFocusToggle(t *testing.T) {
	w := newStubWidget("y")
	if w.Focused() {
		t.Error("new widget should start unfocused")
	}
	w.Focus()
	if !w.Focused() {
		t.Error("expected Focus() to set focused state")
	}
	w.Blur()
	if w.Focused() {
		t.Error("expected Blur() to clear focused state")
	}
}
