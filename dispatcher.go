package tui

import (
	"log/slog"
)

// Dispatcher owns the widget manager and tracks the current terminal
// size. It is the sole consumer of the main channel, translating each
// incoming message into manager calls and, where a recompose is needed,
// pushing a freshly composed grid onward to the screen buffer. Modeled on
// App.handleResize/render dispatch loop (app.go), generalized from
// riffkey's router callback model to this pipeline's closed message set.
type Dispatcher struct {
	manager      *Manager
	width        int
	height       int
	out          chan<- Message
	log          *slog.Logger
}

// NewDispatcher returns a dispatcher that pushes composed frames to out.
// width/height are the initial terminal dimensions.
func NewDispatcher(manager *Manager, width, height int, out chan<- Message, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{manager: manager, width: width, height: height, out: out, log: log}
}

// Handle processes one message from the main channel. It returns false
// when msg was a Stop, signalling the caller to forward Stop downstream
// and exit its own loop.
func (d *Dispatcher) Handle(msg Message) bool {
	switch msg.Kind {
	case MsgInputEvent, MsgKeyPress, MsgPasteEvent:
		d.routeSafely(msg)
		d.push(d.compose())

	case MsgCommand:
		switch msg.Name {
		case "focus_next":
			d.manager.FocusNext()
		case "focus_prev":
			d.manager.FocusPrev()
		default:
			d.broadcastSafely(msg)
		}
		d.push(d.compose())

	case MsgRenderRequest:
		d.broadcastSafely(msg)
		d.push(d.compose())

	case MsgResizeEvent:
		d.width, d.height = msg.Cols, msg.Rows
		d.push(d.compose())

	case MsgWidgetEvent:
		d.manager.DispatchWidgetEvent(msg)
		d.push(d.compose())

	case MsgStop:
		if d.out != nil {
			d.out <- msg
		}
		return false
	}
	return true
}

func (d *Dispatcher) compose() Grid {
	return d.manager.Compose(d.width, d.height)
}

func (d *Dispatcher) push(g Grid) {
	if d.out != nil {
		d.out <- ScreenUpdateMsg(g)
	}
}

// routeSafely and broadcastSafely isolate a widget's Handle panic so one
// misbehaving widget cannot take down the event loop.
func (d *Dispatcher) routeSafely(msg Message) {
	defer d.recoverFrom("route", msg)
	d.manager.Route(msg)
}

func (d *Dispatcher) broadcastSafely(msg Message) {
	defer d.recoverFrom("broadcast", msg)
	d.manager.Broadcast(msg)
}

func (d *Dispatcher) recoverFrom(op string, msg Message) {
	if r := recover(); r != nil {
		d.log.Error("widget handler panicked", "op", op, "kind", msg.Kind, "recovered", r)
	}
}
