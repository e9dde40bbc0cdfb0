package tui

import "time"

// Message is the tagged-value type passed on every channel in the
// pipeline. It is a closed set of kinds; each kind carries only
// the fields relevant to it.
type Message struct {
	Kind MessageKind

	// Stop
	Reason string

	// InputEvent
	Char rune
	Time time.Time

	// KeyPress
	Key string

	// PasteEvent
	Paste string

	// Command
	Name    string
	Payload any

	// ResizeEvent
	Cols, Rows int

	// ScreenUpdate
	Grid Grid

	// ScreenDiff
	Changes []RowChange

	// RenderRequest
	RenderReason string

	// CursorMove / CursorShow / CursorHide
	CursorRow, CursorCol int
	CursorShape          CursorShape
	CursorColorSet       bool
	CursorColor          ColorName

	// CopyToClipboard
	ClipboardText string

	// WidgetEvent
	WidgetID string
}

// MessageKind enumerates the closed set of message variants.
type MessageKind uint8

const (
	MsgStop MessageKind = iota
	MsgInputEvent
	MsgKeyPress
	MsgPasteEvent
	MsgCommand
	MsgResizeEvent
	MsgScreenUpdate
	MsgScreenDiff
	MsgRenderRequest
	MsgCursorMove
	MsgCursorHide
	MsgCursorShow
	MsgCopyToClipboard
	MsgWidgetEvent
)

// RowChange is one entry in a ScreenDiff: a row index and its full new
// contents.
type RowChange struct {
	Row   int
	Cells []Cell
}

// Constructors for each message kind, one per message kind.

func StopMsg(reason string) Message { return Message{Kind: MsgStop, Reason: reason} }

func InputEventMsg(ch rune, t time.Time) Message {
	return Message{Kind: MsgInputEvent, Char: ch, Time: t}
}

func KeyPressMsg(key string) Message { return Message{Kind: MsgKeyPress, Key: key} }

func PasteEventMsg(content string) Message { return Message{Kind: MsgPasteEvent, Paste: content} }

func CommandMsg(name string, payload any) Message {
	return Message{Kind: MsgCommand, Name: name, Payload: payload}
}

func ResizeEventMsg(cols, rows int) Message {
	return Message{Kind: MsgResizeEvent, Cols: cols, Rows: rows}
}

func ScreenUpdateMsg(g Grid) Message { return Message{Kind: MsgScreenUpdate, Grid: g} }

func ScreenDiffMsg(changes []RowChange) Message {
	return Message{Kind: MsgScreenDiff, Changes: changes}
}

func RenderRequestMsg(reason string) Message {
	return Message{Kind: MsgRenderRequest, RenderReason: reason}
}

func CursorMoveMsg(row, col int) Message {
	return Message{Kind: MsgCursorMove, CursorRow: row, CursorCol: col}
}

func CursorHideMsg() Message { return Message{Kind: MsgCursorHide} }

func CursorShowMsg() Message { return Message{Kind: MsgCursorShow} }

func CopyToClipboardMsg(text string) Message {
	return Message{Kind: MsgCopyToClipboard, ClipboardText: text}
}

func WidgetEventMsg(widgetID string, payload any) Message {
	return Message{Kind: MsgWidgetEvent, WidgetID: widgetID, Payload: payload}
}

// CursorShape mirrors the DECSCUSR shape vocabulary. It is an optional
// annotation on CursorMove for widgets that want a specific cursor
// presentation.
type CursorShape int

const (
	CursorShapeDefault        CursorShape = 0
	CursorShapeBlockBlink     CursorShape = 1
	CursorShapeBlock          CursorShape = 2
	CursorShapeUnderlineBlink CursorShape = 3
	CursorShapeUnderline      CursorShape = 4
	CursorShapeBarBlink       CursorShape = 5
	CursorShapeBar            CursorShape = 6
)
