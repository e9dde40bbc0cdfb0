package tui

import (
	"fmt"
	"io"
)

// CursorManager owns the terminal cursor side-channel: it
// consumes CursorMove/CursorShow/CursorHide/Stop messages from its own
// channel and writes the corresponding escape sequences, independent of
// the grid-diffing main render path.
type CursorManager struct {
	w       io.Writer
	visible bool
	row, col int
	shape   CursorShape
}

// NewCursorManager returns a manager writing to w. The cursor starts
// hidden at (0,0), matching the renderer hiding it on alternate-screen
// entry.
func NewCursorManager(w io.Writer) *CursorManager {
	return &CursorManager{w: w, visible: false, shape: CursorShapeDefault}
}

// Handle applies one cursor-channel message.
func (c *CursorManager) Handle(msg Message) {
	switch msg.Kind {
	case MsgCursorMove:
		c.row, c.col = msg.CursorRow, msg.CursorCol
		if msg.CursorShape != CursorShapeDefault {
			c.shape = msg.CursorShape
		}
		c.writePosition()
		if msg.CursorShape != CursorShapeDefault {
			c.writeShape()
		}
		if msg.CursorColorSet {
			c.writeColor(msg.CursorColor)
		}
	case MsgCursorShow:
		c.visible = true
		c.writeVisibility()
	case MsgCursorHide:
		c.visible = false
		c.writeVisibility()
	case MsgStop:
		c.visible = true
		c.shape = CursorShapeDefault
		c.writeVisibility()
		c.writeShape()
	}
}

func (c *CursorManager) writePosition() {
	fmt.Fprintf(c.w, "\x1b[%d;%dH", c.row+1, c.col+1)
}

func (c *CursorManager) writeVisibility() {
	if c.visible {
		io.WriteString(c.w, "\x1b[?25h")
	} else {
		io.WriteString(c.w, "\x1b[?25l")
	}
}

func (c *CursorManager) writeShape() {
	fmt.Fprintf(c.w, "\x1b[%d q", int(c.shape))
}

// writeColor emits an OSC 12 cursor-color sequence directly. This is a
// distinct OSC number from the OSC 52 clipboard sequence the renderer
// builds via go-osc52, so it is written as a literal escape sequence
// rather than going through a clipboard-shaped encoder.
func (c *CursorManager) writeColor(name ColorName) {
	rgb, ok := cursorColorRGB(name)
	if !ok {
		return
	}
	fmt.Fprintf(c.w, "\x1b]12;%s\x07", rgb)
}

// cursorColorRGB maps the closed ColorName palette to an RGB hex string
// OSC 12 can carry. Only the eight base colors plus bright variants are
// meaningful here; ColorDefault has no fixed RGB and is skipped.
func cursorColorRGB(name ColorName) (string, bool) {
	rgb := map[ColorName]string{
		Black:          "#000000",
		Red:            "#cc0000",
		Green:          "#4e9a06",
		Yellow:         "#c4a000",
		Blue:           "#3465a4",
		Magenta:        "#75507b",
		Cyan:           "#06989a",
		White:          "#d3d7cf",
		BrightBlack:    "#555753",
		BrightRed:      "#ef2929",
		BrightGreen:    "#8ae234",
		BrightYellow:   "#fce94f",
		BrightBlue:     "#729fcf",
		BrightMagenta:  "#ad7fa8",
		BrightCyan:     "#34e2e2",
		BrightWhite:    "#eeeeec",
	}
	v, ok := rgb[name]
	return v, ok
}
