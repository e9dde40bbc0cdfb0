package tui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
)

// Renderer consumes ScreenDiff/ScreenUpdate/CopyToClipboard/Stop messages
// from the render channel and emits the minimal ANSI needed to bring the
// terminal in line. It owns the alternate-screen, raw-cursor,
// and bracketed-paste lifecycle: each is entered exactly once on the
// first frame and exited exactly once on Stop. Modeled on
// Screen.EnterRawMode/ExitRawMode/Flush/writeCell/writeStyle/writeColor
// (screen.go), generalized from per-cell diffing over a private Buffer to
// row-level ScreenDiff messages produced upstream by the screen buffer.
type Renderer struct {
	w          io.Writer
	isTTY      bool
	entered    bool
	lastStyle  Cell // FG/BG/Bold/Underline of the most recently emitted run
	haveStyle  bool
}

// NewRenderer returns a renderer writing to w. Pass nil to use os.Stdout.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	isTTY := false
	if f, ok := w.(*os.File); ok {
		isTTY = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Renderer{w: w, isTTY: isTTY}
}

// Handle applies one render-channel message.
func (r *Renderer) Handle(msg Message) {
	switch msg.Kind {
	case MsgScreenUpdate:
		r.enterOnce()
		r.renderFull(msg.Grid)
	case MsgScreenDiff:
		r.enterOnce()
		r.renderDiff(msg.Changes)
	case MsgCopyToClipboard:
		r.copyToClipboard(msg.ClipboardText)
	case MsgStop:
		r.exitOnce()
	}
}

func (r *Renderer) enterOnce() {
	if r.entered || !r.isTTY {
		return
	}
	r.entered = true
	io.WriteString(r.w, "\x1b[?1049h") // alternate screen
	io.WriteString(r.w, "\x1b[2J")     // clear
	io.WriteString(r.w, "\x1b[H")      // cursor home
	io.WriteString(r.w, "\x1b[?25l")   // hide cursor (cursor manager owns visibility after this)
	io.WriteString(r.w, "\x1b[?2004h") // bracketed paste
}

func (r *Renderer) exitOnce() {
	if !r.entered {
		return
	}
	r.entered = false
	io.WriteString(r.w, "\x1b[?2004l") // bracketed paste off
	io.WriteString(r.w, "\x1b[?25h")   // show cursor
	io.WriteString(r.w, "\x1b[?1049l") // alternate screen off
	r.haveStyle = false
}

// renderFull writes every cell of g, used for the first frame where there
// is no previous grid to diff against.
func (r *Renderer) renderFull(g Grid) {
	var buf bytes.Buffer
	for y := 0; y < g.Height; y++ {
		r.writeRow(&buf, y, g.Row(y))
	}
	r.flush(&buf)
}

// renderDiff writes only the rows named in changes, each positioned and
// drawn left to right with SGR runs grouped by consecutive cells sharing
// a style.
func (r *Renderer) renderDiff(changes []RowChange) {
	if len(changes) == 0 {
		return
	}
	var buf bytes.Buffer
	for _, rc := range changes {
		r.writeRow(&buf, rc.Row, rc.Cells)
	}
	r.flush(&buf)
}

func (r *Renderer) flush(buf *bytes.Buffer) {
	if buf.Len() == 0 {
		return
	}
	buf.WriteString("\x1b[0m")
	r.haveStyle = false
	r.w.Write(buf.Bytes())
}

func (r *Renderer) writeRow(buf *bytes.Buffer, row int, cells []Cell) {
	fmt.Fprintf(buf, "\x1b[%d;1H", row+1)
	for _, c := range cells {
		r.writeCell(buf, c)
	}
}

func (r *Renderer) writeCell(buf *bytes.Buffer, c Cell) {
	styleKey := Cell{FG: c.FG, BG: c.BG, Bold: c.Bold, Underline: c.Underline}
	if !r.haveStyle || !styleKey.Equal(r.lastStyle) {
		r.writeStyle(buf, styleKey)
		r.lastStyle = styleKey
		r.haveStyle = true
	}
	buf.WriteRune(c.Char)
}

func (r *Renderer) writeStyle(buf *bytes.Buffer, c Cell) {
	buf.WriteString("\x1b[0")
	if c.Bold {
		buf.WriteString(";1")
	}
	if c.Underline {
		buf.WriteString(";4")
	}
	fmt.Fprintf(buf, ";%d", c.FG.SGR(true))
	fmt.Fprintf(buf, ";%d", c.BG.SGR(false))
	buf.WriteByte('m')
}

// copyToClipboard encodes text as an OSC 52 sequence via go-osc52 and
// writes it directly, bypassing the diff path. Any escape sequences
// embedded in text (e.g. a widget that copies already-styled output) are
// stripped first so the clipboard payload carries plain text.
func (r *Renderer) copyToClipboard(text string) {
	text = ansi.Strip(text)
	seq := osc52.New(text)
	switch {
	case strings.Contains(os.Getenv("TERM"), "screen"):
		seq = seq.Screen()
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	}
	var sb strings.Builder
	seq.WriteTo(&sb)
	io.WriteString(r.w, sb.String())
}
