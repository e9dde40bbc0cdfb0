package tui

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
)

func TestRendererFullFrameWritesEveryCell(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	g := gridFilledWith(2, 1, 'x')
	r.Handle(ScreenUpdateMsg(g))
	out := buf.String()
	if !strings.Contains(out, "xx") {
		t.Errorf("expected both cells written, got %q", out)
	}
	if !strings.Contains(out, "\x1b[1;1H") {
		t.Errorf("expected row positioning escape, got %q", out)
	}
}

func TestRendererDiffWritesOnlyChangedRows(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	changes := []RowChange{{Row: 2, Cells: []Cell{{Char: 'q'}}}}
	r.Handle(ScreenDiffMsg(changes))
	out := buf.String()
	if !strings.Contains(out, "\x1b[3;1H") {
		t.Errorf("expected row 2 (1-indexed 3) positioning, got %q", out)
	}
	if !strings.Contains(out, "q") {
		t.Errorf("expected cell content written, got %q", out)
	}
}

func TestRendererEmptyDiffWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.Handle(ScreenDiffMsg(nil))
	if buf.Len() != 0 {
		t.Errorf("expected no output for empty diff, got %q", buf.String())
	}
}

func TestRendererSGRRunGrouping(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	cells := []Cell{
		{Char: 'a', FG: Red},
		{Char: 'b', FG: Red},
		{Char: 'c', FG: Blue},
	}
	r.Handle(ScreenDiffMsg([]RowChange{{Row: 0, Cells: cells}}))
	out := buf.String()
	// Only two style changes should be emitted: Red (before 'a') and
	// Blue (before 'c'); 'b' reuses the already-emitted Red style. Each
	// style change starts "\x1b[0;" (semicolon after the leading reset);
	// the trailing full-buffer reset is "\x1b[0m" with no semicolon, so
	// it is not double-counted here.
	if got := strings.Count(out, "\x1b[0;"); got != 2 {
		t.Errorf("expected 2 SGR style emissions, got %d in %q", got, out)
	}
}

func TestRendererClipboardEmitsOSC52(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.Handle(CopyToClipboardMsg("hello"))
	out := buf.String()
	if !strings.HasPrefix(out, "\x1b]52") {
		t.Errorf("expected OSC 52 clipboard sequence, got %q", out)
	}
}

func TestRendererClipboardStripsEmbeddedEscapes(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.Handle(CopyToClipboardMsg("\x1b[1mbold\x1b[0m plain"))
	out := buf.String()
	if strings.Contains(out, "\x1b[1m") {
		t.Errorf("expected embedded SGR escapes to be stripped before encoding, got %q", out)
	}
	if !strings.Contains(out, base64.StdEncoding.EncodeToString([]byte("bold plain"))) {
		t.Errorf("expected stripped plain text to be base64-encoded in the OSC 52 payload, got %q", out)
	}
}
