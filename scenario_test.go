package tui

import (
	"bytes"
	"strings"
	"testing"
)

// letterWidget renders a grid entirely filled with its id's first byte,
// used to make composition scenarios visually checkable.
type letterWidget struct {
	Base
}

func newLetterWidget(id string) *letterWidget {
	w := &letterWidget{Base: NewBase(id)}
	return w
}

func (w *letterWidget) Handle(Message) {}

func (w *letterWidget) Render(width, height int) Grid {
	g := NewGrid(width, height)
	ch := rune(w.ID()[0])
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Set(x, y, Cell{Char: ch})
		}
	}
	return g
}

// TestScenarioTwoEqualColumnsCompose is S1: an 80x4 frame split into two
// Percent(50) columns "L"/"R" must show 40 L cells followed by 40 R
// cells on every row.
func TestScenarioTwoEqualColumnsCompose(t *testing.T) {
	m := NewManager()
	m.AddWidget(newLetterWidget("L"))
	m.AddWidget(newLetterWidget("R"))
	m.SetLayout(Row(Flex(), Leaf("L", Percent(50)), Leaf("R", Percent(50))))

	g := m.Compose(80, 4)
	if g.Width != 80 || g.Height != 4 {
		t.Fatalf("expected an 80x4 grid, got %dx%d", g.Width, g.Height)
	}
	for y := 0; y < 4; y++ {
		row := g.Row(y)
		for x := 0; x < 40; x++ {
			if row[x].Char != 'L' {
				t.Fatalf("row %d col %d = %q, want 'L'", y, x, row[x].Char)
			}
		}
		for x := 40; x < 80; x++ {
			if row[x].Char != 'R' {
				t.Fatalf("row %d col %d = %q, want 'R'", y, x, row[x].Char)
			}
		}
	}
}

// TestScenarioSingleRowDiff is S2: a 3x3 frame of '.' with its middle row
// changed to "abc" diffs to exactly one changed row, and re-applying the
// same frame produces no diff at all.
func TestScenarioSingleRowDiff(t *testing.T) {
	b := NewScreenBuffer()
	dots := gridFilledWith(3, 3, '.')
	b.Handle(ScreenUpdateMsg(dots))

	changed := dots.Clone()
	changed.Set(0, 1, Cell{Char: 'a'})
	changed.Set(1, 1, Cell{Char: 'b'})
	changed.Set(2, 1, Cell{Char: 'c'})

	msg, ok := b.Handle(ScreenUpdateMsg(changed))
	if !ok || msg.Kind != MsgScreenDiff {
		t.Fatalf("expected a ScreenDiff, got ok=%v msg=%+v", ok, msg)
	}
	if len(msg.Changes) != 1 || msg.Changes[0].Row != 1 {
		t.Fatalf("expected exactly one changed row (1), got %+v", msg.Changes)
	}
	got := msg.Changes[0].Cells
	if got[0].Char != 'a' || got[1].Char != 'b' || got[2].Char != 'c' {
		t.Fatalf("expected changed row to read 'abc', got %v", got)
	}

	if _, ok := b.Handle(ScreenUpdateMsg(changed.Clone())); ok {
		t.Error("re-applying the identical frame must produce no diff")
	}
}

// TestScenarioResizeRecompose is S5: a dispatcher at 40x10 that receives
// ResizeEvent(80, 20) must push the next ScreenUpdate at exactly 20 rows
// of 80 cells each.
func TestScenarioResizeRecompose(t *testing.T) {
	m := NewManager()
	m.AddWidget(newLetterWidget("a"))
	m.SetLayout(Leaf("a", Flex()))
	out := make(chan Message, 4)
	d := NewDispatcher(m, 40, 10, out, nil)

	d.Handle(ResizeEventMsg(80, 20))

	select {
	case msg := <-out:
		if msg.Kind != MsgScreenUpdate {
			t.Fatalf("expected a ScreenUpdate after resize, got %+v", msg.Kind)
		}
		if msg.Grid.Height != 20 {
			t.Fatalf("expected 20 rows, got %d", msg.Grid.Height)
		}
		for y := 0; y < msg.Grid.Height; y++ {
			if len(msg.Grid.Row(y)) != 80 {
				t.Fatalf("row %d has %d cells, want 80", y, len(msg.Grid.Row(y)))
			}
		}
	default:
		t.Fatal("expected a frame pushed after resize")
	}
}

// TestScenarioCleanShutdownEmitsLeaveSequences is S6: the renderer's exit
// sequence (run by the pipeline on Stop) must include leaving the
// alternate screen and re-showing the cursor.
func TestScenarioCleanShutdownEmitsLeaveSequences(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.entered = true // simulate having already entered, bypassing the isTTY gate
	r.Handle(StopMsg("stop"))
	out := buf.String()
	if !strings.Contains(out, "\x1b[?1049l") {
		t.Errorf("expected leave-alternate-screen sequence, got %q", out)
	}
	if !strings.Contains(out, "\x1b[?25h") {
		t.Errorf("expected show-cursor sequence, got %q", out)
	}
}
