package tui

// ScreenBuffer consumes ScreenUpdate messages, diffs each incoming grid
// against the previous one, and forwards only the changed rows as a
// ScreenDiff. It holds exactly one previous grid; there is no
// history beyond that.
//
// On resize, when an incoming grid's height differs from the held
// previous grid's height, the previous grid is padded with blank rows
// (or truncated) to the new height before diffing, so that rows added by
// a growth are diffed against blanks, and rows uncovered by a shrink are
// emitted as blank rows and explicitly cleared rather than silently left
// stale.
type ScreenBuffer struct {
	prev    Grid
	primed  bool
}

// NewScreenBuffer returns an empty screen buffer. The first ScreenUpdate
// it receives is always emitted in full (there is nothing to diff yet).
func NewScreenBuffer() *ScreenBuffer {
	return &ScreenBuffer{}
}

// Handle processes one buffer-channel message addressed to the screen
// buffer and returns the message to forward downstream, or the zero
// Message with ok=false if nothing should be forwarded (an unchanged
// frame collapses to no diff at all).
func (b *ScreenBuffer) Handle(msg Message) (Message, bool) {
	switch msg.Kind {
	case MsgScreenUpdate:
		return b.update(msg.Grid)
	case MsgStop:
		return msg, true
	default:
		return Message{}, false
	}
}

func (b *ScreenBuffer) update(g Grid) (Message, bool) {
	if !b.primed {
		b.primed = true
		b.prev = g.Clone()
		return ScreenUpdateMsg(g), true
	}

	oldHeight := b.prev.Height
	prev := b.resizePrev(g.Width, g.Height)
	var changes []RowChange
	for y := 0; y < g.Height; y++ {
		row := g.Row(y)
		if RowsEqual(row, prev.Row(y)) {
			continue
		}
		cells := make([]Cell, len(row))
		copy(cells, row)
		changes = append(changes, RowChange{Row: y, Cells: cells})
	}
	// Rows past the new bottom edge are emitted as blank rows so a shrink
	// clears them.
	for y := g.Height; y < oldHeight; y++ {
		changes = append(changes, RowChange{Row: y, Cells: blankRow(g.Width)})
	}
	b.prev = g.Clone()

	if len(changes) == 0 {
		return Message{}, false
	}
	return ScreenDiffMsg(changes), true
}

// resizePrev returns the held previous grid adjusted to width x height:
// rows beyond the old height are blank, and the held grid itself is
// updated in place to remain width-consistent for the next diff.
func (b *ScreenBuffer) resizePrev(width, height int) Grid {
	if b.prev.Width == width && b.prev.Height == height {
		return b.prev
	}
	resized := NewGrid(width, height)
	for y := 0; y < height && y < b.prev.Height; y++ {
		srcRow := b.prev.Row(y)
		for x := 0; x < width && x < b.prev.Width; x++ {
			resized.Set(x, y, srcRow[x])
		}
	}
	b.prev = resized
	return b.prev
}
