package tui

// ColorName is a closed set of terminal colors plus the terminal's own
// default. There is no RGB or 256-color mode: the wire format
// maps each name directly to a single SGR code.
type ColorName uint8

const (
	ColorDefault ColorName = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// sgrForeground and sgrBackground map a ColorName to its SGR parameter.
// Index 0 (ColorDefault) is handled separately by callers (39/49).
var sgrForeground = [...]int{0, 30, 31, 32, 33, 34, 35, 36, 37, 90, 91, 92, 93, 94, 95, 96, 97}
var sgrBackground = [...]int{0, 40, 41, 42, 43, 44, 45, 46, 47, 100, 101, 102, 103, 104, 105, 106, 107}

// SGR returns the SGR parameter for this color as either a foreground or
// background code.
func (c ColorName) SGR(foreground bool) int {
	if c == ColorDefault {
		if foreground {
			return 39
		}
		return 49
	}
	if foreground {
		return sgrForeground[c]
	}
	return sgrBackground[c]
}

// Cell is one display position: a character plus its style attributes.
// Cells are immutable values exchanged between widgets and the compositor.
type Cell struct {
	Char      rune
	FG        ColorName
	BG        ColorName
	Bold      bool
	Underline bool
}

// BlankCell is the cell used to pad grids and clear regions: a space in
// the default colors with no attributes.
var BlankCell = Cell{Char: ' ', FG: ColorDefault, BG: ColorDefault}

// Equal reports whether two cells are identical in character and style.
func (c Cell) Equal(other Cell) bool {
	return c == other
}
