package tui

// Theme is a small set of named cell styles that widget authors can pull
// from for consistent appearance, rather than hardcoding ColorName
// values. Modeled on the Theme/ThemeDark/ThemeLight/ThemeMonochrome
// presets (theme.go), adapted from the old Style{FG,Attr} type to plain
// Cell field values.
type Theme struct {
	Base   Cell // default text style
	Muted  Cell // de-emphasized text
	Accent Cell // highlighted/important text
	Error  Cell // error messages
	Border Cell // border/divider style
}

// ThemeDark is a dark theme with light text on dark background.
var ThemeDark = Theme{
	Base:   Cell{FG: White, BG: ColorDefault},
	Muted:  Cell{FG: BrightBlack, BG: ColorDefault},
	Accent: Cell{FG: BrightCyan, BG: ColorDefault},
	Error:  Cell{FG: BrightRed, BG: ColorDefault},
	Border: Cell{FG: BrightBlack, BG: ColorDefault},
}

// ThemeLight is a light theme with dark text on light background.
var ThemeLight = Theme{
	Base:   Cell{FG: Black, BG: ColorDefault},
	Muted:  Cell{FG: BrightBlack, BG: ColorDefault},
	Accent: Cell{FG: Blue, BG: ColorDefault},
	Error:  Cell{FG: Red, BG: ColorDefault},
	Border: Cell{FG: White, BG: ColorDefault},
}

// ThemeMonochrome is a minimal theme using only the bold/underline
// attributes, for terminals or recordings where color is unreliable.
var ThemeMonochrome = Theme{
	Base:   Cell{FG: ColorDefault, BG: ColorDefault},
	Muted:  Cell{FG: ColorDefault, BG: ColorDefault},
	Accent: Cell{FG: ColorDefault, BG: ColorDefault, Bold: true},
	Error:  Cell{FG: ColorDefault, BG: ColorDefault, Bold: true, Underline: true},
	Border: Cell{FG: ColorDefault, BG: ColorDefault},
}

// Apply returns a copy of c with fg/bg/bold/underline taken from the
// style cell, but the original rune preserved — the usual way widget
// code paints themed text without losing its character.
func (c Cell) Apply(style Cell) Cell {
	c.FG = style.FG
	c.BG = style.BG
	c.Bold = style.Bold
	c.Underline = style.Underline
	return c
}
