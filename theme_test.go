package tui

import "testing"

func TestCellApplyPreservesRunePaintsStyle(t *testing.T) {
	base := Cell{Char: 'x', FG: ColorDefault, BG: ColorDefault}
	painted := base.Apply(ThemeDark.Accent)
	if painted.Char != 'x' {
		t.Errorf("Apply must preserve the original rune, got %q", painted.Char)
	}
	if painted.FG != ThemeDark.Accent.FG || painted.BG != ThemeDark.Accent.BG {
		t.Errorf("Apply did not copy fg/bg, got %+v", painted)
	}
}

func TestCellApplyCopiesBoldAndUnderline(t *testing.T) {
	base := Cell{Char: 'e'}
	painted := base.Apply(ThemeMonochrome.Error)
	if !painted.Bold || !painted.Underline {
		t.Errorf("expected monochrome error style to carry bold+underline, got %+v", painted)
	}
}

func TestManagerDefaultsToThemeDark(t *testing.T) {
	m := NewManager()
	if m.Theme() != ThemeDark {
		t.Errorf("expected default theme to be ThemeDark, got %+v", m.Theme())
	}
}

func TestManagerSetThemeOverrides(t *testing.T) {
	m := NewManager()
	m.SetTheme(ThemeLight)
	if m.Theme() != ThemeLight {
		t.Errorf("expected ThemeLight after SetTheme, got %+v", m.Theme())
	}
}

func TestBuilderThemeWiresManager(t *testing.T) {
	app, err := NewBuilder().
		Layout(Leaf("a", Flex())).
		Mount(newStubWidget("a")).
		Theme(ThemeMonochrome).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := app.manager.Theme(); got != ThemeMonochrome {
		t.Errorf("expected app's manager to carry ThemeMonochrome, got %+v", got)
	}
}
