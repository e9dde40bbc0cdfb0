package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBuilderLayoutRejectsInvalidConstraintAtBuildTime(t *testing.T) {
	_, err := NewBuilder().
		Layout(Row(Flex(), Leaf("a", Percent(150)), Leaf("b", Flex()))).
		Mount(newStubWidget("a")).
		Mount(newStubWidget("b")).
		Build()
	var ce *ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("expected a ConstraintError from Build, got %v", err)
	}
}

func TestBuilderConfigOverridesDefaultQueueSize(t *testing.T) {
	app, err := NewBuilder().
		Config(Config{FrameQueueSize: 8, ShutdownTimeoutMS: 50}).
		Layout(Leaf("a", Flex())).
		Mount(newStubWidget("a")).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if cap(app.main) != 8 {
		t.Errorf("main channel capacity = %d, want 8", cap(app.main))
	}
	if cap(app.cursorCh) != 2 {
		t.Errorf("cursorCh capacity = %d, want 2", cap(app.cursorCh))
	}
}

func TestBuilderConfigFileAppliesLoadedSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("frame_queue_size = 16\n"), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	app, err := NewBuilder().
		ConfigFile(path).
		Layout(Leaf("a", Flex())).
		Mount(newStubWidget("a")).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if cap(app.main) != 16 {
		t.Errorf("main channel capacity = %d, want 16", cap(app.main))
	}
}

func TestBuilderBuildWiresManager(t *testing.T) {
	a := newStubWidget("a")
	submitted := false
	app, err := NewBuilder().
		Layout(Leaf("a", Flex())).
		Mount(a).
		OnKey("q", func(string) bool { return true }).
		OnSubmit("a", func(any) { submitted = true }).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if app == nil {
		t.Fatal("expected non-nil app")
	}
	app.manager.DispatchWidgetEvent(WidgetEventMsg("a", nil))
	if !submitted {
		t.Error("expected OnSubmit handler to run")
	}
}
