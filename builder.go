package tui

import (
	"log/slog"
	"time"
)

// tickerTask is one periodic-task registration awaiting a built App.
type tickerTask struct {
	interval time.Duration
	fn       func()
}

// Builder is the declarative construction API: a layout tree,
// a set of widgets mounted by id, key handlers, and lifecycle hooks. It
// exposes exactly the knobs the library needs — nothing more — so library
// users cannot reach past the manager/dispatcher boundary into pipeline
// internals.
type Builder struct {
	manager  *Manager
	log      *slog.Logger
	cfg      Config
	onStart  func()
	onStop   func()
	tickers  []tickerTask
	buildErr error // first error recorded by Layout or ConfigFile, surfaced by Build
}

// NewBuilder starts a fresh application description, with the
// FrameQueueSize/ShutdownTimeoutMS knobs set to DefaultConfig until
// Config or ConfigFile overrides them.
func NewBuilder() *Builder {
	return &Builder{manager: NewManager(), cfg: DefaultConfig()}
}

// Config overrides the App's queue-size and shutdown-timeout knobs.
func (b *Builder) Config(cfg Config) *Builder {
	b.cfg = cfg
	return b
}

// ConfigFile loads Config from a TOML file at path and applies it, the
// same file format LoadConfig reads. A load error is recorded and
// surfaced by Build, matching Layout's deferred-error pattern.
func (b *Builder) ConfigFile(path string) *Builder {
	cfg, err := LoadConfig(path)
	if err != nil {
		if b.buildErr == nil {
			b.buildErr = err
		}
		return b
	}
	b.cfg = cfg
	return b
}

// Layout installs the layout tree used for composition and focus order.
// An invalid constraint anywhere in the tree (e.g. Percent(150)) is
// recorded and returned as an error from Build, rather than silently
// accepted and mis-allocated at resolve time.
func (b *Builder) Layout(root *LayoutNode) *Builder {
	if err := ValidateLayout(root); err != nil && b.buildErr == nil {
		b.buildErr = err
	}
	b.manager.SetLayout(root)
	return b
}

// Mount registers a widget under its own id, matching a layout leaf.
func (b *Builder) Mount(w Widget) *Builder {
	b.manager.AddWidget(w)
	return b
}

// OnKey registers a global key handler, invoked
// before the focused widget sees the key.
func (b *Builder) OnKey(key string, h KeyHandler) *Builder {
	b.manager.RegisterKeyHandler(key, h)
	return b
}

// OnSubmit registers a per-widget input-submit handler,
// invoked whenever widgetID emits a WidgetEvent.
func (b *Builder) OnSubmit(widgetID string, fn func(payload any)) *Builder {
	b.manager.RegisterSubmitHandler(widgetID, fn)
	return b
}

// Every registers a periodic task that fires fn every interval, from
// Build until the App is stopped.
func (b *Builder) Every(interval time.Duration, fn func()) *Builder {
	b.tickers = append(b.tickers, tickerTask{interval: interval, fn: fn})
	return b
}

// Theme sets the palette widgets retrieve via Manager.Theme. Defaults to
// ThemeDark if never called.
func (b *Builder) Theme(t Theme) *Builder {
	b.manager.SetTheme(t)
	return b
}

// OnStart/OnStop register lifecycle hooks run around the event loop's
// fiber lifetime.
func (b *Builder) OnStart(fn func()) *Builder { b.onStart = fn; return b }
func (b *Builder) OnStop(fn func()) *Builder  { b.onStop = fn; return b }

// Logger overrides the default slog.Logger used across the pipeline.
func (b *Builder) Logger(log *slog.Logger) *Builder {
	b.log = log
	return b
}

// Build finalizes the description into a runnable App. It fails with
// whichever error Layout or ConfigFile recorded, if any, before
// constructing the App.
func (b *Builder) Build() (*App, error) {
	if b.buildErr != nil {
		return nil, b.buildErr
	}
	app, err := NewApp(b.manager, b.log, b.cfg)
	if err != nil {
		return nil, err
	}
	if b.onStart != nil {
		app.OnStart(b.onStart)
	}
	if b.onStop != nil {
		app.OnStop(b.onStop)
	}
	for _, t := range b.tickers {
		app.AddTicker(t.interval, t.fn)
	}
	return app, nil
}
