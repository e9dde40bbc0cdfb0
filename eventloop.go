package tui

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

// App wires the five pipeline fibers together and owns their lifetime:
// input provider -> dispatcher -> screen buffer -> renderer, with the
// cursor manager fed from its own side-channel. Modeled on
// App.run/Stop/handleResize orchestration (app.go), generalized from
// riffkey's single in-process router to a multi-stage channel pipeline.
type App struct {
	manager  *Manager
	log      *slog.Logger

	input    *InputProvider
	renderer *Renderer
	cursor   *CursorManager
	screen   *ScreenBuffer
	dispatch *Dispatcher

	main   chan Message // input provider, commands, resize -> dispatcher
	buffer chan Message // dispatcher -> screen buffer
	render chan Message // screen buffer -> renderer
	cursorCh chan Message // cursor side-channel, fed directly by widgets/app code

	cfg Config
	eg  *errgroup.Group

	onStart func()
	onStop  func()

	sigint  chan os.Signal
	tickers []*time.Ticker
	tickerDone chan struct{}
	stopOnce sync.Once
	stopResult bool
}

// NewApp constructs the pipeline. layout/widgets should already be
// registered on manager before Run is called. cfg supplies the
// FrameQueueSize/ShutdownTimeoutMS knobs; the zero Config is treated as
// DefaultConfig so callers that don't care about tuning can pass Config{}.
func NewApp(manager *Manager, log *slog.Logger, cfg Config) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	if cfg.FrameQueueSize <= 0 && cfg.ShutdownTimeoutMS <= 0 && cfg.LogLevel == "" {
		cfg = DefaultConfig()
	}
	queueSize := cfg.FrameQueueSize
	if queueSize <= 0 {
		queueSize = DefaultConfig().FrameQueueSize
	}
	cursorQueueSize := queueSize / 4
	if cursorQueueSize < 1 {
		cursorQueueSize = 1
	}

	input, err := NewInputProvider(nil, log)
	if err != nil {
		return nil, err
	}

	a := &App{
		manager:  manager,
		log:      log,
		cfg:      cfg,
		input:    input,
		renderer: NewRenderer(os.Stdout),
		cursor:   NewCursorManager(os.Stdout),
		screen:   NewScreenBuffer(),
		main:     make(chan Message, queueSize),
		buffer:   make(chan Message, queueSize),
		render:   make(chan Message, queueSize),
		cursorCh: make(chan Message, cursorQueueSize),
		tickerDone: make(chan struct{}),
	}
	a.input.out = a.main

	width, height := TerminalSize(int(os.Stdin.Fd()))
	a.dispatch = NewDispatcher(manager, width, height, a.buffer, log)
	return a, nil
}

// OnStart/OnStop register lifecycle hooks run before the fibers start
// and after they have all exited.
func (a *App) OnStart(fn func()) { a.onStart = fn }
func (a *App) OnStop(fn func())  { a.onStop = fn }

// AddTicker registers a periodic task that calls fn every interval,
// starting as soon as it is registered and ending when Stop is called.
// Must be called before Run.
func (a *App) AddTicker(interval time.Duration, fn func()) {
	t := time.NewTicker(interval)
	a.tickers = append(a.tickers, t)
	go func() {
		for {
			select {
			case <-t.C:
				fn()
			case <-a.tickerDone:
				return
			}
		}
	}()
}

// CursorChannel exposes the cursor side-channel so widget code can push
// CursorMove/CursorShow/CursorHide messages directly.
func (a *App) CursorChannel() chan<- Message { return a.cursorCh }

// MainChannel exposes the main channel so callers can inject Command or
// WidgetEvent messages.
func (a *App) MainChannel() chan<- Message { return a.main }

// Run enters raw mode, starts all fibers, and blocks until Stop is
// called or SIGINT arrives. The initial frame is pushed
// before the input provider starts reading, so the first paint happens
// even with no input yet.
func (a *App) Run() error {
	if err := a.input.EnterRawMode(); err != nil {
		return err
	}

	a.sigint = make(chan os.Signal, 1)
	signal.Notify(a.sigint, syscall.SIGINT)
	go func() {
		if _, ok := <-a.sigint; ok {
			a.Stop()
		}
	}()

	if a.onStart != nil {
		a.onStart()
	}

	a.buffer <- ScreenUpdateMsg(a.dispatch.compose())

	a.eg = &errgroup.Group{}
	a.eg.Go(a.runScreenBuffer)
	a.eg.Go(a.runRenderer)
	a.eg.Go(a.runDispatcher)
	a.eg.Go(a.runCursor)

	go a.input.Run()

	a.eg.Wait()
	signal.Stop(a.sigint)
	close(a.sigint)

	err := a.input.ExitRawMode()
	if a.onStop != nil {
		a.onStop()
	}
	return err
}

// catchFiber recovers a panic escaping a fiber's body, converting it into
// a PipelineError logged at error level and returned from the errgroup so
// Run surfaces it. downstream, if non-nil, receives a Stop carrying the
// failure's reason so the rest of the pipeline still terminates even
// though this fiber never reached its own Stop handling.
func (a *App) catchFiber(fiber string, downstream chan<- Message, err *error) {
	r := recover()
	if r == nil {
		return
	}
	pe := &PipelineError{Fiber: fiber, Err: fmt.Errorf("panic: %v", r)}
	a.log.Error("fiber failed", "fiber", fiber, "error", pe)
	if downstream != nil {
		downstream <- StopMsg(StopReason(pe))
	}
	*err = pe
}

func (a *App) runDispatcher() (err error) {
	defer a.catchFiber("dispatcher", a.buffer, &err)
	for msg := range a.main {
		if !a.dispatch.Handle(msg) {
			return nil
		}
	}
	return nil
}

func (a *App) runScreenBuffer() (err error) {
	defer a.catchFiber("screenbuffer", a.render, &err)
	for msg := range a.buffer {
		if out, ok := a.screen.Handle(msg); ok {
			a.render <- out
		}
		if msg.Kind == MsgStop {
			return nil
		}
	}
	return nil
}

func (a *App) runRenderer() (err error) {
	defer a.catchFiber("renderer", nil, &err)
	for msg := range a.render {
		a.renderer.Handle(msg)
		if msg.Kind == MsgStop {
			return nil
		}
	}
	return nil
}

func (a *App) runCursor() (err error) {
	defer a.catchFiber("cursor", nil, &err)
	for msg := range a.cursorCh {
		a.cursor.Handle(msg)
		if msg.Kind == MsgStop {
			return nil
		}
	}
	return nil
}

// Stop sends Stop down the main channel and the cursor side-channel, in
// that order, relying on each fiber forwarding it in FIFO order to the
// next so every downstream fiber sees it exactly once.
// It returns false if the fibers have not all exited within the
// configured ShutdownTimeoutMS (2 seconds if unset).
func (a *App) Stop() bool {
	a.stopOnce.Do(func() {
		close(a.tickerDone)
		for _, t := range a.tickers {
			t.Stop()
		}
		a.main <- StopMsg("stop")
		a.cursorCh <- StopMsg("stop")
		a.input.Close()

		timeout := time.Duration(a.cfg.ShutdownTimeoutMS) * time.Millisecond
		if timeout <= 0 {
			timeout = time.Duration(DefaultConfig().ShutdownTimeoutMS) * time.Millisecond
		}

		done := make(chan struct{})
		go func() {
			if a.eg != nil {
				a.eg.Wait()
			}
			close(done)
		}()

		select {
		case <-done:
			a.stopResult = true
		case <-time.After(timeout):
			a.log.Warn("shutdown timed out waiting for fibers to exit")
			a.stopResult = false
		}
	})
	return a.stopResult
}
