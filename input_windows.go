//go:build windows

package tui

import (
	"log/slog"
	"os"
	"time"

	"github.com/erikgeiser/coninput"
	xterm "github.com/charmbracelet/x/term"
	"golang.org/x/sys/windows"
)

// InputProvider reads console input records from stdin on Windows,
// translating key/resize events directly (bypassing Parser's VT
// byte-stream parsing, since the Windows console API already delivers
// structured events) and pushing the resulting Messages to out, using
// erikgeiser/coninput and charmbracelet/x/term for exactly this purpose.
type InputProvider struct {
	handle  windows.Handle
	state   *xterm.State
	out     chan<- Message
	log     *slog.Logger
	stop    chan struct{}
}

// NewInputProvider wraps the stdin console handle.
func NewInputProvider(out chan<- Message, log *slog.Logger) (*InputProvider, error) {
	if log == nil {
		log = slog.Default()
	}
	h := windows.Handle(os.Stdin.Fd())
	return &InputProvider{handle: h, out: out, log: log, stop: make(chan struct{})}, nil
}

// IsTerminal reports whether stdin is an interactive console.
func (p *InputProvider) IsTerminal() bool {
	return xterm.IsTerminal(uintptr(p.handle))
}

// EnterRawMode switches the console out of line-buffered, echoing mode.
func (p *InputProvider) EnterRawMode() error {
	if !p.IsTerminal() {
		return nil
	}
	state, err := xterm.MakeRaw(uintptr(p.handle))
	if err != nil {
		return err
	}
	p.state = state
	return nil
}

// ExitRawMode restores the console mode saved by EnterRawMode.
func (p *InputProvider) ExitRawMode() error {
	if p.state == nil {
		return nil
	}
	err := xterm.Restore(uintptr(p.handle), p.state)
	p.state = nil
	return err
}

// Run blocks, translating console input records to Messages until Close
// is called. On a fatal read error not caused by Close, it emits exactly
// one Stop onto out before returning.
func (p *InputProvider) Run() {
	for {
		select {
		case <-p.stop:
			return
		default:
		}

		events, err := coninput.ReadConsoleInput(p.handle)
		if err != nil {
			select {
			case <-p.stop:
				// Ended by Close: App.Stop has already sent Stop on main
				// before calling Close; avoid a duplicate.
			default:
				p.log.Warn("console input read stopped", "error", err)
				p.out <- StopMsg(StopReason(&PipelineError{Fiber: "input", Err: err}))
			}
			return
		}
		now := time.Now()
		for _, event := range events {
			switch e := event.Unwrap().(type) {
			case coninput.KeyEventRecord:
				if !e.KeyDown {
					continue
				}
				if name, ok := windowsVirtualKeyName(e); ok {
					p.out <- KeyPressMsg(name)
					continue
				}
				if e.Char != 0 {
					p.out <- InputEventMsg(e.Char, now)
				}
			case coninput.WindowBufferSizeEventRecord:
				p.out <- ResizeEventMsg(int(e.Size.X), int(e.Size.Y))
			}
		}
	}
}

// windowsVirtualKeyName maps navigation/control virtual-key codes to the
// same key-name vocabulary the Unix escape-sequence parser produces, so
// downstream widget code is platform-independent.
func windowsVirtualKeyName(e coninput.KeyEventRecord) (string, bool) {
	switch e.VirtualKeyCode {
	case coninput.VK_UP:
		return "up", true
	case coninput.VK_DOWN:
		return "down", true
	case coninput.VK_LEFT:
		return "left", true
	case coninput.VK_RIGHT:
		return "right", true
	case coninput.VK_HOME:
		return "home", true
	case coninput.VK_END:
		return "end", true
	case coninput.VK_DELETE:
		return "delete", true
	case coninput.VK_INSERT:
		return "insert", true
	case coninput.VK_PRIOR:
		return "page_up", true
	case coninput.VK_NEXT:
		return "page_down", true
	case coninput.VK_TAB:
		if e.ControlKeyState&coninput.SHIFT_PRESSED != 0 {
			return "shift+tab", true
		}
		return "tab", true
	case coninput.VK_RETURN:
		return "enter", true
	case coninput.VK_BACK:
		return "backspace", true
	case coninput.VK_ESCAPE:
		return "escape", true
	}
	return "", false
}

// Close stops the read loop.
func (p *InputProvider) Close() error {
	select {
	case <-p.stop:
	default:
		close(p.stop)
	}
	return nil
}
