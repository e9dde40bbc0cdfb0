//go:build !windows

package tui

import (
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/muesli/cancelreader"
	"golang.org/x/sys/unix"
)

// InputProvider reads raw bytes from a terminal, puts it in raw mode for
// the lifetime of the run, and feeds everything through Parser, pushing
// the resulting Messages to out. Modeled on
// Screen.EnterRawMode/ExitRawMode termios manipulation (screen.go),
// generalized from riffkey's Reader/Router split to a plain parser fed
// by a cancelable blocking read loop.
type InputProvider struct {
	fd          int
	origTermios *unix.Termios
	reader      cancelreader.CancelReader
	parser      *Parser
	out         chan<- Message
	log         *slog.Logger
	sigwinch    chan os.Signal
	stop        chan struct{}
}

// NewInputProvider wraps os.Stdin. out receives InputEvent/KeyPress/
// PasteEvent/ResizeEvent messages, and a Stop when Run ends on EOF or a
// read error; a Run ended by Close sends no Stop.
func NewInputProvider(out chan<- Message, log *slog.Logger) (*InputProvider, error) {
	if log == nil {
		log = slog.Default()
	}
	fd := int(os.Stdin.Fd())
	r, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		return nil, err
	}
	return &InputProvider{
		fd:     fd,
		reader: r,
		parser: NewParser(),
		out:    out,
		log:    log,
		stop:   make(chan struct{}),
	}, nil
}

// IsTerminal reports whether stdin is an interactive TTY. Non-terminal
// stdin (pipes, redirected files) skips raw-mode entirely.
func (p *InputProvider) IsTerminal() bool {
	return isatty.IsTerminal(uintptr(p.fd)) || isatty.IsCygwinTerminal(uintptr(p.fd))
}

// EnterRawMode puts the terminal into raw, byte-at-a-time, no-echo mode,
// mirroring Screen.EnterRawMode's termios flag set.
func (p *InputProvider) EnterRawMode() error {
	if !p.IsTerminal() {
		return nil
	}
	termios, err := unix.IoctlGetTermios(p.fd, ioctlGetTermios)
	if err != nil {
		return err
	}
	p.origTermios = termios

	raw := *termios
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	return unix.IoctlSetTermios(p.fd, ioctlSetTermios, &raw)
}

// ExitRawMode restores the terminal mode saved by EnterRawMode.
func (p *InputProvider) ExitRawMode() error {
	if p.origTermios == nil {
		return nil
	}
	err := unix.IoctlSetTermios(p.fd, ioctlSetTermios, p.origTermios)
	p.origTermios = nil
	return err
}

// Run blocks, reading stdin and pushing parsed messages to out, until
// Close is called or the reader hits EOF/a cancellation error. On EOF or
// any other fatal read error not caused by Close, it emits exactly one
// Stop onto out before returning, so the pipeline always terminates even
// when stdin is a file or closed pipe rather than an interactive
// terminal. It also watches SIGWINCH and emits ResizeEvent messages.
func (p *InputProvider) Run() {
	p.sigwinch = make(chan os.Signal, 1)
	signal.Notify(p.sigwinch, unix.SIGWINCH)
	defer signal.Stop(p.sigwinch)

	go p.watchResize()

	buf := make([]byte, 4096)
	for {
		n, err := p.reader.Read(buf)
		if n > 0 {
			for _, msg := range p.parser.Feed(buf[:n], time.Now()) {
				p.out <- msg
			}
		}
		if err != nil {
			select {
			case <-p.stop:
				// Ended by Close: App.Stop has already sent Stop on main
				// before calling Close; avoid a duplicate.
			default:
				reason := "eof"
				if err != io.EOF {
					p.log.Warn("input read stopped", "error", err)
					reason = StopReason(&PipelineError{Fiber: "input", Err: err})
				}
				p.out <- StopMsg(reason)
			}
			return
		}
		select {
		case <-p.stop:
			return
		default:
		}
	}
}

func (p *InputProvider) watchResize() {
	for {
		select {
		case <-p.sigwinch:
			w, h := TerminalSize(p.fd)
			p.out <- ResizeEventMsg(w, h)
		case <-p.stop:
			return
		}
	}
}

// Close cancels the in-flight read and stops the resize watcher. It is
// safe to call once; a second call is a no-op.
func (p *InputProvider) Close() error {
	select {
	case <-p.stop:
		return nil
	default:
		close(p.stop)
	}
	p.reader.Cancel()
	return p.reader.Close()
}
