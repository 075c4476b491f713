package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/simonhull/firebird-suite/quill/key"
	xterm "golang.org/x/term"
)

// Reader reads lines and keystrokes from a terminal or byte stream.
//
// At most one read is outstanding at a time; prompts are strictly
// sequential, so Reader does no locking around reads themselves. The
// raw-mode state is guarded so Release can restore the terminal from a
// signal path even while a read is conceptually pending.
type Reader struct {
	in  io.Reader
	br  *bufio.Reader
	out io.Writer

	fd          int
	interactive bool

	mu       sync.Mutex
	rawState *xterm.State
	released bool

	// script, when non-nil, serves ReadKey without a terminal.
	script []key.Event
}

var (
	stdinMu sync.Mutex
	stdin   *Reader
)

// Stdin returns the process-wide reader on standard input, creating it on
// first use.
func Stdin() *Reader {
	stdinMu.Lock()
	defer stdinMu.Unlock()

	if stdin == nil {
		stdin = NewReader(os.Stdin, os.Stdout)
	}
	return stdin
}

// ResetStdin drops the stdin singleton after releasing it. Intended for
// tests that swap standard input between cases.
func ResetStdin() {
	stdinMu.Lock()
	defer stdinMu.Unlock()

	if stdin != nil {
		_ = stdin.Release()
		stdin = nil
	}
}

// NewReader creates a reader over an arbitrary input stream. When in is an
// *os.File attached to a terminal, ReadKey uses real raw-mode reads;
// otherwise both methods operate line-oriented.
func NewReader(in io.Reader, out io.Writer) *Reader {
	r := &Reader{
		in:  in,
		br:  bufio.NewReader(in),
		out: out,
		fd:  -1,
	}

	if f, ok := in.(*os.File); ok {
		r.fd = int(f.Fd())
		r.interactive = xterm.IsTerminal(r.fd)
	}

	return r
}

// NewScripted returns a reader that reports as interactive and serves
// ReadKey from the given events in order. Prompts under test drive their
// real key-mode loops against it; ReadLine still reads from in. When the
// script runs out, ReadKey yields escape so a runaway loop cancels
// instead of hanging.
func NewScripted(in io.Reader, out io.Writer, events ...key.Event) *Reader {
	r := NewReader(in, out)
	r.interactive = true
	r.script = events
	if r.script == nil {
		r.script = []key.Event{}
	}
	return r
}

// IsInteractive reports whether the input is attached to a terminal.
func (r *Reader) IsInteractive() bool {
	return r.interactive
}

// Out returns the writer prompts should render to.
func (r *Reader) Out() io.Writer {
	return r.out
}

// ReadLine returns the next complete line with the trailing newline
// stripped. At end of input it returns whatever accumulated (possibly the
// empty string) and no error; ordinary EOF is not a failure.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("reading line: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadKey returns the next keystroke as a decoded event.
//
// On a terminal it switches to raw mode, reads one chunk (escape sequences
// arrive as a single chunk), and restores line mode before decoding. On a
// non-interactive stream it reads the next line and synthesizes an event
// from its first character, so key-mode prompts degrade instead of hanging.
func (r *Reader) ReadKey() (key.Event, error) {
	if r.script != nil {
		if len(r.script) == 0 {
			return key.Event{Name: "escape"}, nil
		}
		ev := r.script[0]
		r.script = r.script[1:]
		return ev, nil
	}

	if !r.interactive {
		line, err := r.ReadLine()
		if err != nil {
			return key.Event{}, err
		}
		if line == "" {
			return key.Event{Name: "return"}, nil
		}
		return key.Decode([]byte(string([]rune(line)[0]))), nil
	}

	if err := r.enterRaw(); err != nil {
		return key.Event{}, err
	}
	defer r.exitRaw()

	buf := make([]byte, 32)
	n, err := r.br.Read(buf)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return key.Event{Name: "escape"}, nil
		}
		return key.Event{}, fmt.Errorf("reading key: %w", err)
	}

	return key.Decode(buf[:n]), nil
}

// Release restores the terminal if a raw read left it modified. It is
// idempotent and safe to call from a signal handler; it never waits for a
// pending read to resolve.
func (r *Reader) Release() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return nil
	}
	r.released = true

	if r.rawState != nil && r.fd >= 0 {
		state := r.rawState
		r.rawState = nil
		if err := xterm.Restore(r.fd, state); err != nil {
			return fmt.Errorf("restoring terminal: %w", err)
		}
	}
	return nil
}

func (r *Reader) enterRaw() error {
	state, err := xterm.MakeRaw(r.fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}

	r.mu.Lock()
	r.rawState = state
	r.released = false
	r.mu.Unlock()
	return nil
}

func (r *Reader) exitRaw() {
	r.mu.Lock()
	state := r.rawState
	r.rawState = nil
	r.mu.Unlock()

	if state != nil {
		_ = xterm.Restore(r.fd, state)
	}
}
