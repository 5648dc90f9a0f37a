// Package ssh adapts gliderlabs SSH sessions into tcell screens so the game
// can be played over a remote terminal.
package ssh

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPTY is returned for sessions opened without a terminal.
var ErrNoPTY = errors.New("session has no pty")

// DefaultTerm is used when the client's TERM is missing or not allowed.
const DefaultTerm = "xterm-256color"

// allowedTerms lists the terminal types whose terminfo entries we trust.
// TERM comes from the client, so anything else falls back to DefaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-color":           true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// TermFor returns term if it is allowed, DefaultTerm otherwise.
func TermFor(term string) string {
	if allowedTerms[term] {
		return term
	}
	return DefaultTerm
}

// SessionTty implements tcell.Tty over an SSH channel. Window changes
// arrive on winCh and are forwarded to tcell's resize callback.
type SessionTty struct {
	conn  io.ReadWriteCloser
	winCh <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	cb     func()
	once   sync.Once
}

// NewSessionTty wraps conn, starting at window size win.
func NewSessionTty(conn io.ReadWriteCloser, win gossh.Window, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{conn: conn, window: win, winCh: winCh}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.conn.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.conn.Write(b) }
func (t *SessionTty) Close() error                { return t.conn.Close() }

// Start, Stop and Drain are no-ops: the SSH server owns the channel.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the last size reported by the client.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize sets the resize callback. The first call starts forwarding
// window changes until winCh closes.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	t.once.Do(func() {
		if t.winCh == nil {
			return
		}
		go t.watch()
	})
}

func (t *SessionTty) watch() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.cb
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}

// termMu serialises TERM changes: tcell reads the terminfo name from the
// process environment.
var termMu sync.Mutex

// NewScreen returns an initialised tcell screen drawing to s. The caller
// must call Fini on it.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	tty := NewSessionTty(s, pty.Window, winCh)

	termMu.Lock()
	_ = os.Setenv("TERM", TermFor(pty.Term))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal %q: %w", pty.Term, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}
