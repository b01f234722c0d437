// Package ssh adapts a gliderlabs/ssh session to the tcell.Tty interface so
// each remote player gets a real tcell.Screen for the editor and the game.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty on top of an SSH session.
type SessionTty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	cb     func()

	once sync.Once
	stop chan struct{}
}

// NewSessionTty wraps s. pty carries the initial window size and winCh the
// window-change requests that follow.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		session: s,
		winCh:   winCh,
		window:  pty.Window,
		stop:    make(chan struct{}),
	}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close stops resize tracking and closes the session channel.
func (t *SessionTty) Close() error {
	t.halt()
	return t.session.Close()
}

func (t *SessionTty) Start() error { return nil }

// Stop ends resize tracking. The session itself stays open until the
// handler returns.
func (t *SessionTty) Stop() error {
	t.halt()
	return nil
}

func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the last size reported by the client. A client that
// reported nothing gets 80x24.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	w, h := t.window.Width, t.window.Height
	if w <= 0 || h <= 0 {
		w, h = 80, 24
	}
	return tcell.WindowSize{Width: w, Height: h}, nil
}

// NotifyResize registers cb and starts forwarding window changes to it until
// the tty is stopped or the channel closes.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()
	if t.winCh == nil {
		return
	}

	go func() {
		for {
			select {
			case <-t.stop:
				return
			case win, ok := <-t.winCh:
				if !ok {
					return
				}
				t.mu.Lock()
				t.window = win
				fn := t.cb
				t.mu.Unlock()
				if fn != nil {
					fn()
				}
			}
		}
	}()
}

func (t *SessionTty) halt() {
	t.once.Do(func() { close(t.stop) })
}
