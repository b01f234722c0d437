// maze-shooter-server serves the maze editor and shooter over SSH. Every
// connection gets its own game and its own saved maze. Build:
//
//	go build -o maze-shooter-server ./cmd/server
//
// Usage:
//
//	./maze-shooter-server [--port 2222] [--key server_host_key] [--config config.yaml] [--saves saves]
//
// Connect:
//
//	ssh -t -p 2222 alice@localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"maze-shooter/internal/config"
	"maze-shooter/internal/game"
	"maze-shooter/internal/maze"
	internalssh "maze-shooter/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	xssh "golang.org/x/crypto/ssh"
)

// maxNameBytes bounds player names shown in logs and used for save files.
const maxNameBytes = 16

const defaultTerm = "xterm-256color"

// allowedTerms lists the TERM values passed to terminfo. Anything else falls
// back to defaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"xterm-color":           true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
	"alacritty":             true,
}

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	cfgFile := flag.String("config", "config.yaml", "YAML configuration file")
	savesDir := flag.String("saves", "saves", "Directory holding one maze per player")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatal().Err(err).Str("config", *cfgFile).Msg("load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(lvl)
	}
	signer, err := loadOrCreateHostKey(*keyFile, log)
	if err != nil {
		log.Fatal().Err(err).Msg("host key")
	}

	h := &handler{cfg: cfg, savesDir: *savesDir, log: log}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	log.Info().Int("port", *port).Str("saves", *savesDir).Msg("maze-shooter SSH server listening")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("serve")
	}
}

type handler struct {
	cfg      config.Config
	savesDir string
	log      zerolog.Logger
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// handleSession runs one game for the lifetime of the connection.
func (h *handler) handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	name := sanitizeName(s.User())
	if name == "" {
		name = "player"
	}
	log := h.log.With().Str("user", name).Str("session", uuid.NewString()).Logger()

	term := sessionTerm(pty, s.Environ())
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	path := mazeFileFor(h.savesDir, name)
	if err := seedMaze(path, h.cfg.SaveFile); err != nil {
		log.Warn().Err(err).Str("maze", path).Msg("could not copy shared maze")
	}

	g, err := game.New(screen, game.Options{
		Config:   h.cfg,
		MazePath: path,
		Logger:   log,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(s, "Could not start: %v\n", err)
		log.Error().Err(err).Msg("new game")
		return
	}

	log.Info().Str("term", term).Msg("session started")
	err = g.Run(s.Context())
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		log.Info().Msg("session ended")
	default:
		log.Error().Err(err).Msg("session failed")
	}
}

// sessionTerm picks the TERM for a session: the PTY request first, then the
// client environment, then defaultTerm.
func sessionTerm(pty gossh.Pty, environ []string) string {
	term := pty.Term
	if term == "" {
		for _, env := range environ {
			if v, ok := strings.CutPrefix(env, "TERM="); ok {
				term = v
				break
			}
		}
	}
	if !allowedTerms[term] {
		return defaultTerm
	}
	return term
}

// sanitizeName strips control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// mazeFileFor returns the save file for a player. Characters that are not
// safe in a file name are replaced.
func mazeFileFor(dir, name string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
	if safe == "" {
		safe = "player"
	}
	return filepath.Join(dir, safe+".txt")
}

// seedMaze copies the shared maze to path unless path already exists or
// there is no shared maze.
func seedMaze(path, shared string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	m, err := maze.Load(shared)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return m.Save(path)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log zerolog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info().Str("path", path).Msg("loaded host key")
			return signer, nil
		}
	}

	log.Info().Str("path", path).Msg("generating new ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	if block, err := xssh.MarshalPrivateKey(key, "maze-shooter server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("host key not persisted")
		}
	}
	return signer, nil
}
