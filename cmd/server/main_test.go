package main

import (
	"os"
	"path/filepath"
	"testing"

	"maze-shooter/internal/maze"

	gossh "github.com/gliderlabs/ssh"
	"github.com/rs/zerolog"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"normal short name", "Alice", "Alice"},
		{"exactly 16 chars", "1234567890123456", "1234567890123456"},
		{"long name truncated", "ThisIsAVeryLongUsername", "ThisIsAVeryLongU"},
		{"control chars stripped", "he\x00ll\x1bo", "hello"},
		{"ansi escape partial", "he\x1b[31mllo", "he[31mllo"},
		{"empty input", "", ""},
		{"pure control chars", "\x00\x01\x02\x1b", ""},
		{"multi-byte runes truncated by byte limit", "日本語のテスト名前です", "日本語のテ"},
		{"emoji truncated by byte limit", "🎮Player🎮Name🎮", "🎮Player🎮Na"},
		{"invalid utf-8 dropped", "ab\xffcd", "abcd"},
		{"mixed printable and control", "a\x00b\x01c\x02d", "abcd"},
		{"tabs stripped", "hello\tworld", "helloworld"},
		{"newlines stripped", "hello\nworld", "helloworld"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeName(tc.input)
			if got != tc.expect {
				t.Errorf("sanitizeName(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}

func TestAllowedTerms(t *testing.T) {
	cases := []struct {
		name    string
		term    string
		allowed bool
	}{
		{"xterm-256color", "xterm-256color", true},
		{"tmux", "tmux", true},
		{"linux", "linux", true},
		{"vt100", "vt100", true},
		{"screen", "screen", true},
		{"rxvt-unicode-256color", "rxvt-unicode-256color", true},
		{"unknown term", "evil-term", false},
		{"path traversal", "../../../etc/passwd", false},
		{"empty string", "", false},
		{"xterm-kitty", "xterm-kitty", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := allowedTerms[tc.term]
			if got != tc.allowed {
				t.Errorf("allowedTerms[%q] = %v, want %v", tc.term, got, tc.allowed)
			}
		})
	}
}

func TestSessionTerm(t *testing.T) {
	cases := []struct {
		name    string
		pty     string
		environ []string
		want    string
	}{
		{"from pty", "tmux-256color", nil, "tmux-256color"},
		{"from environment", "", []string{"LANG=C", "TERM=screen"}, "screen"},
		{"pty wins", "linux", []string{"TERM=screen"}, "linux"},
		{"unknown falls back", "evil-term", nil, defaultTerm},
		{"nothing falls back", "", nil, defaultTerm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sessionTerm(gossh.Pty{Term: tc.pty}, tc.environ)
			if got != tc.want {
				t.Errorf("sessionTerm = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMazeFileFor(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"alice", "alice.txt"},
		{"Bob_2-x", "Bob_2-x.txt"},
		{"../etc", "___etc.txt"},
		{"日本", "__.txt"},
		{"", "player.txt"},
	}
	for _, tc := range cases {
		got := mazeFileFor("saves", tc.name)
		if want := filepath.Join("saves", tc.want); got != want {
			t.Errorf("mazeFileFor(%q) = %q, want %q", tc.name, got, want)
		}
	}
}

func TestSeedMaze(t *testing.T) {
	dir := t.TempDir()
	shared := filepath.Join(dir, "shared.txt")
	player := filepath.Join(dir, "saves", "alice.txt")

	// No shared maze: nothing to copy.
	if err := seedMaze(player, shared); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(player); !os.IsNotExist(err) {
		t.Fatalf("player maze should not exist, stat err = %v", err)
	}

	m, err := maze.Parse("P.#\n..E\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Save(shared); err != nil {
		t.Fatal(err)
	}
	if err := seedMaze(player, shared); err != nil {
		t.Fatal(err)
	}
	got, err := maze.Load(player)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(m) {
		t.Errorf("seeded maze differs:\n%v", got)
	}

	// An existing player maze is left alone.
	other, _ := maze.Parse("P\n")
	if err := other.Save(player); err != nil {
		t.Fatal(err)
	}
	if err := seedMaze(player, shared); err != nil {
		t.Fatal(err)
	}
	got, _ = maze.Load(player)
	if !got.Equal(other) {
		t.Error("existing player maze was overwritten")
	}
}

func TestLoadOrCreateHostKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	first, err := loadOrCreateHostKey(path, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("host key not persisted: %v", err)
	}
	second, err := loadOrCreateHostKey(path, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	a, b := first.PublicKey().Marshal(), second.PublicKey().Marshal()
	if string(a) != string(b) {
		t.Error("reloaded key differs from the generated one")
	}
}
