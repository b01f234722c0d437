package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is what the HUD shows beneath the maze.
type Status struct {
	Mode      string
	Health    int
	MaxHealth int
	Enemies   int
	Kills     int
	Cursor    string // editor cursor position, empty in play
	Help      string
	Messages  []string
}

// DrawHUD renders the status bar and message log at the bottom of the screen,
// then shows the frame.
func (r *Renderer) DrawHUD(s Status) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	r.drawHLine(hudY, tcell.ColorGray)

	line := fmt.Sprintf("[%s]", s.Mode)
	if s.MaxHealth > 0 {
		line += fmt.Sprintf("  HP: %d/%d  Enemies: %d  Kills: %d", s.Health, s.MaxHealth, s.Enemies, s.Kills)
	}
	if s.Cursor != "" {
		line += "  Cursor: " + s.Cursor
	}
	r.drawText(0, hudY+1, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.drawText(0, hudY+2, s.Help, tcell.StyleDefault.Foreground(tcell.ColorGray))

	// Last two messages.
	msgs := s.Messages
	if len(msgs) > 2 {
		msgs = msgs[len(msgs)-2:]
	}
	for i, msg := range msgs {
		r.drawText(0, hudY+3+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

// DrawBanner writes lines centered over the maze view.
func (r *Renderer) DrawBanner(color tcell.Color, lines ...string) {
	w, _ := r.screen.Size()
	top := r.camera.ViewHeight/2 - len(lines)/2
	style := tcell.StyleDefault.Foreground(color).Background(tcell.ColorBlack).Bold(true)
	for i, l := range lines {
		x := max((w-runewidth.StringWidth(l))/2, 0)
		r.drawText(x, top+i, l, style)
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
