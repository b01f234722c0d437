package render

import "github.com/gdamore/tcell/v2"

// Theme holds the glyphs used to draw the maze. Emoji carry their own
// colors; single-column glyphs use the paired foreground color.
type Theme struct {
	Wall        string
	Floor       string
	PlayerSpawn string
	EnemySpawn  string

	WallColor  tcell.Color
	FloorColor tcell.Color
	Background tcell.Color
	CursorBG   tcell.Color
}

var Themes = map[string]Theme{
	"emoji": {
		Wall:        "🧱",
		Floor:       "·",
		PlayerSpawn: "🚩",
		EnemySpawn:  "💀",
		WallColor:   tcell.ColorSaddleBrown,
		FloorColor:  tcell.ColorDimGray,
		Background:  tcell.ColorBlack,
		CursorBG:    tcell.ColorDarkCyan,
	},
	"ascii": {
		Wall:        "##",
		Floor:       ".",
		PlayerSpawn: "P",
		EnemySpawn:  "E",
		WallColor:   tcell.ColorGray,
		FloorColor:  tcell.ColorDimGray,
		Background:  tcell.ColorBlack,
		CursorBG:    tcell.ColorDarkCyan,
	},
}

// ThemeByName returns the named theme, falling back to "emoji".
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["emoji"]
}
