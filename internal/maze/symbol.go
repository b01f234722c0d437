package maze

// Symbol is the content of one maze cell. Its rune is also its character in
// the saved text format.
type Symbol rune

const (
	Free        Symbol = '.'
	Blocked     Symbol = '#'
	PlayerSpawn Symbol = 'P'
	EnemySpawn  Symbol = 'E'
)

// Valid reports whether s is one of the known symbols.
func (s Symbol) Valid() bool {
	switch s {
	case Free, Blocked, PlayerSpawn, EnemySpawn:
		return true
	}
	return false
}

func (s Symbol) String() string {
	switch s {
	case Free:
		return "free"
	case Blocked:
		return "wall"
	case PlayerSpawn:
		return "player spawn"
	case EnemySpawn:
		return "enemy spawn"
	}
	return "unknown(" + string(rune(s)) + ")"
}

func symbolRune(s Symbol) rune { return rune(s) }
