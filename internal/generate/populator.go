package generate

import (
	"maze-shooter/internal/maze"
)

// placeSpawns puts the player spawn at the center of the first room and one
// enemy spawn at the center of each following room, up to enemies of them.
func placeSpawns(m *maze.Maze, rooms []Rect, enemies int) error {
	if err := m.Place(rooms[0].Center(), maze.PlayerSpawn); err != nil {
		return err
	}
	for _, r := range rooms[1:] {
		if enemies <= 0 {
			break
		}
		if err := m.Place(r.Center(), maze.EnemySpawn); err != nil {
			return err
		}
		enemies--
	}
	return nil
}
