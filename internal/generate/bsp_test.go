package generate

import (
	"math/rand"
	"testing"

	"maze-shooter/internal/grid"
	"maze-shooter/internal/maze"
	"maze-shooter/internal/pathfind"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(seed int64) Config {
	return DefaultConfig(60, 30, 6, rand.New(rand.NewSource(seed)))
}

func TestGenerateBorderIsWalled(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		res, err := Generate(testConfig(seed))
		require.NoError(t, err)
		m := res.Maze
		for x := 0; x < m.Width(); x++ {
			assert.Equal(t, maze.Blocked, m.At(grid.C(x, 0)), "seed=%d top x=%d", seed, x)
			assert.Equal(t, maze.Blocked, m.At(grid.C(x, m.Height()-1)), "seed=%d bottom x=%d", seed, x)
		}
		for y := 0; y < m.Height(); y++ {
			assert.Equal(t, maze.Blocked, m.At(grid.C(0, y)), "seed=%d left y=%d", seed, y)
			assert.Equal(t, maze.Blocked, m.At(grid.C(m.Width()-1, y)), "seed=%d right y=%d", seed, y)
		}
	}
}

// TestGenerateSpawnsReachable checks every enemy spawn has a path from the
// player spawn.
func TestGenerateSpawnsReachable(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		res, err := Generate(testConfig(seed))
		require.NoError(t, err)
		m := res.Maze
		require.NoError(t, m.Validate(), "seed=%d", seed)

		p, _ := m.PlayerSpawn()
		assert.Equal(t, res.Rooms[0].Center(), p, "seed=%d", seed)
		for _, e := range m.EnemySpawns() {
			_, err := pathfind.Find(m, p, e)
			assert.NoError(t, err, "seed=%d enemy %v", seed, e)
		}
	}
}

func TestGenerateAllFloorConnected(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		res, err := Generate(testConfig(seed))
		require.NoError(t, err)
		m := res.Maze
		p, _ := m.PlayerSpawn()
		seen := reachable(m, p)
		for y := 0; y < m.Height(); y++ {
			for x := 0; x < m.Width(); x++ {
				c := grid.C(x, y)
				if m.IsWalkable(c) {
					assert.True(t, seen.Has(c), "seed=%d: unreachable floor at %v", seed, c)
				}
			}
		}
	}
}

func TestGenerateRoomsDoNotOverlap(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		res, err := Generate(testConfig(seed))
		require.NoError(t, err)
		rooms := res.Rooms
		for i := 0; i < len(rooms); i++ {
			for j := i + 1; j < len(rooms); j++ {
				assert.False(t, rooms[i].Intersects(rooms[j]),
					"seed=%d: room %d %v overlaps room %d %v", seed, i, rooms[i], j, rooms[j])
			}
		}
	}
}

func TestGenerateEnemyCount(t *testing.T) {
	cfg := testConfig(3)
	cfg.Enemies = 2
	res, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, min(2, len(res.Rooms)-1), res.Maze.Count(maze.EnemySpawn))

	cfg = testConfig(3)
	cfg.Enemies = 0
	res, err = Generate(cfg)
	require.NoError(t, err)
	assert.Zero(t, res.Maze.Count(maze.EnemySpawn))
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(testConfig(42))
	require.NoError(t, err)
	b, err := Generate(testConfig(42))
	require.NoError(t, err)
	assert.True(t, a.Maze.Equal(b.Maze))
	assert.Equal(t, a.Rooms, b.Rooms)
}

func TestGenerateSmallest(t *testing.T) {
	res, err := Generate(DefaultConfig(MinSize, MinSize, 3, rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	require.Len(t, res.Rooms, 1)
	assert.Equal(t, grid.C(2, 2), func() grid.Coord { p, _ := res.Maze.PlayerSpawn(); return p }())
	assert.Zero(t, res.Maze.Count(maze.EnemySpawn))
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate(DefaultConfig(4, 10, 1, rand.New(rand.NewSource(1))))
	assert.ErrorIs(t, err, ErrTooSmall)

	_, err = Generate(DefaultConfig(10, 10, 1, nil))
	assert.Error(t, err)
}
