package system

import (
	"testing"

	"maze-shooter/internal/component"
	"maze-shooter/internal/config"
	"maze-shooter/internal/ecs"
	"maze-shooter/internal/factory"
	"maze-shooter/internal/grid"
	"maze-shooter/internal/physics"
)

func TestFireRespectsCooldown(t *testing.T) {
	w := ecs.NewWorld()
	cfg := config.Default()
	player := factory.NewPlayer(w, physics.V(1.5, 1.5), cfg)

	if _, ok := Fire(w, player, physics.Vec{}, cfg); ok {
		t.Fatal("zero direction must not fire")
	}
	shot, ok := Fire(w, player, physics.V(0, 1), cfg)
	if !ok {
		t.Fatal("first shot should fire")
	}
	if p := posOf(w, shot); p != physics.V(1.5, 1.5) {
		t.Errorf("projectile spawned at %v; want the player's position", p)
	}
	if _, ok := Fire(w, player, physics.V(0, 1), cfg); ok {
		t.Fatal("second shot inside the cooldown should not fire")
	}
	TickWeapons(w, cfg.FireCooldown)
	if _, ok := Fire(w, player, physics.V(0, 1), cfg); !ok {
		t.Fatal("shot after the cooldown should fire")
	}
	if n := w.Count(component.CProjectile); n != 2 {
		t.Errorf("projectiles = %d; want 2", n)
	}
}

func TestResolveProjectileKillsEnemy(t *testing.T) {
	m := mustMaze(t, ".....\n")
	w := ecs.NewWorld()
	cfg := config.Default()
	enemy := factory.NewEnemy(w, physics.V(3.5, 0.5), cfg)
	shot := factory.NewProjectile(w, ecs.NilEntity, physics.V(3.1, 0.5), physics.V(1, 0), cfg)

	rep := ResolveCollisions(w, m, grid.NewLayout(1))
	if rep.Kills != 1 {
		t.Fatalf("kills = %d; want 1", rep.Kills)
	}
	if w.Alive(enemy) || w.Alive(shot) {
		t.Error("enemy and projectile should both be destroyed")
	}
}

func TestResolveProjectileRemoval(t *testing.T) {
	m := mustMaze(t, "..#..\n")
	cfg := config.Default()
	cases := []struct {
		name  string
		pos   physics.Vec
		rng   float64
		spent bool
	}{
		{"in flight", physics.V(0.5, 0.5), 5, false},
		{"inside wall", physics.V(2.5, 0.5), 5, true},
		{"touching wall face", physics.V(1.95, 0.5), 5, true},
		{"outside maze", physics.V(-0.5, 0.5), 5, true},
		{"range exhausted", physics.V(0.5, 0.5), 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			id := factory.NewProjectile(w, ecs.NilEntity, tc.pos, physics.V(1, 0), cfg)
			w.Add(id, component.Projectile{Range: tc.rng})

			rep := ResolveCollisions(w, m, grid.NewLayout(1))
			if got := rep.Spent == 1; got != tc.spent {
				t.Fatalf("spent = %d; want removal %v", rep.Spent, tc.spent)
			}
			if w.Alive(id) == tc.spent {
				t.Errorf("alive = %v after resolve", w.Alive(id))
			}
		})
	}
}

func TestResolveEnemyReachesPlayer(t *testing.T) {
	m := mustMaze(t, ".....\n")
	w := ecs.NewWorld()
	cfg := config.Default()
	player := factory.NewPlayer(w, physics.V(1.5, 0.5), cfg)
	enemy := factory.NewEnemy(w, physics.V(2.2, 0.5), cfg)
	far := factory.NewEnemy(w, physics.V(4.5, 0.5), cfg)

	rep := ResolveCollisions(w, m, grid.NewLayout(1))
	if rep.PlayerHits != 1 {
		t.Fatalf("player hits = %d; want 1", rep.PlayerHits)
	}
	if w.Alive(enemy) {
		t.Error("touching enemy should despawn")
	}
	if !w.Alive(far) {
		t.Error("distant enemy should survive")
	}
	hp := w.Get(player, component.CHealth).(component.Health)
	if hp.Current != cfg.PlayerHealth-1 {
		t.Errorf("health = %d; want %d", hp.Current, cfg.PlayerHealth-1)
	}
}

func TestCheckOutcome(t *testing.T) {
	w := ecs.NewWorld()
	cfg := config.Default()
	player := factory.NewPlayer(w, physics.V(0.5, 0.5), cfg)
	enemy := factory.NewEnemy(w, physics.V(3.5, 0.5), cfg)

	if got := CheckOutcome(w, player); got != Running {
		t.Fatalf("outcome = %v; want running", got)
	}
	w.DestroyEntity(enemy)
	if got := CheckOutcome(w, player); got != Won {
		t.Fatalf("outcome = %v; want won", got)
	}
	factory.NewEnemy(w, physics.V(3.5, 0.5), cfg)
	w.Add(player, component.Health{Current: 0, Max: cfg.PlayerHealth})
	if got := CheckOutcome(w, player); got != Lost {
		t.Fatalf("outcome = %v; want lost", got)
	}
	w.DestroyEntity(player)
	if got := CheckOutcome(w, player); got != Lost {
		t.Fatalf("outcome = %v; want lost for a missing player", got)
	}
}

func TestProjectileStopsAtWallOnLongTick(t *testing.T) {
	m := mustMaze(t, "..#......\n")
	layout := grid.NewLayout(1)
	w := ecs.NewWorld()
	cfg := config.Default()
	id := factory.NewProjectile(w, ecs.NilEntity, physics.V(0.4, 0.5), physics.V(1, 0), cfg)

	spent := 0
	for tick := 0; tick < 3 && w.Alive(id); tick++ {
		Move(w, m, layout, 0.1)
		if p := posOf(w, id); p.X > 2.0+eps {
			t.Fatalf("tick %d: projectile at %v went past the wall face", tick, p)
		}
		spent += ResolveCollisions(w, m, layout).Spent
	}
	if w.Alive(id) {
		t.Fatalf("projectile still alive at %v", posOf(w, id))
	}
	if spent != 1 {
		t.Errorf("spent = %d; want 1", spent)
	}
}

func TestProjectileHitsEnemyOnLongTick(t *testing.T) {
	m := mustMaze(t, ".....\n")
	layout := grid.NewLayout(1)
	w := ecs.NewWorld()
	cfg := config.Default()
	enemy := factory.NewEnemy(w, physics.V(2.5, 0.5), cfg)
	shot := factory.NewProjectile(w, ecs.NilEntity, physics.V(0.5, 0.5), physics.V(1, 0), cfg)

	kills := 0
	for tick := 0; tick < 3 && w.Alive(shot); tick++ {
		Move(w, m, layout, 0.1)
		kills += ResolveCollisions(w, m, layout).Kills
	}
	if kills != 1 {
		t.Fatalf("kills = %d; want 1", kills)
	}
	if w.Alive(enemy) || w.Alive(shot) {
		t.Error("enemy and projectile should both be destroyed")
	}
}
