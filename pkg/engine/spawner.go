// pkg/engine/spawner.go
package engine

// Spawner decides when fresh mooks enter the field. Spawn cadence is a
// policy outside the board's step; the loop invokes the spawner once per
// tick with the board it may add to.
type Spawner interface {
	Update(board *Board)
}

// IntervalSpawner adds one mook every Interval ticks while the live
// population is below Max. A zero or negative Interval disables it.
type IntervalSpawner struct {
	Interval int
	Max      int
}

// Update implements Spawner.
func (s *IntervalSpawner) Update(board *Board) {
	if s.Interval <= 0 {
		return
	}
	if board.Tick() == 0 || board.Tick()%uint64(s.Interval) != 0 {
		return
	}
	if len(board.Mooks) >= s.Max {
		return
	}
	board.SpawnMook()
}

// NopSpawner never spawns. Useful for tests and scripted sessions.
type NopSpawner struct{}

// Update implements Spawner.
func (NopSpawner) Update(*Board) {}
