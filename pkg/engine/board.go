// pkg/engine/board.go
package engine

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/splitrock/go-driftfield/pkg/config"
	"github.com/splitrock/go-driftfield/pkg/entity"
	"github.com/splitrock/go-driftfield/pkg/event"
	"github.com/splitrock/go-driftfield/pkg/input"
	"github.com/splitrock/go-driftfield/pkg/physics"
)

// Board is the complete simulation state for one session: the ship, all
// live mooks and bullets, and the counters their keys are issued from.
// It has exactly one mutator (the game loop) for its entire lifetime, so
// no locking is needed.
type Board struct {
	Ship    *entity.Ship
	Mooks   map[entity.ID]*entity.Mook
	Bullets map[entity.ID]*entity.Bullet

	cfg      *config.GameConfig
	rng      *rand.Rand
	tester   physics.PairTester
	events   *event.Bus
	mookCt   entity.ID
	bulletCt entity.ID
	tick     uint64

	thrusting bool // thrust intent seen this tick, cleared by the loop each intent phase
	graceLeft int  // ticks of ship invulnerability after a ram
	shipDown  bool
}

// NewBoard creates a board with a fresh ship and no mooks or bullets.
// A nil rng gets a time-seeded one; tests pass a fixed seed instead.
func NewBoard(cfg *config.GameConfig, bus *event.Bus, rng *rand.Rand) *Board {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32))
	}
	return &Board{
		Ship:    entity.NewShip(),
		Mooks:   make(map[entity.ID]*entity.Mook),
		Bullets: make(map[entity.ID]*entity.Bullet),
		cfg:     cfg,
		rng:     rng,
		tester:  physics.NewPhasedTester(cfg.Mooks.ExactTolerance),
		events:  bus,
	}
}

// SetPairTester replaces the collision tester. The default is the
// two-phase brute-force tester; a spatial index can be substituted here
// without touching the collision pass.
func (b *Board) SetPairTester(t physics.PairTester) {
	b.tester = t
}

// Tick returns the number of completed steps.
func (b *Board) Tick() uint64 {
	return b.tick
}

// ShipDestroyed reports whether the ship's health has reached zero.
func (b *Board) ShipDestroyed() bool {
	return b.shipDown
}

// Step advances the simulation by one tick. The phase order is fixed:
// ship, bullets, mooks, collision pass, sweep.
func (b *Board) Step() {
	sim := b.cfg.Simulation

	if b.graceLeft > 0 {
		b.graceLeft--
	}

	b.Ship.Update(sim.Step, sim.WrapLimit)
	for _, bullet := range b.Bullets {
		bullet.Update(sim.Step)
	}
	for _, mook := range b.Mooks {
		mook.Update(sim.Step, b.cfg.Mooks.Spin, sim.WrapLimit)
	}

	b.resolveCollisions()
	b.sweep()
	b.tick++
}

// resolveCollisions runs the mook/bullet pair tests and applies damage.
// Each bullet hits at most one mook; several bullets may hit the same
// mook within one tick. Destroyed mooks are left at zero health for the
// sweep, which removes or splits them.
func (b *Board) resolveCollisions() {
	base := b.cfg.Mooks.BaseRadius
	damage := b.cfg.Mooks.HitDamage

	for bulletID, bullet := range b.Bullets {
		bulletCircle := bullet.Collider(b.cfg.Simulation.BulletRadius)
		for mookID, mook := range b.Mooks {
			if mook.Health <= 0 {
				continue
			}
			if !b.tester.Test(mook.Collider(base), bulletCircle) {
				continue
			}

			mook.TakeDamage(damage)
			b.removeBullet(bulletID)
			b.publish(event.NewMookEvent(event.MookHit, b, uint64(mookID), mook.Level))
			break
		}
	}

	b.resolveShipContacts()
}

// resolveShipContacts damages the ship when a mook overlaps it. A short
// grace window after each ram keeps a single overlap from draining the
// ship over consecutive ticks.
func (b *Board) resolveShipContacts() {
	if b.shipDown || b.graceLeft > 0 {
		return
	}

	shipCircle := physics.Circle{Center: b.Ship.Position, Radius: b.cfg.Mooks.BaseRadius}
	for _, mook := range b.Mooks {
		if mook.Health <= 0 {
			continue
		}
		if !b.tester.Test(mook.Collider(b.cfg.Mooks.BaseRadius), shipCircle) {
			continue
		}

		b.graceLeft = b.cfg.Simulation.TickRate // one second of grace
		if b.Ship.TakeDamage(b.cfg.Mooks.HitDamage) {
			b.shipDown = true
			b.publish(&event.BaseEvent{EventType: event.ShipDestroyed, Source: b})
		}
		break
	}
}

// sweep removes expired bullets and destroyed mooks. Mooks above the
// minimum tier split into two children instead of vanishing.
func (b *Board) sweep() {
	for id, bullet := range b.Bullets {
		if bullet.Expired(b.cfg.Simulation.BulletRangeSq) {
			b.removeBullet(id)
			b.publish(event.NewBulletEvent(event.BulletExpired, b, uint64(id)))
		}
	}

	var destroyed []entity.ID
	for id, mook := range b.Mooks {
		if mook.Health <= 0 {
			destroyed = append(destroyed, id)
		}
	}
	for _, id := range destroyed {
		mook := b.Mooks[id]
		b.RemoveMook(id)

		children := mook.Split(b.rng, b.cfg.Mooks.MinLevel)
		if len(children) == 0 {
			b.publish(event.NewMookEvent(event.MookDestroyed, b, uint64(id), mook.Level))
			continue
		}
		b.publish(event.NewMookEvent(event.MookSplit, b, uint64(id), mook.Level))
		for _, child := range children {
			b.AddMook(child)
		}
	}
}

// Fire appends a bullet at the ship's position along its heading, keyed
// by the next bullet counter value. There is no cap on live bullets.
func (b *Board) Fire() entity.ID {
	id := b.bulletCt
	b.Bullets[id] = b.Ship.Fire(b.cfg.Simulation.MuzzleSpeed)
	b.bulletCt++
	b.publish(event.NewBulletEvent(event.BulletFired, b, uint64(id)))
	return id
}

// SpawnMook inserts a random mook at the default level tier.
func (b *Board) SpawnMook() entity.ID {
	mook := entity.NewRandomMook(
		b.rng,
		1.0, // visible field half-extent
		b.cfg.Simulation.MaxSpeed,
		b.cfg.Mooks.DefaultLevel,
	)
	return b.AddMook(mook)
}

// AddMook inserts a mook keyed by the next mook counter value.
func (b *Board) AddMook(m *entity.Mook) entity.ID {
	id := b.mookCt
	b.Mooks[id] = m
	b.mookCt++
	b.publish(event.NewMookEvent(event.MookSpawned, b, uint64(id), m.Level))
	return id
}

// RemoveMook deletes a mook by key. Removing a key that is not live is an
// invariant violation: keys are issued from a monotonic counter and never
// reused, so a missing key means a core bug, and the board panics rather
// than carry on with corrupt state.
func (b *Board) RemoveMook(id entity.ID) {
	if _, ok := b.Mooks[id]; !ok {
		panic(fmt.Sprintf("engine: remove of unknown mook %d (counter %d)", id, b.mookCt))
	}
	delete(b.Mooks, id)
}

// removeBullet deletes a bullet by key, with the same invariant as
// RemoveMook.
func (b *Board) removeBullet(id entity.ID) {
	if _, ok := b.Bullets[id]; !ok {
		panic(fmt.Sprintf("engine: remove of unknown bullet %d (counter %d)", id, b.bulletCt))
	}
	delete(b.Bullets, id)
}

// Apply executes one held-key intent against the board. Quit is a loop
// concern and is ignored here.
func (b *Board) Apply(intent input.Intent) {
	sim := b.cfg.Simulation
	switch intent {
	case input.TurnLeft:
		b.Ship.Turn(sim.TurnIncrement)
	case input.TurnRight:
		b.Ship.Turn(-sim.TurnIncrement)
	case input.Thrust:
		b.Ship.Accelerate(sim.Accel, sim.MaxSpeed)
		b.thrusting = true
	case input.Reverse:
		b.Ship.Accelerate(-sim.Accel, sim.MaxSpeed)
	case input.Fire:
		b.Fire()
	}
}

func (b *Board) publish(e event.Event) {
	if b.events != nil {
		b.events.Publish(e)
	}
}
