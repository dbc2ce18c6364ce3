// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/gainanist/bygone-bot/arena"
	"github.com/gainanist/bygone-bot/battlelog"
	"github.com/gainanist/bygone-bot/combat"
	"github.com/gainanist/bygone-bot/dice"
	"github.com/gainanist/bygone-bot/dispatch"
	"github.com/gainanist/bygone-bot/engine/cleanup"
	"github.com/gainanist/bygone-bot/engine/delay"
	"github.com/gainanist/bygone-bot/engine/events"
	"github.com/gainanist/bygone-bot/engine/metrics"
	"github.com/gainanist/bygone-bot/engine/timer"
	"github.com/gainanist/bygone-bot/entity"
	"github.com/gainanist/bygone-bot/platform"
	"github.com/gainanist/bygone-bot/registry"
	"github.com/gainanist/bygone-bot/render"
	"github.com/gainanist/bygone-bot/spawn"
	"github.com/gainanist/bygone-bot/statemachine"
)

// Engine owns every subsystem and the shared, cross-tick event bus.
// It is not safe for concurrent use: exactly one goroutine must call
// Tick.
type Engine struct {
	bus *events.Bus

	arena    *arena.Arena
	registry *registry.Registry
	delay    *delay.Queue
	timer    *timer.Timer

	dispatcher *dispatch.Dispatcher
	spawner    *spawn.Spawner
	resolver   *combat.Resolver
	driver     *statemachine.Driver
	battleLog  *battlelog.Log
	render     *render.Producer
	cleanup    *cleanup.Cleanup

	metrics *metrics.Metrics

	// clock holds the time passed to the Tick in progress; the registry
	// measures game durations against it, not against the wall clock.
	clock *time.Time
}

// New assembles an Engine from cfg, rolling combat and spawn outcomes
// via roller.
func New(cfg Config, roller dice.Roller, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}

	a := arena.New()
	clock := new(time.Time)
	reg := registry.NewWithClock(func() time.Time { return *clock })
	dq := delay.New(cfg.EventDelay)
	t := timer.New(cfg.Timer)
	bl := battlelog.New(roller, log)

	e := &Engine{
		bus:        events.NewBus(),
		arena:      a,
		registry:   reg,
		delay:      dq,
		timer:      t,
		dispatcher: dispatch.NewWithAttackLimit(a, reg, dq, bl, cfg.GameCooldown, cfg.AttackRate, cfg.AttackBurst, log),
		spawner:    spawn.New(a, roller, log),
		resolver:   combat.New(a, roller, log),
		driver:     statemachine.New(a, reg, log),
		battleLog:  bl,
		render:     render.New(a, reg, bl, log),
		cleanup:    cleanup.New(a, reg, cfg.MaxGameDuration, log),
		metrics:    metrics.New(),
		clock:      clock,
	}
	return e
}

// Tick runs one pass of every subsystem in the fixed order the design
// specifies, against inputs freshly received from the platform adapter,
// and returns the GameRenderEvents produced for this tick (possibly
// none). The event bus persists across calls: whatever no subsystem
// drains this tick survives into the next, by design.
func (e *Engine) Tick(now time.Time, inputs []platform.InputEvent) []platform.GameRenderEvent {
	started := time.Now()
	*e.clock = now
	bus := e.bus

	e.dispatcher.Process(now, inputs, bus)

	delayedDraws, delayedAttacks := e.delay.Drain(now)
	for _, gd := range delayedDraws {
		bus.PublishGameDraw(gd)
	}
	for _, pa := range delayedAttacks {
		bus.PublishPlayerAttack(pa)
	}

	// Battle Log runs after Spawners drain PlayerJoinEvent, so the join
	// events it needs are captured here, before anything else consumes
	// them; Record is called on this copy, not a live peek, near the end
	// of the tick.
	joins := append([]events.PlayerJoinEvent(nil), bus.PeekPlayerJoin()...)

	e.timer.ObserveAttacks(now, bus.PeekPlayerAttack())
	e.timer.Tick(now, bus)

	e.spawner.SpawnBygones(bus.DrainBygoneSpawn())
	e.spawner.SpawnPlayers(bus.DrainPlayerJoin())
	// The Spawner builds rows from BygoneSpawn and PlayerJoin, which carry
	// everything GameStart does; GameStart is retired at this stage.
	bus.DrainGameStart()

	playerAttacks := bus.DrainPlayerAttack()
	e.resolver.ResolvePlayerAttacks(playerAttacks, bus)
	e.resolver.ResolvePartDeaths(bus.DrainBygonePartDeath(), bus)
	enemyAttacks := bus.DrainEnemyAttack()
	e.resolver.ResolveEnemyAttacks(enemyAttacks, bus)
	for range playerAttacks {
		e.metrics.RecordAttack()
	}
	for range enemyAttacks {
		e.metrics.RecordEnemyAttack()
	}

	e.driver.ApplyDeactivations(bus.DrainDeactivate())
	e.driver.UpdateGameStatus(bus)
	e.driver.ReadyPlayers(bus.DrainTurnEnd())

	e.battleLog.Record(bus.DrainBattleLog(), joins, e.lookupLocalization)

	renders := e.render.Produce(bus)
	e.recordRenderMetrics(renders)

	e.cleanup.Run(bus.DrainDeallocateGameResources(), bus)

	e.metrics.ObserveTick(time.Since(started), len(e.registry.All()))

	return renders
}

func (e *Engine) recordRenderMetrics(renders []platform.GameRenderEvent) {
	for _, r := range renders {
		switch {
		case r.Finished != nil:
			e.metrics.RecordGameFinished(finishReason(r.Finished.Status))
		case r.Oneshot != nil:
			e.metrics.RecordOneshot(oneshotReason(r.Oneshot.Kind))
		}
	}
}

func finishReason(status platform.GameStatus) string {
	switch status {
	case platform.StatusWon:
		return "won"
	case platform.StatusLost:
		return "lost"
	case platform.StatusExpired:
		return "expired"
	default:
		return "unknown"
	}
}

func oneshotReason(kind platform.OneshotKind) string {
	if kind == platform.OneshotCooldown {
		return "cooldown"
	}
	return "other_game_in_progress"
}

// Metrics exposes the engine's Prometheus instruments for an ops HTTP
// server to register a /metrics handler against.
func (e *Engine) Metrics() *metrics.Metrics {
	return e.metrics
}

func (e *Engine) lookupLocalization(guild entity.GuildId) (platform.Localization, bool) {
	game, ok := e.registry.Get(guild)
	if !ok {
		return platform.Localization{}, false
	}
	return game.Localization, true
}

// Registry exposes the Game Registry for read-only inspection by
// ambient concerns (ops metrics, health checks).
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Arena exposes the entity arena for read-only inspection by ambient
// concerns and tests.
func (e *Engine) Arena() *arena.Arena {
	return e.arena
}

// ActiveGames reports how many guilds currently have a registered game,
// any status.
func (e *Engine) ActiveGames() int {
	return len(e.registry.All())
}
