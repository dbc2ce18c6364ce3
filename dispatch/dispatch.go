// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dispatch

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/gainanist/bygone-bot/arena"
	"github.com/gainanist/bygone-bot/battlelog"
	"github.com/gainanist/bygone-bot/engine/delay"
	"github.com/gainanist/bygone-bot/engine/events"
	"github.com/gainanist/bygone-bot/entity"
	"github.com/gainanist/bygone-bot/platform"
	"github.com/gainanist/bygone-bot/registry"
	"github.com/gainanist/bygone-bot/rpgerr"
)

// GameCooldown is how long, counted from a game's start, its guild slot
// stays occupied before a new GameStart is admitted.
const GameCooldown = 895 * time.Second

// DefaultAttackRate and DefaultAttackBurst bound how often a single
// (guild, user) pair may push a PlayerAttack through the dispatcher,
// ahead of and independent from the spec's Ready-tag dedup.
const (
	DefaultAttackRate  rate.Limit = 2
	DefaultAttackBurst int        = 3
)

// attackLimiterReapAfter is how long a (guild, user) bucket may sit idle
// before it is dropped from attackLimiter. Without this, a guild/user
// pair seen once keeps its bucket forever, growing the map by one entry
// per distinct attacker for the engine's lifetime.
const attackLimiterReapAfter = time.Hour

// attackLimiterReapInterval bounds how often Process sweeps for idle
// buckets, so the sweep itself doesn't become an O(n) cost on every call.
const attackLimiterReapInterval = time.Minute

// attackBucket pairs a token bucket with the tick time it was last
// consulted, so idle buckets can be reaped.
type attackBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Dispatcher is the Input Dispatcher: it is the only component allowed
// to mint a GameId, insert into the registry, or enqueue into the Delay
// Queue.
type Dispatcher struct {
	arena    *arena.Arena
	registry *registry.Registry
	delay    *delay.Queue
	log      *battlelog.Log
	logger   *zap.Logger
	cooldown time.Duration

	attackRate    rate.Limit
	attackBurst   int
	attackLimiter map[string]*attackBucket
	lastReap      time.Time
}

// New returns a Dispatcher wired to its collaborators, rejecting a
// GameStart for cooldown seconds after its guild's last game admitted.
// A zero cooldown falls back to GameCooldown.
func New(a *arena.Arena, reg *registry.Registry, delayQueue *delay.Queue, bl *battlelog.Log, cooldown time.Duration, logger *zap.Logger) *Dispatcher {
	return NewWithAttackLimit(a, reg, delayQueue, bl, cooldown, DefaultAttackRate, DefaultAttackBurst, logger)
}

// NewWithAttackLimit is New with an explicit per-(guild, user) attack
// token bucket. A non-positive attackRate or attackBurst falls back to
// the package defaults.
func NewWithAttackLimit(a *arena.Arena, reg *registry.Registry, delayQueue *delay.Queue, bl *battlelog.Log, cooldown time.Duration, attackRate rate.Limit, attackBurst int, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cooldown <= 0 {
		cooldown = GameCooldown
	}
	if attackRate <= 0 {
		attackRate = DefaultAttackRate
	}
	if attackBurst <= 0 {
		attackBurst = DefaultAttackBurst
	}
	return &Dispatcher{
		arena: a, registry: reg, delay: delayQueue, log: bl, cooldown: cooldown, logger: logger,
		attackRate: attackRate, attackBurst: attackBurst, attackLimiter: make(map[string]*attackBucket),
	}
}

// Process handles every buffered InputEvent in order, mutating the
// registry and arena and publishing the internal events that result.
func (d *Dispatcher) Process(now time.Time, inputs []platform.InputEvent, bus *events.Bus) {
	d.reapAttackLimiters(now)
	for _, ev := range inputs {
		switch {
		case ev.GameStart != nil:
			d.handleGameStart(now, ev.GameStart, bus)
		case ev.PlayerAttack != nil:
			d.handlePlayerAttack(now, ev.PlayerAttack, bus)
		}
	}
}

// attackLimiterFor returns the token bucket for (guild, user), creating
// one on first use. now is the engine's injected tick time, not wall
// clock, so the bucket stays deterministic under tests that drive Tick
// with their own clock.
func (d *Dispatcher) attackLimiterFor(guild entity.GuildId, user entity.UserId, now time.Time) *rate.Limiter {
	key := string(guild) + ":" + string(user)
	b, ok := d.attackLimiter[key]
	if !ok {
		b = &attackBucket{limiter: rate.NewLimiter(d.attackRate, d.attackBurst)}
		d.attackLimiter[key] = b
	}
	b.lastSeen = now
	return b.limiter
}

// reapAttackLimiters drops buckets idle longer than attackLimiterReapAfter,
// checked no more often than attackLimiterReapInterval.
func (d *Dispatcher) reapAttackLimiters(now time.Time) {
	if !d.lastReap.IsZero() && now.Sub(d.lastReap) < attackLimiterReapInterval {
		return
	}
	d.lastReap = now
	for key, b := range d.attackLimiter {
		if now.Sub(b.lastSeen) > attackLimiterReapAfter {
			delete(d.attackLimiter, key)
		}
	}
}

func (d *Dispatcher) logDrop(err *rpgerr.Error) {
	d.logger.Debug(err.Message, zap.Any("meta", err.Meta))
}

func (d *Dispatcher) handleGameStart(now time.Time, ev *platform.GameStartInput, bus *events.Bus) {
	ctx := rpgerr.WithMetadata(context.Background(), rpgerr.Meta("guild_id", string(ev.Guild)))

	if prev, ok := d.registry.Get(ev.Guild); ok {
		durationSecs := d.registry.DurationSecs(prev)
		if durationSecs < d.cooldown.Seconds() {
			if prev.Status == platform.StatusOngoing {
				bus.PublishOneshot(events.OneshotEvent{
					Guild: ev.Guild, Interaction: prev.Interaction,
					Kind: events.OneshotOtherGameInProgress,
				})
			} else {
				bus.PublishOneshot(events.OneshotEvent{
					Guild: ev.Guild, Interaction: prev.Interaction,
					Kind: events.OneshotCooldown, RemainingSecs: d.cooldown.Seconds() - durationSecs,
				})
			}
			d.logDrop(rpgerr.PrerequisiteNotMetCtx(ctx, "guild cooldown expired"))
			return
		}
	}

	gameID := entity.NewGameId()
	previous, hadPrevious := d.registry.Put(ev.Guild, &registry.Game{
		StartTime:    now,
		Id:           gameID,
		Interaction:  ev.Interaction,
		Localization: ev.Localization,
		Status:       platform.StatusOngoing,
	})
	if hadPrevious {
		bus.PublishDeallocateGameResources(events.DeallocateGameResourcesEvent{GameId: previous.Id})
	}
	d.log.Clear(ev.Guild)

	bus.PublishGameStart(events.GameStartEvent{
		InitialPlayer: ev.InitialPlayer, Name: ev.Name, Difficulty: ev.Difficulty,
		Guild: ev.Guild, GameId: gameID,
	})
	bus.PublishPlayerJoin(events.PlayerJoinEvent{
		Player: ev.InitialPlayer, Name: ev.Name, GameId: gameID, Guild: ev.Guild,
	})
	bus.PublishBygoneSpawn(events.BygoneSpawnEvent{Difficulty: ev.Difficulty, GameId: gameID})
	d.delay.EnqueueGameDraw(now, events.GameDrawEvent{Guild: ev.Guild})
}

func (d *Dispatcher) handlePlayerAttack(now time.Time, ev *platform.PlayerAttackInput, bus *events.Bus) {
	ctx := rpgerr.WithMetadata(context.Background(),
		rpgerr.Meta("guild_id", string(ev.Guild)), rpgerr.Meta("user_id", string(ev.Player)))

	game, ok := d.registry.Get(ev.Guild)
	if !ok {
		d.logDrop(rpgerr.NotAllowedCtx(ctx, "no game registered for guild"))
		return
	}

	if !d.attackLimiterFor(ev.Guild, ev.Player, now).AllowN(now, 1) {
		d.logDrop(rpgerr.CooldownActiveCtx(ctx, "player attack"))
		return
	}

	if player, ok := d.arena.Player(game.Id, ev.Player); ok {
		if !player.Active {
			d.logDrop(rpgerr.NotAllowedCtx(ctx, "player inactive"))
			return
		}
		bus.PublishPlayerAttack(events.PlayerAttackEvent{
			Player: ev.Player, Name: ev.Name, Guild: ev.Guild, GameId: game.Id, Target: ev.Target,
		})
		return
	}

	bus.PublishPlayerJoin(events.PlayerJoinEvent{Player: ev.Player, Name: ev.Name, GameId: game.Id, Guild: ev.Guild})
	d.delay.EnqueuePlayerAttack(now, events.PlayerAttackEvent{
		Player: ev.Player, Name: ev.Name, Guild: ev.Guild, GameId: game.Id, Target: ev.Target,
	})
}
