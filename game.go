package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/entity"
	"github.com/milk9111/bosshex/ecs/render"
	"github.com/milk9111/bosshex/ecs/system"
	"github.com/milk9111/bosshex/hex"
	"github.com/milk9111/bosshex/hexnet"
	"github.com/milk9111/bosshex/prefabs"
)

// Options select how a Game runs.
type Options struct {
	Seed     int64
	Arena    string
	Headless bool
	Watch    bool

	// Hub is set on the authority when replicas may connect.
	Hub *hexnet.Hub
	// Replica is set when following a remote authority. The local game then
	// never rolls hexes or runs hazards.
	Replica *hexnet.Replica
}

type Game struct {
	opts   Options
	frames int
	paused bool

	arena   prefabs.ArenaSpec
	hexSpec prefabs.HexSpec
	tuning  hex.Tuning

	world    *ecs.World
	systems  *ecs.Scheduler
	registry *hex.Registry
	source   system.HexSource
	rng      hex.Rand

	scheduler *hex.Scheduler
	summon    *system.SummonSystem
	hazard    *system.HexHazardSystem
	effects   *system.HexEffectSystem
	damage    *system.DamageSystem
	announcer *system.AnnouncementSystem

	renderer *render.Renderer
	pauseUI  *ebitenui.UI
	watcher  *prefabs.Watcher
}

func NewGame(opts Options) (*Game, error) {
	arena, err := prefabs.LoadArenaSpec(opts.Arena)
	if err != nil {
		return nil, err
	}
	if opts.Headless {
		for i := range arena.Participants {
			arena.Participants[i].Bot = true
		}
	}

	hexSpec, err := prefabs.LoadHexSpec()
	if err != nil {
		return nil, err
	}
	catalog, err := hexSpec.BuildCatalog()
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:    opts,
		arena:   arena,
		hexSpec: hexSpec,
		tuning:  hexSpec.BuildTuning(),
		rng:     hex.NewRand(opts.Seed),
	}

	if opts.Replica != nil {
		g.source = opts.Replica
	} else {
		g.registry = hex.NewRegistry(catalog, g.tuning, g.rng)
		g.source = g.registry
	}
	g.scheduler = hex.NewScheduler(g.tuning, g.rng, g.loadCurve())

	if !opts.Headless {
		g.renderer = render.NewRenderer()
	}
	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("watch: %v", err)
		} else {
			g.watcher = w
		}
	}

	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) authoritative() bool { return g.opts.Replica == nil }

func (g *Game) loadCurve() hex.IntensityCurve {
	name := g.hexSpec.Meteor.IntensityScript
	if name == "" {
		return hex.DefaultCurve
	}
	curve, err := system.LoadScriptCurve(name)
	if err != nil {
		log.Printf("hex: %v; using the built-in curve", err)
		return hex.DefaultCurve
	}
	return curve
}

// reset builds a fresh world from the arena spec. Every persisted hex goes
// with the old world.
func (g *Game) reset() error {
	world := ecs.NewWorld()
	if err := entity.LoadArenaToWorld(world, g.arena); err != nil {
		return fmt.Errorf("load arena %s: %w", g.arena.Name, err)
	}
	g.world = world
	if g.registry != nil {
		g.registry.OnWorldLoad()
	}
	g.scheduler.Reset()

	var broadcaster system.Broadcaster
	if g.opts.Hub != nil {
		broadcaster = g.opts.Hub
	}

	g.hazard = system.NewHexHazardSystem(g.source, g.scheduler, g.tuning, g.authoritative())
	g.effects = system.NewHexEffectSystem(g.source, g.tuning)
	g.damage = system.NewDamageSystem(g.source, g.tuning)
	g.announcer = system.NewAnnouncementSystem(g.source, broadcaster, 0)

	g.systems = ecs.NewScheduler()
	if !g.opts.Headless {
		g.systems.Add(system.NewInputSystem())
	}
	g.systems.Add(system.NewBotInputSystem(g.rng))
	g.systems.Add(system.NewParticipantControlSystem())
	g.systems.Add(system.NewAnchorSystem())
	g.systems.Add(system.NewBossSystem())
	if g.authoritative() {
		g.summon = system.NewSummonSystem(g.arena.Bosses, g.registry, g.arena.SummonTicks)
		g.systems.Add(g.summon)
		g.systems.Add(system.NewEncounterSystem(g.registry))
	}
	g.systems.Add(g.hazard)
	g.systems.Add(g.effects)
	g.systems.Add(system.NewCombatSystem())
	g.systems.Add(system.NewPhysicsSystem(g.arena.Gravity))
	g.systems.Add(g.damage)
	g.systems.Add(system.NewStatusSystem())
	g.systems.Add(system.NewCooldownSystem())
	g.systems.Add(system.NewWhiteFlashSystem())
	g.systems.Add(system.NewTTLSystem())
	g.systems.Add(system.NewRespawnSystem(g.arena.RespawnTicks))
	g.systems.Add(g.announcer)

	log.Printf("game: arena %s loaded with %d participants", g.arena.Name, len(g.arena.Participants))
	return nil
}

// Step advances the simulation one tick.
func (g *Game) Step() {
	g.frames++
	g.reload()
	if g.opts.Replica != nil {
		g.pullRemoteAnnouncements()
	}
	g.systems.Update(g.world)
}

func (g *Game) pullRemoteAnnouncements() {
	for {
		select {
		case a := <-g.opts.Replica.Announcements():
			g.announcer.Push(a)
		default:
			return
		}
	}
}

// reload applies edited prefab files. Arena edits take effect on reset.
func (g *Game) reload() {
	for _, name := range g.watcher.Drain() {
		switch {
		case name == prefabs.HexSpecFile:
			g.reloadHexSpec()
		case name == "scripts/"+g.hexSpec.Meteor.IntensityScript:
			g.scheduler.SetCurve(g.loadCurve())
			log.Printf("watch: reloaded %s", name)
		case name == prefabs.ArenaSpecFile:
			log.Printf("watch: %s changed; press R to reset the arena", name)
		}
	}
}

func (g *Game) reloadHexSpec() {
	spec, err := prefabs.LoadHexSpec()
	if err != nil {
		log.Printf("watch: %v", err)
		return
	}
	catalog, err := spec.BuildCatalog()
	if err != nil {
		log.Printf("watch: %v", err)
		return
	}
	g.hexSpec = spec
	g.tuning = spec.BuildTuning()
	if g.registry != nil {
		g.registry.SetCatalog(catalog)
		g.registry.SetTuning(g.tuning)
	}
	g.scheduler.SetTuning(g.tuning)
	g.scheduler.SetCurve(g.loadCurve())
	g.hazard.SetTuning(g.tuning)
	g.effects.SetTuning(g.tuning)
	g.damage.SetTuning(g.tuning)
	log.Printf("watch: reloaded %s", prefabs.HexSpecFile)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
		if g.paused {
			g.pauseUI = NewPauseUI(g)
		}
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.authoritative() {
		if err := g.reset(); err != nil {
			return err
		}
	}
	g.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen, render.HUD{
		Set:            g.source.Current(),
		TicksPerSecond: g.tuning.TicksPerSecond,
		Recent:         g.announcer.Recent(),
		Replica:        !g.authoritative(),
	})
	if g.paused && g.pauseUI != nil {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := entity.ArenaBounds(g.arena)
	return int(b.Width), int(b.Height)
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
