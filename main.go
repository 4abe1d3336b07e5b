package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bosshex/hexnet"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for hex rolls and hazards")
	arena := flag.String("arena", "", "arena spec in prefabs/ (default arena.yaml)")
	headless := flag.Bool("headless", false, "run without a window; every participant is a bot")
	ticks := flag.Int("ticks", 0, "headless: stop after this many ticks (0 runs until interrupted)")
	addr := flag.String("addr", "", "serve hex state to replicas on this address, e.g. :8088")
	connect := flag.String("connect", "", "follow the authority at this ws:// URL instead of rolling hexes")
	watch := flag.Bool("watch", false, "reload prefab and script edits while running")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := Options{Seed: *seed, Arena: *arena, Headless: *headless, Watch: *watch}

	if *connect != "" && *addr != "" {
		log.Fatal("-connect and -addr are exclusive: a replica cannot serve hex state")
	}
	if *connect != "" {
		dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		replica, err := hexnet.Dial(dialCtx, *connect)
		cancel()
		if err != nil {
			log.Fatal(err)
		}
		defer replica.Close()
		opts.Replica = replica
	}
	if *addr != "" {
		hub := hexnet.NewHub()
		go func() {
			if err := hub.ListenAndServe(ctx, *addr); err != nil {
				log.Printf("hexnet: %v", err)
			}
		}()
		opts.Hub = hub
	}

	log.Printf("game: seed %d", *seed)
	game, err := NewGame(opts)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if *headless {
		runHeadless(ctx, game, *ticks)
		return
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("bosshex")
	ebiten.SetTPS(game.tuning.TicksPerSecond)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// runHeadless steps the game at its tick rate until ctx ends. A positive
// limit runs that many ticks as fast as possible instead.
func runHeadless(ctx context.Context, g *Game, limit int) {
	if limit > 0 {
		for i := 0; i < limit && ctx.Err() == nil; i++ {
			g.Step()
		}
		log.Printf("game: stopped after %d ticks", limit)
		return
	}

	ticker := time.NewTicker(time.Second / time.Duration(g.tuning.TicksPerSecond))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Printf("game: stopped after %d ticks", g.frames)
			return
		case <-ticker.C:
			g.Step()
		}
	}
}
