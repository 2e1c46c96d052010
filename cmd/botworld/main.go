package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/botworld/server/internal/assets"
	"github.com/botworld/server/internal/config"
	"github.com/botworld/server/internal/core/event"
	coresys "github.com/botworld/server/internal/core/system"
	"github.com/botworld/server/internal/data"
	"github.com/botworld/server/internal/scripting"
	"github.com/botworld/server/internal/system"
	"github.com/botworld/server/internal/web"
	"github.com/botworld/server/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(serverName string) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m            botworld  v0.1.0               \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m      2D polygon arena · Go server         \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mserver:\033[0m %s\n\n", serverName)
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main server logic ─────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/server.toml"
	if p := os.Getenv("BOTWORLD_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Server.Name)

	// 3. Load shape catalog and scene script
	shapes, err := data.LoadShapeTable(cfg.World.ShapesPath)
	if err != nil {
		return fmt.Errorf("load shapes: %w", err)
	}
	printStat("shape templates", shapes.Count())

	luaEngine, err := scripting.NewEngine(cfg.World.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()
	printOK("scene scripts loaded")

	params, err := luaEngine.SceneParams(cfg.World.SceneKey, assets.DefaultParams())
	if err != nil {
		return fmt.Errorf("scene params: %w", err)
	}

	// 4. Build the world
	comps := world.NewComponents()
	state := world.NewState(comps)
	if err := assets.Build(comps, shapes, params, cfg.World.SceneKey); err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	printStat("scene polygons", comps.Polygons.Len())

	bus := event.NewBus()
	event.Subscribe(bus, func(hit event.EntityHit) {
		log.Debug("entity hit",
			zap.Int("entity", hit.Entity),
			zap.Uint32("hits", hit.Hits))
	})

	// 5. Register systems: input → collision → movement
	runner := coresys.NewRunner()
	runner.Register(system.NewDispatchSystem(bus))
	runner.Register(system.NewInputSystem(comps, log))
	runner.Register(system.NewCollisionSystem(comps, bus, log))
	runner.Register(system.NewMovementSystem(comps))

	// 6. Start HTTP boundary
	webSrv := web.NewServer(cfg.HTTP, state, log)
	webErr := make(chan error, 1)
	go func() {
		webErr <- webSrv.ListenAndServe()
	}()

	// 7. Run the simulation loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.World.TickRate)
	defer ticker.Stop()

	fmt.Println()
	printReady(fmt.Sprintf("listening on %s", cfg.HTTP.BindAddress))
	printReady(fmt.Sprintf("simulation loop started (tick: %s)", cfg.World.TickRate))
	fmt.Printf("\n  open \033[4mhttp://localhost%s\033[0m to drive the robot\n\n", portSuffix(cfg.HTTP.BindAddress))

	for {
		// Cancellation is checked here, at the tick boundary, outside
		// the world lock. No mid-tick cancellation.
		select {
		case <-ticker.C:
			state.Tick(func(*world.Components) {
				runner.Tick(cfg.World.TickRate)
			})
		case err := <-webErr:
			if err != nil {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()
			if err := webSrv.Shutdown(ctx); err != nil {
				log.Warn("http shutdown", zap.Error(err))
			}
			log.Info("server stopped")
			return nil
		}
	}
}

// portSuffix extracts ":port" from a bind address for the startup hint.
func portSuffix(bind string) string {
	for i := len(bind) - 1; i >= 0; i-- {
		if bind[i] == ':' {
			return bind[i:]
		}
	}
	return ""
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
