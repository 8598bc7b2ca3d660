package main

import (
	"context"
	"flag"
	"frostwild-server/internal/agent"
	"frostwild-server/internal/engine"
	"frostwild-server/internal/server"
	"frostwild-server/internal/telemetry"
	"frostwild-server/internal/version"
	"frostwild-server/pkg/logger"
	"frostwild-server/pkg/wilds"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	cfg := engine.NewConfig()
	var seed int64
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.StringVar(&cfg.TuningPath, "tuning", "", "YAML file with balance overrides")
	flag.StringVar(&cfg.JournalDir, "journal", "", "Directory for the zstd director journal (empty = off)")
	flag.BoolVar(&cfg.Headless, "headless", false, "Run without HTTP, the autopilot plays")
	flag.DurationVar(&cfg.Duration, "duration", cfg.Duration, "Headless run length")
	flag.BoolVar(&cfg.Admin, "admin", false, "Allow ADMIN_* debug commands")
	flag.Parse()

	logger.Log.Info("Starting Frostwild...")
	logger.Log.Info(version.String())

	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}
	if port := os.Getenv("FW_PORT"); port != "" {
		cfg.Port = port
	}

	// 2. Баланс и раскладка мира
	tun, err := engine.LoadTuning(cfg.TuningPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load tuning")
	}
	layout := wilds.Standard(rand.New(rand.NewSource(cfg.Seed)), tun.World)

	var journal engine.Journal
	if cfg.JournalDir != "" {
		j := telemetry.NewJournal(cfg.JournalDir, "director")
		defer func() {
			if err := j.Close(); err != nil {
				logger.Log.WithError(err).Warn("Failed to close journal")
			}
		}()
		journal = j
	}

	gameService := engine.NewService(cfg, tun, layout, journal)

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Headless: автопилот играет заданное время и процесс завершается
	if cfg.Headless {
		logger.Log.WithFields(logrus.Fields{"duration": cfg.Duration}).Info("🤖 Mode: Headless autopilot")
		runCtx, cancel := context.WithTimeout(ctx, cfg.Duration)
		defer cancel()

		bot := agent.NewBot("autopilot", gameService)
		go bot.Run(runCtx)
		gameService.Run(runCtx)

		snap := gameService.LastSnapshot()
		logger.Log.WithFields(logrus.Fields{
			"tick":    snap.Tick,
			"state":   snap.State,
			"health":  snap.Player.Health,
			"dropped": gameService.Hub.Dropped(),
		}).Info("Headless run finished")
		return
	}

	// 4. Живой режим: симуляция и HTTP-сервер до сигнала
	go gameService.Run(ctx)

	srv := server.New(gameService, cfg.Port)
	if err := srv.Run(ctx); err != nil {
		logger.Log.WithError(err).Error("Server error")
		return
	}

	logger.Log.Info("Done.")
}
