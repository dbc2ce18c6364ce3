// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Command bygonebot boots the tick loop and its ops HTTP surface. It
// never opens a chat-platform connection: wiring a real adapter that
// turns InputEvents into platform traffic and back is the deploying
// process's job, out of scope here.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gainanist/bygone-bot/dice"
	"github.com/gainanist/bygone-bot/engine"
	"github.com/gainanist/bygone-bot/httpapi"
	"github.com/gainanist/bygone-bot/platform"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := engine.DefaultConfig()
	e := engine.New(cfg, &dice.CryptoRoller{}, logger)

	addr := ":8080"
	if v := os.Getenv("BYGONEBOT_ADDR"); v != "" {
		addr = v
	}
	server := &http.Server{
		Addr:    addr,
		Handler: httpapi.NewRouter(httpapi.RouterConfig{Engine: e}),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return runTickLoop(gctx, e, cfg.TickPeriod, logger)
	})

	g.Go(func() error {
		logger.Info("ops server listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("exiting", zap.Error(err))
		os.Exit(1)
	}
}

// runTickLoop drives Engine.Tick on a fixed ticker until ctx is
// canceled. Input delivery from a real platform adapter is wired here
// in a production deployment; with none configured, every tick runs
// with an empty input slice.
func runTickLoop(ctx context.Context, e *engine.Engine, period time.Duration, logger *zap.Logger) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("tick loop stopping")
			return nil
		case now := <-ticker.C:
			renders := e.Tick(now, []platform.InputEvent(nil))
			if len(renders) > 0 {
				logger.Debug("tick produced renders", zap.Int("count", len(renders)))
			}
		}
	}
}
