package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/va6996/tripmate/bootstrap"
	"github.com/va6996/tripmate/config"
	"github.com/va6996/tripmate/log"
	"github.com/va6996/tripmate/server"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// 0. Load Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf(context.Background(), "Failed to load config: %v", err)
	}
	log.Init(cfg.Log.Level)

	// Graceful shutdown on Ctrl+C or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1-4. Init App Components using Bootstrap
	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf(context.Background(), "Setup failed: %v", err)
	}
	defer app.Close()

	// 5. Start API Server
	srv := server.NewHTTPServer(":"+cfg.Server.Port, server.FromApp(app).Routes())
	if err := server.Run(ctx, srv); err != nil {
		log.Fatalf(context.Background(), "Server failed: %v", err)
	}
	log.Info(context.Background(), "Server stopped")
}
