// Command cmd serves the trip tools to MCP clients over stdio.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/va6996/tripmate/bootstrap"
	"github.com/va6996/tripmate/config"
	"github.com/va6996/tripmate/log"
	"github.com/va6996/tripmate/mcpserver"
)

const version = "0.1.0"

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// stdout carries the protocol.
	log.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf(context.Background(), "Failed to load config: %v", err)
	}
	log.Init(cfg.Log.Level)

	ctx := context.Background()
	srv, app, err := newServer(ctx, cfg)
	if err != nil {
		log.Fatalf(ctx, "Setup failed: %v", err)
	}
	defer app.Close()

	if err := srv.ServeStdio(); err != nil {
		log.Fatalf(ctx, "MCP server failed: %v", err)
	}
}

// newServer builds the tools without a model and bridges them to MCP.
func newServer(ctx context.Context, cfg *config.Config) (*mcpserver.Server, *bootstrap.App, error) {
	app, err := bootstrap.SetupTools(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Infof(ctx, "Serving %d tools over MCP stdio", len(app.Registry.Names()))
	return mcpserver.New("tripmate", version, app.Registry), app, nil
}
