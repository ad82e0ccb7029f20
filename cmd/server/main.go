package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/safeplace/safeplace-server/internal/app/bootstrap"
)

func main() {
	configPath := flag.String("config", "configs/default.yaml", "path to config file")
	flag.Parse()

	ctx := context.Background()
	runtime, err := bootstrap.NewRuntime(ctx, *configPath)
	if err != nil {
		slog.Error("failed to initialize runtime", "error", err)
		os.Exit(1)
	}

	if err := runtime.Run(ctx); err != nil {
		os.Exit(1)
	}
}
