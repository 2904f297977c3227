package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/hdrchain/internal/config"
	"github.com/yourusername/hdrchain/internal/grpc"
	"github.com/yourusername/hdrchain/internal/headerchain"
	"github.com/yourusername/hdrchain/internal/log"
	"github.com/yourusername/hdrchain/internal/netutil"
	"github.com/yourusername/hdrchain/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "Path to TOML config file")
	fresh := flag.Bool("fresh", false, "Start with an empty header chain")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Logger is not up yet.
		panic(err)
	}

	logger := log.Init(&cfg.Log)
	defer logger.Sync()

	store, err := storage.NewStorage(cfg.Node.DBPath)
	if err != nil {
		zap.S().Fatalw("Failed to open storage", "path", cfg.Node.DBPath, "error", err)
	}
	defer store.Close()

	if *fresh {
		zap.S().Infow("Clearing existing header database", "path", cfg.Node.DBPath)
		if err := store.Clear(); err != nil {
			zap.S().Fatalw("Failed to clear database", "error", err)
		}
	}

	hc, err := headerchain.New(store, cfg.Node.DifficultyBits)
	if err != nil {
		zap.S().Fatalw("Failed to load header chain", "error", err)
	}
	if err := hc.ValidateChain(); err != nil {
		zap.S().Fatalw("Stored header chain is invalid, restart with -fresh to discard it", "error", err)
	}
	zap.S().Infow("Header chain loaded", "height", hc.Height(), "difficulty_bits", hc.DifficultyBits())

	server := grpc.NewServer(hc)

	if cfg.Node.LookupExternalIP {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		ip, err := netutil.NewIPLookup(cfg.Node.IPLookupHost).ExternalIP(ctx)
		cancel()
		if err != nil {
			zap.S().Warnw("External IP lookup failed", "host", cfg.Node.IPLookupHost, "error", err)
		} else {
			zap.S().Infow("External IP", "address", ip)
			server.SetExternalIP(ip)
		}
	}

	go func() {
		if err := server.Start(cfg.Node.GRPCAddr); err != nil {
			zap.S().Fatalw("gRPC server stopped", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	zap.S().Info("Shutting down gracefully...")
	server.Stop()
	zap.S().Info("Node stopped")
}
