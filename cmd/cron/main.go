package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coinwatch-api/internal/cli"
	"coinwatch-api/internal/config"
	"coinwatch-api/internal/svc"
)

const (
	defaultInterval = 2 * time.Minute  // ingestion cycle interval
	cycleTimeout    = 30 * time.Second // timeout for one full cycle
	shutdownTimeout = 10 * time.Second // grace period for shutdown
)

var (
	configFile = flag.String("f", "etc/coinwatch.yaml", "the config file")
	interval   = flag.Duration("interval", defaultInterval, "time between ingestion cycles")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Println("[main] Starting ingestion cron...")

	appCfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("[main] Failed to load app config: %v", err)
	}

	log.Printf("[main] Configuration loaded:")
	for _, line := range cli.ConfigSummaryLines(appCfg) {
		log.Printf("  - %s", line)
	}
	log.Printf("  - Cycle interval: %s", *interval)

	serviceCtx := svc.NewServiceContext(*appCfg)
	if serviceCtx.Ingest == nil {
		log.Fatalf("[main] Ingestion requires both feed and postgres configuration")
	}
	log.Printf("  - Symbols: %v", serviceCtx.FeedConfig.Symbols)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		runIngestLoop(ctx, serviceCtx, *interval)
	}()

	log.Println("[main] Ingestion cron started. Press Ctrl+C to stop.")

	<-ctx.Done()
	log.Println("[main] Shutdown signal received, stopping...")

	select {
	case <-done:
		log.Println("[main] Ingestion loop stopped cleanly")
	case <-time.After(shutdownTimeout):
		log.Println("[main] Shutdown timeout exceeded, forcing exit")
	}

	log.Println("[main] Ingestion cron stopped")
}

// runIngestLoop executes one cycle immediately, then on every tick.
func runIngestLoop(ctx context.Context, serviceCtx *svc.ServiceContext, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	runCycle(ctx, serviceCtx)

	for {
		select {
		case <-ctx.Done():
			log.Println("[ingest] Stopping ingestion loop")
			return
		case <-ticker.C:
			runCycle(ctx, serviceCtx)
		}
	}
}

func runCycle(parentCtx context.Context, serviceCtx *svc.ServiceContext) {
	if parentCtx.Err() != nil {
		return
	}

	ctx, cancel := context.WithTimeout(parentCtx, cycleTimeout)
	defer cancel()

	start := time.Now()
	result, err := serviceCtx.Ingest.RunCycle(ctx)
	elapsed := time.Since(start)

	if err != nil {
		log.Printf("[ingest] [ERROR] %v, took %dms", err, elapsed.Milliseconds())
		return
	}

	log.Printf("[ingest] [OK] persisted=%d skipped=%d missing=%d, took %dms",
		len(result.Persisted), len(result.Skipped), len(result.Missing), elapsed.Milliseconds())
}
