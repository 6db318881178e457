package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"coinwatch-api/internal/config"
	"coinwatch-api/pkg/feed"
)

func main() {
	// Ensure default feed config (and .env) is loaded before reading env vars.
	cfg := config.MustLoadFeed()

	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("Feed endpoint: %s\n", cfg.BaseURL)
	if cfg.APIKey != "" {
		fmt.Println("API key: set")
	} else {
		fmt.Println("API key: (not set - using public rate limits)")
	}
	fmt.Printf("Tracked symbols: %v\n", cfg.Symbols)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if len(cfg.Symbols) == 0 {
		fmt.Println("no symbols configured in etc/feed.yaml")
		os.Exit(1)
	}

	client := cfg.BuildClient()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	quotes, err := client.Quotes(ctx, cfg.Symbols)
	if err != nil {
		fmt.Printf("fetch error: %v\n", err)
		os.Exit(1)
	}

	now := time.Now().UTC()
	for _, sym := range cfg.Symbols {
		q, ok := quotes[sym]
		if !ok {
			fmt.Printf("%-12s MISSING from response\n", sym)
			continue
		}
		line := fmt.Sprintf("%-12s $%.4f  mcap=%.0f  vol24h=%.0f  updated=%s",
			sym, q.USD, q.USDMarketCap, q.USDVolume24h, q.LastUpdated().Format(time.RFC3339))
		if vs := feed.Validate(q, now); len(vs) > 0 {
			line += fmt.Sprintf("  violations=%v", vs)
		}
		fmt.Println(line)
	}
}
