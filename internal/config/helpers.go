package config

import (
	"coinwatch-api/pkg/feed"
	"coinwatch-api/pkg/llm"
)

// MustLoadFeed loads etc/feed.yaml from the project root and panics on error.
// It isolates the feed section so ingestion tools don't need the full main
// config (Redis, LLM, rest server) to run.
func MustLoadFeed() *feed.Config {
	return feed.MustLoad()
}

// MustLoadLLM loads etc/llm.yaml from the project root and panics on error.
func MustLoadLLM() *llm.Config {
	return llm.MustLoad()
}
