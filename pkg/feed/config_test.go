package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromReader_Valid(t *testing.T) {
	yaml := `
base_url: https://example.test/simple/price
api_key: demo-key
timeout: 8s
symbols:
  - bitcoin
  - Ethereum
  - bitcoin
  - ""
`
	cfg, err := LoadConfigFromReader(strings.NewReader(yaml))
	assert.NoError(t, err)
	assert.Equal(t, "https://example.test/simple/price", cfg.BaseURL)
	assert.Equal(t, "demo-key", cfg.APIKey)
	assert.Equal(t, 8*time.Second, cfg.Timeout)
	// Symbols are lower-cased and blanks dropped; the client dedupes later.
	assert.Equal(t, []string{"bitcoin", "ethereum", "bitcoin"}, cfg.Symbols)
}

func TestLoadConfigFromReader_EnvExpansion(t *testing.T) {
	t.Setenv("FEED_TEST_KEY", "secret-from-env")
	yaml := `
api_key: ${FEED_TEST_KEY}
symbols: [bitcoin]
`
	cfg, err := LoadConfigFromReader(strings.NewReader(yaml))
	assert.NoError(t, err)
	assert.Equal(t, "secret-from-env", cfg.APIKey)
}

func TestLoadConfigFromReader_RequiresSymbols(t *testing.T) {
	_, err := LoadConfigFromReader(strings.NewReader(`api_key: k`))
	assert.Error(t, err, "empty symbol set should be rejected")
}

func TestLoadConfigFromReader_RejectsBadTimeout(t *testing.T) {
	_, err := LoadConfigFromReader(strings.NewReader("timeout: nonsense\nsymbols: [bitcoin]\n"))
	assert.Error(t, err)

	_, err = LoadConfigFromReader(strings.NewReader("timeout: -2s\nsymbols: [bitcoin]\n"))
	assert.Error(t, err)
}

func TestConfig_BuildClient(t *testing.T) {
	cfg := &Config{BaseURL: "https://example.test", APIKey: "k", Timeout: 3 * time.Second, Symbols: []string{"bitcoin"}}
	client := cfg.BuildClient()
	assert.NotNil(t, client)
	assert.Equal(t, "https://example.test", client.baseURL)
	assert.Equal(t, "k", client.apiKey)
	assert.Equal(t, 3*time.Second, client.httpClient.Timeout)
}
