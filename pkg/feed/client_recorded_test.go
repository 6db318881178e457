package feed

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/dnaeon/go-vcr/recorder"
	"github.com/stretchr/testify/assert"
)

// This test uses go-vcr to record/replay a real simple-price call.
// It skips by default if the cassette is absent and RECORD_CASSETTES != 1.
func TestClient_Quotes_Recorded(t *testing.T) {
	cassette := filepath.Join("testdata", "cassettes", "simple_price.yaml")
	if _, err := os.Stat(cassette); os.IsNotExist(err) {
		if os.Getenv("RECORD_CASSETTES") != "1" {
			t.Skipf("cassette missing; set RECORD_CASSETTES=1 to record: %s", cassette)
		}
		err := os.MkdirAll(filepath.Dir(cassette), 0o755)
		assert.NoError(t, err, "mkdir cassettes dir should succeed")
	}

	r, err := recorder.New(cassette)
	assert.NoError(t, err, "recorder.New should not error")
	assert.NotNil(t, r, "recorder should not be nil")
	defer func() { _ = r.Stop() }()

	httpClient := &http.Client{Transport: r}
	client := NewClient(WithHTTPClient(httpClient), WithAPIKey(os.Getenv("COINGECKO_API_KEY")))

	quotes, err := client.Quotes(context.Background(), []string{"bitcoin", "ethereum"})
	assert.NoError(t, err, "Quotes should not error")
	assert.Contains(t, quotes, "bitcoin")
	assert.Greater(t, quotes["bitcoin"].USD, 0.0, "recorded bitcoin price should be positive")
	assert.Greater(t, quotes["bitcoin"].LastUpdatedAt, int64(0))
}
