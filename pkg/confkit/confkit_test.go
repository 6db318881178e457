package confkit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"coinwatch-api/pkg/confkit"
)

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "/absolute/file.yaml", confkit.ResolvePath("/base", "/absolute/file.yaml"))
	assert.Equal(t, filepath.Join("/base", "etc/feed.yaml"), confkit.ResolvePath("/base", "etc/feed.yaml"))

	t.Setenv("CONFKIT_TEST_DIR", "expanded")
	assert.Equal(t, filepath.Join("/base", "expanded/feed.yaml"), confkit.ResolvePath("/base", "${CONFKIT_TEST_DIR}/feed.yaml"))
}

func TestBaseDir(t *testing.T) {
	assert.Equal(t, "/etc/coinwatch", confkit.BaseDir("/etc/coinwatch/coinwatch.yaml"))
	assert.Equal(t, "etc", confkit.BaseDir("etc/coinwatch.yaml"))
}

func TestSection_Hydrate(t *testing.T) {
	t.Run("empty file is a no-op", func(t *testing.T) {
		section := &confkit.Section[string]{}
		err := section.Hydrate("/base", func(path string) (*string, error) {
			t.Error("loader should not be called when no file is set")
			return nil, nil
		})
		assert.NoError(t, err)
		assert.Nil(t, section.Value)
	})

	t.Run("loads and rewrites path", func(t *testing.T) {
		section := &confkit.Section[string]{File: "feed.yaml"}
		value := "hydrated"
		err := section.Hydrate("/base", func(path string) (*string, error) {
			assert.Equal(t, "/base/feed.yaml", path)
			return &value, nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "/base/feed.yaml", section.File)
		if assert.NotNil(t, section.Value) {
			assert.Equal(t, value, *section.Value)
		}
	})
}

func TestLoadFile(t *testing.T) {
	type sample struct {
		Name string `json:"Name"`
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("Name: coinwatch\n"), 0o644))

	cfg, err := confkit.LoadFile[sample](path, false)
	assert.NoError(t, err)
	assert.Equal(t, "coinwatch", cfg.Name)
}
