package main

import (
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWritesEveryScreenshot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(dir))

	for _, s := range buildScreenshots() {
		f, err := os.Open(filepath.Join(dir, s.name+".jpg"))
		require.NoError(t, err, s.name)

		cfg, err := jpeg.DecodeConfig(f)
		f.Close()
		require.NoError(t, err, s.name)
		assert.Equal(t, s.width, cfg.Width, s.name)
		assert.Equal(t, s.height, cfg.Height, s.name)
	}
}
