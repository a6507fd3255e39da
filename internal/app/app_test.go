package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arspell/internal/config"
)

func testConfig(path string) *config.Config {
	return &config.Config{
		Dictionary: config.DictionaryConfig{Source: config.SourceFile, Path: path},
		Suggest:    config.SuggestConfig{Limit: 5},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestBuildChecker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("كتاب\nقلم\n"), 0o644))

	checker := BuildChecker(testConfig(path), quietLogger())

	assert.Equal(t, 2, checker.Dictionary().Len())
	assert.True(t, checker.Check("كتاب قلم").Clean())
}

func TestBuildCheckerMissingWordList(t *testing.T) {
	// Degraded, not fatal: empty dictionary, everything flagged,
	// no suggestions.
	cfg := testConfig(filepath.Join(t.TempDir(), "nope.txt"))
	checker := BuildChecker(cfg, quietLogger())

	assert.Zero(t, checker.Dictionary().Len())
	res := checker.Check("كتاب")
	require.Len(t, res.Misspellings, 1)
	assert.Empty(t, res.Misspellings[0].Suggestions)
}

func TestNewLoggerLevels(t *testing.T) {
	log := NewLogger(config.LogConfig{Level: "debug", Format: "json"})
	assert.True(t, log.Enabled(t.Context(), slog.LevelDebug))

	log = NewLogger(config.LogConfig{Level: "warn", Format: "text"})
	assert.False(t, log.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, log.Enabled(t.Context(), slog.LevelWarn))
}
