package wordsource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSourceRecords(t *testing.T) {
	path := writeWordList(t, "كتاب\nقلم\n\n  مدرسة  \nقلم\n")
	records, err := NewFile(path).Records()
	require.NoError(t, err)

	// Raw records come back as-is; trimming and dedup are the
	// dictionary's job.
	var nonEmpty []string
	for _, r := range records {
		if strings.TrimSpace(r) != "" {
			nonEmpty = append(nonEmpty, strings.TrimSpace(r))
		}
	}
	assert.Equal(t, []string{"كتاب", "قلم", "مدرسة", "قلم"}, nonEmpty)
}

func TestFileSourceEmptyFile(t *testing.T) {
	path := writeWordList(t, "")
	records, err := NewFile(path).Records()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "nope.txt")).Records()
	assert.Error(t, err)
}

func TestFileSourceNoTrailingNewline(t *testing.T) {
	path := writeWordList(t, "كتاب\nقلم")
	records, err := NewFile(path).Records()
	require.NoError(t, err)
	assert.Contains(t, records, "قلم")
}

func TestScanRecords(t *testing.T) {
	records, err := scanRecords(strings.NewReader("كتاب\nقلم\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"كتاب", "قلم"}, records)
}
