package wordsource

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// FileSource reads a UTF-8 word list, one word per line. The file is
// memory-mapped read-only while the records are split out; on filesystems
// where mapping fails it falls back to a buffered read.
type FileSource struct {
	path string
}

func NewFile(path string) FileSource {
	return FileSource{path: path}
}

func (s FileSource) Records() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("wordsource: open %s: %w", s.path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("wordsource: stat %s: %w", s.path, err)
	}
	if fi.Size() == 0 {
		return nil, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		if _, serr := f.Seek(0, io.SeekStart); serr != nil {
			return nil, fmt.Errorf("wordsource: seek %s: %w", s.path, serr)
		}
		return scanRecords(f)
	}
	defer m.Unmap()

	lines := bytes.Split(m, []byte("\n"))
	records := make([]string, 0, len(lines))
	for _, line := range lines {
		// Copy out of the mapping: the strings must outlive Unmap.
		records = append(records, string(line))
	}
	return records, nil
}

func scanRecords(r io.Reader) ([]string, error) {
	var records []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		records = append(records, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordsource: scan: %w", err)
	}
	return records, nil
}
