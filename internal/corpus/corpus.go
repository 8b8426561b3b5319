package corpus

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"

	"numscore/internal/heuristic"
	"numscore/pkg/options"
)

// Corpus is a read-only, memory-mapped file of candidate inputs, one per line.
type Corpus struct {
	file  *os.File
	data  mmap.MMap
	lines []span
	conf  options.CorpusOptions
}

type span struct{ start, end int }

// Open maps path into memory and indexes its lines.
func Open(path string, opts ...options.Options) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat corpus: %w", err)
	}
	c := &Corpus{file: f, conf: options.Resolve(opts...)}
	// пустой файл отобразить нельзя, он просто не содержит строк
	if st.Size() > 0 {
		m, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("mmap corpus: %w", err)
		}
		c.data = m
	}
	c.index()
	return c, nil
}

func (c *Corpus) index() {
	data := []byte(c.data)
	start := 0
	for start < len(data) {
		end := len(data)
		next := len(data)
		if i := bytes.IndexByte(data[start:], '\n'); i >= 0 {
			end = start + i
			next = end + 1
		}
		lineEnd := end
		if lineEnd > start && data[lineEnd-1] == '\r' {
			lineEnd--
		}
		if !(c.conf.SkipEmpty && c.isEmpty(data[start:lineEnd])) {
			c.lines = append(c.lines, span{start, lineEnd})
		}
		start = next
	}
}

func (c *Corpus) isEmpty(line []byte) bool {
	if c.conf.TrimSpace {
		line = bytes.TrimSpace(line)
	}
	return len(line) == 0
}

// Len returns the number of entries.
func (c *Corpus) Len() int { return len(c.lines) }

// Input returns entry i, mapping the null marker to an absent input.
func (c *Corpus) Input(i int) heuristic.Input {
	s := c.lines[i]
	line := string(c.data[s.start:s.end])
	if c.conf.TrimSpace {
		line = strings.TrimSpace(line)
	}
	if c.conf.NullMarker != "" && line == c.conf.NullMarker {
		return heuristic.None()
	}
	return heuristic.Some(line)
}

// Each calls fn for every entry in file order.
func (c *Corpus) Each(fn func(i int, in heuristic.Input)) {
	for i := range c.lines {
		fn(i, c.Input(i))
	}
}

// Close unmaps the file. It is safe to call more than once.
func (c *Corpus) Close() error {
	var err error
	if c.data != nil {
		err = c.data.Unmap()
		c.data = nil
	}
	if c.file != nil {
		if cerr := c.file.Close(); err == nil {
			err = cerr
		}
		c.file = nil
	}
	c.lines = nil
	return err
}
