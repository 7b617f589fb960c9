// Package pattern reads plain-text seed patterns into a grid.
//
// A pattern is up to H lines of up to W characters. '*' marks a live cell and
// every other character, as well as positions past the end of a short line or
// missing trailing lines, is dead. Extra lines and columns are ignored.
package pattern

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"termlife/internal/core"
)

// LiveCell is the character that marks a live cell.
const LiveCell = '*'

var (
	// ErrInvalidChoice reports a seed choice outside the catalog.
	ErrInvalidChoice = errors.New("invalid seed choice")
	// ErrUnavailable reports a pattern resource that cannot be opened or read.
	ErrUnavailable = errors.New("pattern unavailable")
)

// Read parses a pattern from r into g. The grid is only modified when the
// whole pattern has been read successfully.
func Read(r io.Reader, g *core.Grid) error {
	scratch := core.NewGrid(g.W, g.H)
	br := bufio.NewReader(r)
	for y := 0; y < g.H; y++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: line %d: %w", ErrUnavailable, y+1, err)
		}
		line = strings.TrimRight(line, "\r\n")
		for x := 0; x < g.W && x < len(line); x++ {
			if line[x] == LiveCell {
				scratch.Set(x, y, true)
			}
		}
		if err != nil {
			break
		}
	}
	g.CopyFrom(scratch)
	return nil
}

// LoadFile reads the pattern stored at path into g.
func LoadFile(path string, g *core.Grid) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer f.Close()
	if err := Read(f, g); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
