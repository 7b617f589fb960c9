package pattern

import (
	"fmt"
	"path/filepath"

	"termlife/internal/core"
)

// Seed names one selectable starting pattern.
type Seed struct {
	Choice int
	Name   string
	File   string
}

// Seeds lists the selectable patterns in menu order.
var Seeds = []Seed{
	{Choice: 1, Name: "pond", File: "pond.txt"},
	{Choice: 2, Name: "achim", File: "achim.txt"},
	{Choice: 3, Name: "turtle", File: "turtle.txt"},
	{Choice: 4, Name: "random", File: "random.txt"},
	{Choice: 5, Name: "orion", File: "orion.txt"},
}

// DefaultDir is where pattern files are looked up unless overridden.
const DefaultDir = "patterns"

// Catalog resolves seed choices to files in Dir.
type Catalog struct {
	Dir string
}

// NewCatalog returns a catalog rooted at dir, or DefaultDir when dir is empty.
func NewCatalog(dir string) Catalog {
	if dir == "" {
		dir = DefaultDir
	}
	return Catalog{Dir: dir}
}

// Lookup returns the seed registered under choice.
func (c Catalog) Lookup(choice int) (Seed, error) {
	for _, s := range Seeds {
		if s.Choice == choice {
			return s, nil
		}
	}
	return Seed{}, fmt.Errorf("%w: %d (want 1-%d)", ErrInvalidChoice, choice, len(Seeds))
}

// Path returns the file path for choice.
func (c Catalog) Path(choice int) (string, error) {
	s, err := c.Lookup(choice)
	if err != nil {
		return "", err
	}
	return filepath.Join(c.Dir, s.File), nil
}

// Load reads the pattern for choice into g.
func (c Catalog) Load(choice int, g *core.Grid) error {
	path, err := c.Path(choice)
	if err != nil {
		return err
	}
	return LoadFile(path, g)
}

// ChoiceFromKey converts a typed digit into a seed choice. Non-digits map to
// 0, which no seed uses.
func ChoiceFromKey(k core.Key) int {
	if k < '0' || k > '9' {
		return 0
	}
	return int(k - '0')
}
