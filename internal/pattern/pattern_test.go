package pattern

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"termlife/internal/core"
	"termlife/internal/life"
)

func TestReadMarksStars(t *testing.T) {
	g := core.NewGrid(6, 4)
	src := "*.....\n..*\n\n.....*\n"
	if err := Read(strings.NewReader(src), g); err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := [][2]int{{0, 0}, {2, 1}, {5, 3}}
	for _, p := range want {
		if !g.Alive(p[0], p[1]) {
			t.Fatalf("expected (%d,%d) alive", p[0], p[1])
		}
	}
	if g.Population() != len(want) {
		t.Fatalf("population %d, want %d", g.Population(), len(want))
	}
}

func TestReadShortFileLeavesRestDead(t *testing.T) {
	g := core.NewGrid(5, 5)
	if err := Read(strings.NewReader("**"), g); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if g.Population() != 2 || !g.Alive(0, 0) || !g.Alive(1, 0) {
		t.Fatalf("unexpected grid after short read, population=%d", g.Population())
	}
}

func TestReadIgnoresOverflow(t *testing.T) {
	g := core.NewGrid(3, 2)
	src := "*****\n.*.**\n***\n"
	if err := Read(strings.NewReader(src), g); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if g.Population() != 4 {
		t.Fatalf("columns and rows past the grid must be ignored, population=%d", g.Population())
	}
	if g.Alive(0, 1) || !g.Alive(1, 1) || g.Alive(2, 1) {
		t.Fatal("second row should only have (1,1) alive")
	}
}

func TestReadAcceptsCRLF(t *testing.T) {
	g := core.NewGrid(3, 2)
	if err := Read(strings.NewReader("..*\r\n*\r\n"), g); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !g.Alive(2, 0) || !g.Alive(0, 1) || g.Population() != 2 {
		t.Fatal("CRLF line endings should parse like LF")
	}
}

func TestReadReplacesPreviousContents(t *testing.T) {
	g := core.NewGrid(3, 3)
	g.Set(2, 2, true)
	if err := Read(strings.NewReader("*"), g); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if g.Alive(2, 2) {
		t.Fatal("loading a pattern overwrites the whole grid")
	}
}

type failingReader struct{ sent bool }

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.sent {
		r.sent = true
		return copy(p, "***\n"), nil
	}
	return 0, io.ErrUnexpectedEOF
}

func TestReadFailureLeavesGridUntouched(t *testing.T) {
	g := core.NewGrid(3, 3)
	err := Read(&failingReader{}, g)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if g.Population() != 0 {
		t.Fatal("a failed read must not partially fill the grid")
	}
}

func TestLoadFileMissing(t *testing.T) {
	g := core.NewGrid(4, 4)
	err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"), g)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
	if g.Population() != 0 {
		t.Fatal("grid must stay cleared after a failed load")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glider.txt")
	if err := os.WriteFile(path, []byte(".*\n..*\n***\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g := core.NewGrid(5, 5)
	if err := LoadFile(path, g); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if g.Population() != 5 {
		t.Fatalf("glider population %d, want 5", g.Population())
	}
}

func TestCatalogChoices(t *testing.T) {
	c := NewCatalog("")
	if c.Dir != DefaultDir {
		t.Fatalf("empty dir should default to %q, got %q", DefaultDir, c.Dir)
	}
	for _, bad := range []int{0, 6, -1, 9} {
		if _, err := c.Path(bad); !errors.Is(err, ErrInvalidChoice) {
			t.Fatalf("choice %d: expected ErrInvalidChoice, got %v", bad, err)
		}
	}
	path, err := c.Path(3)
	if err != nil {
		t.Fatalf("Path(3): %v", err)
	}
	if path != filepath.Join(DefaultDir, "turtle.txt") {
		t.Fatalf("unexpected path %q", path)
	}
}

func TestCatalogInvalidChoiceLeavesGrid(t *testing.T) {
	g := core.NewGrid(3, 3)
	g.Set(1, 1, true)
	if err := NewCatalog("").Load(7, g); !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("expected ErrInvalidChoice, got %v", err)
	}
	if !g.Alive(1, 1) {
		t.Fatal("invalid choice must not touch the grid")
	}
}

func TestChoiceFromKey(t *testing.T) {
	cases := map[core.Key]int{'1': 1, '5': 5, '0': 0, '9': 9, 'x': 0, ' ': 0, core.KeyOther: 0}
	for k, want := range cases {
		if got := ChoiceFromKey(k); got != want {
			t.Fatalf("ChoiceFromKey(%q) = %d, want %d", rune(k), got, want)
		}
	}
}

func TestBundledSeedsLoad(t *testing.T) {
	c := NewCatalog(filepath.Join("..", "..", DefaultDir))
	for _, s := range Seeds {
		g := core.NewGrid(life.Width, life.Height)
		if err := c.Load(s.Choice, g); err != nil {
			t.Fatalf("seed %d (%s): %v", s.Choice, s.Name, err)
		}
		if g.Population() == 0 {
			t.Fatalf("seed %d (%s) has no live cells", s.Choice, s.Name)
		}
	}
}
