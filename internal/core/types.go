package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Key is a single key code delivered by an Input. Printable keys carry their
// rune value.
type Key rune

const (
	// KeyOther stands in for non-printable keys with no binding.
	KeyOther Key = -1
	// KeyInterrupt is delivered for Ctrl-C while the terminal is in raw mode.
	KeyInterrupt Key = 3
	// KeyEscape is the escape key.
	KeyEscape Key = 27
)

// Display draws the current generation. Implementations must not mutate the
// grid; speed is the tick interval in milliseconds and is informational.
type Display interface {
	Render(g *Grid, speed int)
}

// Input yields at most one pending key per call without blocking.
type Input interface {
	PollKey() (Key, bool)
}
