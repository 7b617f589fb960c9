// Package term draws the board in a terminal and reads keys from it using
// tcell.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"termlife/internal/core"
	"termlife/internal/ui"
)

const (
	liveRune   = 'o'
	deadRune   = ' '
	borderTop  = '~'
	borderSide = '|'
)

// Screen renders grids into a tcell screen and polls it for keys. It
// satisfies core.Display and core.Input.
type Screen struct {
	s     tcell.Screen
	live  tcell.Style
	plain tcell.Style
}

// New opens the controlling terminal.
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen initializes s and wraps it.
func NewWithScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	s.HideCursor()
	s.Clear()
	return &Screen{
		s:     s,
		live:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
		plain: tcell.StyleDefault,
	}, nil
}

// Close restores the terminal.
func (sc *Screen) Close() {
	sc.s.Fini()
}

// Render draws g inside a border with the status line beneath it.
func (sc *Screen) Render(g *core.Grid, speed int) {
	for x := 0; x < g.W; x++ {
		sc.s.SetContent(1+x, 0, borderTop, nil, sc.plain)
		sc.s.SetContent(1+x, g.H+1, borderTop, nil, sc.plain)
	}
	for y := 0; y < g.H; y++ {
		sc.s.SetContent(0, 1+y, borderSide, nil, sc.plain)
		for x := 0; x < g.W; x++ {
			if g.Alive(x, y) {
				sc.s.SetContent(1+x, 1+y, liveRune, nil, sc.live)
				continue
			}
			sc.s.SetContent(1+x, 1+y, deadRune, nil, sc.plain)
		}
		sc.s.SetContent(1+g.W, 1+y, borderSide, nil, sc.plain)
	}
	sc.clearLine(g.H + 2)
	sc.drawText(0, g.H+2, ui.StatusLine(speed))
	sc.s.Show()
}

// PollKey returns the next pending key without blocking. Resize and other
// non-key events ahead of it are consumed.
func (sc *Screen) PollKey() (core.Key, bool) {
	for sc.s.HasPendingEvent() {
		switch ev := sc.s.PollEvent().(type) {
		case *tcell.EventKey:
			return translate(ev), true
		case *tcell.EventResize:
			sc.s.Sync()
		case nil:
			return 0, false
		}
	}
	return 0, false
}

// PromptSeed shows prompt and blocks until a key is pressed, echoing it. It
// reports false when the screen is closed while waiting.
func (sc *Screen) PromptSeed(prompt string) (core.Key, bool) {
	sc.s.Clear()
	sc.drawText(0, 0, prompt)
	sc.s.Show()
	for {
		switch ev := sc.s.PollEvent().(type) {
		case nil:
			return 0, false
		case *tcell.EventKey:
			k := translate(ev)
			if k > ' ' {
				sc.s.SetContent(len(prompt), 0, rune(k), nil, sc.plain)
				sc.s.Show()
			}
			sc.s.Clear()
			return k, true
		case *tcell.EventResize:
			sc.s.Sync()
		}
	}
}

func translate(ev *tcell.EventKey) core.Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return core.Key(ev.Rune())
	case tcell.KeyCtrlC:
		return core.KeyInterrupt
	case tcell.KeyEscape:
		return core.KeyEscape
	default:
		return core.KeyOther
	}
}

func (sc *Screen) drawText(x, y int, s string) {
	for i, r := range []rune(s) {
		sc.s.SetContent(x+i, y, r, nil, sc.plain)
	}
}

func (sc *Screen) clearLine(y int) {
	w, _ := sc.s.Size()
	for x := 0; x < w; x++ {
		sc.s.SetContent(x, y, ' ', nil, sc.plain)
	}
}
