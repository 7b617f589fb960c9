package app

import "termlife/internal/core"

// Action is what a key press asks the loop to do.
type Action int

const (
	ActionNone Action = iota
	ActionSlower
	ActionFaster
	ActionQuit
)

// Keymap binds keys to actions. Unbound keys are ignored.
type Keymap map[core.Key]Action

// DefaultKeymap maps A/a to a shorter delay, Z/z to a longer one and space
// to quit. Ctrl-C also quits since raw mode keeps it from raising SIGINT.
func DefaultKeymap() Keymap {
	return Keymap{
		'a':               ActionFaster,
		'A':               ActionFaster,
		'z':               ActionSlower,
		'Z':               ActionSlower,
		' ':               ActionQuit,
		core.KeyInterrupt: ActionQuit,
	}
}

// Lookup returns the action bound to k.
func (m Keymap) Lookup(k core.Key) Action {
	return m[k]
}
