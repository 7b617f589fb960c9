package ui

import "fmt"

// SeedPrompt asks for a seed digit before the simulation starts.
const SeedPrompt = "Choose seed for generation (1-5): "

// StatusLine describes the controls and the current tick interval.
func StatusLine(speed int) string {
	return fmt.Sprintf("Controls: SPACE - exit, A/Z - increase/decrease speed | Speed of cell colony development: %dms", speed)
}
