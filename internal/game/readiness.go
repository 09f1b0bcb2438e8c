package game

import "strings"

// Readiness records which startup steps have completed. Per-frame logic
// checks it instead of probing for nil dependencies.
type Readiness uint8

const (
	ReadyPhysics Readiness = 1 << iota
	ReadyPlayer
	ReadyVillage // set even when the village failed to load

	ReadyAll = ReadyPhysics | ReadyPlayer | ReadyVillage
)

// Has reports whether every step in steps has completed.
func (r Readiness) Has(steps Readiness) bool {
	return r&steps == steps
}

func (r Readiness) String() string {
	if r == 0 {
		return "none"
	}
	var parts []string
	for _, s := range []struct {
		step Readiness
		name string
	}{
		{ReadyPhysics, "physics"},
		{ReadyPlayer, "player"},
		{ReadyVillage, "village"},
	} {
		if r.Has(s.step) {
			parts = append(parts, s.name)
		}
	}
	return strings.Join(parts, "+")
}
