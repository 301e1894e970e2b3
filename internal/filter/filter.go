// Package filter applies the user's noise-level ceiling to decoded packets.
package filter

import "github.com/kpcyrd/sniffglue/internal/centrifuge"

// Filter holds an immutable noise-level ceiling, safe to share across every
// worker goroutine without synchronization.
type Filter struct {
	Ceiling centrifuge.NoiseLevel
}

// New builds a Filter from a verbosity count (the repeated -v flag).
func New(verbosity int) Filter {
	return Filter{Ceiling: centrifuge.Clamp(verbosity)}
}

// Matches reports whether a packet's noise level is at or below the
// ceiling, i.e. interesting enough to hand to the sink. Lowering the
// ceiling never re-admits a packet that a higher ceiling rejected
// (monotonicity).
func (f Filter) Matches(raw centrifuge.Raw) bool {
	return raw.NoiseLevel() <= f.Ceiling
}
