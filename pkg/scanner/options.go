// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"math/rand"
	"time"
)

// defaults chosen to animate a scan of a few seconds total
const (
	defaultTickDelay     = time.Millisecond * 40
	defaultTicksPerPhase = 25
)

// Option mutates a Scanner during construction
type Option = func(s Scanner)

// WithTickDelay sets the delay between progress increments
func WithTickDelay(d time.Duration) Option {
	return func(s Scanner) {
		s.SetTickDelay(d)
	}
}

// WithTicksPerPhase sets how many increments each phase emits
func WithTicksPerPhase(n int) Option {
	return func(s Scanner) {
		s.SetTicksPerPhase(n)
	}
}

// WithFabricator overrides the device fabricator
func WithFabricator(f Fabricator) Option {
	return func(s Scanner) {
		s.SetFabricator(f)
	}
}

// WithRandSource reseeds the fabricator for reproducible devices
func WithRandSource(src rand.Source) Option {
	return func(s Scanner) {
		s.SetRandSource(src)
	}
}
