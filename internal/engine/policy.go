package engine

import "time"

// Cooldown is the minimum gap between automatic cleaning passes. It
// stops the trigger from thrashing when the measured size hovers at the
// threshold, or when locked files keep a pass from shrinking anything.
const Cooldown = 30 * time.Second

// ShouldAutoClean decides whether an automatic pass should fire now.
//
// Pure function of its inputs: disabled wins, then the cooldown (only
// when a previous pass exists — hasAge), then the inclusive threshold
// comparison. The caller evaluates it once per measurement cycle.
func ShouldAutoClean(sizeGB, thresholdGB float64, enabled bool, age time.Duration, hasAge bool) bool {
	if !enabled {
		return false
	}
	if hasAge && age < Cooldown {
		return false
	}
	return sizeGB >= thresholdGB
}
