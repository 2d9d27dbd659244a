package engine

import (
	"sync"
	"time"

	"github.com/disa12311/cache-manager/internal/clean"
	"github.com/disa12311/cache-manager/internal/scan"
	"github.com/disa12311/cache-manager/internal/whitelist"
)

// gib is one binary gigabyte.
const gib = 1 << 30

// SizeReport is the aggregate size of all cache roots at one point in
// time. Recomputed on every Measure call, never cached.
type SizeReport struct {
	Bytes int64
}

// GB returns the report in binary gigabytes.
func (r SizeReport) GB() float64 {
	return float64(r.Bytes) / gib
}

// Engine orchestrates measurement and cleaning across a fixed, ordered
// list of cache roots and remembers when the last pass finished.
//
// The last-clean timestamp is the only state shared outside the
// synchronous measure/clean flow: a status view may read it from another
// goroutine while a clean is stamping it, hence the mutex.
type Engine struct {
	roots []string
	wl    *whitelist.Whitelist

	mu        sync.Mutex
	lastClean time.Time // zero until the first completed pass
}

// New creates an Engine over the given roots. The list is fixed for the
// engine's lifetime; order affects iteration and display only.
func New(roots []string, wl *whitelist.Whitelist) *Engine {
	return &Engine{roots: roots, wl: wl}
}

// Roots returns the cache roots in their configured order.
func (e *Engine) Roots() []string {
	return e.roots
}

// Measure sums the current size of every root. Missing or unreadable
// roots count as empty; the result is always non-negative.
func (e *Engine) Measure() SizeReport {
	return SizeReport{Bytes: scan.TotalSize(e.roots)}
}

// MeasureRoots returns the per-root byte counts in root order.
func (e *Engine) MeasureRoots() []int64 {
	return scan.RootSizes(e.roots)
}

// Clean runs one cleaning pass over every root in sequence, stamps the
// last-clean time, then re-measures. A pass that reclaims nothing still
// stamps — retrying locked files in a tight loop helps nobody.
func (e *Engine) Clean() (clean.Outcome, SizeReport) {
	out := clean.CleanAll(e.roots, e.wl)

	e.mu.Lock()
	e.lastClean = time.Now()
	e.mu.Unlock()

	return out, e.Measure()
}

// LastCleanAge returns the time since the last completed pass. ok is
// false if no pass has run in this process lifetime.
func (e *Engine) LastCleanAge() (age time.Duration, ok bool) {
	e.mu.Lock()
	last := e.lastClean
	e.mu.Unlock()

	if last.IsZero() {
		return 0, false
	}
	return time.Since(last), true
}
