package store

import (
	"sync"
	"time"

	"github.com/RichNSD/Payroll-Calculator/internal/domain"
)

// DefaultSaveDelay is the idle gap after the last change before a save
// fires.
const DefaultSaveDelay = 250 * time.Millisecond

// DebouncedSaver coalesces rapid snapshot changes into a single write. At
// most one timer is pending at a time; each Trigger cancels and
// reschedules it, so the value persisted is always the snapshot from the
// last trigger (last-write-wins, intermediate states are dropped).
type DebouncedSaver struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending *domain.PersistedState
	delay   time.Duration
	save    func(*domain.PersistedState)
}

// NewDebouncedSaver creates a saver that calls save once per idle gap.
func NewDebouncedSaver(delay time.Duration, save func(*domain.PersistedState)) *DebouncedSaver {
	if delay <= 0 {
		delay = DefaultSaveDelay
	}
	return &DebouncedSaver{delay: delay, save: save}
}

// Trigger records the latest snapshot and (re)starts the idle timer.
func (d *DebouncedSaver) Trigger(state *domain.PersistedState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = state
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// Flush writes any pending snapshot immediately and cancels the timer.
func (d *DebouncedSaver) Flush() {
	d.fire()
}

// Stop cancels any pending save without writing it.
func (d *DebouncedSaver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}

func (d *DebouncedSaver) fire() {
	d.mu.Lock()
	state := d.pending
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	if state != nil {
		d.save(state)
	}
}
