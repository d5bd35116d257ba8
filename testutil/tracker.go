package testutil

import (
	"errors"
	"sync"
)

// ErrInjected is returned by a Tracker hook that was told to fail.
var ErrInjected = errors.New("testutil: injected failure")

// Tracked is an element type with observable lifecycle behavior.
// Each live instance carries a unique id registered with its Tracker.
type Tracked struct {
	Value int

	id uint64
	tr *Tracker
}

// Clone copy-constructs t through its tracker.
func (t Tracked) Clone() (Tracked, error) {
	var dst Tracked
	err := t.tr.Copy(&dst, &t)
	return dst, err
}

// Destroy releases t through its tracker.
func (t *Tracked) Destroy() {
	t.tr.Destroy(t)
}

// ID returns the instance id (0 for values not created by a Tracker).
func (t Tracked) ID() uint64 { return t.id }

// Tracker records lifecycle events of Tracked values.
// It is safe for concurrent use.
type Tracker struct {
	mu             sync.Mutex
	nextID         uint64
	live           map[uint64]struct{}
	constructs     int
	copies         int
	moves          int
	destroys       int
	doubleDestroys int

	copyAttempts int
	failCopyAt   int
	moveAttempts int
	failMoveAt   int
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{live: make(map[uint64]struct{})}
}

// New constructs a live Tracked holding value.
func (tr *Tracker) New(value int) Tracked {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return tr.newLocked(value)
}

func (tr *Tracker) newLocked(value int) Tracked {
	tr.nextID++
	tr.live[tr.nextID] = struct{}{}
	tr.constructs++
	return Tracked{Value: value, id: tr.nextID, tr: tr}
}

// Copy copy-constructs *dst from *src. It matches the signature of a copy hook.
func (tr *Tracker) Copy(dst, src *Tracked) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	tr.copyAttempts++
	if tr.failCopyAt > 0 && tr.copyAttempts == tr.failCopyAt {
		tr.failCopyAt = 0
		return ErrInjected
	}
	*dst = tr.newLocked(src.Value)
	tr.copies++
	return nil
}

// Move relocates *src into *dst. The instance keeps its id: ownership moves,
// nothing is constructed.
func (tr *Tracker) Move(dst, src *Tracked) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	tr.moveAttempts++
	if tr.failMoveAt > 0 && tr.moveAttempts == tr.failMoveAt {
		tr.failMoveAt = 0
		return ErrInjected
	}
	*dst = *src
	tr.moves++
	return nil
}

// Destroy releases *v. Destroying an instance twice is recorded, not fatal.
func (tr *Tracker) Destroy(v *Tracked) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if _, ok := tr.live[v.id]; !ok {
		tr.doubleDestroys++
		return
	}
	delete(tr.live, v.id)
	tr.destroys++
}

// FailCopyAt makes the k-th copy attempt from now fail once (k >= 1).
// k <= 0 disarms the injection.
func (tr *Tracker) FailCopyAt(k int) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.copyAttempts = 0
	tr.failCopyAt = max(k, 0)
}

// FailMoveAt makes the k-th move attempt from now fail once (k >= 1).
// k <= 0 disarms the injection.
func (tr *Tracker) FailMoveAt(k int) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.moveAttempts = 0
	tr.failMoveAt = max(k, 0)
}

// Live returns the number of constructed but not yet destroyed instances.
func (tr *Tracker) Live() int {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return len(tr.live)
}

// IsLive reports whether t is a live instance.
func (tr *Tracker) IsLive(t Tracked) bool {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	_, ok := tr.live[t.id]
	return ok
}

// Stats returns a snapshot of the counters.
func (tr *Tracker) Stats() TrackerStats {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return TrackerStats{
		Constructs:     tr.constructs,
		Copies:         tr.copies,
		Moves:          tr.moves,
		Destroys:       tr.destroys,
		DoubleDestroys: tr.doubleDestroys,
		Live:           len(tr.live),
	}
}

// TrackerStats is a snapshot of Tracker counters.
type TrackerStats struct {
	Constructs     int
	Copies         int
	Moves          int
	Destroys       int
	DoubleDestroys int
	Live           int
}
