// Package registry implements an in-memory mapping from frame id to frame
// record, behind a single mutex, with "frame-N" id assignment.
package registry

import (
	"fmt"
	"sync"

	"github.com/seedcrop/seedcrop/pkg/frame"
)

// FrameRegistry assigns "frame-N" ids and stores frame records.
type FrameRegistry struct {
	mu      sync.Mutex
	counter int
	records map[string]frame.FrameRecord
}

// NewFrameRegistry returns an empty registry.
func NewFrameRegistry() *FrameRegistry {
	return &FrameRegistry{records: make(map[string]frame.FrameRecord)}
}

// Register assigns rec a fresh id and stores it, implementing
// frame.FrameStore.
func (r *FrameRegistry) Register(rec frame.FrameRecord) frame.FrameRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	rec.ID = fmt.Sprintf("frame-%d", r.counter)
	r.records[rec.ID] = rec
	return rec
}

// Get returns the record for id, or false if it does not exist.
func (r *FrameRegistry) Get(id string) (frame.FrameRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	return rec, ok
}

// Update merges patch onto the stored record for id and returns the result.
func (r *FrameRegistry) Update(id string, patch frame.FramePatch) (frame.FrameRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return frame.FrameRecord{}, false
	}
	rec = patch.Apply(rec)
	r.records[id] = rec
	return rec, true
}

// Rotate advances id's orientation by 90 degrees and returns the updated
// record.
func (r *FrameRegistry) Rotate(id string) (frame.FrameRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return frame.FrameRecord{}, false
	}
	rec = frame.RotateCycle(rec)
	r.records[id] = rec
	return rec, true
}

// Delete removes id; it is idempotent.
func (r *FrameRegistry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
}

// ClearAll removes every record and resets the id counter. The counter is
// reset only here, never by Delete.
func (r *FrameRegistry) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counter = 0
	r.records = make(map[string]frame.FrameRecord)
}
