package async

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/apex/log"
	"github.com/google/uuid"
)

// faultRecord outlives its cell so the cleanup can decide whether a
// dropped future faulted with nobody watching. It must not point back at
// the cell, or the cleanup never runs.
type faultRecord struct {
	mu       sync.Mutex
	id       uuid.UUID
	reason   any
	faulted  bool
	observed bool
}

func newFaultRecord(id uuid.UUID) *faultRecord {
	return &faultRecord{id: id}
}

func (fr *faultRecord) record(reason any) {
	fr.mu.Lock()
	fr.faulted = true
	fr.reason = reason
	fr.mu.Unlock()
}

func (fr *faultRecord) observe() {
	fr.mu.Lock()
	fr.observed = true
	fr.mu.Unlock()
}

func (fr *faultRecord) observedNow() bool {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	return fr.observed
}

// watchUnhandled arms the report for when c becomes unreachable.
func watchUnhandled[T, E any](c *cell[T, E]) {
	runtime.AddCleanup(c, reportUnhandled, c.report)
}

func reportUnhandled(fr *faultRecord) {
	fr.mu.Lock()
	faulted, observed := fr.faulted, fr.observed
	id, reason := fr.id, fr.reason
	fr.mu.Unlock()

	if !faulted || observed {
		return
	}
	currentFaultHandler()(id, reason)
}

// UnhandledFaultHandler receives faults whose future was dropped without
// any continuation, Catch, or Await observing it.
type UnhandledFaultHandler func(id uuid.UUID, reason any)

var (
	handlerMu    sync.RWMutex
	faultHandler UnhandledFaultHandler = logUnhandledFault
)

// SetUnhandledFaultHandler replaces the package hook for abandoned faults.
// A nil handler restores the default log reporter.
func SetUnhandledFaultHandler(fn UnhandledFaultHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if fn == nil {
		faultHandler = logUnhandledFault
		return
	}
	faultHandler = fn
}

func currentFaultHandler() UnhandledFaultHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return faultHandler
}

func logUnhandledFault(id uuid.UUID, reason any) {
	log.WithFields(log.Fields{
		"future": id.String(),
		"reason": fmt.Sprintf("%v", reason),
	}).Error("unhandled async fault")
}
