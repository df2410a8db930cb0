package async

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// The report decision is tested directly; GC timing is not something a
// test should wait on.

func TestReportUnhandled_FaultedUnobserved(t *testing.T) {
	var gotID uuid.UUID
	var gotReason any
	SetUnhandledFaultHandler(func(id uuid.UUID, reason any) {
		gotID = id
		gotReason = reason
	})
	defer SetUnhandledFaultHandler(nil)

	id := uuid.New()
	fr := newFaultRecord(id)
	fr.record("abandoned")

	reportUnhandled(fr)

	assert.Equal(t, id, gotID)
	assert.Equal(t, "abandoned", gotReason)
}

func TestReportUnhandled_ObservedStaysQuiet(t *testing.T) {
	called := false
	SetUnhandledFaultHandler(func(uuid.UUID, any) { called = true })
	defer SetUnhandledFaultHandler(nil)

	fr := newFaultRecord(uuid.New())
	fr.record("seen")
	fr.observe()

	reportUnhandled(fr)

	assert.False(t, called, "an observed fault must not be reported")
}

func TestReportUnhandled_SettledStaysQuiet(t *testing.T) {
	called := false
	SetUnhandledFaultHandler(func(uuid.UUID, any) { called = true })
	defer SetUnhandledFaultHandler(nil)

	reportUnhandled(newFaultRecord(uuid.New()))

	assert.False(t, called, "a future that never faulted must not be reported")
}

// Deriving, catching, or awaiting all count as observing the fault
func TestObservation_MarkedByConsumers(t *testing.T) {
	check := func(name string, use func(a AsyncResult[int, string])) {
		t.Run(name, func(t *testing.T) {
			a := New(func(succeed func(int), fail func(string), fault func(any)) {
				fault("f")
			})
			use(a)
			assert.True(t, a.cell.report.observedNow(), "expected %s to observe the future", name)
		})
	}

	check("subscribe", func(a AsyncResult[int, string]) { awaitFault(t, a.Then(nil, nil)) })
	check("catch", func(a AsyncResult[int, string]) { awaitOk(t, a.Catch(func(any) any { return 0 })) })
	check("await", func(a AsyncResult[int, string]) { awaitFault(t, a) })
}

func TestSetUnhandledFaultHandler_NilRestoresDefault(t *testing.T) {
	SetUnhandledFaultHandler(func(uuid.UUID, any) {})
	SetUnhandledFaultHandler(nil)

	// restoring must leave a usable handler in place
	h := currentFaultHandler()
	assert.NotNil(t, h)
}
