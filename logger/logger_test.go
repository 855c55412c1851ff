package logger

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/drain"
)

// testDrain records every invocation for inspection
type testDrain struct {
	mu      sync.Mutex
	records []testRecord
	err     error
	// onLog, when set, runs inside Log with the live arguments
	onLog func(buf *bytes.Buffer, rec *core.Record, logger, call []core.Field)
}

type testRecord struct {
	level  core.Level
	msg    string
	ts     time.Time
	logger []core.Field
	call   []core.Field
}

func (d *testDrain) Log(buf *bytes.Buffer, rec *core.Record, logger, call []core.Field) error {
	if d.onLog != nil {
		d.onLog(buf, rec, logger, call)
	}
	d.mu.Lock()
	d.records = append(d.records, testRecord{
		level:  rec.Level(),
		msg:    rec.Message(),
		ts:     rec.Time(),
		logger: core.CopyFields(logger),
		call:   core.CopyFields(call),
	})
	d.mu.Unlock()
	return d.err
}

func (d *testDrain) Close() error { return nil }

func (d *testDrain) captured() []testRecord {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]testRecord, len(d.records))
	copy(out, d.records)
	return out
}

func keysOf(fields []core.Field) []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}

func TestNewRoot_StartsWithDiscard(t *testing.T) {
	root := NewRoot(String("app", "test"))
	// Logging against a fresh root must be a no-op, not a panic
	root.Info("into the void")

	prev := root.SwapDrain(&testDrain{})
	if prev != drain.Discard() {
		t.Error("Expected a fresh hierarchy to hold the Discard drain")
	}
}

func TestNew_InheritsValuesInOrder(t *testing.T) {
	root := NewRoot(String("a", "1"), String("b", "2"))
	child := root.New(String("c", "3"))
	grandchild := child.New(String("d", "4"), String("e", "5"))

	got := keysOf(grandchild.Values())
	want := []string{"a", "b", "c", "d", "e"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Value %d: expected key %q, got %q", i, want[i], got[i])
		}
	}

	// The parent's sequence is a strict prefix of the child's
	parentKeys := keysOf(child.Values())
	for i, k := range parentKeys {
		if got[i] != k {
			t.Errorf("Child values are not prefix-extended from the parent at %d", i)
		}
	}
}

func TestNew_DuplicateKeysKept(t *testing.T) {
	root := NewRoot(String("k", "parent"))
	child := root.New(String("k", "child"))

	values := child.Values()
	if len(values) != 2 {
		t.Fatalf("Expected duplicate keys to be kept, got %d values", len(values))
	}
	if values[0].Str != "parent" || values[1].Str != "child" {
		t.Errorf("Expected child entry to come after (and shadow) the parent's: %+v", values)
	}
}

func TestNew_DoesNotMutateParent(t *testing.T) {
	root := NewRoot(String("a", "1"))
	_ = root.New(String("b", "2"))

	if len(root.Values()) != 1 {
		t.Errorf("Deriving a child mutated the parent's values: %v", keysOf(root.Values()))
	}
}

func TestSetDrain_HierarchyWide(t *testing.T) {
	root := NewRoot()
	child := root.New(String("c", "1"))
	grandchild := child.New()

	d := &testDrain{}
	// Install through the grandchild; the root must observe it
	grandchild.SetDrain(d)

	root.Info("from the root")
	if len(d.captured()) != 1 {
		t.Fatal("Drain installed via a descendant was not observed by the root")
	}

	// And the other direction
	d2 := &testDrain{}
	root.SetDrain(d2)
	grandchild.Info("from the grandchild")
	if len(d2.captured()) != 1 {
		t.Fatal("Drain installed via the root was not observed by a descendant")
	}
	if len(d.captured()) != 1 {
		t.Error("Replaced drain still receives records")
	}
}

func TestSwapDrain_ReturnsPrevious(t *testing.T) {
	root := NewRoot()
	child := root.New()

	d1 := &testDrain{}
	root.SetDrain(d1)

	d2 := &testDrain{}
	prev := child.SwapDrain(d2)
	if prev != drain.Drain(d1) {
		t.Error("SwapDrain did not return the drain active before the swap")
	}

	child.Error("routed")
	if len(d2.captured()) != 1 {
		t.Error("Record did not reach the newly swapped drain")
	}
	if len(d1.captured()) != 0 {
		t.Error("Record reached the drain that was swapped out")
	}

	// Restore the previous drain, as a caller holding prev would
	root.SetDrain(prev)
	child.Error("restored")
	if len(d1.captured()) != 1 {
		t.Error("Restored drain did not receive the record")
	}
}

func TestLog_ScenarioInheritedPairs(t *testing.T) {
	d := &testDrain{}
	root := NewRoot(String("service", "x"))
	root.SetDrain(d)
	child := root.New(String("req_id", "42"))

	child.Info("hello")

	got := d.captured()
	if len(got) != 1 {
		t.Fatalf("Expected exactly one drain invocation, got %d", len(got))
	}
	rec := got[0]
	if rec.level != core.InfoLevel {
		t.Errorf("Expected InfoLevel, got %v", rec.level)
	}
	if rec.msg != "hello" {
		t.Errorf("Expected message 'hello', got %q", rec.msg)
	}
	if len(rec.logger) != 2 || rec.logger[0].Key != "service" || rec.logger[0].Str != "x" ||
		rec.logger[1].Key != "req_id" || rec.logger[1].Str != "42" {
		t.Errorf("Unexpected inherited pairs: %+v", rec.logger)
	}
	if len(rec.call) != 0 {
		t.Errorf("Expected no call-site pairs, got %+v", rec.call)
	}
}

func TestLog_ExactlyOnceAtErrorLevel(t *testing.T) {
	d := &testDrain{}
	root := NewRoot()
	root.SetDrain(d)
	child := root.New(String("sub", "sys"))

	child.Error("boom")

	got := d.captured()
	if len(got) != 1 {
		t.Fatalf("Expected exactly one invocation, got %d", len(got))
	}
	if got[0].level != core.ErrorLevel {
		t.Errorf("Expected ErrorLevel, got %v", got[0].level)
	}
}

func TestLog_LevelWrappers(t *testing.T) {
	d := &testDrain{}
	root := NewRoot()
	root.SetDrain(d)

	root.Critical("c")
	root.Error("e")
	root.Warning("w")
	root.Info("i")
	root.Debug("d")
	root.Trace("t")

	got := d.captured()
	want := []core.Level{
		core.CriticalLevel, core.ErrorLevel, core.WarningLevel,
		core.InfoLevel, core.DebugLevel, core.TraceLevel,
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d invocations, got %d", len(want), len(got))
	}
	for i, lvl := range want {
		if got[i].level != lvl {
			t.Errorf("Call %d: expected %v, got %v", i, lvl, got[i].level)
		}
	}
}

func TestLog_DrainErrorSwallowed(t *testing.T) {
	d := &testDrain{err: errors.New("sink unavailable")}
	root := NewRoot()
	root.SetDrain(d)

	// Must not panic and must not surface the error in any way
	root.Error("dropped silently")

	if len(d.captured()) != 1 {
		t.Error("Failing drain was not invoked")
	}
}

func TestLog_CallFieldsPassedSeparately(t *testing.T) {
	d := &testDrain{}
	root := NewRoot(String("inherited", "1"))
	root.SetDrain(d)

	root.Info("msg", String("callsite", "2"), Int("n", 3))

	got := d.captured()[0]
	if len(got.logger) != 1 || got.logger[0].Key != "inherited" {
		t.Errorf("Unexpected inherited fields: %+v", got.logger)
	}
	if len(got.call) != 2 || got.call[0].Key != "callsite" || got.call[1].Key != "n" {
		t.Errorf("Unexpected call fields: %+v", got.call)
	}
}

func TestLog_TimestampStableWithinCall(t *testing.T) {
	var first, second time.Time
	d := &testDrain{
		onLog: func(_ *bytes.Buffer, rec *core.Record, _, _ []core.Field) {
			first = rec.Time()
			time.Sleep(time.Millisecond)
			second = rec.Time()
		},
	}
	root := NewRoot()
	root.SetDrain(d)

	root.Info("two reads")

	if !first.Equal(second) {
		t.Errorf("Two timestamp reads within one call differ: %v vs %v", first, second)
	}
}

func TestLog_TimestampMonotonicAcrossCalls(t *testing.T) {
	d := &testDrain{}
	root := NewRoot()
	root.SetDrain(d)

	root.Info("first")
	root.Info("second")

	got := d.captured()
	if got[1].ts.Before(got[0].ts) {
		t.Errorf("Timestamps went backwards: %v then %v", got[0].ts, got[1].ts)
	}
}

func TestLog_BufferArrivesEmpty(t *testing.T) {
	var sawNonEmpty bool
	d := &testDrain{
		onLog: func(buf *bytes.Buffer, _ *core.Record, _, _ []core.Field) {
			if buf.Len() != 0 {
				sawNonEmpty = true
			}
			buf.WriteString("scratch scribbles the drain leaves behind")
		},
		err: errors.New("fail too, for good measure"),
	}
	root := NewRoot()
	root.SetDrain(d)

	// Repeated calls reuse pooled buffers; each one must arrive empty
	// even though the previous call wrote into it and failed.
	for i := 0; i < 50; i++ {
		root.Info("reuse")
	}

	if sawNonEmpty {
		t.Error("A drain observed leftover bytes from a previous call")
	}
}

func TestLog_ConcurrentHierarchy(t *testing.T) {
	d := &testDrain{
		onLog: func(buf *bytes.Buffer, rec *core.Record, _, call []core.Field) {
			if buf.Len() != 0 {
				panic("buffer not isolated")
			}
			// Scribble to catch cross-goroutine buffer sharing
			fmt.Fprintf(buf, "%s:%d", rec.Message(), len(call))
		},
	}
	root := NewRoot(String("service", "x"))
	root.SetDrain(d)

	const goroutines = 8
	const perGoroutine = 200

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			child := root.New(Int("goroutine", id))
			for i := 0; i < perGoroutine; i++ {
				child.Info("concurrent", Int("i", i))
			}
		}(g)
	}
	wg.Wait()

	got := d.captured()
	if len(got) != goroutines*perGoroutine {
		t.Errorf("Expected %d records, got %d", goroutines*perGoroutine, len(got))
	}
	for _, rec := range got {
		if len(rec.logger) != 2 || rec.logger[0].Key != "service" || rec.logger[1].Key != "goroutine" {
			t.Fatalf("Corrupted inherited fields: %+v", rec.logger)
		}
	}
}

func TestLog_SeparateHierarchiesIndependent(t *testing.T) {
	d1 := &testDrain{}
	d2 := &testDrain{}

	root1 := NewRoot()
	root1.SetDrain(d1)
	root2 := NewRoot()
	root2.SetDrain(d2)

	root1.Info("one")
	root2.Info("two")

	if len(d1.captured()) != 1 || d1.captured()[0].msg != "one" {
		t.Error("First hierarchy misrouted")
	}
	if len(d2.captured()) != 1 || d2.captured()[0].msg != "two" {
		t.Error("Second hierarchy misrouted")
	}
}
