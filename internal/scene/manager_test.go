package scene

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// recorder appends every lifecycle call to a shared log.
type recorder struct {
	name    string
	log     *[]string
	updates int
	events  int
	renders int
}

func newRecorder(name string, log *[]string) *recorder {
	return &recorder{name: name, log: log}
}

func (r *recorder) OnEnter()               { *r.log = append(*r.log, r.name+":onEnter") }
func (r *recorder) OnExit()                { *r.log = append(*r.log, r.name+":onExit") }
func (r *recorder) OnPause()               { *r.log = append(*r.log, r.name+":onPause") }
func (r *recorder) OnResume()              { *r.log = append(*r.log, r.name+":onResume") }
func (r *recorder) HandleEvent(core.Event) { r.events++ }
func (r *recorder) Update(float64)         { r.updates++ }
func (r *recorder) Render(core.Canvas) {
	r.renders++
	*r.log = append(*r.log, r.name+":render")
}
func (r *recorder) String() string { return r.name }

func TestPushIsDeferred(t *testing.T) {
	var calls []string
	m := NewManager(nil)
	a := newRecorder("A", &calls)

	m.Push(a)
	if m.Len() != 0 {
		t.Fatalf("Len() = %d before Update, expected 0", m.Len())
	}
	if len(calls) != 0 {
		t.Fatalf("hooks fired before Update: %v", calls)
	}
	if m.Empty() {
		t.Error("Empty() should be false while a push is pending")
	}

	m.Update(0.016)
	if m.Len() != 1 || m.Current() != a {
		t.Fatalf("after Update, expected A on top, got len=%d", m.Len())
	}
	if a.updates != 1 {
		t.Errorf("A.updates = %d, expected 1", a.updates)
	}
}

func TestPushPausesPreviousTop(t *testing.T) {
	var calls []string
	m := NewManager(nil)
	a := newRecorder("A", &calls)
	b := newRecorder("B", &calls)

	m.Push(a)
	m.Update(0)
	m.Push(b)
	m.Update(0)

	expected := []string{"A:onEnter", "A:onPause", "B:onEnter"}
	if !reflect.DeepEqual(calls, expected) {
		t.Errorf("calls = %v, expected %v", calls, expected)
	}
	if m.Current() != b {
		t.Error("B should be on top")
	}
}

func TestPopResumesScene(t *testing.T) {
	var calls []string
	m := NewManager(nil)
	a := newRecorder("A", &calls)
	b := newRecorder("B", &calls)

	m.Push(a)
	m.Push(b)
	m.Update(0)
	calls = calls[:0]

	m.Pop()
	m.Update(0)

	expected := []string{"B:onExit", "A:onResume"}
	if !reflect.DeepEqual(calls, expected) {
		t.Errorf("calls = %v, expected %v", calls, expected)
	}
	if m.Current() != a {
		t.Error("A should be on top after pop")
	}
}

func TestReplaceExitsThenEnters(t *testing.T) {
	var calls []string
	m := NewManager(nil)
	a := newRecorder("A", &calls)
	b := newRecorder("B", &calls)

	m.Push(a)
	m.Update(0)
	calls = calls[:0]

	m.Replace(b)
	m.Update(0)

	expected := []string{"A:onExit", "B:onEnter"}
	if !reflect.DeepEqual(calls, expected) {
		t.Errorf("calls = %v, expected %v", calls, expected)
	}
	if m.Len() != 1 || m.Current() != b {
		t.Errorf("expected only B on the stack, len=%d", m.Len())
	}
}

func TestReplaceOnEmptyStackPushes(t *testing.T) {
	var calls []string
	m := NewManager(nil)
	a := newRecorder("A", &calls)

	m.Replace(a)
	m.Update(0)

	if m.Len() != 1 || m.Current() != a {
		t.Fatal("replace on an empty stack should leave A on top")
	}
	if !reflect.DeepEqual(calls, []string{"A:onEnter"}) {
		t.Errorf("calls = %v", calls)
	}
}

func TestCommitOrder(t *testing.T) {
	var calls []string
	m := NewManager(nil)
	a := newRecorder("A", &calls)
	b := newRecorder("B", &calls)
	c := newRecorder("C", &calls)
	d := newRecorder("D", &calls)

	m.Push(a)
	m.Push(b)
	m.Update(0)
	calls = calls[:0]

	// Requested out of order; applied as replace, pop, pushes.
	m.Push(d)
	m.Pop()
	m.Replace(c)
	m.Update(0)

	expected := []string{
		"B:onExit", "C:onEnter", // replace
		"C:onExit", "A:onResume", // pop
		"A:onPause", "D:onEnter", // push
	}
	if !reflect.DeepEqual(calls, expected) {
		t.Errorf("calls = %v, expected %v", calls, expected)
	}
	if m.Len() != 2 || m.Current() != d {
		t.Errorf("expected [A D], got len=%d top=%v", m.Len(), Name(m.Current()))
	}
}

func TestPushesKeepRequestOrder(t *testing.T) {
	var calls []string
	m := NewManager(nil)
	a := newRecorder("A", &calls)
	b := newRecorder("B", &calls)

	m.Push(a)
	m.Push(b)
	m.Update(0)

	expected := []string{"A:onEnter", "A:onPause", "B:onEnter"}
	if !reflect.DeepEqual(calls, expected) {
		t.Errorf("calls = %v, expected %v", calls, expected)
	}
}

func TestPopOnEmptyStackIsNoop(t *testing.T) {
	m := NewManager(nil)
	m.Pop()
	m.Pop()
	m.Update(0)

	if !m.Empty() {
		t.Error("extra pops should be discarded after commit")
	}

	var calls []string
	a := newRecorder("A", &calls)
	m.Push(a)
	m.Update(0)
	if m.Len() != 1 {
		t.Errorf("leftover pops must not carry over, len=%d", m.Len())
	}
}

func TestPopPastBottomEmptiesStack(t *testing.T) {
	var calls []string
	m := NewManager(nil)
	m.Push(newRecorder("A", &calls))
	m.Update(0)

	m.Pop()
	m.Pop()
	m.Pop()
	m.Update(0)

	if !m.Empty() {
		t.Errorf("Empty() = false, len=%d", m.Len())
	}
	if m.Current() != nil {
		t.Error("Current() should be nil on an empty stack")
	}
}

func TestOnlyTopReceivesUpdatesAndEvents(t *testing.T) {
	var calls []string
	m := NewManager(nil)
	a := newRecorder("A", &calls)
	b := newRecorder("B", &calls)

	m.Push(a)
	m.Push(b)
	m.Update(0)
	m.HandleEvent(core.KeyDown("x"))
	m.Update(0)

	if a.updates != 0 || a.events != 0 {
		t.Errorf("paused scene got updates=%d events=%d", a.updates, a.events)
	}
	if b.updates != 2 || b.events != 1 {
		t.Errorf("top scene got updates=%d events=%d, expected 2 and 1", b.updates, b.events)
	}
}

func TestRenderBottomToTop(t *testing.T) {
	var calls []string
	m := NewManager(nil)
	m.Push(newRecorder("A", &calls))
	m.Push(newRecorder("B", &calls))
	m.Update(0)
	calls = calls[:0]

	m.Render(nil)

	expected := []string{"A:render", "B:render"}
	if !reflect.DeepEqual(calls, expected) {
		t.Errorf("render order = %v, expected %v", calls, expected)
	}
}

// selfPopper requests its own removal from inside Update.
type selfPopper struct {
	Base
	req Requester
}

func (s *selfPopper) Update(float64) { s.req.Pop() }

func TestRequestsDuringUpdateWaitForNextFrame(t *testing.T) {
	m := NewManager(nil)
	s := &selfPopper{req: m}
	m.Push(s)
	m.Update(0)

	if m.Len() != 1 {
		t.Fatalf("pop requested during Update applied early, len=%d", m.Len())
	}
	if m.Empty() {
		t.Error("Empty() should be false while a pop is pending")
	}

	m.Update(0)
	if !m.Empty() {
		t.Error("pop should apply on the following Update")
	}
}

func TestNameFallsBackToType(t *testing.T) {
	if got := Name(&selfPopper{}); got != "*scene.selfPopper" {
		t.Errorf("Name() = %q", got)
	}
	if got := Name(newRecorder("A", nil)); got != "A" {
		t.Errorf("Name() = %q, expected Stringer result", got)
	}
}
