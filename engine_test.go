package walkthrough

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

type countingHandle struct {
	index    int
	triggers int
}

func (h *countingHandle) TriggerHighDetailLoad() { h.triggers++ }

type recordingFactory struct {
	handles []*countingHandle
}

func (f *recordingFactory) PlaceExhibit(p Placement) ExhibitHandle {
	h := &countingHandle{index: p.Index}
	f.handles = append(f.handles, h)
	return h
}

func newTestEngine(t *testing.T, items int) (*Engine, *recordingFactory) {
	t.Helper()
	f := &recordingFactory{}
	e := New(DefaultConfig(), f, WithLogger(log.New(io.Discard)))
	f.handles = nil
	e.Initialize(items)
	return e, f
}

func TestEngineStartsOnIntro(t *testing.T) {
	e, f := newTestEngine(t, 12)

	if e.CurrentWaypointIndex() != 0 {
		t.Errorf("CurrentWaypointIndex() = %d, want 0", e.CurrentWaypointIndex())
	}
	if e.WaypointCount() != 13 {
		t.Errorf("WaypointCount() = %d, want 13", e.WaypointCount())
	}
	if _, ok := e.CurrentExhibit(); ok {
		t.Error("intro waypoint should have no exhibit")
	}
	if len(f.handles) != 12 {
		t.Fatalf("factory placed %d exhibits, want 12", len(f.handles))
	}
	if pose := e.Pose(); pose != PoseOf(e.Plan().Waypoints[0]) {
		t.Errorf("pose %v not on intro waypoint", pose)
	}
	if !e.Arrived() {
		t.Error("initial pose should count as arrived")
	}
}

func TestEngineHighDetailOnce(t *testing.T) {
	e, f := newTestEngine(t, 4)

	e.Next()
	e.Next()
	e.Previous()
	e.Previous()
	e.Next()
	e.JumpTo(4, false)
	e.JumpTo(4, false)

	want := []int{1, 1, 0, 1}
	for i, h := range f.handles {
		if h.triggers != want[i] {
			t.Errorf("exhibit %d triggered %d times, want %d", i, h.triggers, want[i])
		}
	}
	if e.DetailTier(0) != DetailLoaded || e.DetailTier(2) != DetailPending {
		t.Errorf("tiers %v %v", e.DetailTier(0), e.DetailTier(2))
	}
	if e.DetailTier(-1) != DetailPending || e.DetailTier(99) != DetailPending {
		t.Error("out of range tiers should be pending")
	}
}

func TestEngineCurrentExhibit(t *testing.T) {
	e, f := newTestEngine(t, 3)
	e.Next()
	e.Next()
	h, ok := e.CurrentExhibit()
	if !ok {
		t.Fatal("waypoint 2 should view an exhibit")
	}
	if h.(*countingHandle) != f.handles[1] {
		t.Errorf("CurrentExhibit() = exhibit %d, want 1", h.(*countingHandle).index)
	}
}

func TestEngineLockFreezesCamera(t *testing.T) {
	e, _ := newTestEngine(t, 6)
	e.Next()
	e.Advance(0)
	e.Advance(0)

	e.SetLocked(true)
	frozen := e.Pose()
	for i := 0; i < 50; i++ {
		e.Advance(1.0 / 60)
	}
	if e.Pose() != frozen {
		t.Error("camera moved while locked")
	}
	if e.Next() || e.Previous() {
		t.Error("navigation worked while locked")
	}
	if e.CanNext() || e.CanPrevious() {
		t.Error("CanNext/CanPrevious should be false while locked")
	}
	if e.CurrentWaypointIndex() != 1 {
		t.Errorf("index %d after locked navigation, want 1", e.CurrentWaypointIndex())
	}

	e.SetLocked(false)
	e.Advance(0)
	if e.Pose() == frozen {
		t.Error("camera still frozen after unlock")
	}
}

func TestEngineArrives(t *testing.T) {
	e, _ := newTestEngine(t, 2)
	e.Next()
	if e.Arrived() {
		t.Fatal("should not be arrived right after moving")
	}
	for i := 0; i < 300 && !e.Arrived(); i++ {
		e.Advance(0)
	}
	if !e.Arrived() {
		t.Fatal("never arrived")
	}
	if e.Pose() != PoseOf(e.CurrentTarget()) {
		t.Error("arrived pose differs from the target")
	}
	if d, a := e.Remaining(); d != 0 || !almostEqual(a, 0) {
		t.Errorf("Remaining() = %v, %v after arrival", d, a)
	}
}

func TestEngineJumpToImmediate(t *testing.T) {
	e, _ := newTestEngine(t, 5)
	if got := e.JumpTo(50, true); got != 5 {
		t.Errorf("JumpTo(50) = %d, want 5", got)
	}
	if e.Pose() != PoseOf(e.Plan().Waypoints[5]) {
		t.Error("immediate jump should place the camera on the waypoint")
	}
	if !e.Arrived() {
		t.Error("immediate jump should count as arrived")
	}
}

func TestEngineNegativeCount(t *testing.T) {
	e, f := newTestEngine(t, -4)
	if e.WaypointCount() != 1 || len(f.handles) != 0 {
		t.Errorf("negative count gave %d waypoints, %d exhibits", e.WaypointCount(), len(f.handles))
	}
	if e.Next() || e.Previous() {
		t.Error("navigation should be a no-op with no exhibits")
	}
}

func TestEngineReinitialize(t *testing.T) {
	e, _ := newTestEngine(t, 8)
	e.JumpTo(5, true)
	e.Initialize(3)
	if e.CurrentWaypointIndex() != 0 || e.WaypointCount() != 4 {
		t.Errorf("after reinitialize at %d of %d", e.CurrentWaypointIndex(), e.WaypointCount())
	}
}

func TestEngineNilFactory(t *testing.T) {
	e := New(DefaultConfig(), nil, WithLogger(log.New(io.Discard)))
	e.Initialize(3)
	e.Next()
	if _, ok := e.CurrentExhibit(); ok {
		t.Error("no handle without a factory")
	}
	if e.DetailTier(0) != DetailLoaded {
		t.Error("tier should still be tracked without a handle")
	}
}
