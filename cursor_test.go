package walkthrough

import "testing"

func TestCursorBounds(t *testing.T) {
	c := NewCursor(3, nil)
	if c.Previous() {
		t.Error("Previous() at 0 should be a no-op")
	}
	if !c.Next() || !c.Next() {
		t.Fatal("Next() should move to the last waypoint")
	}
	if c.Next() {
		t.Error("Next() at the last waypoint should be a no-op")
	}
	if c.Index() != 2 {
		t.Errorf("Index() = %d, want 2", c.Index())
	}
}

func TestCursorRoundTrip(t *testing.T) {
	for start := 0; start < 9; start++ {
		c := NewCursor(10, nil)
		c.JumpTo(start)
		c.Next()
		c.Previous()
		if c.Index() != start {
			t.Errorf("start %d: next then previous ended at %d", start, c.Index())
		}
	}
}

func TestCursorLocked(t *testing.T) {
	for start := 0; start < 5; start++ {
		activations := 0
		c := NewCursor(5, func(int) { activations++ })
		c.JumpTo(start)
		activations = 0

		c.Lock()
		if c.Next() || c.Previous() {
			t.Errorf("start %d: moved while locked", start)
		}
		if c.Index() != start || activations != 0 {
			t.Errorf("start %d: index %d, %d activations while locked", start, c.Index(), activations)
		}
		if c.CanNext() || c.CanPrevious() {
			t.Errorf("start %d: CanNext/CanPrevious should be false while locked", start)
		}

		c.Unlock()
		if c.Index() != start {
			t.Errorf("start %d: unlock changed index to %d", start, c.Index())
		}
	}
}

func TestCursorJumpToClamps(t *testing.T) {
	c := NewCursor(4, nil)
	testCases := []struct {
		in, want int
	}{
		{-3, 0},
		{0, 0},
		{2, 2},
		{3, 3},
		{99, 3},
	}
	for _, tc := range testCases {
		if got := c.JumpTo(tc.in); got != tc.want {
			t.Errorf("JumpTo(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCursorActivation(t *testing.T) {
	var got []int
	c := NewCursor(3, func(i int) { got = append(got, i) })
	c.Next()
	c.Next()
	c.Next() // no-op
	c.Previous()
	want := []int{1, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("activations %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("activations %v, want %v", got, want)
		}
	}
}

func TestCursorSingleWaypoint(t *testing.T) {
	for _, count := range []int{-1, 0, 1} {
		c := NewCursor(count, nil)
		for i := 0; i < 3; i++ {
			if c.Next() || c.Previous() {
				t.Errorf("count %d: moved on a single-waypoint cursor", count)
			}
		}
		if c.Index() != 0 || c.Count() != 1 {
			t.Errorf("count %d: index %d of %d", count, c.Index(), c.Count())
		}
	}
}
