package walkthrough

import "testing"

func TestPlanWaypointCount(t *testing.T) {
	cfg := DefaultConfig().Layout
	for n := 0; n <= 80; n++ {
		p := NewPlan(n, cfg)
		if len(p.Waypoints) != n+1 {
			t.Fatalf("n=%d: %d waypoints, want %d", n, len(p.Waypoints), n+1)
		}
		if p.ExhibitCount() != n {
			t.Fatalf("n=%d: %d placements", n, p.ExhibitCount())
		}
		if p.Waypoints[0].HasExhibit() {
			t.Fatalf("n=%d: waypoint 0 should be the intro", n)
		}
		for i := 1; i < len(p.Waypoints); i++ {
			if p.Waypoints[i].Exhibit != i-1 {
				t.Fatalf("n=%d: waypoint %d views exhibit %d", n, i, p.Waypoints[i].Exhibit)
			}
		}
	}
}

func TestPlanTwelveExhibits(t *testing.T) {
	cfg := DefaultConfig().Layout
	p := NewPlan(12, cfg)

	segments := map[WallID]float64{}
	normals := map[WallID]WallSpec{}
	for _, a := range p.Allocations {
		segments[a.Wall.ID] = a.SegmentSize
		normals[a.Wall.ID] = a.Wall
	}

	perWall := map[WallID][]Placement{}
	for _, pl := range p.Placements {
		if _, ok := segments[pl.Wall]; !ok {
			t.Fatalf("exhibit %d on unknown wall %v", pl.Index, pl.Wall)
		}
		perWall[pl.Wall] = append(perWall[pl.Wall], pl)
	}
	total := 0
	for id, pls := range perWall {
		total += len(pls)
		for i := 0; i < len(pls); i++ {
			for j := i + 1; j < len(pls); j++ {
				d := pls[i].Position.Sub(pls[j].Position).Len()
				if d < segments[id]-1e-9 {
					t.Errorf("%v: exhibits %d and %d are %v apart, segment %v", id, pls[i].Index, pls[j].Index, d, segments[id])
				}
			}
		}
	}
	if total != 12 {
		t.Errorf("%d exhibits assigned to walls, want 12", total)
	}

	for i, wp := range p.Waypoints[1:] {
		pl := p.Placements[i]
		wall := normals[pl.Wall]
		if wp.Position.Sub(pl.Position).Dot(wall.Normal) <= 0 {
			t.Errorf("waypoint %d is not on the interior side of the %v wall", i+1, pl.Wall)
		}
		if !p.Room.Contains(wp.Position.X(), wp.Position.Z()) {
			t.Errorf("waypoint %d at %v is outside the room", i+1, wp.Position)
		}
	}
}

func TestPlanTraversalOrder(t *testing.T) {
	p := NewPlan(12, DefaultConfig().Layout)
	want := []WallID{WallEast, WallSouth, WallWest, WallNorth}
	w := 0
	for _, pl := range p.Placements {
		for w < len(want) && pl.Wall != want[w] {
			w++
		}
		if w == len(want) {
			t.Fatalf("exhibit %d on %v breaks the east, south, west, north order", pl.Index, pl.Wall)
		}
	}
}

func TestPlanEmpty(t *testing.T) {
	p := NewPlan(0, DefaultConfig().Layout)
	if len(p.Waypoints) != 1 || len(p.Placements) != 0 {
		t.Fatalf("got %d waypoints, %d placements", len(p.Waypoints), len(p.Placements))
	}
	if TotalCount(p.Allocations) != 0 {
		t.Errorf("allocations sum to %d", TotalCount(p.Allocations))
	}
	if got := p.Waypoint(5); got != p.Waypoints[0] {
		t.Errorf("Waypoint(5) should clamp to the intro")
	}
}
