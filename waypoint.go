package walkthrough

import "github.com/go-gl/mathgl/mgl64"

// NoExhibit marks a waypoint that does not view an exhibit.
const NoExhibit = -1

type Waypoint struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat

	// Exhibit is the index of the viewed exhibit, or NoExhibit for the intro.
	Exhibit int
}

func (w Waypoint) HasExhibit() bool {
	return w.Exhibit != NoExhibit
}

// Plan is the full static layout for one exhibit collection. Waypoints[0] is
// the intro; Waypoints[i] views Placements[i-1]. A Plan is never mutated; a
// different collection gets a new Plan.
type Plan struct {
	Room        RoomDimensions
	Walls       []WallSpec
	Allocations []WallAllocation
	Placements  []Placement
	Waypoints   []Waypoint
}

// NewPlan sizes the room for itemCount exhibits, spreads them over the walls
// and derives one waypoint per exhibit after the intro waypoint.
func NewPlan(itemCount int, cfg LayoutConfig) *Plan {
	if itemCount < 0 {
		itemCount = 0
	}
	room := SizeRoom(itemCount, cfg)
	walls := NewWalls(room, cfg.WallOffset)
	allocs := Allocate(itemCount, walls, cfg.CornerPadding)

	p := &Plan{
		Room:        room,
		Walls:       walls,
		Allocations: allocs,
		Placements:  make([]Placement, 0, itemCount),
		Waypoints:   make([]Waypoint, 0, itemCount+1),
	}
	p.Waypoints = append(p.Waypoints, IntroWaypoint(cfg))

	for _, a := range allocs {
		for _, offset := range a.Offsets() {
			if len(p.Placements) >= itemCount {
				break
			}
			placement, wp := Project(len(p.Placements), a.Wall, offset, cfg)
			p.Placements = append(p.Placements, placement)
			p.Waypoints = append(p.Waypoints, wp)
		}
	}
	return p
}

func (p *Plan) ExhibitCount() int {
	return len(p.Placements)
}

// Waypoint returns waypoint i, clamped into range.
func (p *Plan) Waypoint(i int) Waypoint {
	return p.Waypoints[clampIndex(i, len(p.Waypoints))]
}

func clampIndex(i, count int) int {
	if count <= 0 || i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}
