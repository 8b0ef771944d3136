package walkthrough

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type WallID int

const (
	WallWest WallID = iota
	WallNorth
	WallEast
	WallSouth
)

func (id WallID) String() string {
	switch id {
	case WallWest:
		return "west"
	case WallNorth:
		return "north"
	case WallEast:
		return "east"
	case WallSouth:
		return "south"
	}
	return fmt.Sprintf("wall(%d)", int(id))
}

// WallSpec describes one wall as seen by the layout. Walking a wall starts at
// StartCoord on the varying axis and moves by Dir per meter of offset.
type WallSpec struct {
	ID     WallID
	Length float64

	// FixedCoord is the constant axis value, already pulled into the room by
	// the configured wall offset.
	FixedCoord float64
	XFixed     bool
	StartCoord float64
	Dir        float64

	// RotY turns an exhibit on this wall to face into the room.
	RotY   float64
	Normal mgl64.Vec3
}

// NewWalls returns the four walls in traversal order: east, south, west,
// north. Walking them in this order keeps the next exhibit on the viewer's
// right.
func NewWalls(room RoomDimensions, wallOffset float64) []WallSpec {
	halfW, halfL := room.HalfWidth(), room.HalfLength()
	return []WallSpec{
		{
			ID:         WallEast,
			Length:     room.Length,
			FixedCoord: halfW - wallOffset,
			XFixed:     true,
			StartCoord: -halfL,
			Dir:        1,
			RotY:       -math.Pi / 2,
			Normal:     mgl64.Vec3{-1, 0, 0},
		},
		{
			ID:         WallSouth,
			Length:     room.Width,
			FixedCoord: halfL - wallOffset,
			XFixed:     false,
			StartCoord: halfW,
			Dir:        -1,
			RotY:       math.Pi,
			Normal:     mgl64.Vec3{0, 0, -1},
		},
		{
			ID:         WallWest,
			Length:     room.Length,
			FixedCoord: -halfW + wallOffset,
			XFixed:     true,
			StartCoord: halfL,
			Dir:        -1,
			RotY:       math.Pi / 2,
			Normal:     mgl64.Vec3{1, 0, 0},
		},
		{
			ID:         WallNorth,
			Length:     room.Width,
			FixedCoord: -halfL + wallOffset,
			XFixed:     false,
			StartCoord: -halfW,
			Dir:        1,
			RotY:       0,
			Normal:     mgl64.Vec3{0, 0, 1},
		},
	}
}

// PointAt resolves an offset along the wall into floor coordinates.
func (w WallSpec) PointAt(offset float64) (x, z float64) {
	varying := w.StartCoord + offset*w.Dir
	if w.XFixed {
		return w.FixedCoord, varying
	}
	return varying, w.FixedCoord
}
