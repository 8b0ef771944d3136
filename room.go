package walkthrough

import "math"

type RoomDimensions struct {
	Width      float64
	Length     float64
	WallHeight float64
}

// SizeRoom derives the room from the number of exhibits it must hold. The
// perimeter grows by PerItemSpacing per exhibit plus FixedSlack for the intro
// alcove, and is split between width and length by the configured fractions.
func SizeRoom(itemCount int, cfg LayoutConfig) RoomDimensions {
	if itemCount < 0 {
		itemCount = 0
	}
	perimeterNeeded := float64(itemCount)*cfg.PerItemSpacing + cfg.FixedSlack
	semiPerimeter := perimeterNeeded / 2

	return RoomDimensions{
		Width:      math.Max(cfg.MinWidth, semiPerimeter*cfg.WidthFraction),
		Length:     math.Max(cfg.MinLength, semiPerimeter*cfg.LengthFraction),
		WallHeight: cfg.WallHeight,
	}
}

func (r RoomDimensions) HalfWidth() float64 {
	return r.Width / 2
}

func (r RoomDimensions) HalfLength() float64 {
	return r.Length / 2
}

func (r RoomDimensions) Perimeter() float64 {
	return 2 * (r.Width + r.Length)
}

// Contains reports whether (x, z) lies strictly inside the floor rectangle.
func (r RoomDimensions) Contains(x, z float64) bool {
	return math.Abs(x) < r.HalfWidth() && math.Abs(z) < r.HalfLength()
}
