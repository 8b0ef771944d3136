package walkthrough

import "sort"

// WallAllocation is the share of exhibits one wall receives and how they are
// spaced along it.
type WallAllocation struct {
	Wall WallSpec

	// Floor is the integer part of the proportional share and Remainder its
	// fractional part. Count is the final number after the largest-remainder
	// correction.
	Floor     int
	Remainder float64
	Count     int

	StartOffset float64
	SegmentSize float64
}

// Allocate distributes itemCount exhibits over walls proportionally to wall
// length. Leftover units after flooring go to the walls with the largest
// remainders, ties broken by ascending wall id, so the counts always sum to
// itemCount.
func Allocate(itemCount int, walls []WallSpec, cornerPadding float64) []WallAllocation {
	if itemCount < 0 {
		itemCount = 0
	}
	allocs := make([]WallAllocation, len(walls))
	if len(walls) == 0 {
		return allocs
	}

	perimeter := 0.0
	for _, w := range walls {
		if w.Length > 0 {
			perimeter += w.Length
		}
	}

	assigned := 0
	for i, w := range walls {
		allocs[i].Wall = w
		if perimeter <= 0 || w.Length <= 0 {
			continue
		}
		ideal := float64(itemCount) * (w.Length / perimeter)
		floor := int(ideal)
		allocs[i].Floor = floor
		allocs[i].Remainder = ideal - float64(floor)
		allocs[i].Count = floor
		assigned += floor
	}

	order := make([]int, len(allocs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := allocs[order[a]].Remainder, allocs[order[b]].Remainder
		if ra != rb {
			return ra > rb
		}
		return allocs[order[a]].Wall.ID < allocs[order[b]].Wall.ID
	})

	// missing is below len(walls) for any sane input; cycling covers the
	// degenerate zero-perimeter case too.
	missing := itemCount - assigned
	for i := 0; missing > 0; i++ {
		allocs[order[i%len(order)]].Count++
		missing--
	}

	for i := range allocs {
		allocs[i].StartOffset, allocs[i].SegmentSize = spacing(allocs[i].Wall.Length, allocs[i].Count, cornerPadding)
	}
	return allocs
}

// spacing splits the usable part of a wall into count+1 equal segments. Walls
// too short for the corner padding fall back to the full length.
func spacing(length float64, count int, cornerPadding float64) (startOffset, segmentSize float64) {
	if count <= 0 {
		return 0, 0
	}
	usable := length - 2*cornerPadding
	if usable > 0 {
		return cornerPadding, usable / float64(count+1)
	}
	if length <= 0 {
		return 0, 0
	}
	return 0, length / float64(count+1)
}

// Offsets lists the distance along the wall of every exhibit on it.
func (a WallAllocation) Offsets() []float64 {
	offsets := make([]float64, a.Count)
	for i := range offsets {
		offsets[i] = a.StartOffset + float64(i+1)*a.SegmentSize
	}
	return offsets
}

func TotalCount(allocs []WallAllocation) int {
	total := 0
	for _, a := range allocs {
		total += a.Count
	}
	return total
}
