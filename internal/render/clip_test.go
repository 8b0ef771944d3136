package render

import (
	"math"
	"testing"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func deepAlmostEqual(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if !almostEqual(a[i][j], b[i][j]) {
				return false
			}
		}
	}
	return true
}

func almostEqualSlice(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !almostEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func TestClipPolygonAgainstNearPlane(t *testing.T) {
	const near = 10
	testCases := []struct {
		name     string
		input    [][]float64
		expected [][]float64
	}{
		{
			name: "Polygon fully in front of near plane",
			input: [][]float64{
				{0, 0, 20},
				{1, 0, 20},
				{0, 1, 20},
			},
			expected: [][]float64{
				{0, 0, 20},
				{1, 0, 20},
				{0, 1, 20},
			},
		},
		{
			name: "Polygon fully behind near plane",
			input: [][]float64{
				{0, 0, 5},
				{1, 0, 5},
				{0, 1, 5},
			},
			expected: [][]float64{},
		},
		{
			name: "Polygon with one point in front",
			input: [][]float64{
				{0, 0, 15}, // Inside
				{0, 1, 5},  // Outside
				{1, 0, 5},  // Outside
			},
			expected: [][]float64{
				{0.5, 0, 10},
				{0, 0, 15},
				{0, 0.5, 10},
			},
		},
		{
			name: "Polygon with two points in front",
			input: [][]float64{
				{0, 0, 5},  // Outside
				{0, 1, 15}, // Inside
				{1, 0, 15}, // Inside
			},
			expected: [][]float64{
				{0.5, 0, 10},
				{0, 0.5, 10},
				{0, 1, 15},
				{1, 0, 15},
			},
		},
		{
			name: "Texture coordinates follow the cut",
			input: [][]float64{
				{0, 0, 5, 0, 0},
				{0, 0, 15, 1, 0.5},
				{1, 0, 15, 1, 1},
			},
			expected: [][]float64{
				{0.5, 0, 10, 0.5, 0.5},
				{0, 0, 10, 0.5, 0.25},
				{0, 0, 15, 1, 0.5},
				{1, 0, 15, 1, 1},
			},
		},
		{
			name:     "Empty polygon",
			input:    [][]float64{},
			expected: [][]float64{},
		},
		{
			name: "Polygon on the near plane",
			input: [][]float64{
				{0, 0, 10},
				{1, 0, 10},
				{0, 1, 10},
			},
			expected: [][]float64{
				{0, 0, 10},
				{1, 0, 10},
				{0, 1, 10},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clipped := clipPolygonAgainstNearPlane(tc.input, near)
			if !deepAlmostEqual(clipped, tc.expected) {
				t.Errorf("clipPolygonAgainstNearPlane() = %v, want %v", clipped, tc.expected)
			}
		})
	}
}

func TestIntersectNearPlane(t *testing.T) {
	const near = 10
	testCases := []struct {
		name     string
		p1       []float64
		p2       []float64
		expected []float64
	}{
		{
			name:     "Standard intersection",
			p1:       []float64{0, 0, 0},
			p2:       []float64{0, 0, 20},
			expected: []float64{0, 0, 10},
		},
		{
			name:     "Intersection with non-zero X and Y",
			p1:       []float64{10, 20, 0},
			p2:       []float64{30, 40, 20},
			expected: []float64{20, 30, 10},
		},
		{
			name:     "Line parallel to near plane",
			p1:       []float64{10, 10, 5},
			p2:       []float64{20, 20, 5},
			expected: []float64{10, 10, 5}, // Should return p1
		},
		{
			name:     "Line segment on near plane",
			p1:       []float64{10, 10, 10},
			p2:       []float64{20, 20, 10},
			expected: []float64{10, 10, 10}, // Should return p1
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := intersectNearPlane(tc.p1, tc.p2, near)
			if !almostEqualSlice(result, tc.expected) {
				t.Errorf("intersectNearPlane() = %v, want %v", result, tc.expected)
			}
		})
	}
}

func deepAlmostEqualPoints(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !almostEqual(float64(a[i].X), float64(b[i].X)) || !almostEqual(float64(a[i].Y), float64(b[i].Y)) {
			return false
		}
	}
	return true
}

func TestClipPolygon(t *testing.T) {
	screenWidth := float32(800)
	screenHeight := float32(600)

	testCases := []struct {
		name     string
		input    []Point
		expected []Point
	}{
		{
			name: "Polygon fully inside",
			input: []Point{
				{X: 100, Y: 100},
				{X: 200, Y: 100},
				{X: 150, Y: 200},
			},
			expected: []Point{
				{X: 100, Y: 100},
				{X: 200, Y: 100},
				{X: 150, Y: 200},
			},
		},
		{
			name: "Polygon fully outside",
			input: []Point{
				{X: 900, Y: 100},
				{X: 1000, Y: 100},
				{X: 950, Y: 200},
			},
			expected: []Point{},
		},
		{
			name: "Polygon clipping right edge",
			input: []Point{
				{X: 700, Y: 100},
				{X: 900, Y: 100},
				{X: 700, Y: 200},
			},
			// Clipped against screenWidth+1.
			expected: []Point{
				{X: 700, Y: 100},
				{X: 801, Y: 100},
				{X: 801, Y: 149.5},
				{X: 700, Y: 200},
			},
		},
		{
			name: "Polygon clipping top-left corner",
			input: []Point{
				{X: -100, Y: -100},
				{X: 100, Y: -100},
				{X: 100, Y: 100},
				{X: -100, Y: 100},
			},
			expected: []Point{
				{X: 0, Y: 0},
				{X: 100, Y: 0},
				{X: 100, Y: 100},
				{X: 0, Y: 100},
			},
		},
		{
			name:     "Empty polygon",
			input:    []Point{},
			expected: []Point{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clipped := clipPolygon(tc.input, screenWidth, screenHeight)
			if !deepAlmostEqualPoints(clipped, tc.expected) {
				t.Errorf("clipPolygon() = %v, want %v", clipped, tc.expected)
			}
		})
	}
}

func TestClipPolygonInterpolatesUV(t *testing.T) {
	clipped := clipPolygon([]Point{
		{X: -100, Y: 0, U: 0, V: 0},
		{X: 100, Y: 0, U: 1, V: 0},
		{X: 100, Y: 100, U: 1, V: 1},
	}, 800, 600)
	if len(clipped) != 4 {
		t.Fatalf("got %d points, want 4", len(clipped))
	}
	if clipped[0].X != 0 || !almostEqual(float64(clipped[0].U), 0.5) {
		t.Errorf("first point %+v, want X 0 U 0.5", clipped[0])
	}
}
