package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewQuad(t *testing.T) {
	q := NewQuad(mgl64.Vec3{0, 2, -5}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, 4, 2, nil)

	if !vecAlmostEqual(q.Normal, mgl64.Vec3{0, 0, 1}) {
		t.Errorf("Normal = %v, want {0 0 1}", q.Normal)
	}
	if !vecAlmostEqual(q.GetMidPoint(), mgl64.Vec3{0, 2, -5}) {
		t.Errorf("GetMidPoint() = %v", q.GetMidPoint())
	}
	want := []mgl64.Vec3{{-2, 1, -5}, {2, 1, -5}, {2, 3, -5}, {-2, 3, -5}}
	for i, p := range q.Points {
		if !vecAlmostEqual(p, want[i]) {
			t.Errorf("point %d = %v, want %v", i, p, want[i])
		}
	}
	if !almostEqual(q.GetDistanceToPoint(mgl64.Vec3{0, 2, 0}), 5) {
		t.Errorf("GetDistanceToPoint() = %v, want 5", q.GetDistanceToPoint(mgl64.Vec3{0, 2, 0}))
	}
}

func TestSubdivide(t *testing.T) {
	q := NewQuad(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, 4, 2, &Material{})
	parts := q.Subdivide(4, 2)
	if len(parts) != 8 {
		t.Fatalf("Subdivide(4, 2) gave %d faces, want 8", len(parts))
	}

	first := parts[0]
	if !vecAlmostEqual(first.Points[0], q.Points[0]) || !vecAlmostEqual(first.Points[2], mgl64.Vec3{-1, 0, 0}) {
		t.Errorf("first cell %v", first.Points)
	}
	if first.UV[0] != q.UV[0] || !almostEqual(first.UV[2][0], 0.25) || !almostEqual(first.UV[2][1], 0.5) {
		t.Errorf("first cell UV %v", first.UV)
	}
	last := parts[len(parts)-1]
	if !vecAlmostEqual(last.Points[2], q.Points[2]) || last.UV[2] != q.UV[2] {
		t.Errorf("last cell %v %v", last.Points, last.UV)
	}
	for i, p := range parts {
		if p.Material != q.Material || p.Normal != q.Normal {
			t.Errorf("cell %d lost material or normal", i)
		}
	}

	if got := q.Subdivide(1, 1); len(got) != 1 || got[0] != q {
		t.Error("Subdivide(1, 1) should return the face itself")
	}
	tri := NewFace([]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, nil)
	if got := tri.Subdivide(3, 3); len(got) != 1 {
		t.Error("triangles are not subdivided")
	}
}
