package core

import (
	"math"
	"testing"
)

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 40, 40),
			b:        NewBox(20, 20, 40, 40),
			expected: true,
		},
		{
			name:     "far apart",
			a:        NewBox(0, 0, 40, 40),
			b:        NewBox(200, 200, 40, 40),
			expected: false,
		},
		{
			name:     "edge to edge horizontal",
			a:        NewBox(0, 0, 40, 40),
			b:        NewBox(40, 0, 40, 40),
			expected: false,
		},
		{
			name:     "edge to edge vertical",
			a:        NewBox(0, 0, 40, 40),
			b:        NewBox(0, 40, 40, 40),
			expected: false,
		},
		{
			name:     "raw overlap inside the margin",
			a:        NewBox(0, 0, 40, 40),
			b:        NewBox(30, 0, 40, 40),
			expected: false,
		},
		{
			name:     "inner boxes barely overlapping",
			a:        NewBox(0, 0, 40, 40),
			b:        NewBox(27, 0, 40, 40),
			expected: true,
		},
		{
			name:     "small box contained in big one",
			a:        NewBox(0, 0, 70, 70),
			b:        NewBox(30, 30, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxOverlapsSelf(t *testing.T) {
	boxes := []Box{
		NewBox(0, 0, 40, 40),
		NewBox(-10, 5, 1, 1),
		NewBox(123.5, 77.25, 70, 70),
	}
	for _, b := range boxes {
		if !b.Overlaps(b) {
			t.Errorf("box %+v should overlap itself", b)
		}
	}
}

func TestTouchingRawBoxesSeparatedByMargin(t *testing.T) {
	a := NewBox(100, 100, 40, 40)
	b := NewBox(140, 100, 40, 40)

	if !a.Touches(b) {
		t.Fatal("raw boxes sharing an edge should touch")
	}

	// Inner boxes are 12 units apart (6 trimmed from each side)
	gap := b.Inset(DefaultHitMargin).X - a.Inset(DefaultHitMargin).Right()
	if math.Abs(gap-12) > 1e-9 {
		t.Errorf("gap after margin = %f, expected 12", gap)
	}

	if a.Overlaps(b) {
		t.Error("Overlaps should be false once the margin separates the boxes")
	}
}

func TestBoxInset(t *testing.T) {
	b := NewBox(10, 20, 40, 60).Inset(0.15)

	want := NewBox(16, 29, 28, 42)
	const eps = 1e-9
	if math.Abs(b.X-want.X) > eps || math.Abs(b.Y-want.Y) > eps ||
		math.Abs(b.W-want.W) > eps || math.Abs(b.H-want.H) > eps {
		t.Errorf("Inset() = %+v, expected %+v", b, want)
	}
}

func TestBoxCenter(t *testing.T) {
	cx, cy := NewBox(160, 530, 40, 40).Center()
	if cx != 180 || cy != 550 {
		t.Errorf("Center() = (%f, %f), expected (180, 550)", cx, cy)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
