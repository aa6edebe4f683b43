package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name           string
		outerW, outerH int
		w, h           int
		expected       Rect
	}{
		{"even fit", 20, 10, 10, 4, NewRect(5, 3, 10, 4)},
		{"odd remainder", 21, 11, 10, 4, NewRect(5, 3, 10, 4)},
		{"larger than outer", 10, 5, 14, 7, NewRect(-2, -1, 14, 7)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CenteredRect(tc.outerW, tc.outerH, tc.w, tc.h)
			if result != tc.expected {
				t.Errorf("CenteredRect() = %+v, expected %+v", result, tc.expected)
			}
		})
	}
}
