package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
}

func TestRectInner(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want Rect
	}{
		{"framed board", NewRect(0, 0, 30, 7), NewRect(1, 1, 28, 5)},
		{"offset", NewRect(4, 2, 3, 3), NewRect(5, 3, 1, 1)},
		{"bare frame", NewRect(0, 0, 2, 2), NewRect(1, 1, 0, 0)},
		{"too narrow", NewRect(3, 3, 1, 5), NewRect(3, 3, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Inner(); got != tt.want {
				t.Errorf("Inner() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestRectTile(t *testing.T) {
	inner := NewRect(0, 0, 30, 7).Inner()
	tests := []struct {
		col, row int
		want     Rect
	}{
		{0, 0, NewRect(1, 1, 4, 1)},
		{2, 0, NewRect(9, 1, 4, 1)},
		{6, 4, NewRect(25, 5, 4, 1)},
	}

	for _, tt := range tests {
		if got := inner.Tile(tt.col, tt.row, 4); got != tt.want {
			t.Errorf("Tile(%d, %d) = %+v, expected %+v", tt.col, tt.row, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
		{3, 0, 0, 0},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}
