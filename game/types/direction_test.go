package types

import "testing"

func TestDirectionToPoint(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want Point
	}{
		{"Up", UP, Point{X: 0, Y: -1}},
		{"Right", RIGHT, Point{X: 1, Y: 0}},
		{"Down", DOWN, Point{X: 0, Y: 1}},
		{"Left", LEFT, Point{X: -1, Y: 0}},
		{"None", NONE, Point{X: 0, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dir.ToPoint(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want Direction
	}{
		{"Up", UP, DOWN},
		{"Right", RIGHT, LEFT},
		{"Down", DOWN, UP},
		{"Left", LEFT, RIGHT},
		{"None", NONE, NONE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dir.Opposite(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGridContains(t *testing.T) {
	grid := Grid{Width: 10, Height: 8}

	tests := []struct {
		name string
		pos  Point
		want bool
	}{
		{"Inside", Point{X: 5, Y: 5}, true},
		{"Top left corner", Point{X: 0, Y: 0}, true},
		{"Bottom right corner", Point{X: 9, Y: 7}, true},
		{"Left of grid", Point{X: -1, Y: 5}, false},
		{"Right of grid", Point{X: 10, Y: 5}, false},
		{"Above grid", Point{X: 5, Y: -1}, false},
		{"Below grid", Point{X: 5, Y: 8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := grid.Contains(tt.pos); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}
