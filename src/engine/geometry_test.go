package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 60, Height: 40}
	got := Expand(r, 10)
	assert.Equal(t, Rect{X: 0, Y: 10, Width: 80, Height: 60}, got)
}

func TestExpandZeroMargin(t *testing.T) {
	r := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	assert.Equal(t, r, Expand(r, 0))
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "overlapping",
			a:    Rect{X: 0, Y: 0, Width: 50, Height: 50},
			b:    Rect{X: 25, Y: 25, Width: 50, Height: 50},
			want: true,
		},
		{
			name: "disjoint on x",
			a:    Rect{X: 0, Y: 0, Width: 50, Height: 50},
			b:    Rect{X: 100, Y: 0, Width: 50, Height: 50},
			want: false,
		},
		{
			name: "disjoint on y",
			a:    Rect{X: 0, Y: 0, Width: 50, Height: 50},
			b:    Rect{X: 0, Y: 200, Width: 50, Height: 50},
			want: false,
		},
		{
			name: "touching edges",
			a:    Rect{X: 0, Y: 0, Width: 50, Height: 50},
			b:    Rect{X: 50, Y: 0, Width: 50, Height: 50},
			want: true,
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 40, Y: 40, Width: 10, Height: 10},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Intersects(tt.a, tt.b))
			// symmetry
			assert.Equal(t, Intersects(tt.a, tt.b), Intersects(tt.b, tt.a))
		})
	}
}

func TestValidateMove(t *testing.T) {
	others := []Rect{
		{X: 100, Y: 100, Width: 60, Height: 60},
		{X: 300, Y: 100, Width: 60, Height: 60},
	}

	// Far from everything.
	assert.True(t, ValidateMove(Rect{X: 500, Y: 500, Width: 60, Height: 60}, others, 10))

	// Directly on top of an existing table.
	assert.False(t, ValidateMove(Rect{X: 110, Y: 110, Width: 60, Height: 60}, others, 10))

	// Clear of the rect itself but inside the margin halo.
	assert.False(t, ValidateMove(Rect{X: 170, Y: 100, Width: 60, Height: 60}, others, 10))

	// Same spot passes once margins are off and rects no longer touch.
	assert.True(t, ValidateMove(Rect{X: 161, Y: 161, Width: 60, Height: 60}, others, 0))
}

func TestValidateMoveNoNeighbors(t *testing.T) {
	assert.True(t, ValidateMove(Rect{X: 0, Y: 0, Width: 60, Height: 60}, nil, 10))
}
