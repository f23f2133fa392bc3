package engine

import (
	"rtm/src/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tableAt(id string, x, y float64) models.Table {
	return models.Table{ID: id, MinCapacity: 2, MaxCapacity: 4, X: &x, Y: &y}
}

func TestNewLayoutDefaultsUnplacedTables(t *testing.T) {
	l := NewLayout([]models.Table{{ID: "t1", MinCapacity: 2, MaxCapacity: 4}})
	pos, ok := l.Position("t1")
	assert.True(t, ok)
	assert.Equal(t, Position{X: 100, Y: 100}, pos)
}

func TestProposeMoveAccepted(t *testing.T) {
	l := NewLayout([]models.Table{
		tableAt("t1", 100, 100),
		tableAt("t2", 300, 300),
	})
	got := l.ProposeMove("t1", Position{X: 150, Y: 100})
	assert.Equal(t, Position{X: 150, Y: 100}, got)

	pos, _ := l.Position("t1")
	assert.Equal(t, got, pos, "accepted move is recorded")
}

func TestProposeMoveRejectedKeepsPreviousPosition(t *testing.T) {
	l := NewLayout([]models.Table{
		tableAt("t1", 100, 100),
		tableAt("t2", 200, 100),
	})
	// 60x60 footprints expanded by the 10-unit margin collide at this range.
	got := l.ProposeMove("t1", Position{X: 170, Y: 100})
	assert.Equal(t, Position{X: 100, Y: 100}, got)

	pos, _ := l.Position("t1")
	assert.Equal(t, Position{X: 100, Y: 100}, pos, "rejected move leaves state unchanged")
}

func TestProposeMoveNeverOverlaps(t *testing.T) {
	l := NewLayout([]models.Table{
		tableAt("t1", 100, 100),
		tableAt("t2", 200, 100),
		tableAt("t3", 200, 200),
	})
	candidates := []Position{
		{X: 180, Y: 100},
		{X: 200, Y: 150},
		{X: 500, Y: 500},
		{X: 160, Y: 160},
	}
	for _, cand := range candidates {
		accepted := l.ProposeMove("t1", cand)
		rect, ok := l.Rect("t1")
		assert.True(t, ok)
		for _, other := range []string{"t2", "t3"} {
			otherRect, _ := l.Rect(other)
			assert.False(t,
				Intersects(Expand(rect, BoundaryMargin), Expand(otherRect, BoundaryMargin)),
				"accepted position %v overlaps %s", accepted, other)
		}
	}
}

func TestProposeMoveUnknownTable(t *testing.T) {
	l := NewLayout(nil)
	got := l.ProposeMove("ghost", Position{X: 50, Y: 50})
	assert.Equal(t, Position{X: 100, Y: 100}, got)
}

func TestLayoutAddRemove(t *testing.T) {
	l := NewLayout([]models.Table{tableAt("t1", 100, 100)})
	l.Add(tableAt("t2", 400, 400))

	got := l.ProposeMove("t2", Position{X: 120, Y: 100})
	assert.Equal(t, Position{X: 400, Y: 400}, got, "move next to t1 is rejected")

	l.Remove("t1")
	got = l.ProposeMove("t2", Position{X: 120, Y: 100})
	assert.Equal(t, Position{X: 120, Y: 100}, got, "same move passes once t1 is gone")
}

func TestShapeFor(t *testing.T) {
	assert.Equal(t, SHAPE_ROUND, ShapeFor(models.Table{MaxCapacity: 4}))
	assert.Equal(t, SHAPE_ROUND, ShapeFor(models.Table{MaxCapacity: 2}))
	assert.Equal(t, SHAPE_SQUARE, ShapeFor(models.Table{MaxCapacity: 5}))
	assert.Equal(t, SHAPE_SQUARE, ShapeFor(models.Table{MaxCapacity: 10}))
}
