package engine

import (
	"rtm/src/models"
	"sync"
)

const (
	// BoundaryMargin keeps dragged tables at least this far apart.
	BoundaryMargin = 10

	// Table footprints on the canvas. Round tables render as a circle of
	// CircleRadius; both shapes occupy a 60x60 bounding box centered on
	// the table position.
	CircleRadius = 30
	RectSide     = 60

	defaultX = 100
	defaultY = 100
)

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Shape string

const (
	SHAPE_ROUND  Shape = "round"
	SHAPE_SQUARE Shape = "square"
)

// ShapeFor picks the rendered shape. Small tables draw round; this is a
// presentation rule keyed off capacity, not a capacity constraint.
func ShapeFor(table models.Table) Shape {
	if table.MaxCapacity <= 4 {
		return SHAPE_ROUND
	}
	return SHAPE_SQUARE
}

// Layout owns the floor-plan position state for one restaurant's tables,
// independent of whatever renders it. Moves are validated against every
// other table's footprint; an illegal move keeps the previous position.
type Layout struct {
	mu        sync.Mutex
	positions map[string]Position
	order     []string
}

// NewLayout seeds positions from the stored table coordinates. Tables that
// were never placed land at the default spot, matching what a fresh floor
// plan renders.
func NewLayout(tables []models.Table) *Layout {
	l := &Layout{positions: make(map[string]Position, len(tables))}
	for _, table := range tables {
		pos := Position{X: defaultX, Y: defaultY}
		if table.X != nil {
			pos.X = *table.X
		}
		if table.Y != nil {
			pos.Y = *table.Y
		}
		l.positions[table.ID] = pos
		l.order = append(l.order, table.ID)
	}
	return l
}

// Position returns the last accepted position for a table.
func (l *Layout) Position(tableID string) (Position, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pos, ok := l.positions[tableID]
	return pos, ok
}

func rectAt(pos Position) Rect {
	return Rect{
		X:      pos.X - RectSide/2,
		Y:      pos.Y - RectSide/2,
		Width:  RectSide,
		Height: RectSide,
	}
}

// Rect returns the table's current footprint.
func (l *Layout) Rect(tableID string) (Rect, bool) {
	pos, ok := l.Position(tableID)
	if !ok {
		return Rect{}, false
	}
	return rectAt(pos), true
}

// ProposeMove validates a drag to a new position. When the move is legal
// the position is recorded and returned; otherwise the table's last
// accepted position comes back unchanged. Rejection is silent: a blocked
// drag is a normal interaction, not an error.
func (l *Layout) ProposeMove(tableID string, pos Position) Position {
	l.mu.Lock()
	defer l.mu.Unlock()
	prev, ok := l.positions[tableID]
	if !ok {
		return Position{X: defaultX, Y: defaultY}
	}
	others := make([]Rect, 0, len(l.positions)-1)
	for _, id := range l.order {
		if id == tableID {
			continue
		}
		others = append(others, rectAt(l.positions[id]))
	}
	if !ValidateMove(rectAt(pos), others, BoundaryMargin) {
		return prev
	}
	l.positions[tableID] = pos
	return pos
}

// Add registers a newly created table at its stored or default position.
func (l *Layout) Add(table models.Table) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pos := Position{X: defaultX, Y: defaultY}
	if table.X != nil {
		pos.X = *table.X
	}
	if table.Y != nil {
		pos.Y = *table.Y
	}
	if _, exists := l.positions[table.ID]; !exists {
		l.order = append(l.order, table.ID)
	}
	l.positions[table.ID] = pos
}

// Remove drops a deleted table from the layout.
func (l *Layout) Remove(tableID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.positions, tableID)
	for i, id := range l.order {
		if id == tableID {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}
