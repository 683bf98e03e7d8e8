// Package rules defines the Offset and Rule value types shared by the
// RuleSet and the wave solver.
package rules

// Offset is a 2-D integer displacement between grid cells.
// Screen coordinates: X grows rightward, Y grows downward.
// Offsets are directed; nothing derives the inverse automatically.
type Offset struct {
	DX, DY int
}

// The four orthogonal unit offsets. Sample analysis registers rules for
// these; arbitrary offsets are equally valid rule keys.
var (
	// Left is one cell toward negative X.
	Left = Offset{DX: -1, DY: 0}
	// Right is one cell toward positive X.
	Right = Offset{DX: 1, DY: 0}
	// Up is one cell toward negative Y.
	Up = Offset{DX: 0, DY: -1}
	// Down is one cell toward positive Y.
	Down = Offset{DX: 0, DY: 1}
)

// Inverse returns the opposite displacement. Convenience only — callers
// registering symmetric constraints must add both rules explicitly.
func (o Offset) Inverse() Offset {
	return Offset{DX: -o.DX, DY: -o.DY}
}

// Rule is a directed adjacency constraint: Neighbor may occupy the cell
// at Subject's position + Off.
//
// Rule{Neighbor: SEA, Subject: COAST, Off: Left} means SEA can exist one
// cell to the left of COAST.
type Rule struct {
	Neighbor int    // id allowed at Subject's position + Off
	Subject  int    // id anchoring the constraint
	Off      Offset // displacement from Subject to Neighbor
}
