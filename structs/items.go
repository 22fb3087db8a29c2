package structs

import (
	"github.com/daho94/chroute/geo"
)

//*******************************************
// graph structs
//*******************************************

type Node struct {
	Loc geo.Coord
}

// Directed edge from NodeA to NodeB.
type Edge struct {
	NodeA int32
	NodeB int32
}

//*******************************************
// shortcut struct
//*******************************************

// Shortcut replaces a two-edge path From -> via -> To created during
// contraction. Weight is the exact sum of the two child-edge weights at
// insertion time.
type Shortcut struct {
	From   int32
	To     int32
	Weight float64
}

func NewShortcut(from, to int32, weight float64) Shortcut {
	return Shortcut{
		From:   from,
		To:     to,
		Weight: weight,
	}
}
