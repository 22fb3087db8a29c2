package graph

import (
	"errors"
)

//*******************************************
// errors
//*******************************************

var (
	// A node id outside the graph's node table.
	ErrInvalidNodeID = errors.New("invalid node id")
	// An edge weight below zero.
	ErrNegativeWeight = errors.New("negative edge weight")
	// A CH query against a graph that has not been contracted.
	ErrGraphNotContracted = errors.New("graph has not been contracted")
)
