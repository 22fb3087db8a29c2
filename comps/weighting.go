package comps

import (
	. "github.com/daho94/chroute/util"
)

//*******************************************
// weighting interface
//*******************************************

type IWeighting interface {
	GetEdgeWeight(edge int32) float64
}

//*******************************************
// default weighting
//*******************************************

var _ IWeighting = &DefaultWeighting{}

type DefaultWeighting struct {
	edge_weights List[float64]
}

func NewDefaultWeighting() *DefaultWeighting {
	return &DefaultWeighting{
		edge_weights: NewList[float64](100),
	}
}

func (self *DefaultWeighting) GetEdgeWeight(edge int32) float64 {
	return self.edge_weights[edge]
}
func (self *DefaultWeighting) SetEdgeWeight(edge int32, weight float64) {
	self.edge_weights[edge] = weight
}
func (self *DefaultWeighting) AddEdgeWeight(weight float64) {
	self.edge_weights.Add(weight)
}
func (self *DefaultWeighting) EdgeCount() int {
	return self.edge_weights.Length()
}

//*******************************************
// encode and decode
//*******************************************

func (self *DefaultWeighting) Encode(writer BufferWriter) {
	WriteArray[float64](writer, Array[float64](self.edge_weights))
}

func DecodeDefaultWeighting(reader BufferReader) *DefaultWeighting {
	weights := ReadArray[float64](reader)
	return &DefaultWeighting{
		edge_weights: List[float64](weights),
	}
}
