package graph

import (
	"github.com/daho94/chroute/comps"
	. "github.com/daho94/chroute/util"
	"github.com/pkg/errors"
)

//*******************************************
// graph persistence
//*******************************************

// Binary framing: magic, format version, then the graph components in
// fixed order (base, weights, ch-data).
const (
	_FILE_MAGIC   int32 = 0x43484752
	_FILE_VERSION int32 = 1
)

func StoreCHGraph(g *CHGraph, file string) error {
	writer := NewBufferWriter()
	Write[int32](writer, _FILE_MAGIC)
	Write[int32](writer, _FILE_VERSION)

	base, ok := g.base.(*comps.GraphBase)
	if !ok {
		return errors.New("graph base is not storeable")
	}
	weight, ok := g.weight.(*comps.DefaultWeighting)
	if !ok {
		return errors.New("graph weighting is not storeable")
	}
	base.Encode(writer)
	weight.Encode(writer)
	g.ch.Encode(writer)

	return WriteBytesToFile(writer.Bytes(), file)
}

func LoadCHGraph(file string) (*CHGraph, error) {
	data, err := ReadBytesFromFile(file)
	if err != nil {
		return nil, err
	}
	reader := NewBufferReader(data)

	magic := Read[int32](reader)
	if magic != _FILE_MAGIC {
		return nil, errors.Errorf("not a graph file: %s", file)
	}
	version := Read[int32](reader)
	if version != _FILE_VERSION {
		return nil, errors.Errorf("unsupported graph format version %d", version)
	}

	base := comps.DecodeGraphBase(reader)
	weight := comps.DecodeDefaultWeighting(reader)
	ch := comps.DecodeCH(reader)

	return BuildCHGraph(base, weight, nil, ch), nil
}
