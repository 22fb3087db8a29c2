package parser

import (
	"context"
	"os"
	"runtime"

	"github.com/daho94/chroute/comps"
	"github.com/daho94/chroute/geo"
	"github.com/daho94/chroute/graph"
	. "github.com/daho94/chroute/util"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/pkg/errors"
	"golang.org/x/exp/slog"
)

//*******************************************
// osm parser
//*******************************************

var driving_speeds = Dict[string, float64]{
	"motorway": 110, "motorway_link": 50, "trunk": 90, "trunk_link": 50,
	"primary": 70, "primary_link": 40, "secondary": 60, "secondary_link": 40,
	"tertiary": 50, "tertiary_link": 30, "residential": 30, "living_street": 10,
	"service": 20, "track": 15, "unclassified": 40, "road": 40,
}

type _TempNode struct {
	point geo.Coord
	used  bool
}

// Parses a pbf file into graph components. Way segments become directed
// edges weighted by travel time; two-way roads get one edge per
// direction. Node deduplication and dense-id allocation happen here.
func ParseGraph(pbf_file string) (*comps.GraphBase, *comps.DefaultWeighting, error) {
	file, err := os.Open(pbf_file)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open pbf file")
	}
	defer file.Close()

	osm_nodes := NewDict[int64, _TempNode](10000)

	// first pass: mark nodes referenced by drivable ways
	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		tags := Dict[string, string](way.TagMap())
		if !_IsDrivable(tags) {
			continue
		}
		for _, nd := range way.Nodes.NodeIDs() {
			osm_nodes[nd.FeatureID().Ref()] = _TempNode{}
		}
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, nil, errors.Wrap(err, "failed to scan pbf ways")
	}
	scanner.Close()

	// second pass: read locations of the marked nodes
	file.Seek(0, 0)
	scanner = osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		ref := node.FeatureID().Ref()
		if !osm_nodes.ContainsKey(ref) {
			continue
		}
		osm_nodes[ref] = _TempNode{
			point: geo.Coord{float32(node.Lon), float32(node.Lat)},
			used:  true,
		}
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, nil, errors.Wrap(err, "failed to scan pbf nodes")
	}
	scanner.Close()

	// third pass: build edges between consecutive way nodes
	builder := graph.NewGraphBuilder()
	index_mapping := NewDict[int64, int32](len(osm_nodes))

	file.Seek(0, 0)
	scanner = osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		tags := Dict[string, string](way.TagMap())
		if !_IsDrivable(tags) {
			continue
		}
		speed := driving_speeds[tags.Get("highway")]
		oneway := tags.Get("oneway") == "yes" || tags.Get("highway") == "motorway"

		refs := way.Nodes.NodeIDs()
		for i := 0; i < len(refs)-1; i++ {
			ref_a := refs[i].FeatureID().Ref()
			ref_b := refs[i+1].FeatureID().Ref()
			temp_a := osm_nodes[ref_a]
			temp_b := osm_nodes[ref_b]
			if !temp_a.used || !temp_b.used {
				continue
			}
			node_a := _MapNode(builder, index_mapping, ref_a, temp_a.point)
			node_b := _MapNode(builder, index_mapping, ref_b, temp_b.point)
			weight := geo.HaversineDist(temp_a.point, temp_b.point) / (speed / 3.6)
			if _, err := builder.AddEdge(node_a, node_b, weight); err != nil {
				return nil, nil, err
			}
			if !oneway {
				if _, err := builder.AddEdge(node_b, node_a, weight); err != nil {
					return nil, nil, err
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, nil, errors.Wrap(err, "failed to scan pbf ways")
	}
	scanner.Close()

	base, weight := builder.Build()
	slog.Info("finished parsing pbf file",
		slog.Int("nodes", base.NodeCount()),
		slog.Int("edges", base.EdgeCount()))
	return base, weight, nil
}

func _IsDrivable(tags Dict[string, string]) bool {
	if !tags.ContainsKey("highway") {
		return false
	}
	return driving_speeds.ContainsKey(tags.Get("highway"))
}

func _MapNode(builder *graph.GraphBuilder, index_mapping Dict[int64, int32], ref int64, point geo.Coord) int32 {
	if index_mapping.ContainsKey(ref) {
		return index_mapping[ref]
	}
	id := builder.AddNode(point)
	index_mapping[ref] = id
	return id
}
