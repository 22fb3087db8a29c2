package main

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"

	"github.com/daho94/chroute/geo"
	"github.com/daho94/chroute/routing"
	"golang.org/x/exp/slog"
)

//**********************************************************
// routing requests and responses
//**********************************************************

type RoutingRequest struct {
	Start []float32 `json:"start"`
	End   []float32 `json:"end"`
	Alg   string    `json:"algorithm"`
}

type RoutingResponse struct {
	Routes       *geojson.FeatureCollection `json:"routes"`
	Weight       float64                    `json:"weight"`
	NodesSettled int                        `json:"nodes_settled"`
	DurationMS   float64                    `json:"duration_ms"`
}

func NewRoutingResponse(path routing.Path, stats routing.SearchStats, coords geo.CoordArray) RoutingResponse {
	feature := geo.NewLineStringFeature(coords)
	return RoutingResponse{
		Routes:       geo.NewFeatureCollection([]*geojson.Feature{feature}),
		Weight:       path.GetWeight(),
		NodesSettled: stats.NodesSettled,
		DurationMS:   float64(stats.Duration.Microseconds()) / 1000,
	}
}

//**********************************************************
// routing handlers
//**********************************************************

func HandleRoutingRequest(req RoutingRequest) Result {
	if len(req.Start) != 2 || len(req.End) != 2 {
		return BadRequest("start and end must be [lon, lat] pairs")
	}
	start := geo.Coord{req.Start[0], req.Start[1]}
	end := geo.Coord{req.End[0], req.End[1]}

	ch_graph := SERVER.GetCHGraph()
	if ch_graph == nil {
		return BadRequest("no contracted graph loaded")
	}
	start_node, ok := ch_graph.GetClosestNode(start)
	if !ok {
		return BadRequest("no node close to start found")
	}
	end_node, ok := ch_graph.GetClosestNode(end)
	if !ok {
		return BadRequest("no node close to end found")
	}

	var alg routing.IShortestPath
	switch req.Alg {
	case "Dijkstra":
		alg = routing.NewDijkstra(ch_graph)
	case "A*":
		alg = routing.NewAStar(ch_graph)
	case "CH", "":
		alg = routing.NewCHRouting(ch_graph)
	default:
		return BadRequest(fmt.Sprintf("unknown algorithm: %v", req.Alg))
	}

	found, err := alg.CalcShortestPath(start_node, end_node)
	if err != nil {
		return BadRequest(err.Error())
	}
	if !found {
		return BadRequest("no route between start and end")
	}
	path := alg.GetShortestPath()
	slog.Debug("shortest path found",
		slog.Float64("weight", path.GetWeight()),
		slog.Int("nodes_settled", alg.Stats().NodesSettled))
	return OK(NewRoutingResponse(path, alg.Stats(), path.GetGeometry(ch_graph)))
}
