package geo

import (
	"math"

	geojson "github.com/paulmach/go.geojson"
)

//*******************************************
// geometry types
//*******************************************

// Coord is a lon/lat pair.
type Coord [2]float32

func (self Coord) Lon() float32 {
	return self[0]
}
func (self Coord) Lat() float32 {
	return self[1]
}

type CoordArray []Coord

//*******************************************
// distance
//*******************************************

const earth_radius = 6371000.0

// Great-circle distance between two coordinates in meters.
func HaversineDist(a, b Coord) float64 {
	lat1 := float64(a.Lat()) * math.Pi / 180
	lat2 := float64(b.Lat()) * math.Pi / 180
	dlat := lat2 - lat1
	dlon := (float64(b.Lon()) - float64(a.Lon())) * math.Pi / 180

	h := math.Sin(dlat/2)*math.Sin(dlat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	return 2 * earth_radius * math.Asin(math.Sqrt(h))
}

//*******************************************
// geojson features
//*******************************************

func NewLineStringFeature(coords CoordArray) *geojson.Feature {
	line := make([][]float64, len(coords))
	for i, c := range coords {
		line[i] = []float64{float64(c.Lon()), float64(c.Lat())}
	}
	return geojson.NewLineStringFeature(line)
}

func NewFeatureCollection(features []*geojson.Feature) *geojson.FeatureCollection {
	collection := geojson.NewFeatureCollection()
	for _, feature := range features {
		collection.AddFeature(feature)
	}
	return collection
}
