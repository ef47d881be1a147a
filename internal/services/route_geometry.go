package services

import (
	"encoding/json"
	"sort"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	dbm "tripplanner/internal/models/db_models"
)

// routeGeoJSON draws a LineString through the stop cities in visiting order.
// Fewer than two stops have no route and yield nil.
func routeGeoJSON(stops []dbm.TripStop) (json.RawMessage, error) {
	if len(stops) < 2 {
		return nil, nil
	}

	ordered := make([]*dbm.TripStop, len(stops))
	for i := range stops {
		ordered[i] = &stops[i]
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OrderIndex < ordered[j].OrderIndex
	})

	coords := make([]geom.Coord, 0, len(ordered))
	for _, s := range ordered {
		coords = append(coords, geom.Coord{s.City.Longitude, s.City.Latitude})
	}

	line, err := geom.NewLineString(geom.XY).SetCoords(coords)
	if err != nil {
		return nil, err
	}
	b, err := gjson.Marshal(line)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(b), nil
}
