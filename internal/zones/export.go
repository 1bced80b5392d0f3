package zones

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// boundarySegments is the vertex count used to approximate zone circles.
const boundarySegments = 64

// Polygon returns the zone boundary as a WGS84 polygon. The exterior ring
// is counter-clockwise as GeoJSON expects.
func (z Zone) Polygon() (*geom.Polygon, error) {
	ring := z.ring(boundarySegments)
	flat := make([]float64, 0, 2*len(ring))
	for i := len(ring) - 1; i >= 0; i-- {
		flat = append(flat, ring[i][0], ring[i][1])
	}

	poly := geom.NewPolygon(geom.XY).SetSRID(4326)
	if err := poly.Push(geom.NewLinearRingFlat(geom.XY, flat)); err != nil {
		return nil, eris.Wrapf(err, "zones: build polygon for %s", z.Name)
	}
	return poly, nil
}

// GeoJSON encodes the set as a FeatureCollection of zone polygons.
func (s *Set) GeoJSON() ([]byte, error) {
	fc := geojson.FeatureCollection{}
	for i, z := range s.zones {
		poly, err := z.Polygon()
		if err != nil {
			return nil, err
		}
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       strconv.Itoa(i + 1),
			Geometry: poly,
			Properties: map[string]interface{}{
				"name":       z.Name,
				"status":     string(z.Status),
				"radius_m":   z.RadiusM,
				"center_lat": z.Latitude,
				"center_lon": z.Longitude,
			},
		})
	}

	data, err := json.Marshal(&fc)
	if err != nil {
		return nil, eris.Wrap(err, "zones: encode geojson")
	}
	return data, nil
}

// WriteShapefile writes the zone polygons to path (.shp plus sidecar
// .shx/.dbf files) with NAME, STATUS and RADIUS_M attributes.
func (s *Set) WriteShapefile(path string) error {
	w, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		return eris.Wrapf(err, "zones: create shapefile %s", path)
	}
	defer w.Close()

	w.SetFields([]shp.Field{
		shp.StringField("NAME", 64),
		shp.StringField("STATUS", 16),
		shp.FloatField("RADIUS_M", 12, 1),
	})

	for _, z := range s.zones {
		ring := z.ring(boundarySegments)
		pts := make([]shp.Point, len(ring))
		for i, p := range ring {
			pts[i] = shp.Point{X: p[0], Y: p[1]}
		}
		poly := shp.Polygon(*shp.NewPolyLine([][]shp.Point{pts}))

		row := int(w.Write(&poly))
		for field, v := range []interface{}{z.Name, string(z.Status), z.RadiusM} {
			if err := w.WriteAttribute(row, field, v); err != nil {
				return eris.Wrapf(err, "zones: write attribute for %s", z.Name)
			}
		}
	}
	return nil
}

// WriteXLSX writes the zone table as a single-sheet workbook.
func (s *Set) WriteXLSX(out io.Writer) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Zones")
	if err != nil {
		return eris.Wrap(err, "zones: add sheet")
	}

	header := sheet.AddRow()
	for _, h := range []string{"Name", "Status", "Latitude", "Longitude", "Radius (m)"} {
		header.AddCell().SetString(h)
	}

	for _, z := range s.zones {
		row := sheet.AddRow()
		row.AddCell().SetString(z.Name)
		row.AddCell().SetString(string(z.Status))
		row.AddCell().SetFloat(z.Latitude)
		row.AddCell().SetFloat(z.Longitude)
		row.AddCell().SetFloat(z.RadiusM)
	}

	if err := f.Write(out); err != nil {
		return eris.Wrap(err, "zones: write xlsx")
	}
	return nil
}
