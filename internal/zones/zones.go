// Package zones holds the fishing zone advisories shown next to the catch
// form: circular areas with an open, closed or seasonal status.
package zones

import (
	"math"
	"os"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/oceandata/fisherman-cli/internal/model"
)

// Status is the advisory status of a zone.
type Status string

const (
	StatusOpen     Status = "Open"
	StatusClosed   Status = "Closed"
	StatusSeasonal Status = "Seasonal"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusClosed, StatusSeasonal:
		return true
	}
	return false
}

const earthRadiusM = 6371000.0

// Zone is a circular fishing area.
type Zone struct {
	Name      string  `yaml:"name" json:"name"`
	Latitude  float64 `yaml:"lat" json:"latitude"`
	Longitude float64 `yaml:"lon" json:"longitude"`
	Status    Status  `yaml:"status" json:"status"`
	RadiusM   float64 `yaml:"radius_m" json:"radius_m"`
}

// Validate checks the zone definition.
func (z Zone) Validate() error {
	if strings.TrimSpace(z.Name) == "" {
		return eris.New("zones: name is required")
	}
	if err := model.ValidateCoordinates(z.Latitude, z.Longitude); err != nil {
		return eris.Wrapf(err, "zones: %s", z.Name)
	}
	if !z.Status.Valid() {
		return eris.Errorf("zones: %s: unknown status %q", z.Name, z.Status)
	}
	if z.RadiusM <= 0 {
		return eris.Errorf("zones: %s: radius must be positive", z.Name)
	}
	return nil
}

// Match is a zone containing a queried point.
type Match struct {
	Zone      Zone    `json:"zone"`
	DistanceM float64 `json:"distance_m"`
}

// Set is an immutable collection of zones.
type Set struct {
	zones []Zone
}

// NewSet validates zones and returns a Set.
func NewSet(zones []Zone) (*Set, error) {
	for _, z := range zones {
		if err := z.Validate(); err != nil {
			return nil, err
		}
	}
	out := make([]Zone, len(zones))
	copy(out, zones)
	return &Set{zones: out}, nil
}

// Default returns the built-in advisories off the Karnataka coast.
func Default() *Set {
	return &Set{zones: []Zone{
		{Name: "Zone A - High Productivity", Latitude: 12.5, Longitude: 74.5, Status: StatusOpen, RadiusM: 20000},
		{Name: "Zone B - Moderate Productivity", Latitude: 11.8, Longitude: 74.8, Status: StatusOpen, RadiusM: 25000},
		{Name: "Zone C - Protected Area", Latitude: 13.2, Longitude: 74.2, Status: StatusClosed, RadiusM: 15000},
		{Name: "Zone D - Seasonal Closure", Latitude: 12.0, Longitude: 75.0, Status: StatusSeasonal, RadiusM: 18000},
	}}
}

type fileFormat struct {
	Zones []Zone `yaml:"zones"`
}

// LoadFile reads zone definitions from a YAML file with a top-level
// "zones" list.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "zones: read %s", path)
	}

	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "zones: parse file")
	}
	if len(f.Zones) == 0 {
		return nil, eris.Errorf("zones: %s defines no zones", path)
	}
	return NewSet(f.Zones)
}

// Load returns the zones in path, or the defaults when path is empty.
func Load(path string) (*Set, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// All returns a copy of the zones in definition order.
func (s *Set) All() []Zone {
	out := make([]Zone, len(s.zones))
	copy(out, s.zones)
	return out
}

// Locate returns the zones containing the point, nearest center first.
func (s *Set) Locate(lat, lon float64) []Match {
	var matches []Match
	for _, z := range s.zones {
		d := Distance(lat, lon, z.Latitude, z.Longitude)
		if d <= z.RadiusM {
			matches = append(matches, Match{Zone: z, DistanceM: d})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceM < matches[j].DistanceM
	})
	return matches
}

// Distance returns the great-circle distance in meters (haversine).
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := lat1 * math.Pi / 180
	p2 := lat2 * math.Pi / 180
	dp := (lat2 - lat1) * math.Pi / 180
	dl := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dp/2)*math.Sin(dp/2) + math.Cos(p1)*math.Cos(p2)*math.Sin(dl/2)*math.Sin(dl/2)
	return 2 * earthRadiusM * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// destination returns the point reached from (lat, lon) after travelling
// dist meters on the given bearing (degrees clockwise from north).
func destination(lat, lon, dist, bearing float64) (float64, float64) {
	p1 := lat * math.Pi / 180
	l1 := lon * math.Pi / 180
	theta := bearing * math.Pi / 180
	delta := dist / earthRadiusM

	p2 := math.Asin(math.Sin(p1)*math.Cos(delta) + math.Cos(p1)*math.Sin(delta)*math.Cos(theta))
	l2 := l1 + math.Atan2(math.Sin(theta)*math.Sin(delta)*math.Cos(p1), math.Cos(delta)-math.Sin(p1)*math.Sin(p2))
	return p2 * 180 / math.Pi, l2 * 180 / math.Pi
}

// ring approximates the zone boundary as a closed clockwise ring of
// [lon, lat] pairs.
func (z Zone) ring(segments int) [][2]float64 {
	pts := make([][2]float64, 0, segments+1)
	for i := 0; i < segments; i++ {
		lat, lon := destination(z.Latitude, z.Longitude, z.RadiusM, 360*float64(i)/float64(segments))
		pts = append(pts, [2]float64{lon, lat})
	}
	return append(pts, pts[0])
}
