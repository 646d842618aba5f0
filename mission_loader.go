package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"
)

// MissionRecord is one ordered waypoint record: ordinal, latitude and
// longitude in degrees, altitude in feet.
type MissionRecord struct {
	Ordinal   int
	Latitude  float64
	Longitude float64
	Altitude  float64
}

// Mission holds everything the planner needs from the three mission inputs,
// already converted into planar meters.
type Mission struct {
	// Frame is the tangent-plane frame anchored at the first search-area
	// record.
	Frame *PlaneFrame
	// SearchArea is the search polygon in planar meters, CCW.
	SearchArea Polygon
	// Boundary is the boundary polygon in planar meters, CCW.
	Boundary Polygon
	// MissionPoints are the prior mission waypoints, echoed to the output.
	MissionPoints []MissionRecord
	// LastMissionPoint is the planar position the vehicle holds before
	// pathing to the search area.
	LastMissionPoint Point
}

// parseRecords reads ordered (ordinal, lat, lon[, alt]) records. Fields and
// records are both comma separated; newlines are treated as separators too,
// so one record per line and one long record stream parse the same way.
func parseRecords(data []byte, fields int) ([]MissionRecord, error) {
	tokens := strings.FieldsFunc(string(data), func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	var records []MissionRecord
	for i := 0; i+fields <= len(tokens); i += fields {
		ordinal, err := strconv.ParseFloat(strings.TrimSpace(tokens[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("record %d: bad ordinal %q: %w", len(records)+1, tokens[i], err)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(tokens[i+1]), 64)
		if err != nil {
			return nil, fmt.Errorf("record %d: bad latitude %q: %w", len(records)+1, tokens[i+1], err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(tokens[i+2]), 64)
		if err != nil {
			return nil, fmt.Errorf("record %d: bad longitude %q: %w", len(records)+1, tokens[i+2], err)
		}
		rec := MissionRecord{Ordinal: int(ordinal), Latitude: lat, Longitude: lon}
		if fields == 4 {
			alt, err := strconv.ParseFloat(strings.TrimSpace(tokens[i+3]), 64)
			if err != nil {
				return nil, fmt.Errorf("record %d: bad altitude %q: %w", len(records)+1, tokens[i+3], err)
			}
			rec.Altitude = alt
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records found")
	}
	return records, nil
}

// parseGeoJSONRings extracts the outer rings of Polygon and MultiPolygon
// features as (lon, lat) degree points, normalized to CCW winding.
func parseGeoJSONRings(data []byte) ([][]Point, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse feature collection: %w", err)
	}
	var rings [][]Point
	appendRing := func(ring orb.Ring) {
		if len(ring) == 0 {
			return
		}
		if ring.Orientation() == orb.CW {
			for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
				ring[i], ring[j] = ring[j], ring[i]
			}
		}
		// GeoJSON rings repeat the first point at the end; our rings are
		// implicitly closed.
		pts := make([]Point, 0, len(ring))
		for i, coord := range ring {
			if i == len(ring)-1 && coord == ring[0] {
				break
			}
			pts = append(pts, Point{X: coord[0], Y: coord[1]})
		}
		rings = append(rings, pts)
	}
	for _, feature := range fc.Features {
		switch geom := feature.Geometry.(type) {
		case orb.Polygon:
			if len(geom) > 0 {
				appendRing(geom[0])
			}
		case orb.MultiPolygon:
			for _, poly := range geom {
				if len(poly) > 0 {
					appendRing(poly[0])
				}
			}
		}
	}
	if len(rings) == 0 {
		return nil, fmt.Errorf("no polygon features found")
	}
	return rings, nil
}

// loadRing reads one polygon ring of (lat, lon) degree vertices from a CSV
// record file or a GeoJSON file, depending on extension.
func loadRing(path string) ([]MissionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(strings.ToLower(path), ".geojson") {
		rings, err := parseGeoJSONRings(data)
		if err != nil {
			return nil, err
		}
		records := make([]MissionRecord, 0, len(rings[0]))
		for i, pt := range rings[0] {
			records = append(records, MissionRecord{Ordinal: i + 1, Latitude: pt.Y, Longitude: pt.X})
		}
		return records, nil
	}
	return parseRecords(data, 3)
}

// LoadMission reads the three mission inputs and converts them into planar
// coordinates. The first search-area record anchors the plane frame and
// becomes the local origin; both rings are normalized to CCW order.
func LoadMission(missionPath, searchPath, boundsPath string) (*Mission, error) {
	searchRecords, err := loadRing(searchPath)
	if err != nil {
		return nil, fmt.Errorf("load search grid: %w", err)
	}
	boundsRecords, err := loadRing(boundsPath)
	if err != nil {
		return nil, fmt.Errorf("load boundary points: %w", err)
	}
	missionData, err := os.ReadFile(missionPath)
	if err != nil {
		return nil, fmt.Errorf("load mission points: %w", err)
	}
	missionRecords, err := parseRecords(missionData, 4)
	if err != nil {
		return nil, fmt.Errorf("load mission points: %w", err)
	}

	// The first search-area coordinate is the origin of the plane frame.
	anchor := searchRecords[0]
	frame := NewPlaneFrame(ToRadians(anchor.Longitude), ToRadians(anchor.Latitude))
	m := &Mission{Frame: frame, MissionPoints: missionRecords}

	m.SearchArea.AddVert(Point{X: 0, Y: 0})
	for _, rec := range searchRecords[1:] {
		m.SearchArea.AddVert(frame.ToPlane(ToRadians(rec.Longitude), ToRadians(rec.Latitude)))
	}
	if Clockwise(m.SearchArea.Vertices) {
		ReversePoints(m.SearchArea.Vertices)
	}

	for _, rec := range boundsRecords {
		m.Boundary.AddVert(frame.ToPlane(ToRadians(rec.Longitude), ToRadians(rec.Latitude)))
	}
	if Clockwise(m.Boundary.Vertices) {
		ReversePoints(m.Boundary.Vertices)
	}

	last := missionRecords[len(missionRecords)-1]
	m.LastMissionPoint = frame.ToPlane(ToRadians(last.Longitude), ToRadians(last.Latitude))

	log.Printf("Loaded mission: %d mission points, %d search vertices, %d boundary vertices\n",
		len(missionRecords), m.SearchArea.Size(), m.Boundary.Size())
	return m, nil
}

// SimplifyBoundary reduces a dense boundary polygon with Douglas-Peucker
// before routing. Thresholds are in meters; zero disables simplification.
func SimplifyBoundary(p Polygon, threshold float64) Polygon {
	if threshold <= 0 || p.Size() <= 3 {
		return p
	}
	ring := make(orb.Ring, 0, p.Size()+1)
	for _, v := range p.Vertices {
		ring = append(ring, orb.Point{v.X, v.Y})
	}
	ring = append(ring, ring[0])
	ring = simplify.DouglasPeucker(threshold).Simplify(ring).(orb.Ring)
	var out Polygon
	for i, coord := range ring {
		if i == len(ring)-1 && coord == ring[0] {
			break
		}
		out.AddVert(Point{X: coord[0], Y: coord[1]})
	}
	if out.Size() < 3 {
		return p
	}
	log.Printf("Simplified boundary: %d -> %d vertices\n", p.Size(), out.Size())
	return out
}

// WriteMissionOutput writes the final record stream: the prior mission
// points first, then the router waypoints, then the coverage waypoints, all
// comma separated with 7-digit degree precision. Path waypoints are emitted
// at the configured altitude.
func WriteMissionOutput(w io.Writer, m *Mission, interm, path []Point, altitude float64) error {
	i := 1
	writeRecord := func(lat, lon float64, alt int) error {
		var err error
		if i != 1 {
			_, err = fmt.Fprint(w, ",")
		}
		if err == nil {
			_, err = fmt.Fprintf(w, "%d,%.7f,%.7f,%d", i, lat, lon, alt)
		}
		i++
		return err
	}
	for _, rec := range m.MissionPoints {
		if err := writeRecord(rec.Latitude, rec.Longitude, int(rec.Altitude)); err != nil {
			return err
		}
	}
	for _, pt := range interm {
		lon, lat := m.Frame.ToGPS(pt)
		if err := writeRecord(ToDegrees(lat), ToDegrees(lon), int(altitude)); err != nil {
			return err
		}
	}
	for _, pt := range path {
		lon, lat := m.Frame.ToGPS(pt)
		if err := writeRecord(ToDegrees(lat), ToDegrees(lon), int(altitude)); err != nil {
			return err
		}
	}
	return nil
}
