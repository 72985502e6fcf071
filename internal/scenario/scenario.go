// Package scenario loads slice scenarios (a polygon-with-holes, a cut
// segment, and a UV reference rectangle) from YAML files, for the CLI and
// for table-driven fixture tests built from spec §8's concrete scenarios.
//
// Grounded on arl/go-detour's sample/solomesh.Settings (a plain tagged
// struct of build parameters) and cmd/recast/cmd/utils.go's
// unmarshalYAMLFile helper, both built on gopkg.in/yaml.v2.
package scenario

import (
	"fmt"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"

	"github.com/arl/slicer2d/geom"
)

// Point2 is a YAML-friendly (x, y) pair; scenarios convert to geom.Point
// at load time so the rest of the engine never sees the wire format.
type Point2 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// Rect is the host's UV reference rectangle (spec §6): origin plus size.
type Rect struct {
	MinX   float32 `yaml:"minX"`
	MinY   float32 `yaml:"minY"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Scenario is one complete input to slicer.Slice: a polygon-with-holes,
// a directed cut segment, and the host's UV rectangle.
type Scenario struct {
	Name     string     `yaml:"name"`
	Outer    []Point2   `yaml:"outer"`
	Holes    [][]Point2 `yaml:"holes"`
	CutStart Point2     `yaml:"cutStart"`
	CutEnd   Point2     `yaml:"cutEnd"`
	RefRect  Rect       `yaml:"refRect"`
}

// Load reads and parses a scenario YAML file.
func Load(path string) (*Scenario, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(buf, &s); err != nil {
		return nil, fmt.Errorf("scenario: parsing %s: %w", path, err)
	}
	return &s, nil
}

func toPoints(pts []Point2) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = geom.NewPoint(p.X, p.Y)
	}
	return out
}

// Polygon converts the scenario's outer/hole loops to geom.Point slices.
func (s *Scenario) Polygon() geom.PolygonWithHoles {
	holes := make([][]geom.Point, len(s.Holes))
	for i, h := range s.Holes {
		holes[i] = toPoints(h)
	}
	return geom.PolygonWithHoles{Outer: toPoints(s.Outer), Holes: holes}
}

// Cut returns the scenario's cut segment endpoints as geom.Points.
func (s *Scenario) Cut() (geom.Point, geom.Point) {
	return geom.NewPoint(s.CutStart.X, s.CutStart.Y), geom.NewPoint(s.CutEnd.X, s.CutEnd.Y)
}

// RefRectSize returns the (width, height) slicer.Slice needs to extend
// the cut segment (spec §4.7 step 2).
func (s *Scenario) RefRectSize() [2]float32 {
	return [2]float32{s.RefRect.Width, s.RefRect.Height}
}
