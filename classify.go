package cubitutil

import (
	"fmt"
	"io"
)

// Geometric type labels as reported by the session's type queries.
const (
	typePlane    = "plane"
	typeCone     = "cone"
	typeSphere   = "sphere"
	typeTorus    = "torus"
	typeSpline   = "spline"
	typeStraight = "straight"
	typeArc      = "arc"
	typeEllipse  = "ellipse"
)

// GeometryClassification holds the surface and curve ids of the active model
// bucketed by geometric type. Entities whose reported type matches none of
// the known labels appear in no bucket.
type GeometryClassification struct {
	// Surfaces by type.
	Planes  []int
	Cones   []int
	Spheres []int
	Tori    []int
	Splines []int

	// Curves by type.
	Straights    []int
	Arcs         []int
	Ellipses     []int
	SplineCurves []int
}

// ClassifyGeometry scans every surface and curve in the active model and
// buckets each by its geometric type.
func ClassifyGeometry(h Host) (GeometryClassification, error) {
	var c GeometryClassification
	surfaces, err := h.Entities(Surface)
	if err != nil {
		return c, err
	}
	for _, sid := range surfaces {
		typ, err := h.SurfaceType(sid)
		if err != nil {
			return c, err
		}
		switch typ {
		case typePlane:
			c.Planes = append(c.Planes, sid)
		case typeCone:
			c.Cones = append(c.Cones, sid)
		case typeSphere:
			c.Spheres = append(c.Spheres, sid)
		case typeTorus:
			c.Tori = append(c.Tori, sid)
		case typeSpline:
			c.Splines = append(c.Splines, sid)
		}
	}
	curves, err := h.Entities(Curve)
	if err != nil {
		return c, err
	}
	for _, cid := range curves {
		typ, err := h.CurveType(cid)
		if err != nil {
			return c, err
		}
		switch typ {
		case typeStraight:
			c.Straights = append(c.Straights, cid)
		case typeArc:
			c.Arcs = append(c.Arcs, cid)
		case typeEllipse:
			c.Ellipses = append(c.Ellipses, cid)
		case typeSpline:
			c.SplineCurves = append(c.SplineCurves, cid)
		}
	}
	return c, nil
}

// WriteSummary writes the per-bucket entity counts as formatted text.
func (c GeometryClassification) WriteSummary(w io.Writer) error {
	_, err := fmt.Fprintf(w, `Surfaces:
  plane:    %d
  cone:     %d
  sphere:   %d
  torus:    %d
  spline:   %d
Curves:
  straight: %d
  arc:      %d
  ellipse:  %d
  spline:   %d
`,
		len(c.Planes), len(c.Cones), len(c.Spheres), len(c.Tori), len(c.Splines),
		len(c.Straights), len(c.Arcs), len(c.Ellipses), len(c.SplineCurves))
	return err
}

// SplineSurfaceGroupName is the group rebuilt by HighlightSplineSurfaces.
const SplineSurfaceGroupName = "spline_surfaces"

// HighlightSplineSurfaces colors every surface in the active model by type
// (red for spline surfaces, white for everything else) and rebuilds the
// spline_surfaces group to contain exactly the spline surfaces, deleting any
// pre-existing group of that name first. Useful for eyeballing which faces
// of an imported assembly will resist structured meshing.
func HighlightSplineSurfaces(h Host) error {
	surfaces, err := h.Entities(Surface)
	if err != nil {
		return err
	}
	var splines []int
	for _, sid := range surfaces {
		typ, err := h.SurfaceType(sid)
		if err != nil {
			return err
		}
		color := "white"
		if typ == typeSpline {
			color = "red"
			splines = append(splines, sid)
		}
		if err := h.Cmd(fmt.Sprintf("color surface %d %s", sid, color)); err != nil {
			return err
		}
	}
	gid, err := h.IDFromName(SplineSurfaceGroupName)
	if err != nil {
		return err
	}
	if gid != 0 {
		if err := h.Cmd(fmt.Sprintf("delete group %d", gid)); err != nil {
			return err
		}
	}
	if err := h.Cmd(fmt.Sprintf("create group '%s'", SplineSurfaceGroupName)); err != nil {
		return err
	}
	if len(splines) == 0 {
		return nil
	}
	return h.Cmd(fmt.Sprintf("%s add surface %s", SplineSurfaceGroupName, IDList(splines)))
}
