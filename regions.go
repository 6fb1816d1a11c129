package cubitutil

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Volumetric element types considered by GroupConnectedRegions, in the order
// their group-add commands are issued.
var volumetricElements = []EntityType{Hex, Pyramid, Wedge, Tet}

// elementEdges lists the edges of each element type as 1-based local node
// index pairs, following Cubit's local node ordering.
var elementEdges = map[EntityType][][2]int{
	Hex:     {{1, 2}, {1, 4}, {1, 5}, {2, 3}, {2, 6}, {3, 4}, {3, 7}, {4, 8}, {5, 6}, {5, 8}, {6, 7}, {7, 8}},
	Pyramid: {{1, 2}, {1, 4}, {1, 5}, {2, 3}, {2, 5}, {3, 4}, {3, 5}, {4, 5}},
	Wedge:   {{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 5}, {3, 6}, {4, 5}, {4, 6}, {5, 6}},
	Tet:     {{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}},
}

var elementNodes = map[EntityType]int{Hex: 8, Pyramid: 5, Wedge: 6, Tet: 4}

// Group-add command tokens for mesh elements.
var elementToken = map[EntityType]string{Hex: "hex", Pyramid: "pyr", Wedge: "wed", Tet: "tet"}

type meshElement struct {
	typ  EntityType
	id   int
	conn []int
}

// GroupConnectedRegions finds the connected regions of the model's
// volumetric mesh and builds one group per region, named
// connected_region_<n>, containing that region's elements. A pre-existing
// group of the same name is deleted first. It returns the number of regions.
//
// Connectivity is computed from the nodal adjacency graph of all hex,
// pyramid, wedge and tet elements: two nodes are adjacent when some element
// edge joins them, and a region is a connected component of that graph.
// Regions are numbered by their smallest node id so repeated runs on the
// same mesh produce the same group names.
func GroupConnectedRegions(h Host) (int, error) {
	g := simple.NewUndirectedGraph()
	var elems []meshElement
	for _, typ := range volumetricElements {
		ids, err := h.Entities(typ)
		if err != nil {
			return 0, err
		}
		for _, id := range ids {
			conn, err := h.Connectivity(typ, id)
			if err != nil {
				return 0, err
			}
			if len(conn) != elementNodes[typ] {
				return 0, fmt.Errorf("%s %d: connectivity has %d nodes, want %d", typ, id, len(conn), elementNodes[typ])
			}
			elems = append(elems, meshElement{typ: typ, id: id, conn: conn})
			for _, e := range elementEdges[typ] {
				a, b := conn[e[0]-1], conn[e[1]-1]
				if a == b {
					continue // degenerate edge
				}
				g.SetEdge(g.NewEdge(simple.Node(a), simple.Node(b)))
			}
		}
	}
	if len(elems) == 0 {
		return 0, nil
	}

	components := topo.ConnectedComponents(g)
	sort.Slice(components, func(i, j int) bool {
		return minNodeID(components[i]) < minNodeID(components[j])
	})
	region := make(map[int64]int)
	for i, comp := range components {
		for _, n := range comp {
			region[n.ID()] = i
		}
	}

	// Every node of an element lies in the same component, so the first
	// node decides the element's region.
	buckets := make([]map[EntityType][]int, len(components))
	for _, el := range elems {
		r := region[int64(el.conn[0])]
		if buckets[r] == nil {
			buckets[r] = make(map[EntityType][]int, len(volumetricElements))
		}
		buckets[r][el.typ] = append(buckets[r][el.typ], el.id)
	}

	for i, bucket := range buckets {
		name := fmt.Sprintf("connected_region_%d", i+1)
		gid, err := h.IDFromName(name)
		if err != nil {
			return 0, err
		}
		if gid != 0 {
			if err := h.Cmd(fmt.Sprintf("delete group %d", gid)); err != nil {
				return 0, err
			}
		}
		if err := h.Cmd(fmt.Sprintf("create group '%s'", name)); err != nil {
			return 0, err
		}
		for _, typ := range volumetricElements {
			ids := bucket[typ]
			if len(ids) == 0 {
				continue
			}
			sort.Ints(ids)
			if err := h.Cmd(fmt.Sprintf("%s add %s %s", name, elementToken[typ], IDList(ids))); err != nil {
				return 0, err
			}
		}
	}
	return len(components), nil
}

func minNodeID(comp []graph.Node) int64 {
	min := comp[0].ID()
	for _, n := range comp[1:] {
		if n.ID() < min {
			min = n.ID()
		}
	}
	return min
}
