package cubitutil

import "fmt"

type typedEntity struct {
	id  int
	typ string
}

type fakeGroup struct {
	name    string
	volumes []int
}

type fakeElement struct {
	id   int
	conn []int
}

// fakeHost answers queries from fixed tables and records every host call in
// chronological order. Commands additionally land in cmds.
type fakeHost struct {
	cmds []string
	log  []string

	volumes  []int
	groups   []fakeGroup
	surfaces []typedEntity
	curves   []typedEntity
	overlaps map[int][]int
	elems    map[EntityType][]fakeElement
}

var _ Host = (*fakeHost)(nil)

func (f *fakeHost) Cmd(command string) error {
	f.cmds = append(f.cmds, command)
	f.log = append(f.log, "cmd: "+command)
	return nil
}

func (f *fakeHost) Entities(typ EntityType) ([]int, error) {
	f.log = append(f.log, "entities: "+string(typ))
	switch typ {
	case Volume:
		return f.volumes, nil
	case Group:
		ids := make([]int, len(f.groups))
		for i := range ids {
			ids[i] = i + 1
		}
		return ids, nil
	case Surface:
		return typedIDs(f.surfaces), nil
	case Curve:
		return typedIDs(f.curves), nil
	case Hex, Pyramid, Wedge, Tet:
		var ids []int
		for _, el := range f.elems[typ] {
			ids = append(ids, el.id)
		}
		return ids, nil
	}
	return nil, fmt.Errorf("fake host: unknown entity type %q", typ)
}

func typedIDs(entities []typedEntity) []int {
	ids := make([]int, len(entities))
	for i, e := range entities {
		ids[i] = e.id
	}
	return ids
}

func (f *fakeHost) GroupVolumes(group int) ([]int, error) {
	if group < 1 || group > len(f.groups) {
		return nil, fmt.Errorf("fake host: no group %d", group)
	}
	return f.groups[group-1].volumes, nil
}

func (f *fakeHost) IDFromName(name string) (int, error) {
	for i, g := range f.groups {
		if g.name == name {
			return i + 1, nil
		}
	}
	return 0, nil
}

func (f *fakeHost) OverlappingVolumes(volume int, candidates []int) ([]int, error) {
	f.log = append(f.log, fmt.Sprintf("overlapping volumes: %d", volume))
	declared := f.overlaps[volume]
	var ids []int
	for _, c := range candidates {
		for _, d := range declared {
			if c == d {
				ids = append(ids, c)
				break
			}
		}
	}
	return ids, nil
}

func (f *fakeHost) SetOverlapMaxGap(gap float64) error {
	f.log = append(f.log, fmt.Sprintf("set max gap: %g", gap))
	return nil
}

func (f *fakeHost) SetOverlapMaxAngle(degrees float64) error {
	f.log = append(f.log, fmt.Sprintf("set max angle: %g", degrees))
	return nil
}

func (f *fakeHost) SurfaceType(surface int) (string, error) {
	for _, e := range f.surfaces {
		if e.id == surface {
			return e.typ, nil
		}
	}
	return "", fmt.Errorf("fake host: no surface %d", surface)
}

func (f *fakeHost) CurveType(curve int) (string, error) {
	for _, e := range f.curves {
		if e.id == curve {
			return e.typ, nil
		}
	}
	return "", fmt.Errorf("fake host: no curve %d", curve)
}

func (f *fakeHost) Connectivity(typ EntityType, id int) ([]int, error) {
	for _, el := range f.elems[typ] {
		if el.id == id {
			return el.conn, nil
		}
	}
	return nil, fmt.Errorf("fake host: no %s %d", typ, id)
}
