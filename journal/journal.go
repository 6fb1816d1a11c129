// Package journal runs the cubitutil helpers without a live session,
// streaming every command to a writer instead. The output is a Cubit
// journal file suitable for batch playback ("cubit -batch out.jou").
//
// Queries are answered from a declared Model rather than real geometry, so
// only helpers whose inputs the model can describe (volumes, group
// membership, known overlaps) can be journaled. Mesh and geometry-type
// queries return errors.
package journal

import (
	"fmt"
	"io"

	cubitutil "github.com/GregVernon/coreform-cubit-utilities"
)

// Model declares the entities a journal run assumes exist in the target
// session. Group ids are positional: the i-th group has id i+1.
type Model struct {
	// Volumes are the volume ids of the model.
	Volumes []int
	// Groups are the groups already present in the session.
	Groups []Group
	// Overlaps maps a volume id to the volume ids known to overlap it.
	Overlaps map[int][]int
}

// Group is a named collection of volumes.
type Group struct {
	Name    string
	Volumes []int
}

// Host implements cubitutil.Host against a declared Model, writing every
// command line to W.
type Host struct {
	W     io.Writer
	Model Model
}

var _ cubitutil.Host = (*Host)(nil)

// Cmd writes the command as one journal line.
func (h *Host) Cmd(command string) error {
	_, err := fmt.Fprintln(h.W, command)
	return err
}

func (h *Host) Entities(typ cubitutil.EntityType) ([]int, error) {
	switch typ {
	case cubitutil.Volume:
		return append([]int(nil), h.Model.Volumes...), nil
	case cubitutil.Group:
		ids := make([]int, len(h.Model.Groups))
		for i := range ids {
			ids[i] = i + 1
		}
		return ids, nil
	}
	return nil, fmt.Errorf("journal: cannot enumerate %s entities without a live session", typ)
}

func (h *Host) GroupVolumes(group int) ([]int, error) {
	if group < 1 || group > len(h.Model.Groups) {
		return nil, fmt.Errorf("journal: no group with id %d", group)
	}
	return append([]int(nil), h.Model.Groups[group-1].Volumes...), nil
}

func (h *Host) IDFromName(name string) (int, error) {
	for i, g := range h.Model.Groups {
		if g.Name == name {
			return i + 1, nil
		}
	}
	return 0, nil
}

// OverlappingVolumes filters the candidates against the model's declared
// overlaps, preserving candidate order like a live session would.
func (h *Host) OverlappingVolumes(volume int, candidates []int) ([]int, error) {
	declared := h.Model.Overlaps[volume]
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

func (h *Host) SetOverlapMaxGap(gap float64) error {
	return h.Cmd(fmt.Sprintf("set overlap max gap %g", gap))
}

func (h *Host) SetOverlapMaxAngle(degrees float64) error {
	return h.Cmd(fmt.Sprintf("set overlap max angle %g", degrees))
}

func (h *Host) SurfaceType(int) (string, error) { return "", errLive("surface type") }

func (h *Host) CurveType(int) (string, error) { return "", errLive("curve type") }

func (h *Host) Connectivity(cubitutil.EntityType, int) ([]int, error) {
	return nil, errLive("element connectivity")
}

func errLive(what string) error {
	return fmt.Errorf("journal: %s queries require a live session", what)
}
