package cubitutil

import "fmt"

// DefaultGroupPrefix is the group name prefix used by VolumesToGroups when
// none is given.
const DefaultGroupPrefix = "part"

// VolumesToGroups creates one group per volume in the active model, named
// <prefix>_<id>, and adds the volume to it. An empty prefix defaults to
// DefaultGroupPrefix, producing names like part_1, part_2, part_40.
//
// Grouping volumes this way is useful when working with assemblies: the
// group structure is retained through webcutting, so whole "parts" can later
// be imprinted and merged in one operation (see ImprintMergeGroups).
//
// Name collisions are left to the session to resolve, and groups created
// before a failing iteration remain.
func VolumesToGroups(h Host, prefix string) error {
	if prefix == "" {
		prefix = DefaultGroupPrefix
	}
	volumes, err := h.Entities(Volume)
	if err != nil {
		return err
	}
	for _, vid := range volumes {
		name := fmt.Sprintf("%s_%d", prefix, vid)
		if err := h.Cmd(fmt.Sprintf("create group '%s'", name)); err != nil {
			return err
		}
		if err := h.Cmd(fmt.Sprintf("%s add volume %d", name, vid)); err != nil {
			return err
		}
	}
	return nil
}

// ImprintMergeGroups cycles through every group in the active model and, for
// each group containing more than one volume, imprints and then merges the
// group's volumes. Intended to run after VolumesToGroups on an assembly so
// shared boundaries are projected and coincident geometry unified ahead of
// hex meshing.
func ImprintMergeGroups(h Host) error {
	groups, err := h.Entities(Group)
	if err != nil {
		return err
	}
	for _, gid := range groups {
		volumes, err := h.GroupVolumes(gid)
		if err != nil {
			return err
		}
		if len(volumes) < 2 {
			continue
		}
		if err := h.Cmd("imprint vol " + IDList(volumes)); err != nil {
			return err
		}
		if err := h.Cmd("merge vol " + IDList(volumes)); err != nil {
			return err
		}
	}
	return nil
}
