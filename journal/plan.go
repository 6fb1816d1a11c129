package journal

import (
	"fmt"
	"io"

	cubitutil "github.com/GregVernon/coreform-cubit-utilities"
	"gopkg.in/yaml.v2"
)

// Plan describes a model and the helper operations to journal against it.
//
// Example plan file:
//
//	prefix: part
//	volumes: [1, 2, 3]
//	groups:
//	  - name: part_3
//	    volumes: [3, 5, 9]
//	operations: [groups, imprint-merge, remove-overlaps]
//	remove_overlaps:
//	  - volume: 101
//	    overlapping: [2, 3]
//	    max_gap: 0.0005
//	    max_angle: 5.0
type Plan struct {
	// Prefix is the group name prefix for the "groups" operation.
	// Empty means cubitutil.DefaultGroupPrefix.
	Prefix string `yaml:"prefix"`
	// Volumes are the volume ids assumed to exist in the session.
	Volumes []int `yaml:"volumes"`
	// Groups are groups assumed to already exist, e.g. from an earlier
	// journaled "groups" run.
	Groups []PlanGroup `yaml:"groups"`
	// Operations are run in order. Known operations: "groups",
	// "imprint-merge", "remove-overlaps".
	Operations []string `yaml:"operations"`
	// RemoveOverlaps configures the "remove-overlaps" operation.
	RemoveOverlaps []OverlapSpec `yaml:"remove_overlaps"`
}

// PlanGroup declares a group and its member volumes.
type PlanGroup struct {
	Name    string `yaml:"name"`
	Volumes []int  `yaml:"volumes"`
}

// OverlapSpec names a volume, the volumes known to overlap it, and the
// overlap tolerances to journal. Zero tolerances use the factory defaults.
type OverlapSpec struct {
	Volume      int     `yaml:"volume"`
	Overlapping []int   `yaml:"overlapping"`
	MaxGap      float64 `yaml:"max_gap"`
	MaxAngle    float64 `yaml:"max_angle"`
}

// ReadPlan parses a YAML plan.
func ReadPlan(r io.Reader) (Plan, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Plan{}, err
	}
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("journal: parsing plan: %w", err)
	}
	return p, nil
}

// Run executes the plan's operations against a journal host, writing the
// resulting journal to w.
func (p Plan) Run(w io.Writer) error {
	h := &Host{W: w, Model: p.model()}
	for _, op := range p.Operations {
		switch op {
		case "groups":
			if err := cubitutil.VolumesToGroups(h, p.Prefix); err != nil {
				return err
			}
		case "imprint-merge":
			if err := cubitutil.ImprintMergeGroups(h); err != nil {
				return err
			}
		case "remove-overlaps":
			for _, spec := range p.RemoveOverlaps {
				settings := cubitutil.OverlapSettings{MaxGap: spec.MaxGap, MaxAngle: spec.MaxAngle}
				if err := cubitutil.RemoveVolumeOverlaps(h, spec.Volume, settings); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("journal: unknown operation %q", op)
		}
	}
	return nil
}

func (p Plan) model() Model {
	m := Model{Volumes: p.Volumes}
	for _, g := range p.Groups {
		m.Groups = append(m.Groups, Group{Name: g.Name, Volumes: g.Volumes})
	}
	if len(p.RemoveOverlaps) > 0 {
		m.Overlaps = make(map[int][]int, len(p.RemoveOverlaps))
		for _, spec := range p.RemoveOverlaps {
			m.Overlaps[spec.Volume] = spec.Overlapping
		}
	}
	return m
}
