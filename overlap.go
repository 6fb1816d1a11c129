package cubitutil

import "fmt"

// Factory defaults of the "Manage Gaps and Volume Overlaps" panel.
const (
	DefaultOverlapMaxGap   = 0.0005
	DefaultOverlapMaxAngle = 5.0
)

// OverlapSettings are the two tunables of Cubit's overlap detection.
// Zero values fall back to the factory defaults above.
type OverlapSettings struct {
	// MaxGap is the max gap value for calculating surface overlaps.
	MaxGap float64
	// MaxAngle is the max gap angle, in degrees.
	MaxAngle float64
}

func (s *OverlapSettings) setDefaults() {
	if s.MaxGap == 0 {
		s.MaxGap = DefaultOverlapMaxGap
	}
	if s.MaxAngle == 0 {
		s.MaxAngle = DefaultOverlapMaxAngle
	}
}

// RemoveVolumeOverlaps removes all overlaps from the given volume. It sets
// the session's overlap tolerances from s, queries every volume overlapping
// the target, and issues one remove-overlap command per overlapping volume,
// modifying the target.
//
// Note that the tolerances are session-wide state: this call overwrites
// whatever values a previous caller (or the GUI panel) set, so callers that
// rely on non-default tolerances must pass them explicitly on every call.
func RemoveVolumeOverlaps(h Host, volume int, s OverlapSettings) error {
	s.setDefaults()
	if err := h.SetOverlapMaxGap(s.MaxGap); err != nil {
		return err
	}
	if err := h.SetOverlapMaxAngle(s.MaxAngle); err != nil {
		return err
	}
	candidates, err := h.Entities(Volume)
	if err != nil {
		return err
	}
	overlapping, err := h.OverlappingVolumes(volume, candidates)
	if err != nil {
		return err
	}
	for _, vid := range overlapping {
		cmd := fmt.Sprintf("remove overlap volume %d %d modify volume %d", vid, volume, volume)
		if err := h.Cmd(cmd); err != nil {
			return err
		}
	}
	return nil
}
