// Package cubitutil automates repetitive command sequences in a Coreform
// Cubit session: per-part grouping, batch imprint/merge, overlap removal,
// geometry classification and connected mesh region detection.
//
// Every helper drives the session through the Host interface, which mirrors
// the slice of Cubit's command and query API the helpers need. All geometric
// work happens inside Cubit; the helpers only sequence commands and do light
// bookkeeping over the entity ids Cubit returns.
package cubitutil

// EntityType names a class of entity maintained by the Cubit session,
// spelled the way Cubit's query API spells it.
type EntityType string

const (
	Volume  EntityType = "volume"
	Surface EntityType = "surface"
	Curve   EntityType = "curve"
	Group   EntityType = "group"
	Node    EntityType = "node"
	Hex     EntityType = "hex"
	Pyramid EntityType = "pyramid"
	Wedge   EntityType = "wedge"
	Tet     EntityType = "tet"
)

// Host is the command and query surface of a Cubit session.
//
// Implementations are expected to be backed by a live session (or a journal
// writer, see package journal). Host errors are propagated as-is by the
// helpers in this package: nothing is retried and partial side effects are
// not rolled back, matching how the equivalent interactive command
// sequences behave.
type Host interface {
	// Cmd submits a single line to the Cubit command interpreter.
	Cmd(command string) error
	// Entities returns the ids of every entity of the given type in the
	// active model, in the session's enumeration order.
	Entities(typ EntityType) ([]int, error)
	// GroupVolumes returns the ids of the volumes contained in a group.
	GroupVolumes(group int) ([]int, error)
	// IDFromName returns the id of the entity with the given name, or 0
	// if no entity has that name.
	IDFromName(name string) (int, error)
	// OverlappingVolumes returns which of the candidate volumes overlap
	// the given volume under the session's current overlap tolerances.
	OverlappingVolumes(volume int, candidates []int) ([]int, error)
	// SetOverlapMaxGap sets the session-wide max gap used by overlap
	// detection. This is the same setting exposed by the "Manage Gaps and
	// Volume Overlaps" panel and affects every later overlap query.
	SetOverlapMaxGap(gap float64) error
	// SetOverlapMaxAngle sets the session-wide max gap angle, in degrees.
	SetOverlapMaxAngle(degrees float64) error
	// SurfaceType returns the geometric type label of a surface,
	// e.g. "plane" or "spline".
	SurfaceType(surface int) (string, error)
	// CurveType returns the geometric type label of a curve,
	// e.g. "straight" or "arc".
	CurveType(curve int) (string, error)
	// Connectivity returns the node ids of a mesh element of the given
	// type, in Cubit's local node ordering.
	Connectivity(typ EntityType, id int) ([]int, error)
}
