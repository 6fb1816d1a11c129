package journal_test

import (
	"bytes"
	"testing"

	cubitutil "github.com/GregVernon/coreform-cubit-utilities"
	"github.com/GregVernon/coreform-cubit-utilities/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostJournalsGroupCreation(t *testing.T) {
	var buf bytes.Buffer
	h := &journal.Host{W: &buf, Model: journal.Model{Volumes: []int{1, 2}}}
	require.NoError(t, cubitutil.VolumesToGroups(h, ""))
	assert.Equal(t, `create group 'part_1'
part_1 add volume 1
create group 'part_2'
part_2 add volume 2
`, buf.String())
}

func TestHostJournalsImprintMerge(t *testing.T) {
	var buf bytes.Buffer
	h := &journal.Host{W: &buf, Model: journal.Model{
		Groups: []journal.Group{
			{Name: "part_3", Volumes: []int{3, 5, 9}},
			{Name: "part_7", Volumes: []int{7}},
		},
	}}
	require.NoError(t, cubitutil.ImprintMergeGroups(h))
	assert.Equal(t, "imprint vol 3 5 9\nmerge vol 3 5 9\n", buf.String())
}

func TestHostJournalsOverlapRemoval(t *testing.T) {
	var buf bytes.Buffer
	h := &journal.Host{W: &buf, Model: journal.Model{
		Volumes:  []int{2, 3, 101},
		Overlaps: map[int][]int{101: {3, 2}},
	}}
	require.NoError(t, cubitutil.RemoveVolumeOverlaps(h, 101, cubitutil.OverlapSettings{}))
	// Tolerance commands come first; removals follow candidate order.
	assert.Equal(t, `set overlap max gap 0.0005
set overlap max angle 5
remove overlap volume 2 101 modify volume 101
remove overlap volume 3 101 modify volume 101
`, buf.String())
}

func TestHostLiveOnlyQueries(t *testing.T) {
	h := &journal.Host{W: &bytes.Buffer{}}
	_, err := h.SurfaceType(1)
	assert.Error(t, err)
	_, err = h.CurveType(1)
	assert.Error(t, err)
	_, err = h.Connectivity(cubitutil.Hex, 1)
	assert.Error(t, err)
	_, err = h.Entities(cubitutil.Surface)
	assert.Error(t, err)
}

func TestHostIDFromName(t *testing.T) {
	h := &journal.Host{Model: journal.Model{Groups: []journal.Group{
		{Name: "part_1"}, {Name: "spline_surfaces"},
	}}}
	id, err := h.IDFromName("spline_surfaces")
	require.NoError(t, err)
	assert.Equal(t, 2, id)
	id, err = h.IDFromName("missing")
	require.NoError(t, err)
	assert.Zero(t, id)
}
