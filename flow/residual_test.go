package flow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/YohanAvishke/Algorithms-coursework-sub001/matrix"
)

func mustMatrix(t *testing.T, rows [][]int64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// TestApplyPathBottleneck: the minimum residual along the path is returned
// and every edge is debited forward / credited in reverse.
func TestApplyPathBottleneck(t *testing.T) {
	res := mustMatrix(t, [][]int64{
		{0, 7, 0},
		{0, 0, 3},
		{0, 0, 0},
	})

	got := applyPath(res, []Edge{{From: 0, To: 1}, {From: 1, To: 2}})
	require.Equal(t, int64(3), got)

	want := mustMatrix(t, [][]int64{
		{0, 4, 0},
		{3, 0, 0},
		{0, 3, 0},
	})
	require.True(t, res.Equal(want))
}

// TestApplyPathReverseEdgeUndo: reverse residual capacity created by an
// earlier augmentation can carry a later path, undoing the original push.
func TestApplyPathReverseEdgeUndo(t *testing.T) {
	res := mustMatrix(t, [][]int64{
		{0, 2, 0},
		{0, 0, 2},
		{0, 0, 0},
	})

	applyPath(res, []Edge{{From: 0, To: 1}, {From: 1, To: 2}})
	// residual(1,0) is now 2; push one unit back over the reverse edge
	got := applyPath(res, []Edge{{From: 1, To: 0}})
	require.Equal(t, int64(2), got)

	v, err := res.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), v, "forward capacity fully restored")
	v, err = res.At(1, 0)
	require.NoError(t, err)
	require.Zero(t, v)
}

// TestApplyPathContractViolations: saturated or missing edges on the path
// are programming errors and must panic, not return.
func TestApplyPathContractViolations(t *testing.T) {
	res := mustMatrix(t, [][]int64{
		{0, 1},
		{0, 0},
	})

	require.Panics(t, func() { applyPath(res, nil) })
	require.Panics(t, func() { applyPath(res, []Edge{{From: 1, To: 0}}) })

	applyPath(res, []Edge{{From: 0, To: 1}})
	require.Panics(t, func() { applyPath(res, []Edge{{From: 0, To: 1}}) }, "edge already saturated")
}

// TestReplayRoundTrip: replaying an engine transcript reproduces its
// residual matrix.
func TestReplayRoundTrip(t *testing.T) {
	m := mustMatrix(t, [][]int64{
		{0, 4, 2, 0},
		{0, 0, 2, 1},
		{0, 0, 0, 4},
		{0, 0, 0, 0},
	})

	res, err := EdmondsKarp(m, 0, 3)
	require.NoError(t, err)

	replayed, err := Replay(m, res.Paths)
	require.NoError(t, err)
	require.True(t, replayed.Equal(res.Residual))
}

// TestReplayEmptyTranscript: no paths means the residual equals the
// capacities.
func TestReplayEmptyTranscript(t *testing.T) {
	m := mustMatrix(t, [][]int64{
		{0, 4},
		{0, 0},
	})

	replayed, err := Replay(m, nil)
	require.NoError(t, err)
	require.True(t, replayed.Equal(m))
}

// TestReplayMismatch: corrupted records are rejected with
// ErrReplayMismatch before any partial state escapes.
func TestReplayMismatch(t *testing.T) {
	m := mustMatrix(t, [][]int64{
		{0, 4},
		{0, 0},
	})

	cases := []struct {
		name  string
		paths []AugmentingPath
	}{
		{"empty path", []AugmentingPath{{Bottleneck: 1}}},
		{"zero bottleneck", []AugmentingPath{{Edges: []Edge{{From: 0, To: 1}}, Bottleneck: 0}}},
		{"negative bottleneck", []AugmentingPath{{Edges: []Edge{{From: 0, To: 1}}, Bottleneck: -2}}},
		{"edge out of range", []AugmentingPath{{Edges: []Edge{{From: 0, To: 5}}, Bottleneck: 1}}},
		{"bottleneck disagrees", []AugmentingPath{{Edges: []Edge{{From: 0, To: 1}}, Bottleneck: 3}}},
		{"over-applied", []AugmentingPath{
			{Edges: []Edge{{From: 0, To: 1}}, Bottleneck: 4},
			{Edges: []Edge{{From: 0, To: 1}}, Bottleneck: 4},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			replayed, err := Replay(m, tc.paths)
			require.ErrorIs(t, err, ErrReplayMismatch)
			require.Nil(t, replayed)
		})
	}
}

// TestReplayNilMatrix covers the nil-capacity guard.
func TestReplayNilMatrix(t *testing.T) {
	_, err := Replay(nil, nil)
	require.ErrorIs(t, err, ErrNilMatrix)
}
