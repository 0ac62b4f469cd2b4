package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airnet/bfs"
	"github.com/katalvlaran/airnet/builder"
	"github.com/katalvlaran/airnet/core"
)

var (
	a = core.NewCity("A")
	b = core.NewCity("B")
	c = core.NewCity("C")
	d = core.NewCity("D")
	e = core.NewCity("E")
)

// network builds A→B, A→C, B→D, C→D, D→E plus an isolated city F.
func network(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(a, b, 1, 10, true))
	require.NoError(t, g.AddEdge(a, c, 1, 10, true))
	require.NoError(t, g.AddEdge(b, d, 1, 10, false))
	require.NoError(t, g.AddEdge(c, d, 1, 10, false))
	require.NoError(t, g.AddEdge(d, e, 1, 10, false))
	g.AddCity(core.NewCity("F"))

	return g
}

func TestReachable_LevelOrder(t *testing.T) {
	res, err := bfs.Reachable(network(t), a)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Names())
	require.Equal(t, map[string]int{"a": 0, "b": 1, "c": 1, "d": 2, "e": 3}, res.Depth)
	require.Equal(t, "b", res.Parent["d"], "first discoverer is the parent")

	path, err := res.PathTo(e)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "d", "e"}, path)

	_, err = res.PathTo(core.NewCity("F"))
	require.Error(t, err)
}

func TestReachable_LevelOrderOnChain(t *testing.T) {
	g, err := builder.BuildNetwork(nil, builder.Path(5))
	require.NoError(t, err)

	res, err := bfs.Reachable(g, core.NewCity("C0"))
	require.NoError(t, err)
	require.Equal(t, []string{"C0", "C1", "C2", "C3", "C4"}, res.Names())
	require.Equal(t, map[string]int{"c0": 0, "c1": 1, "c2": 2, "c3": 3, "c4": 4}, res.Depth)

	// two-way routes: a middle origin fans out both ways
	res, err = bfs.Reachable(g, core.NewCity("C2"))
	require.NoError(t, err)
	require.Equal(t, []string{"C2", "C1", "C3", "C0", "C4"}, res.Names())
}

func TestReachable_Star(t *testing.T) {
	g, err := builder.BuildNetwork(nil, builder.Star(5))
	require.NoError(t, err)

	res, err := bfs.Reachable(g, core.NewCity("C0"))
	require.NoError(t, err)
	require.Equal(t, []string{"C0", "C1", "C2", "C3", "C4"}, res.Names())
	for _, k := range []string{"c1", "c2", "c3", "c4"} {
		require.Equal(t, 1, res.Depth[k], k)
		require.Equal(t, "c0", res.Parent[k], k)
	}

	// hub legs are one-way
	res, err = bfs.Reachable(g, core.NewCity("C3"))
	require.NoError(t, err)
	require.Equal(t, []string{"C3"}, res.Names())
}

func TestReachable_OriginFirstOnCycle(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddBidirectionalEdge(a, b, 1, 1))
	require.NoError(t, g.AddBidirectionalEdge(b, c, 1, 1))
	require.NoError(t, g.AddEdge(c, a, 1, 1, false))

	res, err := bfs.Reachable(g, a)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Names(), "origin appears once, first")
}

func TestReachable_ParallelLegsEnqueueOnce(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(a, b, 1, 1, true))
	require.NoError(t, g.AddEdge(a, b, 2, 1, false))

	var enq int
	res, err := bfs.Reachable(g, a, bfs.WithOnEnqueue(func(core.City, int) { enq++ }))
	require.NoError(t, err)
	require.Len(t, res.Order, 2)
	require.Equal(t, 2, enq)
}

func TestReachable_IsolatedOrigin(t *testing.T) {
	res, err := bfs.Reachable(network(t), core.NewCity("f"))
	require.NoError(t, err)
	require.Equal(t, []string{"F"}, res.Names(), "stored spelling is reported")
}

func TestReachable_MaxDepth(t *testing.T) {
	res, err := bfs.Reachable(network(t), a, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Names())

	_, err = bfs.Reachable(network(t), a, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestReachable_Errors(t *testing.T) {
	_, err := bfs.Reachable(nil, a)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.Reachable(network(t), core.NewCity("Z"))
	require.ErrorIs(t, err, bfs.ErrStartCityNotFound)
}

func TestReachable_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.Reachable(network(t), a, bfs.WithOnVisit(func(c core.City, _ int) error {
		if c.Equal(d) {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

func TestReachable_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Reachable(network(t), a, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
