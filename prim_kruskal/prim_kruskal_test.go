package prim_kruskal_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/dynmst/builder"
	"github.com/katalvlaran/dynmst/core"
	"github.com/katalvlaran/dynmst/dsu"
	"github.com/katalvlaran/dynmst/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edge is a short constructor for expected values.
func edge(u, v int, w int64) core.Edge { return core.Edge{From: u, To: v, Weight: w} }

// buildGraph inserts edges in the given order.
func buildGraph(t testing.TB, edges ...core.Edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}
	return g
}

// bruteForceMST enumerates every (n-1)-edge subset and returns the minimum
// spanning tree weight, or ok=false if no subset spans all n vertices.
func bruteForceMST(edges []core.Edge, n int) (best int64, ok bool) {
	best = math.MaxInt64
	k := n - 1
	var rec func(start int, chosen []core.Edge)
	rec = func(start int, chosen []core.Edge) {
		if len(chosen) == k {
			f := dsu.New(n)
			var sum int64
			for _, e := range chosen {
				if !f.Union(e.From, e.To) {
					return
				}
				sum += e.Weight
			}
			if sum < best {
				best, ok = sum, true
			}
			return
		}
		for i := start; i < len(edges); i++ {
			rec(i+1, append(chosen, edges[i]))
		}
	}
	rec(0, make([]core.Edge, 0, k))
	return best, ok
}

// TestValidation_NilAndEmpty covers ErrInvalidGraph and the empty graph.
func TestValidation_NilAndEmpty(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.Prim(nil, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	assert.Nil(t, prim_kruskal.Components(nil))

	g := core.NewGraph()
	mst, total, err := prim_kruskal.Kruskal(g)
	assert.Nil(t, mst)
	assert.Zero(t, total)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	_, _, err = prim_kruskal.Prim(g, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

// TestKruskal_SquareScenario: nodes {0..3}, the heavy closing edge is skipped.
func TestKruskal_SquareScenario(t *testing.T) {
	g := buildGraph(t, edge(0, 1, 1), edge(1, 2, 2), edge(2, 3, 3), edge(0, 3, 10))

	mst, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	if diff := cmp.Diff([]core.Edge{edge(0, 1, 1), edge(1, 2, 2), edge(2, 3, 3)}, mst); diff != "" {
		t.Fatalf("MST mismatch (-want +got):\n%s", diff)
	}
}

// TestKruskal_TieBreakByInsertion: equal weights resolve by insertion order.
func TestKruskal_TieBreakByInsertion(t *testing.T) {
	g := buildGraph(t, edge(0, 1, 5), edge(1, 2, 5), edge(0, 2, 5))

	for run := 0; run < 3; run++ {
		mst, total, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		assert.Equal(t, int64(10), total)
		assert.Equal(t, []core.Edge{edge(0, 1, 5), edge(1, 2, 5)}, mst)
	}

	// Reversed insertion order flips the choice among the tied edges.
	g = buildGraph(t, edge(0, 2, 5), edge(1, 2, 5), edge(0, 1, 5))
	mst, _, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{edge(0, 2, 5), edge(1, 2, 5)}, mst)
}

// TestKruskal_UnreachableNode: node 2 only exists through the node count.
func TestKruskal_UnreachableNode(t *testing.T) {
	g := buildGraph(t, edge(0, 1, 4), edge(1, 2, 1))
	require.NoError(t, g.RemoveEdge(1, 2))
	require.Equal(t, 3, g.NodeCount())

	mst, total, err := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	assert.Nil(t, mst)
	assert.Zero(t, total)
	assert.Equal(t, [][]int{{0, 1}, {2}}, prim_kruskal.Components(g))
}

// TestKruskal_SingleNode: a lone self-loop yields an empty tree.
func TestKruskal_SingleNode(t *testing.T) {
	g := buildGraph(t, edge(0, 0, 7))

	mst, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, mst)
	assert.NotNil(t, mst)
	assert.Zero(t, total)

	mstP, totalP, errP := prim_kruskal.Prim(g, 0)
	require.NoError(t, errP)
	assert.Empty(t, mstP)
	assert.Zero(t, totalP)
}

// TestKruskal_SelfLoopsAndParallel: loops are skipped, the lighter parallel edge wins.
func TestKruskal_SelfLoopsAndParallel(t *testing.T) {
	g := buildGraph(t, edge(1, 1, -100), edge(0, 1, 5), edge(0, 1, 1), edge(1, 2, 2))

	mst, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []core.Edge{edge(0, 1, 1), edge(1, 2, 2)}, mst)
}

// TestKruskal_NegativeWeights: a negative total is a valid weight, not a signal.
func TestKruskal_NegativeWeights(t *testing.T) {
	g := buildGraph(t, edge(0, 1, -5), edge(1, 2, 3), edge(0, 2, -1))

	mst, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, int64(-6), total)
	assert.Equal(t, []core.Edge{edge(0, 1, -5), edge(0, 2, -1)}, mst)
}

// TestKruskal_TotalWeightWraps pins the documented int64 overflow behavior:
// the edges are still selected, only the sum wraps.
func TestKruskal_TotalWeightWraps(t *testing.T) {
	g := buildGraph(t, edge(0, 1, math.MaxInt64), edge(1, 2, math.MaxInt64))

	mst, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, mst, 2)
	assert.Equal(t, int64(-2), total)
}

// TestKruskal_KeepsOrientation: edges are returned as inserted.
func TestKruskal_KeepsOrientation(t *testing.T) {
	g := buildGraph(t, edge(3, 0, 2), edge(2, 1, 1), edge(1, 3, 4))

	mst, _, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{edge(2, 1, 1), edge(3, 0, 2), edge(1, 3, 4)}, mst)
}

// TestKruskal_Idempotent: repeated queries without mutation agree exactly.
func TestKruskal_Idempotent(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithWeightFn(builder.UniformWeightFn(1, 4))},
		builder.RandomConnected(40, 120))
	require.NoError(t, err)
	before := g.Edges()

	mst1, total1, err1 := prim_kruskal.Kruskal(g)
	mst2, total2, err2 := prim_kruskal.Kruskal(g)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, total1, total2)
	assert.Equal(t, mst1, mst2)
	assert.Equal(t, core.Fingerprint(mst1), core.Fingerprint(mst2))
	assert.Equal(t, before, g.Edges(), "query must not reorder the stored edges")
}

// TestKruskal_RecomputesAfterMutation: every query reflects the current edge set.
func TestKruskal_RecomputesAfterMutation(t *testing.T) {
	g := buildGraph(t, edge(0, 1, 1), edge(1, 2, 2), edge(2, 3, 3), edge(0, 3, 10))

	require.NoError(t, g.RemoveEdge(1, 2))
	mst, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, int64(14), total)
	assert.Equal(t, []core.Edge{edge(0, 1, 1), edge(2, 3, 3), edge(0, 3, 10)}, mst)

	require.NoError(t, g.AddEdge(1, 2, 0))
	_, total, err = prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}

// TestKruskal_MatchesBruteForce compares against exhaustive search and Prim on small graphs.
func TestKruskal_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(-3, 9))},
			builder.RandomConnected(6, 4))
		require.NoError(t, err)
		edges, n := g.Snapshot()

		mst, total, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err, "seed %d", seed)
		require.Len(t, mst, n-1)

		want, ok := bruteForceMST(edges, n)
		require.True(t, ok)
		assert.Equal(t, want, total, "seed %d", seed)

		for root := 0; root < n; root++ {
			mstP, totalP, errP := prim_kruskal.Prim(g, root)
			require.NoError(t, errP)
			assert.Len(t, mstP, n-1)
			assert.Equal(t, total, totalP, "seed %d root %d", seed, root)
		}
	}
}

// TestKruskal_DisconnectedRandom: any graph with more than one component fails.
func TestKruskal_DisconnectedRandom(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomConnected(8, 6))
		require.NoError(t, err)
		// A second component on 10..11 leaves 8 and 9 isolated as well.
		require.NoError(t, g.AddEdge(10, 11, 1))

		_, _, err = prim_kruskal.Kruskal(g)
		assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
		_, _, err = prim_kruskal.Prim(g, 0)
		assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
		assert.Len(t, prim_kruskal.Components(g), 4)
	}
}

// TestComparison_MediumGraph compares Prim vs. Kruskal on a larger generated graph.
func TestComparison_MediumGraph(t *testing.T) {
	g := buildMediumGraph(t, 90, 600)

	mstK, totalK, errK := prim_kruskal.Kruskal(g)
	require.NoError(t, errK)
	assert.Len(t, mstK, g.NodeCount()-1)

	mstP, totalP, errP := prim_kruskal.Prim(g, 17)
	require.NoError(t, errP)
	assert.Len(t, mstP, g.NodeCount()-1)

	assert.Equal(t, totalK, totalP)
}

// TestPrim_RootOutOfRange rejects roots outside [0, NodeCount()).
func TestPrim_RootOutOfRange(t *testing.T) {
	g := buildGraph(t, edge(0, 1, 1))
	_, _, err := prim_kruskal.Prim(g, 2)
	assert.ErrorIs(t, err, prim_kruskal.ErrVertexOutOfRange)
	_, _, err = prim_kruskal.Prim(g, -1)
	assert.ErrorIs(t, err, prim_kruskal.ErrVertexOutOfRange)
}

// TestCompute_Dispatch selects the algorithm by name.
func TestCompute_Dispatch(t *testing.T) {
	g := buildGraph(t, edge(0, 1, 5), edge(1, 2, 5), edge(0, 2, 5))

	opts := prim_kruskal.DefaultOptions()
	assert.Equal(t, prim_kruskal.MethodKruskal, opts.Method)
	mst, total, err := prim_kruskal.Compute(g, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)
	assert.Equal(t, []core.Edge{edge(0, 1, 5), edge(1, 2, 5)}, mst)

	opts = prim_kruskal.DefaultOptions(prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(2))
	_, total, err = prim_kruskal.Compute(g, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// buildMediumGraph creates a connected graph with n vertices and edgesCount edges,
// seeded deterministically.
func buildMediumGraph(t testing.TB, n, edgesCount int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithMaxNodes(n), core.WithMaxEdges(edgesCount)},
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
		builder.RandomConnected(n, edgesCount-(n-1)),
	)
	require.NoError(t, err)
	return g
}
