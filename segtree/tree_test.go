package segtree

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/ordtrees"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustNew[T ordtrees.Number](t *testing.T, values []T, op Op) *Tree[T] {
	t.Helper()
	tree, err := New(values, op)
	if err != nil {
		t.Fatalf("cannot build %v tree: %v", op, err)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("fresh %v tree is corrupt: %v", op, err)
	}
	return tree
}

func fold[T ordtrees.Number](m Monoid[T], values []T, left, right int) T {
	agg := m.Zero()
	for _, v := range values[left : right+1] {
		agg = m.Add(agg, v)
	}
	return agg
}

func TestSumScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()

	tree := mustNew(t, []int{1, 2, 3, 4, 5}, Sum)
	if s, err := tree.Query(1, 3); err != nil || s != 9 {
		t.Fatalf("query(1,3) = %d, %v; want 9", s, err)
	}
	if err := tree.Update(2, 10); err != nil {
		t.Fatal(err)
	}
	if s, _ := tree.Query(1, 3); s != 16 {
		t.Fatalf("query(1,3) after update = %d, want 16", s)
	}
	if s, _ := tree.Query(0, 4); s != 22 {
		t.Errorf("query(0,4) = %d, want 22", s)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestParseOp(t *testing.T) {
	for _, op := range []Op{Sum, Min, Max, GCD} {
		parsed, err := ParseOp(strings.ToUpper(op.String()))
		if err != nil || parsed != op {
			t.Errorf("cannot round-trip %v: %v, %v", op, parsed, err)
		}
	}
	if _, err := ParseOp("avg"); !errors.Is(err, ordtrees.ErrUnsupportedOperation) {
		t.Errorf("expected ErrUnsupportedOperation for unknown tag, got %v", err)
	}
	if _, err := New([]int{1}, Op(42)); !errors.Is(err, ordtrees.ErrUnsupportedOperation) {
		t.Errorf("expected ErrUnsupportedOperation for unknown op, got %v", err)
	}
}

func TestIdentities(t *testing.T) {
	if z := (MinMonoid[int8]{}).Zero(); z != math.MaxInt8 {
		t.Errorf("min identity for int8 = %d", z)
	}
	if z := (MaxMonoid[int64]{}).Zero(); z != math.MinInt64 {
		t.Errorf("max identity for int64 = %d", z)
	}
	if z := (MaxMonoid[uint16]{}).Zero(); z != 0 {
		t.Errorf("max identity for uint16 = %d", z)
	}
	if z := (MinMonoid[float64]{}).Zero(); !math.IsInf(z, 1) {
		t.Errorf("min identity for float64 = %v", z)
	}
	if g := (GCDMonoid[int]{}).Add(-4, 6); g != 2 {
		t.Errorf("gcd(-4,6) = %d, want 2", g)
	}
	if g := (GCDMonoid[uint]{}).Add(0, 9); g != 9 {
		t.Errorf("gcd(0,9) = %d, want 9", g)
	}
}

func TestGCDOfNegativeValues(t *testing.T) {
	for _, values := range [][]int{{-91}, {-91, 14, 21}, {14, -91, 21, -7}} {
		tree := mustNew(t, values, GCD)
		i := slices.Index(values, -91)
		if g, err := tree.Query(i, i); err != nil || g != 91 {
			t.Errorf("n=%d: gcd query(%d,%d) = %d, %v; want 91", len(values), i, i, g, err)
		}
		if err := tree.Update(0, -12); err != nil {
			t.Fatal(err)
		}
		if g, _ := tree.Query(0, 0); g != 12 {
			t.Errorf("n=%d: gcd of updated leaf = %d, want 12", len(values), g)
		}
		if err := tree.Check(); err != nil {
			t.Error(err)
		}
	}
	if g := (GCDMonoid[int8]{}).Add(math.MinInt8, 64); g != 64 {
		t.Errorf("gcd(-128,64) over int8 = %d, want 64", g)
	}
	if g := (GCDMonoid[int64]{}).Add(math.MinInt64, 6); g != 2 {
		t.Errorf("gcd(MinInt64,6) = %d, want 2", g)
	}
}

func TestGCDOnFloatsUnsupported(t *testing.T) {
	if _, err := New([]float64{1.5}, GCD); !errors.Is(err, ordtrees.ErrUnsupportedOperation) {
		t.Errorf("expected ErrUnsupportedOperation, got %v", err)
	}
}

func TestQueriesAgainstBruteForce(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	for _, op := range []Op{Sum, Min, Max, GCD} {
		values := make([]int, 37)
		for i := range values {
			values[i] = rg.Intn(200) - 100
		}
		tree := mustNew(t, values, op)
		m, _ := MonoidFor[int](op)
		for step := 0; step < 300; step++ {
			if step%3 == 0 {
				i, v := rg.Intn(len(values)), rg.Intn(200)-100
				values[i] = v
				if err := tree.Update(i, v); err != nil {
					t.Fatal(err)
				}
				if err := tree.Check(); err != nil {
					t.Fatalf("%v, step %d: %v", op, step, err)
				}
			}
			l := rg.Intn(len(values))
			r := l + rg.Intn(len(values)-l)
			got, err := tree.Query(l, r)
			if err != nil {
				t.Fatal(err)
			}
			if want := fold(m, values, l, r); got != want {
				t.Fatalf("%v query(%d,%d) = %d, want %d", op, l, r, got, want)
			}
		}
		leaves := make([]int, len(values))
		for i, v := range values {
			leaves[i] = m.Add(m.Zero(), v)
		}
		if !slices.Equal(tree.Values(), leaves) {
			t.Errorf("%v tree values differ from array", op)
		}
	}
}

func TestFloatAggregates(t *testing.T) {
	values := []float64{0.5, -2.25, 3, 1e6, -7.125}
	for _, op := range []Op{Sum, Min, Max} {
		tree := mustNew(t, values, op)
		m, _ := MonoidFor[float64](op)
		for l := range values {
			for r := l; r < len(values); r++ {
				if got, _ := tree.Query(l, r); got != fold(m, values, l, r) {
					t.Errorf("%v query(%d,%d) = %v", op, l, r, got)
				}
			}
		}
	}
}

func TestLazyEquivalence(t *testing.T) {
	rg := rand.New(rand.NewSource(1))
	values := make([]int64, 50)
	for i := range values {
		values[i] = rg.Int63n(1000)
	}
	lazy := mustNew(t, values, Sum)
	eager := mustNew(t, values, Sum)
	for step := 0; step < 200; step++ {
		l := rg.Intn(len(values))
		r := l + rg.Intn(len(values)-l)
		d := rg.Int63n(21) - 10
		if err := lazy.UpdateRange(l, r, d); err != nil {
			t.Fatal(err)
		}
		for i := l; i <= r; i++ {
			values[i] += d
			if err := eager.Update(i, values[i]); err != nil {
				t.Fatal(err)
			}
		}
		if err := lazy.Check(); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
		ql := rg.Intn(len(values))
		qr := ql + rg.Intn(len(values)-ql)
		got, err := lazy.QueryRange(ql, qr)
		if err != nil {
			t.Fatal(err)
		}
		want, _ := eager.Query(ql, qr)
		if got != want || want != fold[int64](SumMonoid[int64]{}, values, ql, qr) {
			t.Fatalf("step %d: range query(%d,%d) = %d, point model = %d", step, ql, qr, got, want)
		}
	}
	if !slices.Equal(lazy.Values(), values) {
		t.Errorf("lazy tree values differ from array")
	}
}

func TestMixedUpdates(t *testing.T) {
	rg := rand.New(rand.NewSource(2))
	values := make([]int, 23)
	tree := mustNew(t, values, Sum)
	for step := 0; step < 500; step++ {
		switch rg.Intn(3) {
		case 0:
			i, v := rg.Intn(len(values)), rg.Intn(100)
			values[i] = v
			if err := tree.Update(i, v); err != nil {
				t.Fatal(err)
			}
		case 1:
			l := rg.Intn(len(values))
			r := l + rg.Intn(len(values)-l)
			d := rg.Intn(11) - 5
			for i := l; i <= r; i++ {
				values[i] += d
			}
			if err := tree.UpdateRange(l, r, d); err != nil {
				t.Fatal(err)
			}
		default:
			l := rg.Intn(len(values))
			r := l + rg.Intn(len(values)-l)
			if got, _ := tree.Query(l, r); got != fold[int](SumMonoid[int]{}, values, l, r) {
				t.Fatalf("step %d: query(%d,%d) = %d", step, l, r, got)
			}
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
	}
}

func TestRangeErrors(t *testing.T) {
	tree := mustNew(t, []int{1, 2, 3}, Sum)
	_, err := tree.Query(2, 1)
	if !errors.Is(err, ordtrees.ErrInvalidArgument) || errors.Is(err, ordtrees.ErrIndexOutOfBounds) {
		t.Errorf("expected plain ErrInvalidArgument for reversed range, got %v", err)
	}
	for _, r := range [][2]int{{-1, 1}, {0, 3}, {3, 3}} {
		_, err := tree.Query(r[0], r[1])
		if !errors.Is(err, ordtrees.ErrInvalidArgument) || !errors.Is(err, ordtrees.ErrIndexOutOfBounds) {
			t.Errorf("query(%d,%d): expected out of bounds error, got %v", r[0], r[1], err)
		}
	}
	if err := tree.Update(3, 0); !errors.Is(err, ordtrees.ErrIndexOutOfBounds) {
		t.Errorf("expected out of bounds error for update, got %v", err)
	}
	if err := tree.UpdateRange(0, 5, 1); !errors.Is(err, ordtrees.ErrInvalidArgument) {
		t.Errorf("expected invalid argument for range update, got %v", err)
	}
	if !slices.Equal(tree.Values(), []int{1, 2, 3}) {
		t.Errorf("failed calls modified the tree")
	}

	empty := mustNew(t, []int{}, Max)
	if _, err := empty.Query(0, 0); !errors.Is(err, ordtrees.ErrInvalidArgument) {
		t.Errorf("expected query on empty tree to fail, got %v", err)
	}
	if empty.Len() != 0 || len(empty.Values()) != 0 || empty.Snapshot() != nil {
		t.Errorf("unexpected content of empty tree")
	}
}

func TestLazyRestrictedToSum(t *testing.T) {
	for _, op := range []Op{Min, Max, GCD} {
		tree := mustNew(t, []int{4, 8, 12}, op)
		if err := tree.UpdateRange(0, 1, 2); !errors.Is(err, ordtrees.ErrUnsupportedOperation) {
			t.Errorf("%v: expected ErrUnsupportedOperation for range update, got %v", op, err)
		}
		if _, err := tree.QueryRange(0, 1); !errors.Is(err, ordtrees.ErrUnsupportedOperation) {
			t.Errorf("%v: expected ErrUnsupportedOperation for range query, got %v", op, err)
		}
	}
}

func TestFindFirst(t *testing.T) {
	atLeast := func(agg, v int) bool { return agg >= v }
	tree := mustNew(t, []int{1, 3, 2, 7, 5, 9}, Max)
	for v, want := range map[int]int{0: 0, 2: 1, 4: 3, 6: 3, 8: 5, 10: -1} {
		if got := tree.FindFirst(atLeast, v); got != want {
			t.Errorf("first index with value >= %d = %d, want %d", v, got, want)
		}
	}
	atMost := func(agg, v int) bool { return agg <= v }
	mins := mustNew(t, []int{5, 4, 6, 1, 3}, Min)
	if got := mins.FindFirst(atMost, 4); got != 1 {
		t.Errorf("first index with value <= 4 = %d, want 1", got)
	}
	if got := mins.FindFirst(atMost, 0); got != -1 {
		t.Errorf("expected no index with value <= 0, got %d", got)
	}
	// pending deltas are honored
	sums := mustNew(t, []int{0, 0, 0, 0}, Sum)
	if err := sums.UpdateRange(2, 3, 5); err != nil {
		t.Fatal(err)
	}
	if got := sums.FindFirst(atLeast, 5); got != 2 {
		t.Errorf("first index with value >= 5 after range update = %d, want 2", got)
	}
	if err := sums.Check(); err != nil {
		t.Error(err)
	}
	empty := mustNew(t, []int(nil), Max)
	if empty.FindFirst(atLeast, 0) != -1 {
		t.Errorf("expected -1 on empty tree")
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := mustNew(t, []int{1, 2, 3, 4}, Sum)
	tree.tree[2]++
	if err := tree.Check(); !errors.Is(err, ordtrees.ErrCorrupted) {
		t.Errorf("expected ErrCorrupted, got %v", err)
	}
	tree = mustNew(t, []int{1, 2, 3, 4}, Min)
	tree.tree[4] = 7
	if err := tree.Check(); !errors.Is(err, ordtrees.ErrCorrupted) {
		t.Errorf("expected ErrCorrupted, got %v", err)
	}
}

func TestSnapshot(t *testing.T) {
	tree := mustNew(t, []int{1, 2, 3}, Sum)
	if err := tree.UpdateRange(0, 2, 1); err != nil {
		t.Fatal(err)
	}
	snap := tree.Snapshot()
	if snap.Label != "9" || snap.Note != "[0,2]" {
		t.Errorf("unexpected root %q %q", snap.Label, snap.Note)
	}
	if snap.Left.Note != "[0,1] +1" || snap.Right.Label != "3" {
		t.Errorf("unexpected children %q %q, %q %q", snap.Left.Label, snap.Left.Note,
			snap.Right.Label, snap.Right.Note)
	}
	if snap.Count() != 5 {
		t.Errorf("expected 5 nodes, got %d", snap.Count())
	}
}
