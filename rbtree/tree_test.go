package rbtree

import (
	"bytes"
	"errors"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	fcolor "github.com/fatih/color"
	"github.com/google/btree"
	"github.com/npillmayer/ordtrees"
	"github.com/npillmayer/ordtrees/treeviz"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustCheck(t *testing.T, tree *Tree[int]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if !tree.IsValidRedBlackTree() {
		t.Fatalf("tree reports invalid coloring")
	}
}

func TestEmptyTree(t *testing.T) {
	tree := New[int]()
	mustCheck(t, tree)
	if tree.Len() != 0 || tree.Height() != 0 || tree.BlackHeight() != 0 {
		t.Fatalf("unexpected empty tree state")
	}
	var none *Tree[int]
	if s := none.Stats(); none.Len() != 0 || none.Height() != 0 || s.Size != 0 || s.Inserts != 0 {
		t.Errorf("nil tree reports content: %v", s)
	}
	if _, ok := tree.Min(); ok {
		t.Errorf("expected Min of empty tree to be undefined")
	}
	if tree.Contains(1) || tree.Snapshot() != nil {
		t.Errorf("empty tree has content")
	}
	var zero Tree[string]
	if zero.Contains("x") {
		t.Errorf("zero value tree has content")
	}
	zero.Remove("x")
	zero.Insert("b").Insert("a")
	if got := zero.InOrder(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("zero value tree unusable, in-order = %v", got)
	}
}

func TestIncreasingInsertScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()

	tree := New[int]().Insert(10).Insert(20).Insert(30)
	mustCheck(t, tree)
	root := tree.nodes[tree.root]
	if root.key != 20 || root.color != black {
		t.Fatalf("expected black root 20, got %v (color %d)", root.key, root.color)
	}
	l, r := tree.nodes[root.left], tree.nodes[root.right]
	if l.key != 10 || l.color != red || r.key != 30 || r.color != red {
		t.Fatalf("expected red children 10 and 30, got %v/%d and %v/%d", l.key, l.color, r.key, r.color)
	}
	if bh := tree.BlackHeight(); bh != 1 {
		t.Errorf("expected black-height 1, got %d", bh)
	}
	if tree.Stats().Rotations != 1 {
		t.Errorf("expected a single rotation, got %d", tree.Stats().Rotations)
	}
}

func TestRecolorPropagation(t *testing.T) {
	// 40 gets a red uncle (10): recoloring only, no rotation.
	tree := FromSlice([]int{20, 10, 30})
	rot := tree.Stats().Rotations
	tree.Insert(40)
	mustCheck(t, tree)
	if tree.Stats().Rotations != rot {
		t.Errorf("expected recoloring without rotation")
	}
	if tree.colorOf(tree.root) != black || tree.colorOf(tree.left(tree.root)) != black {
		t.Errorf("expected parent and uncle to be recolored black")
	}
	if bh := tree.BlackHeight(); bh != 2 {
		t.Errorf("expected black-height 2 after recoloring, got %d", bh)
	}
}

func TestRemoveCases(t *testing.T) {
	tree := FromSlice([]int{50, 30, 70, 20, 40, 60, 80, 10, 25, 35, 45})
	mustCheck(t, tree)
	for _, k := range []int{10, 30, 50, 80, 70, 25, 20, 35, 45, 40, 60} {
		tree.Remove(k)
		mustCheck(t, tree)
		if tree.Contains(k) {
			t.Fatalf("removed key %d still found", k)
		}
	}
	if tree.Len() != 0 || tree.root != nilRef {
		t.Fatalf("expected empty tree, len=%d", tree.Len())
	}
}

func TestIdempotence(t *testing.T) {
	tree := FromSlice([]int{5, 3, 8, 1, 4})
	shape := tree.PreOrder()
	arena := len(tree.nodes)
	tree.Insert(4).Remove(99)
	if tree.Len() != 5 || !slices.Equal(tree.PreOrder(), shape) || len(tree.nodes) != arena {
		t.Errorf("no-op operations changed the tree")
	}
	tree.Remove(8).Remove(8)
	if tree.Len() != 4 {
		t.Errorf("expected 4 keys, got %d", tree.Len())
	}
	mustCheck(t, tree)
}

func TestSlotReuse(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 100; i++ {
		tree.Insert(i)
	}
	arena := len(tree.nodes)
	for i := 0; i < 100; i += 2 {
		tree.Remove(i)
	}
	for i := 1000; i < 1050; i++ {
		tree.Insert(i)
	}
	mustCheck(t, tree)
	if len(tree.nodes) != arena {
		t.Errorf("expected freed slots to be reused, arena grew from %d to %d", arena, len(tree.nodes))
	}
	tree.Clear()
	mustCheck(t, tree)
	if tree.Len() != 0 || len(tree.nodes) != 1 {
		t.Errorf("Clear left nodes behind")
	}
}

func TestRandomAgainstBTree(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	tree := New[int]()
	oracle := btree.NewOrderedG[int](8)
	for i := 0; i < 4000; i++ {
		k := rg.Intn(500)
		if rg.Intn(3) == 0 {
			tree.Remove(k)
			oracle.Delete(k)
		} else {
			tree.Insert(k)
			oracle.ReplaceOrInsert(k)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if tree.Len() != oracle.Len() {
			t.Fatalf("step %d: size %d, oracle has %d", i, tree.Len(), oracle.Len())
		}
	}
	var want []int
	oracle.Ascend(func(k int) bool {
		want = append(want, k)
		return true
	})
	if got := tree.InOrder(); !slices.Equal(got, want) {
		t.Fatalf("in-order differs from oracle")
	}
	if lo, _ := tree.Min(); lo != want[0] {
		t.Errorf("min = %d, want %d", lo, want[0])
	}
	if hi, _ := tree.Max(); hi != want[len(want)-1] {
		t.Errorf("max = %d, want %d", hi, want[len(want)-1])
	}
}

func TestRoundTripAgainstGods(t *testing.T) {
	rg := rand.New(rand.NewSource(1))
	tree := New[int]()
	ref := redblacktree.NewWithIntComparator()
	for _, k := range rg.Perm(2000) {
		tree.Insert(k)
		ref.Put(k, nil)
		if !tree.Contains(k) {
			t.Fatalf("inserted key %d not found", k)
		}
	}
	for _, k := range rg.Perm(2000)[:1500] {
		tree.Remove(k)
		ref.Remove(k)
		if tree.Contains(k) {
			t.Fatalf("removed key %d still found", k)
		}
	}
	mustCheck(t, tree)
	keys := tree.InOrder()
	if len(keys) != ref.Size() {
		t.Fatalf("size %d, reference has %d", len(keys), ref.Size())
	}
	for i, k := range ref.Keys() {
		if keys[i] != k.(int) {
			t.Fatalf("key order differs from reference at %d", i)
		}
	}
	if h, n := tree.Height(), tree.Len(); h > 2*bitLen(n+1) {
		t.Errorf("height %d exceeds red-black bound for %d keys", h, n)
	}
}

func bitLen(n int) int {
	l := 0
	for ; n > 0; n >>= 1 {
		l++
	}
	return l
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := FromSlice([]int{10, 20, 30})
	tree.nodes[tree.root].color = red
	if tree.BlackHeight() != -1 || tree.IsValidRedBlackTree() {
		t.Errorf("expected red root to be detected")
	}
	if err := tree.Check(); !errors.Is(err, ordtrees.ErrCorrupted) {
		t.Errorf("expected ErrCorrupted, got %v", err)
	}

	tree = FromSlice([]int{10, 20, 30})
	tree.nodes[tree.left(tree.root)].color = black
	if tree.BlackHeight() != -1 {
		t.Errorf("expected unequal black counts to be detected")
	}

	tree = FromSlice([]int{10, 20, 30, 40})
	tree.nodes[tree.right(tree.root)].color = red // 30 red above red 40
	if tree.BlackHeight() != -1 {
		t.Errorf("expected red-red adjacency to be detected")
	}

	tree = FromSlice([]int{10, 20, 30})
	tree.nodes[tree.left(tree.root)].parent = nilRef
	if err := tree.Check(); err == nil || !strings.Contains(err.Error(), "parent link") {
		t.Errorf("expected parent link error, got %v", err)
	}
}

func TestSnapshotRendering(t *testing.T) {
	nocolor := fcolor.NoColor
	fcolor.NoColor = true
	defer func() { fcolor.NoColor = nocolor }()

	tree := FromSlice([]int{10, 20, 30})
	snap := tree.Snapshot()
	if snap.Color != treeviz.Black || snap.Left.Color != treeviz.Red || snap.Right.Label != "30" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	var bf bytes.Buffer
	if err := treeviz.NewConsole(&treeviz.ConsoleConfig{}, nil).Print(snap, &bf); err != nil {
		t.Fatal(err)
	}
	if bf.String() != "┌── 30\n20\n└── 10\n" {
		t.Errorf("unexpected console rendering:\n%s", bf.String())
	}
	bf.Reset()
	if err := treeviz.WriteHTML(snap, &bf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(bf.String(), `<li class="black"><span>20</span>`) {
		t.Errorf("unexpected HTML rendering: %s", bf.String())
	}
}
