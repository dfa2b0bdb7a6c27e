package btree

import (
	"maps"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/sorted/order"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./btree -run TestRandomizedAgainstModel -count=1
//   - Fuzz test for the occupancy invariant:
//     go test ./btree -run '^$' -fuzz FuzzOccupancy -fuzztime=10s

// model is a plain map mirroring the expected tree content.
type model map[int]int

func (m model) sortedKeys() []int {
	return slices.Sorted(maps.Keys(m))
}

func assertTreeMatchesModel(t *testing.T, tree *Tree[int, int], m model) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if tree.Len() != len(m) {
		t.Fatalf("size mismatch: tree=%d model=%d", tree.Len(), len(m))
	}
	want := m.sortedKeys()
	i := 0
	for k, v := range tree.All() {
		if k != want[i] || v != m[k] {
			t.Fatalf("mismatch at %d: got %d:%d, want %d:%d", i, k, v, want[i], m[want[i]])
		}
		i++
	}
}

func newModelTree(t testing.TB, maxNodeSize int) *Tree[int, int] {
	tree, err := New[int, int](Config[int]{Compare: order.Natural[int], MaxNodeSize: maxNodeSize})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}

// applyRandomOp performs one random operation on both the tree and the model.
func applyRandomOp(t testing.TB, r *rand.Rand, tree *Tree[int, int], m model, keySpace int) {
	k := r.Intn(keySpace)
	switch op := r.Intn(10); {
	case op < 5:
		added, err := tree.Set(k, op)
		if err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		_, present := m[k]
		if added == present {
			t.Fatalf("Set(%d) added=%v, but key present=%v", k, added, present)
		}
		m[k] = op
	case op < 7:
		ok, err := tree.Delete(k)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		_, present := m[k]
		if ok != present {
			t.Fatalf("Delete(%d) = %v, but key present=%v", k, ok, present)
		}
		delete(m, k)
	case op < 8:
		hi := k + r.Intn(keySpace/4+1)
		n, err := tree.DeleteRange(k, hi, true)
		if err != nil {
			t.Fatalf("DeleteRange failed: %v", err)
		}
		removed := 0
		for key := range m {
			if key >= k && key <= hi {
				delete(m, key)
				removed++
			}
		}
		if n != removed {
			t.Fatalf("DeleteRange(%d,%d) removed %d, want %d", k, hi, n, removed)
		}
	default:
		v, ok := tree.Get(k)
		mv, present := m[k]
		if ok != present || v != mv {
			t.Fatalf("Get(%d) = %d,%v; want %d,%v", k, v, ok, mv, present)
		}
	}
}

func TestRandomizedAgainstModel(t *testing.T) {
	for _, size := range []int{4, 5, 8, 64} {
		r := rand.New(rand.NewSource(int64(size) * 7919))
		tree := newModelTree(t, size)
		m := model{}
		for i := 0; i < 3000; i++ {
			applyRandomOp(t, r, tree, m, 500)
			if i%100 == 0 {
				assertTreeMatchesModel(t, tree, m)
			}
		}
		assertTreeMatchesModel(t, tree, m)
	}
}

func TestCloneIsolation(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	tree := newModelTree(t, 4)
	m := model{}
	for i := 0; i < 300; i++ {
		applyRandomOp(t, r, tree, m, 200)
	}
	snapshot := maps.Clone(m)
	clone := tree.Clone()
	cm := maps.Clone(m)

	// mutate the clone, the original must not change
	for i := 0; i < 500; i++ {
		applyRandomOp(t, r, clone, cm, 200)
	}
	assertTreeMatchesModel(t, tree, snapshot)
	assertTreeMatchesModel(t, clone, cm)

	// and the other way round
	frozen := maps.Clone(cm)
	for i := 0; i < 500; i++ {
		applyRandomOp(t, r, tree, m, 200)
	}
	assertTreeMatchesModel(t, clone, frozen)
	assertTreeMatchesModel(t, tree, m)
}

func TestCloneChains(t *testing.T) {
	r := rand.New(rand.NewSource(4711))
	trees := []*Tree[int, int]{newModelTree(t, 5)}
	models := []model{{}}
	for gen := 0; gen < 20; gen++ {
		last := len(trees) - 1
		c, cm := trees[last].Clone(), maps.Clone(models[last])
		for i := 0; i < 60; i++ {
			applyRandomOp(t, r, c, cm, 300)
		}
		trees, models = append(trees, c), append(models, cm)
	}
	for i := range trees {
		assertTreeMatchesModel(t, trees[i], models[i])
	}
}

func TestGreedyClone(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	tree := newModelTree(t, 4)
	m := model{}
	for i := 0; i < 200; i++ {
		applyRandomOp(t, r, tree, m, 100)
	}
	shallow := tree.Clone()
	for _, force := range []bool{false, true} {
		c := tree.GreedyClone(force)
		cm := maps.Clone(m)
		for i := 0; i < 300; i++ {
			applyRandomOp(t, r, c, cm, 100)
		}
		assertTreeMatchesModel(t, c, cm)
		assertTreeMatchesModel(t, tree, m)
		assertTreeMatchesModel(t, shallow, m)
	}
}

func TestPersistentWithWithout(t *testing.T) {
	base := newModelTree(t, 4)
	for i := 0; i < 20; i++ {
		base.Set(i, i*i)
	}
	t1 := base.With(100, 1)
	t2 := t1.Without(3)
	if base.Has(100) || !t1.Has(100) || !t2.Has(100) {
		t.Fatalf("With leaked into the receiver")
	}
	if !base.Has(3) || !t1.Has(3) || t2.Has(3) {
		t.Fatalf("Without leaked into the receiver")
	}
	for _, tree := range []*Tree[int, int]{base, t1, t2} {
		if err := tree.Check(); err != nil {
			t.Fatalf("invariant check failed: %v", err)
		}
	}
}

func FuzzOccupancy(f *testing.F) {
	f.Add(int64(1), uint8(4), uint16(200))
	f.Add(int64(7), uint8(5), uint16(1000))
	f.Add(int64(-3), uint8(0), uint16(50))
	f.Fuzz(func(t *testing.T, seed int64, size uint8, ops uint16) {
		r := rand.New(rand.NewSource(seed))
		tree := newModelTree(t, int(size))
		m := model{}
		for i := 0; i < int(ops)%2000; i++ {
			applyRandomOp(t, r, tree, m, 256)
		}
		assertTreeMatchesModel(t, tree, m)
		if inner, ok := tree.root.(*innerNode[int, int]); ok && len(inner.children) < 2 {
			t.Fatalf("inner root with %d children", len(inner.children))
		}
	})
}
