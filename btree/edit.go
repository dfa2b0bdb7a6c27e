package btree

import "fmt"

// Action tells EditRange what to do with the pair handed to its callback.
// Replace and Delete may be combined with Stop.
type Action uint8

const (
	// Keep leaves the pair untouched.
	Keep Action = 0
	// Replace stores the value returned by the callback.
	Replace Action = 1 << 0
	// Delete removes the pair from the tree.
	Delete Action = 1 << 1
	// Stop ends the scan after the current pair.
	Stop Action = 1 << 2
)

// EditFunc is called by EditRange for every pair in range. counter starts at
// zero and counts the calls.
type EditFunc[K, V any] func(key K, value V, counter int) (V, Action)

// ForRange calls fn for every pair with low <= key <= high (key < high if
// includeHigh is false), in ascending order. A return value of false from fn
// stops the scan. ForRange returns the number of calls of fn.
//
// fn must not modify the tree.
func (t *Tree[K, V]) ForRange(low, high K, includeHigh bool, fn func(key K, value V) bool) int {
	count, _ := t.rangeNode(t.root, rangeSpec[K]{low, high, includeHigh}, false, 0,
		func(key K, value V, _ int) (v V, a Action) {
			if !fn(key, value) {
				a = Stop
			}
			return v, a
		})
	return count
}

// EditRange calls fn for every pair in [low, high] (or [low, high) if
// includeHigh is false), in ascending order, replacing or deleting pairs as
// fn tells it to. Afterwards underfull nodes along the range get merged.
// EditRange returns the number of calls of fn.
//
// fn must neither modify nor clone the tree; it is handed the pair data
// only. Mutating calls from inside fn will fail, and EditRange will stop
// and return ErrIllegalEdit.
func (t *Tree[K, V]) EditRange(low, high K, includeHigh bool, fn EditFunc[K, V]) (int, error) {
	if err := t.checkMutable(); err != nil {
		return 0, err
	}
	if t.root.header().shared {
		t.root = t.cloneNode(t.root)
	}
	t.editing = true
	defer func() {
		t.editing = false
		t.normalizeRoot()
	}()
	count, _ := t.rangeNode(t.root, rangeSpec[K]{low, high, includeHigh}, true, 0, fn)
	if t.illegalEdit {
		t.illegalEdit = false
		return count, fmt.Errorf("%w: scan aborted after %d pairs", ErrIllegalEdit, count)
	}
	return count, nil
}

// Delete removes key from the tree and reports whether it has been present.
func (t *Tree[K, V]) Delete(key K) (bool, error) {
	n, err := t.DeleteRange(key, key, true)
	return n > 0, err
}

// DeleteRange removes all keys in [low, high] (or [low, high) if includeHigh
// is false) and returns the number of keys removed.
func (t *Tree[K, V]) DeleteRange(low, high K, includeHigh bool) (int, error) {
	return t.EditRange(low, high, includeHigh, func(_ K, v V, _ int) (V, Action) {
		return v, Delete
	})
}

// DeleteKeys removes a list of keys and returns the number of keys removed.
func (t *Tree[K, V]) DeleteKeys(keys ...K) (int, error) {
	removed := 0
	for _, key := range keys {
		ok, err := t.Delete(key)
		if err != nil {
			return removed, err
		}
		if ok {
			removed++
		}
	}
	return removed, nil
}

type rangeSpec[K any] struct {
	low, high   K
	includeHigh bool
}

// rangeNode scans the subtree rooted at n. In edit mode n must be mutable.
func (t *Tree[K, V]) rangeNode(n treeNode[K, V], r rangeSpec[K], edit bool, count int, fn EditFunc[K, V]) (int, bool) {
	switch n := n.(type) {
	case *leafNode[K, V]:
		return t.rangeLeaf(n, r, edit, count, fn)
	case *innerNode[K, V]:
		return t.rangeInner(n, r, edit, count, fn)
	default:
		panic("unknown tree node type")
	}
}

func (t *Tree[K, V]) rangeLeaf(leaf *leafNode[K, V], r rangeSpec[K], edit bool, count int, fn EditFunc[K, V]) (int, bool) {
	iLow, _ := leaf.indexOf(r.low, t.cmp)
	iHigh, found := leaf.indexOf(r.high, t.cmp)
	if found && r.includeHigh {
		iHigh++
	}
	for i := iLow; i < iHigh; i++ {
		key := leaf.keys[i]
		value, action := fn(key, leaf.value(i), count)
		count++
		if t.illegalEdit {
			return count, true
		}
		if edit {
			assert(!leaf.shared, "range edit reached a shared leaf")
			switch {
			case action&Delete != 0:
				t.removeFromLeaf(leaf, i)
				t.count--
				i--
				iHigh--
			case action&Replace != 0 && leaf.values != nil:
				leaf.values[i] = value
			}
		}
		if action&Stop != 0 {
			return count, true
		}
	}
	return count, false
}

func (t *Tree[K, V]) rangeInner(inner *innerNode[K, V], r rangeSpec[K], edit bool, count int, fn EditFunc[K, V]) (int, bool) {
	last := len(inner.children) - 1
	iLow, _ := inner.indexOf(r.low, t.cmp)
	iHigh, _ := inner.indexOf(r.high, t.cmp)
	iHigh = min(iHigh, last)
	var stop bool
	if !edit {
		for i := iLow; i <= iHigh && !stop; i++ {
			count, stop = t.rangeNode(inner.children[i], r, false, count, fn)
		}
		return count, stop
	}
	if iLow > iHigh {
		return count, false
	}
	defer t.repairAfterEdit(inner, iLow, iHigh)
	for i := iLow; i <= iHigh && !stop; i++ {
		child := t.mutableChild(inner, i)
		count, stop = t.rangeNode(child, r, true, count, fn)
	}
	return count, stop
}

// repairAfterEdit refreshes the cached keys for children [iLow, iHigh] of
// inner, and merges or removes children which dropped to half capacity or
// less. It runs deferred, so it also leaves the tree valid if a callback
// panics.
func (t *Tree[K, V]) repairAfterEdit(inner *innerNode[K, V], iLow, iHigh int) {
	for i := iLow; i <= iHigh; i++ {
		if ch := inner.children[i].header(); ch.size() > 0 {
			inner.keys[i] = ch.maxKey()
		}
	}
	half := t.maxNodeSize >> 1
	if iLow > 0 {
		iLow--
	}
	for i := iHigh; i >= iLow; i-- {
		if i >= len(inner.children) {
			continue
		}
		switch size := inner.children[i].header().size(); {
		case size == 0:
			t.removeChild(inner, i)
		case size <= half:
			if t.tryMerge(inner, i) {
				tracer().Debugf("btree: merged underfull node after range edit")
			}
		}
	}
	assert(len(inner.children) == 0 || inner.children[0].header().size() > 0,
		"range edit left an empty first child")
}

// normalizeRoot collapses inner roots with a single child. An empty
// inner root is replaced by an empty leaf. Sharing of a removed root is
// handed down to the new root.
func (t *Tree[K, V]) normalizeRoot() {
	shared := false
	for {
		inner, ok := t.root.(*innerNode[K, V])
		if !ok || len(inner.children) > 1 {
			break
		}
		shared = shared || inner.shared
		if len(inner.children) == 0 {
			t.root = t.newLeaf()
		} else {
			t.root = inner.children[0]
		}
		tracer().Debugf("btree: collapsed root, height is now %d", t.Height())
	}
	if shared {
		t.root.header().shared = true
	}
}

// walkLeaves calls fn for each leaf of the subtree at n, left to right.
func (t *Tree[K, V]) walkLeaves(n treeNode[K, V], fn func(*leafNode[K, V])) {
	switch n := n.(type) {
	case *leafNode[K, V]:
		fn(n)
	case *innerNode[K, V]:
		for _, child := range n.children {
			t.walkLeaves(child, fn)
		}
	}
}
