package orderedmap

import "iter"

// AddPairs sets each pair in turn under a single lock hold.
func (om *OrderedMap[K, V]) AddPairs(pairs ...Pair[K, V]) {
	om.mu.Lock()
	defer om.mu.Unlock()

	for _, pair := range pairs {
		om.set(pair.Key, pair.Value)
	}
	om.checkInvariants()
}

// From creates a new OrderedMap from an iterator over key-value pairs.
func From[K comparable, V any](i iter.Seq2[K, V]) *OrderedMap[K, V] {
	om := New[K, V]()

	for k, v := range i {
		om.Set(k, v)
	}

	return om
}

// Filter removes every entry for which keep returns false.
//
// keep runs once per entry on a snapshot, with the lock released, so it may
// call back into the map. An entry that was deleted and set again in the
// meantime is a new entry and is left alone.
func (om *OrderedMap[K, V]) Filter(keep func(key K, value V) bool) {
	if om == nil {
		return
	}

	om.mu.Lock()
	entries := om.entries()
	om.mu.Unlock()

	var rejected []entry[K, V]
	for _, e := range entries {
		if !keep(e.key, e.value) {
			rejected = append(rejected, e)
		}
	}
	if len(rejected) == 0 {
		return
	}

	om.mu.Lock()
	defer om.mu.Unlock()

	removed := false
	for _, e := range rejected {
		if element, ok := om.index[e.key]; ok && element.Value.serial == e.serial {
			om.remove(e.key)
			removed = true
		}
	}
	if removed {
		om.compactIfSparse()
	}
	om.checkInvariants()
}
