package orderedmap

import "iter"

// Each sequence below takes its own snapshot when ranged over, so it can be
// ranged over again and it never sees writes made while it runs. The map
// lock is not held while yielding.

// FromOldest returns an iterator over all the key-value pairs in the map, starting from the oldest pair.
func (om *OrderedMap[K, V]) FromOldest() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, pair := range om.Pairs() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// FromNewest returns an iterator over all the key-value pairs in the map, starting from the newest pair.
func (om *OrderedMap[K, V]) FromNewest() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		pairs := om.Pairs()
		for i := len(pairs) - 1; i >= 0; i-- {
			if !yield(pairs[i].Key, pairs[i].Value) {
				return
			}
		}
	}
}

// KeysFromOldest returns an iterator over all the keys in the map, starting from the oldest pair.
func (om *OrderedMap[K, V]) KeysFromOldest() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, key := range om.Keys() {
			if !yield(key) {
				return
			}
		}
	}
}

// KeysFromNewest returns an iterator over all the keys in the map, starting from the newest pair.
func (om *OrderedMap[K, V]) KeysFromNewest() iter.Seq[K] {
	return func(yield func(K) bool) {
		keys := om.Keys()
		for i := len(keys) - 1; i >= 0; i-- {
			if !yield(keys[i]) {
				return
			}
		}
	}
}

// ValuesFromOldest returns an iterator over all the values in the map, starting from the oldest pair.
func (om *OrderedMap[K, V]) ValuesFromOldest() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range om.Values() {
			if !yield(value) {
				return
			}
		}
	}
}

// ValuesFromNewest returns an iterator over all the values in the map, starting from the newest pair.
func (om *OrderedMap[K, V]) ValuesFromNewest() iter.Seq[V] {
	return func(yield func(V) bool) {
		values := om.Values()
		for i := len(values) - 1; i >= 0; i-- {
			if !yield(values[i]) {
				return
			}
		}
	}
}
