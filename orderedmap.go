// Package orderedmap implements a thread-safe map that remembers the order in
// which keys were first inserted.
//
// Every new key is stamped with an order tag taken from a per-map counter and
// appended to a linked list. Updating an existing key keeps its tag and its
// place in the list. Removing a key and setting it again gives it a fresh tag
// at the end. Tags only grow, so the list is always sorted by tag; once
// removals leave the counter far enough ahead of the live count, the tags are
// renumbered in list order.
package orderedmap

import (
	"sync"

	list "github.com/PrismAIO/generic-list-go"
	"github.com/inconshreveable/log15"
)

// DefaultCompactionThreshold is how far the tag counter may run ahead of the
// number of live entries before a removal renumbers the tags.
const DefaultCompactionThreshold = 1 << 20

// Pair is a key/value element of an ordered snapshot.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// OrderedMap is safe for concurrent use. The zero value is an empty map
// ready to use.
type OrderedMap[K comparable, V any] struct {
	mu sync.Mutex

	// index and order always hold the same entries; only set and remove
	// write to them.
	index map[K]*list.Element[entry[K, V]]
	order *list.List[entry[K, V]]
	next  uint64

	// serial identifies an entry for its whole life. It is never
	// renumbered or reset.
	serial uint64

	threshold uint64
	logger    log15.Logger
}

type entry[K comparable, V any] struct {
	key    K
	value  V
	tag    uint64
	serial uint64
}

func (om *OrderedMap[K, V]) lazyInit() {
	if om.index != nil {
		return
	}
	om.index = make(map[K]*list.Element[entry[K, V]])
	om.order = list.New[entry[K, V]]()
	om.threshold = DefaultCompactionThreshold
	om.logger = discardLogger
}

// Len returns the number of live entries. A nil map has length 0.
func (om *OrderedMap[K, V]) Len() int {
	if om == nil {
		return 0
	}
	om.mu.Lock()
	defer om.mu.Unlock()
	return len(om.index)
}

// IsEmpty reports whether the map holds no entries.
func (om *OrderedMap[K, V]) IsEmpty() bool {
	return om.Len() == 0
}

// Get returns the value stored under key, or the zero value of V.
// present reports whether the key was found.
func (om *OrderedMap[K, V]) Get(key K) (val V, present bool) {
	if om == nil {
		return
	}
	om.mu.Lock()
	defer om.mu.Unlock()

	element, present := om.index[key]
	if !present {
		return
	}
	return element.Value.value, true
}

// Value returns the value associated with the given key or the zero value.
func (om *OrderedMap[K, V]) Value(key K) (val V) {
	val, _ = om.Get(key)
	return
}

// Has reports whether key is present.
func (om *OrderedMap[K, V]) Has(key K) bool {
	_, present := om.Get(key)
	return present
}

// Set sets the key-value pair, and returns what `Get` would have returned
// on that key prior to the call to `Set`.
// A new key is appended to the order; an existing key keeps its position.
func (om *OrderedMap[K, V]) Set(key K, value V) (val V, present bool) {
	om.mu.Lock()
	defer om.mu.Unlock()

	val, present = om.set(key, value)
	om.checkInvariants()
	return
}

func (om *OrderedMap[K, V]) set(key K, value V) (val V, present bool) {
	om.lazyInit()

	if element, ok := om.index[key]; ok {
		val = element.Value.value
		element.Value.value = value
		return val, true
	}

	om.index[key] = om.order.PushBack(entry[K, V]{
		key:    key,
		value:  value,
		tag:    om.next,
		serial: om.serial,
	})
	om.next++
	om.serial++
	return
}

// Store sets key to *value, or deletes key when value is nil.
// It returns what `Get` would have returned on that key prior to the call.
func (om *OrderedMap[K, V]) Store(key K, value *V) (val V, present bool) {
	if value == nil {
		return om.Delete(key)
	}
	return om.Set(key, *value)
}

// Delete removes the key-value pair, and returns what `Get` would have returned
// on that key prior to the call to `Delete`.
// Deleting a missing key is a no-op.
func (om *OrderedMap[K, V]) Delete(key K) (val V, present bool) {
	if om == nil {
		return
	}
	om.mu.Lock()
	defer om.mu.Unlock()

	val, present = om.remove(key)
	if present {
		om.compactIfSparse()
	}
	om.checkInvariants()
	return
}

// remove drops key from both the index and the order without running the
// compaction check.
func (om *OrderedMap[K, V]) remove(key K) (val V, present bool) {
	element, present := om.index[key]
	if !present {
		return
	}
	delete(om.index, key)
	return om.order.Remove(element).value, true
}

// Clear removes every entry and resets the tag counter.
func (om *OrderedMap[K, V]) Clear() {
	om.mu.Lock()
	defer om.mu.Unlock()

	om.lazyInit()
	clear(om.index)
	om.order = list.New[entry[K, V]]()
	om.next = 0
	om.checkInvariants()
}

// entries copies the live entries in order. Callers must hold om.mu.
func (om *OrderedMap[K, V]) entries() []entry[K, V] {
	if om.order == nil {
		return []entry[K, V]{}
	}
	entries := make([]entry[K, V], 0, om.order.Len())
	for element := om.order.Front(); element != nil; element = element.Next() {
		entries = append(entries, element.Value)
	}
	return entries
}

// Pairs returns a snapshot of all entries in insertion order.
func (om *OrderedMap[K, V]) Pairs() []Pair[K, V] {
	if om == nil {
		return nil
	}
	om.mu.Lock()
	entries := om.entries()
	om.mu.Unlock()

	pairs := make([]Pair[K, V], len(entries))
	for i, e := range entries {
		pairs[i] = Pair[K, V]{Key: e.key, Value: e.value}
	}
	return pairs
}

// Keys returns a snapshot of all keys in insertion order.
func (om *OrderedMap[K, V]) Keys() []K {
	if om == nil {
		return nil
	}
	om.mu.Lock()
	entries := om.entries()
	om.mu.Unlock()

	keys := make([]K, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}
	return keys
}

// Values returns a snapshot of all values in key insertion order.
func (om *OrderedMap[K, V]) Values() []V {
	if om == nil {
		return nil
	}
	om.mu.Lock()
	entries := om.entries()
	om.mu.Unlock()

	values := make([]V, len(entries))
	for i, e := range entries {
		values[i] = e.value
	}
	return values
}

// Oldest returns the earliest inserted live pair, or nil if the map is empty.
func (om *OrderedMap[K, V]) Oldest() *Pair[K, V] {
	if om == nil {
		return nil
	}
	om.mu.Lock()
	defer om.mu.Unlock()

	if om.order == nil {
		return nil
	}
	return pairOf(om.order.Front())
}

// Newest returns the most recently inserted live pair, or nil if the map is empty.
func (om *OrderedMap[K, V]) Newest() *Pair[K, V] {
	if om == nil {
		return nil
	}
	om.mu.Lock()
	defer om.mu.Unlock()

	if om.order == nil {
		return nil
	}
	return pairOf(om.order.Back())
}

func pairOf[K comparable, V any](element *list.Element[entry[K, V]]) *Pair[K, V] {
	if element == nil {
		return nil
	}
	return &Pair[K, V]{Key: element.Value.key, Value: element.Value.value}
}
