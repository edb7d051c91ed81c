//go:build orderedmap_debug

package orderedmap

import "fmt"

// checkInvariants panics if the index and the order list disagree, if tags
// do not strictly increase along the list, or if the tag counter has run
// further ahead of the live count than compaction allows. Callers must hold
// om.mu.
func (om *OrderedMap[K, V]) checkInvariants() {
	if om.order == nil {
		return
	}
	if len(om.index) != om.order.Len() {
		panic(fmt.Sprintf("orderedmap: %d indexed keys but %d ordered entries", len(om.index), om.order.Len()))
	}

	first := true
	var prev uint64
	for element := om.order.Front(); element != nil; element = element.Next() {
		e := element.Value
		if om.index[e.key] != element {
			panic(fmt.Sprintf("orderedmap: key %v is not indexed to its list element", e.key))
		}
		if !first && e.tag <= prev {
			panic(fmt.Sprintf("orderedmap: key %v has tag %d after tag %d", e.key, e.tag, prev))
		}
		if e.tag >= om.next {
			panic(fmt.Sprintf("orderedmap: key %v has tag %d, counter is %d", e.key, e.tag, om.next))
		}
		first, prev = false, e.tag
	}

	// Only removals widen the gap and every removal path compacts before
	// releasing the lock.
	live := uint64(len(om.index))
	if om.next-live > om.threshold {
		panic(fmt.Sprintf("orderedmap: counter %d runs %d past %d live entries, threshold %d",
			om.next, om.next-live, live, om.threshold))
	}
}
