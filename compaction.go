package orderedmap

// compactIfSparse renumbers tags once the counter has run more than
// om.threshold ahead of the live entry count. Callers must hold om.mu.
func (om *OrderedMap[K, V]) compactIfSparse() {
	live := uint64(len(om.index))
	if om.next-live <= om.threshold {
		return
	}
	om.reindex()
}

// reindex assigns tags 0..n-1 in list order and resets the counter to n.
func (om *OrderedMap[K, V]) reindex() {
	before := om.next

	var tag uint64
	for element := om.order.Front(); element != nil; element = element.Next() {
		element.Value.tag = tag
		tag++
	}
	om.next = tag

	om.logger.Debug("reindexed order tags",
		"live", len(om.index), "next_before", before, "next_after", om.next, "threshold", om.threshold)
}
