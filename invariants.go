//go:build !orderedmap_debug

package orderedmap

func (om *OrderedMap[K, V]) checkInvariants() {}
