package img2ascii

import (
	"cmp"
	"iter"
)

// OrderedMap is a map that remembers the order in which keys were first
// inserted. Every mapping the quantizer builds is an OrderedMap so that
// iteration, and therefore the rendered output, is reproducible.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrderedMap creates a new, empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		keys:   make([]K, 0),
		values: make(map[K]V),
	}
}

// Set adds a Key-Value pair to the map. Overwriting an existing key keeps
// its original position.
func (om *OrderedMap[K, V]) Set(key K, value V) {
	if _, exists := om.values[key]; !exists {
		om.keys = append(om.keys, key)
	}
	om.values[key] = value
}

// Get retrieves a Value from the map by Key
func (om *OrderedMap[K, V]) Get(key K) (V, bool) {
	val, exists := om.values[key]
	return val, exists
}

// Keys returns a slice of keys in the order they were inserted
func (om *OrderedMap[K, V]) Keys() []K {
	return append([]K{}, om.keys...)
}

// Values returns the values in key insertion order.
func (om *OrderedMap[K, V]) Values() []V {
	vals := make([]V, 0, len(om.keys))
	for _, k := range om.keys {
		vals = append(vals, om.values[k])
	}
	return vals
}

// Iterate calls the provided function for each Key-Value pair in order
func (om *OrderedMap[K, V]) Iterate(f func(key K, value V)) {
	for _, k := range om.keys {
		f(k, om.values[k])
	}
}

// All returns an iterator over the Key-Value pairs in insertion order.
func (om *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range om.keys {
			if !yield(k, om.values[k]) {
				return
			}
		}
	}
}

// Len returns the number of elements in the map
func (om *OrderedMap[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.keys)
}

// LastByKey returns the value stored under the largest key, i.e. the last
// value when the entries are sorted by key. ok is false for an empty map.
func LastByKey[K cmp.Ordered, V any](om *OrderedMap[K, V]) (value V, ok bool) {
	if om.Len() == 0 {
		return value, false
	}
	largest := om.keys[0]
	for _, k := range om.keys[1:] {
		if k > largest {
			largest = k
		}
	}
	return om.values[largest], true
}
