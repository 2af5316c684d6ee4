package grouping

// orderedMultimap groups values by key and remembers the order in which
// keys first appeared, so iteration is deterministic.
type orderedMultimap[K comparable, V any] struct {
	keys   []K
	values map[K][]V
}

func newOrderedMultimap[K comparable, V any]() *orderedMultimap[K, V] {
	return &orderedMultimap[K, V]{values: make(map[K][]V)}
}

func (m *orderedMultimap[K, V]) add(key K, v V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = append(m.values[key], v)
}

// each calls fn for every key in first-seen order.
func (m *orderedMultimap[K, V]) each(fn func(key K, values []V)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}
