package codetable

import (
	"fmt"

	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
)

type Pair[K comparable, V comparable] struct {
	Key   K
	Value V
}

// Table is a bijection between two code lists. Both lookup directions come from
// the same pair list.
type Table[K comparable, V comparable] struct {
	name    string
	pairs   []Pair[K, V]
	forward map[K]V
	reverse map[V]K
}

// New builds a table and panics when the pairs do not form a bijection.
func New[K comparable, V comparable](name string, pairs ...Pair[K, V]) *Table[K, V] {
	t := &Table[K, V]{
		name:    name,
		pairs:   pairs,
		forward: make(map[K]V, len(pairs)),
		reverse: make(map[V]K, len(pairs)),
	}
	for _, p := range pairs {
		if _, ok := t.forward[p.Key]; ok {
			panic(fmt.Sprintf("code table %s: duplicated key %v", name, p.Key))
		}
		if _, ok := t.reverse[p.Value]; ok {
			panic(fmt.Sprintf("code table %s: duplicated value %v", name, p.Value))
		}
		t.forward[p.Key] = p.Value
		t.reverse[p.Value] = p.Key
	}
	return t
}

func (t *Table[K, V]) Name() string {
	return t.name
}

func (t *Table[K, V]) Forward(key K) (V, error) {
	v, ok := t.forward[key]
	if !ok {
		return v, fmt.Errorf("%s %q: %w", t.name, fmt.Sprint(key), model.ErrUnmappedCode)
	}
	return v, nil
}

func (t *Table[K, V]) Reverse(value V) (K, error) {
	k, ok := t.reverse[value]
	if !ok {
		return k, fmt.Errorf("%s %q: %w", t.name, fmt.Sprint(value), model.ErrUnmappedCode)
	}
	return k, nil
}

// Keys returns the keys in table order.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, len(t.pairs))
	for _, p := range t.pairs {
		keys = append(keys, p.Key)
	}
	return keys
}

// Values returns the values in table order.
func (t *Table[K, V]) Values() []V {
	values := make([]V, 0, len(t.pairs))
	for _, p := range t.pairs {
		values = append(values, p.Value)
	}
	return values
}
