package compare

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"
)

// Set is an unordered collection of distinct values. It is written to JSON as a sorted array.
type Set[T comparable] struct {
	elements map[T]struct{}
}

func NewSet[T comparable](items ...T) Set[T] {
	s := Set[T]{elements: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.elements[item] = struct{}{}
	}
	return s
}

func (s Set[T]) Len() int {
	return len(s.elements)
}

func (s Set[T]) Contains(item T) bool {
	_, ok := s.elements[item]
	return ok
}

// Elements returns the members ordered by their printed form.
func (s Set[T]) Elements() []T {
	out := make([]T, 0, len(s.elements))
	for item := range s.elements {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return fmt.Sprint(out[i]) < fmt.Sprint(out[j])
	})
	return out
}

func (s Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Elements())
}

func (s *Set[T]) UnmarshalJSON(b []byte) error {
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	*s = NewSet(items...)
	return nil
}

func (s Set[T]) members() []any {
	elements := s.Elements()
	out := make([]any, 0, len(elements))
	for _, e := range elements {
		out = append(out, e)
	}
	return out
}

type setLike interface {
	members() []any
}
