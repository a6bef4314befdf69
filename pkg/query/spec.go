// Package query describes list filters without knowing where the data lives.
package query

import "reflect"

type Op int

const (
	// OpEq matches a field exactly.
	OpEq Op = iota
	// OpContains matches a case-insensitive substring.
	OpContains
)

// Predicate constrains a logical field of a resource, e.g. "Name" or "CountryId".
type Predicate struct {
	Field string
	Op    Op
	Value any
}

// Spec is a conjunction of predicates. The zero value matches everything.
// A scope predicate is always reported first.
type Spec struct {
	scope   *Predicate
	filters []Predicate
}

func New() Spec {
	return Spec{}
}

// Scoped restricts the spec to the children of a parent entity.
func (s Spec) Scoped(field string, value any) Spec {
	s.scope = &Predicate{Field: field, Op: OpEq, Value: value}

	return s
}

// Contains adds a substring predicate. An empty value adds nothing.
func (s Spec) Contains(field, value string) Spec {
	if value == "" {
		return s
	}

	return s.with(Predicate{Field: field, Op: OpContains, Value: value})
}

// Equals adds an exact predicate. Nil values and nil pointers add nothing;
// non-nil pointers are dereferenced.
func (s Spec) Equals(field string, value any) Spec {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return s
	}

	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return s
		}

		value = v.Elem().Interface()
	}

	return s.with(Predicate{Field: field, Op: OpEq, Value: value})
}

func (s Spec) with(p Predicate) Spec {
	filters := make([]Predicate, len(s.filters), len(s.filters)+1)
	copy(filters, s.filters)
	s.filters = append(filters, p)

	return s
}

// Predicates returns the scope followed by the filters in the order they were added.
func (s Spec) Predicates() []Predicate {
	out := make([]Predicate, 0, len(s.filters)+1)
	if s.scope != nil {
		out = append(out, *s.scope)
	}

	return append(out, s.filters...)
}

func (s Spec) Empty() bool {
	return s.scope == nil && len(s.filters) == 0
}
