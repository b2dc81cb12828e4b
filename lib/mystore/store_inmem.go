package mystore

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"
)

// inMemoryTxKey marks a context as holding the lock of one particular store
type inMemoryTxKey struct {
	store any
}

type InMemoryStore[T any] struct {
	sync.Mutex
	Items map[string]T
}

func NewInMemoryStore[T any](c context.Context) (*InMemoryStore[T], func(), error) {
	return &InMemoryStore[T]{
		Items: make(map[string]T),
	}, func() {}, nil
}

func (s *InMemoryStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	if s.inTransaction(c) {
		// Nested: already holding the lock
		return f(c)
	}

	// Start transaction
	s.Lock()
	defer s.Unlock()

	// Within this block everything is transactional
	return f(context.WithValue(c, inMemoryTxKey{store: s}, true))
}

func (s *InMemoryStore[T]) inTransaction(c context.Context) bool {
	return c.Value(inMemoryTxKey{store: s}) != nil
}

func (s *InMemoryStore[T]) Put(c context.Context, uid string, value T) error {
	if !s.inTransaction(c) {
		s.Lock()
		defer s.Unlock()
	}

	s.Items[uid] = value

	return nil
}

func (s *InMemoryStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	if !s.inTransaction(c) {
		s.Lock()
		defer s.Unlock()
	}

	result, exists := s.Items[uid]

	return result, exists, nil
}

func (s *InMemoryStore[T]) List(c context.Context) ([]T, error) {
	if !s.inTransaction(c) {
		s.Lock()
		defer s.Unlock()
	}

	result := make([]T, 0, len(s.Items))
	for _, v := range s.Items {
		result = append(result, v)
	}

	return result, nil
}

func (s *InMemoryStore[T]) Query(c context.Context, filters []Filter, orderByField string) ([]T, error) {
	all, err := s.List(c)
	if err != nil {
		return nil, err
	}

	result := []T{}
	for _, item := range all {
		matches, err := matchesAll(item, filters)
		if err != nil {
			return nil, err
		}
		if matches {
			result = append(result, item)
		}
	}

	if orderByField != "" {
		descending := strings.HasPrefix(orderByField, "-")
		fieldName := strings.TrimPrefix(orderByField, "-")
		sort.SliceStable(result, func(i, j int) bool {
			if descending {
				return less(fieldValue(result[j], fieldName), fieldValue(result[i], fieldName))
			}
			return less(fieldValue(result[i], fieldName), fieldValue(result[j], fieldName))
		})
	}

	return result, nil
}

func matchesAll[T any](item T, filters []Filter) (bool, error) {
	for _, f := range filters {
		if f.Compare != "=" {
			return false, fmt.Errorf("comparison '%s' on field %s not supported in memory", f.Compare, f.Field)
		}
		value := fieldValue(item, f.Field)
		if !value.IsValid() {
			return false, fmt.Errorf("unknown field %s", f.Field)
		}
		if !reflect.DeepEqual(value.Interface(), f.Value) {
			return false, nil
		}
	}
	return true, nil
}

func fieldValue(item any, fieldName string) reflect.Value {
	v := reflect.ValueOf(item)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}
	}
	return v.FieldByName(fieldName)
}

func less(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return false
	}
	switch a.Kind() {
	case reflect.String:
		return a.String() < b.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Bool:
		return !a.Bool() && b.Bool()
	}
	if t, ok := a.Interface().(time.Time); ok {
		return t.Before(b.Interface().(time.Time))
	}
	return false
}
