package model

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrElementType = errors.New("element has the wrong type")

// Collection is an ordered list of domain objects whose identity survives
// mapping: it is appended to, never replaced.
type Collection[T any] struct {
	items []T
}

// NewCollection returns a collection holding items.
func NewCollection[T any](items ...T) *Collection[T] {
	c := &Collection[T]{}
	c.AddRange(items...)

	return c
}

// Add appends item.
func (c *Collection[T]) Add(item T) {
	c.items = append(c.items, item)
}

// AddRange appends items in order.
func (c *Collection[T]) AddRange(items ...T) {
	c.items = append(c.items, items...)
}

// Items returns the elements. The slice must not be modified.
func (c *Collection[T]) Items() []T {
	if c == nil {
		return nil
	}

	return c.items
}

// At returns element i.
func (c *Collection[T]) At(i int) T {
	return c.items[i]
}

// Len returns the number of elements.
func (c *Collection[T]) Len() int {
	if c == nil {
		return 0
	}

	return len(c.items)
}

// Clear removes every element, keeping the instance.
func (c *Collection[T]) Clear() {
	c.items = nil
}

// ElemType returns the reflect.Type of T.
func (c *Collection[T]) ElemType() reflect.Type {
	return reflect.TypeFor[T]()
}

// Values returns the elements as []any.
func (c *Collection[T]) Values() []any {
	out := make([]any, 0, c.Len())
	for _, item := range c.Items() {
		out = append(out, item)
	}

	return out
}

// AppendValues appends values, each of which must hold a T. Nothing is
// appended when one of them does not.
func (c *Collection[T]) AppendValues(values ...any) error {
	typed := make([]T, 0, len(values))

	for i, v := range values {
		item, ok := v.(T)
		if !ok {
			return fmt.Errorf("%w: value %d is %T, want %s", ErrElementType, i, v, c.ElemType())
		}

		typed = append(typed, item)
	}

	c.AddRange(typed...)

	return nil
}
