// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scs

// List is an O(1)-append source builder for dynamic_array<T>,
// supplementing the "braced list" / "sized input range" construction
// named in spec.md §4.8 with an append-as-you-go builder. It produces
// the exact same wire format as dynamic_array<T> once realized through
// Source: spec.md's original implementation keeps list<T> and
// dynamic_array<T> as distinct combinators (see
// original_source/include/serialpp/list.hpp), but the distinction
// there is about construction ergonomics, not layout, so this module
// folds it into a single wire type and supplements only the builder.
type List[S any] struct {
	head, tail *listNode[S]
	n          int
}

type listNode[S any] struct {
	value S
	next  *listNode[S]
}

// Append adds v to the end of the list in O(1).
func (l *List[S]) Append(v S) {
	n := &listNode[S]{value: v}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.n++
}

// Len returns the number of appended elements, satisfying Range[S].
func (l *List[S]) Len() int { return l.n }

// Each visits the list in append order, satisfying Range[S].
func (l *List[S]) Each(f func(S) error) error {
	for n := l.head; n != nil; n = n.next {
		if err := f(n.value); err != nil {
			return err
		}
	}
	return nil
}

// Source materialises the list into a DynamicArraySource, the realized
// value dynamic_array<T>'s Codec writes from.
func (l *List[S]) Source() DynamicArraySource[S] {
	src, _ := FromRange[S](l)
	return src
}
