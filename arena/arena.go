// Package arena provides an append-only store whose values never move.
package arena

import "iter"

const chunkSize = 64

// Arena owns values and hands out stable indices. The zero value is ready to
// use.
//
// Values live in fixed-capacity chunks; growth only extends the chunk
// directory, so a pointer returned by Get stays valid for the arena's life.
type Arena[T any] struct {
	chunks [][]T
	n      int
}

// Allocate takes ownership of v and returns its 0-based index.
func (a *Arena[T]) Allocate(v T) int {
	if a.n%chunkSize == 0 {
		a.chunks = append(a.chunks, make([]T, 0, chunkSize))
	}
	last := len(a.chunks) - 1
	a.chunks[last] = append(a.chunks[last], v)
	a.n++
	return a.n - 1
}

// Get returns the value stored at index i, or false if i was never returned
// by Allocate.
func (a *Arena[T]) Get(i int) (*T, bool) {
	if i < 0 || i >= a.n {
		return nil, false
	}
	return &a.chunks[i/chunkSize][i%chunkSize], true
}

// Len returns the number of stored values.
func (a *Arena[T]) Len() int { return a.n }

// All yields every stored value with its index, in allocation order.
func (a *Arena[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < a.n; i++ {
			if !yield(i, &a.chunks[i/chunkSize][i%chunkSize]) {
				return
			}
		}
	}
}
