// Package arena provides a chunked bump allocator. Values never move once
// allocated, so returned pointers stay valid until Reset.
package arena

import "iter"

const defaultChunkSize = 1024

type Arena[T any] struct {
	chunks    [][]T
	cur       int
	chunkSize int
	n         int
}

// New creates an arena that grows in chunks of chunkSize values.
func New[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	return &Arena[T]{chunkSize: chunkSize}
}

// Alloc copies v into the arena and returns a pointer to the stored value.
func (a *Arena[T]) Alloc(v T) *T {
	if len(a.chunks) == 0 {
		a.chunks = append(a.chunks, make([]T, 0, a.chunkSize))
	}

	c := a.chunks[a.cur]
	if len(c) == cap(c) {
		a.cur++
		if a.cur == len(a.chunks) {
			a.chunks = append(a.chunks, make([]T, 0, a.chunkSize))
		}
		c = a.chunks[a.cur]
	}

	c = append(c, v)
	a.chunks[a.cur] = c
	a.n++

	return &c[len(c)-1]
}

// Len returns the number of allocated values.
func (a *Arena[T]) Len() int { return a.n }

// At returns the i-th allocated value, or nil when i is out of range.
func (a *Arena[T]) At(i int) *T {
	if i < 0 || i >= a.n {
		return nil
	}
	return &a.chunks[i/a.chunkSize][i%a.chunkSize]
}

// All yields the allocated values in allocation order.
func (a *Arena[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		i := 0
		for _, c := range a.chunks[:min(len(a.chunks), a.cur+1)] {
			for j := range c {
				if !yield(i, &c[j]) {
					return
				}
				i++
			}
		}
	}
}

// Reset forgets every value but keeps the chunks for reuse.
func (a *Arena[T]) Reset() {
	for i := range a.chunks {
		clear(a.chunks[i])
		a.chunks[i] = a.chunks[i][:0]
	}
	a.cur = 0
	a.n = 0
}
