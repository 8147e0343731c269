package fringego

import "iter"

// Iterator adapts a Generator that takes no input and returns nothing
// interesting into a pull-style iterator, for generator bodies written
// purely to produce a sequence of O values.
type Iterator[O any] struct {
	gen *Generator[struct{}, O, struct{}]
}

// NewIteratorGenerator constructs a Generator on stack whose body only
// ever yields, wrapped as an Iterator.
func NewIteratorGenerator[O any](stack Stack, body func(*Yielder[struct{}, O], struct{}), cfg *Config) (*Iterator[O], error) {
	g, err := NewGenerator[struct{}, O, struct{}](stack, func(y *Yielder[struct{}, O], in struct{}) struct{} {
		body(y, in)
		return struct{}{}
	}, cfg)
	if err != nil {
		return nil, err
	}
	return &Iterator[O]{gen: g}, nil
}

// Next advances the iterator. ok is false once the underlying
// generator has finished.
func (it *Iterator[O]) Next() (value O, ok bool) {
	return it.gen.Resume(struct{}{})
}

// Close releases the underlying generator's resources.
func (it *Iterator[O]) Close() error {
	return it.gen.Close()
}

// Seq returns a range-over-func sequence driven by Next, stopping
// early if the consumer breaks out of the loop.
func (it *Iterator[O]) Seq() iter.Seq[O] {
	return func(yield func(O) bool) {
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
