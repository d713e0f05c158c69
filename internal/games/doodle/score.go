package doodle

// Number is the set of numeric types a Score can accumulate.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Score is an accumulated total with value semantics: Add never mutates
// the receiver, it returns the new total.
type Score[T Number] struct {
	value T
}

// NewScore creates a score holding v.
func NewScore[T Number](v T) Score[T] {
	return Score[T]{value: v}
}

// Add returns the sum of both scores.
func (s Score[T]) Add(other Score[T]) Score[T] {
	return Score[T]{value: s.value + other.value}
}

// Value returns the accumulated total.
func (s Score[T]) Value() T {
	return s.value
}
