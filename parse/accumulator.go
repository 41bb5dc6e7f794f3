package parse

// Accumulator gathers the values produced by a repeated parser into a C.
// Empty is called once per run, so an accumulated value is never shared
// between runs.
type Accumulator[T, C any] interface {
	Empty() C
	Push(C, T) C
}

type sliceAcc[T any] struct{}

func (sliceAcc[T]) Empty() []T {
	return []T{}
}

func (sliceAcc[T]) Push(s []T, v T) []T {
	return append(s, v)
}

// Slice collects values in order.
func Slice[T any]() Accumulator[T, []T] {
	return sliceAcc[T]{}
}

type counterAcc[T any] struct{}

func (counterAcc[T]) Empty() int {
	return 0
}

func (counterAcc[T]) Push(n int, _ T) int {
	return n + 1
}

// Counter counts values and drops them.
func Counter[T any]() Accumulator[T, int] {
	return counterAcc[T]{}
}

type discardAcc[T any] struct{}

func (discardAcc[T]) Empty() struct{} {
	return struct{}{}
}

func (discardAcc[T]) Push(struct{}, T) struct{} {
	return struct{}{}
}

// Discard drops every value.
func Discard[T any]() Accumulator[T, struct{}] {
	return discardAcc[T]{}
}

type byteSliceAcc struct{}

func (byteSliceAcc) Empty() []byte {
	return []byte{}
}

func (byteSliceAcc) Push(b []byte, c byte) []byte {
	return append(b, c)
}

// ByteSlice collects single bytes into a fresh slice.
func ByteSlice() Accumulator[byte, []byte] {
	return byteSliceAcc{}
}

type concatAcc struct{}

func (concatAcc) Empty() []byte {
	return []byte{}
}

func (concatAcc) Push(b []byte, s []byte) []byte {
	return append(b, s...)
}

// Concat joins byte spans into a fresh slice.
func Concat() Accumulator[[]byte, []byte] {
	return concatAcc{}
}
