package pool

import "sync"

// Slice pools for residual blocks and transformed channels.
var (
	int32SlicePool = sync.Pool{
		New: func() any { return &[]int32{} },
	}
	int64SlicePool = sync.Pool{
		New: func() any { return &[]int64{} },
	}
)

// GetInt32Slice retrieves an int32 slice of exactly size elements from the pool.
//
// The contents of the returned slice are unspecified. The caller must call the
// returned cleanup function, typically with defer, to give the slice back.
//
// Example:
//
//	side, cleanup := pool.GetInt32Slice(count)
//	defer cleanup()
func GetInt32Slice(size int) ([]int32, func()) {
	ptr, _ := int32SlicePool.Get().(*[]int32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int32, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { int32SlicePool.Put(ptr) }
}

// GetInt64Slice retrieves an int64 slice of exactly size elements from the pool.
//
// The contents of the returned slice are unspecified. The caller must call the
// returned cleanup function to give the slice back.
func GetInt64Slice(size int) ([]int64, func()) {
	ptr, _ := int64SlicePool.Get().(*[]int64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { int64SlicePool.Put(ptr) }
}
