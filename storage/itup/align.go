package itup

// strict alignment unit of the tuple format
const maxAlignment = 8

// AlignLength rounds length up to a multiple of align. align must be a
// power of two.
func AlignLength(align uint32, length uint32) uint32 {
	return (length + align - 1) & ^(align - 1)
}

// MaxAlign rounds length up to the strict alignment unit.
func MaxAlign(length uint32) uint32 {
	return AlignLength(maxAlignment, length)
}
