package itup

// MaxIndexTuplesPerPage is a pessimistic upper bound on how many index
// tuples fit on one page. An index tuple must have data, a null bitmap or a
// count region, so it is at least one byte larger than a bare header; each
// tuple is strict-aligned and needs one slot entry. Use the bound to size
// preallocated scratch arrays, never for free space accounting.
func MaxIndexTuplesPerPage(pageSize uint32, pageHeaderSize uint32, slotEntrySize uint32) uint32 {
	return (pageSize - pageHeaderSize) / (MaxAlign(sizeIndexTupleHeader+1) + slotEntrySize)
}
