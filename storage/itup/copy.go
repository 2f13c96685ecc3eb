package itup

import (
	"encoding/binary"
)

// CopyTuple returns an independently owned byte for byte duplicate.
func CopyTuple(src IndexTuple) IndexTuple {
	dst := make(IndexTuple, len(src))
	copy(dst, src)
	return dst
}

// CopyTupleWithCount duplicates src with its aggregate count set to count.
//
// When src already carries a count region this is a plain copy plus a count
// store. Otherwise the copy must be restructured: setting the count flag
// moves the data region, so header, bitmap, count and attribute bytes are
// each placed at freshly computed offsets. Appending the count instead would
// leave every attribute at a stale offset and decode as garbage.
//
// Returns ErrSizeOverflow when the widened tuple would no longer fit the
// 13 bit size field.
func CopyTupleWithCount(src IndexTuple, count uint64) (IndexTuple, error) {
	if src.HasCount() {
		dst := CopyTuple(src)
		dst.SetCount(count)
		return dst, nil
	}

	oldInfo := src.Info()
	newFlags := (oldInfo &^ IndexSizeMask) | IndexHasCount
	oldDataOffset := DataOffset(oldInfo)
	newDataOffset := DataOffset(newFlags)
	dataLen := src.Size() - oldDataOffset
	newSize := newDataOffset + dataLen
	if newSize > uint32(IndexSizeMask) {
		return nil, ErrSizeOverflow
	}

	dst := make(IndexTuple, newSize)
	copy(dst[:sizeIndexTupleHeader], src[:sizeIndexTupleHeader])
	if oldInfo&IndexNullMask != 0 {
		copy(dst[sizeIndexTupleHeader:], src[sizeIndexTupleHeader:sizeIndexTupleHeader+sizeNullBitmap])
	}
	dst.setInfo(newFlags | uint16(newSize))
	binary.LittleEndian.PutUint64(dst[CountOffset(newFlags):], count)
	copy(dst[newDataOffset:], src[oldDataOffset:src.Size()])

	return dst, nil
}
